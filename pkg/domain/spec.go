package domain

// DomainSpec describes a server domain to be created from a template.
// Field values come from the environment (see internal/config) and map
// one-to-one onto the administrative calls issued by the create-domain plan.
type DomainSpec struct {
	// Name is the name of the domain to create.
	Name string

	// TemplatePath points at the vendor-supplied domain template archive.
	TemplatePath string

	// AdminServer configures the administrative server inside the domain.
	AdminServer AdminServerSpec

	// Username and Password seed the initial administrative credentials.
	Username string
	Password string

	// ProductionMode selects the domain startup mode.
	ProductionMode bool
}

// AdminServerSpec configures the administrative server of a domain.
type AdminServerSpec struct {
	// Name of the admin server (e.g. "AdminServer").
	Name string

	// ListenPort is the plain listen port of the admin server.
	ListenPort int

	// AdministrationPortEnabled toggles the dedicated, SSL-only
	// administration port. When false, no administration port is assigned
	// and no SSL channel is created.
	AdministrationPortEnabled bool

	// AdministrationPort is the dedicated administration port number.
	// Only meaningful when AdministrationPortEnabled is true.
	AdministrationPort int
}

// Target identifies the server a JMS resource is deployed onto.
type Target struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}
