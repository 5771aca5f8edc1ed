package domain

// Messaging is the JMS resource topology provisioned against a running
// admin instance. The zero value is not usable; load it from the embedded
// default or a user manifest (see internal/manifest).
type Messaging struct {
	// JMSServer is the name of the JMS server hosting the physical queues.
	JMSServer string `yaml:"jms_server"`

	// Module is the name of the JMS system module holding the resources.
	Module string `yaml:"module"`

	// SubDeployment groups destinations and pins them to the JMS server.
	SubDeployment string `yaml:"sub_deployment"`

	// Target is the server the JMS server and module are deployed onto.
	// Defaults to the admin server when left empty.
	Target Target `yaml:"target"`

	ConnectionFactory ConnectionFactory `yaml:"connection_factory"`
	Queue             Queue             `yaml:"queue"`
	DistributedQueue  DistributedQueue  `yaml:"distributed_queue"`
}

// ConnectionFactory is a JMS connection factory bound into JNDI.
type ConnectionFactory struct {
	Name string `yaml:"name"`
	JNDI string `yaml:"jndi"`
}

// Queue is a single physical JMS queue bound into JNDI.
type Queue struct {
	Name string `yaml:"name"`
	JNDI string `yaml:"jndi"`
}

// DistributedQueue is a logical queue composed of physical member queues
// for load distribution. Members are created as ordinary queues and then
// attached to the distributed queue, in declaration order.
type DistributedQueue struct {
	Name    string   `yaml:"name"`
	JNDI    string   `yaml:"jndi"`
	Members []string `yaml:"members"`
}

// MemberQueues returns the physical queues backing the distributed queue.
// Member JNDI names are derived from the member name so that each physical
// queue stays individually addressable.
func (dq DistributedQueue) MemberQueues() []Queue {
	queues := make([]Queue, 0, len(dq.Members))
	for _, name := range dq.Members {
		queues = append(queues, Queue{Name: name, JNDI: "jms/" + name})
	}
	return queues
}
