// Package manifest loads the messaging topology: the embedded default
// carrying the fixed resource names, or a user-supplied YAML override.
package manifest

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/provtools/wlsprov/pkg/domain"
)

//go:embed default.yaml
var defaultManifest []byte

// Default returns the built-in messaging topology.
func Default() (domain.Messaging, error) {
	return parse(defaultManifest)
}

// Load reads a messaging topology from a YAML file. An empty path falls
// back to the embedded default.
func Load(path string) (domain.Messaging, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Messaging{}, fmt.Errorf("reading topology file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (domain.Messaging, error) {
	var m domain.Messaging
	if err := yaml.Unmarshal(data, &m); err != nil {
		return domain.Messaging{}, fmt.Errorf("parsing topology: %w", err)
	}
	if err := validate(m); err != nil {
		return domain.Messaging{}, err
	}
	return m, nil
}

func validate(m domain.Messaging) error {
	switch {
	case m.JMSServer == "":
		return fmt.Errorf("topology: jms_server is required")
	case m.Module == "":
		return fmt.Errorf("topology: module is required")
	case m.SubDeployment == "":
		return fmt.Errorf("topology: sub_deployment is required")
	case m.Queue.Name == "" || m.Queue.JNDI == "":
		return fmt.Errorf("topology: queue name and jndi are required")
	case m.ConnectionFactory.Name == "" || m.ConnectionFactory.JNDI == "":
		return fmt.Errorf("topology: connection_factory name and jndi are required")
	case m.DistributedQueue.Name == "":
		return fmt.Errorf("topology: distributed_queue name is required")
	case len(m.DistributedQueue.Members) == 0:
		return fmt.Errorf("topology: distributed_queue needs at least one member")
	}
	return nil
}
