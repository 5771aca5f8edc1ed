package wlsprov_test

import (
	"fmt"

	wlsprov "github.com/provtools/wlsprov"
	"github.com/provtools/wlsprov/internal/manifest"
	"github.com/provtools/wlsprov/internal/testutils"
)

// Example shows the deterministic call sequence behind provision-jms.
func Example() {
	m, err := manifest.Default()
	if err != nil {
		fmt.Println(err)
		return
	}

	p, err := wlsprov.New(testutils.NewFakeAdminClient())
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, id := range p.PlanProvisionJMS(m).StepIDs() {
		fmt.Println(id)
	}
	// Output:
	// jms.start-edit
	// jms.ensure-server
	// jms.create-module
	// jms.create-subdeployment
	// jms.create-connection-factory
	// jms.create-queue
	// jms.create-distributed-queue
	// jms.create-member-queue.ExampleDistributedQueueMember1
	// jms.create-member-queue.ExampleDistributedQueueMember2
	// jms.add-member.ExampleDistributedQueueMember1
	// jms.add-member.ExampleDistributedQueueMember2
	// jms.activate
}
