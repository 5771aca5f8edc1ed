package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "ExampleJMSServer", m.JMSServer)
	assert.Equal(t, "ExampleJMSModule", m.Module)
	assert.Equal(t, "ExampleSubDeployment", m.SubDeployment)
	assert.Equal(t, "jms/ExampleQueue", m.Queue.JNDI)
	assert.Equal(t, "jms/ExampleConnectionFactory", m.ConnectionFactory.JNDI)
	assert.Equal(t, []string{"ExampleDistributedQueueMember1", "ExampleDistributedQueueMember2"}, m.DistributedQueue.Members)
}

func TestLoad(t *testing.T) {
	t.Run("empty path falls back to default", func(t *testing.T) {
		m, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "ExampleJMSServer", m.JMSServer)
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "topology.yaml")
		content := `
jms_server: OrdersJMSServer
module: OrdersModule
sub_deployment: OrdersSub
connection_factory: {name: OrdersCF, jndi: jms/OrdersCF}
queue: {name: OrdersQueue, jndi: jms/OrdersQueue}
distributed_queue:
  name: OrdersDQ
  jndi: jms/OrdersDQ
  members: [OrdersDQ1]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		m, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "OrdersJMSServer", m.JMSServer)
		assert.Equal(t, []string{"OrdersDQ1"}, m.DistributedQueue.Members)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("incomplete topology rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("jms_server: OnlyServer\n"), 0644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "module is required")
	})
}

func TestMemberQueues(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	queues := m.DistributedQueue.MemberQueues()
	require.Len(t, queues, 2)
	assert.Equal(t, "ExampleDistributedQueueMember1", queues[0].Name)
	assert.Equal(t, "jms/ExampleDistributedQueueMember1", queues[0].JNDI)
}
