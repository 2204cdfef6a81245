package kafka_client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaConfig_Enabled(t *testing.T) {
	assert.False(t, KafkaConfig{}.Enabled())
	assert.True(t, KafkaConfig{Broker: "localhost:29092"}.Enabled())
}

func TestProducerConfigMap(t *testing.T) {
	cm := producerConfigMap(KafkaConfig{Broker: "broker:9092", Topic: "t"})

	servers, err := cm.Get("bootstrap.servers", "")
	require.NoError(t, err)
	assert.Equal(t, "broker:9092", servers)

	idempotent, err := cm.Get("enable.idempotence", false)
	require.NoError(t, err)
	assert.Equal(t, true, idempotent)

	acks, err := cm.Get("acks", "")
	require.NoError(t, err)
	assert.Equal(t, "all", acks)
}
