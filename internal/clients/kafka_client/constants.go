package kafka_client

import "time"

const (
	KAFKA_TOPIC_EMOTION_ANALYSES = "emotion.analyses" // one message per successful analysis
)

const (
	FLUSH_TIMEOUT   = 5 * time.Second
	PRODUCE_TIMEOUT = 2 * time.Second
)
