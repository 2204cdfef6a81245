package kafka_client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/emotion-detector/internal/models"
)

// Producer publishes analysis events. Delivery reports are drained by a
// single goroutine that exits when the producer is closed.
type Producer struct {
	producer *kafka.Producer
	topic    string
	done     chan struct{}
}

func NewProducer(cfg KafkaConfig) (*Producer, error) {
	slog.Info("[KafkaClient] Initializing Kafka Producer...",
		slog.String("broker", cfg.Broker),
		slog.String("topic", cfg.Topic))

	p, err := kafka.NewProducer(producerConfigMap(cfg))
	if err != nil {
		return nil, fmt.Errorf("[KafkaClient] Failed to create producer: %w", err)
	}

	topic := cfg.Topic
	if topic == "" {
		topic = KAFKA_TOPIC_EMOTION_ANALYSES
	}

	producer := &Producer{
		producer: p,
		topic:    topic,
		done:     make(chan struct{}),
	}
	go producer.drainEvents()

	slog.Info("[KafkaClient] Kafka Producer initialized successfully")
	return producer, nil
}

func (p *Producer) drainEvents() {
	defer close(p.done)
	for ev := range p.producer.Events() {
		switch e := ev.(type) {
		case *kafka.Message:
			if e.TopicPartition.Error != nil {
				slog.Warn("[KafkaClient] Delivery failed",
					slog.String("key", string(e.Key)),
					slog.String("error", e.TopicPartition.Error.Error()))
			}
		case kafka.Error:
			slog.Error("[KafkaClient] Producer error",
				slog.String("code", e.Code().String()),
				slog.String("error", e.Error()))
		}
	}
}

// PublishAnalysis enqueues the event keyed by its request ID. It does not
// wait for the broker to acknowledge delivery.
func (p *Producer) PublishAnalysis(ctx context.Context, event models.AnalysisEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("[KafkaClient] failed to marshal analysis event: %w", err)
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.RequestID),
		Value:          payload,
		Timestamp:      event.AnalyzedAt,
	}

	deadline := time.Now().Add(PRODUCE_TIMEOUT)
	for {
		err = p.producer.Produce(msg, nil)
		if err == nil {
			break
		}
		kerr, ok := err.(kafka.Error)
		if !ok || kerr.Code() != kafka.ErrQueueFull || time.Now().After(deadline) {
			return fmt.Errorf("[KafkaClient] failed to produce analysis event: %w", err)
		}
		// local queue is full; give librdkafka a moment to drain it
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	slog.DebugContext(ctx, "[KafkaClient] Queued analysis event",
		slog.String("topic", p.topic),
		slog.String("request_id", event.RequestID))
	return nil
}

func (p *Producer) Close() {
	slog.Info("[KafkaClient] Shutting down Kafka producer...")
	if remaining := p.producer.Flush(int(FLUSH_TIMEOUT / time.Millisecond)); remaining > 0 {
		slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
			slog.Int("remaining", remaining))
	}
	p.producer.Close()
	<-p.done
	slog.Info("[KafkaClient] Kafka producer shut down")
}
