// Package events publishes completed-summary events to Kafka when brokers
// are configured.
package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// SummaryEvent notes a pipeline run that produced a summary.
type SummaryEvent struct {
	InputKind      string    `json:"input_kind"`
	Language       string    `json:"language"`
	Engine         string    `json:"engine"`
	SummaryLength  int       `json:"summary_length"`
	AudioFile      string    `json:"audio_file,omitempty"`
	ProcessingTime float64   `json:"processing_time"`
	CompletedAt    time.Time `json:"completed_at"`
}

// Producer publishes summary events. A nil Producer silently drops events,
// so callers need no configuration checks.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer connects to the Kafka brokers. Returns (nil, nil) when no
// brokers are configured.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{producer: producer, topic: topic}, nil
}

// PublishSummaryCompleted emits the event, best effort.
func (p *Producer) PublishSummaryCompleted(ev SummaryEvent) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		log.Printf("Failed to publish summary event: %v", err)
	}
}

// Close shuts the underlying producer down.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
