package event

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/IBM/sarama"

	"github.com/showai/connect4-engine/internal/domain"
)

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// MoveEvent is the analytics payload emitted for every answered request.
type MoveEvent struct {
	Event      string `json:"event"`
	RequestID  string `json:"requestId"`
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
	Pieces     int    `json:"pieces"`
	Column     *int   `json:"column"`
	Cached     bool   `json:"cached"`
	DurationMs int64  `json:"duration_ms"`
}

func NewProducer(brokers []string, topic string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	// SASL for hosted brokers
	if user := os.Getenv("KAFKA_USER"); user != "" {
		config.Net.SASL.Enable = true
		config.Net.SASL.User = user
		config.Net.SASL.Password = os.Getenv("KAFKA_PASSWORD")
		config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		config.Net.TLS.Enable = true
		config.Net.TLS.Config = &tls.Config{}
	}

	p, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return NewProducerWith(p, topic), nil
}

// NewProducerWith wraps an existing sarama producer.
func NewProducerWith(p sarama.SyncProducer, topic string) *Producer {
	return &Producer{producer: p, topic: topic}
}

// PublishMove emits a MOVE_COMPUTED event keyed by request ID.
func (p *Producer) PublishMove(ctx context.Context, rec domain.MoveRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	event := MoveEvent{
		Event:      "MOVE_COMPUTED",
		RequestID:  rec.RequestID,
		Rows:       rec.Rows,
		Cols:       rec.Cols,
		Pieces:     rec.Pieces,
		Column:     rec.Column,
		Cached:     rec.Cached,
		DurationMs: rec.DurationMs,
	}

	val, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode move event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(rec.RequestID),
		Value: sarama.ByteEncoder(val),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to send move event: %w", err)
	}
	log.Printf("[KAFKA] Move event sent for request %s", rec.RequestID)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
