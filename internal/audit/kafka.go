package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type kafkaMessage struct {
	Actor    string    `json:"actor,omitempty"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id,omitempty"`
	Metadata any       `json:"metadata,omitempty"`
	At       time.Time `json:"at"`
}

// messageWriter is the part of *kafka.Writer the sink needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publishes events keyed by entity id so one reservation's
// history stays on one partition.
type KafkaSink struct {
	writer messageWriter
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (k *KafkaSink) Write(ctx context.Context, ev Event) error {
	msg := kafkaMessage{
		Actor:    ev.Actor,
		Action:   ev.Action,
		Entity:   ev.Entity,
		Metadata: ev.Metadata,
		At:       ev.At,
	}

	var key []byte
	if ev.EntityID != nil {
		msg.EntityID = ev.EntityID.String()
		key = []byte(msg.EntityID)
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: b,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(ev.Action)},
		},
	})
}

func (k *KafkaSink) Close() error {
	return k.writer.Close()
}
