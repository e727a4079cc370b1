package storage

import (
	"context"
	"encoding/json"
	"time"

	"cafe-pos/pos-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

const MessageOrderPlaced = "order_placed"

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaTicketPublisher struct {
	Writer MessageWriter
}

func NewKafkaTicketPublisher(writer MessageWriter) *KafkaTicketPublisher {
	return &KafkaTicketPublisher{Writer: writer}
}

func (p *KafkaTicketPublisher) PublishTicket(ctx context.Context, ticket domain.OrderTicket) error {
	payload, err := json.Marshal(domain.KafkaMessage{
		Type:      MessageOrderPlaced,
		Ticket:    ticket,
		Timestamp: time.Now(),
	})
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ticket.ID),
		Value: payload,
	})
}
