package service

import (
	"context"

	"cafe-pos/kitchen-svc/internal/domain"
	"cafe-pos/kitchen-svc/internal/printer"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type TicketPrinter interface {
	Print(ticketID string, text string) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessTicket(msg domain.KafkaMessage) error
}

var (
	_ MessageReader     = (*kafka.Reader)(nil)
	_ TicketPrinter     = (*printer.LogPrinter)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
