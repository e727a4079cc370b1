package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cafe-pos/kitchen-svc/internal/domain"

	"go.uber.org/zap"
)

var ErrEmptyTicket = errors.New("ticket has no lines")

type Consumer struct {
	Reader  MessageReader
	Printer TicketPrinter
	logger  *zap.Logger
}

func NewConsumer(reader MessageReader, printer TicketPrinter, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader:  reader,
		Printer: printer,
		logger:  logger,
	}
}

// Start reads order tickets until ctx is cancelled. Bad messages are logged
// and skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.logger.Info("Starting Kitchen Service consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("Kitchen Service consumer stopped")
				return
			}
			c.logger.Error("Error reading message", zap.Error(err))
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.logger.Warn("Error unmarshaling message",
				zap.ByteString("key", message.Key),
				zap.Error(err))
			continue
		}

		if err := c.ProcessTicket(msg); err != nil {
			c.logger.Error("Error processing ticket",
				zap.String("order_id", msg.Ticket.ID),
				zap.Error(err))
		}
	}
}

// ProcessTicket prints order_placed tickets and ignores every other type.
func (c *Consumer) ProcessTicket(msg domain.KafkaMessage) error {
	if msg.Type != domain.MessageOrderPlaced {
		c.logger.Debug("Skipping message", zap.String("type", msg.Type))
		return nil
	}
	if len(msg.Ticket.Lines) == 0 {
		return fmt.Errorf("order %s: %w", msg.Ticket.ID, ErrEmptyTicket)
	}

	if err := c.Printer.Print(msg.Ticket.ID, RenderTicket(msg.Ticket)); err != nil {
		return fmt.Errorf("print order %s: %w", msg.Ticket.ID, err)
	}

	c.logger.Info("Ticket sent to kitchen",
		zap.String("order_id", msg.Ticket.ID),
		zap.Int("lines", len(msg.Ticket.Lines)))
	return nil
}
