package printer

import (
	"strings"

	"go.uber.org/zap"
)

// LogPrinter writes tickets to the service log, one entry per ticket.
type LogPrinter struct {
	logger *zap.Logger
}

func NewLogPrinter(logger *zap.Logger) *LogPrinter {
	return &LogPrinter{logger: logger}
}

func (p *LogPrinter) Print(ticketID string, text string) error {
	p.logger.Info("Kitchen ticket",
		zap.String("order_id", ticketID),
		zap.Strings("ticket", strings.Split(text, "\n")))
	return nil
}
