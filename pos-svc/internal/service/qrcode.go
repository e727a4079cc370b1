package service

import (
	"fmt"

	"cafe-pos/pos-svc/internal/domain"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(ticket domain.OrderTicket) ([]byte, error) {
	qrData := fmt.Sprintf("%s/receipt.html?order_id=%s&total=%s",
		g.BaseURL, ticket.ID, ticket.Quote.Total.StringFixed(2))
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
