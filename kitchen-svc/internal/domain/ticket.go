package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const MessageOrderPlaced = "order_placed"

type Customizations struct {
	Size  string `json:"size"`
	Sugar string `json:"sugar"`
}

type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TicketLine struct {
	Product        Product         `json:"product"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
	Customizations *Customizations `json:"customizations,omitempty"`
}

type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type Currency struct {
	Symbol string `json:"symbol"`
	Code   string `json:"code"`
}

// OrderTicket is the kitchen's view of a placed order; unknown fields are ignored.
type OrderTicket struct {
	ID       string       `json:"id"`
	Lines    []TicketLine `json:"lines"`
	Quote    Quote        `json:"quote"`
	Currency Currency     `json:"currency"`
	PlacedAt time.Time    `json:"placed_at"`
}

type KafkaMessage struct {
	Type      string      `json:"type"`
	Ticket    OrderTicket `json:"ticket"`
	Timestamp time.Time   `json:"timestamp"`
}
