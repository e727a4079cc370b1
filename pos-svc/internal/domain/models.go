package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrSnapshotNotFound is returned by snapshot stores when no cart was saved yet.
var ErrSnapshotNotFound = errors.New("cart snapshot not found")

type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
}

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    string          `json:"category_id"`
	SubcategoryID string          `json:"subcategory_id"`
	Customizable  bool            `json:"customizable"`
	Description   string          `json:"description,omitempty"`
	Popular       bool            `json:"popular,omitempty"`
}

// CartLine holds a product snapshot with the unit price fixed at add time,
// size surcharge included.
type CartLine struct {
	Product        Product         `json:"product"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
	Customizations *Customizations `json:"customizations,omitempty"`
}

func (l CartLine) Extended() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Quote struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	DiscountCode string          `json:"discount_code,omitempty"`
}

type Currency struct {
	Symbol string `json:"symbol"`
	Code   string `json:"code"`
}

type OrderTicket struct {
	ID       string     `json:"id"`
	Lines    []CartLine `json:"lines"`
	Quote    Quote      `json:"quote"`
	Currency Currency   `json:"currency"`
	PlacedAt time.Time  `json:"placed_at"`
}

type KafkaMessage struct {
	Type      string      `json:"type"`
	Ticket    OrderTicket `json:"ticket"`
	Timestamp time.Time   `json:"timestamp"`
}
