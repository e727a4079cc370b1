package service

import (
	"cafe-pos/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// Amount pairs an exact value with its two-decimal display form.
type Amount struct {
	Value   decimal.Decimal `json:"value"`
	Display string          `json:"display"`
}

type PageView struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type CategoryTab struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type SubcategoryTab struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type ProductView struct {
	domain.Product
	PriceDisplay string `json:"price_display"`
}

type LineView struct {
	Index          int                    `json:"index"`
	ProductID      string                 `json:"product_id"`
	Name           string                 `json:"name"`
	Customizations *domain.Customizations `json:"customizations,omitempty"`
	Quantity       int                    `json:"quantity"`
	UnitPrice      Amount                 `json:"unit_price"`
	Extended       Amount                 `json:"extended"`
}

type CartView struct {
	Lines        []LineView      `json:"lines"`
	LineCount    int             `json:"line_count"`
	ItemCount    int             `json:"item_count"`
	Subtotal     Amount          `json:"subtotal"`
	Discount     Amount          `json:"discount"`
	Tax          Amount          `json:"tax"`
	Total        Amount          `json:"total"`
	DiscountCode string          `json:"discount_code,omitempty"`
	TaxLabel     string          `json:"tax_label"`
	Currency     domain.Currency `json:"currency"`
}

type StepView struct {
	Index       int      `json:"index"`
	Name        string   `json:"name"`
	Steps       []string `json:"steps"`
	Progress    int      `json:"progress"`
	ActionLabel string   `json:"action_label"`
	LastOrderID string   `json:"last_order_id,omitempty"`
}

type StorefrontView struct {
	Categories        []CategoryTab    `json:"categories"`
	ActiveCategory    string           `json:"active_category"`
	ActiveSubcategory string           `json:"active_subcategory"`
	Subcategories     []SubcategoryTab `json:"subcategories"`
	SubcategoryPage   PageView         `json:"subcategory_page"`
	Products          []ProductView    `json:"products"`
	ProductPage       PageView         `json:"product_page"`
	Loading           bool             `json:"loading"`
	Cart              CartView         `json:"cart"`
	Step              StepView         `json:"step"`
}

type OptionView struct {
	Label string `json:"label"`
	Price Amount `json:"price"`
}

type CustomizationView struct {
	Sizes   []OptionView          `json:"sizes"`
	Sugars  []OptionView          `json:"sugars"`
	Default domain.Customizations `json:"default"`
}

// Receipt is the last placed order with its QR image (PNG).
type Receipt struct {
	Ticket domain.OrderTicket `json:"ticket"`
	QRCode []byte             `json:"-"`
}
