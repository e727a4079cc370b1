package service

import (
	"errors"
	"fmt"
	"strings"

	"cafe-pos/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownDiscount = errors.New("unknown discount code")
	ErrInvalidDiscount = errors.New("invalid discount value")
)

var hundred = decimal.NewFromInt(100)

// UnitPrice is the product price with the customization surcharge folded in.
func UnitPrice(product domain.Product, customizations *domain.Customizations) decimal.Decimal {
	return product.Price.Add(customizations.Surcharge())
}

// Discount is either a percentage of the subtotal or a fixed amount.
type Discount struct {
	Code    string
	Percent bool
	Value   decimal.Decimal
}

// ParseDiscount reads "10%" as ten percent and "5.00" as a fixed amount.
func ParseDiscount(code, raw string) (Discount, error) {
	raw = strings.TrimSpace(raw)
	d := Discount{Code: normalizeCode(code)}
	if d.Code == "" {
		return Discount{}, fmt.Errorf("%w: empty code", ErrInvalidDiscount)
	}

	if strings.HasSuffix(raw, "%") {
		d.Percent = true
		raw = strings.TrimSuffix(raw, "%")
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return Discount{}, fmt.Errorf("%w: %s: %v", ErrInvalidDiscount, code, err)
	}
	if value.IsNegative() || (d.Percent && value.GreaterThan(hundred)) {
		return Discount{}, fmt.Errorf("%w: %s: %s out of range", ErrInvalidDiscount, code, raw)
	}
	d.Value = value
	return d, nil
}

// Amount never exceeds the subtotal.
func (d Discount) Amount(subtotal decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	if d.Percent {
		amount = subtotal.Mul(d.Value).Div(hundred)
	} else {
		amount = d.Value
	}
	return decimal.Min(amount, subtotal)
}

type Pricing struct {
	taxRate   decimal.Decimal
	discounts map[string]Discount
}

func NewPricing(taxRate decimal.Decimal, discountCodes map[string]string) (*Pricing, error) {
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("negative tax rate %s", taxRate)
	}
	p := &Pricing{
		taxRate:   taxRate,
		discounts: make(map[string]Discount, len(discountCodes)),
	}
	for code, raw := range discountCodes {
		d, err := ParseDiscount(code, raw)
		if err != nil {
			return nil, err
		}
		p.discounts[d.Code] = d
	}
	return p, nil
}

func (p *Pricing) TaxRate() decimal.Decimal {
	return p.taxRate
}

func (p *Pricing) Discount(code string) (Discount, error) {
	d, ok := p.discounts[normalizeCode(code)]
	if !ok {
		return Discount{}, ErrUnknownDiscount
	}
	return d, nil
}

func (p *Pricing) Subtotal(lines []domain.CartLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Extended())
	}
	return subtotal
}

func (p *Pricing) Tax(taxable decimal.Decimal) decimal.Decimal {
	return taxable.Mul(p.taxRate)
}

// Quote computes every figure from the lines on each call; nothing is rounded.
// An empty or unknown code means no discount.
func (p *Pricing) Quote(lines []domain.CartLine, discountCode string) domain.Quote {
	q := domain.Quote{
		Subtotal: p.Subtotal(lines),
		Discount: decimal.Zero,
	}
	if d, err := p.Discount(discountCode); err == nil {
		q.Discount = d.Amount(q.Subtotal)
		q.DiscountCode = d.Code
	}
	taxable := q.Subtotal.Sub(q.Discount)
	q.Tax = p.Tax(taxable)
	q.Total = taxable.Add(q.Tax)
	return q
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
