package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidCustomization = errors.New("invalid customization")

type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

type Sugar string

const (
	SugarNone   Sugar = "No Sugar"
	SugarLess   Sugar = "Less Sugar"
	SugarNormal Sugar = "Normal Sugar"
)

// Option is one selectable customization value and its price delta.
type Option struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// Declared order is the order offered by the customize dialog.
var (
	SizeOptions = []Option{
		{Label: string(SizeSmall), Price: decimal.Zero},
		{Label: string(SizeMedium), Price: decimal.RequireFromString("0.50")},
		{Label: string(SizeLarge), Price: decimal.RequireFromString("1.00")},
	}
	SugarOptions = []Option{
		{Label: string(SugarNone), Price: decimal.Zero},
		{Label: string(SugarLess), Price: decimal.Zero},
		{Label: string(SugarNormal), Price: decimal.Zero},
	}
)

func lookupOption(options []Option, label string) (Option, bool) {
	for _, opt := range options {
		if opt.Label == label {
			return opt, true
		}
	}
	return Option{}, false
}

func (s Size) Valid() bool {
	_, ok := lookupOption(SizeOptions, string(s))
	return ok
}

func (s Size) Delta() decimal.Decimal {
	opt, _ := lookupOption(SizeOptions, string(s))
	return opt.Price
}

func (s Sugar) Valid() bool {
	_, ok := lookupOption(SugarOptions, string(s))
	return ok
}

func (s Sugar) Delta() decimal.Decimal {
	opt, _ := lookupOption(SugarOptions, string(s))
	return opt.Price
}

type Customizations struct {
	Size  Size  `json:"size"`
	Sugar Sugar `json:"sugar"`
}

// DefaultCustomizations is what the customize dialog preselects.
func DefaultCustomizations() Customizations {
	return Customizations{Size: SizeSmall, Sugar: SugarNormal}
}

// Equal reports value equality. Two nil payloads are equal, nil and non-nil are not.
func (c *Customizations) Equal(other *Customizations) bool {
	if c == nil || other == nil {
		return c == nil && other == nil
	}
	return c.Size == other.Size && c.Sugar == other.Sugar
}

func (c *Customizations) Validate() error {
	if c == nil {
		return nil
	}
	if !c.Size.Valid() || !c.Sugar.Valid() {
		return ErrInvalidCustomization
	}
	return nil
}

// Surcharge is the price added on top of the product price. Zero for nil.
func (c *Customizations) Surcharge() decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	return c.Size.Delta().Add(c.Sugar.Delta())
}

func (c *Customizations) Clone() *Customizations {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
