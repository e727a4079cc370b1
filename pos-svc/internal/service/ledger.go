package service

import "cafe-pos/pos-svc/internal/domain"

// MaxLineQuantity caps a single line. Adds and updates past it saturate.
const MaxLineQuantity = 999

// Ledger is the ordered list of cart lines. Every line has quantity >= 1.
type Ledger struct {
	lines []domain.CartLine
}

func NewLedger(lines []domain.CartLine) *Ledger {
	l := &Ledger{}
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		line.Quantity = min(line.Quantity, MaxLineQuantity)
		line.Customizations = line.Customizations.Clone()
		l.lines = append(l.lines, line)
	}
	return l
}

// Add merges into the line with the same product id and equal customizations,
// or appends a new line priced at product price plus surcharge. Quantities
// below one are clamped to one and line totals never exceed MaxLineQuantity.
// It returns the index of the affected line.
func (l *Ledger) Add(product domain.Product, quantity int, customizations *domain.Customizations) int {
	quantity = clampQuantity(quantity)

	for i := range l.lines {
		line := &l.lines[i]
		if line.Product.ID == product.ID && line.Customizations.Equal(customizations) {
			if line.Quantity > MaxLineQuantity-quantity {
				line.Quantity = MaxLineQuantity
			} else {
				line.Quantity += quantity
			}
			return i
		}
	}

	l.lines = append(l.lines, domain.CartLine{
		Product:        product,
		UnitPrice:      UnitPrice(product, customizations),
		Quantity:       quantity,
		Customizations: customizations.Clone(),
	})
	return len(l.lines) - 1
}

// UpdateQuantity sets the quantity of line index, removing the line when
// quantity <= 0. Out-of-range indexes are ignored.
func (l *Ledger) UpdateQuantity(index, quantity int) bool {
	if !l.inRange(index) {
		return false
	}
	if quantity <= 0 {
		return l.Remove(index)
	}
	l.lines[index].Quantity = clampQuantity(quantity)
	return true
}

// Remove deletes line index; later lines shift down by one.
func (l *Ledger) Remove(index int) bool {
	if !l.inRange(index) {
		return false
	}
	l.lines = append(l.lines[:index], l.lines[index+1:]...)
	return true
}

func (l *Ledger) Clear() bool {
	if len(l.lines) == 0 {
		return false
	}
	l.lines = nil
	return true
}

func (l *Ledger) Len() int {
	return len(l.lines)
}

// ItemCount is the sum of quantities over all lines.
func (l *Ledger) ItemCount() int {
	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

// Lines returns a copy safe to hand to callers.
func (l *Ledger) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(l.lines))
	for i, line := range l.lines {
		line.Customizations = line.Customizations.Clone()
		out[i] = line
	}
	return out
}

func clampQuantity(quantity int) int {
	return max(1, min(quantity, MaxLineQuantity))
}

func (l *Ledger) inRange(index int) bool {
	return index >= 0 && index < len(l.lines)
}
