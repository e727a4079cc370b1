package service

import (
	"fmt"
	"strings"

	"cafe-pos/kitchen-svc/internal/domain"
)

const shortIDLen = 8

// RenderTicket lays a ticket out the way the kitchen printer shows it:
// a header, one row per line, then the total.
func RenderTicket(ticket domain.OrderTicket) string {
	var b strings.Builder

	id := ticket.ID
	if len(id) > shortIDLen {
		id = id[:shortIDLen]
	}
	fmt.Fprintf(&b, "ORDER %s", strings.ToUpper(id))
	if !ticket.PlacedAt.IsZero() {
		fmt.Fprintf(&b, "  %s", ticket.PlacedAt.Format("15:04"))
	}
	b.WriteString("\n")

	for _, line := range ticket.Lines {
		fmt.Fprintf(&b, "%d x %s", line.Quantity, line.Product.Name)
		if c := line.Customizations; c != nil {
			fmt.Fprintf(&b, " (%s, %s)", c.Size, c.Sugar)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "TOTAL %s%s", ticket.Currency.Symbol, ticket.Quote.Total.StringFixed(2))
	return b.String()
}
