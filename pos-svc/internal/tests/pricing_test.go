package tests

import (
	"testing"

	"cafe-pos/pos-svc/internal/domain"
	"cafe-pos/pos-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleLines() []domain.CartLine {
	return []domain.CartLine{
		{Product: latte, UnitPrice: dec("5.99"), Quantity: 2},
		{Product: cookie, UnitPrice: dec("3.00"), Quantity: 1},
	}
}

func TestUnitPrice_AddsSurcharge(t *testing.T) {
	tests := []struct {
		name           string
		customizations *domain.Customizations
		want           string
	}{
		{name: "no customizations", want: "5.99"},
		{name: "small", customizations: custom(domain.SizeSmall, domain.SugarNormal), want: "5.99"},
		{name: "medium", customizations: custom(domain.SizeMedium, domain.SugarNone), want: "6.49"},
		{name: "large", customizations: custom(domain.SizeLarge, domain.SugarLess), want: "6.99"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := service.UnitPrice(latte, testCase.customizations)
			assert.Equal(t, testCase.want, got.StringFixed(2))
		})
	}
}

func TestPricing_Quote(t *testing.T) {
	pricing, err := service.NewPricing(dec("0.006"), nil)
	require.NoError(t, err)

	q := pricing.Quote(sampleLines(), "")

	assert.Equal(t, "14.98", q.Subtotal.StringFixed(2))
	assert.True(t, q.Tax.Equal(dec("0.08988")))
	assert.Equal(t, "0.09", q.Tax.StringFixed(2))
	assert.Equal(t, "15.07", q.Total.StringFixed(2))
	assert.True(t, q.Discount.IsZero())
	assert.Empty(t, q.DiscountCode)
}

func TestPricing_QuoteEmptyCart(t *testing.T) {
	pricing, err := service.NewPricing(dec("0.006"), nil)
	require.NoError(t, err)

	q := pricing.Quote(nil, "")

	assert.True(t, q.Subtotal.IsZero())
	assert.True(t, q.Tax.IsZero())
	assert.True(t, q.Total.IsZero())
}

func TestPricing_TotalIsSubtotalPlusTax(t *testing.T) {
	pricing, err := service.NewPricing(dec("0.06"), nil)
	require.NoError(t, err)

	q := pricing.Quote(sampleLines(), "")

	assert.True(t, q.Total.Equal(q.Subtotal.Add(q.Tax)))
	assert.Equal(t, "0.90", q.Tax.StringFixed(2))
}

func TestPricing_Discounts(t *testing.T) {
	pricing, err := service.NewPricing(dec("0.006"), map[string]string{
		"welcome10": "10%",
		"fiver":     "5",
		"huge":      "100",
	})
	require.NoError(t, err)

	tests := []struct {
		name         string
		code         string
		lines        []domain.CartLine
		wantDiscount string
		wantTotal    string
		wantCode     string
	}{
		{
			name:         "percentage",
			code:         "WELCOME10",
			lines:        sampleLines(),
			wantDiscount: "1.50",
			wantTotal:    "13.56",
			wantCode:     "WELCOME10",
		},
		{
			name:         "code is case insensitive",
			code:         " welcome10 ",
			lines:        sampleLines(),
			wantDiscount: "1.50",
			wantTotal:    "13.56",
			wantCode:     "WELCOME10",
		},
		{
			name:         "fixed amount",
			code:         "FIVER",
			lines:        sampleLines(),
			wantDiscount: "5.00",
			wantTotal:    "10.04",
			wantCode:     "FIVER",
		},
		{
			name:         "capped at subtotal",
			code:         "HUGE",
			lines:        sampleLines(),
			wantDiscount: "14.98",
			wantTotal:    "0.00",
			wantCode:     "HUGE",
		},
		{
			name:         "unknown code ignored",
			code:         "NOPE",
			lines:        sampleLines(),
			wantDiscount: "0.00",
			wantTotal:    "15.07",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			q := pricing.Quote(testCase.lines, testCase.code)
			assert.Equal(t, testCase.wantDiscount, q.Discount.StringFixed(2))
			assert.Equal(t, testCase.wantTotal, q.Total.StringFixed(2))
			assert.Equal(t, testCase.wantCode, q.DiscountCode)
		})
	}
}

func TestParseDiscount(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		raw         string
		wantPercent bool
		wantValue   string
		wantErr     bool
	}{
		{name: "percent", code: "a", raw: "15%", wantPercent: true, wantValue: "15"},
		{name: "fixed", code: "b", raw: "2.50", wantValue: "2.5"},
		{name: "not a number", code: "c", raw: "abc", wantErr: true},
		{name: "negative", code: "d", raw: "-1", wantErr: true},
		{name: "over one hundred percent", code: "e", raw: "120%", wantErr: true},
		{name: "empty code", code: " ", raw: "1", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			d, err := service.ParseDiscount(testCase.code, testCase.raw)
			if testCase.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidDiscount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantPercent, d.Percent)
			assert.True(t, d.Value.Equal(dec(testCase.wantValue)))
		})
	}
}

func TestNewPricing_RejectsBadInput(t *testing.T) {
	_, err := service.NewPricing(dec("-0.1"), nil)
	assert.Error(t, err)

	_, err = service.NewPricing(dec("0.006"), map[string]string{"x": "ten"})
	assert.ErrorIs(t, err, service.ErrInvalidDiscount)
}

func TestStepTracker_Cycles(t *testing.T) {
	tracker := service.NewStepTracker()

	assert.Equal(t, domain.StepItems, tracker.Current())
	assert.Equal(t, 33, tracker.Progress())

	assert.Equal(t, domain.StepPayment, tracker.Advance())
	assert.Equal(t, 66, tracker.Progress())

	assert.Equal(t, domain.StepConfirmation, tracker.Advance())
	assert.Equal(t, 100, tracker.Progress())
	assert.True(t, tracker.Current().IsLast())

	assert.Equal(t, domain.StepItems, tracker.Advance())
	assert.Equal(t, "Items", tracker.Current().String())
}
