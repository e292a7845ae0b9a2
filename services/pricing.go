// Package services provides quote pricing, record mapping and document export.
package services

import "github.com/shopspring/decimal"

// Defaults applied by the estimator when a request omits them.
const (
	DefaultOverheadPct = 0.15
	DefaultAdminFeePct = 0.05
	DefaultDiscountPct = 0

	// DefaultRateIDR is charged when a person has no rate card for the unit.
	DefaultRateIDR = 100_000
)

// PricedLine is a quote line with its resolved rate.
type PricedLine struct {
	Rate     float64
	Quantity int
}

// QuoteTotals is the priced summary stored on a quote.
type QuoteTotals struct {
	Subtotal    float64 `json:"subtotal"`
	Total       float64 `json:"total"`
	OverheadPct float64 `json:"overheadPct"`
	AdminFeePct float64 `json:"adminFeePct"`
	DiscountPct float64 `json:"discountPct"`
}

// CalcQuoteSubtotal sums rate × quantity, using DefaultRateIDR for lines
// without a positive rate.
func CalcQuoteSubtotal(lines []PricedLine) float64 {
	sum := decimal.Zero
	for _, l := range lines {
		rate := l.Rate
		if rate <= 0 {
			rate = DefaultRateIDR
		}
		sum = sum.Add(decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum.InexactFloat64()
}

// CalcQuoteTotal returns round(subtotal × (1+overhead) × (1+adminFee) × (1−discount)).
func CalcQuoteTotal(subtotal, overheadPct, adminFeePct, discountPct float64) float64 {
	one := decimal.NewFromInt(1)
	total := decimal.NewFromFloat(subtotal).
		Mul(one.Add(decimal.NewFromFloat(overheadPct))).
		Mul(one.Add(decimal.NewFromFloat(adminFeePct))).
		Mul(one.Sub(decimal.NewFromFloat(discountPct))).
		Round(0)
	return total.InexactFloat64()
}

// CalcQuoteTotals prices lines and applies the three percentages.
func CalcQuoteTotals(lines []PricedLine, overheadPct, adminFeePct, discountPct float64) QuoteTotals {
	subtotal := CalcQuoteSubtotal(lines)
	return QuoteTotals{
		Subtotal:    subtotal,
		Total:       CalcQuoteTotal(subtotal, overheadPct, adminFeePct, discountPct),
		OverheadPct: overheadPct,
		AdminFeePct: adminFeePct,
		DiscountPct: discountPct,
	}
}
