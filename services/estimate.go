package services

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EstimateRequest is the body of a quote estimate. Nil percentages take
// the Default* values.
type EstimateRequest struct {
	Items       []QuoteItem `json:"items"`
	OverheadPct *float64    `json:"overheadPct"`
	AdminFeePct *float64    `json:"adminFeePct"`
	DiscountPct *float64    `json:"discountPct"`
}

// Estimate is the priced result returned to the caller.
type Estimate struct {
	QuoteTotals
	Items []QuoteItem `json:"items"`
}

func pctOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// EstimateQuote prices every item at DefaultRateIDR and applies the
// overhead, admin fee and discount.
func EstimateQuote(req EstimateRequest) (Estimate, error) {
	if err := validation.Validate(req.Items); err != nil {
		return Estimate{}, fmt.Errorf("%w: items: %v", ErrInvalidQuote, err)
	}

	pct := quotePercents{
		Overhead: pctOr(req.OverheadPct, DefaultOverheadPct),
		AdminFee: pctOr(req.AdminFeePct, DefaultAdminFeePct),
		Discount: pctOr(req.DiscountPct, DefaultDiscountPct),
	}
	if err := pct.Validate(); err != nil {
		return Estimate{}, fmt.Errorf("%w: %v", ErrInvalidQuote, err)
	}

	lines := make([]PricedLine, len(req.Items))
	for i, it := range req.Items {
		lines[i] = PricedLine{Quantity: it.Quantity}
	}

	items := req.Items
	if items == nil {
		items = []QuoteItem{}
	}
	return Estimate{
		QuoteTotals: CalcQuoteTotals(lines, pct.Overhead, pct.AdminFee, pct.Discount),
		Items:       items,
	}, nil
}
