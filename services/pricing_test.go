package services

import "testing"

func TestCalcQuoteTotal(t *testing.T) {
	tests := []struct {
		name                        string
		subtotal                    float64
		overhead, adminFee, discount float64
		want                        float64
	}{
		{"defaults", 100000, 0.15, 0.05, 0, 120750},
		{"with discount", 2300000, 0.15, 0.05, 0.10, 2499525},
		{"no fees", 500000, 0, 0, 0, 500000},
		{"full discount", 100000, 0.15, 0.05, 1, 0},
		{"rounds half up", 1, 0.5, 0, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcQuoteTotal(tt.subtotal, tt.overhead, tt.adminFee, tt.discount)
			if got != tt.want {
				t.Errorf("CalcQuoteTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalcQuoteSubtotal(t *testing.T) {
	lines := []PricedLine{
		{Rate: 250000, Quantity: 2},
		{Rate: 0, Quantity: 3}, // falls back to the default rate
	}
	if got, want := CalcQuoteSubtotal(lines), 800000.0; got != want {
		t.Errorf("CalcQuoteSubtotal() = %v, want %v", got, want)
	}
	if got := CalcQuoteSubtotal(nil); got != 0 {
		t.Errorf("CalcQuoteSubtotal(nil) = %v, want 0", got)
	}
}

func TestCalcQuoteTotals(t *testing.T) {
	totals := CalcQuoteTotals([]PricedLine{{Rate: 50000, Quantity: 2}}, DefaultOverheadPct, DefaultAdminFeePct, DefaultDiscountPct)
	if totals.Subtotal != 100000 {
		t.Errorf("Subtotal = %v, want 100000", totals.Subtotal)
	}
	if totals.Total != 120750 {
		t.Errorf("Total = %v, want 120750", totals.Total)
	}
	if totals.OverheadPct != 0.15 || totals.AdminFeePct != 0.05 || totals.DiscountPct != 0 {
		t.Errorf("percentages not carried through: %+v", totals)
	}
}
