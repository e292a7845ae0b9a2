package layout

import (
	"fmt"
	"testing"
	"time"
	"unicode/utf8"
)

// monoMeasurer gives every rune half the font size in width, so an 11pt
// run is 5.5pt per character.
type monoMeasurer struct{}

func (monoMeasurer) Width(text string, _ FontStyle, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size / 2
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewQuoteEngine(DefaultStyle(), monoMeasurer{})
	if err != nil {
		t.Fatalf("NewQuoteEngine() error = %v", err)
	}
	return e
}

func testQuote(items int) Quotation {
	q := Quotation{
		ID:          "q-001",
		Title:       "Website Development",
		Client:      "PT Maju Jaya",
		Contact:     "budi@example.com",
		CreatedAt:   time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC),
		Subtotal:    100000,
		Total:       120750,
		OverheadPct: 0.15,
		AdminFeePct: 0.05,
	}
	for i := 0; i < items; i++ {
		q.Items = append(q.Items, LineItem{
			PersonID:   fmt.Sprintf("p-%d", i+1),
			PersonName: fmt.Sprintf("Person %d", i+1),
			SkillLabel: "Backend",
			Unit:       UnitDay,
			Quantity:   2,
		})
	}
	return q
}

func blockInstructions(p Page, block Block) []Instruction {
	var out []Instruction
	for _, in := range p.Instructions {
		if in.Block == block {
			out = append(out, in)
		}
	}
	return out
}

func hasBlock(p Page, block Block) bool {
	return len(blockInstructions(p, block)) > 0
}

// rowBorders returns the outline rectangle of every table row on p.
func rowBorders(p Page) []Instruction {
	var out []Instruction
	for _, in := range blockInstructions(p, BlockTableRow) {
		if in.Kind == KindRect && in.Fill == nil {
			out = append(out, in)
		}
	}
	return out
}

func findText(p Page, block Block, text string) (Instruction, bool) {
	for _, in := range blockInstructions(p, block) {
		if in.Kind == KindText && in.Text == text {
			return in, true
		}
	}
	return Instruction{}, false
}
