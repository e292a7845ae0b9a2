package layout

import (
	"fmt"
	"math"
)

// PageGeometry describes the fixed page canvas in points.
type PageGeometry struct {
	Width  float64
	Height float64
	Margin float64
}

// A4 is the portrait A4 page used for quotations.
var A4 = PageGeometry{Width: 595.28, Height: 841.89, Margin: 48}

// ContentWidth returns the drawable width between the left and right margins.
func (g PageGeometry) ContentWidth() float64 {
	return g.Width - 2*g.Margin
}

// Column keys understood by the table renderer.
const (
	ColNo    = "no"
	ColName  = "name"
	ColSkill = "skill"
	ColUnit  = "unit"
	ColQty   = "qty"
)

// ColumnSpec is one column of the line-item table.
type ColumnSpec struct {
	Key   string
	Label string
	Width float64
	Wrap  bool // wrap the cell text to the column width
}

// QuoteColumns returns the default line-item columns for A4.
func QuoteColumns() []ColumnSpec {
	return []ColumnSpec{
		{Key: ColNo, Label: "No", Width: 26},
		{Key: ColName, Label: "Name", Width: 210.28, Wrap: true},
		{Key: ColSkill, Label: "Skill", Width: 160, Wrap: true},
		{Key: ColUnit, Label: "Unit", Width: 60},
		{Key: ColQty, Label: "Qty", Width: 43},
	}
}

// columnTolerance absorbs float rounding in the width sum.
const columnTolerance = 0.01

// ValidateColumns checks that the column widths add up to the content width of g.
func ValidateColumns(g PageGeometry, cols []ColumnSpec) error {
	if len(cols) == 0 {
		return fmt.Errorf("%w: no columns configured", ErrInvalidColumnLayout)
	}

	var sum float64
	for _, c := range cols {
		if c.Width <= 0 {
			return fmt.Errorf("%w: column %q has width %.2f", ErrInvalidColumnLayout, c.Key, c.Width)
		}
		sum += c.Width
	}

	if math.Abs(sum-g.ContentWidth()) > columnTolerance {
		return fmt.Errorf("%w: columns sum to %.2f, content width is %.2f",
			ErrInvalidColumnLayout, sum, g.ContentWidth())
	}
	return nil
}
