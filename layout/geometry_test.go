package layout

import (
	"errors"
	"testing"
)

func TestValidateColumns(t *testing.T) {
	widen := QuoteColumns()
	widen[1].Width += 5

	zero := QuoteColumns()
	zero[0].Width = 0

	tests := []struct {
		name    string
		cols    []ColumnSpec
		wantErr bool
	}{
		{"default quote columns", QuoteColumns(), false},
		{"too wide", widen, true},
		{"missing column", QuoteColumns()[:4], true},
		{"zero width", zero, true},
		{"no columns", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumns(A4, tt.cols)
			if tt.wantErr && !errors.Is(err, ErrInvalidColumnLayout) {
				t.Errorf("ValidateColumns() error = %v, want ErrInvalidColumnLayout", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateColumns() unexpected error = %v", err)
			}
		})
	}
}

func TestContentWidth(t *testing.T) {
	g := PageGeometry{Width: 600, Height: 800, Margin: 50}
	if got := g.ContentWidth(); got != 500 {
		t.Errorf("ContentWidth() = %v, want 500", got)
	}
}

func TestNewEngine_RejectsColumnLayout(t *testing.T) {
	cols := QuoteColumns()
	cols[4].Width = 10

	_, err := NewEngine(A4, cols, DefaultStyle(), monoMeasurer{})
	if !errors.Is(err, ErrInvalidColumnLayout) {
		t.Errorf("NewEngine() error = %v, want ErrInvalidColumnLayout", err)
	}
}
