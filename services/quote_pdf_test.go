package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"quotedesk/layout"
)

func newTestRenderer(t *testing.T) *QuoteRenderer {
	t.Helper()
	r, err := NewQuoteRenderer(layout.DefaultStyle())
	if err != nil {
		t.Fatalf("NewQuoteRenderer() error = %v", err)
	}
	return r
}

func sampleQuotation(items int) layout.Quotation {
	q := layout.Quotation{
		ID:          "abc123",
		Title:       "Campus Portal Redesign",
		Client:      "Fakultas Teknik",
		Contact:     "0812-3456-7890",
		CreatedAt:   time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		Subtotal:    100000,
		Total:       120750,
		OverheadPct: 0.15,
		AdminFeePct: 0.05,
	}
	for i := 0; i < items; i++ {
		q.Items = append(q.Items, layout.LineItem{
			PersonID:   fmt.Sprintf("p%d", i+1),
			PersonName: fmt.Sprintf("Staff Member %d", i+1),
			SkillLabel: "Frontend Development",
			Unit:       layout.UnitHour,
			Quantity:   8,
		})
	}
	return q
}

func TestGeneratePDF_BasicQuote(t *testing.T) {
	r := newTestRenderer(t)

	result, err := r.GeneratePDF(context.Background(), sampleQuotation(3))
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) < 5 || string(result[:5]) != "%PDF-" {
		t.Fatalf("result does not start with PDF header")
	}
}

func TestGeneratePDF_EmptyItems(t *testing.T) {
	r := newTestRenderer(t)

	result, err := r.GeneratePDF(context.Background(), sampleQuotation(0))
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
}

func TestGeneratePDF_MultiPage(t *testing.T) {
	r := newTestRenderer(t)

	small, err := r.GeneratePDF(context.Background(), sampleQuotation(2))
	if err != nil {
		t.Fatalf("GeneratePDF(2) error = %v", err)
	}
	large, err := r.GeneratePDF(context.Background(), sampleQuotation(80))
	if err != nil {
		t.Fatalf("GeneratePDF(80) error = %v", err)
	}
	if len(large) <= len(small) {
		t.Errorf("80-item PDF (%d bytes) is not larger than 2-item PDF (%d bytes)", len(large), len(small))
	}
}

func TestGeneratePDF_UnpaginatableRow(t *testing.T) {
	r := newTestRenderer(t)
	q := sampleQuotation(1)
	q.Items[0].PersonName = strings.Repeat("Extraordinarily ", 400)

	_, err := r.GeneratePDF(context.Background(), q)
	if !errors.Is(err, layout.ErrUnpaginatableBlock) {
		t.Errorf("GeneratePDF() error = %v, want ErrUnpaginatableBlock", err)
	}
}

func TestRenderQuotePDF_Errors(t *testing.T) {
	fonts, err := layout.LoadDefaultFonts()
	if err != nil {
		t.Fatalf("LoadDefaultFonts() error = %v", err)
	}

	if _, err := RenderQuotePDF(nil, fonts); err == nil {
		t.Error("expected an error for a nil document")
	}

	doc := &layout.Document{Geometry: layout.A4, Pages: []layout.Page{{Number: 1}}}
	if _, err := RenderQuotePDF(doc, nil); !errors.Is(err, layout.ErrAssetUnavailable) {
		t.Errorf("RenderQuotePDF(nil fonts) error = %v, want ErrAssetUnavailable", err)
	}
}

func TestNewQuoteRenderer_InvalidStyle(t *testing.T) {
	style := layout.DefaultStyle()
	style.Institution = ""
	if _, err := NewQuoteRenderer(style); err == nil {
		t.Error("expected an error for a style without an institution")
	}
}

func TestGeneratePDF_CancelledWhileBusy(t *testing.T) {
	r, err := NewQuoteRenderer(layout.DefaultStyle(), WithMaxConcurrent(1))
	if err != nil {
		t.Fatalf("NewQuoteRenderer() error = %v", err)
	}

	// Hold the only slot so the next render has to wait.
	if err := r.sem.Acquire(context.Background(), 1); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer r.sem.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.GeneratePDF(ctx, sampleQuotation(1)); !errors.Is(err, context.Canceled) {
		t.Errorf("GeneratePDF() error = %v, want context.Canceled", err)
	}
}
