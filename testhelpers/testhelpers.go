// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"math"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotedesk/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// QuoteItem is one entry of the quotes.items JSON field as tests write it.
type QuoteItem struct {
	PersonID   string `json:"personId"`
	PersonName string `json:"personName,omitempty"`
	SkillSlug  string `json:"skillSlug,omitempty"`
	Unit       string `json:"unit"`
	Quantity   int    `json:"quantity"`
}

// CreateTestQuote creates a quote record for client "PT Maju Jaya" with the
// default percentages and returns it. Subtotal is priced at 100000 per unit.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, title string, items []QuoteItem) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	units := 0
	for _, it := range items {
		units += it.Quantity
	}
	subtotal := float64(units) * 100000

	record := core.NewRecord(col)
	record.Set("title", title)
	record.Set("client", "PT Maju Jaya")
	record.Set("contact", "budi@example.com")
	if items != nil {
		record.Set("items", items)
	}
	record.Set("subtotal", subtotal)
	record.Set("total", math.Round(subtotal*1.15*1.05))
	record.Set("overhead_pct", 0.15)
	record.Set("admin_fee_pct", 0.05)
	record.Set("discount_pct", 0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}
