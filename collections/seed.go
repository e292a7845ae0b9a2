package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type quoteItemDef struct {
	PersonID   string `json:"personId"`
	PersonName string `json:"personName"`
	SkillSlug  string `json:"skillSlug"`
	Unit       string `json:"unit"`
	Quantity   int    `json:"quantity"`
}

type quoteDef struct {
	title       string
	client      string
	contact     string
	subtotal    float64
	total       float64
	overheadPct float64
	adminFeePct float64
	discountPct float64
	items       []quoteItemDef
}

// sampleQuote is priced at the default rate of Rp 100.000 per unit:
// 23 units → 2.300.000, then ×1.15 ×1.05 ×0.90 → 2.499.525.
var sampleQuote = quoteDef{
	title:       "Sistem Informasi Akademik — Tahap 1",
	client:      "Fakultas Ekonomi dan Bisnis",
	contact:     "akademik@feb.unmul.ac.id",
	subtotal:    2300000,
	total:       2499525,
	overheadPct: 0.15,
	adminFeePct: 0.05,
	discountPct: 0.10,
	items: []quoteItemDef{
		{PersonID: "p-001", PersonName: "Andi Pratama", SkillSlug: "backend-development", Unit: "DAY", Quantity: 10},
		{PersonID: "p-002", PersonName: "Siti Rahmawati", SkillSlug: "ui-ux-design", Unit: "DAY", Quantity: 5},
		{PersonID: "p-003", PersonName: "Rizky Hidayat", SkillSlug: "", Unit: "HOUR", Quantity: 6},
		{PersonID: "p-004", PersonName: "", SkillSlug: "project_management", Unit: "PACKAGE", Quantity: 2},
	},
}

// Seed inserts one sample quote. It is safe to call on every startup
// because it returns early if any quote records already exist.
func Seed(app *pocketbase.PocketBase) error {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("seed: could not find quotes collection: %w", err)
	}
	existing, err := app.FindAllRecords(quotesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query quotes: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: quotes collection is empty – inserting sample quote …")

	rec := core.NewRecord(quotesCol)
	rec.Set("title", sampleQuote.title)
	rec.Set("client", sampleQuote.client)
	rec.Set("contact", sampleQuote.contact)
	rec.Set("items", sampleQuote.items)
	rec.Set("subtotal", sampleQuote.subtotal)
	rec.Set("total", sampleQuote.total)
	rec.Set("overhead_pct", sampleQuote.overheadPct)
	rec.Set("admin_fee_pct", sampleQuote.adminFeePct)
	rec.Set("discount_pct", sampleQuote.discountPct)

	if err := app.Save(rec); err != nil {
		return fmt.Errorf("seed: save quote %q: %w", sampleQuote.title, err)
	}

	log.Printf("seed: created quote %s (%d items)", rec.Id, len(sampleQuote.items))
	return nil
}
