package collections_test

import (
	"testing"

	"quotedesk/collections"
	"quotedesk/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

func TestSetup_QuotesCollectionExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("collection %q not found after Setup(): %v", "quotes", err)
	}
	if col.Name != "quotes" {
		t.Errorf("expected collection name %q, got %q", "quotes", col.Name)
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	col, _ := app.FindCollectionByNameOrId("quotes")
	id := col.Id

	collections.Setup(app)

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("quotes missing after second Setup(): %v", err)
	}
	if col.Id != id {
		t.Errorf("quotes id changed after second Setup(): %s -> %s", id, col.Id)
	}
}

func TestSetup_QuotesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("quotes collection not found: %v", err)
	}

	required := map[string]bool{
		"title":         true,
		"client":        true,
		"contact":       false,
		"subtotal":      false,
		"total":         false,
		"overhead_pct":  false,
		"admin_fee_pct": false,
		"discount_pct":  false,
	}
	for name, want := range required {
		f := col.Fields.GetByName(name)
		if f == nil {
			t.Errorf("field %q not found", name)
			continue
		}
		switch ff := f.(type) {
		case *core.TextField:
			if ff.Required != want {
				t.Errorf("field %q Required = %v, want %v", name, ff.Required, want)
			}
		case *core.NumberField:
			if ff.Required != want {
				t.Errorf("field %q Required = %v, want %v", name, ff.Required, want)
			}
		default:
			t.Errorf("field %q has unexpected type %T", name, f)
		}
	}

	if _, ok := col.Fields.GetByName("items").(*core.JSONField); !ok {
		t.Errorf("items should be a JSONField, got %T", col.Fields.GetByName("items"))
	}
	for _, name := range []string{"created", "updated"} {
		if _, ok := col.Fields.GetByName(name).(*core.AutodateField); !ok {
			t.Errorf("%s should be an AutodateField, got %T", name, col.Fields.GetByName(name))
		}
	}
}

func TestSetup_QuoteRequiresTitleAndClient(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("quotes")

	rec := core.NewRecord(col)
	rec.Set("title", "Missing client")
	if err := app.Save(rec); err == nil {
		t.Error("expected save without client to fail")
	}
}
