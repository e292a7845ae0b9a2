package layout

import "testing"

func TestQuotation_WithDefaults(t *testing.T) {
	q := Quotation{
		ID: "q-1",
		Items: []LineItem{
			{PersonID: "p-1", Unit: UnitHour, Quantity: 1},
			{PersonID: "p-2", PersonName: "  Sari  ", SkillLabel: "UX", Unit: UnitDay, Quantity: 2},
		},
	}

	got := q.WithDefaults()

	if got.Title != Placeholder || got.Client != Placeholder {
		t.Errorf("title/client = %q/%q, want placeholders", got.Title, got.Client)
	}
	if got.Items[0].PersonName != "p-1" || got.Items[0].SkillLabel != DefaultSkill {
		t.Errorf("item 0 = %+v, want id as name and default skill", got.Items[0])
	}
	if got.Items[1].PersonName != "Sari" || got.Items[1].SkillLabel != "UX" {
		t.Errorf("item 1 = %+v, want trimmed name and own skill", got.Items[1])
	}
	if q.Items[0].PersonName != "" {
		t.Error("WithDefaults modified the caller's items")
	}
}

func TestUnit_Valid(t *testing.T) {
	for _, u := range Units {
		if !u.Valid() {
			t.Errorf("%q should be valid", u)
		}
	}
	if Unit("WEEK").Valid() {
		t.Error("WEEK should not be valid")
	}
}
