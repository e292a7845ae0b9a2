package layout

import (
	"strings"
	"time"
)

// Unit is the billing unit of a line item.
type Unit string

const (
	UnitHour    Unit = "HOUR"
	UnitDay     Unit = "DAY"
	UnitPackage Unit = "PACKAGE"
)

// Units lists the accepted billing units.
var Units = []Unit{UnitHour, UnitDay, UnitPackage}

// Valid reports whether u is one of the enumerated units.
func (u Unit) Valid() bool {
	for _, v := range Units {
		if u == v {
			return true
		}
	}
	return false
}

// DefaultSkill labels an item that carries no skill.
const DefaultSkill = "General"

// Placeholder is drawn for absent required text.
const Placeholder = "—"

// LineItem is one billed person in a quotation, in presentation order.
type LineItem struct {
	PersonID   string
	PersonName string
	SkillLabel string
	Unit       Unit
	Quantity   int
}

// Quotation is the read-only input of a document build. Percentages are
// fractions (0.15 is 15%). Total is printed as given and never recomputed.
type Quotation struct {
	ID          string
	Title       string
	Client      string
	Contact     string
	CreatedAt   time.Time
	Items       []LineItem
	Subtotal    float64
	Total       float64
	OverheadPct float64
	AdminFeePct float64
	DiscountPct float64
}

// WithDefaults returns a copy of it with display fallbacks filled in:
// the person ID stands in for a missing name and DefaultSkill for a
// missing skill.
func (it LineItem) WithDefaults() LineItem {
	it.PersonName = strings.TrimSpace(it.PersonName)
	if it.PersonName == "" {
		it.PersonName = it.PersonID
	}
	if it.PersonName == "" {
		it.PersonName = Placeholder
	}
	it.SkillLabel = strings.TrimSpace(it.SkillLabel)
	if it.SkillLabel == "" {
		it.SkillLabel = DefaultSkill
	}
	if it.Unit == "" {
		it.Unit = Unit(Placeholder)
	}
	return it
}

// WithDefaults returns a copy of q whose optional fields and items carry
// their display fallbacks. The item slice is copied, never aliased.
func (q Quotation) WithDefaults() Quotation {
	if strings.TrimSpace(q.Title) == "" {
		q.Title = Placeholder
	}
	if strings.TrimSpace(q.Client) == "" {
		q.Client = Placeholder
	}
	q.Contact = strings.TrimSpace(q.Contact)

	items := make([]LineItem, len(q.Items))
	for i, it := range q.Items {
		items[i] = it.WithDefaults()
	}
	q.Items = items
	return q
}
