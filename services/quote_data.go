package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"quotedesk/layout"
)

var (
	// ErrQuoteNotFound is returned when no quote record has the requested id.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrInvalidQuote is returned when a stored quote fails validation.
	ErrInvalidQuote = errors.New("invalid quote")
)

// QuoteItem mirrors one element of the quotes.items JSON field.
type QuoteItem struct {
	PersonID   string `json:"personId"`
	PersonName string `json:"personName,omitempty"`
	SkillSlug  string `json:"skillSlug,omitempty"`
	Unit       string `json:"unit"`
	Quantity   int    `json:"quantity"`
}

// Validate implements validation.Validatable.
func (it QuoteItem) Validate() error {
	return validation.ValidateStruct(&it,
		validation.Field(&it.PersonID, validation.Required),
		validation.Field(&it.Unit, validation.Required,
			validation.In(string(layout.UnitHour), string(layout.UnitDay), string(layout.UnitPackage))),
		validation.Field(&it.Quantity, validation.Required, validation.Min(1)),
	)
}

// quotePercents holds the three independently stored fractions.
type quotePercents struct {
	Overhead float64
	AdminFee float64
	Discount float64
}

func (p quotePercents) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Overhead, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&p.AdminFee, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&p.Discount, validation.Min(0.0), validation.Max(1.0)),
	)
}

// skillLabel turns a slug such as "backend-dev" into "Backend Dev".
func skillLabel(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.NewReplacer("-", " ", "_", " ").Replace(slug))
}

// QuotationFromRecord maps a quotes record onto the typed layout model,
// validating the items and percentages and applying display defaults.
func QuotationFromRecord(rec *core.Record) (layout.Quotation, error) {
	var items []QuoteItem
	if raw := strings.TrimSpace(rec.GetString("items")); raw != "" && raw != "null" {
		if err := rec.UnmarshalJSONField("items", &items); err != nil {
			return layout.Quotation{}, fmt.Errorf("%w: items: %v", ErrInvalidQuote, err)
		}
	}
	if err := validation.Validate(items); err != nil {
		return layout.Quotation{}, fmt.Errorf("%w: items: %v", ErrInvalidQuote, err)
	}

	pct := quotePercents{
		Overhead: rec.GetFloat("overhead_pct"),
		AdminFee: rec.GetFloat("admin_fee_pct"),
		Discount: rec.GetFloat("discount_pct"),
	}
	if err := pct.Validate(); err != nil {
		return layout.Quotation{}, fmt.Errorf("%w: %v", ErrInvalidQuote, err)
	}

	q := layout.Quotation{
		ID:          rec.Id,
		Title:       rec.GetString("title"),
		Client:      rec.GetString("client"),
		Contact:     rec.GetString("contact"),
		CreatedAt:   rec.GetDateTime("created").Time(),
		Subtotal:    rec.GetFloat("subtotal"),
		Total:       rec.GetFloat("total"),
		OverheadPct: pct.Overhead,
		AdminFeePct: pct.AdminFee,
		DiscountPct: pct.Discount,
	}
	for _, it := range items {
		q.Items = append(q.Items, layout.LineItem{
			PersonID:   it.PersonID,
			PersonName: it.PersonName,
			SkillLabel: skillLabel(it.SkillSlug),
			Unit:       layout.Unit(it.Unit),
			Quantity:   it.Quantity,
		})
	}

	return q.WithDefaults(), nil
}

// BuildQuotation loads the quote with the given id and maps it.
func BuildQuotation(app *pocketbase.PocketBase, id string) (layout.Quotation, error) {
	rec, err := app.FindRecordById("quotes", id)
	if err != nil {
		return layout.Quotation{}, lookupError(id, err)
	}
	return QuotationFromRecord(rec)
}

// lookupError reports a missing row as ErrQuoteNotFound and keeps any other
// failure as the cause.
func lookupError(id string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("quote %s: %w", id, ErrQuoteNotFound)
	}
	return fmt.Errorf("failed to load quote %s: %w", id, err)
}
