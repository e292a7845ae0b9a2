package layout

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Style carries every label and table metric of the quotation document.
type Style struct {
	Institution     string `validate:"required"`
	Subtitle        string
	DocLabel        string `validate:"required"`
	SectionTitle    string `validate:"required"`
	ContinuedSuffix string
	SummaryTitle    string `validate:"required"`
	Salutation      string
	Signatory       string

	TitleLabel  string `validate:"required"`
	ClientLabel string `validate:"required"`
	DateLabel   string `validate:"required"`

	SubtotalLabel string `validate:"required"`
	OverheadLabel string `validate:"required"`
	AdminFeeLabel string `validate:"required"`
	DiscountLabel string `validate:"required"`
	TotalLabel    string `validate:"required"`

	CurrencyPrefix string
	PageLabel      string `validate:"required,contains=%d"`
	DateLayout     string `validate:"required"`
	Locale         string `validate:"required,bcp47_language_tag"`

	BodySize     float64 `validate:"gt=0"`
	LineHeight   float64 `validate:"gt=0"`
	MinRowHeight float64 `validate:"gt=0"`
	RowPadding   float64 `validate:"gte=0"`
	CellPadding  float64 `validate:"gte=0"`
}

// DefaultStyle returns the stock quotation style.
func DefaultStyle() Style {
	return Style{
		Institution:     "Universitas Mulawarman",
		Subtitle:        "Badan Pengelola Usaha",
		DocLabel:        "QUOTE",
		SectionTitle:    "Line Items",
		ContinuedSuffix: " (continued)",
		SummaryTitle:    "Cost Summary",
		Salutation:      "Sincerely,",
		Signatory:       "Badan Pengelola Usaha",

		TitleLabel:  "Title",
		ClientLabel: "Client",
		DateLabel:   "Date",

		SubtotalLabel: "Subtotal",
		OverheadLabel: "Overhead",
		AdminFeeLabel: "Admin Fee",
		DiscountLabel: "Discount",
		TotalLabel:    "Total",

		CurrencyPrefix: "Rp ",
		PageLabel:      "Page %d of %d",
		DateLayout:     "02 Jan 2006 15:04",
		Locale:         "en",

		BodySize:     11,
		LineHeight:   13,
		MinRowHeight: 22,
		RowPadding:   8,
		CellPadding:  5,
	}
}

// Validate checks the style for missing labels and non-positive metrics.
func (s Style) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}
	return nil
}
