package layout

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MoneyFormatter renders whole currency amounts with locale digit grouping.
type MoneyFormatter struct {
	printer *message.Printer
	prefix  string
}

// NewMoneyFormatter returns a formatter for the BCP 47 locale tag.
func NewMoneyFormatter(locale, prefix string) (MoneyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return MoneyFormatter{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return MoneyFormatter{printer: message.NewPrinter(tag), prefix: prefix}, nil
}

// Format rounds amount to a whole unit and groups its digits, e.g.
// "Rp 120,750" for English or "Rp 120.750" for Indonesian.
func (f MoneyFormatter) Format(amount float64) string {
	return f.prefix + f.printer.Sprintf("%d", int64(math.Round(amount)))
}

// FormatPercent renders a fraction as a whole percent, 0.15 -> "15%".
// Halves round away from zero, 0.125 -> "13%".
func FormatPercent(frac float64) string {
	return fmt.Sprintf("%d%%", int64(math.Round(frac*100)))
}

// FormatDate renders t with layout, or the placeholder for a zero time.
func FormatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format(layout)
}
