// Package layout turns a quotation into a paginated list of drawing
// instructions on a fixed page geometry. It performs no I/O: fonts are
// loaded by the caller and the resulting Document is serialized elsewhere.
package layout

import (
	"fmt"
)

// Engine lays out quotation documents. It is immutable once constructed
// and safe for concurrent use by multiple goroutines.
type Engine struct {
	geometry PageGeometry
	columns  []ColumnSpec
	style    Style
	measure  Measurer
	money    MoneyFormatter
}

// NewEngine validates the configuration once and returns an engine.
func NewEngine(g PageGeometry, cols []ColumnSpec, style Style, m Measurer) (*Engine, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: no text metrics", ErrAssetUnavailable)
	}
	if err := ValidateColumns(g, cols); err != nil {
		return nil, err
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}
	money, err := NewMoneyFormatter(style.Locale, style.CurrencyPrefix)
	if err != nil {
		return nil, err
	}

	return &Engine{
		geometry: g,
		columns:  append([]ColumnSpec(nil), cols...),
		style:    style,
		measure:  m,
		money:    money,
	}, nil
}

// NewQuoteEngine returns an A4 engine with the default columns.
func NewQuoteEngine(style Style, m Measurer) (*Engine, error) {
	return NewEngine(A4, QuoteColumns(), style, m)
}

// Geometry returns the page geometry of the engine.
func (e *Engine) Geometry() PageGeometry {
	return e.geometry
}

// Style returns the style the engine was built with.
func (e *Engine) Style() Style {
	return e.style
}

// Build lays out q. Either every page is returned or an error is; a
// failing build never yields a partial document.
func (e *Engine) Build(q Quotation) (*Document, error) {
	q = q.WithDefaults()

	b := &builder{e: e, pages: []Page{{Number: 1}}}
	c := NewCursor(e.geometry)

	c = b.headerBar(c, q)
	c = b.metaBox(c, q)

	rows := make([]rowLayout, len(q.Items))
	for i, it := range q.Items {
		rows[i] = b.measureRow(i, it)
	}
	if len(rows) > 0 {
		c = b.tableStart(c, rows[0])
	}
	c = b.sectionTitle(c, e.style.SectionTitle)
	c = b.tableHeader(c)

	var err error
	for _, row := range rows {
		c, err = b.tableRow(c, row)
		if err != nil {
			return nil, fmt.Errorf("layout quote %s: %w", q.ID, err)
		}
	}
	c = c.Advance(tableGap)

	if c, err = b.totalsBox(c, q); err != nil {
		return nil, fmt.Errorf("layout quote %s totals: %w", q.ID, err)
	}
	if _, err = b.signature(c); err != nil {
		return nil, fmt.Errorf("layout quote %s signature: %w", q.ID, err)
	}

	b.pageNumbers(e.geometry)

	return &Document{Geometry: e.geometry, Pages: b.pages}, nil
}
