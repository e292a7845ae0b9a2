package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/go-pdf/fpdf"
	"golang.org/x/sync/semaphore"

	"quotedesk/layout"
)

const pdfFontFamily = "QuoteSans"

// QuoteRenderer lays out quotations and serializes them. It holds only
// immutable state and may be shared between requests.
type QuoteRenderer struct {
	engine *layout.Engine
	fonts  *layout.FontSet
	sem    *semaphore.Weighted
}

// RendererOption configures a QuoteRenderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	maxConcurrent int
}

// WithMaxConcurrent caps the number of PDFs serialized at once.
// Values below one are ignored.
func WithMaxConcurrent(n int) RendererOption {
	return func(c *rendererConfig) {
		if n > 0 {
			c.maxConcurrent = n
		}
	}
}

// NewQuoteRenderer loads the fonts and builds an A4 engine for style.
func NewQuoteRenderer(style layout.Style, opts ...RendererOption) (*QuoteRenderer, error) {
	cfg := rendererConfig{maxConcurrent: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}

	fonts, err := layout.LoadDefaultFonts()
	if err != nil {
		return nil, err
	}
	engine, err := layout.NewQuoteEngine(style, fonts)
	if err != nil {
		return nil, err
	}
	return &QuoteRenderer{
		engine: engine,
		fonts:  fonts,
		sem:    semaphore.NewWeighted(int64(cfg.maxConcurrent)),
	}, nil
}

// Style returns the document style of the renderer.
func (r *QuoteRenderer) Style() layout.Style {
	return r.engine.Style()
}

// GeneratePDF lays out q and returns the PDF bytes. It blocks while the
// renderer is at its concurrency limit and fails if ctx ends first.
func (r *QuoteRenderer) GeneratePDF(ctx context.Context, q layout.Quotation) ([]byte, error) {
	doc, err := r.engine.Build(q)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out quote: %w", err)
	}

	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("acquire render slot: %w", err)
	}
	defer r.sem.Release(1)

	return RenderQuotePDF(doc, r.fonts)
}

// GenerateExcel returns the quote as an xlsx workbook.
func (r *QuoteRenderer) GenerateExcel(q layout.Quotation) ([]byte, error) {
	return GenerateQuoteExcel(q, r.engine.Style())
}

// RenderQuotePDF writes every page of doc with go-pdf/fpdf. The fonts must
// be the set the document was measured with.
func RenderQuotePDF(doc *layout.Document, fonts *layout.FontSet) ([]byte, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, errors.New("failed to generate quote PDF: empty document")
	}
	if fonts == nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", layout.ErrAssetUnavailable)
	}

	g := doc.Geometry
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.Width, Ht: g.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "", fonts.TTF(layout.Regular))
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "B", fonts.TTF(layout.Bold))

	for _, p := range doc.Pages {
		pdf.AddPage()
		for _, in := range p.Instructions {
			drawInstruction(pdf, g.Height, in)
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// drawInstruction paints one instruction. Layout coordinates grow upward
// from the bottom edge; fpdf's grow downward from the top.
func drawInstruction(pdf *fpdf.Fpdf, pageHeight float64, in layout.Instruction) {
	switch in.Kind {
	case layout.KindRect:
		style := ""
		if in.Fill != nil {
			pdf.SetFillColor(int(in.Fill.R), int(in.Fill.G), int(in.Fill.B))
			style += "F"
		}
		if in.Stroke != nil {
			pdf.SetDrawColor(int(in.Stroke.R), int(in.Stroke.G), int(in.Stroke.B))
			pdf.SetLineWidth(in.LineWidth)
			style += "D"
		}
		if style == "" {
			return
		}
		pdf.Rect(in.X, pageHeight-in.Y-in.H, in.W, in.H, style)

	case layout.KindLine:
		if in.Stroke != nil {
			pdf.SetDrawColor(int(in.Stroke.R), int(in.Stroke.G), int(in.Stroke.B))
		}
		pdf.SetLineWidth(in.LineWidth)
		pdf.Line(in.X, pageHeight-in.Y, in.X2, pageHeight-in.Y2)

	case layout.KindText, layout.KindPageNumber:
		fontStyle := ""
		if in.Font == layout.Bold {
			fontStyle = "B"
		}
		pdf.SetFont(pdfFontFamily, fontStyle, in.Size)
		pdf.SetTextColor(int(in.Color.R), int(in.Color.G), int(in.Color.B))
		pdf.Text(in.X, pageHeight-in.Y, in.Text)
	}
}
