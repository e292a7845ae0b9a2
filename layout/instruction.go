package layout

// Kind tags the variant held by an Instruction.
type Kind int

const (
	KindRect Kind = iota
	KindLine
	KindText
	KindPageNumber
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	case KindPageNumber:
		return "page-number"
	}
	return "unknown"
}

// Block names the visual region an instruction belongs to.
type Block string

const (
	BlockHeaderBar   Block = "header-bar"
	BlockMeta        Block = "meta"
	BlockSection     Block = "section-title"
	BlockTableHeader Block = "table-header"
	BlockTableRow    Block = "table-row"
	BlockTotals      Block = "totals"
	BlockSignature   Block = "signature"
	BlockPageNumber  Block = "page-number"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Instruction is a single backend-agnostic drawing command. Coordinates are
// page-local points with the origin at the bottom-left corner and Y up.
//
//	KindRect:       X, Y (bottom-left), W, H, Fill and/or Stroke
//	KindLine:       X, Y to X2, Y2, Stroke, LineWidth
//	KindText:       X, Y (baseline start), Text, Font, Size, Color
//	KindPageNumber: as KindText, placed by the numbering pass
type Instruction struct {
	Kind  Kind
	Block Block

	X, Y   float64
	W, H   float64
	X2, Y2 float64

	Fill      *Color
	Stroke    *Color
	LineWidth float64

	Text  string
	Font  FontStyle
	Size  float64
	Color Color
}

// Rect returns a rectangle instruction. A nil fill or stroke is not painted.
func Rect(x, y, w, h float64, fill, stroke *Color) Instruction {
	in := Instruction{Kind: KindRect, X: x, Y: y, W: w, H: h, Fill: fill, Stroke: stroke}
	if stroke != nil {
		in.LineWidth = 1
	}
	return in
}

// Line returns a 1pt line segment instruction.
func Line(x1, y1, x2, y2 float64, stroke Color) Instruction {
	return Instruction{Kind: KindLine, X: x1, Y: y1, X2: x2, Y2: y2, Stroke: &stroke, LineWidth: 1}
}

// Text returns a text run starting at the baseline point (x, y).
func Text(x, y float64, s string, font FontStyle, size float64, c Color) Instruction {
	return Instruction{Kind: KindText, X: x, Y: y, Text: s, Font: font, Size: size, Color: c}
}

// Page is one fixed-size canvas of the finished document.
type Page struct {
	Number       int
	Instructions []Instruction
}

// Document is the ordered page list produced by Engine.Build.
type Document struct {
	Geometry PageGeometry
	Pages    []Page
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.Pages)
}
