package layout

import (
	"fmt"
	"strconv"
)

// Block heights and offsets in points.
const (
	headerBandHeight = 70
	headerAdvance    = 110 // from the top margin to the metadata box

	metaHeight = 72
	metaGap    = 16

	sectionHeight = 24
	sectionGap    = 6

	tableHeaderHeight = 24
	rowBaseline       = 14
	rowSlack          = 4
	tableGap          = 16

	totalsBoxWidth  = 260
	totalsBoxHeight = 118
	totalsBlock     = 128
	totalsGap       = 16

	signatureHeight = 90
	signatureRule   = 220

	pageNumberSize = 9
	pageNumberDrop = 20 // below the bottom margin

	// tableReserve keeps the lower part of each page free of table rows.
	tableReserve = 120
	// summaryReserve applies to the totals and signature blocks.
	summaryReserve = 40
)

// continuationHeight is what a continuation page spends before its first row.
const continuationHeight = sectionHeight + sectionGap + tableHeaderHeight

var (
	colorAccent      = Color{5, 107, 143}
	colorWhite       = Color{255, 255, 255}
	colorBlack       = Color{0, 0, 0}
	colorLabel       = Color{51, 51, 64}
	colorHeading     = Color{38, 38, 51}
	colorHeaderText  = Color{38, 51, 77}
	colorRule        = Color{219, 219, 230}
	colorBoxFill     = Color{251, 251, 252}
	colorBoxBorder   = Color{224, 224, 230}
	colorTableFill   = Color{240, 245, 250}
	colorTableBorder = Color{209, 219, 230}
	colorRowBorder   = Color{217, 219, 230}
	colorZebra       = Color{246, 247, 249}
	colorSignature   = Color{153, 153, 166}
	colorPageNumber  = Color{102, 102, 115}
)

// builder owns the pages of one build. Renderers receive the cursor
// explicitly and return the advanced cursor.
type builder struct {
	e     *Engine
	pages []Page
}

func (b *builder) draw(c Cursor, block Block, ins ...Instruction) {
	p := &b.pages[c.Page]
	for _, in := range ins {
		in.Block = block
		p.Instructions = append(p.Instructions, in)
	}
}

func (b *builder) newPage(c Cursor) Cursor {
	b.pages = append(b.pages, Page{Number: len(b.pages) + 1})
	next := c.NextPage()
	next.Page = len(b.pages) - 1
	return next
}

// ensure makes room for a block of height h, starting a new page when the
// current one cannot hold it. The boolean reports whether a page was started.
func (b *builder) ensure(c Cursor, h, reserve float64) (Cursor, bool, error) {
	if h > c.Usable(reserve) {
		return c, false, fmt.Errorf("%w: needs %.1fpt, page offers %.1fpt",
			ErrUnpaginatableBlock, h, c.Usable(reserve))
	}
	if c.Fits(h, reserve) {
		return c, false, nil
	}
	return b.newPage(c), true, nil
}

func (b *builder) rightX(s string, font FontStyle, size, right float64) float64 {
	return right - b.e.measure.Width(s, font, size)
}

// headerBar draws the accent band across the top of the first page.
func (b *builder) headerBar(c Cursor, q Quotation) Cursor {
	g := c.Geometry
	st := b.e.style
	top := g.Height
	right := g.Width - g.Margin
	id := "#" + q.ID

	b.draw(c, BlockHeaderBar,
		Rect(0, top-headerBandHeight, g.Width, headerBandHeight, &colorAccent, nil),
		Text(g.Margin, top-42, st.Institution, Bold, 18, colorWhite),
		Text(g.Margin, top-58, st.Subtitle, Regular, 10, colorWhite),
		Text(b.rightX(st.DocLabel, Bold, 22, right), top-40, st.DocLabel, Bold, 22, colorWhite),
		Text(b.rightX(id, Regular, 10, right), top-58, id, Regular, 10, colorWhite),
	)
	return c.Advance(headerAdvance)
}

// metaBox draws the title, client and date box.
func (b *builder) metaBox(c Cursor, q Quotation) Cursor {
	g := c.Geometry
	st := b.e.style
	y := c.Y()
	leftX := g.Margin + 10
	rightX := g.Margin + g.ContentWidth() - 220

	client := q.Client
	if q.Contact != "" {
		client += " • " + q.Contact
	}

	b.draw(c, BlockMeta,
		Rect(g.Margin-1, y-metaHeight, g.ContentWidth()+2, metaHeight, &colorBoxFill, &colorBoxBorder),
		Text(leftX, y-18, st.TitleLabel, Bold, 10, colorLabel),
		Text(leftX, y-34, q.Title, Regular, 12, colorBlack),
		Text(leftX, y-52, st.ClientLabel, Bold, 10, colorLabel),
		Text(leftX, y-68, client, Regular, 12, colorBlack),
		Text(rightX, y-18, st.DateLabel, Bold, 10, colorLabel),
		Text(rightX, y-34, FormatDate(q.CreatedAt, st.DateLayout), Regular, 12, colorBlack),
	)
	return c.Advance(metaHeight + metaGap)
}

// sectionTitle draws a bold heading with a rule under it.
func (b *builder) sectionTitle(c Cursor, title string) Cursor {
	g := c.Geometry
	y := c.Y()
	b.draw(c, BlockSection,
		Text(g.Margin, y-14, title, Bold, 12, colorHeading),
		Line(g.Margin, y-20, g.Margin+g.ContentWidth(), y-20, colorRule),
	)
	return c.Advance(sectionHeight + sectionGap)
}

// tableHeader draws the banded column-label row.
func (b *builder) tableHeader(c Cursor) Cursor {
	g := c.Geometry
	y := c.Y()
	b.draw(c, BlockTableHeader,
		Rect(g.Margin-1, y-tableHeaderHeight, g.ContentWidth()+2, tableHeaderHeight, &colorTableFill, &colorTableBorder))

	x := g.Margin
	for _, col := range b.e.columns {
		b.draw(c, BlockTableHeader, Text(x+6, y-16, col.Label, Bold, b.e.style.BodySize, colorHeaderText))
		x += col.Width
	}
	return c.Advance(tableHeaderHeight)
}

// rowLayout is a measured table row. The wrapped lines are drawn exactly as
// measured so the row height and its content cannot disagree.
type rowLayout struct {
	index  int
	cells  [][]string
	height float64
}

func cellText(key string, index int, it LineItem) string {
	switch key {
	case ColNo:
		return strconv.Itoa(index + 1)
	case ColName:
		return it.PersonName
	case ColSkill:
		return it.SkillLabel
	case ColUnit:
		return string(it.Unit)
	case ColQty:
		return strconv.Itoa(it.Quantity)
	}
	return Placeholder
}

// measureRow wraps every wrapping cell of item against its usable column
// width and derives the row height from the tallest cell.
func (b *builder) measureRow(index int, it LineItem) rowLayout {
	st := b.e.style
	row := rowLayout{index: index, cells: make([][]string, len(b.e.columns))}

	lines := 1
	for i, col := range b.e.columns {
		s := cellText(col.Key, index, it)
		if col.Wrap {
			row.cells[i] = Wrap(b.e.measure, s, col.Width-2*st.CellPadding, Regular, st.BodySize)
		} else {
			row.cells[i] = []string{s}
		}
		if n := len(row.cells[i]); n > lines {
			lines = n
		}
	}

	row.height = max(st.MinRowHeight, float64(lines)*st.LineHeight+st.RowPadding)
	return row
}

// tableStart moves to a fresh page when the first row would not fit
// under the page's opening table header, so no header is left without rows.
func (b *builder) tableStart(c Cursor, first rowLayout) Cursor {
	need := continuationHeight + first.height + rowSlack
	if c.Fits(need, tableReserve) || need > c.Usable(tableReserve) {
		return c
	}
	return b.newPage(c)
}

// tableRow places one measured row, breaking to a continuation page with
// a fresh header row first when the row does not fit.
func (b *builder) tableRow(c Cursor, row rowLayout) (Cursor, error) {
	need := row.height + rowSlack
	if need+continuationHeight > c.Usable(tableReserve) {
		return c, fmt.Errorf("%w: row %d needs %.1fpt", ErrUnpaginatableBlock, row.index+1, row.height)
	}

	c, broke, err := b.ensure(c, need, tableReserve)
	if err != nil {
		return c, err
	}
	if broke {
		c = b.sectionTitle(c, b.e.style.SectionTitle+b.e.style.ContinuedSuffix)
		c = b.tableHeader(c)
	}

	g := c.Geometry
	st := b.e.style
	y := c.Y()
	h := row.height

	// Striping follows the absolute item index so it does not restart per page.
	if row.index%2 == 1 {
		b.draw(c, BlockTableRow, Rect(g.Margin-1, y-h, g.ContentWidth()+2, h, &colorZebra, nil))
	}
	b.draw(c, BlockTableRow, Rect(g.Margin-1, y-h, g.ContentWidth()+2, h, nil, &colorRowBorder))

	x := g.Margin
	for i, col := range b.e.columns {
		if i > 0 {
			b.draw(c, BlockTableRow, Line(x, y-h, x, y, colorRowBorder))
		}
		for n, ln := range row.cells[i] {
			b.draw(c, BlockTableRow,
				Text(x+st.CellPadding, y-rowBaseline-float64(n)*st.LineHeight, ln, Regular, st.BodySize, colorBlack))
		}
		x += col.Width
	}
	return c.Advance(h), nil
}

// totalsBox draws the right-aligned cost summary, moving to a new page
// under a summary heading when it does not fit below the table.
func (b *builder) totalsBox(c Cursor, q Quotation) (Cursor, error) {
	c, broke, err := b.ensure(c, totalsBlock+totalsGap, summaryReserve)
	if err != nil {
		return c, err
	}
	if broke {
		c = b.sectionTitle(c, b.e.style.SummaryTitle)
	}

	g := c.Geometry
	st := b.e.style
	y := c.Y()
	x := g.Margin + g.ContentWidth() - totalsBoxWidth

	b.draw(c, BlockTotals,
		Rect(x, y-totalsBoxHeight, totalsBoxWidth, totalsBoxHeight, &colorBoxFill, &colorTableBorder))

	rows := [][2]string{
		{st.SubtotalLabel, b.e.money.Format(q.Subtotal)},
		{st.OverheadLabel, FormatPercent(q.OverheadPct)},
		{st.AdminFeeLabel, FormatPercent(q.AdminFeePct)},
		{st.DiscountLabel, FormatPercent(q.DiscountPct)},
		{st.TotalLabel, b.e.money.Format(q.Total)},
	}

	yy := y - 18
	for i, r := range rows {
		font, size, step := Regular, st.BodySize, 18.0
		if i == len(rows)-1 {
			font, size, step = Bold, st.BodySize+1, 20
		}
		b.draw(c, BlockTotals,
			Text(x+12, yy, r[0], font, size, colorHeading),
			Text(b.rightX(r[1], font, size, x+totalsBoxWidth-12), yy, r[1], font, size, colorBlack),
		)
		yy -= step
	}
	return c.Advance(totalsBlock + totalsGap), nil
}

// signature draws the closing salutation and signing line. Its fit is
// decided on its own, so it may move to a new page without the totals.
func (b *builder) signature(c Cursor) (Cursor, error) {
	c, _, err := b.ensure(c, signatureHeight, summaryReserve)
	if err != nil {
		return c, err
	}

	g := c.Geometry
	st := b.e.style
	y := c.Y()
	b.draw(c, BlockSignature,
		Text(g.Margin, y-16, st.Salutation, Regular, st.BodySize, colorBlack),
		Line(g.Margin, y-70, g.Margin+signatureRule, y-70, colorSignature),
		Text(g.Margin, y-86, st.Signatory, Bold, 10, colorHeading),
	)
	return c.Advance(signatureHeight), nil
}

// pageNumbers labels every page once the final page count is known.
func (b *builder) pageNumbers(g PageGeometry) {
	total := len(b.pages)
	right := g.Margin + g.ContentWidth()
	for i := range b.pages {
		label := fmt.Sprintf(b.e.style.PageLabel, i+1, total)
		in := Text(b.rightX(label, Regular, pageNumberSize, right), g.Margin-pageNumberDrop,
			label, Regular, pageNumberSize, colorPageNumber)
		in.Kind = KindPageNumber
		in.Block = BlockPageNumber
		b.pages[i].Instructions = append(b.pages[i].Instructions, in)
	}
}
