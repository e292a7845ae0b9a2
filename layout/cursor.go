package layout

// Cursor is the running write position: the page being filled and the
// distance of the next block's top edge from the top of that page. A fresh
// page starts with Offset equal to the top margin.
type Cursor struct {
	Geometry PageGeometry
	Page     int
	Offset   float64
}

// NewCursor returns a cursor at the top margin of the first page.
func NewCursor(g PageGeometry) Cursor {
	return Cursor{Geometry: g, Offset: g.Margin}
}

// Y returns the absolute, bottom-origin Y coordinate of the cursor.
func (c Cursor) Y() float64 {
	return c.Geometry.Height - c.Offset
}

// Remaining returns the vertical space left above the bottom margin plus reserve.
func (c Cursor) Remaining(reserve float64) float64 {
	return c.Geometry.Height - c.Geometry.Margin - c.Offset - reserve
}

// Usable returns the space a fresh page offers with the given reserve.
func (c Cursor) Usable(reserve float64) float64 {
	return c.Geometry.Height - 2*c.Geometry.Margin - reserve
}

// Fits reports whether a block of height h fits on the current page.
func (c Cursor) Fits(h, reserve float64) bool {
	return c.Remaining(reserve) >= h
}

// Advance moves the cursor down by h.
func (c Cursor) Advance(h float64) Cursor {
	c.Offset += h
	return c
}

// NextPage returns a cursor at the top margin of the following page.
func (c Cursor) NextPage() Cursor {
	return Cursor{Geometry: c.Geometry, Page: c.Page + 1, Offset: c.Geometry.Margin}
}
