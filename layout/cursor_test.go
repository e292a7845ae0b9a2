package layout

import "testing"

func TestCursor(t *testing.T) {
	g := PageGeometry{Width: 500, Height: 700, Margin: 50}
	c := NewCursor(g)

	if c.Offset != 50 || c.Page != 0 {
		t.Fatalf("NewCursor() = page %d offset %v, want page 0 offset 50", c.Page, c.Offset)
	}
	if got := c.Y(); got != 650 {
		t.Errorf("Y() = %v, want 650", got)
	}
	if got := c.Remaining(100); got != 500 {
		t.Errorf("Remaining(100) = %v, want 500", got)
	}
	if got := c.Usable(100); got != 500 {
		t.Errorf("Usable(100) = %v, want 500", got)
	}

	c = c.Advance(480)
	if got := c.Remaining(100); got != 20 {
		t.Errorf("after Advance Remaining(100) = %v, want 20", got)
	}
	if !c.Fits(20, 100) {
		t.Error("Fits(20) = false, want true")
	}
	if c.Fits(21, 100) {
		t.Error("Fits(21) = true, want false")
	}

	next := c.NextPage()
	if next.Page != 1 || next.Offset != 50 {
		t.Errorf("NextPage() = page %d offset %v, want page 1 offset 50", next.Page, next.Offset)
	}
}

func TestBuilderEnsure(t *testing.T) {
	e := newTestEngine(t)
	b := &builder{e: e, pages: []Page{{Number: 1}}}
	c := NewCursor(A4)

	c, broke, err := b.ensure(c, 100, tableReserve)
	if err != nil || broke {
		t.Fatalf("ensure on empty page = broke %v err %v", broke, err)
	}

	c = c.Advance(c.Remaining(tableReserve) - 50)
	c, broke, err = b.ensure(c, 60, tableReserve)
	if err != nil {
		t.Fatalf("ensure() error = %v", err)
	}
	if !broke || c.Page != 1 || len(b.pages) != 2 {
		t.Errorf("ensure() = broke %v page %d pages %d, want a second page", broke, c.Page, len(b.pages))
	}
	if c.Offset != A4.Margin {
		t.Errorf("new page offset = %v, want margin %v", c.Offset, A4.Margin)
	}
	if c.Remaining(tableReserve) < 0 {
		t.Errorf("Remaining() = %v after ensure, want >= 0", c.Remaining(tableReserve))
	}
}
