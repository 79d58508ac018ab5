package treemap

import "testing"

func TestKDirStatTwoEqualLeavesSplitEvenly(t *testing.T) {
	a := NewLeaf(50, RGB(0, 0, 255))
	b := NewLeaf(50, RGB(255, 0, 0))
	root := NewNode([]*DemoItem{a, b})
	root.SetRectangle(Rectangle{0, 0, 100, 50})

	opts := DefaultOptions()
	buf := newTestBuffer(100, 50)
	kdirstatDrawChildren(buf, root, surface{}, opts.Height, opts, nil, 0)

	ra, rb := a.Rectangle(), b.Rectangle()
	if ra.Width() != 50 || rb.Width() != 50 {
		t.Fatalf("expected a 50/50 horizontal split, got widths %d and %d", ra.Width(), rb.Width())
	}
	if ra.Height() != 50 || rb.Height() != 50 {
		t.Fatalf("expected full row height 50, got %d and %d", ra.Height(), rb.Height())
	}
	if ra.X1 != rb.X0 {
		t.Fatalf("children should be adjacent: a.X1=%d, b.X0=%d", ra.X1, rb.X0)
	}
}

func TestKDirStatAreaConservation(t *testing.T) {
	children := []*DemoItem{
		NewLeaf(100, RGB(255, 0, 0)),
		NewLeaf(80, RGB(0, 255, 0)),
		NewLeaf(60, RGB(0, 0, 255)),
		NewLeaf(40, RGB(255, 255, 0)),
		NewLeaf(20, RGB(0, 255, 255)),
	}
	root := NewNode(children)
	root.SetRectangle(Rectangle{0, 0, 200, 100})

	opts := DefaultOptions()
	buf := newTestBuffer(200, 100)
	kdirstatDrawChildren(buf, root, surface{}, opts.Height, opts, nil, 0)

	var total int
	for _, c := range children {
		r := c.Rectangle()
		if r.IsSentinel() {
			continue
		}
		total += r.Width() * r.Height()
	}
	want := root.Rectangle().Width() * root.Rectangle().Height()
	if total != want {
		t.Fatalf("sum of child areas = %d, want %d", total, want)
	}
}

func TestKDirStatTrailingZeroSizeChildGetsSentinel(t *testing.T) {
	children := []*DemoItem{
		NewLeaf(100, RGB(255, 0, 0)),
		NewLeaf(0, RGB(0, 255, 0)),
	}
	root := NewNode(children)
	root.SetRectangle(Rectangle{0, 0, 100, 100})

	opts := DefaultOptions()
	buf := newTestBuffer(100, 100)
	kdirstatDrawChildren(buf, root, surface{}, opts.Height, opts, nil, 0)

	if !children[1].Rectangle().IsSentinel() {
		t.Fatalf("zero-size child rectangle = %v, want Sentinel", children[1].Rectangle())
	}
}

func TestKDirStatChildrenStayWithinParent(t *testing.T) {
	children := []*DemoItem{
		NewLeaf(300, RGB(255, 0, 0)),
		NewLeaf(150, RGB(0, 255, 0)),
		NewLeaf(90, RGB(0, 0, 255)),
		NewLeaf(45, RGB(255, 255, 0)),
		NewLeaf(10, RGB(0, 255, 255)),
		NewLeaf(5, RGB(255, 0, 255)),
	}
	root := NewNode(children)
	parentRect := Rectangle{10, 20, 210, 170}
	root.SetRectangle(parentRect)

	opts := DefaultOptions()
	buf := newTestBuffer(300, 300)
	kdirstatDrawChildren(buf, root, surface{}, opts.Height, opts, nil, 0)

	for i, c := range children {
		r := c.Rectangle()
		if r.IsSentinel() {
			continue
		}
		if r.X0 < parentRect.X0 || r.Y0 < parentRect.Y0 || r.X1 > parentRect.X1 || r.Y1 > parentRect.Y1 {
			t.Fatalf("child %d rect %v escapes parent rect %v", i, r, parentRect)
		}
	}
}
