package treemap

import "sort"

// DemoItem is a concrete, in-memory Item implementation used for previews,
// tests and the demo tree built by BuildDemoTree. Real hosts normally wire
// Item onto their own directory-entry type instead of using this one, but
// it is a complete, usable Item on its own.
type DemoItem struct {
	size     uint64
	color    GraphColor
	children []*DemoItem
	rect     Rectangle
}

// NewLeaf creates a leaf item of the given size and color.
func NewLeaf(size uint64, color GraphColor) *DemoItem {
	return &DemoItem{size: size, color: color}
}

// NewNode creates an internal item whose size is the sum of children's
// sizes, with children reordered descending by size (the order every
// layout in this package requires).
func NewNode(children []*DemoItem) *DemoItem {
	ordered := make([]*DemoItem, len(children))
	copy(ordered, children)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].size > ordered[j].size
	})

	var total uint64
	for _, c := range ordered {
		total += c.size
	}

	return &DemoItem{size: total, children: ordered}
}

func (d *DemoItem) Size() uint64       { return d.size }
func (d *DemoItem) IsLeaf() bool       { return d.children == nil }
func (d *DemoItem) ChildCount() int    { return len(d.children) }
func (d *DemoItem) Child(i int) Item   { return d.children[i] }
func (d *DemoItem) Rectangle() Rectangle { return d.rect }
func (d *DemoItem) SetRectangle(r Rectangle) { d.rect = r }
func (d *DemoItem) Color() GraphColor  { return d.color }

// colorCycler hands out colors from a palette in round-robin order,
// advancing before each use (CTreemapPreview::GetNextColor).
type colorCycler struct {
	palette []GraphColor
	i       int
}

func newColorCycler(palette []GraphColor) *colorCycler {
	return &colorCycler{palette: palette, i: -1}
}

func (c *colorCycler) next() GraphColor {
	c.i++
	c.i %= len(c.palette)
	return c.palette[c.i]
}

// BuildDemoTree constructs the synthetic tree CTreemapPreview uses to
// render a live preview of the current Options in a configuration dialog:
// a lopsided mix of many small same-colored leaves, a few large solitary
// leaves, and nested groups, chosen to exercise every layout style's
// corner cases (long runs of near-equal tiny items, a handful of dominant
// items, deep nesting) in a small fixed tree.
func BuildDemoTree() *DemoItem {
	c := newColorCycler(DefaultPalette())

	var c4 []*DemoItem
	color := c.next()
	for i := 0; i < 30; i++ {
		c4 = append(c4, NewLeaf(uint64(1+100*i), color))
	}

	var c0 []*DemoItem
	for i := 0; i < 8; i++ {
		c0 = append(c0, NewLeaf(uint64(500+600*i), c.next()))
	}

	var c1 []*DemoItem
	color = c.next()
	for i := 0; i < 10; i++ {
		c1 = append(c1, NewLeaf(uint64(1+200*i), color))
	}
	c0 = append(c0, NewNode(c1))

	var c2 []*DemoItem
	color = c.next()
	for i := 0; i < 160; i++ {
		c2 = append(c2, NewLeaf(uint64(1+i), color))
	}

	c3 := []*DemoItem{
		NewLeaf(10000, c.next()),
		NewNode(c4),
		NewNode(c2),
		NewLeaf(6000, c.next()),
		NewLeaf(1500, c.next()),
	}

	c10 := []*DemoItem{
		NewNode(c0),
		NewNode(c3),
	}

	return NewNode(c10)
}
