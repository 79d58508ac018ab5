package treemap

import "testing"

func TestNewNodeSizeIsSumOfChildren(t *testing.T) {
	n := NewNode([]*DemoItem{
		NewLeaf(10, RGB(1, 1, 1)),
		NewLeaf(20, RGB(2, 2, 2)),
		NewLeaf(5, RGB(3, 3, 3)),
	})
	if n.Size() != 35 {
		t.Fatalf("NewNode size = %d, want 35", n.Size())
	}
}

func TestNewNodeSortsChildrenDescending(t *testing.T) {
	small := NewLeaf(5, RGB(1, 1, 1))
	big := NewLeaf(50, RGB(2, 2, 2))
	mid := NewLeaf(20, RGB(3, 3, 3))
	n := NewNode([]*DemoItem{small, big, mid})

	if n.ChildCount() != 3 {
		t.Fatalf("ChildCount() = %d, want 3", n.ChildCount())
	}
	var last uint64 = ^uint64(0)
	for i := 0; i < n.ChildCount(); i++ {
		size := n.Child(i).Size()
		if size > last {
			t.Fatalf("children not sorted descending: child %d has size %d > previous %d", i, size, last)
		}
		last = size
	}
}

func TestDemoItemLeafHasNoChildren(t *testing.T) {
	leaf := NewLeaf(1, RGB(0, 0, 0))
	if !leaf.IsLeaf() {
		t.Fatal("NewLeaf should produce a leaf item")
	}
	if leaf.ChildCount() != 0 {
		t.Fatalf("leaf ChildCount() = %d, want 0", leaf.ChildCount())
	}
}

func TestBuildDemoTreeSizeInvariant(t *testing.T) {
	root := BuildDemoTree()
	if err := CheckTree(root); err != nil {
		t.Fatalf("BuildDemoTree produced an invalid tree: %v", err)
	}
	if root.Size() == 0 {
		t.Fatal("BuildDemoTree root has zero size")
	}
}

func TestColorCyclerWrapsAround(t *testing.T) {
	palette := []GraphColor{RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)}
	c := newColorCycler(palette)
	first := c.next()
	c.next()
	c.next()
	fourth := c.next()
	if first != fourth {
		t.Fatalf("colorCycler should wrap around after len(palette) calls: first=%v fourth=%v", first, fourth)
	}
}
