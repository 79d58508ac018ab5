package treemap

import "testing"

func TestDrawSingleLeafFillsRectWithColor(t *testing.T) {
	root := NewLeaf(1, RGB(0, 0, 255))
	target := &fakeTarget{}
	opts := DefaultOptions()
	opts.Ambient = 1.0 // disable cushion shading for a predictable flat fill

	rect := Rectangle{X0: 0, Y0: 0, X1: 20, Y1: 20}
	if err := Draw(target, rect, root, &opts, nil); err != nil {
		t.Fatalf("Draw returned error: %v", err)
	}
	if target.blitCount != 1 {
		t.Fatalf("expected exactly one blit, got %d", target.blitCount)
	}

	blue, green, red, _ := target.buf.At(10, 10)
	if blue <= red || blue <= green {
		t.Fatalf("expected a blue-dominant pixel at center, got (r=%d g=%d b=%d)", red, green, blue)
	}
}

func TestDrawDegenerateRectIsNoop(t *testing.T) {
	root := NewLeaf(1, RGB(0, 0, 255))
	target := &fakeTarget{}
	opts := DefaultOptions()

	if err := Draw(target, Rectangle{0, 0, 0, 10}, root, &opts, nil); err != nil {
		t.Fatalf("Draw returned error on degenerate rect: %v", err)
	}
	if target.blitCount != 0 {
		t.Fatalf("expected no blit for a degenerate rectangle, got %d", target.blitCount)
	}
}

func TestDrawZeroSizeRootFillsBlack(t *testing.T) {
	root := NewNode(nil)
	target := &fakeTarget{}
	opts := DefaultOptions()

	if err := Draw(target, Rectangle{0, 0, 10, 10}, root, &opts, nil); err != nil {
		t.Fatalf("Draw returned error: %v", err)
	}
	blue, green, red, _ := target.buf.At(5, 5)
	if red != 0 || green != 0 || blue != 0 {
		t.Fatalf("expected black fill for an empty tree, got (r=%d g=%d b=%d)", red, green, blue)
	}
}

func TestDrawDemoTreeEveryStyleCompletes(t *testing.T) {
	for _, style := range []Style{KDirStat, SequoiaView, Simple} {
		root := BuildDemoTree()
		target := &fakeTarget{}
		opts := DefaultOptions()
		opts.Style = style

		rect := Rectangle{X0: 0, Y0: 0, X1: 400, Y1: 300}
		if err := Draw(target, rect, root, &opts, nil); err != nil {
			t.Fatalf("Draw with style %v returned error: %v", style, err)
		}
		if target.blitCount != 1 {
			t.Fatalf("style %v: expected one blit, got %d", style, target.blitCount)
		}
	}
}

func TestDrawInvokesCallbackPerInternalNode(t *testing.T) {
	root := BuildDemoTree()
	target := &fakeTarget{}
	opts := DefaultOptions()

	calls := 0
	cb := func() { calls++ }

	if err := Draw(target, Rectangle{0, 0, 300, 200}, root, &opts, cb); err != nil {
		t.Fatalf("Draw returned error: %v", err)
	}
	if calls == 0 {
		t.Fatal("callback was never invoked")
	}
}

func TestCheckTreeDetectsSizeMismatch(t *testing.T) {
	leaf := NewLeaf(10, RGB(1, 1, 1))
	bad := &DemoItem{size: 999, children: []*DemoItem{leaf}}
	if err := CheckTree(bad); err == nil {
		t.Fatal("CheckTree should reject a node whose size does not match its children's sum")
	}
}

func TestCheckTreeAcceptsValidTree(t *testing.T) {
	if err := CheckTree(BuildDemoTree()); err != nil {
		t.Fatalf("CheckTree rejected a well-formed tree: %v", err)
	}
}

func TestDrawColorPreviewProducesNonBlackPixel(t *testing.T) {
	target := &fakeTarget{}
	opts := DefaultOptions()

	if err := DrawColorPreview(target, Rectangle{0, 0, 30, 30}, RGB(0, 200, 0), &opts); err != nil {
		t.Fatalf("DrawColorPreview returned error: %v", err)
	}
	blue, green, red, _ := target.buf.At(15, 15)
	if green <= red || green <= blue {
		t.Fatalf("expected a green-dominant preview pixel, got (r=%d g=%d b=%d)", red, green, blue)
	}
}
