package treemap

import (
	"errors"
	"fmt"
	"log"

	"github.com/z7z8th/windirstat/buffer"
)

// Callback is invoked once per internal node, before its children are laid
// out, for progress reporting. It is advisory only: the core has no
// cancellation path. A host that wants cancellation should panic/recover (or
// otherwise unwind) from within the callback; Draw does not leak the pixel
// buffer on such an unwind because the buffer is a local value, not an
// externally-held resource.
type Callback func()

// ErrDegenerateRect describes a destination rect with non-positive width or
// height. Draw never returns it: for such a rect Draw simply does nothing and
// returns nil. The value exists only for callers that check the rect
// themselves and want an error to log.
var ErrDegenerateRect = errors.New("treemap: degenerate destination rectangle")

// Draw lays out root's tree into rect (rect.X0/Y0 position the result within
// target, rect.Width()/Height() size the working area) and rasterizes it,
// blitting the finished frame to target in one call. If opts is non-nil it
// is used as given for this draw (Draw does not call Normalize on it);
// opts.Normalize must already have been called with the caller's low-color
// predicate. A nil opts means DefaultOptions().
//
// Item.Rectangle values written during this call are in render-area-local
// coordinates: (0,0) is rect's top-left, independent of rect's position in
// target. Hit-testing against these rectangles must translate points the
// same way (subtract rect.X0/Y0 first).
func Draw(target buffer.Target, rect Rectangle, root Item, opts *Options, cb Callback) error {
	if Debug {
		if err := CheckTree(root); err != nil {
			return fmt.Errorf("treemap: invalid item tree: %w", err)
		}
	}

	var o Options
	if opts != nil {
		o = *opts
	} else {
		o = DefaultOptions()
	}

	if rect.Width() <= 0 || rect.Height() <= 0 {
		return nil
	}

	width, height := rect.Width(), rect.Height()

	buf := buffer.New(width, height)

	gridWidth := o.GridWidth()
	if o.Grid {
		gr, gg, gb := o.GridColor.Channels()
		buf.FillRect(0, 0, width, height, gb, gg, gr, 255)
	} else {
		// 1px 3D-shadow line along the right and bottom edges.
		drawShadowEdges(buf, width, height)
	}

	// Reserve the right/bottom edge for grid/shadow regardless of mode, so
	// layout is stable across grid toggles.
	localRect := Rectangle{0, 0, width - 1, height - 1}
	if localRect.Width() <= 0 || localRect.Height() <= 0 {
		return target.Blit(buf, rect.X0, rect.Y0)
	}

	if root.Size() == 0 {
		buf.FillRect(0, 0, width, height, 0, 0, 0, 255)
		return target.Blit(buf, rect.X0, rect.Y0)
	}

	recurseDraw(buf, root, localRect, true, surface{}, o.Height, 0, o, cb, gridWidth)

	return target.Blit(buf, rect.X0, rect.Y0)
}

// DrawDoubleBuffered behaves like Draw but always renders into a fresh
// intermediate buffer before blitting, so a partially drawn frame is never
// visible mid-draw (CTreemap::DrawTreemapDoubleBuffered's guarantee, which
// falls out for free here since Draw is already always buffered — this
// wrapper exists so callers that migrated from the double-buffered entry
// point keep an explicit name to call).
func DrawDoubleBuffered(target buffer.Target, rect Rectangle, root Item, opts *Options, cb Callback) error {
	return Draw(target, rect, root, opts, cb)
}

// DrawColorPreview renders a single rect filled with a cushion preview of
// color under opts' current light/height/ambient/scale settings,
// independent of any item tree — used by configuration UIs to preview a
// palette entry.
func DrawColorPreview(target buffer.Target, rect Rectangle, color GraphColor, opts *Options) error {
	var o Options
	if opts != nil {
		o = *opts
	} else {
		o = DefaultOptions()
	}

	if rect.Width() <= 0 || rect.Height() <= 0 {
		return nil
	}

	width, height := rect.Width(), rect.Height()
	buf := buffer.New(width, height)
	local := Rectangle{0, 0, width, height}

	var s surface
	addRidge(local, &s, o.Height*o.ScaleFactor)

	renderRectangle(buf, local, s, color, o)

	if o.Grid {
		gr, gg, gb := o.GridColor.Channels()
		drawRectOutline(buf, local, gb, gg, gr)
	}

	return target.Blit(buf, rect.X0, rect.Y0)
}

func drawShadowEdges(buf *buffer.Buffer, width, height int) {
	// COLOR_3DSHADOW has no portable equivalent; a mid-gray approximates
	// the classic Win32 control shadow.
	const shadow = 128
	for y := 0; y < height; y++ {
		buf.Set(width-1, y, shadow, shadow, shadow, 255)
	}
	for x := 0; x < width; x++ {
		buf.Set(x, height-1, shadow, shadow, shadow, 255)
	}
}

func drawRectOutline(buf *buffer.Buffer, rect Rectangle, b, g, r uint8) {
	for x := rect.X0; x < rect.X1; x++ {
		buf.Set(x, rect.Y0, b, g, r, 255)
		buf.Set(x, rect.Y1-1, b, g, r, 255)
	}
	for y := rect.Y0; y < rect.Y1; y++ {
		buf.Set(rect.X0, y, b, g, r, 255)
		buf.Set(rect.X1-1, y, b, g, r, 255)
	}
}

// recurseDraw is CTreemap::RecurseDrawGraph: it records item's rectangle,
// bails out for rectangles too small to draw distinctly, composes the
// cushion ridge for this level, and either rasterizes a leaf or dispatches
// to the selected layout for an internal node.
func recurseDraw(buf *buffer.Buffer, item Item, rect Rectangle, asRoot bool, inherited surface, h float64, flags int, opts Options, cb Callback, gridWidth int) {
	if cb != nil && !item.IsLeaf() {
		cb()
	}

	item.SetRectangle(rect)

	if rect.Width() <= gridWidth || rect.Height() <= gridWidth {
		return
	}

	s := inherited
	if opts.CushionShadingEnabled() {
		if !asRoot {
			addRidge(rect, &s, h)
		}
	}

	if item.IsLeaf() {
		renderLeaf(buf, item, s, opts, gridWidth)
		return
	}

	if item.ChildCount() == 0 {
		return
	}

	drawChildren(buf, item, s, h, flags, opts, cb, gridWidth)
}

func renderLeaf(buf *buffer.Buffer, item Item, s surface, opts Options, gridWidth int) {
	rect := item.Rectangle()
	if opts.Grid {
		rect.X0++
		rect.Y0++
		if rect.Width() <= 0 || rect.Height() <= 0 {
			return
		}
	}
	renderRectangle(buf, rect, s, item.Color(), opts)
}

func drawChildren(buf *buffer.Buffer, parent Item, s surface, h float64, flags int, opts Options, cb Callback, gridWidth int) {
	switch opts.Style {
	case KDirStat:
		kdirstatDrawChildren(buf, parent, s, h, opts, cb, gridWidth)
	case SequoiaView:
		sequoiaDrawChildren(buf, parent, s, h, opts, cb, gridWidth)
	case Simple:
		simpleDrawChildren(buf, parent, s, h, flags, opts, cb, gridWidth)
	}
}

// CheckTree verifies the debug-mode invariants: internal-node size equals
// the sum of children's sizes, children are sorted by size descending, and
// leaves have no children.
func CheckTree(item Item) error {
	if item.IsLeaf() {
		if item.ChildCount() != 0 {
			return fmt.Errorf("treemap: leaf item has %d children", item.ChildCount())
		}
		return nil
	}

	var sum uint64
	for i := 0; i < item.ChildCount(); i++ {
		child := item.Child(i)
		if i > 0 && child.Size() > item.Child(i-1).Size() {
			return fmt.Errorf("treemap: child %d (size %d) is larger than child %d (size %d); children must be sorted by size descending", i, child.Size(), i-1, item.Child(i-1).Size())
		}
		sum += child.Size()
		if err := CheckTree(child); err != nil {
			return err
		}
	}
	if sum != item.Size() {
		return fmt.Errorf("treemap: item size %d does not equal sum of children %d", item.Size(), sum)
	}
	return nil
}

func warnf(format string, args ...interface{}) {
	log.Printf("treemap: "+format, args...)
}
