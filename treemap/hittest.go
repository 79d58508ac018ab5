package treemap

// FindItemByPoint returns the innermost item containing point, starting the
// search at item (normally the tree root). It returns nil only when point
// falls outside item's own rectangle — callers driving this from mouse
// input should expect nil near the right/bottom edges, which the grid (or,
// ungridded, nothing) occupies outside the root rectangle.
func FindItemByPoint(item Item, point Point, opts Options) Item {
	rect := item.Rectangle()

	if !rect.Contains(point) {
		return nil
	}

	gridWidth := opts.GridWidth()

	if rect.Width() <= gridWidth || rect.Height() <= gridWidth {
		return item
	}

	if item.IsLeaf() {
		return item
	}

	for i := 0; i < item.ChildCount(); i++ {
		child := item.Child(i)
		if child.Size() == 0 {
			break
		}
		childRect := child.Rectangle()
		if childRect.IsSentinel() {
			continue
		}
		if childRect.Contains(point) {
			found := FindItemByPoint(child, point, opts)
			if found != nil {
				return found
			}
			// Fall through: rounding can leave a sliver of item's area not
			// covered by any child rectangle. Treat it as item's own.
			return item
		}
	}

	return item
}
