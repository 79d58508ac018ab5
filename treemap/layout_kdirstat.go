package treemap

import "github.com/z7z8th/windirstat/buffer"

// minRowProportion is the minimum acceptable aspect (childWidth/rowHeight)
// for a child before KDirStat_CalcutateNextRow closes the row and starts a
// new one. Below this, children become too sliver-shaped to compare sizes
// visually.
const minRowProportion = 0.4

// kdirstatDrawChildren lays parent's children out in rows (the KDirStat
// style): children are packed greedily into rows so that each row's
// narrowest child stays above minRowProportion, then recursed into.
func kdirstatDrawChildren(buf *buffer.Buffer, parent Item, s surface, h float64, opts Options, cb Callback, gridWidth int) {
	n := parent.ChildCount()
	rect := parent.Rectangle()

	childWidth := make([]float64, n)
	rows, childrenPerRow, horizontal := kdirstatArrangeChildren(parent, childWidth)

	width, height := rect.Width(), rect.Height()
	if !horizontal {
		width, height = height, width
	}

	c := 0
	var top float64
	if horizontal {
		top = float64(rect.Y0)
	} else {
		top = float64(rect.X0)
	}

	for row := 0; row < len(rows); row++ {
		fBottom := top + rows[row]*float64(height)
		bottom := int(fBottom)
		if row == len(rows)-1 {
			if horizontal {
				bottom = rect.Y1
			} else {
				bottom = rect.X1
			}
		}

		var left float64
		if horizontal {
			left = float64(rect.X0)
		} else {
			left = float64(rect.Y0)
		}

		rowChildren := childrenPerRow[row]
		for i := 0; i < rowChildren; i, c = i+1, c+1 {
			child := parent.Child(c)

			fRight := left + childWidth[c]*float64(width)
			right := int(fRight)

			lastChild := i == rowChildren-1 || childWidth[c+1] == 0

			if lastChild {
				if horizontal {
					right = rect.X1
				} else {
					right = rect.Y1
				}
			}

			var childRect Rectangle
			if horizontal {
				childRect = Rectangle{int(left), int(top), right, bottom}
			} else {
				childRect = Rectangle{int(top), int(left), bottom, right}
			}

			recurseDraw(buf, child, childRect, false, s, h*opts.ScaleFactor, 0, opts, cb, gridWidth)

			if lastChild {
				i++
				c++
				for ; i < rowChildren; i, c = i+1, c+1 {
					parent.Child(c).SetRectangle(Sentinel)
				}
				break
			}

			left = fRight
		}
		top = fBottom
	}
}

// kdirstatArrangeChildren groups parent's (size-descending-sorted) children
// into rows and computes each child's fractional width within its row.
// Returns whether rows run horizontally (parent's rect is wider than tall).
func kdirstatArrangeChildren(parent Item, childWidth []float64) (rows []float64, childrenPerRow []int, horizontal bool) {
	n := parent.ChildCount()
	rect := parent.Rectangle()

	if parent.Size() == 0 {
		rows = []float64{1.0}
		childrenPerRow = []int{n}
		for i := range childWidth {
			childWidth[i] = 1.0 / float64(n)
		}
		return rows, childrenPerRow, true
	}

	horizontal = rect.Width() >= rect.Height()

	width := 1.0
	if horizontal {
		if rect.Height() > 0 {
			width = float64(rect.Width()) / float64(rect.Height())
		}
	} else {
		if rect.Width() > 0 {
			width = float64(rect.Height()) / float64(rect.Width())
		}
	}

	nextChild := 0
	for nextChild < n {
		rowHeight, used := kdirstatCalculateNextRow(parent, nextChild, width, childWidth)
		rows = append(rows, rowHeight)
		childrenPerRow = append(childrenPerRow, used)
		nextChild += used
	}

	return rows, childrenPerRow, horizontal
}

// kdirstatCalculateNextRow greedily adds children (starting at nextChild)
// to a row until the next candidate would drop the row's aspect below
// minRowProportion, then distributes the row's children's widths.
func kdirstatCalculateNextRow(parent Item, nextChild int, width float64, childWidth []float64) (rowHeight float64, childrenUsed int) {
	n := parent.ChildCount()
	mySize := float64(parent.Size())

	var sizeUsed uint64
	i := nextChild
	for ; i < n; i++ {
		childSize := parent.Child(i).Size()
		if childSize == 0 {
			break
		}

		sizeUsed += childSize
		virtualRowHeight := float64(sizeUsed) / mySize

		cw := float64(childSize) / mySize * width / virtualRowHeight

		if cw/virtualRowHeight < minRowProportion {
			break
		}
		rowHeight = virtualRowHeight
	}

	// Trailing zero-size children join this row's tail without affecting
	// its geometry; their widths collapse to zero, so KDirStat_DrawChildren
	// marks them with the sentinel rectangle rather than drawing them.
	for i < n && parent.Child(i).Size() == 0 {
		i++
	}

	childrenUsed = i - nextChild

	rowSize := mySize * rowHeight
	for k := 0; k < childrenUsed; k++ {
		childSize := float64(parent.Child(nextChild + k).Size())
		if rowSize == 0 {
			childWidth[nextChild+k] = 0
			continue
		}
		childWidth[nextChild+k] = childSize / rowSize
	}

	return rowHeight, childrenUsed
}
