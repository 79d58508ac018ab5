package treemap

import "github.com/z7z8th/windirstat/buffer"

// simpleDrawChildren arranges children in a single strip, alternating
// between horizontal and vertical split direction as the recursion
// descends: flags == 0 means split this level horizontally and pass flags
// == 1 to children (who will then split vertically, and pass flags == 0
// back down), producing a simple non-squarified alternating layout.
func simpleDrawChildren(buf *buffer.Buffer, parent Item, s surface, h float64, flags int, opts Options, cb Callback, gridWidth int) {
	rect := parent.Rectangle()
	n := parent.ChildCount()

	horizontal := flags == 0

	width := rect.Width()
	if !horizontal {
		width = rect.Height()
	}

	var fBegin float64
	var veryEnd int
	if horizontal {
		fBegin = float64(rect.X0)
		veryEnd = rect.X1
	} else {
		fBegin = float64(rect.Y0)
		veryEnd = rect.Y1
	}

	childFlags := 0
	if horizontal {
		childFlags = 1
	}

	i := 0
	for ; i < n; i++ {
		fraction := float64(parent.Child(i).Size()) / float64(parent.Size())
		fEnd := fBegin + fraction*float64(width)

		lastChild := i == n-1 || parent.Child(i+1).Size() == 0

		if lastChild {
			fEnd = float64(veryEnd)
		}

		begin := int(fBegin)
		end := int(fEnd)

		var childRect Rectangle
		if horizontal {
			childRect = Rectangle{begin, rect.Y0, end, rect.Y1}
		} else {
			childRect = Rectangle{rect.X0, begin, rect.X1, end}
		}

		recurseDraw(buf, parent.Child(i), childRect, false, s, h*opts.ScaleFactor, childFlags, opts, cb, gridWidth)

		if lastChild {
			i++
			break
		}

		fBegin = fEnd
	}

	if i < n {
		parent.Child(i).SetRectangle(Sentinel)
	}
}
