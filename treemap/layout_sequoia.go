package treemap

import (
	"math"

	"github.com/z7z8th/windirstat/buffer"
)

// sequoiaDrawChildren implements the classical squarified algorithm (Van
// Wijk & SequoiaView): rows are grown one child at a time as long as adding
// the next child does not make the row's worst aspect ratio worse, using
// the ratio formula from the "Squarified Treemaps" paper.
func sequoiaDrawChildren(buf *buffer.Buffer, parent Item, s surface, h float64, opts Options, cb Callback, gridWidth int) {
	remaining := parent.Rectangle()
	remainingSize := parent.Size()
	n := parent.ChildCount()

	sizePerSquarePixel := float64(parent.Size()) / float64(remaining.Width()) / float64(remaining.Height())

	head := 0
	for head < n {
		horizontal := remaining.Width() >= remaining.Height()

		var height int
		if horizontal {
			height = remaining.Height()
		} else {
			height = remaining.Width()
		}

		hh := float64(height*height) * sizePerSquarePixel

		rowBegin := head
		rowEnd := head

		worst := math.MaxFloat64
		rmax := parent.Child(rowBegin).Size()
		var sum uint64

		for rowEnd < n {
			rmin := parent.Child(rowEnd).Size()

			if rmin == 0 {
				rowEnd = n
				break
			}

			ss := float64(sum+rmin) * float64(sum+rmin)
			ratio1 := hh * float64(rmax) / ss
			ratio2 := ss / hh / float64(rmin)

			nextWorst := ratio1
			if ratio2 > nextWorst {
				nextWorst = ratio2
			}

			if nextWorst > worst {
				break
			}

			sum += rmin
			rowEnd++
			worst = nextWorst
		}

		width := remaining.Width()
		if !horizontal {
			width = remaining.Height()
		}

		if sum < remainingSize {
			width = int(float64(sum) / float64(remainingSize) * float64(width))
		}

		var rc Rectangle
		var fBegin float64
		if horizontal {
			rc.X0 = remaining.X0
			rc.X1 = remaining.X0 + width
			fBegin = float64(remaining.Y0)
		} else {
			rc.Y0 = remaining.Y0
			rc.Y1 = remaining.Y0 + width
			fBegin = float64(remaining.X0)
		}

		for i := rowBegin; i < rowEnd; i++ {
			begin := int(fBegin)
			fraction := float64(parent.Child(i).Size()) / float64(sum)
			fEnd := fBegin + fraction*float64(height)
			end := int(fEnd)

			lastChild := i == rowEnd-1 || parent.Child(i+1).Size() == 0

			if lastChild {
				if horizontal {
					end = remaining.Y0 + height
				} else {
					end = remaining.X0 + height
				}
			}

			if horizontal {
				rc.Y0 = begin
				rc.Y1 = end
			} else {
				rc.X0 = begin
				rc.X1 = end
			}

			recurseDraw(buf, parent.Child(i), rc, false, s, h*opts.ScaleFactor, 0, opts, cb, gridWidth)

			if lastChild {
				break
			}

			fBegin = fEnd
		}

		if horizontal {
			remaining.X0 += width
		} else {
			remaining.Y0 += width
		}

		remainingSize -= sum
		head += rowEnd - rowBegin

		if remaining.Width() <= 0 || remaining.Height() <= 0 {
			if head < n {
				parent.Child(head).SetRectangle(Sentinel)
			}
			break
		}
	}
}
