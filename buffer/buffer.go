// Package buffer provides the row-major BGRA pixel buffer the treemap
// rasterizer writes into, and the Target interface a host windowing system
// implements to receive the finished frame via a single rectangular blit.
package buffer

import "fmt"

// BytesPerPixel is the BGRA pixel stride: four bytes per pixel.
const BytesPerPixel = 4

// Buffer is a row-major, top-left-origin BGRA pixel buffer. Pix is laid out
// contiguously so the whole buffer can be handed to a blit target in one
// call.
type Buffer struct {
	Width, Height int
	Pix           []byte // len == Width*Height*BytesPerPixel
}

// New allocates a zeroed buffer of the given pixel dimensions. Panics if
// width or height is negative (a caller bug, not a runtime condition: the
// treemap driver never constructs a Buffer for a degenerate rectangle).
func New(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("buffer: negative dimensions %dx%d", width, height))
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int { return b.Width * BytesPerPixel }

// offset returns the byte offset of pixel (x, y), or -1 if out of bounds.
func (b *Buffer) offset(x, y int) int {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return -1
	}
	return y*b.Stride() + x*BytesPerPixel
}

// Set writes a BGRA pixel at (x, y). Out-of-bounds writes are silently
// dropped: the rasterizer clips rectangles to the render area before
// calling Set, so an out-of-bounds call here indicates the clip was
// computed wrong, not a condition callers should pay a bounds-check
// branch to guard against on every valid pixel.
func (b *Buffer) Set(x, y int, blue, green, red, alpha uint8) {
	o := b.offset(x, y)
	if o < 0 {
		return
	}
	b.Pix[o+0] = blue
	b.Pix[o+1] = green
	b.Pix[o+2] = red
	b.Pix[o+3] = alpha
}

// At returns the BGRA pixel at (x, y).
func (b *Buffer) At(x, y int) (blue, green, red, alpha uint8) {
	o := b.offset(x, y)
	if o < 0 {
		return 0, 0, 0, 0
	}
	return b.Pix[o+0], b.Pix[o+1], b.Pix[o+2], b.Pix[o+3]
}

// FillRect fills the rectangle [x0,x1)x[y0,y1), clipped to the buffer
// bounds, with a single BGRA color.
func (b *Buffer) FillRect(x0, y0, x1, y1 int, blue, green, red, alpha uint8) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > b.Width {
		x1 = b.Width
	}
	if y1 > b.Height {
		y1 = b.Height
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.Set(x, y, blue, green, red, alpha)
		}
	}
}

// Target is the host's pixel-sink abstraction: a single rectangular BGRA
// blit. Implementations (an SDL2 texture upload, an image.RGBA copy, a test
// double) own everything about how the bytes reach the screen; Buffer and
// the treemap package never import a windowing library directly.
type Target interface {
	// Blit copies buf's pixels to the target's rectangle starting at
	// (dstX, dstY). Implementations may assume buf is not mutated for the
	// duration of the call.
	Blit(buf *Buffer, dstX, dstY int) error
}
