package treemap

import "github.com/z7z8th/windirstat/buffer"

func newTestBuffer(width, height int) *buffer.Buffer {
	return buffer.New(width, height)
}

// fakeTarget records the last blit it received, for Draw/DrawDoubleBuffered
// tests that need to inspect the rendered frame without a real window.
type fakeTarget struct {
	buf        *buffer.Buffer
	dstX, dstY int
	blitCount  int
}

func (f *fakeTarget) Blit(buf *buffer.Buffer, dstX, dstY int) error {
	f.buf = buf
	f.dstX = dstX
	f.dstY = dstY
	f.blitCount++
	return nil
}
