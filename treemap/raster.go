package treemap

import (
	"math"

	"github.com/z7z8th/windirstat/buffer"
)

// renderRectangle fills rect (already clipped to the render area, in
// buffer-relative coordinates) with item color, applying the Darker/Lighter
// flag bits to brightness before dispatching to a solid or cushion fill.
func renderRectangle(buf *buffer.Buffer, rect Rectangle, s surface, color GraphColor, opts Options) {
	brightness := opts.Brightness

	if color.Flags() != 0 {
		flags := color.Flags()
		color = MakeBright(color, PaletteBrightness)
		if flags&ColorFlagDarker != 0 {
			brightness *= 0.66
		} else {
			brightness *= 1.2
			if brightness > 1.0 {
				brightness = 1.0
			}
		}
	}

	if opts.CushionShadingEnabled() {
		drawCushion(buf, rect, s, color, brightness, opts)
	} else {
		drawSolidRect(buf, rect, color, brightness)
	}
}

// drawSolidRect fills rect with a single color, scaled by brightness/0.6 and
// clamp-normalized.
func drawSolidRect(buf *buffer.Buffer, rect Rectangle, color GraphColor, brightness float64) {
	r, g, b := color.Channels()
	factor := brightness / PaletteBrightness

	red := int(float64(r) * factor)
	green := int(float64(g) * factor)
	blue := int(float64(b) * factor)
	NormalizeColor(&red, &green, &blue)

	for y := rect.Y0; y < rect.Y1; y++ {
		for x := rect.X0; x < rect.X1; x++ {
			buf.Set(x, y, uint8(blue), uint8(green), uint8(red), 255)
		}
	}
}

// drawCushion fills rect with the Lambertian-shaded cushion surface s,
// sampling the surface's normal at each pixel center.
func drawCushion(buf *buffer.Buffer, rect Rectangle, s surface, color GraphColor, brightness float64, opts Options) {
	ambient := opts.Ambient
	shading := 1 - ambient
	lx, ly, lz := opts.LightVector()

	colR, colG, colB := color.Channels()
	fr, fg, fb := float64(colR), float64(colG), float64(colB)

	for y := rect.Y0; y < rect.Y1; y++ {
		for x := rect.X0; x < rect.X1; x++ {
			nx, ny := s.normalAt(x, y)
			cosa := (nx*lx + ny*ly + lz) / math.Sqrt(nx*nx+ny*ny+1.0)
			if cosa > 1.0 {
				cosa = 1.0
			}

			pixel := shading * cosa
			if pixel < 0 {
				pixel = 0
			}
			pixel += ambient
			pixel *= brightness / PaletteBrightness

			red := int(fr * pixel)
			green := int(fg * pixel)
			blue := int(fb * pixel)
			NormalizeColor(&red, &green, &blue)

			buf.Set(x, y, uint8(blue), uint8(green), uint8(red), 255)
		}
	}
}
