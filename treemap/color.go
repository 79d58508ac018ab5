package treemap

// PaletteBrightness is the brightness every color in an equalized palette is
// rescaled to, and the reference brightness raster code divides by when
// applying the Options.Brightness multiplier.
const PaletteBrightness = 0.6

// GraphColor packs an RGB color in its low 24 bits plus two high flag bits
// that a rasterizer applies before drawing: Darker scales luminance by 0.66,
// Lighter scales it by 1.2 (clamped to 1.0).
type GraphColor uint32

const (
	ColorFlagLighter GraphColor = 1 << 30
	ColorFlagDarker  GraphColor = 1 << 31
	ColorFlagMask    GraphColor = ColorFlagLighter | ColorFlagDarker
	colorRGBMask     GraphColor = 0x00FFFFFF
)

// RGB packs 8-bit channels into a flagless GraphColor.
func RGB(r, g, b uint8) GraphColor {
	return GraphColor(uint32(b) | uint32(g)<<8 | uint32(r)<<16)
}

// Channels unpacks the low 24 bits of c into 8-bit R, G, B.
func (c GraphColor) Channels() (r, g, b uint8) {
	v := uint32(c & colorRGBMask)
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Flags returns the high two flag bits of c.
func (c GraphColor) Flags() GraphColor { return c & ColorFlagMask }

// WithoutFlags returns c with the flag bits cleared.
func (c GraphColor) WithoutFlags() GraphColor { return c & colorRGBMask }

// Brightness returns (R+G+B)/(3*255), the "total brightness" used throughout
// this package for palette equalization and flagged-color adjustment.
func Brightness(c GraphColor) float64 {
	r, g, b := c.Channels()
	return (float64(r) + float64(g) + float64(b)) / 255.0 / 3.0
}

// MakeBright scales c's RGB channels (flags ignored and dropped) so its total
// brightness becomes b, preserving hue as closely as clamping allows.
func MakeBright(c GraphColor, b float64) GraphColor {
	r, g, bl := c.WithoutFlags().Channels()
	dred := float64(r) / 255.0
	dgreen := float64(g) / 255.0
	dblue := float64(bl) / 255.0

	sum := dred + dgreen + dblue
	if sum == 0 {
		// A pure-black color has no brightness to scale; leave it black
		// rather than divide by zero (the original's formula is undefined
		// here too, but WinDirStat's default palettes never hit this case).
		return RGB(0, 0, 0)
	}
	f := 3.0 * b / sum
	dred *= f
	dgreen *= f
	dblue *= f

	red := int(dred * 255)
	green := int(dgreen * 255)
	blue := int(dblue * 255)

	NormalizeColor(&red, &green, &blue)

	return RGB(uint8(red), uint8(green), uint8(blue))
}

// NormalizeColor clamps an overflowed channel (computed value > 255) to 255,
// distributing half the overflow to each remaining channel, and forwarding
// any resulting second overflow to the third channel. Only one of the three
// channels is expected to overflow at a time (the caller's math guarantees
// red+green+blue <= 3*255 before normalization).
func NormalizeColor(red, green, blue *int) {
	switch {
	case *red > 255:
		distributeFirst(red, green, blue)
	case *green > 255:
		distributeFirst(green, red, blue)
	case *blue > 255:
		distributeFirst(blue, red, green)
	}
}

func distributeFirst(first, second, third *int) {
	h := (*first - 255) / 2
	*first = 255
	*second += h
	*third += h

	if *second > 255 {
		j := *second - 255
		*second = 255
		*third += j
	} else if *third > 255 {
		j := *third - 255
		*third = 255
		*second += j
	}
}

// EqualizePalette returns a copy of colors with each entry rescaled to total
// brightness PaletteBrightness via MakeBright.
func EqualizePalette(colors []GraphColor) []GraphColor {
	out := make([]GraphColor, len(colors))
	for i, c := range colors {
		out[i] = MakeBright(c, PaletteBrightness)
	}
	return out
}

// DefaultCushionColors is the 13-color palette used on full-color displays,
// before equalization.
var DefaultCushionColors = []GraphColor{
	RGB(0, 0, 255),
	RGB(255, 0, 0),
	RGB(0, 255, 0),
	RGB(0, 255, 255),
	RGB(255, 0, 255),
	RGB(255, 255, 0),
	RGB(150, 150, 255),
	RGB(255, 150, 150),
	RGB(150, 255, 150),
	RGB(150, 255, 255),
	RGB(255, 150, 255),
	RGB(255, 255, 150),
	RGB(255, 255, 255),
}

// DefaultCushionColors256 is the reduced 7-color palette for ≤256-color
// displays, used verbatim (never equalized — equalizing an already-coarse
// palette would make its colors indistinguishable on such displays).
var DefaultCushionColors256 = []GraphColor{
	RGB(0, 0, 255),
	RGB(255, 0, 0),
	RGB(0, 255, 0),
	RGB(0, 255, 255),
	RGB(255, 0, 255),
	RGB(255, 255, 0),
	RGB(100, 100, 100),
}

// DefaultPalette returns the equalized full-color palette.
func DefaultPalette() []GraphColor {
	return EqualizePalette(DefaultCushionColors)
}

// DefaultPalette256 returns the unequalized low-color palette.
func DefaultPalette256() []GraphColor {
	out := make([]GraphColor, len(DefaultCushionColors256))
	copy(out, DefaultCushionColors256)
	return out
}
