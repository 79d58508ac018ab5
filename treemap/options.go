package treemap

import "math"

// Style selects a layout algorithm.
type Style int

const (
	KDirStat Style = iota
	SequoiaView
	Simple
)

func (s Style) String() string {
	switch s {
	case KDirStat:
		return "kdirstat"
	case SequoiaView:
		return "sequoiaview"
	case Simple:
		return "simple"
	default:
		return "unknown"
	}
}

// Options holds the style/grid/light/height/scale/ambient parameters that
// control layout style, grid rendering and cushion shading.
type Options struct {
	Style     Style
	Grid      bool
	GridColor GraphColor

	Brightness  float64
	Height      float64
	ScaleFactor float64
	Ambient     float64
	LightX      float64
	LightY      float64

	// derived by Normalize
	lx, ly, lz float64
}

// DefaultOptions returns the modern default parameter set.
func DefaultOptions() Options {
	o := Options{
		Style:       KDirStat,
		Grid:        false,
		GridColor:   RGB(0, 0, 0),
		Brightness:  0.88,
		Height:      0.38,
		ScaleFactor: 0.91,
		Ambient:     0.13,
		LightX:      -1.0,
		LightY:      -1.0,
	}
	o.Normalize(false)
	return o
}

// LegacyDefaultOptions returns the older parameter set the original shipped
// before the "modern" defaults (CTreemap::_defaultOptionsOld).
func LegacyDefaultOptions() Options {
	o := Options{
		Style:       KDirStat,
		Grid:        false,
		GridColor:   RGB(0, 0, 0),
		Brightness:  0.85,
		Height:      0.4,
		ScaleFactor: 0.9,
		Ambient:     0.15,
		LightX:      -1.0,
		LightY:      -1.0,
	}
	o.Normalize(false)
	return o
}

// Normalize derives the normalized light vector from LightX/LightY (z fixed
// at 10) and, when is256Colors is true, forces Brightness to
// PaletteBrightness (so the brightness slider has no effect on such
// displays, matching CTreemap::SetBrightnessFor256).
func (o *Options) Normalize(is256Colors bool) {
	const lz = 10.0
	lx, ly := o.LightX, o.LightY
	length := math.Sqrt(lx*lx + ly*ly + lz*lz)
	if length == 0 {
		length = 1
	}
	o.lx = lx / length
	o.ly = ly / length
	o.lz = lz / length

	if is256Colors {
		o.Brightness = PaletteBrightness
	}
}

// LightVector returns the normalized light direction derived by the most
// recent call to Normalize.
func (o Options) LightVector() (lx, ly, lz float64) {
	return o.lx, o.ly, o.lz
}

// CushionShadingEnabled reports whether the current options produce cushion
// shading (as opposed to flat solid fills).
func (o Options) CushionShadingEnabled() bool {
	return o.Ambient < 1.0 && o.Height > 0.0 && o.ScaleFactor > 0.0
}

// GridWidth returns the number of pixels reserved for grid separators: 1
// when Grid is enabled, 0 otherwise.
func (o Options) GridWidth() int {
	if o.Grid {
		return 1
	}
	return 0
}
