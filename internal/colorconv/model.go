package colorconv

// Mode identifies which color space a canonical value lives in.
type Mode int

const (
	ModeRGB Mode = iota
	ModeHSL
	ModeOKLCH
	ModeLAB
)

func (m Mode) String() string {
	switch m {
	case ModeRGB:
		return "rgb"
	case ModeHSL:
		return "hsl"
	case ModeOKLCH:
		return "oklch"
	case ModeLAB:
		return "lab"
	default:
		return "unknown"
	}
}

// Color is a canonical color value. It is implemented only by RGB, HSL,
// OKLCH and LAB; every converter and formatter switches over exactly those
// four types.
type Color interface {
	Mode() Mode
	sealed()
}

// RGB is an sRGB color with gamma-encoded components.
//
// Parsers store channels in [0,1]; the converters may produce values outside
// that range for out-of-gamut LAB/OKLCH input, which the formatters clamp.
type RGB struct {
	R float64 `json:"r"` // Red (0-1)
	G float64 `json:"g"` // Green (0-1)
	B float64 `json:"b"` // Blue (0-1)

	// Alpha is only meaningful when HasAlpha is set; a missing alpha
	// means fully opaque.
	Alpha    float64 `json:"alpha,omitempty"`
	HasAlpha bool    `json:"-"`
}

// HSL is a color in the HSL cylinder.
type HSL struct {
	H float64 `json:"h"` // Hue in degrees, not wrapped
	S float64 `json:"s"` // Saturation (0-1)
	L float64 `json:"l"` // Lightness (0-1)
}

// OKLCH is the polar form of the Oklab perceptual space.
type OKLCH struct {
	L float64 `json:"l"` // Lightness (0-1)
	C float64 `json:"c"` // Chroma (>= 0)
	H float64 `json:"h"` // Hue in degrees
}

// LAB is a CIELAB color relative to the D50 white point.
type LAB struct {
	L float64 `json:"l"` // Lightness (0-100)
	A float64 `json:"a"` // Green-red axis
	B float64 `json:"b"` // Blue-yellow axis
}

func (RGB) Mode() Mode   { return ModeRGB }
func (HSL) Mode() Mode   { return ModeHSL }
func (OKLCH) Mode() Mode { return ModeOKLCH }
func (LAB) Mode() Mode   { return ModeLAB }

func (RGB) sealed()   {}
func (HSL) sealed()   {}
func (OKLCH) sealed() {}
func (LAB) sealed()   {}

// Opacity returns the alpha channel, treating a missing alpha as 1.
func (c RGB) Opacity() float64 {
	if !c.HasAlpha {
		return 1
	}
	return c.Alpha
}

// WithAlpha returns a copy of c carrying the given alpha.
func (c RGB) WithAlpha(a float64) RGB {
	c.Alpha = a
	c.HasAlpha = true
	return c
}

// CMYK holds ink coverage percentages (0-100). It has no canonical mode:
// parsing converts it to RGB immediately and formatting derives it from RGB.
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}
