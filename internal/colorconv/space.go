package colorconv

import (
	"fmt"
	"math"
)

// achromaticChroma is the OKLCH chroma below which hue is meaningless.
// Neutral sRGB grays land around 1e-8 because of matrix rounding.
const achromaticChroma = 1e-6

// CIELAB constants (CIE 15:2004, exact rational forms).
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// D50 reference white, derived from its xy chromaticity (0.3457, 0.3585).
var whiteD50 = [3]float64{0.3457 / 0.3585, 1.0, (1.0 - 0.3457 - 0.3585) / 0.3585}

// Linear sRGB to D50 XYZ (Bradford-adapted). The inverse is derived from it
// so that LAB round trips are exact to float precision.
var (
	linearRGBToXYZ50 = [3][3]float64{
		{0.436065742824811, 0.3851514688337912, 0.14307845442264197},
		{0.22249319175623702, 0.7168870538238823, 0.06061979053616537},
		{0.013923904500943465, 0.09708128566574634, 0.7140993584005155},
	}
	xyz50ToLinearRGB = invertMatrix(linearRGBToXYZ50)
)

// Oklab matrices from Björn Ottosson's reference implementation.
var (
	linearRGBToLMS = [3][3]float64{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	lmsToOklab = [3][3]float64{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	oklabToLMS = [3][3]float64{
		{1, 0.3963377774, 0.2158037573},
		{1, -0.1055613458, -0.0638541728},
		{1, -0.0894841775, -1.2914855480},
	}
	lmsToLinearRGB = [3][3]float64{
		{4.0767416621, -3.3077115913, 0.2309699292},
		{-1.2684380046, 2.6097574011, -0.3413193965},
		{-0.0041960863, -0.7034186147, 1.7076147010},
	}
)

// ToRGB projects any canonical value onto sRGB. HSL, OKLCH and LAB values
// come back opaque; an RGB value is returned unchanged.
func ToRGB(c Color) (RGB, error) {
	switch v := c.(type) {
	case RGB:
		return v, nil
	case HSL:
		return hslToRGB(v), nil
	case OKLCH:
		return oklchToRGB(v), nil
	case LAB:
		return labToRGB(v), nil
	default:
		return RGB{}, conversionError(ModeRGB, fmt.Errorf("unknown color value %T", c))
	}
}

// ToHSL converts c to HSL, routing through RGB. Alpha is dropped.
// Out-of-gamut input is clamped to the sRGB cube first so that saturation
// and lightness stay in [0,1].
func ToHSL(c Color) (HSL, error) {
	if v, ok := c.(HSL); ok {
		return v, nil
	}
	rgb, err := ToRGB(c)
	if err != nil {
		return HSL{}, conversionError(ModeHSL, err)
	}
	return rgbToHSL(clampRGB(rgb)), nil
}

// ToOKLCH converts c to OKLCH, routing through RGB. Alpha is dropped.
func ToOKLCH(c Color) (OKLCH, error) {
	if v, ok := c.(OKLCH); ok {
		return v, nil
	}
	rgb, err := ToRGB(c)
	if err != nil {
		return OKLCH{}, conversionError(ModeOKLCH, err)
	}
	return rgbToOKLCH(rgb), nil
}

// ToLAB converts c to CIELAB (D50), routing through RGB. Alpha is dropped.
func ToLAB(c Color) (LAB, error) {
	if v, ok := c.(LAB); ok {
		return v, nil
	}
	rgb, err := ToRGB(c)
	if err != nil {
		return LAB{}, conversionError(ModeLAB, err)
	}
	return rgbToLAB(rgb), nil
}

// rgbToHSL uses the hexcone model. Achromatic input (max == min) yields
// hue 0 and saturation 0 rather than dividing by zero.
func rgbToHSL(c RGB) HSL {
	maxC := math.Max(c.R, math.Max(c.G, c.B))
	minC := math.Min(c.R, math.Min(c.G, c.B))
	delta := maxC - minC
	l := (maxC + minC) / 2

	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	s := delta / (1 - math.Abs(maxC+minC-1))

	var h float64
	switch maxC {
	case c.R:
		h = (c.G - c.B) / delta
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/delta + 2
	default:
		h = (c.R-c.G)/delta + 4
	}

	return HSL{H: h * 60, S: s, L: l}
}

func hslToRGB(c HSL) RGB {
	h := normalizeHue(c.H)
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := c.L - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{R: r + m, G: g + m, B: b + m}
}

func rgbToOKLCH(c RGB) OKLCH {
	lin := [3]float64{srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B)}
	lms := mulMatrix(linearRGBToLMS, lin)
	for i := range lms {
		lms[i] = math.Cbrt(lms[i])
	}
	lab := mulMatrix(lmsToOklab, lms)

	chroma := math.Hypot(lab[1], lab[2])
	if chroma < achromaticChroma {
		return OKLCH{L: lab[0], C: 0, H: 0}
	}
	hue := normalizeHue(math.Atan2(lab[2], lab[1]) * 180 / math.Pi)
	return OKLCH{L: lab[0], C: chroma, H: hue}
}

func oklchToRGB(c OKLCH) RGB {
	rad := c.H * math.Pi / 180
	lab := [3]float64{c.L, c.C * math.Cos(rad), c.C * math.Sin(rad)}
	lms := mulMatrix(oklabToLMS, lab)
	for i := range lms {
		lms[i] = lms[i] * lms[i] * lms[i]
	}
	lin := mulMatrix(lmsToLinearRGB, lms)
	return RGB{R: linearToSRGB(lin[0]), G: linearToSRGB(lin[1]), B: linearToSRGB(lin[2])}
}

func rgbToLAB(c RGB) LAB {
	lin := [3]float64{srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B)}
	xyz := mulMatrix(linearRGBToXYZ50, lin)

	fx := labF(xyz[0] / whiteD50[0])
	fy := labF(xyz[1] / whiteD50[1])
	fz := labF(xyz[2] / whiteD50[2])

	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labToRGB(c LAB) RGB {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	var y float64
	if c.L > labKappa*labEpsilon {
		y = fy * fy * fy
	} else {
		y = c.L / labKappa
	}
	xyz := [3]float64{
		labFInv(fx) * whiteD50[0],
		y * whiteD50[1],
		labFInv(fz) * whiteD50[2],
	}

	lin := mulMatrix(xyz50ToLinearRGB, xyz)
	return RGB{R: linearToSRGB(lin[0]), G: linearToSRGB(lin[1]), B: linearToSRGB(lin[2])}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(t float64) float64 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

// srgbToLinear removes the sRGB transfer curve. It is odd-symmetric so that
// out-of-gamut negative channels survive a round trip.
func srgbToLinear(v float64) float64 {
	abs := math.Abs(v)
	if abs <= 0.04045 {
		return v / 12.92
	}
	return math.Copysign(math.Pow((abs+0.055)/1.055, 2.4), v)
}

func linearToSRGB(v float64) float64 {
	abs := math.Abs(v)
	if abs <= 0.0031308 {
		return v * 12.92
	}
	return math.Copysign(1.055*math.Pow(abs, 1/2.4)-0.055, v)
}

// clampRGB limits each channel to [0,1]; NaN becomes 0.
func clampRGB(c RGB) RGB {
	unit := func(v float64) float64 {
		if math.IsNaN(v) {
			return 0
		}
		return clamp(v, 0, 1)
	}
	return RGB{R: unit(c.R), G: unit(c.G), B: unit(c.B)}
}

// invertMatrix returns the inverse of a non-singular 3x3 matrix.
func invertMatrix(m [3][3]float64) [3][3]float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	c00 := e*i - f*h
	c01 := f*g - d*i
	c02 := d*h - e*g
	det := a*c00 + b*c01 + c*c02

	return [3][3]float64{
		{c00 / det, (c*h - b*i) / det, (b*f - c*e) / det},
		{c01 / det, (a*i - c*g) / det, (c*d - a*f) / det},
		{c02 / det, (b*g - a*h) / det, (a*e - b*d) / det},
	}
}

func mulMatrix(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// normalizeHue maps any angle into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
