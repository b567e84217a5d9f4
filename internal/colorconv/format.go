package colorconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format is a lower-case color format tag such as "hex" or "cmyk".
type Format string

const (
	FormatRGB   Format = "rgb"
	FormatRGBA  Format = "rgba"
	FormatHex   Format = "hex"
	FormatHex8  Format = "hex8"
	FormatHSL   Format = "hsl"
	FormatLAB   Format = "lab"
	FormatOKLCH Format = "oklch"
	FormatCMYK  Format = "cmyk"
)

// Formats returns every format tag accepted as a conversion target, in a
// stable order.
func Formats() []Format {
	return []Format{
		FormatRGB, FormatRGBA, FormatHex, FormatHex8,
		FormatHSL, FormatLAB, FormatOKLCH, FormatCMYK,
	}
}

// ParseFormat normalizes a user-supplied tag. The boolean reports whether
// the tag names one of the known formats.
func ParseFormat(tag string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(tag)))
	for _, known := range Formats() {
		if f == known {
			return f, true
		}
	}
	return f, false
}

// Source describes where a canonical value came from. The hex formatter
// looks at it to decide whether to keep an alpha byte.
type Source struct {
	Format Format // normalized source tag
	Text   string // input string as given
}

// FormatColor renders c in the target format.
func FormatColor(target Format, c Color, src Source) (string, error) {
	switch target {
	case FormatHex:
		rgb, err := ToRGB(c)
		if err != nil {
			return "", err
		}
		return formatHex(rgb, src), nil
	case FormatHex8:
		rgb, err := ToRGB(c)
		if err != nil {
			return "", err
		}
		return hexString(rgb, true), nil
	case FormatRGB:
		rgb, err := ToRGB(c)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("rgb(%d,%d,%d)", toByte(rgb.R), toByte(rgb.G), toByte(rgb.B)), nil
	case FormatRGBA:
		rgb, err := ToRGB(c)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("rgba(%d,%d,%d,%d)",
			toByte(rgb.R), toByte(rgb.G), toByte(rgb.B), toByte(rgb.Opacity())), nil
	case FormatHSL:
		hsl, err := ToHSL(c)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("hsl(%d,%d,%d)",
			roundInt(hsl.H), roundInt(hsl.S*100), roundInt(hsl.L*100)), nil
	case FormatOKLCH:
		lch, err := ToOKLCH(c)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("oklch(%s %s %s)", fixed2(lch.L), fixed2(lch.C), fixed2(lch.H)), nil
	case FormatLAB:
		lab, err := ToLAB(c)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("lab(%s %s %s)", fixed2(lab.L), fixed2(lab.A), fixed2(lab.B)), nil
	case FormatCMYK:
		rgb, err := ToRGB(c)
		if err != nil {
			return "", err
		}
		cmyk := RGBToCMYK(toByte(rgb.R), toByte(rgb.G), toByte(rgb.B))
		return fmt.Sprintf("cmyk(%s%%, %s%%, %s%%, %s%%)",
			fixed2(cmyk.C), fixed2(cmyk.M), fixed2(cmyk.Y), fixed2(cmyk.K)), nil
	default:
		return "", unsupportedError("format", string(target))
	}
}

// formatHex applies the alpha rules in priority order:
//  1. rgba input keeps its alpha byte unless it is 255;
//  2. an 8-digit hex input always yields 8 digits;
//  3. otherwise the alpha byte is written only when below 255.
func formatHex(rgb RGB, src Source) string {
	opaque := toByte(rgb.Opacity()) == 255
	switch {
	case src.Format == FormatRGBA:
		return hexString(rgb, !opaque)
	case strings.HasPrefix(src.Text, "#") && len(src.Text) == 9:
		return hexString(rgb, true)
	default:
		return hexString(rgb, !opaque)
	}
}

func hexString(rgb RGB, withAlpha bool) string {
	if withAlpha {
		return fmt.Sprintf("#%02x%02x%02x%02x",
			toByte(rgb.R), toByte(rgb.G), toByte(rgb.B), toByte(rgb.Opacity()))
	}
	return fmt.Sprintf("#%02x%02x%02x", toByte(rgb.R), toByte(rgb.G), toByte(rgb.B))
}

// toByte scales a unit channel to 0-255, rounding then clamping.
func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(clamp(math.Round(v*255), 0, 255))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// fixed2 prints v rounded to two decimals without trailing zeros.
// Negative zero prints as "0".
func fixed2(v float64) string {
	r := round2(v)
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
