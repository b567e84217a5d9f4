package colorconv

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Grammars for the tagged formats. Components are captured loosely and
// validated by strconv, so "1.2.3" matches here but fails as a number.
var (
	rgbPattern   = regexp.MustCompile(`(?i)rgb\(([-\d.]+%?),\s*([-\d.]+%?),\s*([-\d.]+%?)\)`)
	rgbaPattern  = regexp.MustCompile(`(?i)rgba\(([-\d.]+%?),\s*([-\d.]+%?),\s*([-\d.]+%?),\s*([-\d.]+%?)\)`)
	hslPattern   = regexp.MustCompile(`(?i)hsl\(([-\d.]+)[, ]+([-\d.]+)%?,?[, ]+([-\d.]+)%?\)`)
	labPattern   = regexp.MustCompile(`(?i)lab\(([-\d.]+)[, ]+([-\d.]+)[, ]+([-\d.]+)\)`)
	oklchPattern = regexp.MustCompile(`(?i)oklch\(([-\d.]+)[, ]+([-\d.]+)[, ]+([-\d.]+)\)`)
	cmykPattern  = regexp.MustCompile(`(?i)cmyk\(([-\d.]+%?),\s*([-\d.]+%?),\s*([-\d.]+%?),\s*([-\d.]+%?)\)`)
)

// Parse reads text according to the format tag and returns its canonical
// value. Tags are case-insensitive. Tags outside the known grammars go
// through a best-effort parse of common CSS color syntax; if that fails too
// an unknown tag is reported as ErrUnsupportedFormat.
func Parse(tag, text string) (Color, error) {
	format, known := ParseFormat(tag)

	switch format {
	case FormatRGB:
		return parseRGB(text)
	case FormatRGBA:
		return parseRGBA(text)
	case FormatHex:
		return parseHex(text)
	case FormatHSL:
		return parseHSL(text)
	case FormatLAB:
		return parseLAB(text)
	case FormatOKLCH:
		return parseOKLCH(text)
	case FormatCMYK:
		return parseCMYK(text)
	}

	c, err := parseGeneric(text)
	if err != nil {
		if !known {
			return nil, &Error{Op: "parse", Format: string(format), Kind: ErrUnsupportedFormat, Err: err}
		}
		return nil, parseError(string(format), text, err)
	}
	return c, nil
}

func parseRGB(text string) (Color, error) {
	m := rgbPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, parseError("rgb", text, nil)
	}
	ch, err := parseChannels(m[1:4], parsePercentOr255)
	if err != nil {
		return nil, parseError("rgb", text, err)
	}
	return RGB{R: ch[0] / 255, G: ch[1] / 255, B: ch[2] / 255}, nil
}

func parseRGBA(text string) (Color, error) {
	m := rgbaPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, parseError("rgba", text, nil)
	}
	ch, err := parseChannels(m[1:5], parsePercentOr255)
	if err != nil {
		return nil, parseError("rgba", text, err)
	}
	return RGB{R: ch[0] / 255, G: ch[1] / 255, B: ch[2] / 255, Alpha: ch[3] / 255, HasAlpha: true}, nil
}

// parseHex accepts "#RRGGBB" and "#RRGGBBAA" only.
func parseHex(text string) (Color, error) {
	if !strings.HasPrefix(text, "#") {
		return nil, parseError("hex", text, fmt.Errorf("missing leading '#'"))
	}
	digits := text[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return nil, parseError("hex", text, fmt.Errorf("invalid hex length %d", len(digits)))
	}
	bytes, err := hexBytes(digits)
	if err != nil {
		return nil, parseError("hex", text, err)
	}
	c := RGB{
		R:        float64(bytes[0]) / 255,
		G:        float64(bytes[1]) / 255,
		B:        float64(bytes[2]) / 255,
		Alpha:    1,
		HasAlpha: true,
	}
	if len(bytes) == 4 {
		c.Alpha = float64(bytes[3]) / 255
	}
	return c, nil
}

// parseHSL keeps the hue as written; saturation and lightness are
// percentages whether or not the '%' is present.
func parseHSL(text string) (Color, error) {
	m := hslPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, parseError("hsl", text, nil)
	}
	v, err := parseNumbers(m[1:4])
	if err != nil {
		return nil, parseError("hsl", text, err)
	}
	return HSL{H: v[0], S: v[1] / 100, L: v[2] / 100}, nil
}

func parseLAB(text string) (Color, error) {
	m := labPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, parseError("lab", text, nil)
	}
	v, err := parseNumbers(m[1:4])
	if err != nil {
		return nil, parseError("lab", text, err)
	}
	return LAB{L: v[0], A: v[1], B: v[2]}, nil
}

func parseOKLCH(text string) (Color, error) {
	m := oklchPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, parseError("oklch", text, nil)
	}
	v, err := parseNumbers(m[1:4])
	if err != nil {
		return nil, parseError("oklch", text, err)
	}
	return OKLCH{L: v[0], C: v[1], H: v[2]}, nil
}

// parseCMYK clamps each component to [0,100]; the '%' suffix is optional
// and does not change the value.
func parseCMYK(text string) (Color, error) {
	m := cmykPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, parseError("cmyk", text, nil)
	}
	ch, err := parseChannels(m[1:5], func(s string) (float64, error) {
		v, err := parseClampedNumber(strings.TrimSuffix(s, "%"))
		if err != nil {
			return 0, err
		}
		return clamp(v, 0, 100), nil
	})
	if err != nil {
		return nil, parseError("cmyk", text, err)
	}
	return CMYKToRGB(CMYK{C: ch[0], M: ch[1], Y: ch[2], K: ch[3]}), nil
}

// parsePercentOr255 reads a channel given either on the 0-255 scale or as a
// percentage, clamped to [0,255].
func parsePercentOr255(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseClampedNumber(pct)
		if err != nil {
			return 0, err
		}
		return clamp(v*2.55, 0, 255), nil
	}
	v, err := parseClampedNumber(s)
	if err != nil {
		return 0, err
	}
	return clamp(v, 0, 255), nil
}

func parseChannels(parts []string, conv func(string) (float64, error)) ([]float64, error) {
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := conv(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseNumbers(parts []string) ([]float64, error) {
	return parseChannels(parts, parseNumber)
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// parseClampedNumber is parseNumber for components that are clamped
// afterwards: a magnitude beyond float64 range reads as ±Inf instead of
// failing.
func parseClampedNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// hexBytes decodes pairs of hex digits. Signs and prefixes are rejected.
func hexBytes(digits string) ([]uint8, error) {
	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("odd number of hex digits")
	}
	out := make([]uint8, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		v, err := strconv.ParseUint(digits[i:i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex digits %q", digits[i:i+2])
		}
		out = append(out, uint8(v))
	}
	return out, nil
}
