package colorconv

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var cssFuncPattern = regexp.MustCompile(`^([a-z]+)\(\s*(.*?)\s*\)$`)

// parseGeneric recognizes common CSS color syntax: named colors,
// "transparent", 3/4/6/8-digit hex, rgb()/rgba(), hsl()/hsla(),
// color(srgb ...), and the lab()/oklch()/cmyk() grammars. Alpha in CSS
// functions is a 0-1 fraction or a percentage.
func parseGeneric(text string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil, fmt.Errorf("empty color string")
	}

	if s == "transparent" {
		return RGB{HasAlpha: true}, nil
	}
	if nc, ok := colornames.Map[s]; ok {
		return RGB{R: float64(nc.R) / 255, G: float64(nc.G) / 255, B: float64(nc.B) / 255}, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseCSSHex(s)
	}

	m := cssFuncPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("unrecognized color syntax %q", text)
	}
	name, body := m[1], m[2]

	switch name {
	case "rgb", "rgba":
		return parseCSSRGB(body)
	case "hsl", "hsla":
		return parseCSSHSL(body)
	case "color":
		return parseCSSColorFunc(body)
	case "lab":
		return parseLAB(s)
	case "oklch":
		return parseOKLCH(s)
	case "cmyk":
		return parseCMYK(s)
	default:
		return nil, fmt.Errorf("unknown color function %q", name)
	}
}

// parseCSSHex handles the shorthand forms in addition to the long ones.
func parseCSSHex(s string) (Color, error) {
	digits := s[1:]
	switch len(digits) {
	case 3, 6:
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, err
		}
		return RGB{R: c.R, G: c.G, B: c.B}, nil
	case 4:
		expanded := make([]byte, 0, 8)
		for i := 0; i < 4; i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	case 8:
	default:
		return nil, fmt.Errorf("invalid hex length %d", len(digits))
	}

	b, err := hexBytes(digits)
	if err != nil {
		return nil, err
	}
	return RGB{
		R:        float64(b[0]) / 255,
		G:        float64(b[1]) / 255,
		B:        float64(b[2]) / 255,
		Alpha:    float64(b[3]) / 255,
		HasAlpha: true,
	}, nil
}

func parseCSSRGB(body string) (Color, error) {
	parts, alpha, err := splitCSSArgs(body, 3)
	if err != nil {
		return nil, err
	}
	ch, err := parseChannels(parts, parsePercentOr255)
	if err != nil {
		return nil, err
	}
	c := RGB{R: ch[0] / 255, G: ch[1] / 255, B: ch[2] / 255}
	return withCSSAlpha(c, alpha)
}

// parseCSSHSL returns an HSL value, or an RGB value when an alpha channel
// is present since HSL carries no alpha.
func parseCSSHSL(body string) (Color, error) {
	parts, alpha, err := splitCSSArgs(body, 3)
	if err != nil {
		return nil, err
	}
	h, err := parseNumber(strings.TrimSuffix(parts[0], "deg"))
	if err != nil {
		return nil, err
	}
	sl, err := parseChannels(parts[1:], func(p string) (float64, error) {
		return parseNumber(strings.TrimSuffix(p, "%"))
	})
	if err != nil {
		return nil, err
	}
	hsl := HSL{H: h, S: sl[0] / 100, L: sl[1] / 100}
	if alpha == "" {
		return hsl, nil
	}
	return withCSSAlpha(hslToRGB(hsl), alpha)
}

// parseCSSColorFunc supports the srgb color space of color().
func parseCSSColorFunc(body string) (Color, error) {
	space, rest, _ := strings.Cut(body, " ")
	if space != "srgb" {
		return nil, fmt.Errorf("unsupported color() space %q", space)
	}
	parts, alpha, err := splitCSSArgs(rest, 3)
	if err != nil {
		return nil, err
	}
	ch, err := parseChannels(parts, parseUnitOrPercent)
	if err != nil {
		return nil, err
	}
	return withCSSAlpha(RGB{R: ch[0], G: ch[1], B: ch[2]}, alpha)
}

// splitCSSArgs splits a function body into n components plus an optional
// alpha, accepting both "a, b, c, d" and "a b c / d".
func splitCSSArgs(body string, n int) ([]string, string, error) {
	var alpha string
	main := body
	if before, after, ok := strings.Cut(body, "/"); ok {
		main, alpha = before, strings.TrimSpace(after)
		if alpha == "" {
			return nil, "", fmt.Errorf("missing alpha after '/'")
		}
	}

	var parts []string
	if strings.Contains(main, ",") {
		for _, p := range strings.Split(main, ",") {
			parts = append(parts, strings.TrimSpace(p))
		}
	} else {
		parts = strings.Fields(main)
	}

	if alpha == "" && len(parts) == n+1 {
		parts, alpha = parts[:n], parts[n]
	}
	if len(parts) != n {
		return nil, "", fmt.Errorf("expected %d components, got %d", n, len(parts))
	}
	return parts, alpha, nil
}

func withCSSAlpha(c RGB, alpha string) (Color, error) {
	if alpha == "" {
		return c, nil
	}
	a, err := parseUnitOrPercent(alpha)
	if err != nil {
		return nil, err
	}
	return c.WithAlpha(a), nil
}

// parseUnitOrPercent reads a 0-1 fraction or a percentage, clamped to [0,1].
func parseUnitOrPercent(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseClampedNumber(pct)
		if err != nil {
			return 0, err
		}
		return clamp(v/100, 0, 1), nil
	}
	v, err := parseClampedNumber(s)
	if err != nil {
		return 0, err
	}
	return clamp(v, 0, 1), nil
}
