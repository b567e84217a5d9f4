package colorconv

// Convert parses color according to fromFormat and renders it in toFormat.
// Format tags are case-insensitive.
//
// The returned error wraps ErrParse when color does not match its format,
// ErrUnsupportedFormat when either tag is unknown, and ErrConversion when
// the canonical value cannot be projected into the target space.
//
//	hex, err := colorconv.Convert("rgb", "hex", "rgb(255, 0, 128)")
//	// hex == "#ff0080"
func Convert(fromFormat, toFormat, color string) (string, error) {
	target, ok := ParseFormat(toFormat)
	if !ok {
		return "", unsupportedError("format", string(target))
	}

	parsed, err := Parse(fromFormat, color)
	if err != nil {
		return "", err
	}

	from, _ := ParseFormat(fromFormat)
	return FormatColor(target, parsed, Source{Format: from, Text: color})
}

// ConvertAll parses color once and renders it in every output format,
// keyed by format tag.
func ConvertAll(fromFormat, color string) (map[Format]string, error) {
	parsed, err := Parse(fromFormat, color)
	if err != nil {
		return nil, err
	}

	from, _ := ParseFormat(fromFormat)
	src := Source{Format: from, Text: color}

	out := make(map[Format]string, len(Formats()))
	for _, f := range Formats() {
		s, err := FormatColor(f, parsed, src)
		if err != nil {
			return nil, err
		}
		out[f] = s
	}
	return out, nil
}
