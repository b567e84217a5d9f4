package colorconv

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of
// them, so callers can classify failures with errors.Is.
var (
	// ErrParse means the input does not match the grammar of its format or
	// holds a component that is not a number.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedFormat means a source or target format tag is unknown.
	ErrUnsupportedFormat = errors.New("unsupported color format")

	// ErrConversion means a canonical value could not be projected into
	// another color space.
	ErrConversion = errors.New("conversion failure")
)

// Error describes a failed conversion step.
type Error struct {
	Op     string // "parse", "convert" or "format"
	Format string // format tag involved, if any
	Input  string // offending input text, if any
	Kind   error  // one of ErrParse, ErrUnsupportedFormat, ErrConversion
	Err    error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	var msg string
	switch {
	case e.Kind == ErrUnsupportedFormat:
		msg = fmt.Sprintf("Unsupported color format: %s", e.Format)
	case e.Input != "":
		msg = fmt.Sprintf("Unable to parse color: %s", e.Input)
	case e.Format != "":
		msg = fmt.Sprintf("Conversion to %s failed", e.Format)
	default:
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the error kind and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func parseError(format, input string, cause error) error {
	return &Error{Op: "parse", Format: format, Input: input, Kind: ErrParse, Err: cause}
}

func unsupportedError(op, format string) error {
	return &Error{Op: op, Format: format, Kind: ErrUnsupportedFormat}
}

func conversionError(target Mode, cause error) error {
	return &Error{Op: "convert", Format: target.String(), Kind: ErrConversion, Err: cause}
}
