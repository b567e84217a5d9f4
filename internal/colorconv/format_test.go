package colorconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatColor_HexAlphaRules(t *testing.T) {
	semi := RGB{R: 1, G: 0.5, B: 0}.WithAlpha(64.0 / 255)
	opaque := RGB{R: 1, G: 0.5, B: 0}.WithAlpha(1)

	tests := []struct {
		name  string
		color RGB
		src   Source
		want  string
	}{
		{"rgba source keeps alpha", semi, Source{Format: FormatRGBA, Text: "rgba(255,128,0,64)"}, "#ff800040"},
		{"rgba source drops opaque alpha", opaque, Source{Format: FormatRGBA, Text: "rgba(255,128,0,255)"}, "#ff8000"},
		{"8-digit hex input keeps opaque alpha", opaque, Source{Format: FormatHex, Text: "#ff8000ff"}, "#ff8000ff"},
		{"8-digit text under another tag", opaque, Source{Format: Format("css"), Text: "#ff8000ff"}, "#ff8000ff"},
		{"6-digit hex input stays 6 digits", opaque, Source{Format: FormatHex, Text: "#ff8000"}, "#ff8000"},
		{"translucent value gets alpha", semi, Source{Format: FormatHex, Text: "#ff8000"}, "#ff800040"},
		{"missing alpha is opaque", RGB{R: 1, G: 0.5}, Source{Format: FormatRGB}, "#ff8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatColor(FormatHex, tt.color, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatColor_ClampsOutOfGamut(t *testing.T) {
	c := RGB{R: 1.2, G: -0.3, B: 0.5}

	got, err := FormatColor(FormatRGB, c, Source{})
	require.NoError(t, err)
	assert.Equal(t, "rgb(255,0,128)", got)

	got, err = FormatColor(FormatHex8, c, Source{})
	require.NoError(t, err)
	assert.Equal(t, "#ff0080ff", got)

	// A saturated LAB magenta lies outside sRGB.
	got, err = FormatColor(FormatHex, LAB{L: 50, A: 120, B: 0}, Source{Format: FormatLAB})
	require.NoError(t, err)
	assert.Equal(t, "#ff007e", got)
}

func TestFormatColor_Unsupported(t *testing.T) {
	_, err := FormatColor(Format("xyz"), RGB{}, Source{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = FormatColor(FormatHex, nil, Source{})
	assert.ErrorIs(t, err, ErrConversion)
}

func TestFixed2(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{-0.001, "0"},
		{0.7, "0.7"},
		{0.70001, "0.7"},
		{207.8300263, "207.83"},
		{-17.7149, "-17.71"},
		{100.0000014, "100"},
		{12, "12"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fixed2(tt.in), "fixed2(%v)", tt.in)
	}
}

func TestToByte(t *testing.T) {
	assert.Equal(t, uint8(0), toByte(-1))
	assert.Equal(t, uint8(255), toByte(2))
	assert.Equal(t, uint8(128), toByte(0.5))
	assert.Equal(t, uint8(0), toByte(math.NaN()))
}
