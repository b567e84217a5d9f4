package colorconv

import "math"

// CMYKToRGB converts ink percentages (0-100) to an opaque RGB value. Each
// channel is rounded to the nearest 8-bit step before normalization, so the
// result is always exactly representable as hex.
func CMYKToRGB(c CMYK) RGB {
	cf, mf, yf, kf := c.C/100, c.M/100, c.Y/100, c.K/100
	return RGB{
		R: math.Round(255*(1-cf)*(1-kf)) / 255,
		G: math.Round(255*(1-mf)*(1-kf)) / 255,
		B: math.Round(255*(1-yf)*(1-kf)) / 255,
	}
}

// RGBToCMYK converts 8-bit channels to ink percentages rounded to two
// decimals. Pure black reports c=m=y=0.
func RGBToCMYK(r, g, b uint8) CMYK {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	k := 1 - math.Max(rf, math.Max(gf, bf))
	if k == 1 {
		return CMYK{K: 100}
	}
	return CMYK{
		C: round2((1 - rf - k) / (1 - k) * 100),
		M: round2((1 - gf - k) / (1 - k) * 100),
		Y: round2((1 - bf - k) / (1 - k) * 100),
		K: round2(k * 100),
	}
}
