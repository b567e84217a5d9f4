// Package colorconv converts textual color representations between formats.
//
// Supported format tags (case-insensitive):
//   - rgb:   rgb(R, G, B) with 0-255 or percentage channels
//   - rgba:  rgba(R, G, B, A) with A on the 0-255 scale or a percentage
//   - hex:   #RRGGBB or #RRGGBBAA
//   - hex8:  always eight digits on output; parsed as generic CSS on input
//   - hsl:   hsl(H, S%, L%)
//   - lab:   lab(L A B), CIELAB relative to D50
//   - oklch: oklch(L C H)
//   - cmyk:  cmyk(C%, M%, Y%, K%)
//
// # Pipeline
//
// Every conversion runs input text through a parser into a canonical Color
// (one of RGB, HSL, OKLCH or LAB), projects it into the space the target
// format needs, and formats it. RGB is the hub: HSL to LAB goes through RGB.
// CMYK has no canonical mode and is converted to RGB while parsing.
//
// # Clamping
//
// Out-of-range RGB and CMYK inputs are clamped, not rejected. Output
// channels are rounded and clamped to 0-255, so out-of-gamut LAB and OKLCH
// colors are squeezed into sRGB component by component.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package colorconv
