package tagcolor

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an HSL triple. Saturation and Lightness are percentages.
type Color struct {
	Hue        int `json:"hue"`
	Saturation int `json:"saturation"`
	Lightness  int `json:"lightness"`
}

// FallbackColor is the badge background for an empty tag (#cccccc).
var FallbackColor = Color{Hue: 0, Saturation: 0, Lightness: 80}

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex formats the triple as #rrggbb.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// RGB converts the color with HSLToRGB.
func (c Color) RGB() RGB {
	r, g, b := HSLToRGB(float64(c.Hue), float64(c.Saturation), float64(c.Lightness))
	return RGB{R: r, G: g, B: b}
}

// Hex returns the #rrggbb form, suitable for lipgloss.Color.
func (c Color) Hex() string {
	return c.RGB().Hex()
}

// CSS returns the hsl() form the web client used.
func (c Color) CSS() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue, c.Saturation, c.Lightness)
}

// MarshalJSON adds the hex form next to the HSL components.
func (c Color) MarshalJSON() ([]byte, error) {
	type plain Color
	return json.Marshal(struct {
		plain
		Hex string `json:"hex"`
	}{plain: plain(c), Hex: c.Hex()})
}

// HSLToRGB converts hue (degrees) and saturation/lightness (percent) to 8-bit
// channels using the chroma formulation f(n) = l - a*max(-1, min(k-3, 9-k, 1))
// with k = (n + h/30) mod 12 and channel offsets 0, 8 and 4.
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	s = clampUnit(s / 100)
	l = clampUnit(l / 100)
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	a := s * math.Min(l, 1-l)
	f := func(n float64) uint8 {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(-1, math.Min(math.Min(k-3, 9-k), 1))
		return uint8(math.Round(255 * v))
	}
	return f(0), f(8), f(4)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
