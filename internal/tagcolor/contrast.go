package tagcolor

import "math"

// Foreground is a text color chosen to sit on a badge background.
type Foreground string

const (
	// Dark text for light backgrounds.
	Dark Foreground = "#222222"
	// Light text for dark backgrounds.
	Light Foreground = "#ffffff"
	// FallbackForeground is the text color for an empty tag.
	FallbackForeground Foreground = "#000000"
)

// LuminanceThreshold splits backgrounds into light (above) and dark.
const LuminanceThreshold = 0.55

// String returns the hex form.
func (f Foreground) String() string {
	return string(f)
}

// RelativeLuminance is the WCAG relative luminance of an sRGB color, in [0,1].
func RelativeLuminance(r, g, b uint8) float64 {
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

func linearize(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ForegroundFor picks the legible text color for a background.
func ForegroundFor(bg Color) Foreground {
	rgb := bg.RGB()
	if RelativeLuminance(rgb.R, rgb.G, rgb.B) > LuminanceThreshold {
		return Dark
	}
	return Light
}

// ContrastingForeground returns the text color for label's badge.
// It always agrees with TagToColor because it is computed from it.
func ContrastingForeground(label string) Foreground {
	if label == "" {
		return FallbackForeground
	}
	return ForegroundFor(TagToColor(label))
}
