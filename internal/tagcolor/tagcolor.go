// Package tagcolor derives badge colors from free-text tags.
//
// Every value is a pure function of the tag's characters: the same tag renders
// with the same background and foreground on every run and in every process.
package tagcolor

import "unicode/utf16"

// hashSeed is the djb2 starting value and the hash of the empty string.
const hashSeed uint32 = 5381

// Hash returns the djb2 hash of label over its UTF-16 code units.
//
// Code units match what a browser sees when it iterates a string, so tags keep
// the colors they had in the web client. Invalid UTF-8 bytes are hashed as
// U+FFFD. Arithmetic wraps modulo 2^32.
func Hash(label string) uint32 {
	acc := hashSeed
	for _, unit := range utf16.Encode([]rune(label)) {
		acc = (acc << 5) + acc + uint32(unit)
	}
	return acc
}

// TagToColor returns the badge background for label.
// Empty labels get FallbackColor instead of a hashed color.
func TagToColor(label string) Color {
	if label == "" {
		return FallbackColor
	}
	return colorForHash(Hash(label))
}

// colorForHash is the single place hue, saturation and lightness are derived.
func colorForHash(h uint32) Color {
	return Color{
		Hue:        int(h % 360),
		Saturation: 80 + int(h%20),
		Lightness:  50 + int(h%10),
	}
}

// Badge pairs a tag with its rendered colors.
type Badge struct {
	Label      string     `json:"label"`
	Background Color      `json:"background"`
	Foreground Foreground `json:"foreground"`
}

// BadgeFor computes both colors for label from one hash.
func BadgeFor(label string) Badge {
	if label == "" {
		return Badge{Label: label, Background: FallbackColor, Foreground: FallbackForeground}
	}
	bg := TagToColor(label)
	return Badge{Label: label, Background: bg, Foreground: ForegroundFor(bg)}
}
