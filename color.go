package sods

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a textual colour cannot be decoded.
var ErrInvalidColor = errors.New("sods: invalid color")

// Color is an RGB colour shared by borders and styles.
// The uint8 channels keep every value in the 0-255 range.
type Color struct {
	R, G, B uint8
}

// Black is the default border colour.
var Black = Color{}

// RGB returns the colour with the given channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorOf converts any image/color value, dropping alpha.
func ColorOf(c color.Color) Color {
	r, g, b, _ := c.RGBA()

	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// ParseColor decodes "#rgb", "#rrggbb", "rrggbb" and the ARGB form
// "aarrggbb" used by XLSX. Alpha is discarded.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	case 8:
		hex = hex[2:]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// String returns the canonical "#rrggbb" form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ARGB returns the opaque "FFRRGGBB" form XLSX expects.
func (c Color) ARGB() string {
	return fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hash is consistent with ==.
func (c Color) Hash() int {
	return (int(c.R)*31+int(c.G))*31 + int(c.B)
}

// ptr returns a pointer to a private copy.
func (c Color) ptr() *Color {
	return &c
}

func equalColors(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// hashString is the 31-multiplier string hash used for the content hashes.
func hashString(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = 31*h + int(s[i])
	}

	return h
}
