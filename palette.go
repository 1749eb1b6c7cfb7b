//nolint:mnd
package sods

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Palette resolves BIFF colour indices.
type Palette struct {
	colors [64]Color
}

// BIFF system colour indices.
const (
	colorWindowText       = 0x40
	colorWindowBackground = 0x41
	colorAutomatic        = 0x7fff
)

var defaultPalette = [64]uint32{
	0x000000, 0xffffff, 0xff0000, 0x00ff00, 0x0000ff, 0xffff00, 0xff00ff, 0x00ffff,
	0x000000, 0xffffff, 0xff0000, 0x00ff00, 0x0000ff, 0xffff00, 0xff00ff, 0x00ffff,
	0x800000, 0x008000, 0x000080, 0x808000, 0x800080, 0x008080, 0xc0c0c0, 0x808080,
	0x9999ff, 0x993366, 0xffffcc, 0xccffff, 0x660066, 0xff8080, 0x0066cc, 0xccccff,
	0x000080, 0xff00ff, 0xffff00, 0x00ffff, 0x800080, 0x800000, 0x008080, 0x0000ff,
	0x00ccff, 0xccffff, 0xccffcc, 0xffff99, 0x99ccff, 0xff99cc, 0xcc99ff, 0xffcc99,
	0x3366ff, 0x33cccc, 0x99cc00, 0xffcc00, 0xff9900, 0xff6600, 0x666699, 0x969696,
	0x003366, 0x339966, 0x003300, 0x333300, 0x993300, 0x993366, 0x333399, 0x333333,
}

// DefaultPalette returns the built-in BIFF8 palette.
func DefaultPalette() Palette {
	var p Palette
	for i, v := range defaultPalette {
		p.colors[i] = RGB(uint8(v>>16), uint8(v>>8), uint8(v))
	}

	return p
}

// DecodePalette applies a PALETTE record payload on top of the defaults.
// Custom colours start at index 8.
func DecodePalette(data []byte) (Palette, error) {
	p := DefaultPalette()
	buf := bytes.NewReader(data)

	var count uint16
	if err := binary.Read(buf, binary.LittleEndian, &count); err != nil {
		return p, fmt.Errorf("%w: palette: %w", ErrShortRecord, err)
	}

	for i := 0; i < int(count) && 8+i < len(p.colors); i++ {
		var rgb [4]byte
		if err := binary.Read(buf, binary.LittleEndian, &rgb); err != nil {
			return p, fmt.Errorf("%w: palette entry %d: %w", ErrShortRecord, i, err)
		}
		p.colors[8+i] = RGB(rgb[0], rgb[1], rgb[2])
	}

	return p, nil
}

// Color returns the colour for a palette index. Automatic colours are
// reported as not set.
func (p Palette) Color(index uint16) (Color, bool) {
	switch {
	case int(index) < len(p.colors):
		return p.colors[index], true
	case index == colorWindowText:
		return Black, true
	case index == colorWindowBackground:
		return RGB(0xff, 0xff, 0xff), true
	default:
		return Color{}, false
	}
}
