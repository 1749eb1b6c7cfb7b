//nolint:mnd
package sods

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortRecord is returned when a BIFF record payload is truncated.
var ErrShortRecord = errors.New("sods: short BIFF record")

// XF is a decoded BIFF cell format record.
type XF interface {
	// FormatNo is the number format index.
	FormatNo() uint16
	// CellStyle derives the cell style using the workbook fonts and palette.
	CellStyle(fonts []FontInfo, pal Palette) (*Style, error)
	// CellBorder derives the cell border.
	CellBorder(pal Palette) *Border
}

// Xf5 is the BIFF5 layout of an XF record.
type Xf5 struct {
	Font      uint16
	Format    uint16
	Type      uint16
	Align     uint16
	Color     uint16
	Fill      uint16
	Border    uint16
	LineStyle uint16
}

// Xf8 is the BIFF8 layout of an XF record.
type Xf8 struct {
	Font        uint16
	Format      uint16
	Type        uint16
	Align       byte
	Rotation    byte
	Ident       byte
	UsedAttr    byte
	LineStyle   uint32
	LineColor   uint32
	GroundColor uint16
}

// FontInfo is the fixed part of a FONT record.
type FontInfo struct {
	Height     uint16 // twips
	Flags      uint16
	Color      uint16
	Bold       uint16 // weight, 700 is bold
	Escapement uint16
	Underline  byte
	Family     byte
	Charset    byte
	NotUsed    byte
	NameB      byte
}

// DecodeXF decodes an XF record payload, BIFF5 or BIFF8.
func DecodeXF(data []byte, biff5 bool) (XF, error) {
	var xf XF = new(Xf8)
	if biff5 {
		xf = new(Xf5)
	}

	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, xf); err != nil {
		return nil, fmt.Errorf("%w: xf: %w", ErrShortRecord, err)
	}

	return xf, nil
}

// DecodeFont decodes the fixed part of a FONT record payload.
func DecodeFont(data []byte) (*FontInfo, error) {
	f := new(FontInfo)
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, f); err != nil {
		return nil, fmt.Errorf("%w: font: %w", ErrShortRecord, err)
	}

	return f, nil
}

func (x *Xf5) FormatNo() uint16 {
	return x.Format
}

func (x *Xf8) FormatNo() uint16 {
	return x.Format
}

func (x *Xf5) CellStyle(fonts []FontInfo, pal Palette) (*Style, error) {
	var rotation int
	switch (x.Align >> 8) & 0x3 {
	case 2:
		rotation = 90
	case 3:
		rotation = -90
	}

	return xfStyle{
		font:        x.Font,
		hAlign:      byte(x.Align & 0x7),
		wrap:        x.Align&0x8 != 0,
		rotation:    rotation,
		fillPattern: byte(x.Fill & 0x3f),
		fillColor:   x.Color & 0x7f,
	}.build(fonts, pal)
}

func (x *Xf8) CellStyle(fonts []FontInfo, pal Palette) (*Style, error) {
	return xfStyle{
		font:        x.Font,
		hAlign:      x.Align & 0x7,
		wrap:        x.Align&0x8 != 0,
		rotation:    rotationFromXLSX(int(x.Rotation)),
		fillPattern: byte(x.LineColor >> 26),
		fillColor:   x.GroundColor & 0x7f,
	}.build(fonts, pal)
}

func (x *Xf5) CellBorder(pal Palette) *Border {
	return xfBorder{
		top:    uint32(x.Border & 0x7),
		left:   uint32(x.Border>>3) & 0x7,
		bottom: uint32(x.Fill>>6) & 0x7,
		right:  uint32(x.Border>>6) & 0x7,
		color: [4]uint16{
			(x.Border >> 9) & 0x7f,
			x.LineStyle & 0x7f,
			(x.Fill >> 9) & 0x7f,
			(x.LineStyle >> 7) & 0x7f,
		},
	}.build(pal)
}

func (x *Xf8) CellBorder(pal Palette) *Border {
	return xfBorder{
		left:   x.LineStyle & 0xf,
		right:  (x.LineStyle >> 4) & 0xf,
		top:    (x.LineStyle >> 8) & 0xf,
		bottom: (x.LineStyle >> 12) & 0xf,
		color: [4]uint16{
			uint16(x.LineColor & 0x7f),
			uint16(x.LineStyle>>16) & 0x7f,
			uint16(x.LineColor>>7) & 0x7f,
			uint16(x.LineStyle>>23) & 0x7f,
		},
	}.build(pal)
}

// xfStyle holds the style bits common to both XF layouts.
type xfStyle struct {
	font        uint16
	hAlign      byte
	wrap        bool
	rotation    int
	fillPattern byte
	fillColor   uint16
}

func (x xfStyle) build(fonts []FontInfo, pal Palette) (*Style, error) {
	s := NewStyle()

	// index 4 is never written, later fonts shift down by one
	idx := int(x.font)
	if idx > 4 {
		idx--
	}
	if idx < len(fonts) {
		f := fonts[idx]
		s.SetBold(f.Bold >= 700)
		s.SetItalic(f.Flags&0x2 != 0)
		s.SetUnderline(f.Underline != 0)
		if err := s.SetFontSize(int(f.Height / 20)); err != nil {
			return nil, err
		}
		if f.Color != colorAutomatic {
			if c, ok := pal.Color(f.Color); ok {
				s.SetFontColor(&c)
			}
		}
	}

	switch x.hAlign {
	case 1:
		s.SetTextPosition(AlignLeft.Ptr())
	case 2, 6:
		s.SetTextPosition(AlignCenter.Ptr())
	case 3:
		s.SetTextPosition(AlignRight.Ptr())
	}

	s.SetTextWrap(x.wrap)
	if err := s.SetTextRotation(x.rotation); err != nil {
		return nil, err
	}

	if x.fillPattern == 1 {
		if c, ok := pal.Color(x.fillColor); ok {
			s.SetBackgroundColor(&c)
		}
	}

	return s, nil
}

// xfBorder holds BIFF line style codes per edge and colour indices in
// top, left, bottom, right order.
type xfBorder struct {
	top, left, bottom, right uint32
	color                    [4]uint16
}

var biffLineStyles = [...]string{
	"none", "thin", "medium", "dashed", "dotted", "thick", "double", "hair",
	"mediumDashed", "dashDot", "mediumDashDot", "dashDotDot", "mediumDashDotDot", "slantDashDot",
}

func biffLine(code uint32) string {
	if int(code) < len(biffLineStyles) {
		return biffLineStyles[code]
	}

	return "none"
}

func (x xfBorder) build(pal Palette) *Border {
	b := NewBorder()
	codes := [4]uint32{x.top, x.left, x.bottom, x.right}
	b.SetEdges(codes[0] != 0, codes[1] != 0, codes[2] != 0, codes[3] != 0)

	for i, code := range codes {
		if code == 0 {
			continue
		}

		style, pt := borderFromXLSXLine(biffLine(code))
		b.SetStyle(style)
		if pt > 0 {
			b.SetThickness(Length(pt) * Point)
		}
		if c, ok := pal.Color(x.color[i]); ok {
			b.SetColor(c)
		}

		break
	}

	return b
}
