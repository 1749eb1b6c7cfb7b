//nolint:mnd
package sods

import (
	"math"

	"github.com/tealeg/xlsx"
)

// XLSX border line weights, in points.
const (
	xlsxHairPt   = 0.5
	xlsxMediumPt = 1.75
	xlsxThickPt  = 2.5
)

// XLSXStyle merges a style and a border into one xlsx.Style. Either may be nil.
func XLSXStyle(s *Style, b *Border) *xlsx.Style {
	x := xlsx.NewStyle()
	if s != nil {
		s.applyXLSX(x)
	}
	if b != nil {
		x.Border = b.XLSX()
		x.ApplyBorder = true
	}

	return x
}

// XLSX converts the style. Attributes that are not set leave the xlsx
// defaults in place and their Apply flag cleared.
func (s *Style) XLSX() *xlsx.Style {
	x := xlsx.NewStyle()
	s.applyXLSX(x)

	return x
}

func (s *Style) applyXLSX(x *xlsx.Style) {
	x.Font.Bold = s.bold
	x.Font.Italic = s.italic
	x.Font.Underline = s.underline
	if s.fontSize != noFontSize {
		x.Font.Size = s.fontSize
	}
	if s.fontColor != nil {
		x.Font.Color = s.fontColor.ARGB()
	}
	x.ApplyFont = s.bold || s.italic || s.underline || s.fontSize != noFontSize || s.fontColor != nil

	if s.backgroundColor != nil {
		argb := s.backgroundColor.ARGB()
		x.Fill = *xlsx.NewFill("solid", argb, argb)
		x.ApplyFill = true
	}

	if kw, ok := s.DisplayAlignmentKeyword(); ok {
		x.Alignment.Horizontal = kw
		x.ApplyAlignment = true
	}
	if s.textWrap {
		x.Alignment.WrapText = true
		x.ApplyAlignment = true
	}
	if s.textRotation != 0 {
		x.Alignment.TextRotation = xlsxRotation(s.textRotation)
		x.ApplyAlignment = true
	}
}

// StyleFromXLSX reads the attributes this package models from an xlsx style.
func StyleFromXLSX(x *xlsx.Style) (*Style, error) {
	s := NewStyle()
	if x == nil {
		return s, nil
	}

	s.SetBold(x.Font.Bold)
	s.SetItalic(x.Font.Italic)
	s.SetUnderline(x.Font.Underline)
	if x.Font.Size > 0 {
		if err := s.SetFontSize(x.Font.Size); err != nil {
			return nil, err
		}
	}
	if x.Font.Color != "" {
		c, err := ParseColor(x.Font.Color)
		if err != nil {
			return nil, err
		}
		s.SetFontColor(&c)
	}

	if x.Fill.PatternType == "solid" && x.Fill.FgColor != "" {
		c, err := ParseColor(x.Fill.FgColor)
		if err != nil {
			return nil, err
		}
		s.SetBackgroundColor(&c)
	}

	switch x.Alignment.Horizontal {
	case "left":
		s.SetTextPosition(AlignLeft.Ptr())
	case "center", "centerContinuous":
		s.SetTextPosition(AlignCenter.Ptr())
	case "right":
		s.SetTextPosition(AlignRight.Ptr())
	}
	s.SetTextWrap(x.Alignment.WrapText)
	if err := s.SetTextRotation(rotationFromXLSX(x.Alignment.TextRotation)); err != nil {
		return nil, err
	}

	return s, nil
}

// XLSX converts the border. Absent edges get an empty line style.
func (b *Border) XLSX() xlsx.Border {
	line := b.xlsxLineStyle()
	argb := b.color.ARGB()

	var x xlsx.Border
	if b.left {
		x.Left, x.LeftColor = line, argb
	}
	if b.right {
		x.Right, x.RightColor = line, argb
	}
	if b.top {
		x.Top, x.TopColor = line, argb
	}
	if b.bottom {
		x.Bottom, x.BottomColor = line, argb
	}

	return x
}

func (b *Border) xlsxLineStyle() string {
	// hundredths of a point absorb unit conversion noise
	pt := math.Round(b.thickness.Points()*100) / 100

	switch b.style {
	case BorderStyleDotted:
		return "dotted"
	case BorderStyleDouble:
		return "double"
	case BorderStyleDashed:
		if pt >= xlsxMediumPt {
			return "mediumDashed"
		}
		return "dashed"
	}

	switch {
	case pt >= xlsxThickPt:
		return "thick"
	case pt >= xlsxMediumPt:
		return "medium"
	default:
		return "thin"
	}
}

// BorderFromXLSX builds a border from an xlsx border. The stroke and colour
// come from the first painted edge in top, left, bottom, right order.
func BorderFromXLSX(x xlsx.Border) (*Border, error) {
	b := NewBorder()

	painted := func(line string) bool { return line != "" && line != "none" }
	b.SetEdges(painted(x.Top), painted(x.Left), painted(x.Bottom), painted(x.Right))

	edges := []struct{ line, color string }{
		{x.Top, x.TopColor},
		{x.Left, x.LeftColor},
		{x.Bottom, x.BottomColor},
		{x.Right, x.RightColor},
	}
	for _, e := range edges {
		if !painted(e.line) {
			continue
		}

		style, pt := borderFromXLSXLine(e.line)
		b.SetStyle(style)
		if pt > 0 {
			b.SetThickness(Length(pt) * Point)
		}
		if e.color != "" {
			c, err := ParseColor(e.color)
			if err != nil {
				return nil, err
			}
			b.SetColor(c)
		}

		break
	}

	return b, nil
}

// borderFromXLSXLine returns the stroke and its weight in points, 0 keeps
// the default thickness.
func borderFromXLSXLine(line string) (BorderStyle, float64) {
	switch line {
	case "hair":
		return BorderStyleSolid, xlsxHairPt
	case "medium":
		return BorderStyleSolid, xlsxMediumPt
	case "thick":
		return BorderStyleSolid, xlsxThickPt
	case "dotted":
		return BorderStyleDotted, 0
	case "double":
		return BorderStyleDouble, 0
	case "dashed", "dashDot", "dashDotDot", "slantDashDot":
		return BorderStyleDashed, 0
	case "mediumDashed", "mediumDashDot", "mediumDashDotDot":
		return BorderStyleDashed, xlsxMediumPt
	default:
		return BorderStyleSolid, 0
	}
}

// xlsxRotation maps degrees to the XLSX encoding: 0-90 counterclockwise,
// 91-180 clockwise by value-90. Angles XLSX cannot express are clamped.
func xlsxRotation(deg int) int {
	d := ((deg % 360) + 360) % 360

	switch {
	case d <= 90:
		return d
	case d >= 270:
		return 90 + (360 - d)
	case d <= 180:
		return 90
	default:
		return 180
	}
}

func rotationFromXLSX(v int) int {
	switch {
	case v > 90 && v <= 180:
		return -(v - 90)
	case v >= 0 && v <= 90:
		return v
	default:
		// 255 is vertically stacked text
		return 0
	}
}
