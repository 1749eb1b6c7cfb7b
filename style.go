package sods

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrInvalidAttribute is returned when a style attribute is out of range.
	ErrInvalidAttribute = errors.New("sods: invalid attribute value")
	// ErrUnknownAlignment is returned by ParseAlignment.
	ErrUnknownAlignment = errors.New("sods: unknown alignment")
)

// Alignment is the horizontal placement of text in a cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment accepts the alignment names in any letter case.
func ParseAlignment(name string) (Alignment, error) {
	for _, a := range []Alignment{AlignLeft, AlignCenter, AlignRight} {
		if strings.EqualFold(a.String(), name) {
			return a, nil
		}
	}

	return AlignLeft, fmt.Errorf("%w: %q", ErrUnknownAlignment, name)
}

// Ptr is a convenience for SetTextPosition.
func (a Alignment) Ptr() *Alignment {
	return &a
}

var lower = cases.Lower(language.Und)

const (
	noFontSize     = -1
	maxRotation    = 359
	minRotation    = -359
	unsetAlignment = Alignment(-1)
)

// Style is the visual formatting of a cell: font flags, colours, font size,
// alignment, wrapping and rotation.
//
// The zero value is not the default style, use NewStyle.
type Style struct {
	bold            bool
	italic          bool
	underline       bool
	fontColor       *Color
	backgroundColor *Color
	fontSize        int
	textWrap        bool
	textRotation    int
	alignment       Alignment
}

// NewStyle returns the default style: nothing set, font size -1.
func NewStyle() *Style {
	return &Style{fontSize: noFontSize, alignment: unsetAlignment}
}

// StyleOption configures a style in BuildStyle.
type StyleOption func(*Style) error

// BuildStyle applies every option to a default style. All option errors are
// collected; on any error no style is returned.
func BuildStyle(opts ...StyleOption) (*Style, error) {
	s := NewStyle()

	var err error
	for _, opt := range opts {
		err = multierr.Append(err, opt(s))
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

func WithBold(v bool) StyleOption {
	return func(s *Style) error { s.SetBold(v); return nil }
}

func WithItalic(v bool) StyleOption {
	return func(s *Style) error { s.SetItalic(v); return nil }
}

func WithUnderline(v bool) StyleOption {
	return func(s *Style) error { s.SetUnderline(v); return nil }
}

func WithTextWrap(v bool) StyleOption {
	return func(s *Style) error { s.SetTextWrap(v); return nil }
}

func WithFontColor(c Color) StyleOption {
	return func(s *Style) error { s.SetFontColor(&c); return nil }
}

func WithBackgroundColor(c Color) StyleOption {
	return func(s *Style) error { s.SetBackgroundColor(&c); return nil }
}

func WithAlignment(a Alignment) StyleOption {
	return func(s *Style) error { s.SetTextPosition(&a); return nil }
}

func WithFontSize(n int) StyleOption {
	return func(s *Style) error { return s.SetFontSize(n) }
}

func WithTextRotation(deg int) StyleOption {
	return func(s *Style) error { return s.SetTextRotation(deg) }
}

// IsDefault reports whether the style carries no formatting at all.
func (s *Style) IsDefault() bool {
	return s.Equal(NewStyle())
}

func (s *Style) Bold() bool      { return s.bold }
func (s *Style) Italic() bool    { return s.italic }
func (s *Style) Underline() bool { return s.underline }
func (s *Style) TextWrap() bool  { return s.textWrap }

// FontSize returns -1 when no size is set.
func (s *Style) FontSize() int { return s.fontSize }

func (s *Style) TextRotation() int { return s.textRotation }

// FontColor returns nil when no font colour is set.
func (s *Style) FontColor() *Color {
	if s.fontColor == nil {
		return nil
	}

	return s.fontColor.ptr()
}

// BackgroundColor returns nil when no background colour is set.
func (s *Style) BackgroundColor() *Color {
	if s.backgroundColor == nil {
		return nil
	}

	return s.backgroundColor.ptr()
}

// TextPosition returns the alignment and whether one is set.
func (s *Style) TextPosition() (Alignment, bool) {
	if s.alignment == unsetAlignment {
		return AlignLeft, false
	}

	return s.alignment, true
}

func (s *Style) SetBold(v bool)      { s.bold = v }
func (s *Style) SetItalic(v bool)    { s.italic = v }
func (s *Style) SetUnderline(v bool) { s.underline = v }
func (s *Style) SetTextWrap(v bool)  { s.textWrap = v }

// SetFontColor sets the font colour, nil removes it.
func (s *Style) SetFontColor(c *Color) {
	if c == nil {
		s.fontColor = nil
		return
	}
	s.fontColor = c.ptr()
}

// SetBackgroundColor sets the cell background, nil removes it.
func (s *Style) SetBackgroundColor(c *Color) {
	if c == nil {
		s.backgroundColor = nil
		return
	}
	s.backgroundColor = c.ptr()
}

// SetFontSize sets the font size. -1 means no size; anything lower is rejected.
func (s *Style) SetFontSize(n int) error {
	if n < noFontSize {
		return fmt.Errorf("%w: font size %d is less than -1", ErrInvalidAttribute, n)
	}
	s.fontSize = n

	return nil
}

// SetTextRotation sets the rotation in degrees, which must be > -360 and < 360.
func (s *Style) SetTextRotation(deg int) error {
	if deg < minRotation || deg > maxRotation {
		return fmt.Errorf("%w: rotation must be > -360 and < 360, got %d", ErrInvalidAttribute, deg)
	}
	s.textRotation = deg

	return nil
}

// SetTextPosition sets the alignment, nil removes it.
func (s *Style) SetTextPosition(a *Alignment) {
	if a == nil {
		s.alignment = unsetAlignment
		return
	}
	s.alignment = *a
}

func (s *Style) ClearTextPosition() {
	s.alignment = unsetAlignment
}

// CSSAlignmentKeyword returns the keyword document writers store for the
// alignment: start, center or end.
func (s *Style) CSSAlignmentKeyword() (string, bool) {
	a, ok := s.TextPosition()
	if !ok {
		return "", false
	}

	switch a {
	case AlignLeft:
		return "start", true
	case AlignRight:
		return "end", true
	default:
		return lower.String(AlignCenter.String()), true
	}
}

// DisplayAlignmentKeyword returns the lowercase alignment name used in
// CSS output: left, center or right.
func (s *Style) DisplayAlignmentKeyword() (string, bool) {
	a, ok := s.TextPosition()
	if !ok {
		return "", false
	}

	return lower.String(a.String()), true
}

// Equal compares every attribute; unset colours and alignments are equal
// to each other.
func (s *Style) Equal(o *Style) bool {
	if s == nil || o == nil {
		return s == o
	}

	return s.bold == o.bold &&
		s.italic == o.italic &&
		s.underline == o.underline &&
		s.fontSize == o.fontSize &&
		s.textWrap == o.textWrap &&
		equalColors(s.fontColor, o.fontColor) &&
		s.alignment == o.alignment &&
		s.textRotation == o.textRotation &&
		equalColors(s.backgroundColor, o.backgroundColor)
}

// Hash is consistent with Equal.
func (s *Style) Hash() int {
	h := boolHash(s.bold)
	h = 31*h + boolHash(s.italic)
	h = 31*h + boolHash(s.underline)
	h = 31*h + colorHash(s.fontColor)
	h = 31*h + colorHash(s.backgroundColor)
	h = 31*h + s.fontSize
	h = 31*h + boolHash(s.textWrap)
	h = 31*h + s.textRotation

	switch s.alignment {
	case AlignLeft:
		h++
	case AlignCenter:
		h += 2
	default:
		h += 3
	}

	return h
}

// Clone returns a copy that can be mutated independently. Colours are
// immutable once stored, so sharing them is safe.
func (s *Style) Clone() *Style {
	c := *s

	return &c
}

// CSSProperties returns the non-default attributes as CSS properties in a
// fixed order.
//
// The color value keeps a trailing ";" for compatibility with existing
// rendered output.
func (s *Style) CSSProperties() *CSSProperties {
	p := newCSSProperties()

	if s.bold {
		p.set("font-weight", "bold")
	}
	if s.italic {
		p.set("font-style", "italic")
	}
	if s.underline {
		p.set("text-decoration", "underline")
	}
	if s.fontSize != noFontSize {
		p.set("font-size", fmt.Sprint(s.fontSize))
	}
	if s.fontColor != nil {
		p.set("color", s.fontColor.String()+";")
	}
	if s.backgroundColor != nil {
		p.set("background-color", s.backgroundColor.String())
	}
	if kw, ok := s.DisplayAlignmentKeyword(); ok {
		p.set("text-align", kw)
	}
	if s.textWrap {
		p.set("wrap", "wrap")
	}
	if s.textRotation != 0 {
		p.set("rotation-angle", fmt.Sprint(s.textRotation))
	}

	return p
}

// Render writes one "<prefix><key>: <value>;" line per CSS property.
//
//	s.SetBold(true)
//	s.SetItalic(true)
//	s.Render("-fx-")
//	// -fx-font-weight: bold;
//	// -fx-font-style: italic;
func (s *Style) Render(prefix string) string {
	return s.CSSProperties().Render(prefix)
}

// String is Render without prefix.
func (s *Style) String() string {
	return s.Render("")
}

func colorHash(c *Color) int {
	if c == nil {
		return 0
	}

	return c.Hash()
}
