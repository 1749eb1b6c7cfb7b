package sods

import (
	"errors"
	"fmt"
	"testing"

	"go.uber.org/multierr"
)

func TestStyleDefaults(t *testing.T) {
	s := NewStyle()

	if !s.IsDefault() {
		t.Fatal("NewStyle() must be default")
	}
	if s.FontSize() != -1 {
		t.Errorf("FontSize() = %d, want -1", s.FontSize())
	}
	if s.FontColor() != nil || s.BackgroundColor() != nil {
		t.Error("default style must not carry colours")
	}
	if _, ok := s.TextPosition(); ok {
		t.Error("default style must not carry an alignment")
	}
	if got := s.Render("-fx-"); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestStyleIsDefault(t *testing.T) {
	tests := []struct {
		name string
		set  func(s *Style)
	}{
		{"bold", func(s *Style) { s.SetBold(true) }},
		{"italic", func(s *Style) { s.SetItalic(true) }},
		{"underline", func(s *Style) { s.SetUnderline(true) }},
		{"wrap", func(s *Style) { s.SetTextWrap(true) }},
		{"font size", func(s *Style) { _ = s.SetFontSize(0) }},
		{"rotation", func(s *Style) { _ = s.SetTextRotation(45) }},
		{"font color", func(s *Style) { s.SetFontColor(&Black) }},
		{"background", func(s *Style) { s.SetBackgroundColor(&Black) }},
		{"alignment", func(s *Style) { s.SetTextPosition(AlignLeft.Ptr()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStyle()
			tt.set(s)
			if s.IsDefault() {
				t.Errorf("style with %s set reported as default", tt.name)
			}
		})
	}

	s := NewStyle()
	s.SetBold(true)
	s.SetBold(false)
	s.SetFontColor(&Black)
	s.SetFontColor(nil)
	s.SetTextPosition(AlignRight.Ptr())
	s.ClearTextPosition()
	if !s.IsDefault() {
		t.Error("style reset through setters must be default again")
	}
}

func TestStyleFontSizeRange(t *testing.T) {
	for n := -5; n <= 100; n++ {
		s := NewStyle()
		_ = s.SetFontSize(10)

		err := s.SetFontSize(n)
		switch {
		case n < -1:
			if !errors.Is(err, ErrInvalidAttribute) {
				t.Errorf("SetFontSize(%d) error = %v, want ErrInvalidAttribute", n, err)
			}
			if s.FontSize() != 10 {
				t.Errorf("SetFontSize(%d) changed the size to %d", n, s.FontSize())
			}
		default:
			if err != nil {
				t.Errorf("SetFontSize(%d): %v", n, err)
			}
			if s.FontSize() != n {
				t.Errorf("FontSize() = %d, want %d", s.FontSize(), n)
			}
		}
	}
}

func TestStyleRotationRange(t *testing.T) {
	for deg := -400; deg <= 400; deg++ {
		s := NewStyle()
		_ = s.SetTextRotation(30)

		err := s.SetTextRotation(deg)
		if deg <= -360 || deg >= 360 {
			if !errors.Is(err, ErrInvalidAttribute) {
				t.Errorf("SetTextRotation(%d) error = %v, want ErrInvalidAttribute", deg, err)
			}
			if s.TextRotation() != 30 {
				t.Errorf("SetTextRotation(%d) changed the rotation to %d", deg, s.TextRotation())
			}
			continue
		}
		if err != nil {
			t.Errorf("SetTextRotation(%d): %v", deg, err)
		}
		if s.TextRotation() != deg {
			t.Errorf("TextRotation() = %d, want %d", s.TextRotation(), deg)
		}
	}
}

func TestStyleCSSOrder(t *testing.T) {
	s := NewStyle()
	_ = s.SetFontSize(12)
	s.SetBold(true)

	if got, want := s.Render(""), "font-weight: bold;\nfont-size: 12;\n"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	s = NewStyle()
	_ = s.SetTextRotation(-45)
	s.SetTextWrap(true)
	s.SetTextPosition(AlignCenter.Ptr())
	bg := RGB(0x33, 0x33, 0x33)
	s.SetBackgroundColor(&bg)
	fg := RGB(0xff, 0, 0)
	s.SetFontColor(&fg)
	_ = s.SetFontSize(9)
	s.SetUnderline(true)
	s.SetItalic(true)
	s.SetBold(true)

	want := []string{
		"font-weight", "font-style", "text-decoration", "font-size", "color",
		"background-color", "text-align", "wrap", "rotation-angle",
	}
	keys := s.CSSProperties().Keys()
	if fmt.Sprint(keys) != fmt.Sprint(want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}

	wantCSS := "font-weight: bold;\n" +
		"font-style: italic;\n" +
		"text-decoration: underline;\n" +
		"font-size: 9;\n" +
		"color: #ff0000;;\n" +
		"background-color: #333333;\n" +
		"text-align: center;\n" +
		"wrap: wrap;\n" +
		"rotation-angle: -45;\n"
	if got := s.String(); got != wantCSS {
		t.Errorf("String() =\n%s\nwant\n%s", got, wantCSS)
	}
}

func TestStyleRenderPrefix(t *testing.T) {
	s := NewStyle()
	s.SetBold(true)
	s.SetItalic(true)

	if got, want := s.Render("-x-"), "-x-font-weight: bold;\n-x-font-style: italic;\n"; got != want {
		t.Errorf("Render(-x-) = %q, want %q", got, want)
	}
}

func TestStyleAlignmentKeywords(t *testing.T) {
	tests := []struct {
		align   Alignment
		css     string
		display string
	}{
		{AlignLeft, "start", "left"},
		{AlignCenter, "center", "center"},
		{AlignRight, "end", "right"},
	}

	for _, tt := range tests {
		s := NewStyle()
		s.SetTextPosition(tt.align.Ptr())

		if got, ok := s.CSSAlignmentKeyword(); !ok || got != tt.css {
			t.Errorf("%v: CSSAlignmentKeyword() = %q, %v, want %q", tt.align, got, ok, tt.css)
		}
		if got, ok := s.DisplayAlignmentKeyword(); !ok || got != tt.display {
			t.Errorf("%v: DisplayAlignmentKeyword() = %q, %v, want %q", tt.align, got, ok, tt.display)
		}

		parsed, err := ParseAlignment(tt.display)
		if err != nil || parsed != tt.align {
			t.Errorf("ParseAlignment(%q) = %v, %v", tt.display, parsed, err)
		}
	}

	if _, ok := NewStyle().CSSAlignmentKeyword(); ok {
		t.Error("unset alignment must not yield a keyword")
	}
	if _, err := ParseAlignment("justify"); !errors.Is(err, ErrUnknownAlignment) {
		t.Errorf("ParseAlignment(justify) error = %v", err)
	}
}

func TestStyleEqualHash(t *testing.T) {
	red := RGB(0xff, 0, 0)

	a := NewStyle()
	a.SetBold(true)
	a.SetFontColor(&red)
	_ = a.SetFontSize(11)
	a.SetTextPosition(AlignRight.Ptr())

	b := NewStyle()
	b.SetTextPosition(AlignLeft.Ptr())
	_ = b.SetFontSize(20)
	b.SetItalic(true)
	b.SetItalic(false)
	other := RGB(0xff, 0, 0)
	b.SetFontColor(&other)
	_ = b.SetFontSize(11)
	b.SetBold(true)
	b.SetTextPosition(AlignRight.Ptr())

	if !a.Equal(b) || !b.Equal(a) {
		t.Fatal("styles built through different setter sequences must be equal")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("Hash() differs for equal styles: %d != %d", a.Hash(), b.Hash())
	}

	b.ClearTextPosition()
	if a.Equal(b) {
		t.Error("unset alignment must differ from right")
	}

	// mutating the caller's colour must not leak into the style
	other = RGB(0, 0, 0xff)
	if got := *a.FontColor(); got != red {
		t.Errorf("FontColor() = %v, want %v", got, red)
	}
}

func TestStyleClone(t *testing.T) {
	a, err := BuildStyle(WithBold(true), WithBackgroundColor(RGB(1, 2, 3)), WithAlignment(AlignCenter))
	if err != nil {
		t.Fatalf("BuildStyle: %v", err)
	}

	c := a.Clone()
	if !c.Equal(a) {
		t.Fatal("Clone() must be equal to the original")
	}

	c.SetBold(false)
	c.SetBackgroundColor(nil)
	c.ClearTextPosition()
	if !a.Bold() || a.BackgroundColor() == nil {
		t.Error("mutating the clone changed the original")
	}
	if al, ok := a.TextPosition(); !ok || al != AlignCenter {
		t.Errorf("TextPosition() = %v, %v, want Center", al, ok)
	}
}

func TestBuildStyleErrors(t *testing.T) {
	s, err := BuildStyle(WithBold(true), WithFontSize(-7), WithTextRotation(720))
	if s != nil {
		t.Errorf("BuildStyle returned a style despite errors: %v", s)
	}
	if !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("error = %v, want ErrInvalidAttribute", err)
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("got %d errors, want 2: %v", n, err)
	}
}

func ExampleStyle_Render() {
	s, _ := BuildStyle(
		WithBold(true),
		WithFontSize(12),
		WithAlignment(AlignRight),
	)

	fmt.Print(s.Render("-fx-"))
	// Output:
	// -fx-font-weight: bold;
	// -fx-font-size: 12;
	// -fx-text-align: right;
}
