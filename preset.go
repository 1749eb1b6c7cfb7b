package sods

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type stylePreset struct {
	Bold            bool    `yaml:"bold,omitempty"`
	Italic          bool    `yaml:"italic,omitempty"`
	Underline       bool    `yaml:"underline,omitempty"`
	Wrap            bool    `yaml:"wrap,omitempty"`
	FontSize        *int    `yaml:"font-size,omitempty"`
	Rotation        int     `yaml:"rotation,omitempty"`
	FontColor       *string `yaml:"font-color,omitempty"`
	BackgroundColor *string `yaml:"background-color,omitempty"`
	Align           *string `yaml:"align,omitempty"`
}

type edgesPreset struct {
	Top    *bool `yaml:"top,omitempty"`
	Left   *bool `yaml:"left,omitempty"`
	Bottom *bool `yaml:"bottom,omitempty"`
	Right  *bool `yaml:"right,omitempty"`
}

type borderPreset struct {
	Edges     *edgesPreset `yaml:"edges,omitempty"`
	Style     *string      `yaml:"style,omitempty"`
	Color     *string      `yaml:"color,omitempty"`
	Thickness *string      `yaml:"thickness,omitempty"`
}

type presetFile struct {
	Styles  map[string]stylePreset  `yaml:"styles"`
	Borders map[string]borderPreset `yaml:"borders"`
}

// Presets is a set of named styles and borders loaded from YAML.
type Presets struct {
	styles  map[string]*Style
	borders map[string]*Border
}

// LoadPresets decodes a presets document. Unknown fields are rejected and
// every invalid preset is reported in the returned error.
func LoadPresets(r io.Reader) (*Presets, error) {
	var doc presetFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode presets: %w", err)
	}

	p := &Presets{
		styles:  make(map[string]*Style, len(doc.Styles)),
		borders: make(map[string]*Border, len(doc.Borders)),
	}

	var err error
	for _, name := range sortedKeys(doc.Styles) {
		s, er := doc.Styles[name].build()
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("style %q: %w", name, er))
			continue
		}
		p.styles[name] = s
	}
	for _, name := range sortedKeys(doc.Borders) {
		b, er := doc.Borders[name].build()
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("border %q: %w", name, er))
			continue
		}
		p.borders[name] = b
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (sp stylePreset) build() (*Style, error) {
	opts := []StyleOption{
		WithBold(sp.Bold),
		WithItalic(sp.Italic),
		WithUnderline(sp.Underline),
		WithTextWrap(sp.Wrap),
		WithTextRotation(sp.Rotation),
	}
	if sp.FontSize != nil {
		opts = append(opts, WithFontSize(*sp.FontSize))
	}

	var err error
	if sp.FontColor != nil {
		c, er := ParseColor(*sp.FontColor)
		err = multierr.Append(err, er)
		opts = append(opts, WithFontColor(c))
	}
	if sp.BackgroundColor != nil {
		c, er := ParseColor(*sp.BackgroundColor)
		err = multierr.Append(err, er)
		opts = append(opts, WithBackgroundColor(c))
	}
	if sp.Align != nil {
		a, er := ParseAlignment(*sp.Align)
		err = multierr.Append(err, er)
		opts = append(opts, WithAlignment(a))
	}

	s, er := BuildStyle(opts...)
	if err = multierr.Append(err, er); err != nil {
		return nil, err
	}

	return s, nil
}

func (bp borderPreset) build() (*Border, error) {
	b := NewBorder()

	if e := bp.Edges; e != nil {
		b.SetEdges(orTrue(e.Top), orTrue(e.Left), orTrue(e.Bottom), orTrue(e.Right))
	}

	var err error
	if bp.Style != nil {
		st, er := ParseBorderStyle(*bp.Style)
		err = multierr.Append(err, er)
		b.SetStyle(st)
	}
	if bp.Color != nil {
		c, er := ParseColor(*bp.Color)
		err = multierr.Append(err, er)
		b.SetColor(c)
	}
	if bp.Thickness != nil {
		err = multierr.Append(err, b.SetThicknessString(*bp.Thickness))
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Style returns a copy of the named style preset.
func (p *Presets) Style(name string) (*Style, bool) {
	s, ok := p.styles[name]
	if !ok {
		return nil, false
	}

	return s.Clone(), true
}

// Border returns a copy of the named border preset.
func (p *Presets) Border(name string) (*Border, bool) {
	b, ok := p.borders[name]
	if !ok {
		return nil, false
	}

	return b.Clone(), true
}

// StyleNames returns the style preset names sorted.
func (p *Presets) StyleNames() []string {
	return sortedKeys(p.styles)
}

// BorderNames returns the border preset names sorted.
func (p *Presets) BorderNames() []string {
	return sortedKeys(p.borders)
}

// Register adds every preset to reg in name order and returns the automatic
// names the registry assigned, keyed by preset name. Default styles map to "".
func (p *Presets) Register(reg *Registry) (styles, borders map[string]string) {
	styles = make(map[string]string, len(p.styles))
	for _, n := range p.StyleNames() {
		styles[n] = reg.AddStyle(p.styles[n])
	}

	borders = make(map[string]string, len(p.borders))
	for _, n := range p.BorderNames() {
		borders[n] = reg.AddBorder(p.borders[n])
	}

	return styles, borders
}

func orTrue(v *bool) bool {
	return v == nil || *v
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
