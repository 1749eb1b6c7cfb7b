package sods

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const presetsYAML = `
styles:
  header:
    bold: true
    font-size: 14
    align: center
    background-color: "#dddddd"
  note:
    italic: true
    font-color: "#808080"
    rotation: -30
    wrap: true
  plain: {}
borders:
  box: {}
  underline:
    edges: {top: false, left: false, right: false}
    style: double
    color: "#ff0000"
    thickness: 0.05cm
`

func TestLoadPresets(t *testing.T) {
	p, err := LoadPresets(strings.NewReader(presetsYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"header", "note", "plain"}, p.StyleNames())
	assert.Equal(t, []string{"box", "underline"}, p.BorderNames())

	header, ok := p.Style("header")
	require.True(t, ok)
	assert.Equal(t, "font-weight: bold;\nfont-size: 14;\nbackground-color: #dddddd;\ntext-align: center;\n", header.String())

	note, ok := p.Style("note")
	require.True(t, ok)
	assert.True(t, note.Italic())
	assert.True(t, note.TextWrap())
	assert.Equal(t, -30, note.TextRotation())
	assert.Equal(t, RGB(0x80, 0x80, 0x80), *note.FontColor())

	plain, ok := p.Style("plain")
	require.True(t, ok)
	assert.True(t, plain.IsDefault())

	box, ok := p.Border("box")
	require.True(t, ok)
	assert.True(t, box.Equal(NewBorder()))

	under, ok := p.Border("underline")
	require.True(t, ok)
	assert.False(t, under.IsFull())
	assert.True(t, under.Bottom())
	assert.Equal(t, "0.50mm double #ff0000", under.Describe())

	_, ok = p.Style("missing")
	assert.False(t, ok)
}

func TestLoadPresetsErrors(t *testing.T) {
	const doc = `
styles:
  small: {font-size: -4}
  odd: {align: justify, rotation: 400}
borders:
  wavy: {style: wavy, thickness: thin}
`
	_, err := LoadPresets(strings.NewReader(doc))
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 3)
	assert.ErrorIs(t, err, ErrInvalidAttribute)
	assert.ErrorIs(t, err, ErrUnknownAlignment)
	assert.ErrorIs(t, err, ErrUnknownBorderStyle)
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Contains(t, err.Error(), `style "odd"`)
	assert.Contains(t, err.Error(), `border "wavy"`)
}

func TestLoadPresetsUnknownField(t *testing.T) {
	_, err := LoadPresets(strings.NewReader("styles:\n  x: {blink: true}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blink")
}

func TestLoadPresetsEmpty(t *testing.T) {
	p, err := LoadPresets(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, p.StyleNames())
	assert.Empty(t, p.BorderNames())
}

func TestPresetsRegister(t *testing.T) {
	p, err := LoadPresets(strings.NewReader(presetsYAML))
	require.NoError(t, err)

	reg := NewRegistry(nil)
	styles, borders := p.Register(reg)

	assert.Equal(t, map[string]string{"header": "ce1", "note": "ce2", "plain": ""}, styles)
	assert.Equal(t, map[string]string{"box": "bd1", "underline": "bd2"}, borders)

	// a second registration reuses every name
	styles2, borders2 := p.Register(reg)
	assert.Equal(t, styles, styles2)
	assert.Equal(t, borders, borders2)
}
