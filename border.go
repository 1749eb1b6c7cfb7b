package sods

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownBorderStyle is returned by ParseBorderStyle.
var ErrUnknownBorderStyle = errors.New("sods: unknown border style")

// BorderStyle is the stroke pattern of a border.
type BorderStyle int

const (
	BorderStyleSolid BorderStyle = iota
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleRidge
	BorderStyleGroove
	BorderStyleInset
	BorderStyleDouble
)

var borderStyleNames = [...]string{
	BorderStyleSolid:  "solid",
	BorderStyleDotted: "dotted",
	BorderStyleDashed: "dashed",
	BorderStyleRidge:  "ridge",
	BorderStyleGroove: "groove",
	BorderStyleInset:  "inset",
	BorderStyleDouble: "double",
}

// String returns the stroke name as it appears in border descriptions.
func (s BorderStyle) String() string {
	if s < 0 || int(s) >= len(borderStyleNames) {
		return fmt.Sprintf("BorderStyle(%d)", int(s))
	}

	return borderStyleNames[s]
}

// ParseBorderStyle maps a stroke name back to its BorderStyle.
func ParseBorderStyle(name string) (BorderStyle, error) {
	for i, n := range borderStyleNames {
		if strings.EqualFold(n, name) {
			return BorderStyle(i), nil
		}
	}

	return BorderStyleSolid, fmt.Errorf("%w: %q", ErrUnknownBorderStyle, name)
}

// Edge names one side of a cell.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// DefaultBorderThickness is 0.035cm.
const DefaultBorderThickness = 0.035 * Centimeter

// Border describes the four edges of a cell border. All edges share one
// stroke style, colour and thickness.
type Border struct {
	thickness Length
	top       bool
	bottom    bool
	left      bool
	right     bool
	color     Color
	style     BorderStyle
}

// NewBorder returns a full, solid, black border 0.035cm thick.
func NewBorder() *Border {
	return &Border{
		thickness: DefaultBorderThickness,
		top:       true,
		bottom:    true,
		left:      true,
		right:     true,
		color:     Black,
		style:     BorderStyleSolid,
	}
}

// SetEdges selects which sides are painted.
func (b *Border) SetEdges(top, left, bottom, right bool) {
	b.top = top
	b.bottom = bottom
	b.left = left
	b.right = right
}

func (b *Border) SetStyle(style BorderStyle) {
	b.style = style
}

func (b *Border) SetColor(c Color) {
	b.color = c
}

func (b *Border) SetRGB(red, green, blue uint8) {
	b.color = RGB(red, green, blue)
}

func (b *Border) SetThickness(l Length) {
	b.thickness = l
}

// SetThicknessString sets the thickness from a textual length like "0.035cm".
// The border is left unchanged when the text cannot be converted.
func (b *Border) SetThicknessString(s string) error {
	l, err := ParseLength(s)
	if err != nil {
		return err
	}
	b.thickness = l

	return nil
}

func (b *Border) Thickness() Length {
	return b.thickness
}

func (b *Border) Style() BorderStyle {
	return b.style
}

func (b *Border) Color() Color {
	return b.color
}

func (b *Border) Top() bool    { return b.top }
func (b *Border) Bottom() bool { return b.bottom }
func (b *Border) Left() bool   { return b.left }
func (b *Border) Right() bool  { return b.right }

// EdgePresence reports an edge as 0 or 1, the numeric form document writers
// store alongside other spacing fields.
func (b *Border) EdgePresence(e Edge) float64 {
	var present bool
	switch e {
	case EdgeTop:
		present = b.top
	case EdgeBottom:
		present = b.bottom
	case EdgeLeft:
		present = b.left
	case EdgeRight:
		present = b.right
	}

	if present {
		return 1
	}

	return 0
}

// IsFull reports whether all four edges are painted.
func (b *Border) IsFull() bool {
	return b.top && b.bottom && b.left && b.right
}

// Describe returns "<thickness>mm <style> <color>", e.g. "0.35mm solid #000000".
// The thickness is rounded half-to-even to two decimals.
func (b *Border) Describe() string {
	return roundThickness(b.thickness) + "mm " + b.style.String() + " " + b.color.String()
}

// String implements fmt.Stringer with the same text as Describe.
func (b *Border) String() string {
	return b.Describe()
}

// Equal compares the content of two borders.
func (b *Border) Equal(o *Border) bool {
	if b == nil || o == nil {
		return b == o
	}

	return *b == *o
}

// Hash is consistent with Equal.
func (b *Border) Hash() int {
	bits := math.Float64bits(float64(b.thickness))
	h := int(bits ^ bits>>32)
	h = 31*h + boolHash(b.top)
	h = 31*h + boolHash(b.bottom)
	h = 31*h + boolHash(b.left)
	h = 31*h + boolHash(b.right)
	h = 31*h + hashString(b.color.String())
	h = 31*h + hashString(b.style.String())

	return h
}

// Clone returns an independent copy.
func (b *Border) Clone() *Border {
	c := *b

	return &c
}

// roundThickness formats the millimetre value with two decimals using
// banker's rounding on the exact binary value of the float.
func roundThickness(l Length) string {
	return exactDecimal(float64(l)).RoundBank(2).StringFixed(2)
}

// exactDecimal converts f to a decimal without shortest-representation
// rounding, so 0.135 keeps its binary tail 0.13500000000000000888...
func exactDecimal(f float64) decimal.Decimal {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}

	mant := new(big.Float).SetFloat64(f)
	exp := mant.MantExp(mant) - 53
	mant.SetMantExp(mant, 53)
	coef, _ := mant.Int(nil)

	if exp >= 0 {
		return decimal.NewFromBigInt(coef.Lsh(coef, uint(exp)), 0)
	}

	// m * 2^e == m * 5^-e * 10^e
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)

	return decimal.NewFromBigInt(coef.Mul(coef, five), int32(exp))
}

func boolHash(v bool) int {
	if v {
		return 1
	}

	return 0
}
