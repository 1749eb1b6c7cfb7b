//nolint:mnd
package sods

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidLength is returned by ParseLength for malformed measurements.
var ErrInvalidLength = errors.New("sods: invalid length")

// Length is a measurement in millimetres.
type Length float64

const (
	Millimeter Length = 1
	Centimeter Length = 10
	Inch       Length = 25.4
	Point      Length = Inch / 72
	Pica       Length = Inch / 6
	Pixel      Length = Inch / 96
)

var lengthUnits = map[string]Length{
	"mm": Millimeter,
	"cm": Centimeter,
	"in": Inch,
	"pt": Point,
	"pc": Pica,
	"px": Pixel,
}

// ParseLength converts a textual length such as "0.035cm" into millimetres.
// A number without a unit is taken as millimetres.
func ParseLength(s string) (Length, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	unit := Millimeter

	if len(str) > 2 {
		if u, ok := lengthUnits[str[len(str)-2:]]; ok {
			unit = u
			str = strings.TrimSpace(str[:len(str)-2])
		}
	}

	// decimal scaling keeps "0.035cm" equal to the constant 0.35mm
	v, err := decimal.NewFromString(str)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	mm, _ := v.Mul(decimal.NewFromFloat(float64(unit))).Float64()

	return Length(mm), nil
}

// Millimeters returns the length as a plain number of millimetres.
func (l Length) Millimeters() float64 {
	return float64(l)
}

// Points returns the length in typographic points.
func (l Length) Points() float64 {
	return float64(l / Point)
}

// String renders the length in millimetres with the shortest exact digits.
func (l Length) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64) + "mm"
}
