package quantity

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Errors returned by quantity functions.
var (
	ErrUnknownUnit = errors.New("quantity: unknown angular unit")
)

// Unit identifies an angular unit.
type Unit int

const (
	Radian Unit = iota
	Degree
)

// String returns the conventional abbreviation of the unit.
func (u Unit) String() string {
	switch u {
	case Radian:
		return "rad"
	case Degree:
		return "deg"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Valid reports whether u is a known angular unit.
func (u Unit) Valid() bool {
	return u == Radian || u == Degree
}

// ParseUnit parses a unit abbreviation such as "rad" or "deg".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rad", "radian", "radians":
		return Radian, nil
	case "deg", "degree", "degrees":
		return Degree, nil
	}

	return 0, fmt.Errorf("quantity: parsing %q: %w", s, ErrUnknownUnit)
}

const degPerRad = 180 / math.Pi

// Angle is a scalar angular quantity tagged with its unit.
//
// Arithmetic converts the right operand to the left operand's unit, so
// mixed-unit expressions are well defined without an external units
// framework.
type Angle struct {
	Value float64
	Unit  Unit
}

// Rad returns an angle of v radians.
func Rad(v float64) Angle {
	return Angle{Value: v, Unit: Radian}
}

// Deg returns an angle of v degrees.
func Deg(v float64) Angle {
	return Angle{Value: v, Unit: Degree}
}

// Radians returns the angle expressed in radians.
func (a Angle) Radians() float64 {
	if a.Unit == Degree {
		return a.Value / degPerRad
	}

	return a.Value
}

// Degrees returns the angle expressed in degrees.
func (a Angle) Degrees() float64 {
	if a.Unit == Degree {
		return a.Value
	}

	return a.Value * degPerRad
}

// To converts the angle to unit u.
func (a Angle) To(u Unit) (Angle, error) {
	if !u.Valid() {
		return Angle{}, ErrUnknownUnit
	}

	switch u {
	case Radian:
		return Rad(a.Radians()), nil
	default:
		return Deg(a.Degrees()), nil
	}
}

// Validate checks that the unit tag is a known unit.
func (a Angle) Validate() error {
	if !a.Unit.Valid() {
		return ErrUnknownUnit
	}

	return nil
}

// Add returns a + b expressed in a's unit.
func (a Angle) Add(b Angle) Angle {
	return Angle{Value: a.Value + convert(b, a.Unit), Unit: a.Unit}
}

// Sub returns a - b expressed in a's unit.
func (a Angle) Sub(b Angle) Angle {
	return Angle{Value: a.Value - convert(b, a.Unit), Unit: a.Unit}
}

// Mul returns the angle scaled by the dimensionless factor k.
func (a Angle) Mul(k float64) Angle {
	return Angle{Value: a.Value * k, Unit: a.Unit}
}

// Less reports whether a < b, comparing in a common unit.
func (a Angle) Less(b Angle) bool {
	return a.Radians() < b.Radians()
}

// AlmostEqual reports whether a and b differ by at most tol, where tol
// is interpreted in radians.
func (a Angle) AlmostEqual(b Angle, tol float64) bool {
	return math.Abs(a.Radians()-b.Radians()) <= tol
}

// convert returns b's value expressed in unit u.
func convert(b Angle, u Unit) float64 {
	if b.Unit == u {
		return b.Value
	}

	if u == Radian {
		return b.Radians()
	}

	return b.Degrees()
}

// Angles is a sampled angular coordinate: a slice of values sharing a
// single unit tag.
type Angles struct {
	Values []float64
	Unit   Unit
}

// RadSlice tags values as radians.
func RadSlice(values []float64) Angles {
	return Angles{Values: values, Unit: Radian}
}

// DegSlice tags values as degrees.
func DegSlice(values []float64) Angles {
	return Angles{Values: values, Unit: Degree}
}

// Len returns the number of samples.
func (a Angles) Len() int {
	return len(a.Values)
}

// Validate checks that the unit tag is a known unit.
func (a Angles) Validate() error {
	if !a.Unit.Valid() {
		return ErrUnknownUnit
	}

	return nil
}

// Radians returns the samples expressed in radians. The original slice
// is returned unchanged when it already carries radians; otherwise a
// converted copy is allocated.
func (a Angles) Radians() []float64 {
	if a.Unit == Radian {
		return a.Values
	}

	out := make([]float64, len(a.Values))
	for i, v := range a.Values {
		out[i] = v / degPerRad
	}

	return out
}
