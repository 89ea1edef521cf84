package quantity

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestUnitString(t *testing.T) {
	if got := Radian.String(); got != "rad" {
		t.Errorf("Radian.String(): got %q, want %q", got, "rad")
	}
	if got := Degree.String(); got != "deg" {
		t.Errorf("Degree.String(): got %q, want %q", got, "deg")
	}
	if got := Unit(99).String(); got != "Unit(99)" {
		t.Errorf("Unit(99).String(): got %q, want %q", got, "Unit(99)")
	}
}

func TestParseUnit(t *testing.T) {
	cases := []struct {
		in   string
		want Unit
	}{
		{"rad", Radian},
		{"RAD", Radian},
		{"radians", Radian},
		{" deg ", Degree},
		{"Degrees", Degree},
	}

	for _, tc := range cases {
		got, err := ParseUnit(tc.in)
		if err != nil {
			t.Fatalf("ParseUnit(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseUnit(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseUnit("arcsec"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("ParseUnit(arcsec): got %v, want ErrUnknownUnit", err)
	}
}

func TestConversionRoundTrip(t *testing.T) {
	a := Deg(180)
	if !almostEqual(a.Radians(), math.Pi, tolerance) {
		t.Errorf("Deg(180).Radians(): got %g, want pi", a.Radians())
	}

	b := Rad(math.Pi / 2)
	if !almostEqual(b.Degrees(), 90, tolerance) {
		t.Errorf("Rad(pi/2).Degrees(): got %g, want 90", b.Degrees())
	}

	c, err := a.To(Radian)
	if err != nil {
		t.Fatalf("To(Radian): unexpected error %v", err)
	}
	back, err := c.To(Degree)
	if err != nil {
		t.Fatalf("To(Degree): unexpected error %v", err)
	}
	if !almostEqual(back.Value, 180, tolerance) {
		t.Errorf("round trip: got %g, want 180", back.Value)
	}

	if _, err := a.To(Unit(7)); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("To(Unit(7)): got %v, want ErrUnknownUnit", err)
	}
}

func TestMixedUnitArithmetic(t *testing.T) {
	// 90 deg + pi/2 rad = 180 deg, expressed in the left operand's unit.
	sum := Deg(90).Add(Rad(math.Pi / 2))
	if sum.Unit != Degree {
		t.Fatalf("Add: result unit %v, want Degree", sum.Unit)
	}
	if !almostEqual(sum.Value, 180, 1e-10) {
		t.Errorf("Add: got %g deg, want 180", sum.Value)
	}

	diff := Rad(math.Pi).Sub(Deg(90))
	if !almostEqual(diff.Value, math.Pi/2, tolerance) {
		t.Errorf("Sub: got %g rad, want pi/2", diff.Value)
	}

	half := Deg(10).Mul(0.5)
	if !almostEqual(half.Value, 5, tolerance) {
		t.Errorf("Mul: got %g, want 5", half.Value)
	}

	if !Deg(1).Less(Rad(1)) {
		t.Error("Less: 1 deg should be less than 1 rad")
	}

	if !Deg(45).AlmostEqual(Rad(math.Pi/4), tolerance) {
		t.Error("AlmostEqual: 45 deg and pi/4 rad should match")
	}
}

func TestAnglesRadians(t *testing.T) {
	d := DegSlice([]float64{0, 90, 180})
	got := d.Radians()
	want := []float64{0, math.Pi / 2, math.Pi}

	for i := range want {
		if !almostEqual(got[i], want[i], tolerance) {
			t.Errorf("Radians()[%d]: got %g, want %g", i, got[i], want[i])
		}
	}

	// Radian-tagged slices are passed through without copying.
	r := RadSlice([]float64{1, 2})
	if &r.Values[0] != &r.Radians()[0] {
		t.Error("Radians() on radian slice should not copy")
	}

	if err := (Angles{Values: []float64{1}, Unit: Unit(3)}).Validate(); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("Validate: got %v, want ErrUnknownUnit", err)
	}
}
