// Package geom provides geometric primitives for beam-map coordinates:
// Cartesian/polar conversion, two-point line evaluation, and mesh
// construction from axis vectors.
package geom

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by geom functions.
var (
	ErrLengthMismatch = errors.New("geom: coordinate slices have different lengths")
	ErrVerticalLine   = errors.New("geom: vertical line has undefined slope")
)

// Cart2Pol converts Cartesian coordinates to polar, elementwise.
//
// rho[i] = sqrt(x[i]^2 + y[i]^2) and theta[i] = atan2(y[i], x[i]), with
// theta in (-pi, pi].
func Cart2Pol(x, y []float64) (rho, theta []float64, err error) {
	if len(x) != len(y) {
		return nil, nil, ErrLengthMismatch
	}

	rho = make([]float64, len(x))
	theta = make([]float64, len(x))

	// The radial part is the complex magnitude of (x, y).
	vecmath.Magnitude(rho, x, y)

	for i := range theta {
		theta[i] = math.Atan2(y[i], x[i])
	}

	return rho, theta, nil
}
