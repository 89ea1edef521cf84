package grid

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// RegridCubic resamples a gridded map onto new axes with separable
// natural cubic splines: first along u within each row, then along v
// within each column.
//
// values rows are indexed by v and columns by u, the layout of
// [github.com/oof-tools/holog/geom.Meshgrid]. Both source axes must be
// strictly increasing and hold at least two points. Targets outside the
// source span extrapolate with the boundary polynomial.
func RegridCubic(values [][]float64, u, v, nu, nv []float64) ([][]float64, error) {
	if len(values) != len(v) {
		return nil, ErrAxisMismatch
	}
	for _, row := range values {
		if len(row) != len(u) {
			return nil, ErrAxisMismatch
		}
	}

	if !strictlyIncreasing(u) || !strictlyIncreasing(v) {
		return nil, ErrNotMonotonic
	}

	// Pass 1: resample every row onto nu.
	rows := make([][]float64, len(v))
	for i, row := range values {
		resampled, err := resampleCubic(u, row, nu)
		if err != nil {
			return nil, err
		}
		rows[i] = resampled
	}

	// Pass 2: resample every column onto nv.
	out := make([][]float64, len(nv))
	for i := range out {
		out[i] = make([]float64, len(nu))
	}

	col := make([]float64, len(v))
	for j := range nu {
		for i := range v {
			col[i] = rows[i][j]
		}

		resampled, err := resampleCubic(v, col, nv)
		if err != nil {
			return nil, err
		}

		for i := range nv {
			out[i][j] = resampled[i]
		}
	}

	return out, nil
}

func resampleCubic(xs, ys, targets []float64) ([]float64, error) {
	var spline interp.NaturalCubic
	if err := spline.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("grid: fitting cubic spline: %w", err)
	}

	out := make([]float64, len(targets))
	for i, x := range targets {
		out[i] = spline.Predict(x)
	}

	return out, nil
}

func strictlyIncreasing(xs []float64) bool {
	if len(xs) < 2 {
		return false
	}

	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}

	return true
}
