package grid

import (
	"errors"
	"math"
)

// Errors returned by grid functions.
var (
	ErrLengthMismatch = errors.New("grid: sample slices have different lengths")
	ErrNoSamples      = errors.New("grid: no samples to interpolate")
	ErrAxisMismatch   = errors.New("grid: axis lengths do not match grid shape")
	ErrNotMonotonic   = errors.New("grid: axis values must be strictly increasing")
)

// IDW interpolates scattered samples by inverse-distance weighting.
//
// The zero value is ready to use and weighs all samples by 1/d^2.
// Setting MaxDistance makes the interpolation local and leaves NaN at
// mesh nodes with no sample in range, mirroring how gridding tools mark
// nodes outside the sampled region.
type IDW struct {
	// Power is the distance exponent; 0 means the default of 2.
	Power float64
	// MaxDistance limits the samples contributing to a node to those
	// within this distance; 0 means no limit.
	MaxDistance float64
}

// snapDist2 is the squared distance under which a mesh node takes the
// sample value directly instead of a weighted average.
const snapDist2 = 1e-24

// Grid interpolates the scattered samples (u[i], v[i]) -> values[i]
// onto the regular mesh spanned by the axis vectors gu and gv.
//
// The result has len(gv) rows and len(gu) columns, the same layout as
// [github.com/oof-tools/holog/geom.Meshgrid].
func (g IDW) Grid(u, v, values, gu, gv []float64) ([][]float64, error) {
	if len(u) != len(v) || len(u) != len(values) {
		return nil, ErrLengthMismatch
	}

	if len(u) == 0 {
		return nil, ErrNoSamples
	}

	power := g.Power
	if power == 0 {
		power = 2
	}
	halfPower := power / 2

	cutoff2 := math.Inf(1)
	if g.MaxDistance > 0 {
		cutoff2 = g.MaxDistance * g.MaxDistance
	}

	out := make([][]float64, len(gv))
	for i, y := range gv {
		out[i] = make([]float64, len(gu))

		for j, x := range gu {
			var num, den float64

			snapped := false
			for k := range u {
				dx := u[k] - x
				dy := v[k] - y
				d2 := dx*dx + dy*dy

				if d2 > cutoff2 {
					continue
				}

				if d2 < snapDist2 {
					out[i][j] = values[k]
					snapped = true

					break
				}

				w := 1 / powHalf(d2, halfPower)
				num += w * values[k]
				den += w
			}

			switch {
			case snapped:
			case den == 0:
				out[i][j] = math.NaN()
			default:
				out[i][j] = num / den
			}
		}
	}

	return out, nil
}

// powHalf computes d2^h, special-casing the default h = 1 (power 2) to
// avoid math.Pow in the inner loop.
func powHalf(d2, h float64) float64 {
	if h == 1 {
		return d2
	}
	if h == 0.5 {
		return math.Sqrt(d2)
	}

	return math.Pow(d2, h)
}
