// Package stats provides amplitude statistics for beam maps: min-max
// normalization along a chosen axis and root-mean-square measures.
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by stats functions.
var (
	ErrRaggedRows  = errors.New("stats: rows have unequal lengths")
	ErrUnknownAxis = errors.New("stats: unknown axis")
)

// Axis selects the slice direction for per-axis operations on a 2D map.
type Axis int

const (
	// AxisNone flattens the map and treats it as a single 1D sample set.
	AxisNone Axis = iota
	// AxisColumns normalizes each column across rows.
	AxisColumns
	// AxisRows normalizes each row independently.
	AxisRows
)

// Norm min-max normalizes x into [0, 1]: (v - min) / (max - min).
//
// A constant input (max == min) yields all zeros rather than NaN.
// An empty input yields an empty slice.
func Norm(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}

	normInto(out, x, floats.Min(x), floats.Max(x))

	return out
}

// NormAxis min-max normalizes a 2D map along the given axis.
//
// AxisNone normalizes over all elements, AxisRows over each row, and
// AxisColumns over each column (which requires equal row lengths).
// Constant slices yield zeros, matching [Norm].
func NormAxis(rows [][]float64, axis Axis) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
	}

	if len(rows) == 0 {
		return out, nil
	}

	switch axis {
	case AxisNone:
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, row := range rows {
			for _, v := range row {
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
		}
		for i, row := range rows {
			normInto(out[i], row, lo, hi)
		}

	case AxisRows:
		for i, row := range rows {
			if len(row) == 0 {
				continue
			}
			normInto(out[i], row, floats.Min(row), floats.Max(row))
		}

	case AxisColumns:
		width := len(rows[0])
		for _, row := range rows[1:] {
			if len(row) != width {
				return nil, ErrRaggedRows
			}
		}
		for j := 0; j < width; j++ {
			lo, hi := rows[0][j], rows[0][j]
			for _, row := range rows[1:] {
				lo = math.Min(lo, row[j])
				hi = math.Max(hi, row[j])
			}
			for i, row := range rows {
				out[i][j] = normValue(row[j], lo, hi)
			}
		}

	default:
		return nil, ErrUnknownAxis
	}

	return out, nil
}

func normInto(dst, src []float64, lo, hi float64) {
	for i, v := range src {
		dst[i] = normValue(v, lo, hi)
	}
}

func normValue(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}

	return (v - lo) / (hi - lo)
}

// RMS returns the root-mean-square of x. An empty input returns 0.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var sumSq float64
	for _, v := range x {
		sumSq += v * v
	}

	return math.Sqrt(sumSq / float64(len(x)))
}

// RMSRows returns the RMS of each row of a 2D map.
func RMSRows(rows [][]float64) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = RMS(row)
	}

	return out
}
