package beam

import (
	"errors"
	"fmt"
	"math"

	"github.com/oof-tools/holog/quantity"
)

// Errors returned by beam functions.
var (
	ErrLengthMismatch = errors.New("beam: amplitude and coordinate slices have different lengths")
	ErrShapeMismatch  = errors.New("beam: grid shape does not match axis lengths")
	ErrEmptyRegion    = errors.New("beam: region of interest contains no samples")
	ErrEmptyNoise     = errors.New("beam: no finite samples outside the region of interest")
	ErrZeroNoise      = errors.New("beam: noise floor is zero")
)

// Centre is the centre of a circular region of interest.
type Centre struct {
	U quantity.Angle
	V quantity.Angle
}

// At places the centre at (c, c), the common case of a region centred
// on the diagonal offset used during observation.
func At(c quantity.Angle) Centre {
	return Centre{U: c, V: c}
}

// SNR estimates the signal-to-noise ratio of a scattered beam map.
//
// beamData holds amplitudes sampled at the angular coordinates (u, v).
// Samples within radius of centre form the signal region; the signal
// estimate is the maximum amplitude there. All finite samples outside
// the region form the noise population; the noise estimate is their
// RMS. The result is |signal| / noise.
//
// NaN amplitudes are skipped. An empty signal region returns
// [ErrEmptyRegion]; an empty noise population returns [ErrEmptyNoise];
// an identically zero noise floor returns [ErrZeroNoise].
func SNR(beamData []float64, u, v quantity.Angles, centre Centre, radius quantity.Angle) (float64, error) {
	if err := validateUnits(u, v, centre, radius); err != nil {
		return 0, err
	}

	if len(beamData) != u.Len() || len(beamData) != v.Len() {
		return 0, ErrLengthMismatch
	}

	ur := u.Radians()
	vr := v.Radians()
	u0 := centre.U.Radians()
	v0 := centre.V.Radians()
	r2 := radius.Radians() * radius.Radians()

	var (
		signal    = math.Inf(-1)
		nSignal   int
		noiseSq   float64
		noiseSize int
	)

	for i, amp := range beamData {
		if math.IsNaN(amp) {
			continue
		}

		du := ur[i] - u0
		dv := vr[i] - v0

		if du*du+dv*dv <= r2 {
			nSignal++
			if amp > signal {
				signal = amp
			}
		} else {
			noiseSq += amp * amp
			noiseSize++
		}
	}

	if nSignal == 0 {
		return 0, ErrEmptyRegion
	}

	if noiseSize == 0 {
		return 0, ErrEmptyNoise
	}

	noise := math.Sqrt(noiseSq / float64(noiseSize))
	if noise == 0 {
		return 0, ErrZeroNoise
	}

	return math.Abs(signal) / noise, nil
}

// SNRGrid estimates the signal-to-noise ratio of a gridded beam map.
//
// beamGrid rows are indexed by v and columns by u, the layout produced
// by interpolating scattered samples onto a regular mesh. The grid is
// flattened and evaluated with the same masking policy as [SNR].
func SNRGrid(beamGrid [][]float64, u, v quantity.Angles, centre Centre, radius quantity.Angle) (float64, error) {
	if err := validateUnits(u, v, centre, radius); err != nil {
		return 0, err
	}

	if len(beamGrid) != v.Len() {
		return 0, ErrShapeMismatch
	}
	for _, row := range beamGrid {
		if len(row) != u.Len() {
			return 0, ErrShapeMismatch
		}
	}

	n := u.Len() * v.Len()
	flat := make([]float64, 0, n)
	uf := make([]float64, 0, n)
	vf := make([]float64, 0, n)

	ur := u.Radians()
	vr := v.Radians()

	for i, row := range beamGrid {
		for j, amp := range row {
			flat = append(flat, amp)
			uf = append(uf, ur[j])
			vf = append(vf, vr[i])
		}
	}

	return SNR(flat, quantity.RadSlice(uf), quantity.RadSlice(vf), centre, radius)
}

func validateUnits(u, v quantity.Angles, centre Centre, radius quantity.Angle) error {
	for _, err := range []error{
		u.Validate(),
		v.Validate(),
		centre.U.Validate(),
		centre.V.Validate(),
		radius.Validate(),
	} {
		if err != nil {
			return fmt.Errorf("beam: %w", err)
		}
	}

	return nil
}
