package lsq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCovarianceLineFitReference(t *testing.T) {
	// Straight-line fit design matrix with abscissae 1..4.
	jac := mat.NewDense(4, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
		1, 4,
	})
	res := []float64{0.1, -0.2, 0.1, 0}

	// J^T J = [[4, 10], [10, 30]], inverse = [[1.5, -0.5], [-0.5, 0.2]],
	// res.res = 0.06, dof = 2, scale = 0.03.
	covWant := [][]float64{
		{0.045, -0.015},
		{-0.015, 0.006},
	}
	corrOff := -math.Sqrt(5.0 / 6.0)

	cov, corr, err := Covariance(res, jac, 2)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, covWant[i][j], cov.At(i, j), 1e-12, "cov[%d][%d]", i, j)
		}
	}

	assert.Equal(t, 1.0, corr.At(0, 0))
	assert.Equal(t, 1.0, corr.At(1, 1))
	assert.InDelta(t, corrOff, corr.At(0, 1), 1e-12)
	assert.InDelta(t, corrOff, corr.At(1, 0), 1e-12)
}

func TestCovarianceCorrelationInvariants(t *testing.T) {
	jac := mat.NewDense(6, 3, []float64{
		1, 0.5, 0.25,
		1, 1.0, 1.00,
		1, 1.5, 2.25,
		1, 2.0, 4.00,
		1, 2.5, 6.25,
		1, 3.0, 9.00,
	})
	res := []float64{0.02, -0.05, 0.04, 0.01, -0.03, 0.02}

	cov, corr, err := Covariance(res, jac, 3)
	require.NoError(t, err)

	rows, cols := corr.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)

	for i := 0; i < rows; i++ {
		assert.Equal(t, 1.0, corr.At(i, i), "corr diagonal [%d]", i)
		assert.Greater(t, cov.At(i, i), 0.0, "cov diagonal [%d]", i)

		for j := 0; j < cols; j++ {
			assert.InDelta(t, corr.At(j, i), corr.At(i, j), 1e-12, "symmetry [%d][%d]", i, j)
			assert.LessOrEqual(t, math.Abs(corr.At(i, j)), 1.0+1e-12, "corr range [%d][%d]", i, j)
		}
	}
}

func TestCovarianceIdentityJacobian(t *testing.T) {
	// Orthonormal columns: covariance is scale * I and parameters are
	// uncorrelated.
	jac := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		0, 0,
		0, 0,
	})
	res := []float64{1, 1, 1, 1}

	cov, corr, err := Covariance(res, jac, 2)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, cov.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0, cov.At(1, 1), 1e-12)
	assert.InDelta(t, 0.0, cov.At(0, 1), 1e-12)
	assert.InDelta(t, 0.0, corr.At(0, 1), 1e-12)
}

func TestCovarianceSingular(t *testing.T) {
	// Linearly dependent columns make J^T J singular.
	jac := mat.NewDense(3, 2, []float64{
		1, 2,
		2, 4,
		3, 6,
	})
	res := []float64{0.1, 0.1, 0.1}

	_, _, err := Covariance(res, jac, 1)
	assert.ErrorIs(t, err, ErrSingular)
}

func TestCovarianceInvalidInputs(t *testing.T) {
	jac := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})

	_, _, err := Covariance([]float64{1, 2}, jac, 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, _, err = Covariance([]float64{1, 2, 3}, jac, 3)
	assert.ErrorIs(t, err, ErrInvalidDOF)

	_, _, err = Covariance([]float64{1, 2, 3}, jac, 4)
	assert.ErrorIs(t, err, ErrInvalidDOF)
}
