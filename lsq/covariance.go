// Package lsq propagates least-squares fit errors: parameter covariance
// and correlation matrices from residuals and the model Jacobian.
package lsq

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by lsq functions.
var (
	ErrShapeMismatch = errors.New("lsq: residual length does not match Jacobian rows")
	ErrInvalidDOF    = errors.New("lsq: degrees of freedom must be positive")
	ErrSingular      = errors.New("lsq: normal matrix is singular")
)

// Covariance computes the parameter covariance and correlation matrices
// of a least-squares fit.
//
// res holds the N fit residuals and jac the N x M Jacobian of the model
// with respect to the M parameters. nPars is the number of free
// parameters, giving dof = N - nPars. Then
//
//	cov  = (res . res / dof) * (J^T J)^-1
//	corr[i][j] = cov[i][j] / sqrt(cov[i][i] * cov[j][j])
//
// The correlation diagonal is exactly 1. A singular normal matrix
// returns [ErrSingular]; dof <= 0 returns [ErrInvalidDOF].
func Covariance(res []float64, jac mat.Matrix, nPars int) (cov, corr *mat.Dense, err error) {
	n, m := jac.Dims()
	if len(res) != n {
		return nil, nil, ErrShapeMismatch
	}

	dof := n - nPars
	if dof <= 0 {
		return nil, nil, ErrInvalidDOF
	}

	var normal mat.Dense
	normal.Mul(jac.T(), jac)

	var inv mat.Dense
	if invErr := inv.Inverse(&normal); invErr != nil {
		return nil, nil, fmt.Errorf("lsq: inverting normal matrix: %w", ErrSingular)
	}

	scale := floats.Dot(res, res) / float64(dof)

	cov = mat.NewDense(m, m, nil)
	cov.Scale(scale, &inv)

	corr = mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		corr.Set(i, i, 1)
		for j := i + 1; j < m; j++ {
			c := cov.At(i, j) / math.Sqrt(cov.At(i, i)*cov.At(j, j))
			corr.Set(i, j, c)
			corr.Set(j, i, c)
		}
	}

	return cov, corr, nil
}
