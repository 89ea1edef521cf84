package geom

// Meshgrid expands axis vectors u and v into full coordinate matrices.
//
// U and V have len(v) rows and len(u) columns: U[i][j] = u[j] and
// V[i][j] = v[i], so row index follows v and column index follows u.
func Meshgrid(u, v []float64) (U, V [][]float64) {
	U = make([][]float64, len(v))
	V = make([][]float64, len(v))

	for i := range v {
		U[i] = make([]float64, len(u))
		V[i] = make([]float64, len(u))

		copy(U[i], u)
		for j := range u {
			V[i][j] = v[i]
		}
	}

	return U, V
}
