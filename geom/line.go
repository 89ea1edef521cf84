package geom

// Point is a 2D Cartesian point.
type Point struct {
	X float64
	Y float64
}

// LineEquation evaluates the line through p1 and p2 at each x.
//
// y = p1.Y + (p2.Y - p1.Y) / (p2.X - p1.X) * (x - p1.X)
//
// Coincident x-coordinates describe a vertical line and return
// [ErrVerticalLine] instead of infinities.
func LineEquation(p1, p2 Point, x []float64) ([]float64, error) {
	if p1.X == p2.X {
		return nil, ErrVerticalLine
	}

	slope := (p2.Y - p1.Y) / (p2.X - p1.X)

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = p1.Y + slope*(v-p1.X)
	}

	return out, nil
}
