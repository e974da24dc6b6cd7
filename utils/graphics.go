package utils

// LineSegments packs a sampled curve y(x) into the x1,y1,x2,y2 segment list
// drawn by chart2d AddLine, one segment per neighbouring pair of samples.
func LineSegments(x, y []float64) (xy []float32) {
	N := min(len(x), len(y))
	if N < 2 {
		return nil
	}
	xy = make([]float32, 0, 4*(N-1))
	for i := 0; i < N-1; i++ {
		xy = append(xy,
			float32(x[i]), float32(y[i]),
			float32(x[i+1]), float32(y[i+1]),
		)
	}
	return
}
