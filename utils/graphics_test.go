package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineSegments(t *testing.T) {
	assert.Equal(t, []float32{0, 1, 0.5, 2, 0.5, 2, 1, 0},
		LineSegments([]float64{0, 0.5, 1}, []float64{1, 2, 0}))
	assert.Equal(t, 4*99, len(LineSegments(make([]float64, 100), make([]float64, 100))))
	assert.Nil(t, LineSegments([]float64{1}, []float64{1}))
	// Mismatched lengths use the shorter one
	assert.Equal(t, 4, len(LineSegments([]float64{0, 1, 2}, []float64{0, 1})))
}
