package ratio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/fvlimit/types"
)

// Central gradient of a 1-D stencil with unit spacing
func grad1D(phiL, phiR float64) r3.Vec {
	return r3.Vec{X: 0.5 * (phiR - phiL)}
}

func TestTVD(t *testing.T) {
	var (
		rp = TVD{}
		d  = r3.Vec{X: 1}
	)
	{ // Classic ratio (phiC - phiU)/(phiD - phiC) on a uniform stencil
		// phi: U=0, P=1, N=3, NN=4
		gP, gN := grad1D(0, 3), grad1D(1, 4)
		assert.InDelta(t, 0.5, rp.Ratio(1, 1, 3, gP, gN, d), 1.e-15)
		// Reverse flux uses the neighbour: (phiNN - phiN)/(phiN - phiP)
		assert.InDelta(t, 0.5, rp.Ratio(-1, 1, 3, gP, gN, d), 1.e-15)
	}
	{ // Linear field gives r = 1
		gP, gN := grad1D(1, 3), grad1D(2, 4)
		assert.InDelta(t, 1., rp.Ratio(1, 2, 3, gP, gN, d), 1.e-15)
	}
	{ // Local extremum gives r < 0
		gP := grad1D(2, 0)
		assert.True(t, rp.Ratio(1, 3, 0, gP, r3.Vec{}, d) < 0)
	}
	{ // Zero face difference is guarded
		assert.Equal(t, 1999., rp.Ratio(1, 1, 1, r3.Vec{}, r3.Vec{}, d))
		assert.Equal(t, 1999., rp.Ratio(1, 1, 1, r3.Vec{X: 2}, r3.Vec{}, d))
		assert.Equal(t, -2001., rp.Ratio(1, 1, 1, r3.Vec{X: -2}, r3.Vec{}, d))
		assert.False(t, math.IsNaN(rp.Ratio(0, 5, 5, r3.Vec{}, r3.Vec{}, d)))
	}
	{ // Saturation past the ratio cap
		assert.Equal(t, 1999., rp.Ratio(1, 0, 1.e-6, r3.Vec{X: 1}, r3.Vec{}, d))
		assert.Equal(t, -2001., rp.Ratio(1, 0, -1.e-6, r3.Vec{X: 1}, r3.Vec{}, d))
	}
	{ // Only the component of the gradient along d counts
		gP := r3.Vec{X: 1.5, Y: 100, Z: -100}
		assert.InDelta(t, 2., rp.Ratio(1, 1, 2, gP, r3.Vec{}, d), 1.e-15)
	}
}

func TestTVDV(t *testing.T) {
	var (
		rp = TVDV{}
		d  = r3.Vec{X: 1}
		e  = r3.Vec{X: 1, Y: -2, Z: 0.5}
	)
	// A vector field phi(x) = s(x) e must give the same r as the scalar s
	tensor := func(g r3.Vec) types.Tensor {
		return types.Tensor{r3.Scale(g.X, e)}
	}
	for _, tc := range []struct {
		flux            float64
		sU, sP, sN, sNN float64
	}{
		{1, 0, 1, 3, 4},
		{-1, 0, 1, 3, 4},
		{1, 1, 2, 3, 4},
		{1, 2, 3, 0, 1},
		{1, 1, 1, 1, 1},
	} {
		gP, gN := grad1D(tc.sU, tc.sN), grad1D(tc.sP, tc.sNN)
		scalar := TVD{}.Ratio(tc.flux, tc.sP, tc.sN, gP, gN, d)
		vector := rp.Ratio(tc.flux, r3.Scale(tc.sP, e), r3.Scale(tc.sN, e),
			tensor(gP), tensor(gN), d)
		assert.InDelta(t, scalar, vector, 1.e-12)
	}
}
