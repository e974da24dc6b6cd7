package interpolation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/fvlimit/FV1D"
	"github.com/notargets/fvlimit/limiters"
	"github.com/notargets/fvlimit/ratio"
	"github.com/notargets/fvlimit/types"
	"github.com/notargets/fvlimit/utils"
)

// upwindLimiter always selects the low order value
type upwindLimiter struct{}

func (upwindLimiter) Coefficient(float64) float64 { return 0 }
func (upwindLimiter) Name() string { return "upwind" }

func assertBounded(t *testing.T, m *FV1D.Mesh1D, phi, phiF []float64) {
	for f, face := range m.Faces {
		lo := math.Min(phi[face.Owner], phi[face.Neighbour])
		hi := math.Max(phi[face.Owner], phi[face.Neighbour])
		assert.True(t, phiF[f] >= lo && phiF[f] <= hi,
			"face %d value %v outside [%v, %v]", f, phiF[f], lo, hi)
	}
}

func TestStepFunction(t *testing.T) {
	m, err := FV1D.NewMesh1D(0, 1, 40, true)
	require.NoError(t, err)
	var (
		phi  = m.Initialize(FV1D.Step)
		grad = m.Gradient(phi)
	)
	vonos, err := limiters.New("VONOS", nil)
	require.NoError(t, err)
	for _, lim := range []limiters.Limiter{vonos, upwindLimiter{}} {
		ls := NewLimitedScheme[float64, r3.Vec](
			limiters.NewLimiterFunction[float64, r3.Vec](ratio.TVD{}, lim),
			ScalarLerp, 4)
		for _, u := range []float64{1, -1} {
			flux := utils.ConstArray(len(m.Faces), u)
			psi := ls.Limiters(m.Faces, flux, phi, grad)
			for f := range psi {
				assert.True(t, psi[f] >= 0 && psi[f] <= 2)
			}
			phiF := ls.Interpolate(m.Faces, flux, phi, grad)
			assertBounded(t, m, phi, phiF)
			// The face on the discontinuity takes the upwind value
			if u > 0 {
				assert.Equal(t, 1., phiF[19], lim.Name())
			} else {
				assert.Equal(t, 0., phiF[19], lim.Name())
			}
		}
	}
}

func TestLinearFieldIsCentral(t *testing.T) {
	m, _ := FV1D.NewMesh1D(0, 1, 20, false)
	phi := make([]float64, m.K)
	for k, x := range m.X {
		phi[k] = x
	}
	grad := m.Gradient(phi)
	ls := NewLimitedScheme[float64, r3.Vec](
		limiters.NewLimiterFunction[float64, r3.Vec](ratio.TVD{}, limiters.VONOS{}),
		ScalarLerp, 3)
	for _, u := range []float64{2, -2} {
		phiF := ls.Interpolate(m.Faces, utils.ConstArray(len(m.Faces), u), phi, grad)
		for f := range m.Faces {
			assert.InDelta(t, m.FaceX(f), phiF[f], 1.e-12)
		}
	}
}

func TestDeterministicAcrossParallelDegree(t *testing.T) {
	m, _ := FV1D.NewMesh1D(0, 1, 257, true)
	phi := make([]float64, m.K)
	for k, x := range m.X {
		phi[k] = math.Sin(2*math.Pi*x) + 0.3*math.Cos(14*math.Pi*x)
	}
	var (
		grad = m.Gradient(phi)
		flux = make([]float64, len(m.Faces))
		lf   = limiters.NewLimiterFunction[float64, r3.Vec](ratio.TVD{}, limiters.VONOS{})
	)
	for f := range flux {
		flux[f] = math.Cos(float64(f))
	}
	ref := NewLimitedScheme(lf, ScalarLerp, 1).Interpolate(m.Faces, flux, phi, grad)
	for _, NP := range []int{0, 2, 7, 64} {
		assert.Equal(t, ref, NewLimitedScheme(lf, ScalarLerp, NP).Interpolate(m.Faces, flux, phi, grad))
	}
}

func TestVectorField(t *testing.T) {
	m, _ := FV1D.NewMesh1D(0, 1, 16, true)
	var (
		step = m.Initialize(FV1D.Step)
		phi  = make([]r3.Vec, m.K)
	)
	for k := range phi {
		phi[k] = r3.Vec{X: step[k], Y: 2 * step[k], Z: -step[k]}
	}
	grad := m.GradientV(phi)
	ls := NewLimitedScheme[r3.Vec, types.Tensor](
		limiters.NewLimiterFunction[r3.Vec, types.Tensor](ratio.TVDV{}, limiters.VONOS{}),
		VectorLerp, 2)
	phiF := ls.Interpolate(m.Faces, utils.ConstArray(len(m.Faces), 1), phi, grad)
	for f, face := range m.Faces {
		x := func(v r3.Vec) float64 { return v.X }
		lo := math.Min(x(phi[face.Owner]), x(phi[face.Neighbour]))
		hi := math.Max(x(phi[face.Owner]), x(phi[face.Neighbour]))
		assert.True(t, phiF[f].X >= lo && phiF[f].X <= hi)
		assert.InDelta(t, 2*phiF[f].X, phiF[f].Y, 1.e-15)
	}
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: -1}, phiF[7])
}

func TestSizeMismatchPanics(t *testing.T) {
	m, _ := FV1D.NewMesh1D(0, 1, 8, true)
	phi := m.Initialize(FV1D.Step)
	ls := NewLimitedScheme(
		limiters.NewLimiterFunction[float64, r3.Vec](ratio.TVD{}, limiters.VONOS{}),
		ScalarLerp, 1)
	assert.Panics(t, func() {
		ls.Limiters(m.Faces, utils.ConstArray(3, 1), phi, m.Gradient(phi))
	})
	{ // A face pointing past the field names its bucket
		ls.ParallelDegree = 4
		faces := append([]FV1D.Face{}, m.Faces...)
		faces[5].Neighbour = 8
		assert.PanicsWithError(t,
			"face 5 in bucket 2 [4, 6) joins cells 5 and 8, field has 8 cells",
			func() {
				ls.Limiters(faces, utils.ConstArray(len(faces), 1), phi, m.Gradient(phi))
			})
	}
	assert.Equal(t, 0, len(ls.Limiters(nil, nil, phi, m.Gradient(phi))))
}
