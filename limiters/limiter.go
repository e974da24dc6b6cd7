package limiters

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/fvlimit/ratio"
)

// Limiter maps a smoothness ratio r to a blending coefficient between the
// low order (upwind) and high order (central) face value.
type Limiter interface {
	Coefficient(r float64) float64
	Name() string
}

// LimiterFunction composes a ratio provider with a limiter curve. It is a value
// type and holds no state beyond its two collaborators, so one instance can be
// shared by any number of goroutines.
type LimiterFunction[Phi, Grad any] struct {
	Ratio   ratio.Provider[Phi, Grad]
	Limiter Limiter
}

func NewLimiterFunction[Phi, Grad any](rp ratio.Provider[Phi, Grad],
	lim Limiter) LimiterFunction[Phi, Grad] {
	return LimiterFunction[Phi, Grad]{Ratio: rp, Limiter: lim}
}

// Limit returns the limiter coefficient for one face. cdWeight is not used by
// the r based limiters, it is carried so every limiter family shares one call
// signature.
func (lf LimiterFunction[Phi, Grad]) Limit(cdWeight, faceFlux float64,
	phiP, phiN Phi, gradP, gradN Grad, d r3.Vec) float64 {
	r := lf.Ratio.Ratio(faceFlux, phiP, phiN, gradP, gradN, d)
	return lf.Limiter.Coefficient(r)
}
