// Package ratio computes the smoothness ratio r handed to a flux limiter.
//
// r compares the gradient across a face with the gradient in the upwind cell
// projected onto the owner to neighbour vector d:
//
//	r = 2 (d . grad(phi)_C) / (phi_N - phi_P) - 1
//
// where C is the upwind cell picked by the sign of the face flux. On a uniform
// 1-D mesh with central cell gradients this reduces to the classic
// (phi_C - phi_U) / (phi_D - phi_C).
package ratio

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/fvlimit/types"
)

// Provider computes r for one face. Implementations are pure.
type Provider[Phi, Grad any] interface {
	Ratio(faceFlux float64, phiP, phiN Phi, gradP, gradN Grad, d r3.Vec) float64
}

// Bound on |gradcf/gradf| beyond which r is saturated rather than divided out.
const ratioCap = 1000.

// TVD is the ratio for scalar fields with vector gradients.
type TVD struct{}

// TVDV is the ratio for vector fields with tensor gradients, measured along the
// direction of the face difference.
type TVDV struct{}

var (
	_ Provider[float64, r3.Vec]      = TVD{}
	_ Provider[r3.Vec, types.Tensor] = TVDV{}
)

func (TVD) Ratio(faceFlux float64, phiP, phiN float64,
	gradP, gradN r3.Vec, d r3.Vec) float64 {
	var (
		gradf  = phiN - phiP
		gradcf float64
	)
	if faceFlux > 0 {
		gradcf = r3.Dot(d, gradP)
	} else {
		gradcf = r3.Dot(d, gradN)
	}
	return limitedRatio(gradcf, gradf)
}

func (TVDV) Ratio(faceFlux float64, phiP, phiN r3.Vec,
	gradP, gradN types.Tensor, d r3.Vec) float64 {
	var (
		gradfV = r3.Sub(phiN, phiP)
		gradf  = r3.Dot(gradfV, gradfV)
		gradcf float64
	)
	if faceFlux > 0 {
		gradcf = r3.Dot(gradfV, gradP.VecDot(d))
	} else {
		gradcf = r3.Dot(gradfV, gradN.VecDot(d))
	}
	return limitedRatio(gradcf, gradf)
}

func limitedRatio(gradcf, gradf float64) float64 {
	if math.Abs(gradcf) >= ratioCap*math.Abs(gradf) {
		return 2*ratioCap*sign(gradcf)*sign(gradf) - 1
	}
	return 2*(gradcf/gradf) - 1
}

// sign treats zero as positive.
func sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}
