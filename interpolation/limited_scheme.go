// Package interpolation blends upwind and central face values using a flux
// limiter evaluated once per face.
package interpolation

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/fvlimit/FV1D"
	"github.com/notargets/fvlimit/limiters"
	"github.com/notargets/fvlimit/utils"
)

// Lerp returns w*phiP + (1-w)*phiN.
type Lerp[Phi any] func(w float64, phiP, phiN Phi) Phi

func ScalarLerp(w float64, phiP, phiN float64) float64 {
	return w*phiP + (1-w)*phiN
}

func VectorLerp(w float64, phiP, phiN r3.Vec) r3.Vec {
	return r3.Add(r3.Scale(w, phiP), r3.Scale(1-w, phiN))
}

// LimitedScheme evaluates its limiter over every face of a mesh. Faces are
// split into ParallelDegree contiguous buckets; each face is computed
// independently so the result does not depend on the split.
type LimitedScheme[Phi, Grad any] struct {
	Limiter        limiters.LimiterFunction[Phi, Grad]
	Lerp           Lerp[Phi]
	ParallelDegree int
}

func NewLimitedScheme[Phi, Grad any](lf limiters.LimiterFunction[Phi, Grad],
	lerp func(w float64, phiP, phiN Phi) Phi, ParallelDegree int) *LimitedScheme[Phi, Grad] {
	return &LimitedScheme[Phi, Grad]{
		Limiter:        lf,
		Lerp:           lerp,
		ParallelDegree: ParallelDegree,
	}
}

func (ls *LimitedScheme[Phi, Grad]) partition(Nfaces int) *utils.PartitionMap {
	return utils.NewPartitionMap(utils.ParallelDegree(ls.ParallelDegree, Nfaces), Nfaces)
}

// checkSizes panics on mismatched inputs or on a face that addresses a cell
// outside the field. The bucket is reported so a bad face can be traced to
// the worker that would have evaluated it.
func checkSizes[Phi, Grad any](pm *utils.PartitionMap, faces []FV1D.Face,
	flux []float64, phi []Phi, grad []Grad) {
	if len(flux) != len(faces) {
		panic(fmt.Errorf("flux length %d does not match face count %d", len(flux), len(faces)))
	}
	if len(grad) != len(phi) {
		panic(fmt.Errorf("gradient length %d does not match field length %d", len(grad), len(phi)))
	}
	K := len(phi)
	for f, face := range faces {
		if face.Owner < 0 || face.Owner >= K || face.Neighbour < 0 || face.Neighbour >= K {
			bn, fMin, fMax := pm.GetBucket(f)
			panic(fmt.Errorf("face %d in bucket %d [%d, %d) joins cells %d and %d, field has %d cells",
				f, bn, fMin, fMax, face.Owner, face.Neighbour, K))
		}
	}
}

// Limiters returns the limiter coefficient of every face.
func (ls *LimitedScheme[Phi, Grad]) Limiters(faces []FV1D.Face, flux []float64,
	phi []Phi, grad []Grad) (lim []float64) {
	lim = make([]float64, len(faces))
	if len(faces) == 0 {
		return
	}
	pm := ls.partition(len(faces))
	checkSizes(pm, faces, flux, phi, grad)
	pm.ForEachBucket(func(bn, fMin, fMax int) {
		for f := fMin; f < fMax; f++ {
			face := faces[f]
			P, N := face.Owner, face.Neighbour
			lim[f] = ls.Limiter.Limit(face.CDWeight, flux[f],
				phi[P], phi[N], grad[P], grad[N], face.D)
		}
	})
	return
}

// Weights returns the owner side interpolation weight of every face,
// lim*cdWeight + (1-lim)*pos0(flux).
func (ls *LimitedScheme[Phi, Grad]) Weights(faces []FV1D.Face, flux []float64,
	phi []Phi, grad []Grad) (w []float64) {
	w = ls.Limiters(faces, flux, phi, grad)
	for f, face := range faces {
		w[f] = w[f]*face.CDWeight + (1-w[f])*pos0(flux[f])
	}
	return
}

// Interpolate returns the limited face values.
func (ls *LimitedScheme[Phi, Grad]) Interpolate(faces []FV1D.Face, flux []float64,
	phi []Phi, grad []Grad) (phiF []Phi) {
	w := ls.Weights(faces, flux, phi, grad)
	phiF = make([]Phi, len(faces))
	for f, face := range faces {
		phiF[f] = ls.Lerp(w[f], phi[face.Owner], phi[face.Neighbour])
	}
	return
}

func pos0(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return 0
}
