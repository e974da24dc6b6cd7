package FV1D

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/fvlimit/types"
)

// Face joins an owner cell to a neighbour cell. D points from the owner
// centre to the neighbour centre and CDWeight is the owner side weight of
// linear interpolation to the face.
type Face struct {
	Owner, Neighbour int
	CDWeight         float64
	D                r3.Vec
}

type Mesh1D struct {
	K        int       // Number of cells
	XMin     float64   // Left edge of the domain
	XMax     float64   // Right edge of the domain
	Dx       float64   // Cell width
	X        []float64 // Cell centres
	Faces    []Face
	Periodic bool
}

// NewMesh1D builds K uniform cells on [xmin, xmax]. A periodic mesh has K faces,
// the last one joining cell K-1 to cell 0. Otherwise only the K-1 interior
// faces are built.
func NewMesh1D(xmin, xmax float64, K int, periodic bool) (m *Mesh1D, err error) {
	if K < 3 {
		return nil, fmt.Errorf("need at least 3 cells, have %d", K)
	}
	if xmax <= xmin {
		return nil, fmt.Errorf("invalid domain [%8.5f, %8.5f]", xmin, xmax)
	}
	m = &Mesh1D{
		K:        K,
		XMin:     xmin,
		XMax:     xmax,
		Dx:       (xmax - xmin) / float64(K),
		X:        make([]float64, K),
		Periodic: periodic,
	}
	for k := 0; k < K; k++ {
		m.X[k] = xmin + (float64(k)+0.5)*m.Dx
	}
	Nfaces := K - 1
	if periodic {
		Nfaces = K
	}
	m.Faces = make([]Face, Nfaces)
	for f := 0; f < Nfaces; f++ {
		m.Faces[f] = Face{
			Owner:     f,
			Neighbour: (f + 1) % K,
			CDWeight:  0.5,
			D:         r3.Vec{X: m.Dx},
		}
	}
	return
}

// FaceX returns the coordinate of face f.
func (m *Mesh1D) FaceX(f int) float64 {
	return m.XMin + float64(m.Faces[f].Owner+1)*m.Dx
}

// Gradient returns cell centred gradients by central differences. Boundary
// cells of a non periodic mesh use one sided differences.
func (m *Mesh1D) Gradient(phi []float64) (grad []r3.Vec) {
	grad = make([]r3.Vec, m.K)
	for k := 0; k < m.K; k++ {
		km, kp, h := m.stencil(k)
		grad[k] = r3.Vec{X: (phi[kp] - phi[km]) / h}
	}
	return
}

// GradientV is Gradient for a vector field, only the x row is populated.
func (m *Mesh1D) GradientV(phi []r3.Vec) (grad []types.Tensor) {
	grad = make([]types.Tensor, m.K)
	for k := 0; k < m.K; k++ {
		km, kp, h := m.stencil(k)
		var (
			up = types.NewTensorFromRows(phi[kp], r3.Vec{}, r3.Vec{})
			dn = types.NewTensorFromRows(phi[km], r3.Vec{}, r3.Vec{})
		)
		grad[k] = up.Add(dn.Scale(-1)).Scale(1. / h)
	}
	return
}

func (m *Mesh1D) stencil(k int) (km, kp int, h float64) {
	km, kp, h = k-1, k+1, 2*m.Dx
	switch {
	case m.Periodic:
		km, kp = (k-1+m.K)%m.K, (k+1)%m.K
	case k == 0:
		km, h = 0, m.Dx
	case k == m.K-1:
		kp, h = m.K-1, m.Dx
	}
	return
}
