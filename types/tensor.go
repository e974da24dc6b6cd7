package types

import "gonum.org/v1/gonum/spatial/r3"

// Tensor is a 3x3 rank two tensor stored by rows. The gradient of a vector
// field u is stored with Tensor[i] = d(u)/dx_i, so row i holds the derivative
// of every component along axis i.
type Tensor [3]r3.Vec

func NewTensorFromRows(rx, ry, rz r3.Vec) Tensor {
	return Tensor{rx, ry, rz}
}

// VecDot returns d . T, the directional derivative of the field along d.
func (t Tensor) VecDot(d r3.Vec) (v r3.Vec) {
	v = r3.Scale(d.X, t[0])
	v = r3.Add(v, r3.Scale(d.Y, t[1]))
	v = r3.Add(v, r3.Scale(d.Z, t[2]))
	return
}

func (t Tensor) Add(o Tensor) (s Tensor) {
	for i := range t {
		s[i] = r3.Add(t[i], o[i])
	}
	return
}

func (t Tensor) Scale(f float64) (s Tensor) {
	for i := range t {
		s[i] = r3.Scale(f, t[i])
	}
	return
}
