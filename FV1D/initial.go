package FV1D

import (
	"fmt"
	"strings"
)

type InitType uint8

const (
	Step InitType = iota
	Square
)

var (
	InitNames = map[string]InitType{
		"step":   Step,
		"square": Square,
	}
	InitNamesRev = map[InitType]string{
		Step:   "Step",
		Square: "Square",
	}
)

func (it InitType) Print() (txt string) {
	if val, ok := InitNamesRev[it]; !ok {
		txt = "Unknown"
	} else {
		txt = val
	}
	return
}

func NewInitType(label string) (it InitType, err error) {
	var ok bool
	if len(label) == 0 {
		return Step, nil
	}
	label = strings.ToLower(strings.TrimSpace(label))
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("unable to use init type named [%s]", label)
	}
	return
}

// Initialize samples the initial condition at the cell centres. Step is 1 left
// of the domain midpoint and 0 right of it. Square is 1 on the second quarter
// of the domain and 0 elsewhere.
func (m *Mesh1D) Initialize(it InitType) (phi []float64) {
	var (
		L    = m.XMax - m.XMin
		xMid = m.XMin + 0.5*L
	)
	phi = make([]float64, m.K)
	for k, x := range m.X {
		switch it {
		case Square:
			if x > m.XMin+0.25*L && x < xMid {
				phi[k] = 1
			}
		default:
			if x < xMid {
				phi[k] = 1
			}
		}
	}
	return
}
