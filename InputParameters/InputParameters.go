package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/fvlimit/FV1D"
	"github.com/notargets/fvlimit/limiters"
)

// Parameters obtained from the YAML input file. ghodss/yaml converts the
// document to JSON before decoding, so the keys bind through json tags.
type InputParameters1D struct {
	Title          string             `json:"Title"`
	Scheme         string             `json:"Scheme"`
	SchemeCoeffs   map[string]float64 `json:"SchemeCoeffs"` // Must be empty for VONOS
	CFL            float64            `json:"CFL"`
	FinalTime      float64            `json:"FinalTime"`
	K              int                `json:"K"`
	XMin           float64            `json:"XMin"`
	XMax           float64            `json:"XMax"`
	Velocity       float64            `json:"Velocity"`
	InitType       string             `json:"InitType"`
	ParallelDegree int                `json:"ParallelDegree"`
}

func NewInputParameters1D() *InputParameters1D {
	return &InputParameters1D{
		Title:     "Limited advection",
		Scheme:    "VONOS",
		CFL:       0.1,
		FinalTime: 1,
		K:         200,
		XMin:      0,
		XMax:      1,
		Velocity:  1,
		InitType:  "Square",
	}
}

// Parse overlays the YAML document on the receiver, keys not present keep
// their current value.
func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Validate resolves the scheme and init type names and rejects coefficients
// the scheme does not accept.
func (ip *InputParameters1D) Validate() (err error) {
	var (
		st limiters.SchemeType
		sc limiters.Scheme
	)
	if st, err = limiters.NewSchemeType(ip.Scheme); err != nil {
		return
	}
	if sc, err = limiters.Lookup(st); err != nil {
		return
	}
	if err = sc.CheckCoeffs(ip.SchemeCoeffs); err != nil {
		return
	}
	if _, err = FV1D.NewInitType(ip.InitType); err != nil {
		return
	}
	switch {
	case ip.K < 3:
		err = fmt.Errorf("K must be at least 3, have %d", ip.K)
	case ip.XMax <= ip.XMin:
		err = fmt.Errorf("XMax %8.5f must exceed XMin %8.5f", ip.XMax, ip.XMin)
	case ip.CFL <= 0:
		err = fmt.Errorf("CFL must be positive, have %8.5f", ip.CFL)
	case ip.FinalTime <= 0:
		err = fmt.Errorf("FinalTime must be positive, have %8.5f", ip.FinalTime)
	case ip.Velocity == 0:
		err = fmt.Errorf("Velocity must be non zero")
	case ip.ParallelDegree < 0:
		err = fmt.Errorf("ParallelDegree must not be negative, have %d", ip.ParallelDegree)
	}
	return
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Scheme\n", ip.Scheme)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d]\t\t\t= K\n", ip.K)
	fmt.Printf("[%8.5f, %8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("%8.5f\t\t= Velocity\n", ip.Velocity)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	keys := make([]string, len(ip.SchemeCoeffs))
	i := 0
	for k := range ip.SchemeCoeffs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("SchemeCoeffs[%s] = %v\n", key, ip.SchemeCoeffs[key])
	}
}
