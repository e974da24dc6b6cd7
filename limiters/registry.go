package limiters

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type SchemeType uint8

const (
	None SchemeType = iota
	VONOST
)

var (
	ErrUnknownScheme   = errors.New("unknown limiter scheme")
	ErrUnexpectedCoeff = errors.New("unexpected limiter coefficient")
)

var (
	SchemeNames = map[string]SchemeType{
		"vonos": VONOST,
	}
	SchemeNamesRev = map[SchemeType]string{
		VONOST: "VONOS",
	}
)

// Scheme is one entry of the scheme table: the parameter names an input deck
// may set for it and the constructor that builds it.
type Scheme struct {
	Type   SchemeType
	Params []string
	New    func(coeffs map[string]float64) Limiter
}

// The table is filled once at package initialisation and is read only after.
var registry = map[SchemeType]Scheme{
	VONOST: {
		Type:   VONOST,
		Params: nil,
		New: func(map[string]float64) Limiter {
			return NewVONOS(VONOSConfig{})
		},
	},
}

func (st SchemeType) Print() (txt string) {
	if val, ok := SchemeNamesRev[st]; !ok {
		txt = "None"
	} else {
		txt = val
	}
	return
}

func NewSchemeType(label string) (st SchemeType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return None, fmt.Errorf("%w: empty scheme name", ErrUnknownScheme)
	}
	if st, ok = SchemeNames[label]; !ok {
		err = fmt.Errorf("%w: [%s], have %v", ErrUnknownScheme, label, Names())
	}
	return
}

func Lookup(st SchemeType) (sc Scheme, err error) {
	var ok bool
	if sc, ok = registry[st]; !ok {
		err = fmt.Errorf("%w: %s", ErrUnknownScheme, st.Print())
	}
	return
}

// CheckCoeffs returns an error naming every key in coeffs that the scheme
// does not accept.
func (sc Scheme) CheckCoeffs(coeffs map[string]float64) error {
	var bad []string
	for key := range coeffs {
		found := false
		for _, p := range sc.Params {
			if strings.EqualFold(p, key) {
				found = true
				break
			}
		}
		if !found {
			bad = append(bad, key)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return fmt.Errorf("%w for scheme %s: %v", ErrUnexpectedCoeff, sc.Type.Print(), bad)
}

// New builds the named limiter after checking coeffs against the scheme.
func New(label string, coeffs map[string]float64) (lim Limiter, err error) {
	var (
		st SchemeType
		sc Scheme
	)
	if st, err = NewSchemeType(label); err != nil {
		return
	}
	if sc, err = Lookup(st); err != nil {
		return
	}
	if err = sc.CheckCoeffs(coeffs); err != nil {
		return
	}
	lim = sc.New(coeffs)
	return
}

// Names returns the display names of every registered scheme, sorted.
func Names() (names []string) {
	for st := range registry {
		names = append(names, st.Print())
	}
	sort.Strings(names)
	return
}
