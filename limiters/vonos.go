package limiters

import "math"

/*
VONOS is the Variable-Order Non-oscillatory Scheme limiter.

	Varonos A., Bergeles G., "Development and assessment of a Variable-Order
	Non-oscillatory Scheme for convection term discretization",
	International Journal for Numerical Methods in Fluids, 1998, 26(1), pp. 1-16.

On r in [0, 1] the curve follows 18r until it meets the (3+r)/4 line, it is
capped at 2 above r = 2 and is 0 for r <= 0.
*/
type VONOS struct{}

// VONOSConfig carries no parameters. Unexpected keys in an input deck are
// rejected by the deck parser, not here.
type VONOSConfig struct{}

func NewVONOS(VONOSConfig) VONOS { return VONOS{} }

func (VONOS) Name() string { return "VONOS" }

// Coefficient is total over float64. +Inf gives 2, -Inf gives 0 and NaN gives
// 0 (full upwinding), so the result is always in [0, 2].
func (VONOS) Coefficient(r float64) float64 {
	if math.IsNaN(r) {
		return 0
	}
	a := min(18.0*r, (3.0+r)/4.0)
	b := max(a, r)
	c := min(b, 2.0)
	return max(c, 0)
}
