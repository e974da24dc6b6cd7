package Advection1D

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/fvlimit/FV1D"
	"github.com/notargets/fvlimit/interpolation"
	"github.com/notargets/fvlimit/limiters"
	"github.com/notargets/fvlimit/ratio"
	"github.com/notargets/fvlimit/utils"
)

// Advection solves u_t + a u_x = 0 on a periodic finite volume mesh with
// limited face values and three stage SSP Runge-Kutta time stepping.
type Advection struct {
	// Input parameters
	a, CFL, FinalTime float64
	Mesh              *FV1D.Mesh1D
	Scheme            *interpolation.LimitedScheme[float64, r3.Vec]
	Init              FV1D.InitType
	Log               zerolog.Logger
	LogFrequency      int
	flux              []float64
	PlotOnce          sync.Once
	chart             *chart2d.Chart2D
}

// Stats summarises a run. TV is the total variation; a TVD run never has
// TVIncreases or NewExtrema.
type Stats struct {
	Steps       int
	Time        float64
	UMin, UMax  float64
	TV0, TV     float64
	TVIncreases int
	NewExtrema  bool
}

const tvdTol = 1.e-10

func NewAdvection(a, CFL, FinalTime float64, m *FV1D.Mesh1D, lim limiters.Limiter,
	it FV1D.InitType, ParallelDegree int, logger zerolog.Logger) (c *Advection, err error) {
	if !m.Periodic {
		return nil, fmt.Errorf("advection needs a periodic mesh")
	}
	if a == 0 || CFL <= 0 || FinalTime <= 0 {
		return nil, fmt.Errorf("invalid advection parameters a = %8.5f, CFL = %8.5f, FinalTime = %8.5f",
			a, CFL, FinalTime)
	}
	c = &Advection{
		a:            a,
		CFL:          CFL,
		FinalTime:    FinalTime,
		Mesh:         m,
		Init:         it,
		Log:          logger,
		LogFrequency: 100,
		Scheme: interpolation.NewLimitedScheme(
			limiters.NewLimiterFunction[float64, r3.Vec](ratio.TVD{}, lim),
			interpolation.ScalarLerp, ParallelDegree),
	}
	c.flux = utils.ConstArray(len(m.Faces), a)
	return
}

func (c *Advection) Run(showGraph bool, graphDelay ...time.Duration) (U []float64, st Stats) {
	var (
		m = c.Mesh
	)
	dt := c.CFL * m.Dx / math.Abs(c.a)
	Ns := math.Ceil(c.FinalTime / dt)
	dt = c.FinalTime / Ns
	Nsteps := int(Ns)
	U = m.Initialize(c.Init)
	st.UMin, st.UMax = floats.Min(U), floats.Max(U)
	st.TV0 = TotalVariation(U)
	st.TV = st.TV0
	c.Log.Info().Str("limiter", c.Scheme.Limiter.Limiter.Name()).
		Int("K", m.K).Int("steps", Nsteps).Float64("dt", dt).
		Float64("umin", st.UMin).Float64("umax", st.UMax).Msg("starting advection")

	var (
		U1 = make([]float64, m.K)
		U2 = make([]float64, m.K)
	)
	for tstep := 0; tstep < Nsteps; tstep++ {
		if c.LogFrequency > 0 && tstep%c.LogFrequency == 0 {
			c.Plot(showGraph, graphDelay, U)
		}
		// u1 = u + dt L(u)
		R := c.RHS(U)
		for k := range U {
			U1[k] = U[k] + dt*R[k]
		}
		// u2 = 3/4 u + 1/4 (u1 + dt L(u1))
		R = c.RHS(U1)
		for k := range U {
			U2[k] = 0.75*U[k] + 0.25*(U1[k]+dt*R[k])
		}
		// u = 1/3 u + 2/3 (u2 + dt L(u2))
		R = c.RHS(U2)
		for k := range U {
			U[k] = U[k]/3. + 2.*(U2[k]+dt*R[k])/3.
		}
		st.Steps++
		st.Time += dt
		tv := TotalVariation(U)
		if tv > st.TV+tvdTol {
			st.TVIncreases++
		}
		st.TV = tv
		umin, umax := floats.Min(U), floats.Max(U)
		if umin < st.UMin-tvdTol || umax > st.UMax+tvdTol {
			st.NewExtrema = true
		}
		if c.LogFrequency > 0 && tstep%c.LogFrequency == 0 {
			c.Log.Info().Float64("time", st.Time).Int("step", tstep).
				Float64("umin", umin).Float64("umax", umax).Float64("tv", tv).Msg("advance")
		}
	}
	c.Log.Info().Float64("time", st.Time).Int("steps", st.Steps).Float64("tv0", st.TV0).
		Float64("tv", st.TV).Int("tvIncreases", st.TVIncreases).Bool("newExtrema", st.NewExtrema).
		Msg("finished advection")
	return
}

// RHS returns -(1/dx) times the net limited flux out of each cell.
func (c *Advection) RHS(U []float64) (RHSU []float64) {
	var (
		m     = c.Mesh
		oodx  = 1. / m.Dx
		grad  = m.Gradient(U)
		faceU = c.Scheme.Interpolate(m.Faces, c.flux, U, grad)
	)
	RHSU = make([]float64, m.K)
	for f, face := range m.Faces {
		F := c.flux[f] * faceU[f] * oodx
		RHSU[face.Owner] -= F
		RHSU[face.Neighbour] += F
	}
	return
}

// TotalVariation of a periodic field.
func TotalVariation(U []float64) (tv float64) {
	N := len(U)
	for k := 0; k < N; k++ {
		tv += math.Abs(U[(k+1)%N] - U[k])
	}
	return
}

func (c *Advection) Plot(showGraph bool, graphDelay []time.Duration, U []float64) {
	var (
		m          = c.Mesh
		pMin, pMax = float32(-0.25), float32(1.25)
	)
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		c.chart = chart2d.NewChart2D(float32(m.XMin), float32(m.XMax), pMin, pMax,
			1024, 1024, utils2.WHITE, utils2.BLACK)
	})
	c.chart.AddLine(utils.LineSegments(m.X, U), utils2.RED)
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
