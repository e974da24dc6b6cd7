/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/notargets/fvlimit/FV1D"
	"github.com/notargets/fvlimit/InputParameters"
	"github.com/notargets/fvlimit/limiters"
	"github.com/notargets/fvlimit/model_problems/Advection1D"
)

type ModelAdvect struct {
	ICFile  string
	Graph   bool
	Delay   time.Duration
	Profile bool
	Perf    bool
}

// AdvectCmd runs limited linear advection of a discontinuous profile
var AdvectCmd = &cobra.Command{
	Use:   "advect",
	Short: "One dimensional limited advection of a step or square wave",
	Long: `
Advects a discontinuous profile on a periodic finite volume mesh, using the
selected limiter to build face values, and reports whether the run stayed
total variation diminishing.

fvlimit advect -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ip  *InputParameters.InputParameters1D
		)
		ma := &ModelAdvect{}
		ma.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		ma.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		ma.Delay = time.Duration(dr) * time.Millisecond
		ma.Profile, _ = cmd.Flags().GetBool("profile")
		ma.Perf, _ = cmd.Flags().GetBool("perf")
		if ip, err = processInput(ma.ICFile); err != nil {
			log.Fatal().Err(err).Msg("reading input")
		}
		ip.Print()
		if ma.Profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		if _, err = RunAdvect(ma, ip, cmd.OutOrStdout(), log); err != nil {
			log.Fatal().Err(err).Msg("advection failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(AdvectCmd)
	AdvectCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Scheme\n\t- CFL\n\t- K")
	AdvectCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	AdvectCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	AdvectCmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
	AdvectCmd.Flags().Bool("perf", false, "count CPU instructions of the run (linux)")
}

// processInput overlays the deck on the defaults and validates it. An empty
// file name runs the defaults.
func processInput(ICFile string) (ip *InputParameters.InputParameters1D, err error) {
	var data []byte
	ip = InputParameters.NewInputParameters1D()
	if len(ICFile) != 0 {
		if data, err = os.ReadFile(ICFile); err != nil {
			return nil, err
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", ICFile, err)
		}
	}
	if err = ip.Validate(); err != nil {
		return nil, err
	}
	return
}

func RunAdvect(ma *ModelAdvect, ip *InputParameters.InputParameters1D,
	w io.Writer, logger zerolog.Logger) (st Advection1D.Stats, err error) {
	var (
		m   *FV1D.Mesh1D
		lim limiters.Limiter
		it  FV1D.InitType
		c   *Advection1D.Advection
	)
	if m, err = FV1D.NewMesh1D(ip.XMin, ip.XMax, ip.K, true); err != nil {
		return
	}
	if lim, err = limiters.New(ip.Scheme, ip.SchemeCoeffs); err != nil {
		return
	}
	if it, err = FV1D.NewInitType(ip.InitType); err != nil {
		return
	}
	if c, err = Advection1D.NewAdvection(ip.Velocity, ip.CFL, ip.FinalTime, m, lim, it,
		ip.ParallelDegree, logger); err != nil {
		return
	}
	run := func() error {
		_, st = c.Run(ma.Graph, ma.Delay)
		return nil
	}
	if ma.Perf {
		var instructions uint64
		if instructions, err = countInstructions(run); err != nil {
			logger.Warn().Err(err).Msg("instruction counting unavailable, running without it")
			err = run()
		} else {
			fmt.Fprintf(w, "%d\t\t= CPU instructions\n", instructions)
		}
	} else {
		err = run()
	}
	if err != nil {
		return
	}
	fmt.Fprintf(w, "%d\t\t= Steps\n", st.Steps)
	fmt.Fprintf(w, "%8.5f\t= Total variation, initial\n", st.TV0)
	fmt.Fprintf(w, "%8.5f\t= Total variation, final\n", st.TV)
	fmt.Fprintf(w, "%d\t\t= Steps with increased variation\n", st.TVIncreases)
	fmt.Fprintf(w, "%v\t\t= New extrema\n", st.NewExtrema)
	return
}
