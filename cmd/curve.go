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
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/spf13/cobra"

	"github.com/notargets/fvlimit/limiters"
	"github.com/notargets/fvlimit/utils"
)

// CurveCmd tabulates a limiter curve psi(r)
var CurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Tabulate or plot a limiter curve psi(r)",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			lim limiters.Limiter
		)
		scheme, _ := cmd.Flags().GetString("scheme")
		rMin, _ := cmd.Flags().GetFloat64("rMin")
		rMax, _ := cmd.Flags().GetFloat64("rMax")
		n, _ := cmd.Flags().GetInt("n")
		graph, _ := cmd.Flags().GetBool("graph")
		hold, _ := cmd.Flags().GetInt("hold")
		if lim, err = limiters.New(scheme, nil); err != nil {
			log.Fatal().Err(err).Msg("selecting limiter")
		}
		R, Psi, err := curveTable(lim, rMin, rMax, n)
		if err != nil {
			log.Fatal().Err(err).Msg("tabulating limiter")
		}
		if graph {
			plotCurve(R, Psi, time.Duration(hold)*time.Second)
			return
		}
		printCurve(cmd.OutOrStdout(), lim.Name(), R, Psi)
	},
}

func init() {
	rootCmd.AddCommand(CurveCmd)
	CurveCmd.Flags().StringP("scheme", "s", "VONOS", "limiter scheme")
	CurveCmd.Flags().Float64("rMin", -1, "smallest r")
	CurveCmd.Flags().Float64("rMax", 4, "largest r")
	CurveCmd.Flags().IntP("n", "n", 51, "number of samples")
	CurveCmd.Flags().BoolP("graph", "g", false, "plot the curve instead of printing it")
	CurveCmd.Flags().Int("hold", 30, "seconds to keep the plot open")
}

func curveTable(lim limiters.Limiter, rMin, rMax float64, n int) (R, Psi []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("need at least 2 samples, have %d", n)
	}
	if rMax <= rMin {
		return nil, nil, fmt.Errorf("rMax %8.5f must exceed rMin %8.5f", rMax, rMin)
	}
	R = make([]float64, n)
	Psi = make([]float64, n)
	dr := (rMax - rMin) / float64(n-1)
	for i := range R {
		R[i] = rMin + float64(i)*dr
		Psi[i] = lim.Coefficient(R[i])
	}
	return
}

func printCurve(w io.Writer, name string, R, Psi []float64) {
	fmt.Fprintf(w, "# %s\n#%11s %12s\n", name, "r", "psi")
	for i := range R {
		fmt.Fprintf(w, "%12.6f %12.6f\n", R[i], Psi[i])
	}
}

func plotCurve(R, Psi []float64, hold time.Duration) {
	ch := chart2d.NewChart2D(float32(R[0]), float32(R[len(R)-1]), -0.25, 2.25,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	// r and psi axes
	ch.AddLine([]float32{float32(R[0]), 0, float32(R[len(R)-1]), 0, 0, -0.25, 0, 2.25}, utils2.WHITE)
	ch.AddLine(utils.LineSegments(R, Psi), utils2.RED)
	time.Sleep(hold)
}
