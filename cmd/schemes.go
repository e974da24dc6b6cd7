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

	"github.com/spf13/cobra"

	"github.com/notargets/fvlimit/limiters"
)

// SchemesCmd lists the limiter schemes that can be named in an input deck
var SchemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List available limiter schemes",
	Run: func(cmd *cobra.Command, args []string) {
		if err := listSchemes(cmd.OutOrStdout()); err != nil {
			log.Fatal().Err(err).Msg("listing schemes")
		}
	},
}

func init() {
	rootCmd.AddCommand(SchemesCmd)
}

func listSchemes(w io.Writer) (err error) {
	for _, name := range limiters.Names() {
		var (
			st limiters.SchemeType
			sc limiters.Scheme
		)
		if st, err = limiters.NewSchemeType(name); err != nil {
			return
		}
		if sc, err = limiters.Lookup(st); err != nil {
			return
		}
		fmt.Fprintf(w, "%-10s params: %v\n", name, sc.Params)
	}
	return
}
