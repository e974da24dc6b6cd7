//go:build linux

package cmd

import (
	perf "github.com/hodgesds/perf-utils"
)

func countInstructions(fn func() error) (instructions uint64, err error) {
	var pv *perf.ProfileValue
	if pv, err = perf.CPUInstructions(fn); err != nil {
		return
	}
	instructions = pv.Value
	return
}
