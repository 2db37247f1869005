// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/Fola3k/ad-htc-gas-cycle/inp"
	"github.com/Fola3k/ad-htc-gas-cycle/out"
	"github.com/Fola3k/ad-htc-gas-cycle/prop"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			if chk.Verbose {
				chk.CallerInfo(3)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "examples/adhtc", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nAD-HTC Fuel-Enhanced Power Gas Cycle\n")
		io.Pf("steady-state analysis of the coupled Rankine (HTC steam) and\n")
		io.Pf("Brayton (biogas-fired gas) cycles with biomass routing\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save diagrams", "doplot", doplot,
		))
	}

	// analysis data
	dat := inp.ReadSim(fnamepath)

	// property backend with memoization
	bk := prop.NewCache(prop.Model{})

	// run analysis
	rep, err := out.Analyse(dat, bk)
	if err != nil {
		chk.Panic("analysis failed:\n%v", err)
	}
	if verbose {
		rep.Print()
	}

	// diagrams; plt panics on failure, caught by the recover wrapper
	if doplot {
		out.PlotSteam(rep, dat.DirOut, dat.Key)
		out.PlotGas(rep, dat.DirOut, dat.Key)
		if verbose {
			io.Pf("\ndiagrams saved to %s\n", dat.DirOut)
		}
	}
}
