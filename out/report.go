// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out assembles the analysis results of the AD-HTC plant: biomass
// routing, steam and gas cycle state points, KPIs, console tables and
// diagrams
package out

import (
	"github.com/cpmech/gosl/io"

	"github.com/Fola3k/ad-htc-gas-cycle/inp"
	"github.com/Fola3k/ad-htc-gas-cycle/mdl/feed"
	"github.com/Fola3k/ad-htc-gas-cycle/mdl/gas"
	"github.com/Fola3k/ad-htc-gas-cycle/mdl/steam"
	"github.com/Fola3k/ad-htc-gas-cycle/prop"
)

// state point labels
var (
	steamLabels = []string{"1 (Cond Out)", "2 (Pump Out)", "3 (Turb In)", "4 (Turb Out)"}
	gasLabels   = []string{"1 (Comp In)", "2 (Comp Out)", "3 (Turb In)", "4 (Turb Out)"}
)

// Report holds one steady-state operating point of the whole plant
type Report struct {
	Dat         *inp.Data      // input
	Streams     *feed.Streams  // routed biomass flows
	BiogasPower float64        // biogas chemical power potential [W]
	Steam       *steam.Results // steam cycle solution
	Dome        *steam.Dome    // saturation curve for the h-s diagram
	Gas         *gas.Results   // gas cycle solution
	Paths       []*gas.Path    // per-leg traces for the T-Ḣ diagram
}

// Analyse computes one operating point: routes the biomass, then solves both
// cycles. The cycles are independent of each other; the biogas energy feeds
// the power KPI only, not the gas cycle thermodynamics.
func Analyse(dat *inp.Data, bk prop.Backend) (rep *Report, err error) {

	// input checks before anything else
	if err = dat.Validate(); err != nil {
		return
	}

	// biomass router
	var plant feed.Plant
	if err = plant.Init(dat.FeedParams()); err != nil {
		return
	}

	// cycle models
	var scyc steam.Cycle
	if err = scyc.Init(dat.SteamParams()); err != nil {
		return
	}
	var gcyc gas.Cycle
	if err = gcyc.Init(dat.GasParams()); err != nil {
		return
	}

	// route biomass
	rep = &Report{Dat: dat}
	rep.Streams = plant.Split()
	rep.BiogasPower = plant.BiogasPower(rep.Streams)

	// solve steam cycle
	if rep.Steam, err = scyc.Solve(bk); err != nil {
		return nil, err
	}
	if rep.Dome, err = scyc.Dome(bk, dat.NpDome); err != nil {
		return nil, err
	}

	// solve gas cycle
	if rep.Gas, err = gcyc.Solve(bk); err != nil {
		return nil, err
	}
	if rep.Paths, err = gcyc.Paths(bk, rep.Gas, dat.NpPres, dat.NpTemp); err != nil {
		return nil, err
	}
	return
}

// EtaSteamDisp returns the steam cycle efficiency clamped for display [%].
// The solver value stays raw; clamping is a presentation concern only.
func (o *Report) EtaSteamDisp() float64 { return clampPct(o.Steam.Eta) }

// EtaGasDisp returns the gas cycle efficiency clamped for display [%]
func (o *Report) EtaGasDisp() float64 { return clampPct(o.Gas.Eta) }

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Print writes the state property tables, mass flow summary and performance
// summary to the console
func (o *Report) Print() {

	// steam cycle states
	io.Pf("\nHTC steam cycle -- state points\n")
	io.Pf("%-14s%10s%12s%12s%14s\n", "state", "T [°C]", "P [kPa]", "h [kJ/kg]", "s [kJ/kg·K]")
	for i, st := range o.Steam.States {
		io.Pf("%-14s%10.2f%12.1f%12.2f%14.4f\n", steamLabels[i],
			st.T-273.15, st.P/1e3, st.H/1e3, st.S/1e3)
	}

	// gas cycle states
	io.Pf("\ngas power cycle -- state points\n")
	io.Pf("%-14s%10s%12s%12s%14s\n", "state", "T [°C]", "P [kPa]", "h [kJ/kg]", "s [kJ/kg·K]")
	for i, st := range o.Gas.States {
		io.Pf("%-14s%10.2f%12.2f%12.2f%14.4f\n", gasLabels[i],
			st.T-273.15, st.P/1e3, st.H/1e3, st.S/1e3)
	}

	// biomass flows
	s := o.Streams
	io.Pf("\nbiomass mass flow summary [kg/s]\n")
	io.Pf("%-26s%10.3f\n", "total biomass", o.Dat.Feed.Mtotal)
	io.Pf("%-26s%10.3f\n", "moisture-rich (to AD)", s.Rich)
	io.Pf("%-26s%10.3f\n", "moisture-lean (to HTC)", s.Lean)
	io.Pf("%-26s%10.3f\n", "biogas from AD", s.Biogas)
	io.Pf("%-26s%10.3f\n", "hydrochar produced", s.Char)
	io.Pf("%-26s%10.3f\n", "volatile matters", s.Volatiles)

	// performance
	io.Pf("\ncycle performance summary\n")
	io.Pf("%-42s%12.3f\n", "steam: pump work [kJ/kg]", o.Steam.PumpWork)
	io.Pf("%-42s%12.3f\n", "steam: turbine work [kJ/kg]", o.Steam.TurbWork)
	io.Pf("%-42s%12.3f\n", "steam: net work [kJ/kg]", o.Steam.NetWork)
	io.Pf("%-42s%12.3f\n", "steam: boiler heat input [kJ/kg]", o.Steam.BoilerHeat)
	io.Pf("%-42s%12.3f\n", "steam: condenser rejection [kJ/kg]", o.Steam.CondHeat)
	io.Pf("%-42s%12.2f\n", "steam: thermal efficiency [%]", o.EtaSteamDisp())
	io.Pf("%-42s%12.3f\n", "gas: compressor work [kW]", o.Gas.CompWork)
	io.Pf("%-42s%12.3f\n", "gas: turbine work [kW]", o.Gas.TurbWork)
	io.Pf("%-42s%12.3f\n", "gas: net work [kW]", o.Gas.NetWork)
	io.Pf("%-42s%12.3f\n", "gas: heat input [kW]", o.Gas.HeatIn)
	io.Pf("%-42s%12.2f\n", "gas: back-work ratio [%]", o.Gas.Bwr)
	io.Pf("%-42s%12.2f\n", "gas: thermal efficiency [%]", o.EtaGasDisp())
	io.Pf("%-42s%12.3f\n", "biogas power potential [MW]", o.BiogasPower/1e6)
}
