// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package feed implements the biomass mass-flow router: the moisture-based
// split of the feedstock between anaerobic digestion (AD) and hydrothermal
// carbonization (HTC), and the biogas energy KPI
package feed

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Plant holds the biomass routing parameters
type Plant struct {
	Mtotal    float64 // total biomass feed [kg/s]
	MoistFrac float64 // moisture fraction of feedstock [0,1]
	YieldAD   float64 // AD biogas yield fraction [0,1]
	ConvHTC   float64 // HTC hydrochar conversion fraction [0,1]
	LHV       float64 // biogas lower heating value [J/kg]
}

// Streams holds the routed mass flows [kg/s]
type Streams struct {
	Rich      float64 // moisture-rich flow, to AD
	Lean      float64 // moisture-lean flow, to HTC
	Biogas    float64 // AD product
	Char      float64 // HTC solid product (hydrochar)
	Volatiles float64 // HTC residual (volatile matters / waste)
}

// Init initialises the plant from a parameter set
func (o *Plant) Init(prms dbf.Params) error {
	for _, p := range prms {
		switch p.N {
		case "mtotal":
			o.Mtotal = p.V
		case "moist":
			o.MoistFrac = p.V
		case "yieldad":
			o.YieldAD = p.V
		case "convhtc":
			o.ConvHTC = p.V
		case "lhv":
			o.LHV = p.V
		default:
			return chk.Err("biomass router: parameter named %q is unknown", p.N)
		}
	}
	return o.Validate()
}

// Validate checks the input ranges
func (o *Plant) Validate() error {
	if o.Mtotal < 0 {
		return chk.Err("biomass router: total flow must be non-negative; mtotal=%g kg/s", o.Mtotal)
	}
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"moisture fraction", o.MoistFrac},
		{"AD yield fraction", o.YieldAD},
		{"HTC conversion fraction", o.ConvHTC},
	} {
		if f.val < 0 || f.val > 1 {
			return chk.Err("biomass router: %s must be within [0,1]; value=%g", f.name, f.val)
		}
	}
	if o.LHV < 0 {
		return chk.Err("biomass router: biogas LHV must be non-negative; lhv=%g J/kg", o.LHV)
	}
	return nil
}

// Split routes the feedstock. Stateless; recomputed fully on every call.
// Conservation: Rich+Lean == Mtotal and Char+Volatiles == Lean.
func (o *Plant) Split() *Streams {
	lean := o.Mtotal * (1.0 - o.MoistFrac)
	return &Streams{
		Rich:      o.Mtotal * o.MoistFrac,
		Lean:      lean,
		Biogas:    o.Mtotal * o.YieldAD,
		Char:      lean * o.ConvHTC,
		Volatiles: lean * (1.0 - o.ConvHTC),
	}
}

// BiogasPower returns the biogas chemical power potential [W]
func (o *Plant) BiogasPower(s *Streams) float64 {
	return s.Biogas * o.LHV
}
