// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements the biogas-fired Brayton (gas) cycle solver. The
// working fluid is air throughout; combustion is modeled as constant
// pressure heat addition without composition change.
package gas

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/Fola3k/ad-htc-gas-cycle/prop"
)

// fluid is the working fluid of this cycle
const fluid = "air"

// Patm is the fixed compressor inlet pressure [Pa]
const Patm = 101325.0

// Cycle holds the design parameters of the gas cycle
type Cycle struct {
	Ratio   float64 // compressor pressure ratio, > 1
	Tin     float64 // compressor inlet temperature [K]
	Tturb   float64 // turbine inlet temperature [K]
	EtaComp float64 // compressor isentropic efficiency (0,1]
	EtaTurb float64 // turbine isentropic efficiency (0,1]
	Mdot    float64 // working mass flow [kg/s]
}

// Results holds the solved cycle. States:
//  1 -- compressor inlet (ambient air)
//  2 -- compressor outlet
//  3 -- combustor outlet (turbine inlet)
//  4 -- turbine outlet
// Energy terms are rates, scaled by the mass flow.
type Results struct {
	States   [4]prop.State
	CompWork float64 // [kW]
	HeatIn   float64 // [kW]
	TurbWork float64 // [kW]
	NetWork  float64 // [kW]
	Bwr      float64 // back-work ratio [%]
	Eta      float64 // thermal efficiency [%]; raw, may be negative
}

// Init initialises the cycle from a parameter set
func (o *Cycle) Init(prms dbf.Params) error {
	for _, p := range prms {
		switch p.N {
		case "rp":
			o.Ratio = p.V
		case "Tin":
			o.Tin = p.V
		case "Tturb":
			o.Tturb = p.V
		case "etac":
			o.EtaComp = p.V
		case "etat":
			o.EtaTurb = p.V
		case "mdot":
			o.Mdot = p.V
		default:
			return chk.Err("gas cycle: parameter named %q is unknown", p.N)
		}
	}
	return o.Validate()
}

// Validate checks the input constraints before any property query
func (o *Cycle) Validate() error {
	if o.Ratio <= 1 {
		return chk.Err("gas cycle: pressure ratio must exceed 1; rp=%g", o.Ratio)
	}
	if o.Tin <= 0 {
		return chk.Err("gas cycle: inlet temperature must be positive; Tin=%g K", o.Tin)
	}
	if o.Tturb <= o.Tin {
		return chk.Err("gas cycle: turbine inlet temperature must exceed compressor inlet temperature; Tturb=%g K <= Tin=%g K", o.Tturb, o.Tin)
	}
	if o.EtaComp <= 0 || o.EtaComp > 1 {
		return chk.Err("gas cycle: compressor efficiency must be within (0,1]; etac=%g", o.EtaComp)
	}
	if o.EtaTurb <= 0 || o.EtaTurb > 1 {
		return chk.Err("gas cycle: turbine efficiency must be within (0,1]; etat=%g", o.EtaTurb)
	}
	if o.Mdot <= 0 {
		return chk.Err("gas cycle: mass flow must be positive; mdot=%g kg/s", o.Mdot)
	}
	return nil
}

// Solve computes the four state points and the derived energy rates
func (o *Cycle) Solve(bk prop.Backend) (res *Results, err error) {

	if err = o.Validate(); err != nil {
		return
	}
	p1 := Patm
	p2 := p1 * o.Ratio

	// state 1: ambient air at compressor inlet
	h1, err := bk.Calc(prop.H, prop.P, p1, prop.T, o.Tin, fluid)
	if err != nil {
		return nil, err
	}
	s1, err := bk.Calc(prop.S, prop.P, p1, prop.T, o.Tin, fluid)
	if err != nil {
		return nil, err
	}

	// state 2: compressor outlet. Isentropic compression to p2, then the
	// efficiency correction on the enthalpy rise
	h2s, err := bk.Calc(prop.H, prop.P, p2, prop.S, s1, fluid)
	if err != nil {
		return nil, err
	}
	h2 := h1 + (h2s-h1)/o.EtaComp
	t2, err := bk.Calc(prop.T, prop.P, p2, prop.H, h2, fluid)
	if err != nil {
		return nil, err
	}
	s2, err := bk.Calc(prop.S, prop.P, p2, prop.H, h2, fluid)
	if err != nil {
		return nil, err
	}

	// state 3: turbine inlet at constant combustor pressure
	h3, err := bk.Calc(prop.H, prop.P, p2, prop.T, o.Tturb, fluid)
	if err != nil {
		return nil, err
	}
	s3, err := bk.Calc(prop.S, prop.P, p2, prop.T, o.Tturb, fluid)
	if err != nil {
		return nil, err
	}

	// state 4: turbine outlet. Isentropic expansion back to p1, then the
	// efficiency correction on the enthalpy drop
	h4s, err := bk.Calc(prop.H, prop.P, p1, prop.S, s3, fluid)
	if err != nil {
		return nil, err
	}
	h4 := h3 - (h3-h4s)*o.EtaTurb
	t4, err := bk.Calc(prop.T, prop.P, p1, prop.H, h4, fluid)
	if err != nil {
		return nil, err
	}
	s4, err := bk.Calc(prop.S, prop.P, p1, prop.H, h4, fluid)
	if err != nil {
		return nil, err
	}

	// derived rates [kW]; efficiency is reported raw
	res = &Results{
		States: [4]prop.State{
			{P: p1, T: o.Tin, H: h1, S: s1},
			{P: p2, T: t2, H: h2, S: s2},
			{P: p2, T: o.Tturb, H: h3, S: s3},
			{P: p1, T: t4, H: h4, S: s4},
		},
		CompWork: (h2 - h1) * o.Mdot / 1000.0,
		HeatIn:   (h3 - h2) * o.Mdot / 1000.0,
		TurbWork: (h3 - h4) * o.Mdot / 1000.0,
	}
	res.NetWork = res.TurbWork - res.CompWork
	res.Bwr = res.CompWork / res.TurbWork * 100.0
	res.Eta = res.NetWork / res.HeatIn * 100.0
	return
}
