// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package steam implements the HTC Rankine (steam) cycle solver
package steam

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/Fola3k/ad-htc-gas-cycle/prop"
)

// fluid is the working fluid of this cycle
const fluid = "water"

// Cycle holds the design parameters of the steam cycle
type Cycle struct {
	Pcond   float64 // condenser pressure [Pa]
	Pboil   float64 // boiler pressure [Pa]
	Tboil   float64 // boiler outlet (turbine inlet) temperature [K]
	EtaPump float64 // pump isentropic efficiency (0,1]
	EtaTurb float64 // turbine isentropic efficiency (0,1]
}

// Results holds the solved cycle: the four state points and the derived
// specific energy terms. States:
//  1 -- condenser outlet (saturated liquid)
//  2 -- pump outlet
//  3 -- boiler outlet (superheated steam, turbine inlet)
//  4 -- turbine outlet
type Results struct {
	States     [4]prop.State
	PumpWork   float64 // [kJ/kg]
	BoilerHeat float64 // [kJ/kg]
	TurbWork   float64 // [kJ/kg]
	CondHeat   float64 // [kJ/kg]
	NetWork    float64 // [kJ/kg]
	Eta        float64 // thermal efficiency [%]; raw, may be negative
}

// Init initialises the cycle from a parameter set
func (o *Cycle) Init(prms dbf.Params) error {
	for _, p := range prms {
		switch p.N {
		case "Pcond":
			o.Pcond = p.V
		case "Pboil":
			o.Pboil = p.V
		case "Tboil":
			o.Tboil = p.V
		case "etap":
			o.EtaPump = p.V
		case "etat":
			o.EtaTurb = p.V
		default:
			return chk.Err("steam cycle: parameter named %q is unknown", p.N)
		}
	}
	return o.Validate()
}

// Validate checks the input constraints. It runs before any property query;
// a violation produces no partial results.
func (o *Cycle) Validate() error {
	if o.Pcond <= 0 {
		return chk.Err("steam cycle: condenser pressure must be positive; Pcond=%g Pa", o.Pcond)
	}
	if o.Pboil <= o.Pcond {
		return chk.Err("steam cycle: boiler pressure must exceed condenser pressure; Pboil=%g Pa <= Pcond=%g Pa", o.Pboil, o.Pcond)
	}
	if o.Tboil <= 0 {
		return chk.Err("steam cycle: boiler outlet temperature must be positive; Tboil=%g K", o.Tboil)
	}
	if o.EtaPump <= 0 || o.EtaPump > 1 {
		return chk.Err("steam cycle: pump efficiency must be within (0,1]; etap=%g", o.EtaPump)
	}
	if o.EtaTurb <= 0 || o.EtaTurb > 1 {
		return chk.Err("steam cycle: turbine efficiency must be within (0,1]; etat=%g", o.EtaTurb)
	}
	return nil
}

// Solve computes the four state points and the derived energy terms. The
// first failed property query aborts the solve.
func (o *Cycle) Solve(bk prop.Backend) (res *Results, err error) {

	if err = o.Validate(); err != nil {
		return
	}

	// state 1: saturated liquid at condenser pressure
	h1, err := bk.Calc(prop.H, prop.P, o.Pcond, prop.Q, 0, fluid)
	if err != nil {
		return nil, err
	}
	s1, err := bk.Calc(prop.S, prop.P, o.Pcond, prop.Q, 0, fluid)
	if err != nil {
		return nil, err
	}
	t1, err := bk.Calc(prop.T, prop.P, o.Pcond, prop.Q, 0, fluid)
	if err != nil {
		return nil, err
	}
	rho1, err := bk.Calc(prop.D, prop.P, o.Pcond, prop.Q, 0, fluid)
	if err != nil {
		return nil, err
	}
	v1 := 1.0 / rho1

	// state 2: pump outlet. Ideal work from the incompressible approximation
	// h2s = h1 + v1·Δp, then the efficiency correction on the enthalpy rise
	h2s := h1 + v1*(o.Pboil-o.Pcond)
	h2 := h1 + (h2s-h1)/o.EtaPump
	s2, err := bk.Calc(prop.S, prop.P, o.Pboil, prop.H, h2, fluid)
	if err != nil {
		return nil, err
	}
	t2, err := bk.Calc(prop.T, prop.P, o.Pboil, prop.H, h2, fluid)
	if err != nil {
		return nil, err
	}

	// state 3: superheated steam at boiler outlet. The boiler temperature
	// must lie above the saturation temperature at boiler pressure
	tsat, err := bk.Calc(prop.T, prop.P, o.Pboil, prop.Q, 1, fluid)
	if err != nil {
		return nil, err
	}
	if o.Tboil <= tsat {
		return nil, chk.Err("water state (P=%g, T=%g) is not superheated: saturation temperature at boiler pressure is %g K", o.Pboil, o.Tboil, tsat)
	}
	h3, err := bk.Calc(prop.H, prop.P, o.Pboil, prop.T, o.Tboil, fluid)
	if err != nil {
		return nil, err
	}
	s3, err := bk.Calc(prop.S, prop.P, o.Pboil, prop.T, o.Tboil, fluid)
	if err != nil {
		return nil, err
	}

	// state 4: turbine outlet. Isentropic expansion to condenser pressure,
	// then the efficiency correction on the enthalpy drop
	h4s, err := bk.Calc(prop.H, prop.P, o.Pcond, prop.S, s3, fluid)
	if err != nil {
		return nil, err
	}
	h4 := h3 - (h3-h4s)*o.EtaTurb
	s4, err := bk.Calc(prop.S, prop.P, o.Pcond, prop.H, h4, fluid)
	if err != nil {
		return nil, err
	}
	t4, err := bk.Calc(prop.T, prop.P, o.Pcond, prop.H, h4, fluid)
	if err != nil {
		return nil, err
	}

	// derived quantities [kJ/kg]; efficiency is reported raw
	res = &Results{
		States: [4]prop.State{
			{P: o.Pcond, T: t1, H: h1, S: s1},
			{P: o.Pboil, T: t2, H: h2, S: s2},
			{P: o.Pboil, T: o.Tboil, H: h3, S: s3},
			{P: o.Pcond, T: t4, H: h4, S: s4},
		},
		PumpWork:   (h2 - h1) / 1000.0,
		BoilerHeat: (h3 - h2) / 1000.0,
		TurbWork:   (h3 - h4) / 1000.0,
		CondHeat:   (h4 - h1) / 1000.0,
	}
	res.NetWork = res.TurbWork - res.PumpWork
	res.Eta = res.NetWork / res.BoilerHeat * 100.0
	return
}
