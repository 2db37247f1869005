// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/Fola3k/ad-htc-gas-cycle/prop"
)

// interpolation modes for leg tracing
type legMode int

const (
	logPres legMode = iota // pressure sweep; enthalpy blended over ln(p), temperature queried
	linTemp                // temperature sweep at constant pressure; enthalpy queried
)

// Path traces one cycle leg on the T-Ḣ plane. Hdot is the cumulative
// enthalpy rate referenced to state 1 [kW]; Temp is in [°C]. Samples follow
// the physical progression from the leg's start state to its end state.
type Path struct {
	Name string
	Hdot []float64 // [kW], relative to state 1
	Temp []float64 // [°C]
}

// Paths traces the four legs of a solved cycle:
//  1→2 compression, 2→3 heat addition, 3→4 expansion, 4→1 heat rejection.
// npp points for the pressure legs, npt for the constant-pressure legs.
// Endpoints are set from the state points themselves, so the first and last
// samples of each leg match the corresponding states exactly for any
// count ≥ 2.
func (o *Cycle) Paths(bk prop.Backend, res *Results, npp, npt int) (paths []*Path, err error) {
	if npp < 2 || npt < 2 {
		return nil, chk.Err("gas cycle: leg tracing needs at least 2 sample points; npp=%d npt=%d", npp, npt)
	}
	s1, s2, s3, s4 := res.States[0], res.States[1], res.States[2], res.States[3]
	legs := []struct {
		name string
		mode legMode
		a, b prop.State
		np   int
	}{
		{"1-2 compression", logPres, s1, s2, npp},
		{"2-3 heat addition", linTemp, s2, s3, npt},
		{"3-4 expansion", logPres, s3, s4, npp},
		{"4-1 heat rejection", linTemp, s4, s1, npp},
	}
	paths = make([]*Path, len(legs))
	for i, leg := range legs {
		paths[i], err = o.trace(bk, leg.name, leg.mode, leg.a, leg.b, leg.np, s1.H)
		if err != nil {
			return nil, err
		}
	}
	return
}

// trace samples one leg from state a to state b with np points. href is the
// state-1 enthalpy used as the Ḣ axis origin.
func (o *Cycle) trace(bk prop.Backend, name string, mode legMode, a, b prop.State, np int, href float64) (path *Path, err error) {

	path = &Path{
		Name: name,
		Hdot: make([]float64, np),
		Temp: make([]float64, np),
	}
	set := func(i int, h, t float64) {
		path.Hdot[i] = (h - href) * o.Mdot / 1000.0
		path.Temp[i] = t - 273.15
	}

	// endpoints come straight from the resolved states
	set(0, a.H, a.T)
	set(np-1, b.H, b.T)

	switch mode {

	// pressure sweep: blend enthalpy linearly over the logarithmic pressure
	// position (the actual irreversible path), query temperature at (p,h)
	case logPres:
		pp := utl.LinSpace(a.P, b.P, np)
		den := math.Log(b.P) - math.Log(a.P)
		for i := 1; i < np-1; i++ {
			frac := (math.Log(pp[i]) - math.Log(a.P)) / den
			h := a.H + frac*(b.H-a.H)
			t, e := bk.Calc(prop.T, prop.P, pp[i], prop.H, h, fluid)
			if e != nil {
				return nil, e
			}
			set(i, h, t)
		}

	// temperature sweep at the leg's constant pressure, query enthalpy
	case linTemp:
		tt := utl.LinSpace(a.T, b.T, np)
		for i := 1; i < np-1; i++ {
			h, e := bk.Calc(prop.H, prop.P, a.P, prop.T, tt[i], fluid)
			if e != nil {
				return nil, e
			}
			set(i, h, tt[i])
		}
	}
	return
}
