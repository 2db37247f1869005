// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/Fola3k/ad-htc-gas-cycle/prop"
)

// domePmin is the lowest sampled dome pressure [Pa]
const domePmin = 700.0

// Dome holds the liquid/vapor coexistence boundary of water, sampled over
// pressure for plotting on the h-s plane. Units are display units:
// [kJ/kg] and [kJ/(kg·K)]
type Dome struct {
	Pres []float64 // sampled pressures [Pa]
	Hf   []float64 // saturated liquid enthalpy [kJ/kg]
	Sf   []float64 // saturated liquid entropy [kJ/(kg·K)]
	Hg   []float64 // saturated vapor enthalpy [kJ/kg]
	Sg   []float64 // saturated vapor entropy [kJ/(kg·K)]
}

// Dome samples the saturation curve with np points, logarithmically in
// pressure from domePmin up to 99.95% of the critical pressure
func (o *Cycle) Dome(bk prop.Backend, np int) (dome *Dome, err error) {
	if np < 2 {
		return nil, chk.Err("steam cycle: dome needs at least 2 sample points; np=%d", np)
	}
	pcrit, err := bk.CritP(fluid)
	if err != nil {
		return nil, err
	}
	lnp := utl.LinSpace(math.Log(domePmin), math.Log(0.9995*pcrit), np)
	dome = &Dome{
		Pres: make([]float64, np),
		Hf:   make([]float64, np),
		Sf:   make([]float64, np),
		Hg:   make([]float64, np),
		Sg:   make([]float64, np),
	}
	for i, lp := range lnp {
		p := math.Exp(lp)
		dome.Pres[i] = p
		if dome.Hf[i], err = bk.Calc(prop.H, prop.P, p, prop.Q, 0, fluid); err != nil {
			return nil, err
		}
		if dome.Sf[i], err = bk.Calc(prop.S, prop.P, p, prop.Q, 0, fluid); err != nil {
			return nil, err
		}
		if dome.Hg[i], err = bk.Calc(prop.H, prop.P, p, prop.Q, 1, fluid); err != nil {
			return nil, err
		}
		if dome.Sg[i], err = bk.Calc(prop.S, prop.P, p, prop.Q, 1, fluid); err != nil {
			return nil, err
		}
		dome.Hf[i] /= 1000.0
		dome.Sf[i] /= 1000.0
		dome.Hg[i] /= 1000.0
		dome.Sg[i] /= 1000.0
	}
	return
}
