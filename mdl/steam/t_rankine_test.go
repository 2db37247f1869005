// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/Fola3k/ad-htc-gas-cycle/prop"
)

// countingBackend records how many property queries were issued
type countingBackend struct {
	calls int
}

func (o *countingBackend) Calc(target, a prop.Kind, av float64, b prop.Kind, bv float64, fluid string) (float64, error) {
	o.calls++
	return 0, nil
}

func (o *countingBackend) CritP(fluid string) (float64, error) {
	o.calls++
	return 22.064e6, nil
}

// refCycle returns the reference plant steam cycle
func refCycle() *Cycle {
	return &Cycle{
		Pcond:   10e3,
		Pboil:   2000e3,
		Tboil:   350.0 + 273.15,
		EtaPump: 0.85,
		EtaTurb: 0.85,
	}
}

func Test_rankine01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rankine01. reference superheated cycle")

	var bk prop.Model
	res, err := refCycle().Solve(&bk)
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}

	st := res.States
	io.Pforan("T1 = %.2f °C\n", st[0].T-273.15)
	io.Pforan("net work = %.3f kJ/kg\n", res.NetWork)
	io.Pforan("efficiency = %.2f %%\n", res.Eta)

	// state 1 sits on the saturation line at condenser pressure
	chk.Float64(tst, "T1 [°C]", 0.1, st[0].T-273.15, 45.8)

	// enthalpy ordering of a working cycle
	if !(st[0].H < st[1].H && st[1].H < st[2].H) {
		tst.Errorf("enthalpy must increase along 1-2-3: h=%v\n", []float64{st[0].H, st[1].H, st[2].H})
		return
	}
	if st[3].H >= st[2].H {
		tst.Errorf("turbine must reduce enthalpy: h4=%g >= h3=%g\n", st[3].H, st[2].H)
		return
	}

	// energy bookkeeping
	chk.Float64(tst, "net = turb - pump", 1e-12, res.NetWork, res.TurbWork-res.PumpWork)
	chk.Float64(tst, "net from enthalpies", 1e-9, res.NetWork,
		((st[2].H-st[3].H)-(st[1].H-st[0].H))/1000.0)
	chk.Float64(tst, "boiler heat", 1e-9, res.BoilerHeat, (st[2].H-st[1].H)/1000.0)
	chk.Float64(tst, "condenser heat", 1e-9, res.CondHeat, (st[3].H-st[0].H)/1000.0)

	// a superheated Rankine cycle lands in a broad efficiency band
	if res.NetWork <= 0 {
		tst.Errorf("net work must be positive; got %g kJ/kg\n", res.NetWork)
		return
	}
	if res.Eta <= 0 || res.Eta >= 45 {
		tst.Errorf("efficiency %g %% outside (0,45)\n", res.Eta)
		return
	}
}

func Test_rankine02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rankine02. ideal cycle cross-check")

	var bk prop.Model
	cyc := refCycle()
	cyc.EtaPump = 1.0
	cyc.EtaTurb = 1.0
	res, err := cyc.Solve(&bk)
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}

	// recompute the ideal efficiency independently from property queries
	h1, _ := bk.Calc(prop.H, prop.P, cyc.Pcond, prop.Q, 0, "water")
	d1, _ := bk.Calc(prop.D, prop.P, cyc.Pcond, prop.Q, 0, "water")
	h2s := h1 + (cyc.Pboil-cyc.Pcond)/d1
	h3, _ := bk.Calc(prop.H, prop.P, cyc.Pboil, prop.T, cyc.Tboil, "water")
	s3, _ := bk.Calc(prop.S, prop.P, cyc.Pboil, prop.T, cyc.Tboil, "water")
	h4s, _ := bk.Calc(prop.H, prop.P, cyc.Pcond, prop.S, s3, "water")
	etaIdeal := ((h3 - h4s) - (h2s - h1)) / (h3 - h2s) * 100.0

	io.Pforan("ideal efficiency = %.4f %%\n", etaIdeal)
	chk.Float64(tst, "eta ideal", 1e-10, res.Eta, etaIdeal)
}

func Test_rankine03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rankine03. input constraints fail before any query")

	// inverted pressures
	bk := new(countingBackend)
	cyc := refCycle()
	cyc.Pcond = 2000e3
	cyc.Pboil = 10e3
	if _, err := cyc.Solve(bk); err == nil {
		tst.Errorf("inverted pressures must fail\n")
		return
	}
	chk.IntAssert(bk.calls, 0)

	// efficiency out of range
	cyc = refCycle()
	cyc.EtaTurb = 1.2
	if _, err := cyc.Solve(bk); err == nil {
		tst.Errorf("turbine efficiency above 1 must fail\n")
		return
	}
	chk.IntAssert(bk.calls, 0)

	// boiler temperature below saturation: a property-domain failure
	var mdl prop.Model
	cyc = refCycle()
	cyc.Tboil = 150.0 + 273.15 // saturation at 2 MPa is 212.4 °C
	if _, err := cyc.Solve(&mdl); err == nil {
		tst.Errorf("boiler temperature below saturation must fail\n")
		return
	}

	// parameter set with an unknown name
	var c2 Cycle
	err := c2.Init(dbf.Params{&dbf.P{N: "Pwrong", V: 1}})
	if err == nil {
		tst.Errorf("unknown parameter must fail\n")
		return
	}
}

func Test_dome01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dome01. saturation curve sampling")

	var bk prop.Model
	np := 50
	dome, err := refCycle().Dome(&bk, np)
	if err != nil {
		tst.Errorf("dome failed: %v\n", err)
		return
	}

	chk.IntAssert(len(dome.Pres), np)
	chk.IntAssert(len(dome.Hf), np)
	chk.IntAssert(len(dome.Sg), np)

	// sweep runs from the low floor up to just below the critical point
	chk.Float64(tst, "P first", 1e-9, dome.Pres[0], 700.0)
	chk.Float64(tst, "P last", 1e-4, dome.Pres[np-1], 0.9995*22.064e6)

	// monotone pressure and liquid enthalpy; dome closes near the critical point
	for i := 1; i < np; i++ {
		if dome.Pres[i] <= dome.Pres[i-1] {
			tst.Errorf("pressure samples must increase\n")
			return
		}
		if dome.Hf[i] <= dome.Hf[i-1] {
			tst.Errorf("liquid enthalpy must increase with pressure\n")
			return
		}
	}
	gap := dome.Hg[np-1] - dome.Hf[np-1]
	io.Pforan("dome gap at top = %.1f kJ/kg\n", gap)
	if gap < 0 || gap > 60 {
		tst.Errorf("dome must nearly close at the critical point; gap=%g kJ/kg\n", gap)
		return
	}

	// too few points
	if _, err := refCycle().Dome(&bk, 1); err == nil {
		tst.Errorf("dome with one point must fail\n")
		return
	}
}
