// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_water01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("water01. saturation line lookups")

	var bk Model

	// saturated liquid at 10 kPa (condenser conditions)
	h, err := bk.Calc(H, P, 10e3, Q, 0, "water")
	if err != nil {
		tst.Errorf("hf query failed: %v\n", err)
		return
	}
	s, err := bk.Calc(S, P, 10e3, Q, 0, "water")
	if err != nil {
		tst.Errorf("sf query failed: %v\n", err)
		return
	}
	t, err := bk.Calc(T, P, 10e3, Q, 0, "water")
	if err != nil {
		tst.Errorf("tsat query failed: %v\n", err)
		return
	}
	d, err := bk.Calc(D, P, 10e3, Q, 0, "water")
	if err != nil {
		tst.Errorf("density query failed: %v\n", err)
		return
	}
	io.Pforan("hf(10kPa) = %v J/kg\n", h)
	io.Pforan("sf(10kPa) = %v J/(kg·K)\n", s)
	io.Pforan("Tsat(10kPa) = %v K (%.2f °C)\n", t, t-273.15)
	chk.Float64(tst, "hf", 1e-9, h, 191.81e3)
	chk.Float64(tst, "sf", 1e-9, s, 0.6492e3)
	chk.Float64(tst, "Tsat [°C]", 0.05, t-273.15, 45.81)
	chk.Float64(tst, "rhof", 1e-6, d, 1.0/0.001010)

	// saturated vapor at 10 kPa
	hg, err := bk.Calc(H, P, 10e3, Q, 1, "water")
	if err != nil {
		tst.Errorf("hg query failed: %v\n", err)
		return
	}
	chk.Float64(tst, "hg", 1e-9, hg, 2583.9e3)

	// mid-quality mixture
	hx, err := bk.Calc(H, P, 10e3, Q, 0.5, "water")
	if err != nil {
		tst.Errorf("mixture query failed: %v\n", err)
		return
	}
	chk.Float64(tst, "h(x=0.5)", 1e-9, hx, (191.81e3+2583.9e3)/2.0)
}

func Test_water02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("water02. superheated steam and round trips")

	var bk Model

	// superheated steam at boiler outlet: 2 MPa, 350 °C
	tb := 350.0 + 273.15
	h3, err := bk.Calc(H, P, 2000e3, T, tb, "water")
	if err != nil {
		tst.Errorf("superheat enthalpy query failed: %v\n", err)
		return
	}
	s3, err := bk.Calc(S, P, 2000e3, T, tb, "water")
	if err != nil {
		tst.Errorf("superheat entropy query failed: %v\n", err)
		return
	}
	io.Pforan("h(2MPa,350°C) = %v J/kg\n", h3)
	io.Pforan("s(2MPa,350°C) = %v J/(kg·K)\n", s3)
	chk.Float64(tst, "h3", 0.5, h3, 3135469.0)
	chk.Float64(tst, "s3", 0.5, s3, 6950.4)

	// (P,H) must invert back to the same temperature
	t3, err := bk.Calc(T, P, 2000e3, H, h3, "water")
	if err != nil {
		tst.Errorf("inverse (P,H) query failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T(P,h3)", 1e-8, t3, tb)

	// (P,S) must invert back to the same enthalpy
	h3b, err := bk.Calc(H, P, 2000e3, S, s3, "water")
	if err != nil {
		tst.Errorf("inverse (P,S) query failed: %v\n", err)
		return
	}
	chk.Float64(tst, "h(P,s3)", 1e-6, h3b, h3)

	// two-phase state from enthalpy
	hx := (191.81e3 + 2583.9e3) / 2.0
	tx, err := bk.Calc(T, P, 10e3, H, hx, "water")
	if err != nil {
		tst.Errorf("two-phase (P,H) query failed: %v\n", err)
		return
	}
	sx, err := bk.Calc(S, P, 10e3, H, hx, "water")
	if err != nil {
		tst.Errorf("two-phase entropy query failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T two-phase", 1e-9, tx, 318.96)
	chk.Float64(tst, "s two-phase", 1e-9, sx, (0.6492e3+8.1488e3)/2.0)

	// compressed liquid at boiler pressure, condenser temperature
	hc, err := bk.Calc(H, P, 2000e3, T, 318.96, "water")
	if err != nil {
		tst.Errorf("compressed liquid query failed: %v\n", err)
		return
	}
	chk.Float64(tst, "h subcooled", 0.01, hc, 191810.0+0.001010*(2000e3-10e3))
}

func Test_water03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("water03. domain errors")

	var bk Model

	// quality above the critical pressure
	if _, err := bk.Calc(H, P, 30e6, Q, 0, "water"); err == nil {
		tst.Errorf("quality query above critical pressure must fail\n")
		return
	}

	// quality outside [0,1]
	if _, err := bk.Calc(H, P, 10e3, Q, 1.5, "water"); err == nil {
		tst.Errorf("quality outside [0,1] must fail\n")
		return
	}

	// pair without pressure
	if _, err := bk.Calc(H, T, 300, S, 1000, "water"); err == nil {
		tst.Errorf("pair without pressure must fail\n")
		return
	}

	// vapor-side density is not tabulated
	if _, err := bk.Calc(D, P, 10e3, Q, 1, "water"); err == nil {
		tst.Errorf("vapor density query must fail\n")
		return
	}

	// unknown fluid
	if _, err := bk.Calc(H, P, 101325, T, 300, "helium"); err == nil {
		tst.Errorf("unknown fluid must fail\n")
		return
	}

	// critical pressure constant
	pc, err := bk.CritP("water")
	if err != nil {
		tst.Errorf("CritP failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Pcrit", 1e-9, pc, 22.064e6)
}
