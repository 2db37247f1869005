// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_air01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("air01. heat capacity and round trips")

	var bk Model

	// cp near ambient conditions
	cp := airCp(300.0)
	io.Pforan("cp(300K) = %v J/(kg·K)\n", cp)
	if cp < 995 || cp > 1015 {
		tst.Errorf("cp(300K)=%g outside the expected band\n", cp)
		return
	}

	// h(T) is strictly increasing and inverts exactly
	for _, t := range utl.LinSpace(250, 2000, 8) {
		h, err := bk.Calc(H, P, 101325, T, t, "air")
		if err != nil {
			tst.Errorf("enthalpy query failed: %v\n", err)
			return
		}
		tb, err := bk.Calc(T, P, 101325, H, h, "air")
		if err != nil {
			tst.Errorf("inverse (P,H) query failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("T(h(%.0fK))", t), 1e-6, tb, t)
	}

	// s(P,T) inverts at fixed pressure
	for _, t := range []float64{280, 700, 1400} {
		s, err := bk.Calc(S, P, 1.2e6, T, t, "air")
		if err != nil {
			tst.Errorf("entropy query failed: %v\n", err)
			return
		}
		tb, err := bk.Calc(T, P, 1.2e6, S, s, "air")
		if err != nil {
			tst.Errorf("inverse (P,S) query failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("T(s(%.0fK))", t), 1e-6, tb, t)
	}

	// entropy decreases with pressure at fixed temperature
	sLo, _ := bk.Calc(S, P, 101325, T, 500, "air")
	sHi, _ := bk.Calc(S, P, 12*101325, T, 500, "air")
	if sHi >= sLo {
		tst.Errorf("entropy must decrease with pressure: s(12atm)=%g >= s(1atm)=%g\n", sHi, sLo)
		return
	}

	// ideal gas density
	d, err := bk.Calc(D, P, 101325, T, 300, "air")
	if err != nil {
		tst.Errorf("density query failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rho(1atm,300K)", 1e-3, d, 1.1766)
}

func Test_air02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("air02. domain errors")

	var bk Model

	// temperature outside validity range
	if _, err := bk.Calc(H, P, 101325, T, 100, "air"); err == nil {
		tst.Errorf("query below 200 K must fail\n")
		return
	}
	if _, err := bk.Calc(H, P, 101325, T, 2500, "air"); err == nil {
		tst.Errorf("query above 2200 K must fail\n")
		return
	}

	// enthalpy with no gas state in range
	if _, err := bk.Calc(T, P, 101325, H, 1e9, "air"); err == nil {
		tst.Errorf("unreachable enthalpy must fail\n")
		return
	}

	// non-positive pressure
	if _, err := bk.Calc(H, P, -1, T, 300, "air"); err == nil {
		tst.Errorf("negative pressure must fail\n")
		return
	}
}
