// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"math"
)

// waterPcrit is the critical pressure of water [Pa]
const waterPcrit = 22.064e6

// satRow holds one row of the water saturation table
//  p   -- saturation pressure [Pa]
//  t   -- saturation temperature [K]
//  vf  -- saturated liquid specific volume [m³/kg]
//  hf  -- saturated liquid enthalpy [J/kg]
//  hg  -- saturated vapor enthalpy [J/kg]
//  sf  -- saturated liquid entropy [J/(kg·K)]
//  sg  -- saturated vapor entropy [J/(kg·K)]
//  cpv -- mean vapor heat capacity for the superheated region [J/(kg·K)]
type satRow struct {
	p, t, vf, hf, hg, sf, sg, cpv float64
}

// waterSat is the saturation line of water, from near the triple point up to
// the critical point. Values from standard steam tables (Borgnakke &
// Sonntag). Interpolation is linear in ln(p) between rows; the cpv column is
// an effective mean vapor heat capacity fitted so that the constant-cpv
// superheat correlation reproduces tabulated superheated states at moderate
// superheats.
var waterSat = []satRow{
	{0.6117e3, 273.16, 0.001000, 0.0, 2500.9e3, 0.0, 9.1556e3, 1880},
	{1.0e3, 280.12, 0.001000, 29.30e3, 2513.7e3, 0.1059e3, 8.9749e3, 1885},
	{1.5e3, 286.17, 0.001001, 54.69e3, 2524.7e3, 0.1956e3, 8.8270e3, 1890},
	{2.0e3, 290.65, 0.001001, 73.43e3, 2532.9e3, 0.2606e3, 8.7227e3, 1895},
	{3.0e3, 297.23, 0.001003, 100.98e3, 2544.8e3, 0.3543e3, 8.5765e3, 1900},
	{5.0e3, 306.02, 0.001005, 137.75e3, 2560.7e3, 0.4762e3, 8.3938e3, 1905},
	{7.5e3, 313.44, 0.001008, 168.75e3, 2574.0e3, 0.5763e3, 8.2501e3, 1915},
	{10.0e3, 318.96, 0.001010, 191.81e3, 2583.9e3, 0.6492e3, 8.1488e3, 1920},
	{15.0e3, 327.12, 0.001014, 225.94e3, 2598.3e3, 0.7549e3, 8.0071e3, 1930},
	{20.0e3, 333.21, 0.001017, 251.42e3, 2608.9e3, 0.8320e3, 7.9073e3, 1940},
	{30.0e3, 342.24, 0.001022, 289.27e3, 2624.6e3, 0.9441e3, 7.7675e3, 1955},
	{50.0e3, 354.47, 0.001030, 340.54e3, 2645.2e3, 1.0912e3, 7.5931e3, 1975},
	{75.0e3, 364.91, 0.001037, 384.44e3, 2662.4e3, 1.2132e3, 7.4558e3, 1990},
	{100.0e3, 372.76, 0.001043, 417.51e3, 2675.0e3, 1.3028e3, 7.3589e3, 2000},
	{150.0e3, 384.50, 0.001053, 467.13e3, 2693.1e3, 1.4337e3, 7.2230e3, 2025},
	{200.0e3, 393.36, 0.001061, 504.71e3, 2706.3e3, 1.5302e3, 7.1270e3, 2050},
	{300.0e3, 406.67, 0.001073, 561.43e3, 2724.9e3, 1.6717e3, 6.9917e3, 2090},
	{400.0e3, 416.76, 0.001084, 604.66e3, 2738.1e3, 1.7765e3, 6.8955e3, 2120},
	{500.0e3, 424.98, 0.001093, 640.09e3, 2748.1e3, 1.8604e3, 6.8207e3, 2150},
	{750.0e3, 440.90, 0.001111, 709.24e3, 2766.4e3, 2.0195e3, 6.6837e3, 2230},
	{1000.0e3, 453.03, 0.001127, 762.51e3, 2777.1e3, 2.1381e3, 6.5850e3, 2300},
	{1500.0e3, 471.44, 0.001154, 844.55e3, 2791.0e3, 2.3143e3, 6.4430e3, 2380},
	{2000.0e3, 485.53, 0.001177, 908.47e3, 2798.3e3, 2.4467e3, 6.3390e3, 2450},
	{3000.0e3, 507.00, 0.001217, 1008.3e3, 2803.2e3, 2.6454e3, 6.1856e3, 2600},
	{4000.0e3, 523.50, 0.001252, 1087.4e3, 2800.8e3, 2.7966e3, 6.0696e3, 2750},
	{5000.0e3, 537.09, 0.001286, 1154.5e3, 2794.2e3, 2.9207e3, 5.9737e3, 2900},
	{7500.0e3, 563.71, 0.001368, 1283.0e3, 2765.2e3, 3.1649e3, 5.7780e3, 3250},
	{10000.0e3, 584.15, 0.001452, 1407.9e3, 2725.5e3, 3.3603e3, 5.6159e3, 3600},
	{12500.0e3, 600.96, 0.001546, 1512.0e3, 2674.3e3, 3.5239e3, 5.4580e3, 3950},
	{15000.0e3, 615.31, 0.001657, 1610.3e3, 2610.7e3, 3.6848e3, 5.3108e3, 4300},
	{17500.0e3, 627.82, 0.001804, 1732.2e3, 2529.5e3, 3.8724e3, 5.1431e3, 4750},
	{20000.0e3, 638.90, 0.002038, 1826.6e3, 2412.1e3, 4.0146e3, 4.9310e3, 5200},
	{22000.0e3, 646.86, 0.002703, 2011.1e3, 2173.1e3, 4.2942e3, 4.5439e3, 5800},
	{22064.0e3, 647.10, 0.003106, 2084.3e3, 2084.3e3, 4.4070e3, 4.4070e3, 6000},
}

// waterPmin is the lowest tabulated saturation pressure [Pa]
var waterPmin = waterSat[0].p

// lerp blends linearly between y0 and y1
func lerp(w, y0, y1 float64) float64 {
	return y0 + w*(y1-y0)
}

// satByP interpolates the saturation line at pressure p [Pa], linearly in
// ln(p). Returns false if p is outside the tabulated range.
func satByP(p float64) (r satRow, ok bool) {
	n := len(waterSat)
	if p < waterPmin || p > waterSat[n-1].p {
		return
	}
	i := 0
	for i < n-2 && p > waterSat[i+1].p {
		i++
	}
	a, b := waterSat[i], waterSat[i+1]
	w := (math.Log(p) - math.Log(a.p)) / (math.Log(b.p) - math.Log(a.p))
	r.p = p
	r.t = lerp(w, a.t, b.t)
	r.vf = lerp(w, a.vf, b.vf)
	r.hf = lerp(w, a.hf, b.hf)
	r.hg = lerp(w, a.hg, b.hg)
	r.sf = lerp(w, a.sf, b.sf)
	r.sg = lerp(w, a.sg, b.sg)
	r.cpv = lerp(w, a.cpv, b.cpv)
	return r, true
}

// satByT interpolates the saturation line at temperature t [K]; saturation
// pressure is blended in ln(p), the other columns linearly. Returns false if
// t is outside the tabulated range.
func satByT(t float64) (r satRow, ok bool) {
	n := len(waterSat)
	if t < waterSat[0].t || t > waterSat[n-1].t {
		return
	}
	i := 0
	for i < n-2 && t > waterSat[i+1].t {
		i++
	}
	a, b := waterSat[i], waterSat[i+1]
	w := (t - a.t) / (b.t - a.t)
	r.p = math.Exp(lerp(w, math.Log(a.p), math.Log(b.p)))
	r.t = t
	r.vf = lerp(w, a.vf, b.vf)
	r.hf = lerp(w, a.hf, b.hf)
	r.hg = lerp(w, a.hg, b.hg)
	r.sf = lerp(w, a.sf, b.sf)
	r.sg = lerp(w, a.sg, b.sg)
	r.cpv = lerp(w, a.cpv, b.cpv)
	return r, true
}

// subcooledH returns the enthalpy of compressed liquid at temperature t and
// pressure p, approximated from the saturated liquid line at the same
// temperature:  h = hf(t) + vf(t)·(p - psat(t))
func subcooledH(sat satRow, p float64) float64 {
	return sat.hf + sat.vf*(p-sat.p)
}

// waterState resolves the full state of water from the pair (p, k=kv)
func waterState(p float64, k Kind, kv float64) (t, h, s, d float64, err error) {

	if p <= 0 {
		err = domErr("water", P, p, k, kv, "pressure must be positive")
		return
	}

	switch k {

	// saturated mixture with given quality
	case Q:
		if kv < 0 || kv > 1 {
			err = domErr("water", P, p, Q, kv, "quality must be within [0,1]")
			return
		}
		sat, ok := satByP(p)
		if !ok {
			err = domErr("water", P, p, Q, kv, "no saturation state at this pressure")
			return
		}
		t = sat.t
		h = lerp(kv, sat.hf, sat.hg)
		s = lerp(kv, sat.sf, sat.sg)
		if kv == 0 {
			d = 1.0 / sat.vf
		}
		return

	// given temperature: superheated vapor or compressed liquid
	case T:
		t = kv
		if p < waterPcrit {
			if sat, ok := satByP(p); ok && t >= sat.t {
				// superheated vapor
				h = sat.hg + sat.cpv*(t-sat.t)
				s = sat.sg + sat.cpv*math.Log(t/sat.t)
				return
			}
		}
		sat, ok := satByT(t)
		if !ok {
			err = domErr("water", P, p, T, kv, "temperature outside tabulated range")
			return
		}
		h = subcooledH(sat, p)
		s = sat.sf
		d = 1.0 / sat.vf
		return

	// given enthalpy
	case H:
		sat, ok := satByP(p)
		if !ok {
			err = domErr("water", P, p, H, kv, "no saturation state at this pressure")
			return
		}
		h = kv
		switch {
		case h >= sat.hf && h <= sat.hg: // two-phase
			x := (h - sat.hf) / (sat.hg - sat.hf)
			t = sat.t
			s = lerp(x, sat.sf, sat.sg)
		case h > sat.hg: // superheated
			t = sat.t + (h-sat.hg)/sat.cpv
			s = sat.sg + sat.cpv*math.Log(t/sat.t)
		default: // compressed liquid: invert h over the saturated liquid line
			t, err = invSubcooled(p, h, sat.t, func(r satRow) float64 { return subcooledH(r, p) })
			if err != nil {
				err = domErr("water", P, p, H, kv, "no liquid state with this enthalpy")
				return
			}
			satt, _ := satByT(t)
			s = satt.sf
			d = 1.0 / satt.vf
		}
		return

	// given entropy
	case S:
		sat, ok := satByP(p)
		if !ok {
			err = domErr("water", P, p, S, kv, "no saturation state at this pressure")
			return
		}
		s = kv
		switch {
		case s >= sat.sf && s <= sat.sg: // two-phase
			x := (s - sat.sf) / (sat.sg - sat.sf)
			t = sat.t
			h = lerp(x, sat.hf, sat.hg)
		case s > sat.sg: // superheated
			t = sat.t * math.Exp((s-sat.sg)/sat.cpv)
			h = sat.hg + sat.cpv*(t-sat.t)
		default: // compressed liquid: invert s over the saturated liquid line
			t, err = invSubcooled(p, s, sat.t, func(r satRow) float64 { return r.sf })
			if err != nil {
				err = domErr("water", P, p, S, kv, "no liquid state with this entropy")
				return
			}
			satt, _ := satByT(t)
			h = subcooledH(satt, p)
			d = 1.0 / satt.vf
		}
		return
	}

	err = domErr("water", P, p, k, kv, "unsupported independent pair")
	return
}

// invSubcooled finds the liquid temperature where fcn(satByT(t)) equals
// target, by bisection over [Tmin, tsat]. fcn must be increasing in t.
func invSubcooled(p, target, tsat float64, fcn func(satRow) float64) (t float64, err error) {
	ta, tb := waterSat[0].t, tsat
	ra, _ := satByT(ta)
	rb, _ := satByT(tb)
	fa, fb := fcn(ra)-target, fcn(rb)-target
	if fa > 0 || fb < 0 {
		return 0, domErr("water", P, p, T, tsat, "liquid-line inversion out of bracket")
	}
	for i := 0; i < 100; i++ {
		t = 0.5 * (ta + tb)
		r, _ := satByT(t)
		f := fcn(r) - target
		if math.Abs(f) < 1e-9*math.Max(1.0, math.Abs(target)) || tb-ta < 1e-9 {
			return t, nil
		}
		if f > 0 {
			tb = t
		} else {
			ta = t
		}
	}
	return t, nil
}

// waterCalc answers one property query for water
func waterCalc(target, a Kind, av float64, b Kind, bv float64) (float64, error) {
	k, kv, p, ok := pairPfirst(a, av, b, bv)
	if !ok {
		return 0, domErr("water", a, av, b, bv, "unsupported independent pair (pressure required)")
	}
	t, h, s, d, err := waterState(p, k, kv)
	if err != nil {
		return 0, err
	}
	switch target {
	case T:
		return t, nil
	case H:
		return h, nil
	case S:
		return s, nil
	case D:
		if d == 0 {
			return 0, domErr("water", a, av, b, bv, "density only available on the liquid side")
		}
		return d, nil
	case P:
		return p, nil
	}
	return 0, domErr("water", a, av, b, bv, "unsupported target property")
}
