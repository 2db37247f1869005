// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"math"
)

// air model: ideal gas with temperature-dependent heat capacity. The molar
// heat capacity polynomial is from Sonntag, Borgnakke & Van Wylen,
// Fundamentals of Classical Thermodynamics (valid 250-2200 K):
//   cp̄(T) = a + b·T + c·T² + d·T³   [kJ/(kmol·K)]
const (
	airPcrit = 3.786e6  // critical pressure [Pa]
	airR     = 287.058  // specific gas constant [J/(kg·K)]
	airM     = 28.97    // molar mass [kg/kmol]
	airPref  = 101325.0 // entropy reference pressure [Pa]
	airTref  = 200.0    // enthalpy/entropy reference temperature [K]
	airTmin  = 200.0    // lower validity bound [K]
	airTmax  = 2200.0   // upper validity bound [K]

	airCpA = 28.11
	airCpB = 0.1967e-2
	airCpC = 0.4802e-5
	airCpD = -1.966e-9
)

// airCp returns cp(T) [J/(kg·K)]
func airCp(t float64) float64 {
	return (airCpA + t*(airCpB+t*(airCpC+t*airCpD))) * 1000.0 / airM
}

// airH returns h(T) [J/kg], the cp integral from the reference temperature
func airH(t float64) float64 {
	f := func(x float64) float64 {
		return airCpA*x + airCpB/2.0*x*x + airCpC/3.0*x*x*x + airCpD/4.0*x*x*x*x
	}
	return (f(t) - f(airTref)) * 1000.0 / airM
}

// airS returns s(P,T) [J/(kg·K)]
func airS(p, t float64) float64 {
	f := func(x float64) float64 {
		return airCpA*math.Log(x) + airCpB*x + airCpC/2.0*x*x + airCpD/3.0*x*x*x
	}
	return (f(t)-f(airTref))*1000.0/airM - airR*math.Log(p/airPref)
}

// airTfromH inverts h(T) by Newton iteration; h is strictly increasing
// because cp > 0 over the validity range
func airTfromH(h float64) (float64, bool) {
	t := airTref + h/1004.0
	for i := 0; i < 50; i++ {
		dt := (airH(t) - h) / airCp(t)
		t -= dt
		if math.Abs(dt) < 1e-9 {
			break
		}
	}
	if t < airTmin || t > airTmax || math.IsNaN(t) {
		return 0, false
	}
	return t, true
}

// airTfromS inverts s(P,T) at fixed pressure; ds/dT = cp/T > 0
func airTfromS(p, s float64) (float64, bool) {
	t := 300.0
	for i := 0; i < 50; i++ {
		dt := (airS(p, t) - s) * t / airCp(t)
		t -= dt
		if t < airTmin/2.0 {
			t = airTmin / 2.0
		}
		if math.Abs(dt) < 1e-9 {
			break
		}
	}
	if t < airTmin || t > airTmax || math.IsNaN(t) {
		return 0, false
	}
	return t, true
}

// airCalc answers one property query for air
func airCalc(target, a Kind, av float64, b Kind, bv float64) (float64, error) {
	k, kv, p, ok := pairPfirst(a, av, b, bv)
	if !ok {
		return 0, domErr("air", a, av, b, bv, "unsupported independent pair (pressure required)")
	}
	if p <= 0 {
		return 0, domErr("air", a, av, b, bv, "pressure must be positive")
	}

	// temperature from the given pair
	var t float64
	switch k {
	case T:
		t = kv
		if t < airTmin || t > airTmax {
			return 0, domErr("air", a, av, b, bv, "temperature outside 200-2200 K")
		}
	case H:
		if t, ok = airTfromH(kv); !ok {
			return 0, domErr("air", a, av, b, bv, "no gas state with this enthalpy")
		}
	case S:
		if t, ok = airTfromS(p, kv); !ok {
			return 0, domErr("air", a, av, b, bv, "no gas state with this entropy")
		}
	default:
		return 0, domErr("air", a, av, b, bv, "unsupported independent pair")
	}

	switch target {
	case T:
		return t, nil
	case H:
		return airH(t), nil
	case S:
		return airS(p, t), nil
	case D:
		return p / (airR * t), nil
	case P:
		return p, nil
	}
	return 0, domErr("air", a, av, b, bv, "unsupported target property")
}
