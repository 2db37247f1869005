// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prop implements real-fluid property lookups for the working fluids
// of the plant: water (steam cycle) and air (gas cycle). A property query
// takes a fluid name and two independent state variables and returns any
// third property. All values are SI: [Pa], [K], [J/kg], [J/(kg·K)], [kg/m³]
package prop

import (
	"github.com/cpmech/gosl/chk"
)

// Kind identifies one intensive state variable
type Kind int

// state variables
const (
	P Kind = iota // pressure [Pa]
	T             // temperature [K]
	H             // specific enthalpy [J/kg]
	S             // specific entropy [J/(kg·K)]
	Q             // vapor quality: 0 = saturated liquid, 1 = saturated vapor
	D             // density [kg/m³]
)

// names of state variables for messages
var kindNames = map[Kind]string{P: "P", T: "T", H: "H", S: "S", Q: "Q", D: "D"}

// String returns the symbol of a state variable
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "?"
}

// Backend computes fluid properties. Implementations must be pure functions
// of their inputs and safe for concurrent read-only queries. A state outside
// the fluid's valid region causes a domain error; no partial values are
// returned.
type Backend interface {

	// Calc returns property 'target' of 'fluid' at the state fixed by the
	// independent pair (a=av, b=bv)
	Calc(target, a Kind, av float64, b Kind, bv float64, fluid string) (float64, error)

	// CritP returns the critical pressure of 'fluid' [Pa]
	CritP(fluid string) (float64, error)
}

// State holds one thermodynamic state point of a working fluid
type State struct {
	P float64 // pressure [Pa]
	T float64 // temperature [K]
	H float64 // specific enthalpy [J/kg]
	S float64 // specific entropy [J/(kg·K)]
}

// Model is the table/correlation property backend. It supports the fluids
// "water" and "air" and the independent pairs (P,Q), (P,T), (P,H) and (P,S).
// The zero value is ready to use.
type Model struct{}

// Calc implements Backend
func (o Model) Calc(target, a Kind, av float64, b Kind, bv float64, fluid string) (float64, error) {
	switch fluid {
	case "water":
		return waterCalc(target, a, av, b, bv)
	case "air":
		return airCalc(target, a, av, b, bv)
	}
	return 0, chk.Err("property backend: unknown fluid %q", fluid)
}

// CritP implements Backend
func (o Model) CritP(fluid string) (float64, error) {
	switch fluid {
	case "water":
		return waterPcrit, nil
	case "air":
		return airPcrit, nil
	}
	return 0, chk.Err("property backend: unknown fluid %q", fluid)
}

// domErr builds a domain error carrying the offending fluid and pair
func domErr(fluid string, a Kind, av float64, b Kind, bv float64, msg string) error {
	return chk.Err("%s state (%s=%g, %s=%g) is out of domain: %s", fluid, a, av, b, bv, msg)
}

// pairPfirst normalizes an independent pair so that pressure comes first.
// All supported pairs include pressure.
func pairPfirst(a Kind, av float64, b Kind, bv float64) (Kind, float64, float64, bool) {
	if a == P {
		return b, bv, av, true
	}
	if b == P {
		return a, av, bv, true
	}
	return 0, 0, 0, false
}
