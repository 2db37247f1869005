// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file. Input
// values use operator units (kPa, °C, %, kg/s, MJ/kg); the accessors convert
// to SI parameter sets for the solvers.
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FeedData holds biomass routing input
type FeedData struct {
	Mtotal   float64 `json:"mtotal"`   // total biomass flow [kg/s]
	MoistPct float64 `json:"moistpct"` // moisture content [%]
	YieldPct float64 `json:"yieldpct"` // AD biogas yield [%]
	ConvPct  float64 `json:"convpct"`  // HTC conversion [%]
	LHV      float64 `json:"lhv"`      // biogas lower heating value [MJ/kg]
}

// SteamData holds steam (Rankine) cycle input
type SteamData struct {
	Pcond   float64 `json:"pcond"`   // condenser pressure [kPa]
	Pboil   float64 `json:"pboil"`   // boiler pressure [kPa]
	Tboil   float64 `json:"tboil"`   // boiler outlet temperature [°C]
	PumpPct float64 `json:"pumppct"` // pump efficiency [%]
	TurbPct float64 `json:"turbpct"` // turbine efficiency [%]
}

// GasData holds gas (Brayton) cycle input
type GasData struct {
	Ratio   float64 `json:"rp"`      // pressure ratio
	Tin     float64 `json:"tin"`     // air inlet temperature [°C]
	Tturb   float64 `json:"tturb"`   // turbine inlet temperature [°C]
	CompPct float64 `json:"comppct"` // compressor efficiency [%]
	TurbPct float64 `json:"turbpct"` // turbine efficiency [%]
	Mdot    float64 `json:"mdot"`    // gas mass flow [kg/s]
}

// Data holds all simulation input
type Data struct {

	// global information
	Desc   string `json:"desc"`   // description of analysis
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/adhtc

	// plant sections
	Feed  FeedData  `json:"feed"`
	Steam SteamData `json:"steam"`
	Gas   GasData   `json:"gas"`

	// visualization sampling (tuning knobs, not correctness parameters)
	NpDome int `json:"npdome"` // saturation dome samples
	NpPres int `json:"nppres"` // samples along pressure legs
	NpTemp int `json:"nptemp"` // samples along constant-pressure legs

	// derived
	Key string `json:"-"` // filename key == basename without extension
}

// SetDefault sets default values matching the reference plant
func (o *Data) SetDefault() {
	o.Feed = FeedData{Mtotal: 10.0, MoistPct: 50.0, YieldPct: 60.0, ConvPct: 70.0, LHV: 22.0}
	o.Steam = SteamData{Pcond: 10.0, Pboil: 2000.0, Tboil: 350.0, PumpPct: 85.0, TurbPct: 85.0}
	o.Gas = GasData{Ratio: 12.0, Tin: 25.0, Tturb: 1100.0, CompPct: 88.0, TurbPct: 90.0, Mdot: 1.0}
	o.NpDome = 300
	o.NpPres = 60
	o.NpTemp = 80
}

// ReadSim reads all input data from a .sim JSON file
func ReadSim(simfilepath string) *Data {

	// new data with defaults
	var o Data
	o.SetDefault()

	// read file; panics on unreadable input
	b := io.ReadFile(simfilepath)

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key and output directory
	o.Key = io.FnKey(filepath.Base(simfilepath))
	if o.DirOut == "" {
		o.DirOut = "/tmp/adhtc/" + o.Key
	}
	return &o
}

// Validate checks percentage and sampling ranges. Cycle-specific constraints
// (e.g. Pboil > Pcond) are enforced by the solver Validate methods, before
// any property query.
func (o *Data) Validate() error {
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"moisture content", o.Feed.MoistPct},
		{"AD biogas yield", o.Feed.YieldPct},
		{"HTC conversion", o.Feed.ConvPct},
		{"pump efficiency", o.Steam.PumpPct},
		{"steam turbine efficiency", o.Steam.TurbPct},
		{"compressor efficiency", o.Gas.CompPct},
		{"gas turbine efficiency", o.Gas.TurbPct},
	} {
		if f.val < 0 || f.val > 100 {
			return chk.Err("input: %s must be within [0,100] %%; value=%g", f.name, f.val)
		}
	}
	if o.Feed.Mtotal < 0 {
		return chk.Err("input: total biomass flow must be non-negative; mtotal=%g kg/s", o.Feed.Mtotal)
	}
	if o.Feed.LHV < 0 {
		return chk.Err("input: biogas LHV must be non-negative; lhv=%g MJ/kg", o.Feed.LHV)
	}
	if o.NpDome < 2 || o.NpPres < 2 || o.NpTemp < 2 {
		return chk.Err("input: sample counts must be at least 2; npdome=%d nppres=%d nptemp=%d", o.NpDome, o.NpPres, o.NpTemp)
	}
	return nil
}

// FeedParams returns the biomass router parameters in SI units
func (o *Data) FeedParams() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "mtotal", V: o.Feed.Mtotal},          // [kg/s]
		&dbf.P{N: "moist", V: o.Feed.MoistPct / 100},   // [-]
		&dbf.P{N: "yieldad", V: o.Feed.YieldPct / 100}, // [-]
		&dbf.P{N: "convhtc", V: o.Feed.ConvPct / 100},  // [-]
		&dbf.P{N: "lhv", V: o.Feed.LHV * 1e6},          // [J/kg]
	}
}

// SteamParams returns the steam cycle parameters in SI units
func (o *Data) SteamParams() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "Pcond", V: o.Steam.Pcond * 1e3},    // [Pa]
		&dbf.P{N: "Pboil", V: o.Steam.Pboil * 1e3},    // [Pa]
		&dbf.P{N: "Tboil", V: o.Steam.Tboil + 273.15}, // [K]
		&dbf.P{N: "etap", V: o.Steam.PumpPct / 100},   // [-]
		&dbf.P{N: "etat", V: o.Steam.TurbPct / 100},   // [-]
	}
}

// GasParams returns the gas cycle parameters in SI units
func (o *Data) GasParams() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "rp", V: o.Gas.Ratio},             // [-]
		&dbf.P{N: "Tin", V: o.Gas.Tin + 273.15},     // [K]
		&dbf.P{N: "Tturb", V: o.Gas.Tturb + 273.15}, // [K]
		&dbf.P{N: "etac", V: o.Gas.CompPct / 100},   // [-]
		&dbf.P{N: "etat", V: o.Gas.TurbPct / 100},   // [-]
		&dbf.P{N: "mdot", V: o.Gas.Mdot},            // [kg/s]
	}
}
