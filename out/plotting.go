// Copyright 2025 The AD-HTC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
)

// leg colors matching the reference dashboard
var legColors = []string{"#f39c12", "#e74c3c", "#9b59b6", "#3498db"}

// PlotSteam draws the h-s diagram of the steam cycle: saturation dome plus
// the closed 1-2-3-4 cycle, and saves <fnkey>-hs under dirout
func PlotSteam(rep *Report, dirout, fnkey string) {

	plt.Reset(true, nil)

	// saturation dome
	plt.Plot(rep.Dome.Sf, rep.Dome.Hf, &plt.A{C: "#3498db", Ls: ":", Lw: 1.2, L: "saturation dome", NoClip: true})
	plt.Plot(rep.Dome.Sg, rep.Dome.Hg, &plt.A{C: "#3498db", Ls: ":", Lw: 1.2, NoClip: true})

	// closed cycle 1-2-3-4-1 [kJ/kg and kJ/kg·K]
	ss := make([]float64, 5)
	hh := make([]float64, 5)
	for i := 0; i < 5; i++ {
		st := rep.Steam.States[i%4]
		ss[i] = st.S / 1e3
		hh[i] = st.H / 1e3
	}
	plt.Plot(ss, hh, &plt.A{C: "#9b59b6", M: "o", Lw: 2, L: "cycle 1-2-3-4", NoClip: true})

	plt.Title("HTC steam cycle", nil)
	plt.Gll("$s$ [kJ/(kg·K)]", "$h$ [kJ/kg]", nil)
	plt.Save(dirout, fnkey+"-hs")
}

// PlotGas draws the T-Ḣ diagram of the gas cycle: one curve per leg, and
// saves <fnkey>-th under dirout
func PlotGas(rep *Report, dirout, fnkey string) {

	plt.Reset(true, nil)
	for i, path := range rep.Paths {
		plt.Plot(path.Hdot, path.Temp, &plt.A{C: legColors[i%len(legColors)], Lw: 2, L: path.Name, NoClip: true})
	}
	plt.Title("gas power cycle", nil)
	plt.Gll("$\\dot{H}$ [kW] (referenced to state 1)", "$T$ [°C]", nil)
	plt.Save(dirout, fnkey+"-th")
}
