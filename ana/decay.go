// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used as references in tests
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
)

// ExpDecay computes the solution of the linear decay equation with a
// constant source
//
//   du
//   ── = -λ u + s      =>      u(t) = s/λ + (u0 - s/λ)・exp(-λ t)
//   dt
//
type ExpDecay struct {
	U0     float64    // initial value u(0)
	Lambda float64    // decay rate λ
	S      float64    // constant source s
	sol    ode.Solver // ODE solver
}

// Init initialises this structure. withNum also prepares the numerical
// cross-check solver.
func (o *ExpDecay) Init(u0, lam, s float64, withNum bool) {

	// input data
	o.U0 = u0
	o.Lambda = lam
	o.S = s

	// numerical solver with y := {u}
	if withNum {
		o.sol.Init("Radau5", 1, func(f []float64, dt, t float64, y []float64) error {
			f[0] = -o.Lambda*y[0] + o.S
			return nil
		}, nil, nil, nil)
		o.sol.Distr = false // must be disabled; otherwise it causes problems in parallel runs
	}
}

// Calc computes u(t) with the closed-form solution
func (o ExpDecay) Calc(t float64) float64 {
	if o.Lambda == 0 {
		return o.U0 + o.S*t
	}
	ueq := o.S / o.Lambda
	return ueq + (o.U0-ueq)*math.Exp(-o.Lambda*t)
}

// CalcNum computes u(t) using the numerical method
func (o ExpDecay) CalcNum(t float64) float64 {
	y := []float64{o.U0}
	err := o.sol.Solve(y, 0, t, t, false)
	if err != nil {
		chk.Panic("ExpDecay failed when calculating u(t) using ODE solver: %v", err)
	}
	return y[0]
}
