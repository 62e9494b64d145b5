// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_decay01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("decay01. closed-form decay versus ODE solver")

	var sol ExpDecay
	sol.Init(1.0, 2.0, 0.5, true)

	chk.Scalar(tst, "u(0)", 1e-17, sol.Calc(0), 1.0)
	for _, t := range utl.LinSpace(0.1, 2.0, 5) {
		chk.Scalar(tst, io.Sf("u(%g)", t), 1e-6, sol.Calc(t), sol.CalcNum(t))
	}

	// equilibrium value s/λ for long times
	chk.Scalar(tst, "u(∞)", 1e-8, sol.Calc(20), 0.25)

	// λ = 0 reduces to linear growth
	var lin ExpDecay
	lin.Init(1.0, 0, 0.5, false)
	chk.Scalar(tst, "linear growth", 1e-17, lin.Calc(2), 2.0)
}

func Test_heat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat01. separable heat solution")

	sol := HeatSine{K: 1, L: 1, Amp: 2}

	// initial condition is the plain sine
	chk.Scalar(tst, "u(1/4,0)", 1e-15, sol.U(0.25, 0), 2.0)
	chk.Scalar(tst, "u(0,0)", 1e-15, sol.U(0, 0), 0.0)

	// amplitude decays by exp(-kω²t)
	w := 2 * math.Pi
	t := 0.01
	chk.Scalar(tst, "u(1/4,t)", 1e-15, sol.U(0.25, t), 2*math.Exp(-w*w*t))

	// vectorised evaluation matches the pointwise one
	xx := utl.LinSpace(0, 1, 9)
	uu := sol.Uvals(xx, t)
	chk.IntAssert(len(uu), 9)
	for i, x := range xx {
		chk.Scalar(tst, io.Sf("u(%g)", x), 1e-17, uu[i], sol.U(x, t))
	}
}
