// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// HeatSine computes the separable solution of the 1D heat equation on a
// periodic domain of length L with a sinusoidal initial condition
//
//   du     d²u
//   ── = k ───      =>      u(x,t) = A・exp(-k ω² t)・sin(ω x),  ω = 2π/L
//   dt     dx²
//
type HeatSine struct {
	K   float64 // conductivity
	L   float64 // domain length
	Amp float64 // amplitude A
}

// U computes u(x,t)
func (o HeatSine) U(x, t float64) float64 {
	w := 2 * math.Pi / o.L
	return o.Amp * math.Exp(-o.K*w*w*t) * math.Sin(w*x)
}

// Uvals computes u(x,t) at many positions
func (o HeatSine) Uvals(xx []float64, t float64) (uu []float64) {
	uu = make([]float64, len(xx))
	for i, x := range xx {
		uu[i] = o.U(x, t)
	}
	return
}
