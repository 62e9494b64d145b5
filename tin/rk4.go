// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tin

import (
	"github.com/cpmech/gofvm/eqn"
	"github.com/cpmech/gofvm/fld"
	"github.com/cpmech/gofvm/inp"
)

// RungeKutta implements the classical explicit 4-stage Runge-Kutta scheme.
// Intermediate stages re-evaluate the expression with the shared state
// temporarily pointing at the stage solution; the state is restored before
// Step returns, so a failed evaluation cannot leak a stage solution.
type RungeKutta struct {
	k  [4]*fld.Field[float64] // stage slopes
	us *fld.Field[float64]    // stage solution
}

// register integrator
func init() {
	SetIntegrator("rk4", func(sim *inp.Simulation) Integrator {
		return new(RungeKutta)
	})
}

// Step advances the solution by one time increment
func (o *RungeKutta) Step(e *eqn.Expression, st *eqn.State) (err error) {

	// scratch buffers
	n := st.Ncells()
	ex := e.Exec()
	if o.us == nil {
		for j := 0; j < 4; j++ {
			o.k[j] = fld.New[float64](ex, n)
		}
		o.us = fld.New[float64](ex, n)
	}

	// stage evaluation: k = E(uin, t) / ρ
	u0 := st.U
	t0 := st.T
	rho := temporalRho(e)
	eval := func(k, uin *fld.Field[float64], t float64) {
		fld.Fill(k, 0)
		st.U = uin
		st.T = t
		e.ExplicitOperation(k)
		fld.ScalarMul(k, 1/rho)
	}
	defer func() {
		st.U = u0
		st.T = t0 + st.Dt
	}()

	// stage solution: us = u0 + c*dt * k
	stage := func(k *fld.Field[float64], c float64) {
		u := u0.Span()
		us := o.us.Span()
		kk := k.Span()
		cdt := c * st.Dt
		ex.ParallelFor(0, n, func(i int) {
			us[i] = u[i] + cdt*kk[i]
		})
	}

	// slopes
	eval(o.k[0], u0, t0)
	stage(o.k[0], 0.5)
	eval(o.k[1], o.us, t0+0.5*st.Dt)
	stage(o.k[1], 0.5)
	eval(o.k[2], o.us, t0+0.5*st.Dt)
	stage(o.k[2], 1)
	eval(o.k[3], o.us, t0+st.Dt)

	// update: u += dt/6 * (k1 + 2k2 + 2k3 + k4)
	u := u0.Span()
	k1 := o.k[0].Span()
	k2 := o.k[1].Span()
	k3 := o.k[2].Span()
	k4 := o.k[3].Span()
	fac := st.Dt / 6.0
	ex.ParallelFor(0, n, func(i int) {
		u[i] += fac * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
	})
	return
}
