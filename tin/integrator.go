// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tin implements explicit time integrators consuming the equation
// engine: each scheme repeatedly evaluates the expression's explicit
// operators and advances the shared solver state
package tin

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofvm/eqn"
	"github.com/cpmech/gofvm/inp"
)

// Integrator implements one time stepping scheme, from t(n) to t(n+1)
type Integrator interface {
	Step(e *eqn.Expression, st *eqn.State) error
}

// allocators holds all available integrators
var allocators = make(map[string]func(sim *inp.Simulation) Integrator)

// SetIntegrator sets a new callback function to allocate an integrator
func SetIntegrator(name string, fcn func(sim *inp.Simulation) Integrator) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot set allocator for integrator %q because it exists already", name)
	}
	allocators[name] = fcn
}

// NewIntegrator allocates the integrator selected in the input file
func NewIntegrator(sim *inp.Simulation) Integrator {
	if fcn, ok := allocators[sim.Solver.Type]; ok {
		return fcn(sim)
	}
	chk.Panic("cannot find allocator for integrator %q in factory with %d integrators registered", sim.Solver.Type, len(allocators))
	return nil
}

// Run runs the time loop from st.T up to tf. The last step is clipped to
// land on tf; the nominal time increment is restored before returning so a
// later Run continues with the configured step.
func Run(ig Integrator, e *eqn.Expression, st *eqn.State, tf float64, verbose bool) (err error) {
	dt := st.Dt
	defer func() { st.Dt = dt }()
	for st.T < tf-1e-14 {
		if st.T+st.Dt > tf {
			st.Dt = tf - st.T
		}
		err = ig.Step(e, st)
		if err != nil {
			return chk.Err("time step failed at t=%g:\n%v", st.T, err)
		}
		if verbose {
			io.Pf("t = %13.6e\n", st.T)
		}
	}
	return
}

// temporalRho sums the coefficient-scaled time-derivative coefficients of
// all temporal operators; e.g. (ρ1+ρ2) du/dt. No temporal term means ρ = 1.
func temporalRho(e *eqn.Expression) float64 {
	rho, found := 0.0, false
	for _, op := range e.TemporalOperators() {
		if tc, ok := op.Krn.(eqn.TemporalCoef); ok {
			rho += op.Coeff * tc.TemporalCoef()
			found = true
		}
	}
	if !found {
		return 1
	}
	if rho == 0 {
		chk.Panic("cannot integrate expression with zero temporal coefficient")
	}
	return rho
}
