// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tin

import (
	"github.com/cpmech/gofvm/eqn"
	"github.com/cpmech/gofvm/fld"
	"github.com/cpmech/gofvm/inp"
)

// Euler implements the forward Euler explicit scheme
//
//   u(n+1) = u(n) + Δt/ρ * E(u(n), t(n))
//
// where E is the accumulated explicit operation of the expression
type Euler struct {
	rhs *fld.Field[float64] // scratch accumulator, reused across steps
}

// register integrator
func init() {
	SetIntegrator("euler", func(sim *inp.Simulation) Integrator {
		return new(Euler)
	})
}

// Step advances the solution by one time increment
func (o *Euler) Step(e *eqn.Expression, st *eqn.State) (err error) {
	n := st.Ncells()
	if o.rhs == nil {
		o.rhs = fld.New[float64](e.Exec(), n)
	}
	fld.Fill(o.rhs, 0)
	e.ExplicitOperation(o.rhs)
	fac := st.Dt / temporalRho(e)
	u := st.U.Span()
	r := o.rhs.Span()
	e.Exec().ParallelFor(0, n, func(i int) {
		u[i] += fac * r[i]
	})
	st.T += st.Dt
	return
}
