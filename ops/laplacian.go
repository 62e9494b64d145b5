// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofvm/eqn"
	"github.com/cpmech/gofvm/fld"
	"github.com/cpmech/gofvm/inp"
	"github.com/cpmech/gofvm/par"
)

// Laplacian implements the explicit 1D finite volume diffusion term with a
// constant conductivity
//
//   du          d²u          k
//   ── = ... + k ───   =>   ─── (u[i-1] - 2 u[i] + u[i+1])
//   dt          dx²         dx²
//
// Boundary neighbours come either from the periodic wrap-around or from the
// ghost values in State, which a boundary condition or a completed halo
// exchange must set before evaluation.
type Laplacian struct {
	St    *eqn.State // shared solver state (solution, grid, ghosts)
	Kcoef float64    // conductivity k
}

// register operator
func init() {
	eqn.SetAllocator("laplacian", func(sim *inp.Simulation, od *inp.OpData, st *eqn.State, ex par.Executor) eqn.Operator {
		var o Laplacian
		o.St = st
		o.Kcoef = od.GetPrm("k", 1)
		return eqn.NewOperator(eqn.Explicit, od.Coeff, ex, &o)
	})
}

// AddToRhs adds the coeff-scaled second difference to the accumulator
func (o *Laplacian) AddToRhs(acc *fld.Field[float64], coeff float64) {
	n := acc.Size()
	if n != o.St.Ncells() {
		chk.Panic("length mismatch: accumulator has %d cells but solution has %d", n, o.St.Ncells())
	}
	u := o.St.U.Span()
	span := acc.Span()
	fac := coeff * o.Kcoef / (o.St.Dx * o.St.Dx)
	periodic := o.St.Periodic
	gl, gr := o.St.GhostL, o.St.GhostR
	acc.Exec().ParallelFor(0, n, func(i int) {
		ul, ur := gl, gr
		if i > 0 {
			ul = u[i-1]
		} else if periodic {
			ul = u[n-1]
		}
		if i < n-1 {
			ur = u[i+1]
		} else if periodic {
			ur = u[0]
		}
		span[i] += fac * (ul - 2*u[i] + ur)
	})
}
