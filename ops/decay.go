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

// Decay implements an explicit linear decay (relaxation) term
//
//   du
//   ── = ... - λ u
//   dt
//
type Decay struct {
	St     *eqn.State // shared solver state (solution values)
	Lambda float64    // decay rate λ
}

// register operator
func init() {
	eqn.SetAllocator("decay", func(sim *inp.Simulation, od *inp.OpData, st *eqn.State, ex par.Executor) eqn.Operator {
		var o Decay
		o.St = st
		o.Lambda = od.GetPrm("lam", 1)
		return eqn.NewOperator(eqn.Explicit, od.Coeff, ex, &o)
	})
}

// AddToRhs adds -coeff * λ * u to the accumulator
func (o *Decay) AddToRhs(acc *fld.Field[float64], coeff float64) {
	if acc.Size() != o.St.Ncells() {
		chk.Panic("length mismatch: accumulator has %d cells but solution has %d", acc.Size(), o.St.Ncells())
	}
	u := o.St.U.Span()
	span := acc.Span()
	acc.Exec().ParallelFor(0, acc.Size(), func(i int) {
		span[i] -= coeff * o.Lambda * u[i]
	})
}
