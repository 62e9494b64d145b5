// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ops implements concrete operator variants. Each variant registers
// itself with the eqn factory at initialisation time and supplies the
// category/coefficient/evaluation contract of one discretized term.
package ops

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gofvm/eqn"
	"github.com/cpmech/gofvm/fld"
	"github.com/cpmech/gofvm/inp"
	"github.com/cpmech/gofvm/par"
)

// Source implements an explicit volumetric source term
//
//   du
//   ── = ... + s(t)
//   dt
//
// where s is either a constant (parameter "s") or a named function of time
// from the input file's function database.
type Source struct {
	St  *eqn.State // shared solver state (current time)
	Fcn dbf.T   // [optional] s(t) function
	Val float64    // constant source value used when Fcn is nil
}

// register operator
func init() {
	eqn.SetAllocator("source", func(sim *inp.Simulation, od *inp.OpData, st *eqn.State, ex par.Executor) eqn.Operator {
		var o Source
		o.St = st
		o.Val = od.GetPrm("s", 0)
		if od.Func != "" {
			fcn, err := sim.Functions.Get(od.Func)
			if err != nil {
				chk.Panic("cannot allocate source operator:\n%v", err)
			}
			o.Fcn = fcn
		}
		return eqn.NewOperator(eqn.Explicit, od.Coeff, ex, &o)
	})
}

// AddToRhs adds coeff * s(t) to every cell of the accumulator
func (o *Source) AddToRhs(acc *fld.Field[float64], coeff float64) {
	s := o.Val
	if o.Fcn != nil {
		s = o.Fcn.F(o.St.T, nil)
	}
	span := acc.Span()
	acc.Exec().ParallelFor(0, acc.Size(), func(i int) {
		span[i] += coeff * s
	})
}
