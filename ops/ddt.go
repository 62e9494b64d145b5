// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/cpmech/gofvm/eqn"
	"github.com/cpmech/gofvm/fld"
	"github.com/cpmech/gofvm/inp"
	"github.com/cpmech/gofvm/par"
)

// Ddt implements the temporal term
//
//     du
//   ρ ──
//     dt
//
// Temporal terms are consumed by time integrators through TemporalCoef;
// they contribute nothing to the explicit accumulation.
type Ddt struct {
	Rho float64 // time-derivative coefficient ρ
}

// register operator
func init() {
	eqn.SetAllocator("ddt", func(sim *inp.Simulation, od *inp.OpData, st *eqn.State, ex par.Executor) eqn.Operator {
		var o Ddt
		o.Rho = od.GetPrm("rho", 1)
		return eqn.NewOperator(eqn.Temporal, od.Coeff, ex, &o)
	})
}

// AddToRhs does nothing; see TemporalCoef
func (o *Ddt) AddToRhs(acc *fld.Field[float64], coeff float64) {}

// TemporalCoef returns ρ
func (o *Ddt) TemporalCoef() float64 { return o.Rho }
