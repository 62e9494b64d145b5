// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gofvm/eqn"
	"github.com/cpmech/gofvm/fld"
	"github.com/cpmech/gofvm/inp"
	"github.com/cpmech/gofvm/par"
)

// Reaction implements an implicit linear reaction term -λ u. Implicit terms
// are consumed through the system matrix built by the time integrator; the
// linear solve itself is out of the scope of this engine.
type Reaction struct {
	N      int     // number of cells (system dimension)
	Lambda float64 // reaction rate λ
}

// register operator
func init() {
	eqn.SetAllocator("reaction-imp", func(sim *inp.Simulation, od *inp.OpData, st *eqn.State, ex par.Executor) eqn.Operator {
		var o Reaction
		o.N = sim.Domain.Ncells
		o.Lambda = od.GetPrm("lam", 1)
		return eqn.NewOperator(eqn.Implicit, od.Coeff, ex, &o)
	})
}

// AddToRhs does nothing; see AddToSystem
func (o *Reaction) AddToRhs(acc *fld.Field[float64], coeff float64) {}

// AddToSystem puts the coeff-scaled diagonal entries into K
func (o *Reaction) AddToSystem(K *la.Triplet, coeff float64) {
	for i := 0; i < o.N; i++ {
		K.Put(i, i, -coeff*o.Lambda)
	}
}
