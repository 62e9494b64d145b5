// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gofvm/fld"
	"github.com/cpmech/gofvm/par"
)

// Expression holds one discretized equation as three ordered sequences of
// operators, one per category. It grows during the (single-threaded)
// assembly phase via AddOperator/AddExpression and is consumed, not
// mutated, during evaluation.
type Expression struct {
	ex       par.Executor // executor shared by all contained operators
	temporal []Operator   // temporal terms, in insertion order
	implicit []Operator   // implicit terms, in insertion order
	explicit []Operator   // explicit terms, in insertion order
}

// NewExpression returns a new empty expression bound to an executor
func NewExpression(ex par.Executor) *Expression {
	return &Expression{ex: ex}
}

// AddOperator appends op to the sequence matching its category
func (o *Expression) AddOperator(op Operator) {
	switch op.Typ {
	case Temporal:
		o.temporal = append(o.temporal, op)
	case Implicit:
		o.implicit = append(o.implicit, op)
	case Explicit:
		o.explicit = append(o.explicit, op)
	}
}

// AddExpression appends each of other's sequences onto the matching
// sequences of this expression, preserving relative order within each
// category. other is unmodified.
func (o *Expression) AddExpression(other *Expression) {
	o.temporal = append(o.temporal, other.temporal...)
	o.implicit = append(o.implicit, other.implicit...)
	o.explicit = append(o.explicit, other.explicit...)
}

// Size returns the total number of operators in this expression
func (o *Expression) Size() int {
	return len(o.temporal) + len(o.implicit) + len(o.explicit)
}

// TemporalOperators returns the temporal category (read-only)
func (o *Expression) TemporalOperators() []Operator { return o.temporal }

// ImplicitOperators returns the implicit category (read-only)
func (o *Expression) ImplicitOperators() []Operator { return o.implicit }

// ExplicitOperators returns the explicit category (read-only)
func (o *Expression) ExplicitOperators() []Operator { return o.explicit }

// Exec returns the executor all contained operators share
func (o *Expression) Exec() par.Executor { return o.ex }

// ExplicitOperation invokes every explicit operator against the
// accumulator, in insertion order, one operator fully completed before the
// next begins, and returns the mutated accumulator. The fixed order keeps
// floating point accumulation deterministic and reproducible across runs.
func (o *Expression) ExplicitOperation(source *fld.Field[float64]) *fld.Field[float64] {
	for _, op := range o.explicit {
		op.ExplicitOperation(source)
	}
	return source
}

// ExplicitOperationN allocates a zero-filled accumulator with ncells values
// and accumulates all explicit operators into it
func (o *Expression) ExplicitOperationN(ncells int) *fld.Field[float64] {
	source := fld.New[float64](o.ex, ncells, 0)
	return o.ExplicitOperation(source)
}

// AssembleSystem folds every implicit operator implementing SystemAssembler
// into the global matrix K, in insertion order
func (o *Expression) AssembleSystem(K *la.Triplet) {
	for _, op := range o.implicit {
		if a, ok := op.Krn.(SystemAssembler); ok {
			a.AddToSystem(K, op.Coeff)
		}
	}
}
