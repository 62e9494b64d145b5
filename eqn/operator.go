// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eqn implements the term algebra of discretized PDEs: operators
// (single discretized contributions tagged with a category and coefficient)
// and expressions (ordered, per-category collections of operators supporting
// algebraic composition and explicit evaluation)
package eqn

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gofvm/fld"
	"github.com/cpmech/gofvm/par"
)

// Type defines the category of an operator, fixed at construction.
// The category determines how a time integration scheme consumes the term.
type Type int

const (
	Temporal Type = iota // time-derivative terms; e.g. ρ ∂u/∂t
	Implicit             // terms consumed through a system matrix
	Explicit             // terms accumulated directly into the right-hand side
)

// String returns the name of the category
func (o Type) String() string {
	switch o {
	case Temporal:
		return "temporal"
	case Implicit:
		return "implicit"
	case Explicit:
		return "explicit"
	}
	return io.Sf("invalid(%d)", int(o))
}

// Kernel defines what all discretized terms must implement
type Kernel interface {

	// AddToRhs adds this term's contribution, scaled by coeff, into the
	// accumulator, in place. The accumulator is already correctly sized;
	// the kernel must not resize or replace it.
	AddToRhs(acc *fld.Field[float64], coeff float64)
}

// SystemAssembler defines implicit terms that contribute to a system matrix
type SystemAssembler interface {
	AddToSystem(K *la.Triplet, coeff float64) // adds coeff-scaled entries to global matrix K
}

// TemporalCoef defines temporal terms carrying a time-derivative coefficient;
// e.g. the density ρ in ρ ∂u/∂t. Integrators use it to scale the explicit
// right-hand side and to compute stable time steps.
type TemporalCoef interface {
	TemporalCoef() float64
}

// Operator represents one discretized contribution to a PDE. Operators are
// value-copyable: copies carry independent coefficients but reference the
// same underlying discretization kernel.
type Operator struct {
	Typ   Type         // category; fixed at construction
	Coeff float64      // scalar multiplier; combines multiplicatively under scaling
	Ex    par.Executor // owning executor
	Krn   Kernel       // discretization logic, supplied by a registered variant
}

// NewOperator returns a new operator
func NewOperator(typ Type, coeff float64, ex par.Executor, krn Kernel) Operator {
	return Operator{Typ: typ, Coeff: coeff, Ex: ex, Krn: krn}
}

// GetType returns the fixed category of this operator
func (o Operator) GetType() Type { return o.Typ }

// Exec returns the executor of this operator
func (o Operator) Exec() par.Executor { return o.Ex }

// ExplicitOperation adds this operator's coefficient-scaled contribution
// into the accumulator, in place
func (o Operator) ExplicitOperation(acc *fld.Field[float64]) {
	o.Krn.AddToRhs(acc, o.Coeff)
}

// ScaleOp returns a new operator with the coefficient multiplied by s,
// same category, executor and kernel
func ScaleOp(s float64, op Operator) Operator {
	op.Coeff *= s
	return op
}
