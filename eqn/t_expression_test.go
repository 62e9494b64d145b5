// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofvm/fld"
	"github.com/cpmech/gofvm/par"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// constKernel adds a constant to every cell of the accumulator
type constKernel struct {
	c float64
}

func (o *constKernel) AddToRhs(acc *fld.Field[float64], coeff float64) {
	span := acc.Span()
	acc.Exec().ParallelFor(0, acc.Size(), func(i int) {
		span[i] += coeff * o.c
	})
}

// orderKernel records evaluation order in a shared log
type orderKernel struct {
	id  int
	log *[]int
}

func (o *orderKernel) AddToRhs(acc *fld.Field[float64], coeff float64) {
	*o.log = append(*o.log, o.id)
}

func Test_expr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expr01. categories and sizes under composition")

	ex := par.Serial()
	opT := NewOperator(Temporal, 1, ex, &constKernel{0})
	opI := NewOperator(Implicit, 1, ex, &constKernel{0})
	opE := NewOperator(Explicit, 1, ex, &constKernel{1})

	e1 := NewExpression(ex)
	e1.AddOperator(opT)
	e1.AddOperator(opE)
	chk.IntAssert(e1.Size(), 2)
	chk.IntAssert(len(e1.TemporalOperators()), 1)
	chk.IntAssert(len(e1.ImplicitOperators()), 0)
	chk.IntAssert(len(e1.ExplicitOperators()), 1)

	e2 := NewExpression(ex)
	e2.AddOperator(opI)
	e2.AddOperator(opE)
	e2.AddOperator(opE)

	// (e1+e2).size() == e1.size() + e2.size(), per category
	sum := Add(e1, e2)
	chk.IntAssert(sum.Size(), e1.Size()+e2.Size())
	chk.IntAssert(len(sum.TemporalOperators()), 1)
	chk.IntAssert(len(sum.ImplicitOperators()), 1)
	chk.IntAssert(len(sum.ExplicitOperators()), 3)

	// operands are unmodified
	chk.IntAssert(e1.Size(), 2)
	chk.IntAssert(e2.Size(), 3)

	// expression + operator and operator + operator
	chk.IntAssert(AddOp(e1, opE).Size(), 3)
	chk.IntAssert(e1.Size(), 2)
	both := Combine(opE, opT)
	chk.IntAssert(both.Size(), 2)
	if !both.Exec().Equal(ex) {
		tst.Errorf("combined expression must be bound to the left operator's executor")
	}
}

func Test_expr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expr02. scaling preserves size and categories")

	ex := par.Serial()
	e := NewExpression(ex)
	e.AddOperator(NewOperator(Temporal, 2, ex, &constKernel{0}))
	e.AddOperator(NewOperator(Explicit, 3, ex, &constKernel{1}))

	s := Scale(5, e)
	chk.IntAssert(s.Size(), e.Size())
	chk.IntAssert(len(s.TemporalOperators()), 1)
	chk.IntAssert(len(s.ExplicitOperators()), 1)
	chk.Scalar(tst, "temporal coeff", 1e-17, s.TemporalOperators()[0].Coeff, 10)
	chk.Scalar(tst, "explicit coeff", 1e-17, s.ExplicitOperators()[0].Coeff, 15)

	// original coefficients are unchanged
	chk.Scalar(tst, "orig temporal coeff", 1e-17, e.TemporalOperators()[0].Coeff, 2)
	chk.Scalar(tst, "orig explicit coeff", 1e-17, e.ExplicitOperators()[0].Coeff, 3)

	// coefficient combines multiplicatively
	op := ScaleOp(4, ScaleOp(0.5, NewOperator(Explicit, 3, ex, &constKernel{1})))
	chk.Scalar(tst, "scaled coeff", 1e-17, op.Coeff, 6)
	chk.IntAssert(int(op.GetType()), int(Explicit))
}

func Test_expr03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expr03. explicit accumulation in insertion order")

	// two explicit terms over a shared accumulator: T1 (coeff 1, adds 3)
	// then T2 (coeff 2, adds 5) gives 3 + 10 = 13 in every cell
	ex := par.Serial()
	e := NewExpression(ex)
	e.AddOperator(NewOperator(Explicit, 1, ex, &constKernel{3}))
	e.AddOperator(NewOperator(Explicit, 2, ex, &constKernel{5}))

	res := e.ExplicitOperationN(4)
	chk.IntAssert(res.Size(), 4)
	chk.Vector(tst, "accumulated", 1e-17, res.CopyToHost().Span(), []float64{13, 13, 13, 13})

	// evaluation order is insertion order, one term completed before the next
	var log []int
	e2 := NewExpression(ex)
	for id := 0; id < 5; id++ {
		e2.AddOperator(NewOperator(Explicit, 1, ex, &orderKernel{id: id, log: &log}))
	}
	e2.ExplicitOperationN(1)
	chk.Ints(tst, "evaluation order", log, []int{0, 1, 2, 3, 4})
}

func Test_expr04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expr04. subtraction equals addition of the negation")

	ex := par.Serial()
	e1 := NewExpression(ex)
	e1.AddOperator(NewOperator(Explicit, 1, ex, &constKernel{3}))
	e2 := NewExpression(ex)
	e2.AddOperator(NewOperator(Explicit, 2, ex, &constKernel{5}))

	a := Sub(e1, e2).ExplicitOperationN(3)
	b := Add(e1, Scale(-1, e2)).ExplicitOperationN(3)
	chk.Vector(tst, "e1-e2", 1e-17, a.CopyToHost().Span(), []float64{-7, -7, -7})
	if !fld.Equal(a, b) {
		tst.Errorf("e1-e2 and e1+(-1*e2) must evaluate identically")
	}

	// operator forms
	op1 := NewOperator(Explicit, 1, ex, &constKernel{3})
	op2 := NewOperator(Explicit, 1, ex, &constKernel{5})
	c := SubOps(op1, op2).ExplicitOperationN(2)
	chk.Vector(tst, "op1-op2", 1e-17, c.CopyToHost().Span(), []float64{-2, -2})
	d := SubOp(e1, op2).ExplicitOperationN(2)
	chk.Vector(tst, "e1-op2", 1e-17, d.CopyToHost().Span(), []float64{-2, -2})
}

func Test_expr05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expr05. explicit operation with caller-provided accumulator")

	ex := par.Serial()
	e := NewExpression(ex)
	e.AddOperator(NewOperator(Explicit, 1, ex, &constKernel{1}))

	acc := fld.New[float64](ex, 3, 10.0)
	res := e.ExplicitOperation(acc)
	if res != acc {
		tst.Errorf("explicitOperation must return the mutated accumulator")
	}
	chk.Vector(tst, "accumulated", 1e-17, acc.CopyToHost().Span(), []float64{11, 11, 11})
}
