// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

// Algebraic composition of expressions and operators. Every function
// returns a new expression and leaves its operands unmodified. Subtraction
// is defined as addition of the (-1)-scaled right-hand side, so its
// correctness reduces entirely to Scale and Add.

// Add returns lhs + rhs: a new expression concatenating matching categories
func Add(lhs, rhs *Expression) *Expression {
	res := NewExpression(lhs.ex)
	res.AddExpression(lhs)
	res.AddExpression(rhs)
	return res
}

// AddOp returns lhs + op: a new expression with op appended
func AddOp(lhs *Expression, op Operator) *Expression {
	res := NewExpression(lhs.ex)
	res.AddExpression(lhs)
	res.AddOperator(op)
	return res
}

// Combine returns a fresh expression, bound to the left operator's
// executor, containing both operators
func Combine(lhs, rhs Operator) *Expression {
	res := NewExpression(lhs.Exec())
	res.AddOperator(lhs)
	res.AddOperator(rhs)
	return res
}

// Scale returns s * e: a new expression with every operator in every
// category replaced by its s-scaled copy. Categories are preserved.
func Scale(s float64, e *Expression) *Expression {
	res := NewExpression(e.ex)
	for _, op := range e.temporal {
		res.AddOperator(ScaleOp(s, op))
	}
	for _, op := range e.implicit {
		res.AddOperator(ScaleOp(s, op))
	}
	for _, op := range e.explicit {
		res.AddOperator(ScaleOp(s, op))
	}
	return res
}

// Sub returns lhs - rhs
func Sub(lhs, rhs *Expression) *Expression {
	return Add(lhs, Scale(-1, rhs))
}

// SubOp returns lhs - op
func SubOp(lhs *Expression, op Operator) *Expression {
	return AddOp(lhs, ScaleOp(-1, op))
}

// SubOps returns lhs - rhs as a fresh expression bound to the left
// operator's executor
func SubOps(lhs, rhs Operator) *Expression {
	return Combine(lhs, ScaleOp(-1, rhs))
}
