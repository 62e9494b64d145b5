// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fld

import "github.com/cpmech/gosl/chk"

// Fill sets every element of the field to value
func Fill[T Scalar](o *Field[T], value T) {
	FillRange(o, value, 0, o.Size())
}

// FillRange sets every element in [start,end) to value
func FillRange[T Scalar](o *Field[T], value T, start, end int) {
	if start < 0 || end > o.Size() || start > end {
		chk.Panic("cannot fill range [%d,%d) of field with size = %d", start, end, o.Size())
	}
	span := o.Span()
	o.ex.ParallelFor(start, end, func(i int) {
		span[i] = value
	})
}

// SetField copies elementwise from an external view of matching length
func SetField[T Scalar](o *Field[T], src []T) {
	if o.Size() != len(src) {
		chk.Panic("length mismatch: cannot set field with size = %d from span with length = %d", o.Size(), len(src))
	}
	span := o.Span()
	o.ex.ParallelFor(0, o.Size(), func(i int) {
		span[i] = src[i]
	})
}

// ScalarMul multiplies every element of the field by value, in place
func ScalarMul[T Scalar](o *Field[T], value T) {
	span := o.Span()
	o.ex.ParallelFor(0, o.Size(), func(i int) {
		span[i] *= value
	})
}

// binaryOp combines a and b elementwise into a. Lengths and executors are
// checked eagerly, before any dispatch happens.
func binaryOp[T Scalar](a, b *Field[T], op func(x, y T) T) {
	if a.Size() != b.Size() {
		chk.Panic("length mismatch: cannot combine fields with sizes %d and %d", a.Size(), b.Size())
	}
	if !a.Exec().Equal(b.Exec()) {
		chk.Panic("cannot combine fields with incompatible executors %q and %q", a.Exec(), b.Exec())
	}
	sa := a.Span()
	sb := b.Span()
	a.ex.ParallelFor(0, a.Size(), func(i int) {
		sa[i] = op(sa[i], sb[i])
	})
}

// Add performs a += b, elementwise
func Add[T Scalar](a, b *Field[T]) {
	binaryOp(a, b, func(x, y T) T { return x + y })
}

// Sub performs a -= b, elementwise
func Sub[T Scalar](a, b *Field[T]) {
	binaryOp(a, b, func(x, y T) T { return x - y })
}

// Mul performs a *= b, elementwise
func Mul[T Scalar](a, b *Field[T]) {
	binaryOp(a, b, func(x, y T) T { return x * y })
}
