// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fld

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofvm/par"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_field01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field01. allocation, size, host copy")

	f := New[float64](par.Serial(), 5, 1.5)
	chk.IntAssert(f.Size(), 5)
	if !f.Exec().Equal(par.Serial()) {
		tst.Errorf("field must be resident on its executor")
	}
	if !EqualVal(f, 1.5) {
		tst.Errorf("fill value was not applied")
	}

	// the host copy is independent of the original
	h := f.CopyToHost()
	Fill(f, -1.0)
	if !EqualVal(h, 1.5) {
		tst.Errorf("host copy must not alias the original buffer")
	}
	if !EqualVal(f, -1.0) {
		tst.Errorf("fill after copy was not applied")
	}
}

func Test_field02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field02. fill, scalarMul, add")

	// f = [2,2,2,2]
	f := New[float64](par.Serial(), 4)
	Fill(f, 2.0)
	chk.Vector(tst, "f after fill", 1e-17, f.CopyToHost().Span(), []float64{2, 2, 2, 2})

	// f = [6,6,6,6]
	ScalarMul(f, 3.0)
	chk.Vector(tst, "f after scalarMul", 1e-17, f.CopyToHost().Span(), []float64{6, 6, 6, 6})

	// f = [7,7,7,7]
	g := New[float64](par.Serial(), 4, 1.0)
	Add(f, g)
	chk.Vector(tst, "f after add", 1e-17, f.CopyToHost().Span(), []float64{7, 7, 7, 7})
	if !EqualVal(f, 7.0) {
		tst.Errorf("equal(f, 7.0) must be true")
	}
}

func Test_field03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field03. zero-length buffers")

	f := New[float64](par.Serial(), 0)
	Fill(f, 123.0)
	if !EqualVal(f, 123.0) {
		tst.Errorf("equal on empty buffer must be true for every value")
	}
	g := New[float64](par.Serial(), 0)
	if !Equal(f, g) {
		tst.Errorf("two empty buffers must be equal")
	}
}

func Test_field04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field04. add followed by sub reconstructs the operand")

	n := 33
	ex := par.Threaded(4)
	a := New[float64](ex, n)
	b := New[float64](ex, n, 1.0)
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = 1.0 + float64(i%7)*0.5
	}
	SetField(a, vals)

	Add(a, b)
	Sub(a, b)
	if !EqualSpan(a, vals) {
		tst.Errorf("add followed by sub must reconstruct the original exactly")
	}
}

func Test_field05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field05. range fill and setField")

	f := New[float64](par.Serial(), 6)
	FillRange(f, 1.0, 2, 4)
	chk.Vector(tst, "f after fillRange", 1e-17, f.CopyToHost().Span(), []float64{0, 0, 1, 1, 0, 0})

	SetField(f, []float64{9, 8, 7, 6, 5, 4})
	chk.Vector(tst, "f after setField", 1e-17, f.CopyToHost().Span(), []float64{9, 8, 7, 6, 5, 4})
}

func Test_field06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field06. length mismatch aborts the operation")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("binary operation on mismatched lengths must panic")
		}
	}()
	a := New[float64](par.Serial(), 4)
	b := New[float64](par.Serial(), 5)
	Add(a, b)
}

func Test_field07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field07. comparisons on mismatched lengths are false")

	a := New[float64](par.Serial(), 3, 1.0)
	b := New[float64](par.Serial(), 4, 1.0)
	if Equal(a, b) {
		tst.Errorf("buffers with different lengths must not be equal")
	}
	if EqualSpan(a, []float64{1, 1}) {
		tst.Errorf("buffer and span with different lengths must not be equal")
	}

	// float32 buffers
	c := New[float32](par.Serial(), 3, 2.0)
	if !EqualVal(c, 2.0) {
		tst.Errorf("float32 equality failed")
	}
}
