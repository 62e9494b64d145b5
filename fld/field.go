// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fld implements executor-resident numeric buffers (fields) and the
// parallel element-wise algorithms operating on them
package fld

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofvm/par"
)

// Scalar defines the numeric types a field may hold
type Scalar interface {
	~float32 | ~float64
}

// Field holds a contiguous buffer of exactly size scalar values, resident
// per its executor. The size is immutable for the lifetime of the object.
// All element-wise mutation must happen inside an executor dispatch; ad-hoc
// sequential indexing is permitted only on a host-resident copy.
type Field[T Scalar] struct {
	ex   par.Executor // where operations on this field run
	data []T          // the buffer
}

// New returns a new field with the given size, optionally filled with a value
func New[T Scalar](ex par.Executor, size int, fillVal ...T) *Field[T] {
	if size < 0 {
		chk.Panic("cannot allocate field with negative size = %d", size)
	}
	o := &Field[T]{ex: ex, data: make([]T, size)}
	if len(fillVal) > 0 {
		Fill(o, fillVal[0])
	}
	return o
}

// Size returns the number of values in this field
func (o *Field[T]) Size() int { return len(o.data) }

// Exec returns the executor this field is resident on
func (o *Field[T]) Exec() par.Executor { return o.ex }

// Span returns the mutable element view of the buffer. The view is valid
// only for the lifetime of the field and must be mutated inside a dispatch.
func (o *Field[T]) Span() []T { return o.data }

// CopyToHost returns a host-resident (serial) field with identical contents.
// This performs a full buffer transfer; avoid calling it inside hot loops.
func (o *Field[T]) CopyToHost() *Field[T] {
	h := &Field[T]{ex: par.Serial(), data: make([]T, len(o.data))}
	copy(h.data, o.data)
	return h
}
