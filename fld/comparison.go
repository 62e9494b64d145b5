// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fld

// Comparison utilities. All comparisons copy the field(s) to host residency
// first and use the scalar's native equality, with no tolerance. They are
// meant for exact test fixtures (e.g. post-fill checks); callers comparing
// post-arithmetic results should use tolerance-based checks instead.

// EqualVal tells whether every element of the field equals value
func EqualVal[T Scalar](o *Field[T], value T) bool {
	h := o.CopyToHost()
	for _, v := range h.Span() {
		if v != value {
			return false
		}
	}
	return true
}

// Equal tells whether two fields hold exactly the same values.
// Fields with different lengths are not equal.
func Equal[T Scalar](a, b *Field[T]) bool {
	ha := a.CopyToHost()
	hb := b.CopyToHost()
	if ha.Size() != hb.Size() {
		return false
	}
	sa := ha.Span()
	sb := hb.Span()
	for i := 0; i < len(sa); i++ {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

// EqualSpan tells whether the field holds exactly the values of span
func EqualSpan[T Scalar](o *Field[T], span []T) bool {
	h := o.CopyToHost()
	if h.Size() != len(span) {
		return false
	}
	s := h.Span()
	for i := 0; i < len(s); i++ {
		if s[i] != span[i] {
			return false
		}
	}
	return true
}
