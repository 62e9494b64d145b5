// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package par implements the executor abstraction: a token selecting where
// and how bulk parallel work runs, together with the dispatch primitives
// (ParallelFor and ParallelReduce) used by all buffer operations
package par

import (
	"runtime"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Kind defines the closed set of dispatch backends
type Kind int

const (
	KindSerial   Kind = iota // single-threaded host execution
	KindThreaded             // multi-threaded host execution (goroutines)
)

// String returns the name of the backend kind
func (o Kind) String() string {
	switch o {
	case KindSerial:
		return "serial"
	case KindThreaded:
		return "threaded"
	}
	return io.Sf("invalid(%d)", int(o))
}

// Executor identifies a dispatch strategy and memory residency class.
// It is immutable after creation and cheap to copy; all fields, terms and
// expressions that interoperate must share compatible executors.
type Executor struct {
	kind Kind // backend kind
	nw   int  // number of workers for threaded dispatch
}

// Serial returns a single-threaded host executor
func Serial() Executor {
	return Executor{kind: KindSerial, nw: 1}
}

// Threaded returns a multi-threaded host executor with nworkers goroutines
// per dispatch. nworkers ≤ 0 means runtime.NumCPU()
func Threaded(nworkers int) Executor {
	if nworkers <= 0 {
		nworkers = runtime.NumCPU()
	}
	return Executor{kind: KindThreaded, nw: nworkers}
}

// Kind returns the backend kind
func (o Executor) Kind() Kind { return o.kind }

// Nworkers returns the number of workers used by threaded dispatch
func (o Executor) Nworkers() int { return o.nw }

// Equal tells whether two executors share the same backend identity
func (o Executor) Equal(e Executor) bool { return o.kind == e.kind }

// String returns a description of this executor
func (o Executor) String() string {
	if o.kind == KindThreaded {
		return io.Sf("threaded(nw=%d)", o.nw)
	}
	return o.kind.String()
}

// ParallelFor applies body to every index in [start,end) exactly once.
// The order across indices is unspecified; the call returns only after all
// applications complete, so the mutated buffer may be read immediately.
func (o Executor) ParallelFor(start, end int, body func(i int)) {
	if start >= end {
		return
	}
	switch o.kind {

	// sequential dispatch
	case KindSerial:
		for i := start; i < end; i++ {
			body(i)
		}

	// chunked dispatch over goroutines
	case KindThreaded:
		n := end - start
		nw := o.nw
		if nw > n {
			nw = n
		}
		csize := n / nw
		extra := n % nw
		var wg sync.WaitGroup
		a := start
		for w := 0; w < nw; w++ {
			b := a + csize
			if w < extra {
				b++
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					body(i)
				}
			}(a, b)
			a = b
		}
		wg.Wait()

	default:
		chk.Panic("executor kind %q is not available", o.kind)
	}
}

// ParallelReduce maps every index in [start,end) through mapf and folds the
// results with the associative combiner, starting from init. Partial results
// of threaded chunks are folded in chunk order; nevertheless the grouping of
// floating point operations is backend-defined and callers must compare
// reduction results within a numeric tolerance, never bit-exactly.
func ParallelReduce[T any](ex Executor, start, end int, mapf func(i int) T, combine func(a, b T) T, init T) T {
	if start >= end {
		return init
	}
	switch ex.kind {

	case KindSerial:
		res := init
		for i := start; i < end; i++ {
			res = combine(res, mapf(i))
		}
		return res

	case KindThreaded:
		n := end - start
		nw := ex.nw
		if nw > n {
			nw = n
		}
		csize := n / nw
		extra := n % nw
		partials := make([]T, nw)
		var wg sync.WaitGroup
		a := start
		for w := 0; w < nw; w++ {
			b := a + csize
			if w < extra {
				b++
			}
			wg.Add(1)
			go func(w, lo, hi int) {
				defer wg.Done()
				res := mapf(lo)
				for i := lo + 1; i < hi; i++ {
					res = combine(res, mapf(i))
				}
				partials[w] = res
			}(w, a, b)
			a = b
		}
		wg.Wait()
		res := init
		for w := 0; w < nw; w++ {
			res = combine(res, partials[w])
		}
		return res
	}

	chk.Panic("executor kind %q is not available", ex.kind)
	return init
}
