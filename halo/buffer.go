// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package halo implements the two-phase buffer exchange used when a field
// spans multiple ranks: per-rank send/receive buffers are initialised,
// started (non-blocking), polled or waited upon, and finalised. Completed
// receive buffers must be visible before any field read that depends on
// cross-rank boundary data.
package halo

import "github.com/cpmech/gosl/chk"

// Buffer holds one half-duplex set of per-rank exchange buffers
type Buffer struct {
	data [][]float64 // one buffer per rank
	name string      // active communication name; empty when idle
}

// NewBuffer returns a new buffer set with the given per-rank sizes
func NewBuffer(sizes []int) *Buffer {
	o := &Buffer{data: make([][]float64, len(sizes))}
	for r, sz := range sizes {
		o.data[r] = make([]float64, sz)
	}
	return o
}

// Nranks returns the number of ranks this buffer set communicates with
func (o *Buffer) Nranks() int { return len(o.data) }

// Active tells whether a communication is currently initialised
func (o *Buffer) Active() bool { return o.name != "" }

// InitComm initialises a named communication. The previous communication
// must have been finalised.
func (o *Buffer) InitComm(name string) {
	if o.name != "" {
		chk.Panic("cannot initialise communication %q because %q is still active", name, o.name)
	}
	if name == "" {
		chk.Panic("communication name must not be empty")
	}
	o.name = name
}

// RankSpan returns the buffer view for one rank
func (o *Buffer) RankSpan(rank int) []float64 {
	if rank < 0 || rank >= len(o.data) {
		chk.Panic("cannot get buffer for rank %d with %d ranks", rank, len(o.data))
	}
	return o.data[rank]
}

// FinaliseComm finalises the active communication
func (o *Buffer) FinaliseComm() {
	if o.name == "" {
		chk.Panic("cannot finalise communication because none is active")
	}
	o.name = ""
}
