// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halo

import "github.com/cpmech/gosl/chk"

// NullTransport moves no data; single-rank runs use it so the exchange
// lifecycle stays identical whether or not the field is distributed
type NullTransport struct{}

// Start does nothing
func (o *NullTransport) Start(send, recv *Buffer) {}

// IsComplete always reports completion
func (o *NullTransport) IsComplete() bool { return true }

// Wait does nothing
func (o *NullTransport) Wait() {}

// PairTransport connects two duplex exchanges within one process, e.g. two
// subdomains of a decomposed field sharing memory. Each endpoint sends the
// buffer destined to its peer and receives into the slot of its peer.
type PairTransport struct {
	self    int            // this endpoint's rank index
	peer    int            // the other endpoint's rank index
	out     chan []float64 // messages to the peer
	in      chan []float64 // messages from the peer
	pending *Buffer        // receive buffer of the active exchange
	done    bool           // active exchange has been delivered
}

// NewPair returns two connected in-process transport endpoints with rank
// indices 0 and 1
func NewPair() (a, b *PairTransport) {
	ab := make(chan []float64, 1)
	ba := make(chan []float64, 1)
	a = &PairTransport{self: 0, peer: 1, out: ab, in: ba}
	b = &PairTransport{self: 1, peer: 0, out: ba, in: ab}
	return
}

// Start posts a copy of the peer-bound send buffer and records where the
// peer's data must be delivered
func (o *PairTransport) Start(send, recv *Buffer) {
	msg := append([]float64(nil), send.RankSpan(o.peer)...)
	o.out <- msg
	o.pending = recv
	o.done = false
}

// IsComplete polls for the peer's message and delivers it when available
func (o *PairTransport) IsComplete() bool {
	if o.done {
		return true
	}
	select {
	case msg := <-o.in:
		o.deliver(msg)
		return true
	default:
		return false
	}
}

// Wait blocks until the peer's message has been delivered
func (o *PairTransport) Wait() {
	if o.done {
		return
	}
	o.deliver(<-o.in)
}

func (o *PairTransport) deliver(msg []float64) {
	dst := o.pending.RankSpan(o.peer)
	if len(msg) != len(dst) {
		chk.Panic("length mismatch: peer sent %d values but receive buffer has %d", len(msg), len(dst))
	}
	copy(dst, msg)
	o.done = true
}
