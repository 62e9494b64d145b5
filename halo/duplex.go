// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halo

import "github.com/cpmech/gosl/chk"

// Transport performs the actual non-blocking data movement between ranks.
// Implementations: NullTransport (single rank) and PairTransport
// (two endpoints within one process); an MPI-backed transport belongs to
// the surrounding distributed runtime.
type Transport interface {
	Start(send, recv *Buffer) // begins the non-blocking exchange
	IsComplete() bool         // polls for completion
	Wait()                    // blocks until completion
}

// Duplex pairs one send and one receive buffer set for full-duplex,
// non-blocking exchange through a transport
type Duplex struct {
	send    *Buffer   // data leaving this rank
	recv    *Buffer   // data arriving at this rank
	tr      Transport // the data mover
	started bool      // Start has been called for the active communication
}

// NewDuplex returns a new duplex exchange with the given per-rank
// send/receive sizes
func NewDuplex(tr Transport, sendSizes, recvSizes []int) *Duplex {
	return &Duplex{send: NewBuffer(sendSizes), recv: NewBuffer(recvSizes), tr: tr}
}

// InitComm initialises a named communication on both directions
func (o *Duplex) InitComm(name string) {
	o.send.InitComm(name)
	o.recv.InitComm(name)
	o.started = false
}

// SendSpan returns the send buffer view for one rank; fill it before Start
func (o *Duplex) SendSpan(rank int) []float64 { return o.send.RankSpan(rank) }

// RecvSpan returns the receive buffer view for one rank; read it only after
// completion
func (o *Duplex) RecvSpan(rank int) []float64 { return o.recv.RankSpan(rank) }

// StartComm starts the non-blocking exchange
func (o *Duplex) StartComm() {
	if !o.send.Active() {
		chk.Panic("cannot start exchange before InitComm")
	}
	if o.started {
		chk.Panic("cannot start exchange %q twice", o.send.name)
	}
	o.started = true
	o.tr.Start(o.send, o.recv)
}

// IsComplete polls whether the exchange has completed
func (o *Duplex) IsComplete() bool {
	if !o.started {
		return false
	}
	return o.tr.IsComplete()
}

// WaitComplete blocks until the exchange has completed
func (o *Duplex) WaitComplete() {
	if !o.started {
		chk.Panic("cannot wait for exchange that has not been started")
	}
	o.tr.Wait()
}

// FinaliseComm finalises the communication; the exchange must be complete
func (o *Duplex) FinaliseComm() {
	if o.started && !o.tr.IsComplete() {
		chk.Panic("cannot finalise exchange %q before completion", o.send.name)
	}
	o.send.FinaliseComm()
	o.recv.FinaliseComm()
	o.started = false
}
