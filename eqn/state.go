// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import "github.com/cpmech/gofvm/fld"

// State holds the shared solver context read by operator kernels during
// evaluation. One State is allocated per simulation and the same pointer is
// handed to every kernel and to the time integrator; kernels read it,
// integrators advance it.
type State struct {

	// current time step
	T  float64 // current time
	Dt float64 // current time increment

	// solution
	U *fld.Field[float64] // cell-centred solution values

	// 1D finite volume grid
	Dx       float64 // cell size
	Periodic bool    // periodic domain; ghost values below are ignored

	// ghost cells adjacent to the domain boundaries; set by boundary
	// conditions or by a completed halo exchange before evaluation
	GhostL float64 // value of the cell left of the first cell
	GhostR float64 // value of the cell right of the last cell
}

// Ncells returns the number of cells of the solution buffer
func (o *State) Ncells() int { return o.U.Size() }
