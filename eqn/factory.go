// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofvm/inp"
	"github.com/cpmech/gofvm/par"
)

// AllocatorType defines a function that allocates an operator variant
type AllocatorType func(sim *inp.Simulation, od *inp.OpData, st *State, ex par.Executor) Operator

// SetAllocator sets a new callback function to allocate an operator.
// Each variant registers itself exactly once, at initialisation time;
// registering the same name twice is a configuration error.
func SetAllocator(opName string, fcn AllocatorType) {
	if _, ok := allocators[opName]; ok {
		chk.Panic("cannot set allocator for operator %q because it exists already", opName)
	}
	allocators[opName] = fcn
}

// GetAllocator gets the callback function to allocate an operator.
// Unknown names abort the run: continuing with an unselected term would
// silently corrupt the simulation.
func GetAllocator(opName string) AllocatorType {
	if fcn, ok := allocators[opName]; ok {
		return fcn
	}
	chk.Panic("cannot find allocator for operator %q in factory with %d operators registered", opName, len(allocators))
	return nil
}

// NumAllocators returns the number of registered operator variants
func NumAllocators() int { return len(allocators) }

// NewFromData allocates one operator from its input definition
func NewFromData(sim *inp.Simulation, od *inp.OpData, st *State, ex par.Executor) Operator {
	return GetAllocator(od.Type)(sim, od, st, ex)
}

// NewExpressionFromData assembles the whole equation defined in the input
// file, in file order, bound to the given executor
func NewExpressionFromData(sim *inp.Simulation, st *State, ex par.Executor) *Expression {
	res := NewExpression(ex)
	for _, od := range sim.Operators {
		res.AddOperator(NewFromData(sim, od, st, ex))
	}
	return res
}

// allocators holds all operator allocators
var allocators = make(map[string]AllocatorType)
