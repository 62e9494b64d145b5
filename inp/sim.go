// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global simulation data
type Data struct {
	Desc     string `json:"desc"`     // description of simulation
	Exec     string `json:"exec"`     // executor backend: "serial" or "threaded"
	Nworkers int    `json:"nworkers"` // number of workers for threaded dispatch; 0 => number of CPUs
}

// Domain holds the definition of the 1D finite volume grid
type Domain struct {
	Ncells   int     `json:"ncells"`   // number of cells
	Xmin     float64 `json:"xmin"`     // left boundary coordinate
	Xmax     float64 `json:"xmax"`     // right boundary coordinate
	Periodic bool    `json:"periodic"` // periodic boundaries
	IniFunc  string  `json:"inifunc"`  // name of function with initial values u(x,0)
}

// Dx returns the cell size
func (o *Domain) Dx() float64 {
	return (o.Xmax - o.Xmin) / float64(o.Ncells)
}

// X returns the centre coordinate of cell i
func (o *Domain) X(i int) float64 {
	return o.Xmin + (float64(i)+0.5)*o.Dx()
}

// SolverData holds time integration control data
type SolverData struct {
	Type string  `json:"type"` // integrator type: "euler" or "rk4"
	Dt   float64 `json:"dt"`   // time step size
	Tf   float64 `json:"tf"`   // final time
}

// OpData holds the definition of one operator (term) of the equation
type OpData struct {
	Type  string   `json:"type"`  // operator variant name; e.g. "source", "laplacian"
	Coeff float64  `json:"coeff"` // scalar coefficient; missing means one, explicit zero is kept
	Func  string   `json:"func"`  // [optional] name of function in "functions" database
	Prms  dbf.Params `json:"prms"`  // [optional] parameters; e.g. {"n":"lam", "v":0.5}
}

// UnmarshalJSON decodes one operator definition. The coefficient defaults to
// one only when the key is absent from the file.
func (o *OpData) UnmarshalJSON(b []byte) error {
	type rawOpData OpData
	raw := rawOpData{Coeff: 1}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*o = OpData(raw)
	return nil
}

// GetPrm returns the value of a named parameter or a default value
func (o *OpData) GetPrm(name string, defaultVal float64) float64 {
	for _, p := range o.Prms {
		if p.N == name {
			return p.V
		}
	}
	return defaultVal
}

// Simulation holds all simulation input data
type Simulation struct {
	Data      Data       `json:"data"`      // global data
	Domain    Domain     `json:"domain"`    // grid definition
	Solver    SolverData `json:"solver"`    // time integration control
	Operators []*OpData  `json:"operators"` // the terms of the equation
	Functions FuncsData  `json:"functions"` // database of named t/x functions
}

// ReadSim reads a simulation input file. Any inconsistency in the file is a
// configuration error and aborts the run.
func ReadSim(filename string, verbose bool) *Simulation {

	// read and parse
	b, err := io.ReadFile(filename)
	if err != nil {
		chk.Panic("cannot read simulation input file %q:\n%v", filename, err)
	}
	var o Simulation
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("cannot parse simulation input file %q:\n%v", filename, err)
	}

	// defaults
	if o.Data.Exec == "" {
		o.Data.Exec = "serial"
	}
	if o.Solver.Type == "" {
		o.Solver.Type = "euler"
	}

	// consistency
	if o.Domain.Ncells < 1 {
		chk.Panic("simulation %q must define a domain with at least one cell (ncells=%d)", filename, o.Domain.Ncells)
	}
	if o.Domain.Xmax <= o.Domain.Xmin {
		chk.Panic("simulation %q has an empty domain: xmin=%g xmax=%g", filename, o.Domain.Xmin, o.Domain.Xmax)
	}

	// message
	if verbose {
		io.Pf("%v\n", &o)
	}
	return &o
}

// String prints a summary of the simulation data
func (o *Simulation) String() string {
	l := io.Sf("desc      = %q\n", o.Data.Desc)
	l += io.Sf("exec      = %q (nworkers=%d)\n", o.Data.Exec, o.Data.Nworkers)
	l += io.Sf("domain    = %d cells in [%g,%g] (periodic=%v)\n", o.Domain.Ncells, o.Domain.Xmin, o.Domain.Xmax, o.Domain.Periodic)
	l += io.Sf("solver    = %q with dt=%g tf=%g\n", o.Solver.Type, o.Solver.Dt, o.Solver.Tf)
	l += io.Sf("operators =")
	for _, od := range o.Operators {
		l += io.Sf(" %s(coeff=%g)", od.Type, od.Coeff)
	}
	return l
}
