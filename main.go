// Copyright 2017 The Gofvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"

	"github.com/cpmech/gofvm/eqn"
	"github.com/cpmech/gofvm/fld"
	"github.com/cpmech/gofvm/inp"
	_ "github.com/cpmech/gofvm/ops"
	"github.com/cpmech/gofvm/par"
	"github.com/cpmech/gofvm/tin"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("\nERROR: %v\n", err)
				io.Pf("See location of error below:\n")
				chk.Verbose = true
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "data/decay64", ".sim", true)
	verbose := io.ArgToBool(1, true)
	root := mpi.Rank() == 0

	// message
	if root && verbose {
		io.PfWhite("\nGofvm -- Go Finite Volume Method\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// simulation input
	sim := inp.ReadSim(fnamepath, root && verbose)

	// executor
	var ex par.Executor
	switch sim.Data.Exec {
	case "serial":
		ex = par.Serial()
	case "threaded":
		ex = par.Threaded(sim.Data.Nworkers)
	default:
		chk.Panic("executor %q is not available", sim.Data.Exec)
	}

	// state with initial values
	st := &eqn.State{
		Dt:       sim.Solver.Dt,
		Dx:       sim.Domain.Dx(),
		Periodic: sim.Domain.Periodic,
		U:        fld.New[float64](ex, sim.Domain.Ncells),
	}
	if sim.Domain.IniFunc != "" {
		fcn := sim.Functions.GetOrPanic(sim.Domain.IniFunc)
		uini := make([]float64, sim.Domain.Ncells)
		for i := range uini {
			uini[i] = fcn.F(0, []float64{sim.Domain.X(i)})
		}
		fld.SetField(st.U, uini)
	}

	// equation and integrator
	e := eqn.NewExpressionFromData(sim, st, ex)
	ig := tin.NewIntegrator(sim)

	// run
	err := tin.Run(ig, e, st, sim.Solver.Tf, root && verbose)
	if err != nil {
		chk.Panic("simulation failed:\n%v", err)
	}

	// summary
	if root && verbose {
		uh := st.U.CopyToHost().Span()
		io.Pf("\n")
		io.Pfblue("final time = %g\n", st.T)
		io.Pfblue("norm(u)    = %g\n", la.VecNorm(uh))
		io.Pfblue("operators  = %d (%d explicit)\n", e.Size(), len(e.ExplicitOperators()))
	}
}
