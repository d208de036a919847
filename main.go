// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/conspire.rs-sub002/inp"
	"github.com/mrbuche/conspire.rs-sub002/msolid"
	"github.com/mrbuche/conspire.rs-sub002/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	alias := io.ArgToString(3, "")

	// message
	if verbose {
		io.PfWhite("\nConspire -- finite-strain material point driver\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"word to add to results", "alias", alias,
		))
	}

	// run simulation
	err := run(fnamepath, alias, erasePrev, verbose)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

// run reads the simulation file, runs the driver and saves results
func run(fnamepath, alias string, erasePrev, verbose bool) (err error) {

	// input data
	sim, err := inp.ReadSim(fnamepath, alias, erasePrev)
	if err != nil {
		return
	}
	drv, err := sim.GetDriver()
	if err != nil {
		return
	}
	drv.Verbose = verbose
	if verbose {
		io.Pf("model: %s\nload:  %s\n\n", drv.Mdl.Name(), drv.Load.Name())
	}

	// run
	err = drv.Run(sim.Times)
	if verbose {
		io.Pf("\nnacc=%d nrej=%d nfeval=%d nsolves=%d nit=%d\n", drv.Naccepted, drv.Nrejected, drv.Nfeval, drv.Nsolves, drv.Nit)
	}
	if err != nil {
		return
	}

	// results
	err = out.Start(drv)
	if err != nil {
		return
	}
	fn, err := out.WriteTable(sim.DirOut, sim.Key, nil)
	if err != nil {
		return
	}
	if verbose {
		io.Pfgreen("file <%s> written\n", fn)
	}

	// plot
	if sim.Data.Plot {
		var plr msolid.Plotter
		plr.SetFig(false, false, 1.5, 400, sim.DirOut, sim.Key)
		plr.Title(drv.Mdl.Name())
		err = plr.Plot(msolid.PlotSet3, drv, true, true)
	}
	return
}
