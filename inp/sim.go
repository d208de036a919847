// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/conspire.rs-sub002/msolid"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/conspire
	Plot   bool   `json:"plot"`   // generate figure after run
}

// IntegData holds data for the Runge-Kutta integrator
//  Note: zero values mean "use default"
type IntegData struct {
	Method string  `json:"method"` // embedded Runge-Kutta method of gosl/ode; e.g. "moeuler" or "dopri5"
	Atol   float64 `json:"atol"`   // absolute tolerance
	Rtol   float64 `json:"rtol"`   // relative tolerance
	IniH   float64 `json:"inih"`   // initial step size
	Hmin   float64 `json:"hmin"`   // minimum step size
	Hmax   float64 `json:"hmax"`   // maximum step size
	NmaxSS int     `json:"nmaxss"` // maximum number of substeps
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data                 `json:"data"`      // stores global simulation data
	Functions FuncsData            `json:"functions"` // stores all load functions
	Materials MatsData             `json:"materials"` // stores all materials
	Model     *ModelData           `json:"model"`     // composition tree of models
	Load      *LoadData            `json:"load"`      // applied load
	Times     []float64            `json:"times"`     // output times
	Solver    *msolid.SolverConfig `json:"solver"`    // Newton parameters
	Integ     IntegData            `json:"integ"`     // integrator parameters

	// derived
	DirOut string // directory to save results
	Key    string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasefiles bool) (o *Simulation, err error) {

	// new sim with default values
	o = &Simulation{Solver: msolid.NewSolverConfig()}

	// read file
	b, err := readFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q: %w", simfilepath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q: %w", simfilepath, err)
	}

	// filename key
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/conspire/" + fnkey
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %w", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// check
	if o.Model == nil {
		return nil, chk.Err("simulation file %q has no model", simfilepath)
	}
	if o.Load == nil {
		return nil, chk.Err("simulation file %q has no load", simfilepath)
	}
	if len(o.Times) < 2 {
		return nil, chk.Err("simulation file %q needs at least two times; %d given", simfilepath, len(o.Times))
	}
	return
}

// GetModel builds the model tree
func (o *Simulation) GetModel() (mdl msolid.Model, err error) {
	return o.Model.Build(o.Materials)
}

// GetLoad builds the applied load
func (o *Simulation) GetLoad() (load msolid.AppliedLoad, err error) {
	return o.Load.Build(o.Functions)
}

// GetIntegConfig returns the integrator parameters; zero values in Integ are replaced by defaults
func (o *Simulation) GetIntegConfig() (conf *msolid.IntegConfig) {
	method := o.Integ.Method
	if method == "" {
		method = "dopri5"
	}
	conf = msolid.NewIntegConfig(method)
	atol, rtol := conf.Tols()
	if o.Integ.Atol > 0 {
		atol = o.Integ.Atol
	}
	if o.Integ.Rtol > 0 {
		rtol = o.Integ.Rtol
	}
	conf.SetTols(atol, rtol)
	if o.Integ.IniH > 0 {
		conf.IniH = o.Integ.IniH
	}
	if o.Integ.Hmin > 0 {
		conf.Hmin = o.Integ.Hmin
	}
	if o.Integ.Hmax > 0 {
		conf.Hmax = o.Integ.Hmax
	}
	if o.Integ.NmaxSS > 0 {
		conf.NmaxSS = o.Integ.NmaxSS
	}
	return
}

// GetDriver builds the model, the load and the driver
func (o *Simulation) GetDriver() (drv *msolid.Driver, err error) {
	mdl, err := o.GetModel()
	if err != nil {
		return
	}
	load, err := o.GetLoad()
	if err != nil {
		return
	}
	return msolid.NewDriver(mdl, load, o.Solver, o.GetIntegConfig()), nil
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// readFile reads a file, converting the panic of io.ReadFile into an error
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%v", r)
		}
	}()
	b = io.ReadFile(fn)
	return
}
