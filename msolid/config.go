// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/chk"

// SolverConfig holds the parameters of Newton's method for nonlinear material-point problems
type SolverConfig struct {
	MaxIt     int     `json:"maxit"`     // maximum number of iterations
	Atol      float64 `json:"atol"`      // absolute tolerance on increments
	Rtol      float64 `json:"rtol"`      // relative tolerance on increments
	Ftol      float64 `json:"ftol"`      // tolerance on residual
	LinSearch bool    `json:"linsearch"` // use line search
	Verbose   bool    `json:"verbose"`   // show iterations
}

// NewSolverConfig returns the default Newton parameters
func NewSolverConfig() *SolverConfig {
	return &SolverConfig{
		MaxIt: 20,
		Atol:  1e-8,
		Rtol:  1e-8,
		Ftol:  1e-9,
	}
}

// prms returns the parameters of num.NlSolver
func (o *SolverConfig) prms() map[string]float64 {
	m := map[string]float64{
		"maxIt": float64(o.MaxIt),
		"atol":  o.Atol,
		"rtol":  o.Rtol,
		"ftol":  o.Ftol,
	}
	if o.LinSearch {
		m["linSearch"] = 1
	}
	return m
}

// check validates the parameters
func (o *SolverConfig) check() (err error) {
	if o.MaxIt < 1 {
		return chk.Err("maximum number of iterations must be positive. %d is invalid", o.MaxIt)
	}
	if o.Atol <= 0 || o.Rtol <= 0 || o.Ftol <= 0 {
		return chk.Err("tolerances must be positive. Atol=%g, Rtol=%g, Ftol=%g are invalid", o.Atol, o.Rtol, o.Ftol)
	}
	return
}

// IntegConfig holds the parameters of the embedded Runge-Kutta time integrator
//  The parameters are passed on to gosl/ode; Method is one of its embedded explicit
//  methods such as "moeuler" 2(1), "fehlberg4" 4(5) or "dopri5" 5(4)
type IntegConfig struct {
	Method  string  `json:"method"`  // name of method
	Hmin    float64 `json:"hmin"`    // minimum step size allowed
	Hmax    float64 `json:"hmax"`    // maximum step size allowed; 0 ⇒ no limit
	IniH    float64 `json:"inih"`    // initial step size
	NmaxSS  int     `json:"nmaxss"`  // maximum number of substeps
	Mmin    float64 `json:"mmin"`    // minimum step multiplier
	Mmax    float64 `json:"mmax"`    // maximum step multiplier
	Mfac    float64 `json:"mfac"`    // step multiplier (safety) factor
	Verbose bool    `json:"verbose"` // show accepted steps

	// tolerances
	atol float64 // absolute tolerance
	rtol float64 // relative tolerance
}

// NewIntegConfig returns the default integrator parameters
func NewIntegConfig(method string) (o *IntegConfig) {
	o = new(IntegConfig)
	o.Method = method
	o.Hmin = 1.0e-10
	o.IniH = 1.0e-4
	o.NmaxSS = 10000
	o.Mmin = 0.125
	o.Mmax = 5.0
	o.Mfac = 0.9
	o.SetTols(1e-6, 1e-6)
	return
}

// SetTols sets the absolute and relative tolerances
func (o *IntegConfig) SetTols(atol, rtol float64) {
	o.atol, o.rtol = atol, rtol
}

// Tols returns the absolute and relative tolerances
func (o *IntegConfig) Tols() (atol, rtol float64) {
	return o.atol, o.rtol
}

// check validates the parameters
func (o *IntegConfig) check() (err error) {
	if o.atol <= 1e-15 || o.rtol <= 0 {
		return chk.Err("tolerances must be positive. Atol=%g, Rtol=%g are invalid", o.atol, o.rtol)
	}
	if o.Hmin <= 0 || o.IniH < o.Hmin {
		return chk.Err("step sizes must satisfy 0 < Hmin ≤ IniH. Hmin=%g, IniH=%g are invalid", o.Hmin, o.IniH)
	}
	if o.Hmax > 0 && o.Hmax < o.Hmin {
		return chk.Err("maximum step size must not be smaller than Hmin. Hmax=%g is invalid", o.Hmax)
	}
	if o.NmaxSS < 1 {
		return chk.Err("maximum number of substeps must be positive. %d is invalid", o.NmaxSS)
	}
	if o.Mmin <= 0 || o.Mmin >= 1 || o.Mmax <= 1 || o.Mfac <= 0 || o.Mfac > 1 {
		return chk.Err("step multipliers are invalid. Mmin=%g, Mmax=%g, Mfac=%g", o.Mmin, o.Mmax, o.Mfac)
	}
	return
}
