// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements finite-strain constitutive models for solids and the
// material-point driver that traces their response under prescribed loads
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// Model defines the interface for finite-strain solid models
//  Note: all quantities are passed by value; models never mutate their inputs
type Model interface {
	Name() string                                                 // name of model, including sub-models if composed
	InitState() *State                                            // initial internal state; nil if stateless
	CauchyStress(F ften.Ten2, s *State) (σ ften.Ten2, err error)  // σ(F, s)
	CauchyTangent(F ften.Ten2, s *State) (D ften.Ten4, err error) // ∂σ/∂F at fixed state
	Evolution(F ften.Ten2, s *State) (rate *State, err error)     // rate of internal state (same shape as s)
}

// Hyperelastic defines models with a stored energy function
type Hyperelastic interface {
	Model
	Energy(F ften.Ten2, s *State) (ψ float64, err error) // Helmholtz free energy per unit reference volume
}

// PiolaModel defines models that compute the first Piola-Kirchhoff stress natively
type PiolaModel interface {
	Model
	FirstPiola(F ften.Ten2, s *State) (P ften.Ten2, err error)        // P(F, s)
	FirstPiolaTangent(F ften.Ten2, s *State) (A ften.Ten4, err error) // ∂P/∂F at fixed state
}

// Primitive defines parameterised models that can be allocated by name
type Primitive interface {
	Model
	Init(prms dbf.Params) error      // initialises model with parameters
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
}

// Flow defines viscoplastic flow rules driven by the Mandel stress
type Flow interface {
	Name() string
	Init(prms dbf.Params) error
	GetPrms(example bool) dbf.Params
	YieldStress(eqps float64) float64                                       // Y(εp)
	Rate(M ften.Ten2, eqps float64) (Dp ften.Ten2, rate float64, err error) // plastic stretching and εp rate
}

// allocators holds all available primitive models; modelname => allocator
var allocators = map[string]func() Primitive{}

// flowAllocators holds all available flow rules; flowname => allocator
var flowAllocators = map[string]func() Flow{}

// New allocates a primitive model by name
func New(name string) (model Primitive, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find solid model named %q", name)
	}
	return allocator(), nil
}

// NewFlow allocates a flow rule by name
func NewFlow(name string) (flow Flow, err error) {
	allocator, ok := flowAllocators[name]
	if !ok {
		return nil, chk.Err("cannot find flow rule named %q", name)
	}
	return allocator(), nil
}

// GetModel allocates and initialises a primitive model
func GetModel(name string, prms dbf.Params) (model Primitive, err error) {
	model, err = New(name)
	if err != nil {
		return
	}
	err = model.Init(prms)
	if err != nil {
		return nil, chk.Err("%s: %w", name, err)
	}
	return
}

// GetFlow allocates and initialises a flow rule
func GetFlow(name string, prms dbf.Params) (flow Flow, err error) {
	flow, err = NewFlow(name)
	if err != nil {
		return
	}
	err = flow.Init(prms)
	if err != nil {
		return nil, chk.Err("%s: %w", name, err)
	}
	return
}

// ModelNames returns the names of all registered primitive models
func ModelNames() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// register adds an allocator to the database; name collisions are programming errors
func register(name string, allocator func() Primitive) {
	if _, ok := allocators[name]; ok {
		chk.Panic("solid model named %q is already registered", name)
	}
	allocators[name] = allocator
}

// registerFlow adds a flow allocator to the database
func registerFlow(name string, allocator func() Flow) {
	if _, ok := flowAllocators[name]; ok {
		chk.Panic("flow rule named %q is already registered", name)
	}
	flowAllocators[name] = allocator
}

// readPrms reads parameters into variables, validating that required ones are positive
//  Note: names ending with '?' are optional and may be zero
func readPrms(model string, prms dbf.Params, names []string, vars []*float64) (err error) {
	found := make([]bool, len(names))
	for _, p := range prms {
		matched := false
		for i, name := range names {
			n := name
			if n[len(n)-1] == '?' {
				n = n[:len(n)-1]
			}
			if p.N == n {
				*vars[i] = p.V
				found[i] = true
				matched = true
			}
		}
		if !matched {
			return chk.Err("%s: parameter named %q is invalid", model, p.N)
		}
	}
	for i, name := range names {
		if name[len(name)-1] == '?' {
			if *vars[i] < 0 {
				return chk.Err("%s: parameter %q must be non-negative. %g is invalid", model, name[:len(name)-1], *vars[i])
			}
			continue
		}
		if !found[i] {
			return chk.Err("%s: parameter %q is missing", model, name)
		}
		if *vars[i] <= 0 {
			return chk.Err("%s: parameter %q must be positive. %g is invalid", model, name, *vars[i])
		}
	}
	return
}
