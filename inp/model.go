// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mrbuche/conspire.rs-sub002/msolid"
)

// ModelData holds a node of the composition tree of models
//  Leaves:
//   {"mat": "rubber"}
//  Combinators:
//   {"comb": "additive",       "items": [A, B]}
//   {"comb": "multelastic",    "items": [A, B]}
//   {"comb": "multiplicative", "items": [A], "flow": "vp"}
type ModelData struct {
	Mat   string       `json:"mat"`   // material name (leaf)
	Comb  string       `json:"comb"`  // combinator: additive, multiplicative or multelastic
	Items []*ModelData `json:"items"` // sub-models
	Flow  string       `json:"flow"`  // material name of flow rule (multiplicative)
}

// Build allocates the model tree
func (o *ModelData) Build(mats MatsData) (mdl msolid.Model, err error) {

	// leaf
	if o.Comb == "" {
		if o.Mat == "" {
			return nil, chk.Err("model data needs either mat or comb")
		}
		return mats.GetModel(o.Mat)
	}

	// sub-models
	nitems := 2
	if o.Comb == "multiplicative" {
		nitems = 1
	}
	if len(o.Items) != nitems {
		return nil, chk.Err("%s combinator needs %d items; %d given", o.Comb, nitems, len(o.Items))
	}
	sub := make([]msolid.Model, nitems)
	for i, item := range o.Items {
		if item == nil {
			return nil, chk.Err("%s combinator: item %d is empty", o.Comb, i)
		}
		sub[i], err = item.Build(mats)
		if err != nil {
			return nil, chk.Err("%s combinator: %w", o.Comb, err)
		}
	}

	// combinator
	switch o.Comb {
	case "additive":
		return msolid.NewAdditive(sub[0], sub[1]), nil
	case "multelastic":
		me, err := msolid.NewMultiplicativeElastic(sub[0], sub[1])
		if err != nil {
			return nil, err
		}
		return me, nil
	case "multiplicative":
		if o.Flow == "" {
			return nil, chk.Err("multiplicative combinator needs a flow rule")
		}
		flow, err := mats.GetFlow(o.Flow)
		if err != nil {
			return nil, chk.Err("multiplicative combinator: %w", err)
		}
		return msolid.NewMultiplicative(sub[0], flow), nil
	}
	return nil, chk.Err("cannot find combinator named %q", o.Comb)
}

// LoadData holds the applied load
//  Kinds and functions:
//   "uniaxial-stress" -- [stretch]
//   "biaxial-stress"  -- [stretch1, stretch2]
//   "simple-shear"    -- [shear]
type LoadData struct {
	Kind  string   `json:"kind"`  // kind of load
	Funcs []string `json:"funcs"` // names of functions
}

// Build allocates the applied load
func (o *LoadData) Build(funcs FuncsData) (load msolid.AppliedLoad, err error) {
	nfcns := map[string]int{"uniaxial-stress": 1, "biaxial-stress": 2, "simple-shear": 1}
	n, ok := nfcns[o.Kind]
	if !ok {
		return nil, chk.Err("cannot find load named %q", o.Kind)
	}
	if len(o.Funcs) != n {
		return nil, chk.Err("%s load needs %d functions; %d given", o.Kind, n, len(o.Funcs))
	}
	fcns := make([]dbf.T, n)
	for i, name := range o.Funcs {
		fcns[i], err = funcs.Get(name)
		if err != nil {
			return nil, chk.Err("%s load: %w", o.Kind, err)
		}
	}
	switch o.Kind {
	case "uniaxial-stress":
		return &msolid.UniaxialStress{Stretch: fcns[0]}, nil
	case "biaxial-stress":
		return &msolid.BiaxialStress{Stretch1: fcns[0], Stretch2: fcns[1]}, nil
	}
	return &msolid.SimpleShear{Shear: fcns[0]}, nil
}
