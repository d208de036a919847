// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mrbuche/conspire.rs-sub002/msolid"
)

// MatData holds material data
//  Note: either Model or Flow must be given
type MatData struct {
	Name  string     `json:"name"`  // name of material
	Desc  string     `json:"desc"`  // description of material
	Model string     `json:"model"` // name of primitive model. ex: hencky, neo-hookean
	Flow  string     `json:"flow"`  // name of flow rule. ex: viscoplastic
	Prms  dbf.Params `json:"prms"`  // parameters
}

// MatsData is a set of materials
type MatsData []*MatData

// Get returns material by name
func (o MatsData) Get(name string) (mat *MatData, err error) {
	for _, m := range o {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, chk.Err("cannot find material named %q", name)
}

// GetModel allocates and initialises the primitive model of a material
func (o MatsData) GetModel(name string) (mdl msolid.Primitive, err error) {
	mat, err := o.Get(name)
	if err != nil {
		return
	}
	if mat.Model == "" {
		return nil, chk.Err("material %q has no model", name)
	}
	mdl, err = msolid.GetModel(mat.Model, mat.Prms)
	if err != nil {
		return nil, chk.Err("material %q: %w", name, err)
	}
	return
}

// GetFlow allocates and initialises the flow rule of a material
func (o MatsData) GetFlow(name string) (flow msolid.Flow, err error) {
	mat, err := o.Get(name)
	if err != nil {
		return
	}
	if mat.Flow == "" {
		return nil, chk.Err("material %q has no flow rule", name)
	}
	flow, err = msolid.GetFlow(mat.Flow, mat.Prms)
	if err != nil {
		return nil, chk.Err("material %q: %w", name, err)
	}
	return
}
