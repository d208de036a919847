// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, load, myfunction1, etc.
	Type string     `json:"type"` // type of function. ex: cte, rmp, pts
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData is a set of functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "zero" or "none" return the zero function
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "zero" || name == "none" {
		return &dbf.Zero, nil
	}
	for _, f := range o {
		if f.Name == name {
			return newFunc(f.Type, f.Prms)
		}
	}
	return nil, chk.Err("cannot find function named %q", name)
}

// newFunc allocates a dbf function, converting its panics into errors
func newFunc(typ string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot allocate function of type %q: %v", typ, r)
		}
	}()
	fcn = dbf.New(typ, prms)
	return
}
