// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteTable writes results at the selected times to <dirout>/<fnkey>.res
//  keys -- columns to be written; use nil to write all keys
//  Note: the file can be read back with io.ReadTable
func WriteTable(dirout, fnkey string, keys []string) (fn string, err error) {

	// columns
	if keys == nil {
		keys = Keys()
	}
	cols := make([][]float64, len(keys))
	for i, key := range keys {
		cols[i], err = GetRes(key)
		if err != nil {
			return
		}
	}

	// header and rows
	var buf bytes.Buffer
	for _, key := range keys {
		io.Ff(&buf, "%23s", key)
	}
	io.Ff(&buf, "\n")
	for k := range TimeInds {
		for i := range keys {
			io.Ff(&buf, "%23.15e", cols[i][k])
		}
		io.Ff(&buf, "\n")
	}

	// save file
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create directory %q: %w", dirout, err)
	}
	fn = filepath.Join(dirout, fnkey+".res")
	err = os.WriteFile(fn, buf.Bytes(), 0644)
	if err != nil {
		return "", chk.Err("cannot write file %q: %w", fn, err)
	}
	return
}
