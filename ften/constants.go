// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ften

// constants
const (
	MINDET = 1e-300 // minimum absolute determinant for inversion
	EIGTOL = 1e-10  // relative tolerance to consider two eigenvalues repeated
)
