// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ften

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ten4 holds the components of a fourth order tensor
type Ten4 [3][3][3][3]float64

// Dyad returns the dyadic product: Tijkl = aij bkl
func Dyad(a, b Ten2) (t Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					t[i][j][k][l] = a[i][j] * b[k][l]
				}
			}
		}
	}
	return
}

// DyadO returns the "over" product: Tijkl = aik bjl
func DyadO(a, b Ten2) (t Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					t[i][j][k][l] = a[i][k] * b[j][l]
				}
			}
		}
	}
	return
}

// DyadX returns the "cross" product: Tijkl = ail bjk
func DyadX(a, b Ten2) (t Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					t[i][j][k][l] = a[i][l] * b[j][k]
				}
			}
		}
	}
	return
}

// I4 returns the fourth order identity: Iijkl = δik δjl
func I4() Ten4 {
	return DyadO(I2(), I2())
}

// Add returns t + u
func (t Ten4) Add(u Ten4) (r Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					r[i][j][k][l] = t[i][j][k][l] + u[i][j][k][l]
				}
			}
		}
	}
	return
}

// Sub returns t - u
func (t Ten4) Sub(u Ten4) (r Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					r[i][j][k][l] = t[i][j][k][l] - u[i][j][k][l]
				}
			}
		}
	}
	return
}

// Scale returns s * t
func (t Ten4) Scale(s float64) (r Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					r[i][j][k][l] = s * t[i][j][k][l]
				}
			}
		}
	}
	return
}

// Ddot returns the double contraction with a second order tensor: rij = Tijkl bkl
func (t Ten4) Ddot(b Ten2) (r Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					r[i][j] += t[i][j][k][l] * b[k][l]
				}
			}
		}
	}
	return
}

// Mul returns the double contraction with another fourth order tensor: Rijmn = Tijkl Uklmn
func (t Ten4) Mul(u Ten4) (r Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for m := 0; m < 3; m++ {
				for n := 0; n < 3; n++ {
					var s float64
					for k := 0; k < 3; k++ {
						for l := 0; l < 3; l++ {
							s += t[i][j][k][l] * u[k][l][m][n]
						}
					}
					r[i][j][m][n] = s
				}
			}
		}
	}
	return
}

// Leg applies a to the leg-th index (0, 1, 2 or 3) of t. For example, with leg = 1:
//  Rijkl = ajq Tiqkl
func (t Ten4) Leg(leg int, a Ten2) (r Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					var s float64
					for q := 0; q < 3; q++ {
						switch leg {
						case 0:
							s += a[i][q] * t[q][j][k][l]
						case 1:
							s += a[j][q] * t[i][q][k][l]
						case 2:
							s += a[k][q] * t[i][j][q][l]
						case 3:
							s += a[l][q] * t[i][j][k][q]
						default:
							chk.Panic("leg index must be 0, 1, 2 or 3. %d is invalid", leg)
						}
					}
					r[i][j][k][l] = s
				}
			}
		}
	}
	return
}

// Trace01 returns the trace over the first two indices: rkl = Tiikl
func (t Ten4) Trace01() (r Ten2) {
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			r[k][l] = t[0][0][k][l] + t[1][1][k][l] + t[2][2][k][l]
		}
	}
	return
}

// Slot returns the second order tensor rij = Tijkl for fixed k and l
func (t Ten4) Slot(k, l int) (r Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[i][j][k][l]
		}
	}
	return
}

// SetSlot sets Tijkl = aij for fixed k and l
func (t *Ten4) SetSlot(k, l int, a Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j][k][l] = a[i][j]
		}
	}
}

// MaxDiff returns the maximum absolute difference between components of t and u
func (t Ten4) MaxDiff(u Ten4) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					res = math.Max(res, math.Abs(t[i][j][k][l]-u[i][j][k][l]))
				}
			}
		}
	}
	return
}
