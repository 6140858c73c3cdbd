// Copyright 2026 RW Penney. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spfpm

import (
	"math/big"
)

// Sqrt returns the square root of x.
//
// The function panics with an ErrDomain error if x < 0.
func (x *Num) Sqrt() *Num {
	if x.sv.Sign() < 0 {
		panic(ErrDomain.New("square root of negative number"))
	}
	if x.sv.Sign() == 0 {
		return x
	}

	// Crude initial estimate: one doubling per two bits of the scaled
	// value approximates the root to within a factor of two.
	shift := uint(x.fam.frac/2) + uint((x.sv.BitLen()+1)/2)
	rt := x.fam.num(new(big.Int).Lsh(intOne, shift))

	// Newton iteration r <- r - (r - x/r)/2, until the correction is no
	// longer representable at this resolution.
	for {
		delta := rt.Sub(x.Div(rt)).DivInt(2)
		rt = rt.Sub(delta)
		if delta.IsZero() {
			return rt
		}
	}
}
