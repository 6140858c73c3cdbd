// Copyright 2026 RW Penney. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spfpm

import (
	"math/big"
)

// Sin returns the sine of x, an angle in radians.
func (x *Num) Sin() *Num {
	ang, idx, reflect := x.angNorm()
	var sn *Num
	switch idx {
	case 0:
		sn = ang.rawQSine(false)
	case 1:
		sn = ang.rawQSine(true)
	case 2:
		sn = ang.rawQSine(false).Neg()
	case 3:
		sn = ang.rawQSine(true).Neg()
	default:
		panic(ErrInternal.New("quadrant index %d outside [0,4)", idx))
	}
	if reflect {
		sn = sn.Neg()
	}
	return sn
}

// Cos returns the cosine of x, an angle in radians.
func (x *Num) Cos() *Num {
	ang, idx, _ := x.angNorm()
	switch idx {
	case 0:
		return ang.rawQSine(true)
	case 1:
		return ang.rawQSine(false).Neg()
	case 2:
		return ang.rawQSine(true).Neg()
	case 3:
		return ang.rawQSine(false)
	}
	panic(ErrInternal.New("quadrant index %d outside [0,4)", idx))
}

// SinCos returns the sine and cosine of x, sharing a single angle
// reduction between the two.
func (x *Num) SinCos() (sin, cos *Num) {
	ang, idx, reflect := x.angNorm()
	osn := ang.rawQSine(false)
	ocs := ang.rawQSine(true)
	switch idx {
	case 0:
		sin, cos = osn, ocs
	case 1:
		sin, cos = ocs, osn.Neg()
	case 2:
		sin, cos = osn.Neg(), ocs.Neg()
	case 3:
		sin, cos = ocs.Neg(), osn
	default:
		panic(ErrInternal.New("quadrant index %d outside [0,4)", idx))
	}
	if reflect {
		sin = sin.Neg()
	}
	return sin, cos
}

// Tan returns the tangent of x, an angle in radians.
func (x *Num) Tan() *Num {
	sn, cs := x.SinCos()
	return sn.Div(cs)
}

// angNorm reduces |x| to an angle within [-π/4, π/4] of the nearest
// multiple of π/2, returning the reduced angle, that multiple mod 4, and
// whether x was negated for the reduction.
func (x *Num) angNorm() (ang *Num, idx int64, reflect bool) {
	ang = x
	if ang.Sign() < 0 {
		ang = ang.Neg()
		reflect = true
	}
	halfPi := x.fam.Pi().DivInt(2)
	n := ang.Div(halfPi).Add(x.fam.half()).Int()
	ang = ang.Sub(halfPi.Mul(x.fam.fromInteger(n)))
	idx = n.And(n, big.NewInt(3)).Int64()
	return ang, idx, reflect
}

// rawQSine sums the quarter-wave Maclaurin series in -x², valid for small
// angles: the odd series x·Σ... for sine, the even one for cosine.
func (x *Num) rawQSine(cos bool) *Num {
	sn := x.fam.Zero()
	x2 := x.Mul(x).Neg()
	term := x.fam.Unity()
	idx := int64(2)
	if cos {
		idx = 1
	}
	for {
		sn = sn.Add(term)
		term = term.Mul(x2.DivInt(idx * (idx + 1)))
		idx += 2
		if term.IsZero() {
			break
		}
	}
	if cos {
		return sn
	}
	return x.Mul(sn)
}
