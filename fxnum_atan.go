// Copyright 2026 RW Penney. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spfpm

// Atan returns the inverse tangent of x, in [-π/2, π/2].
//
// The argument is normalized in up to three steps before the series is
// applied: negative arguments by reflection, arguments above one through
// atan(x) = π/2 - atan(1/x), and arguments still above tan(π/8) ≈ 0.414
// through a half-angle substitution that doubles the final result.
func (x *Num) Atan() *Num {
	var reflect, recip, double bool
	tan := x
	if tan.Sign() < 0 {
		tan = tan.Neg()
		reflect = true
	}
	if tan.Cmp(x.fam.Unity()) > 0 {
		tan = x.fam.Unity().Div(tan)
		recip = true
	}
	if tan.Cmp(x.fam.FromFloat(0.414)) > 0 {
		tan = tan.Mul(tan).AddInt(1).Sqrt().SubInt(1).Div(tan)
		double = true
	}
	ang := tan.rawArctan()
	if double {
		ang = ang.MulInt(2)
	}
	if recip {
		ang = x.fam.Pi().DivInt(2).Sub(ang)
	}
	if reflect {
		ang = ang.Neg()
	}
	return ang
}

// Asin returns the inverse sine of x, in [-π/2, π/2].
//
// The function panics with an ErrDomain error if |x| > 1.
func (x *Num) Asin() *Num {
	unity := x.fam.Unity()
	if x.Eq(unity) {
		return x.fam.Pi().DivInt(2)
	}
	if x.Eq(unity.Neg()) {
		return x.fam.Pi().DivInt(2).Neg()
	}
	cs2 := unity.Sub(x.Mul(x))
	if cs2.Sign() < 0 {
		panic(ErrDomain.New("inverse sine of number beyond unit interval"))
	}
	return x.Div(cs2.Sqrt()).Atan()
}

// Acos returns the inverse cosine of x, in [0, π].
//
// The function panics with an ErrDomain error if |x| > 1.
func (x *Num) Acos() *Num {
	arg := x
	reflect := false
	if x.Sign() < 0 {
		arg = x.Neg()
		reflect = true
	}
	var cs *Num
	switch {
	case arg.Eq(x.fam.Unity()):
		cs = x.fam.Zero()
	case arg.IsZero():
		cs = x.fam.Pi().DivInt(2)
	default:
		sn2 := x.fam.Unity().Sub(arg.Mul(arg))
		if sn2.Sign() < 0 {
			panic(ErrDomain.New("inverse cosine of number beyond unit interval"))
		}
		cs = sn2.Sqrt().Div(arg).Atan()
	}
	if reflect {
		return x.fam.Pi().Sub(cs)
	}
	return cs
}

// rawArctan sums a convergence-accelerated arctangent series for |x| < 1,
// folding pairs of Maclaurin terms into corrections of the form
// term·(4k·(1-x²)+(1+x²))/(16k²-1).
func (x *Num) rawArctan() *Num {
	atn := x.fam.Unity()
	x2 := x.Mul(x)
	omx2 := x.fam.Unity().Sub(x2)
	opx2 := x.fam.Unity().Add(x2)
	x4 := x2.Mul(x2)
	term := x2
	for idx := int64(1); ; idx++ {
		delta := term.Mul(omx2.MulInt(4 * idx).Add(opx2)).DivInt(16*idx*idx - 1)
		atn = atn.Sub(delta)
		term = term.Mul(x4)
		if delta.IsZero() {
			return x.Mul(atn)
		}
	}
}
