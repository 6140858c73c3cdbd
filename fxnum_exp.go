// Copyright 2026 RW Penney. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spfpm

import (
	"math/big"
)

// Exp returns the natural exponential of x. The integer part of x is
// handled by exponentiating the family's cached value of e, so that the
// Maclaurin series only ever sees the fractional remainder.
func (x *Num) Exp() *Num {
	n := x.Int()
	rem := x.Sub(x.fam.fromInteger(n))
	return rem.rawExp().Mul(x.fam.Exp1().ipow(n))
}

// rawExp sums the Maclaurin series Σ x^k/k!, valid for smallish |x|.
// Successive terms shrink at least geometrically, so the loop terminates
// once a term rounds to exactly zero at this resolution.
func (x *Num) rawExp() *Num {
	ex := x.fam.Unity()
	term := x.fam.Unity()
	for idx := int64(1); ; idx++ {
		term = term.Mul(x.DivInt(idx))
		ex = ex.Add(term)
		if term.IsZero() {
			return ex
		}
	}
}

// IntPow returns x raised to the integer power n, computed by repeated
// squaring. Negative powers invert the result.
func (x *Num) IntPow(n int64) *Num {
	return x.ipow(big.NewInt(n))
}

// Pow returns x raised to the power y. A fractional exponent decomposes as
// x^n · exp((y-n)·log x) with n the integer part of y; exponents with no
// fractional part never touch the logarithm, so negative bases are valid
// for them. A zero base yields unity for any exponent.
func (x *Num) Pow(y *Num) *Num {
	x.mustMatch(y)
	if x.IsZero() {
		return x.fam.Unity()
	}
	n := y.Int()
	rem := y.Sub(y.fam.fromInteger(n))
	if rem.IsZero() {
		return x.ipow(n)
	}
	return x.ipow(n).Mul(rem.Mul(x.Log()).Exp())
}

func (x *Num) ipow(n *big.Int) *Num {
	invert := n.Sign() < 0
	m := new(big.Int).Abs(n)
	result := x.fam.Unity()
	term := x
	for m.Sign() != 0 {
		if m.Bit(0) == 1 {
			result = result.Mul(term)
		}
		m.Rsh(m, 1)
		if m.Sign() != 0 {
			term = term.Mul(term)
		}
	}
	if invert {
		result = x.fam.Unity().Div(result)
	}
	return result
}
