// Copyright 2026 RW Penney. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spfpm

// Log returns the natural logarithm of x.
//
// The argument is first halved or doubled into the band [1/2, 2], where
// the atanh-style series converges quickly; the count of scalings is
// undone with the family's cached value of log 2.
//
// The function panics with an ErrDomain error if x <= 0.
func (x *Num) Log() *Num {
	if x.sv.Sign() <= 0 {
		panic(ErrDomain.New("logarithm of non-positive number"))
	}
	unity := x.fam.Unity()
	if x.Eq(unity) {
		return x.fam.Zero()
	}
	thresh := x.fam.FromInt(2)
	lower := unity.Div(thresh)
	count := int64(0)
	val := x
	for val.Cmp(thresh) > 0 {
		val = val.DivInt(2)
		count++
	}
	for val.Cmp(lower) < 0 {
		val = val.MulInt(2)
		count--
	}
	return val.rawLog().Add(x.fam.Log2().MulInt(count))
}

// rawLog sums log(x) = Σ 2·z^(2k+1)/(2k+1) with z = (x-1)/(x+1), valid
// for x close to unity.
func (x *Num) rawLog() *Num {
	lg := x.fam.Zero()
	z := x.SubInt(1).Div(x.AddInt(1))
	z2 := z.Mul(z)
	term := z.MulInt(2)
	for idx := int64(1); ; idx += 2 {
		lg = lg.Add(term.DivInt(idx))
		term = term.Mul(z2)
		if term.IsZero() {
			return lg
		}
	}
}
