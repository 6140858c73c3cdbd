// Copyright 2026 RW Penney. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spfpm

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// A Num is an immutable fixed-point number: an arbitrary-precision integer
// holding the value scaled by 2^fracBits, tagged with the Family that
// defines its resolution. Every operation returns a new Num and leaves its
// operands untouched.
//
// Binary operations require both operands to belong to families of equal
// resolution and panic with an ErrFamily error otherwise; the *Int variants
// promote a plain integer into the receiver's family first. Whenever the
// receiver's family is bounded, results are checked against the bound and
// ErrOverflow errors are raised as panics. Dividing by an exactly-zero Num
// is not caught and fails with math/big's native division-by-zero panic.
type Num struct {
	fam *Family
	sv  *big.Int
}

var (
	intOne = big.NewInt(1)
	intTen = big.NewInt(10)
)

// New returns v as a fixed-point number in the default family.
func New(v float64) *Num {
	return defaultFamily.FromFloat(v)
}

// FromInt returns v as a fixed-point number in family f.
func (f *Family) FromInt(v int64) *Num {
	return f.fromInteger(big.NewInt(v))
}

// fromInteger returns the integer n as a Num in family f.
func (f *Family) fromInteger(n *big.Int) *Num {
	return f.num(new(big.Int).Lsh(n, uint(f.frac)))
}

// FromFloat returns v rounded to the nearest representable value in family
// f. It panics with an ErrDomain error if v is NaN or infinite.
func (f *Family) FromFloat(v float64) *Num {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		panic(ErrDomain.New("cannot represent %v as a fixed-point number", v))
	}
	return f.FromRat(r)
}

// FromRat returns the rational r rounded to the nearest representable
// value in family f, ties away from zero.
func (f *Family) FromRat(r *big.Rat) *Num {
	n := new(big.Int).Lsh(r.Num(), uint(f.frac))
	return f.num(divRoundNearest(n, r.Denom()))
}

// FromScaled returns the number sv/2^fracBits in family f. Together with
// Scaled it round-trips the debug representation of a Num.
func (f *Family) FromScaled(sv *big.Int) *Num {
	return f.num(new(big.Int).Set(sv))
}

// Family returns the family that x belongs to.
func (x *Num) Family() *Family {
	return x.fam
}

// Scaled returns a copy of x's underlying scaled integer, equal to the
// value of x multiplied by 2^fracBits.
func (x *Num) Scaled() *big.Int {
	return new(big.Int).Set(x.sv)
}

// mustMatch panics unless x and y have families of equal resolution.
func (x *Num) mustMatch(y *Num) {
	if !x.fam.Equal(y.fam) {
		panic(ErrFamily.New("mixed operands with %d and %d fraction bits",
			x.fam.frac, y.fam.frac))
	}
}

// Sign returns -1, 0 or +1 according to the sign of x.
func (x *Num) Sign() int {
	return x.sv.Sign()
}

// IsZero reports whether x is exactly zero.
func (x *Num) IsZero() bool {
	return x.sv.Sign() == 0
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Num) Cmp(y *Num) int {
	x.mustMatch(y)
	return x.sv.Cmp(y.sv)
}

// Eq reports whether x and y represent the same value.
func (x *Num) Eq(y *Num) bool {
	return x.Cmp(y) == 0
}

// Neg returns -x.
func (x *Num) Neg() *Num {
	return x.fam.num(new(big.Int).Neg(x.sv))
}

// Abs returns the absolute value of x.
func (x *Num) Abs() *Num {
	if x.sv.Sign() < 0 {
		return x.Neg()
	}
	return x
}

// Add returns x+y. Addition of scaled values is exact.
func (x *Num) Add(y *Num) *Num {
	x.mustMatch(y)
	return x.fam.num(new(big.Int).Add(x.sv, y.sv))
}

// AddInt returns x+v.
func (x *Num) AddInt(v int64) *Num {
	return x.Add(x.fam.FromInt(v))
}

// Sub returns x-y. Subtraction of scaled values is exact.
func (x *Num) Sub(y *Num) *Num {
	x.mustMatch(y)
	return x.fam.num(new(big.Int).Sub(x.sv, y.sv))
}

// SubInt returns x-v.
func (x *Num) SubInt(v int64) *Num {
	return x.Sub(x.fam.FromInt(v))
}

// Mul returns x·y rounded to the nearest representable value.
func (x *Num) Mul(y *Num) *Num {
	x.mustMatch(y)
	// bigfft falls back to the plain product below its FFT threshold,
	// and keeps kilobit-resolution series tractable above it.
	p := bigfft.Mul(x.sv, y.sv)
	p.Add(p, x.fam.round)
	return x.fam.num(p.Rsh(p, uint(x.fam.frac)))
}

// MulInt returns x·v.
func (x *Num) MulInt(v int64) *Num {
	return x.Mul(x.fam.FromInt(v))
}

// Div returns x/y rounded to the nearest representable value.
func (x *Num) Div(y *Num) *Num {
	x.mustMatch(y)
	n := new(big.Int).Lsh(x.sv, uint(x.fam.frac))
	n.Add(n, x.fam.round)
	return x.fam.num(floorDiv(n, y.sv))
}

// DivInt returns x/v.
func (x *Num) DivInt(v int64) *Num {
	return x.Div(x.fam.FromInt(v))
}

// Lsh returns x·2^n. The shift is exact.
func (x *Num) Lsh(n uint) *Num {
	return x.fam.num(new(big.Int).Lsh(x.sv, n))
}

// Rsh returns x/2^n, truncated toward negative infinity.
func (x *Num) Rsh(n uint) *Num {
	return x.fam.num(new(big.Int).Rsh(x.sv, n))
}

// floorDiv returns x/y truncated toward negative infinity, matching the
// rounding convention assumed by the scaled multiply/divide formulas.
func floorDiv(x, y *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		q.Sub(q, intOne)
	}
	return q
}

// divRoundNearest returns x/y rounded to the nearest integer, ties away
// from zero. y must be positive.
func divRoundNearest(x, y *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Abs(r).Lsh(r, 1).Cmp(y) >= 0 {
		if x.Sign() < 0 {
			q.Sub(q, intOne)
		} else {
			q.Add(q, intOne)
		}
	}
	return q
}
