// Copyright 2026 RW Penney. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spfpm

import (
	"math/big"
	"math/bits"
	"sync"
)

// DefaultFraction is the number of fraction bits used by DefaultFamily.
const DefaultFraction = 64

// A Family describes a fixed-point resolution: the number of binary digits
// to the right of the binary point and, optionally, a bound on the number
// of digits to the left of it. All Nums belong to a Family, and binary
// operations require both operands to have the same resolution.
//
// A Family is immutable apart from its internal cache of lazily computed
// constants, which is guarded by a mutex; Families and Nums may be shared
// freely between goroutines.
type Family struct {
	frac    int      // bits right of the binary point, >= 1
	intBits int      // bits left of the binary point, valid if bounded
	bounded bool
	scale   *big.Int // 1 << frac
	round   *big.Int // 1 << (frac-1), round-to-nearest bias for mul/div
	thresh  *big.Int // 1 << (frac+intBits-1), valid if bounded
	negThr  *big.Int // -thresh, valid if bounded
	augBits int      // extra fraction bits used when computing constants

	mu     sync.Mutex
	cUnity *Num
	cZero  *Num
	cExp1  *Num
	cLog2  *Num
	cPi    *Num
	cSqrt2 *Num
}

// NewFamily returns a Family with fracBits fraction bits and no bound on
// the magnitude of its values. It panics with an ErrDomain error if
// fracBits < 1.
func NewFamily(fracBits int) *Family {
	return newFamily(fracBits, 0, false)
}

// NewBoundedFamily returns a Family with fracBits fraction bits whose
// values are restricted to scaled magnitudes below 2^(fracBits+intBits-1).
// intBits may be negative for formats representing only sub-unity values,
// as long as fracBits+intBits >= 1. Operations producing values outside
// the bound panic with an ErrOverflow error.
func NewBoundedFamily(fracBits, intBits int) *Family {
	return newFamily(fracBits, intBits, true)
}

func newFamily(fracBits, intBits int, bounded bool) *Family {
	if fracBits < 1 {
		panic(ErrDomain.New("family needs at least 1 fraction bit, got %d", fracBits))
	}
	if bounded && fracBits+intBits < 1 {
		panic(ErrDomain.New("family with %d fraction bits cannot bound %d integer bits",
			fracBits, intBits))
	}
	f := &Family{
		frac:    fracBits,
		intBits: intBits,
		bounded: bounded,
		scale:   new(big.Int).Lsh(intOne, uint(fracBits)),
		round:   new(big.Int).Lsh(intOne, uint(fracBits-1)),
		// Series terms each lose up to half an ulp, and the number of
		// terms grows roughly linearly with the resolution.
		augBits: 4 + bits.Len(uint(fracBits)),
	}
	if bounded {
		f.thresh = new(big.Int).Lsh(intOne, uint(fracBits+intBits-1))
		f.negThr = new(big.Int).Neg(f.thresh)
	}
	return f
}

var defaultFamily = NewFamily(DefaultFraction)

// DefaultFamily returns the shared unbounded Family with DefaultFraction
// fraction bits.
func DefaultFamily() *Family {
	return defaultFamily
}

// Resolution returns the number of fraction bits of f.
func (f *Family) Resolution() int {
	return f.frac
}

// IntBits returns the integer-bit bound of f and whether one is configured.
func (f *Family) IntBits() (int, bool) {
	return f.intBits, f.bounded
}

// Equal reports whether f and g have the same resolution.
//
// Only the fraction-bit count participates: a bounded and an unbounded
// family with equal fraction bits are interchangeable operands, and each
// family applies its own overflow bound to the results it constructs.
func (f *Family) Equal(g *Family) bool {
	return f == g || (f != nil && g != nil && f.frac == g.frac)
}

// Convert rescales a scaled value sv belonging to family g into the
// resolution of f and returns the new scaled value. Widening rounds the
// extra precision away from a systematic bias (upward for positive values,
// filling ones below for negative ones); narrowing truncates toward
// negative infinity.
func (f *Family) Convert(g *Family, sv *big.Int) *big.Int {
	inc := f.frac - g.frac
	switch {
	case inc == 0:
		return new(big.Int).Set(sv)
	case inc > 0:
		nv := new(big.Int).Lsh(sv, uint(inc))
		half := new(big.Int).Lsh(intOne, uint(inc-1))
		switch sv.Sign() {
		case 1:
			nv.Or(nv, half)
		case -1:
			nv.Or(nv, half.Sub(half, intOne))
		}
		return nv
	default:
		return new(big.Int).Rsh(sv, uint(-inc))
	}
}

// Cast returns x converted into family f. Casting is the only way to make
// a Num from one family interoperate with Nums of another.
func (f *Family) Cast(x *Num) *Num {
	return f.num(f.Convert(x.fam, x.sv))
}

// num wraps a scaled value, enforcing the integer-bit bound. The caller
// must not retain sv.
func (f *Family) num(sv *big.Int) *Num {
	if f.bounded && (sv.Cmp(f.thresh) >= 0 || sv.Cmp(f.negThr) < 0) {
		panic(ErrOverflow.New("scaled value outside ±2^%d bound of %d.%d-bit family",
			f.frac+f.intBits-1, f.intBits, f.frac))
	}
	return &Num{fam: f, sv: sv}
}

// augmented returns the unbounded family used for computing constants at a
// higher internal resolution. Every series term accumulates rounding
// error, so constants are computed with augBits extra fraction bits and
// narrowed into f, which leaves them correctly rounded at f's resolution.
func (f *Family) augmented() *Family {
	return NewFamily(f.frac + f.augBits)
}

// Unity returns the cached multiplicative identity of f.
func (f *Family) Unity() *Num {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cUnity == nil {
		f.cUnity = f.num(new(big.Int).Set(f.scale))
	}
	return f.cUnity
}

// Zero returns the cached additive identity of f.
func (f *Family) Zero() *Num {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cZero == nil {
		f.cZero = f.num(new(big.Int))
	}
	return f.cZero
}

// Exp1 returns the cached value of e, the base of natural logarithms.
func (f *Family) Exp1() *Num {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cExp1 == nil {
		aug := f.augmented()
		f.cExp1 = f.Cast(aug.Unity().rawExp())
	}
	return f.cExp1
}

// Log2 returns the cached value of the natural logarithm of two.
func (f *Family) Log2() *Num {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cLog2 == nil {
		// log 2 = log(2^19/3^12) + 6·log(9/8) keeps both series
		// arguments close to unity, where rawLog converges quickly.
		aug := f.augmented()
		a := aug.FromInt(1 << 19).DivInt(531441) // 3^12
		b := aug.FromInt(9).DivInt(8)
		f.cLog2 = f.Cast(a.rawLog().Add(b.rawLog().MulInt(6)))
	}
	return f.cLog2
}

// Pi returns the cached value of the circle constant π.
func (f *Family) Pi() *Num {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cPi == nil {
		// π = 8·atan(√2 - 1), from tan(π/8) = √2 - 1. The arctangent
		// series converges fastest for small arguments.
		aug := f.augmented()
		tan8 := aug.FromInt(2).Sqrt().SubInt(1)
		f.cPi = f.Cast(tan8.rawArctan().MulInt(8))
	}
	return f.cPi
}

// Sqrt2 returns the cached square root of two.
func (f *Family) Sqrt2() *Num {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cSqrt2 == nil {
		aug := f.augmented()
		f.cSqrt2 = f.Cast(aug.FromInt(2).Sqrt())
	}
	return f.cSqrt2
}

// half returns one half, which is always exactly representable.
func (f *Family) half() *Num {
	return f.num(new(big.Int).Set(f.round))
}
