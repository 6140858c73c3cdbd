// Copyright 2026 RW Penney. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spfpm

import (
	"fmt"
	"math/big"
	"strings"
)

// Int returns x truncated to an integer. Non-negative values truncate
// toward negative infinity; negative values with a fractional part
// truncate toward zero, so that Int is consistent across the sign of
// near-integer quotients. This deliberately differs from the plain floor
// truncation performed by Rsh.
func (x *Num) Int() *big.Int {
	t := new(big.Int)
	if x.sv.Sign() >= 0 {
		return t.Rsh(x.sv, uint(x.fam.frac))
	}
	t.Add(x.sv, x.fam.scale)
	t.Sub(t, intOne)
	return t.Rsh(t, uint(x.fam.frac))
}

// Int64 returns x truncated to an int64, with the same convention as Int.
// The result is undefined if it does not fit.
func (x *Num) Int64() int64 {
	return x.Int().Int64()
}

// Float64 returns the floating-point value nearest to x. It is intended
// for display and interoperability only; no internal computation ever
// passes through floating point.
func (x *Num) Float64() float64 {
	q := new(big.Float).SetInt(x.sv)
	q.Quo(q, new(big.Float).SetInt(x.fam.scale))
	v, _ := q.Float64()
	return v
}

// String returns x as a decimal numeral. Fractional digits are emitted
// only while the undone remainder is non-zero, up to fracBits/3 digits,
// which roughly matches the binary resolution (log10(2) ≈ 1/3).
func (x *Num) String() string {
	var b strings.Builder
	val := new(big.Int).Abs(x.sv)
	if x.sv.Sign() < 0 {
		b.WriteByte('-')
	}
	whole := new(big.Int)
	frac := new(big.Int)
	whole.QuoRem(val, x.fam.scale, frac)
	b.WriteString(whole.String())
	if frac.Sign() != 0 {
		b.WriteByte('.')
		q := new(big.Int)
		for idx := 0; idx < x.fam.frac/3 && frac.Sign() != 0; idx++ {
			frac.Mul(frac, intTen)
			q.QuoRem(frac, x.fam.scale, frac)
			b.WriteByte('0' + byte(q.Int64()))
		}
	}
	return b.String()
}

// GoString returns a debug representation carrying both the scaled value
// and the resolution, sufficient to reconstruct an equal Num with
// FromScaled.
func (x *Num) GoString() string {
	return fmt.Sprintf("spfpm.Num{%s/2^%d}", x.sv, x.fam.frac)
}
