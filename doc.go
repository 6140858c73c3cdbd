// Copyright 2026 RW Penney. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spfpm implements binary fixed-point arithmetic with an arbitrary,
user-selectable number of fractional bits.

A Num holds its value as an arbitrary-precision integer scaled by a fixed
power of two, so that, unlike with floating point, the resolution of every
quantity is explicit and rounding behaviour is exactly reproducible.
This suits applications such as simulating hardware fixed-point datapaths,
where numbers of differing precisions must coexist without silent mixing.

Every Num belongs to a Family, which fixes the number of fraction bits and,
optionally, bounds the number of integer bits:

	fam := spfpm.NewFamily(64)
	x := fam.FromInt(21).DivInt(10)
	fmt.Println(x)            // 2.099999999999999999967
	r := x.Sqrt()             // r is created in the same family as x
	v := x.Add(r.MulInt(2))

Binary operations require operands of equal resolution; mixing families
panics with an ErrFamily error, and crossing between resolutions is always
an explicit Cast. The *Int method variants (AddInt, MulInt, ...) promote a
plain integer into the receiver's family first.

All arithmetic, including the mathematical functions Sqrt, Exp, Log, Pow,
Sin, Cos, Tan, Asin, Acos, Atan and SinCos, is carried out purely in
integer arithmetic: square roots by Newton iteration, the transcendental
functions by range reduction followed by power-series summation. Each
series runs until its next term rounds to exactly zero at the target
resolution, so the algorithms adapt themselves to any resolution from a
few bits to many thousands. Constants consumed by the range reductions
(e, log 2, π, √2) are computed once per family at an augmented internal
resolution and cached.

Nums are immutable: every operation returns a new value and operands are
never modified, so values may be shared freely, including between
goroutines. The per-family constant cache serializes its first fill
internally.

A large number of fraction bits does not by itself guarantee high accuracy:
chains of exponentials and logarithms can amplify rounding of their inputs
into much larger errors in their outputs, as with any finite-precision
approximation to real arithmetic.
*/
package spfpm
