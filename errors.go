// Copyright 2026 RW Penney. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spfpm

import (
	"github.com/zeebo/errs"
)

// Operations signal failure by panicking with an error belonging to one of
// the classes below, mirroring the big.Float convention of panicking with
// ErrNaN on invalid operands. Callers that need to handle a failure recover
// at the call site and test the error with the class's Has method.
var (
	// ErrDomain reports an argument outside a function's valid domain,
	// such as the square root or logarithm of a negative number.
	ErrDomain = errs.Class("domain error")

	// ErrFamily reports a binary operation between numbers whose families
	// have different resolutions.
	ErrFamily = errs.Class("family mismatch")

	// ErrOverflow reports a scaled value exceeding the integer-bit bound
	// of a bounded family.
	ErrOverflow = errs.Class("overflow")

	// ErrInternal reports a defect in the package's own reduction logic.
	// It is never caused by user input.
	ErrInternal = errs.Class("internal error")
)
