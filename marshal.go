// Copyright 2026 RW Penney. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Nums.

package spfpm

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// MarshalText implements the encoding.TextMarshaler interface. The scaled
// value and the resolution are marshaled; an integer-bit bound, which does
// not participate in family equality, is not.
func (x *Num) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%s/2^%d", x.sv, x.fam.frac)), nil
}

// UnmarshalNum parses text previously produced by MarshalText and returns
// the value converted into family f. Values marshaled at a different
// resolution are rescaled through Convert.
func (f *Family) UnmarshalNum(text []byte) (*Num, error) {
	s := string(text)
	sv, fracs, ok := strings.Cut(s, "/2^")
	if !ok {
		return nil, fmt.Errorf("spfpm: cannot unmarshal %q into a fixed-point number", s)
	}
	v, ok := new(big.Int).SetString(sv, 10)
	if !ok {
		return nil, fmt.Errorf("spfpm: invalid scaled value in %q", s)
	}
	frac, err := strconv.Atoi(fracs)
	if err != nil || frac < 1 {
		return nil, fmt.Errorf("spfpm: invalid resolution in %q", s)
	}
	if frac == f.frac {
		return f.num(v), nil
	}
	return f.num(f.Convert(NewFamily(frac), v)), nil
}
