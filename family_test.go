// Copyright 2026 RW Penney. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spfpm_test

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rwpenney/spfpm"
)

func TestFamilyEquality(t *testing.T) {
	for i := 1; i < 8; i++ {
		for j := 1; j < 8; j++ {
			fi, fj := spfpm.NewFamily(i), spfpm.NewFamily(j)
			require.Equal(t, i == j, fi.Equal(fj), "%d vs %d bits", i, j)
		}
	}

	// The integer-bit bound does not participate in equality.
	require.True(t, spfpm.NewFamily(16).Equal(spfpm.NewBoundedFamily(16, 4)))
}

func TestConvertRoundTrip(t *testing.T) {
	narrow := spfpm.NewFamily(8)
	wide := spfpm.NewFamily(24)

	// Widening then narrowing must reproduce the scaled value exactly.
	for i := -300; i <= 300; i += 7 {
		x := narrow.FromFloat(float64(i) * 0.0625)
		back := narrow.Cast(wide.Cast(x))
		require.True(t, x.Eq(back), "value %v", x)
	}

	// Zero survives widening without picking up rounding bits.
	require.True(t, wide.Cast(narrow.FromInt(0)).IsZero())

	// Widening rounds a positive value upward by half a source ulp.
	w := wide.Cast(narrow.FromInt(1))
	require.Equal(t, int64(1<<24|1<<15), w.Scaled().Int64())
}

func TestCachedConstants(t *testing.T) {
	fam := spfpm.NewFamily(62)

	td := []struct {
		name string
		get  func() *spfpm.Num
		want float64
	}{
		{"unity", fam.Unity, 1},
		{"zero", fam.Zero, 0},
		{"exp1", fam.Exp1, math.E},
		{"log2", fam.Log2, math.Ln2},
		{"pi", fam.Pi, math.Pi},
		{"sqrt2", fam.Sqrt2, math.Sqrt2},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			v := d.get()
			require.InDelta(t, d.want, v.Float64(), 1e-15)

			// Accessors hand out the memoized value.
			require.Same(t, v, d.get())
		})
	}
}

func TestPi200Bits(t *testing.T) {
	pi := spfpm.NewFamily(200).Pi().String()
	const prefix = "3.14159265358979323846264338327950288419716939937510582097494"
	if !strings.HasPrefix(pi, prefix) {
		t.Fatalf("200-bit pi = %s\nwant prefix %s", pi, prefix)
	}
}

func TestConstantsAcrossResolutions(t *testing.T) {
	// The 4-bit family still produces sane constants.
	fam4 := spfpm.NewFamily(4)
	require.InDelta(t, math.Pi, fam4.Pi().Float64(), 1.0/16)
	require.InDelta(t, math.E, fam4.Exp1().Float64(), 1.0/16)

	for _, res := range []int{12, 31, 62, 100, 330} {
		fam := spfpm.NewFamily(res)
		eps := math.Ldexp(1, -res+1)
		if eps < 1e-15 {
			eps = 1e-15
		}
		require.InDelta(t, math.Pi, fam.Pi().Float64(), eps, "res=%d", res)
		require.InDelta(t, math.Ln2, fam.Log2().Float64(), eps, "res=%d", res)
		require.InDelta(t, math.Sqrt2, fam.Sqrt2().Float64(), eps, "res=%d", res)
	}
}

func TestConstantCacheConcurrency(t *testing.T) {
	fam := spfpm.NewFamily(128)

	var wg sync.WaitGroup
	results := make([]*spfpm.Num, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = fam.Pi()
		}(i)
	}
	wg.Wait()

	for _, r := range results[1:] {
		require.Same(t, results[0], r)
	}
}

func TestResolutionAccessors(t *testing.T) {
	fam := spfpm.NewBoundedFamily(16, 4)
	require.Equal(t, 16, fam.Resolution())
	n, bounded := fam.IntBits()
	require.True(t, bounded)
	require.Equal(t, 4, n)
}
