/*
 * timecorr_test.go, part of goeig.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package timecorr

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// direct O(n²) cross-correlation, to compare with the FFT one.
func direct(a, b []float64) []float64 {
	am, bm := stat.Mean(a, nil), stat.Mean(b, nil)
	var aa, bb float64
	for i := range a {
		aa += (a[i] - am) * (a[i] - am)
		bb += (b[i] - bm) * (b[i] - bm)
	}
	ret := make([]float64, len(a))
	for m := range ret {
		for i := 0; i+m < len(a); i++ {
			ret[m] += (a[i+m] - am) * (b[i] - bm)
		}
		ret[m] /= math.Sqrt(aa * bb)
	}
	return ret
}

func TestAutoDirect(Te *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	//odd length on purpose, the FFT is not a power of 2.
	x := make([]float64, 101)
	v := 0.0
	for i := range x {
		v = 0.8*v + rnd.NormFloat64()
		x[i] = 3 + v
	}
	got := Auto(x)
	want := direct(x, x)
	require.Len(Te, got, len(x))
	assert.InDelta(Te, 1, got[0], 1e-12)
	for i := range want {
		assert.InDelta(Te, want[i], got[i], 1e-9, "lag %d", i)
	}
	//correlated series
	assert.Greater(Te, IntegratedTime(got), 1.5)
}

func TestCrossDirect(Te *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	a := make([]float64, 64)
	b := make([]float64, 64)
	for i := range a {
		a[i] = rnd.Float64()
		b[i] = rnd.Float64() + 0.5*a[i]
	}
	got := Cross(a, b)
	want := direct(a, b)
	for i := range want {
		assert.InDelta(Te, want[i], got[i], 1e-9, "lag %d", i)
	}
	assert.Panics(Te, func() { Cross(a, b[1:]) })
}

func TestDegenerate(Te *testing.T) {
	assert.Nil(Te, Auto(nil))
	assert.Nil(Te, Auto([]float64{1}))
	assert.Nil(Te, Auto([]float64{2, 2, 2}))
	assert.True(Te, math.IsNaN(IntegratedTime(nil)))
}

func TestIntegratedTime(Te *testing.T) {
	alt := Auto([]float64{1, -1, 1, -1, 1, -1})
	assert.InDelta(Te, 0.5, IntegratedTime(alt), 1e-12)
	assert.InDelta(Te, 1.25, IntegratedTime([]float64{1, 0.5, 0.25, -0.1, 0.3}), 1e-12)
}
