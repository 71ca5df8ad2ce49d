/*
 * timecorr.go, part of goeig.
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

// Package timecorr obtains time correlation functions of properties sampled
// along a trajectory, such as the radius of gyration of each frame.
package timecorr

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

func cmplxMulConj(dst, b []complex128) {
	if len(dst) != len(b) {
		panic(fmt.Sprintf("complex conjugate multiplication of slices: Both slices should have the same len %d, %d", len(dst), len(b)))
	}
	for i, v := range b {
		dst[i] *= cmplx.Conj(v)
	}
}

// centered returns x minus its mean, as complex numbers, padded with
// len(x) zeros so the FFT gives a linear, not circular, correlation.
func centered(x []float64) []complex128 {
	mean := stat.Mean(x, nil)
	ret := make([]complex128, 2*len(x))
	for i, v := range x {
		ret[i] = complex(v-mean, 0)
	}
	return ret
}

// Cross returns the normalized cross-correlation of the series a and b for
// lags 0 to len(a)-1: ret[m] is the correlation between a[i+m] and b[i].
// a and b must have the same length. It returns nil if they have fewer than
// 2 points, or if either one is constant.
func Cross(a, b []float64) []float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("timecorr.Cross: series of different lengths %d, %d", len(a), len(b)))
	}
	if len(a) < 2 {
		return nil
	}
	apad := centered(a)
	bpad := centered(b)
	var aa, bb float64
	for i := range a {
		aa += real(apad[i]) * real(apad[i])
		bb += real(bpad[i]) * real(bpad[i])
	}
	if aa == 0 || bb == 0 {
		return nil
	}
	f := fourier.NewCmplxFFT(len(apad))
	f.Coefficients(apad, apad)
	f.Coefficients(bpad, bpad)
	cmplxMulConj(apad, bpad)
	f.Sequence(apad, apad)
	//Sequence doesn't normalize the inverse transform.
	norm := 1 / (float64(len(apad)) * math.Sqrt(aa*bb))
	ret := make([]float64, len(a))
	for i := range ret {
		ret[i] = real(apad[i]) * norm
	}
	return ret
}

// Auto returns the normalized autocorrelation function of x for lags 0 to
// len(x)-1, so ret[0] is 1. It returns nil if x has fewer than 2 points or
// is constant.
func Auto(x []float64) []float64 {
	return Cross(x, x)
}

// IntegratedTime returns the integrated correlation time of the normalized
// correlation function acf, in units of the lag: 1/2 plus the sum of acf
// from lag 1 until its first non-positive value. It returns NaN if acf
// is empty.
func IntegratedTime(acf []float64) float64 {
	if len(acf) == 0 {
		return math.NaN()
	}
	tau := 0.5
	for _, v := range acf[1:] {
		if v <= 0 {
			break
		}
		tau += v
	}
	return tau
}
