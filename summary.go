/*
 * summary.go, part of goeig.
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

package eig

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/rmera/goeig/report"
	"github.com/rmera/goeig/timecorr"
	v3 "github.com/rmera/goeig/v3"
)

// MeanStd is a mean and its standard deviation.
type MeanStd struct {
	Mean, Std float64
}

// Summary contains averages over a whole trajectory.
type Summary struct {
	Frames     int
	Mean       [3]float64 //of each eigenvalue
	Rg         MeanStd
	Anisotropy MeanStd
	//integrated autocorrelation time of Rg, in frames.
	//NaN for fewer than 2 frames or a constant Rg.
	RgCorrTime float64
}

// Summarize returns the averages of the eigenvalues and shape indexes in R.
// The standard deviations are NaN for a single frame.
func Summarize(R report.Report) Summary {
	s := Summary{Frames: len(R)}
	if len(R) == 0 {
		return s
	}
	vals := make([][]float64, 3)
	rg := make([]float64, len(R))
	k2 := make([]float64, len(R))
	for i := range vals {
		vals[i] = make([]float64, len(R))
	}
	for i, F := range R {
		for j, v := range F.Eigen.Values() {
			vals[j][i] = v
		}
		sh := v3.ShapeIndexes(F.Eigen)
		rg[i] = sh.Rg
		k2[i] = sh.Anisotropy
	}
	for j := range s.Mean {
		s.Mean[j] = stat.Mean(vals[j], nil)
	}
	s.Rg = meanStd(rg)
	s.Anisotropy = meanStd(k2)
	s.RgCorrTime = timecorr.IntegratedTime(timecorr.Auto(rg))
	return s
}

func meanStd(x []float64) MeanStd {
	if len(x) < 2 {
		return MeanStd{Mean: stat.Mean(x, nil), Std: math.NaN()}
	}
	m, sd := stat.MeanStdDev(x, nil)
	return MeanStd{Mean: m, Std: sd}
}
