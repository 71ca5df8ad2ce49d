/*
 * eigen.go, part of goeig.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package v3

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	maxSweeps = 50
	//relative to the Frobenius norm of the tensor
	jacobiTol = 1e-15
)

// EigenPair is an eigenvalue and its unit eigenvector.
type EigenPair struct {
	Value  float64
	Vector r3.Vec
}

// Eigen contains the 3 eigenpairs of a Tensor, sorted by
// increasing eigenvalue.
type Eigen [3]EigenPair

// Values returns the 3 eigenvalues, in ascending order.
func (E Eigen) Values() [3]float64 {
	return [3]float64{E[0].Value, E[1].Value, E[2].Value}
}

// Vectors returns the 3 eigenvectors, in the same order as Values.
func (E Eigen) Vectors() [3]r3.Vec {
	return [3]r3.Vec{E[0].Vector, E[1].Vector, E[2].Vector}
}

// eigenpair sorts eigenvalues and eigenvectors together.
// It satisfies the sort.Interface interface.
type eigenpair struct {
	//column j of evecs goes with evals[j]
	evecs *[3][3]float64
	evals *[3]float64
}

func (E eigenpair) Less(i, j int) bool {
	return E.evals[i] < E.evals[j]
}

func (E eigenpair) Swap(i, j int) {
	E.evals[i], E.evals[j] = E.evals[j], E.evals[i]
	for k := range E.evecs {
		E.evecs[k][i], E.evecs[k][j] = E.evecs[k][j], E.evecs[k][i]
	}
}

func (E eigenpair) Len() int {
	return len(E.evals)
}

// EigenSym returns the eigenvalues and eigenvectors of T, obtained by cyclic
// Jacobi rotations. The eigenvalues are sorted in ascending order, the
// eigenvectors have unit length and, taken together, form a right-handed
// orthonormal basis. Repeated eigenvalues still get orthogonal eigenvectors.
// EigenSym does not fail for finite input.
func EigenSym(T Tensor) Eigen {
	//The rotations work on the tensor divided by its largest element,
	//so the squares in the convergence test can't overflow.
	m := T.MaxAbs()
	if m > 0 {
		T = T.div(m)
	} else {
		m = 1
	}
	a := T.Array()
	v := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	tol := jacobiTol * T.Norm()
	for sweep := 0; sweep < maxSweeps; sweep++ {
		off := math.Sqrt(a[0][1]*a[0][1] + a[0][2]*a[0][2] + a[1][2]*a[1][2])
		if off <= tol {
			break
		}
		for p := 0; p < 2; p++ {
			for q := p + 1; q < 3; q++ {
				rotate(&a, &v, p, q)
			}
		}
	}
	evals := [3]float64{a[0][0] * m, a[1][1] * m, a[2][2] * m}
	sort.Sort(eigenpair{&v, &evals})
	//Right-handed basis.
	if det(v) < 0 {
		for i := range v {
			for j := range v[i] {
				v[i][j] *= -1
			}
		}
	}
	var ret Eigen
	for j := 0; j < 3; j++ {
		ret[j].Value = evals[j]
		ret[j].Vector = r3.Unit(r3.Vec{X: v[0][j], Y: v[1][j], Z: v[2][j]})
	}
	return ret
}

// rotate applies a Jacobi rotation to a that zeroes a[p][q], and
// accumulates it in v. p must be smaller than q.
func rotate(a, v *[3][3]float64, p, q int) {
	apq := a[p][q]
	if apq == 0 {
		return
	}
	theta := (a[q][q] - a[p][p]) / (2 * apq)
	var t float64
	if math.Abs(theta) > 1e150 {
		t = 1 / (2 * theta)
	} else {
		t = math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
	}
	c := 1 / math.Sqrt(t*t+1)
	s := t * c
	for k := 0; k < 3; k++ {
		akp, akq := a[k][p], a[k][q]
		a[k][p] = c*akp - s*akq
		a[k][q] = s*akp + c*akq
	}
	for k := 0; k < 3; k++ {
		apk, aqk := a[p][k], a[q][k]
		a[p][k] = c*apk - s*aqk
		a[q][k] = s*apk + c*aqk
	}
	a[p][q], a[q][p] = 0, 0
	for k := 0; k < 3; k++ {
		vkp, vkq := v[k][p], v[k][q]
		v[k][p] = c*vkp - s*vkq
		v[k][q] = s*vkp + c*vkq
	}
}

// CheckEigen verifies that E is a valid decomposition of T: for each pair,
// |T·v - λv| must be below tol times the norm of T, ||v|-1| below tol, the
// vectors must be mutually orthogonal, the values sorted, and their sum
// equal to the trace of T. It returns nil if everything checks out.
func CheckEigen(T Tensor, E Eigen, tol float64) error {
	scale := T.Norm()
	if math.IsInf(scale, 0) || math.IsNaN(scale) {
		return &Error{fmt.Sprintf("tensor norm is %g", scale), []string{"CheckEigen"}, true}
	}
	if scale == 0 {
		scale = 1
	}
	//The residual is computed on the normalized tensor, so it can't overflow.
	Ts := T.div(scale)
	for i, p := range E {
		res := r3.Norm(r3.Sub(Ts.MulVec(p.Vector), r3.Scale(p.Value/scale, p.Vector)))
		if res > tol {
			return &Error{fmt.Sprintf("eigenpair %d: relative residual %g larger than %g", i, res, tol), []string{"CheckEigen"}, true}
		}
		if n := r3.Norm(p.Vector); math.Abs(n-1) > tol {
			return &Error{fmt.Sprintf("eigenvector %d: norm %g", i, n), []string{"CheckEigen"}, true}
		}
		for j := i + 1; j < len(E); j++ {
			if d := r3.Dot(p.Vector, E[j].Vector); math.Abs(d) > tol {
				return &Error{fmt.Sprintf("eigenvectors %d and %d not orthogonal, dot: %g", i, j, d), []string{"CheckEigen"}, true}
			}
		}
		if i > 0 && E[i-1].Value > p.Value {
			return &Error{fmt.Sprintf("eigenvalues not sorted: %v", E.Values()), []string{"CheckEigen"}, true}
		}
	}
	vals := E.Values()
	if sum := floats.Sum(vals[:]); !scalar.EqualWithinAbsOrRel(sum, T.Trace(), tol*scale, tol) {
		return &Error{fmt.Sprintf("sum of eigenvalues %g differs from trace %g", sum, T.Trace()), []string{"CheckEigen"}, true}
	}
	return nil
}
