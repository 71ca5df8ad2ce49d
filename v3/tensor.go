/*
 * tensor.go, part of goeig.
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

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tensor is a symmetric 3x3 matrix. Only the 6 independent elements
// are stored, so T.At(i,j)==T.At(j,i) always.
type Tensor struct {
	XX, YY, ZZ float64
	XY, XZ, YZ float64
}

// NewTensor returns a Tensor with diagonal (xx,yy,zz) and
// off-diagonal pairs (xy,xz,yz).
func NewTensor(xx, yy, zz, xy, xz, yz float64) Tensor {
	return Tensor{XX: xx, YY: yy, ZZ: zz, XY: xy, XZ: xz, YZ: yz}
}

// Diag returns a diagonal Tensor.
func Diag(a, b, c float64) Tensor {
	return Tensor{XX: a, YY: b, ZZ: c}
}

// At returns the i,j element of the tensor. It panics if
// either index is not 0, 1 or 2.
func (T Tensor) At(i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	switch {
	case i == 0 && j == 0:
		return T.XX
	case i == 1 && j == 1:
		return T.YY
	case i == 2 && j == 2:
		return T.ZZ
	case i == 0 && j == 1:
		return T.XY
	case i == 0 && j == 2:
		return T.XZ
	case i == 1 && j == 2:
		return T.YZ
	}
	panic(ErrIndexOutOfRange)
}

// Dims returns 3,3. Together with At and T it makes Tensor a mat.Matrix.
func (T Tensor) Dims() (int, int) { return 3, 3 }

// T returns the transpose of the tensor, which is the tensor itself.
func (T Tensor) T() mat.Matrix { return T }

// SymmetricDim returns 3, for the mat.Symmetric interface.
func (T Tensor) SymmetricDim() int { return 3 }

// Trace returns the sum of the diagonal elements.
func (T Tensor) Trace() float64 {
	return T.XX + T.YY + T.ZZ
}

// Det returns the determinant of the tensor.
func (T Tensor) Det() float64 {
	return det(T.Array())
}

// Array returns the full 3x3 matrix, both off-diagonal copies included.
func (T Tensor) Array() [3][3]float64 {
	return [3][3]float64{
		{T.XX, T.XY, T.XZ},
		{T.XY, T.YY, T.YZ},
		{T.XZ, T.YZ, T.ZZ},
	}
}

// SymDense returns a gonum copy of the tensor.
func (T Tensor) SymDense() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		T.XX, T.XY, T.XZ,
		T.XY, T.YY, T.YZ,
		T.XZ, T.YZ, T.ZZ,
	})
}

// MulVec returns the product T·v.
func (T Tensor) MulVec(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: T.XX*v.X + T.XY*v.Y + T.XZ*v.Z,
		Y: T.XY*v.X + T.YY*v.Y + T.YZ*v.Z,
		Z: T.XZ*v.X + T.YZ*v.Y + T.ZZ*v.Z,
	}
}

// MaxAbs returns the largest absolute value among the elements.
func (T Tensor) MaxAbs() float64 {
	m := 0.0
	for _, v := range [...]float64{T.XX, T.YY, T.ZZ, T.XY, T.XZ, T.YZ} {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

// Scale returns the tensor with every element multiplied by f.
func (T Tensor) Scale(f float64) Tensor {
	return Tensor{T.XX * f, T.YY * f, T.ZZ * f, T.XY * f, T.XZ * f, T.YZ * f}
}

// div divides every element by d. Unlike Scale(1/d), it works
// for subnormal d.
func (T Tensor) div(d float64) Tensor {
	return Tensor{T.XX / d, T.YY / d, T.ZZ / d, T.XY / d, T.XZ / d, T.YZ / d}
}

// Norm returns the Frobenius norm of the tensor. The elements are
// divided by the largest one before squaring, so the result doesn't
// overflow or underflow unless the norm itself does.
func (T Tensor) Norm() float64 {
	m := T.MaxAbs()
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return m
	}
	S := T.div(m)
	d := S.XX*S.XX + S.YY*S.YY + S.ZZ*S.ZZ
	o := S.XY*S.XY + S.XZ*S.XZ + S.YZ*S.YZ
	return m * math.Sqrt(d+2*o)
}

// IsFinite returns false if any element is NaN or infinite.
func (T Tensor) IsFinite() bool {
	for _, v := range [...]float64{T.XX, T.YY, T.ZZ, T.XY, T.XZ, T.YZ} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (T Tensor) String() string {
	return fmt.Sprintf("[%g %g %g\n %g %g %g\n %g %g %g]", T.XX, T.XY, T.XZ, T.XY, T.YY, T.YZ, T.XZ, T.YZ, T.ZZ)
}

// det returns the determinant of a 3x3 array.
func det(A [3][3]float64) float64 {
	return A[0][0]*(A[1][1]*A[2][2]-A[2][1]*A[1][2]) - A[1][0]*(A[0][1]*A[2][2]-A[2][1]*A[0][2]) + A[2][0]*(A[0][1]*A[1][2]-A[1][1]*A[0][2])
}
