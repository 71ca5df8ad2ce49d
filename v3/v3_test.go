/*
 * v3_test.go, part of goeig.
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

package v3

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const testTol = 1e-6

func randomTensor(rnd *rand.Rand, scale float64) Tensor {
	f := func() float64 { return (rnd.Float64()*2 - 1) * scale }
	return NewTensor(f(), f(), f(), f(), f(), f())
}

func TestTensorSymmetry(Te *testing.T) {
	T := NewTensor(1, 2, 3, 4, 5, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(Te, T.At(i, j), T.At(j, i))
		}
	}
	assert.Equal(Te, 4.0, T.At(0, 1))
	assert.Equal(Te, 5.0, T.At(2, 0))
	assert.Equal(Te, 6.0, T.At(1, 2))
	assert.Equal(Te, 6.0, T.Trace())
	assert.True(Te, mat.Equal(T, T.SymDense()))
	assert.Panics(Te, func() { T.At(3, 0) })
}

func TestTensorMulVec(Te *testing.T) {
	T := NewTensor(1, 2, 3, 4, 5, 6)
	v := r3.Vec{X: 1, Y: -1, Z: 2}
	var want mat.VecDense
	want.MulVec(T.SymDense(), mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	got := T.MulVec(v)
	assert.InDelta(Te, want.AtVec(0), got.X, 1e-12)
	assert.InDelta(Te, want.AtVec(1), got.Y, 1e-12)
	assert.InDelta(Te, want.AtVec(2), got.Z, 1e-12)
	assert.InDelta(Te, mat.Det(T.SymDense()), T.Det(), 1e-9)
}

func TestEigenDiagonal(Te *testing.T) {
	e := EigenSym(Diag(1, 2, 3))
	assert.Equal(Te, [3]float64{1, 2, 3}, e.Values())
	want := [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}
	for i, v := range e.Vectors() {
		assert.InDelta(Te, 1, math.Abs(r3.Dot(v, want[i])), 1e-12, "eigenvector %d: %v", i, v)
	}
	//unsorted diagonal
	e = EigenSym(Diag(3, 1, 2))
	assert.Equal(Te, [3]float64{1, 2, 3}, e.Values())
	assert.InDelta(Te, 1, math.Abs(e[0].Vector.Y), 1e-12)
	assert.InDelta(Te, 1, math.Abs(e[1].Vector.Z), 1e-12)
	assert.InDelta(Te, 1, math.Abs(e[2].Vector.X), 1e-12)
	require.NoError(Te, CheckEigen(Diag(3, 1, 2), e, testTol))
}

func TestEigenIdentity(Te *testing.T) {
	I := Diag(1, 1, 1)
	e := EigenSym(I)
	assert.Equal(Te, [3]float64{1, 1, 1}, e.Values())
	require.NoError(Te, CheckEigen(I, e, testTol))
}

func TestEigenZero(Te *testing.T) {
	e := EigenSym(Tensor{})
	assert.Equal(Te, [3]float64{0, 0, 0}, e.Values())
	require.NoError(Te, CheckEigen(Tensor{}, e, testTol))
}

func TestEigenDegenerate(Te *testing.T) {
	tests := []struct {
		name string
		t    Tensor
		want [3]float64
	}{
		{"ones", NewTensor(2, 2, 2, 1, 1, 1), [3]float64{1, 1, 4}},
		{"rod", NewTensor(1, 1, 1, 1, 1, 1), [3]float64{0, 0, 3}},
		{"block", NewTensor(1, 2, 1, 0, 1, 0), [3]float64{0, 2, 2}},
	}
	for _, tt := range tests {
		Te.Run(tt.name, func(Te *testing.T) {
			e := EigenSym(tt.t)
			for i, v := range e.Values() {
				assert.InDelta(Te, tt.want[i], v, 1e-9)
			}
			require.NoError(Te, CheckEigen(tt.t, e, testTol))
		})
	}
}

func TestEigenNotDiagonal(Te *testing.T) {
	//eigenvalues -1, 1, 3
	T := NewTensor(1, 1, 1, 2, 0, 0)
	e := EigenSym(T)
	want := [3]float64{-1, 1, 3}
	for i, v := range e.Values() {
		assert.InDelta(Te, want[i], v, 1e-12)
	}
	assert.InDelta(Te, 1, math.Abs(e[1].Vector.Z), 1e-12)
	require.NoError(Te, CheckEigen(T, e, testTol))
}

// Compares with gonum's LAPACK-based decomposition.
func TestEigenRandom(Te *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for n := 0; n < 500; n++ {
		scale := math.Pow(10, float64(n%7-3))
		T := randomTensor(rnd, scale)
		e := EigenSym(T)
		if err := CheckEigen(T, e, testTol); err != nil {
			Te.Fatalf("tensor %d\n%v\n%s", n, T, err)
		}
		assert.Greater(Te, det(toArray(e.Vectors())), 0.0, "left-handed basis for tensor %d", n)
		var es mat.EigenSym
		require.True(Te, es.Factorize(T.SymDense(), false))
		ref := es.Values(nil)
		for i, v := range e.Values() {
			assert.InDelta(Te, ref[i], v, testTol*math.Max(1, T.Norm()), "tensor %d eigenvalue %d", n, i)
		}
	}
}

// Elements whose squares overflow or underflow a float64.
func TestEigenExtremeScale(Te *testing.T) {
	for _, sc := range []float64{1e-170, 1e-300, 1e150, 1e160, 1e200, 1e300} {
		T := NewTensor(2*sc, 2*sc, 2*sc, sc, sc, sc)
		e := EigenSym(T)
		want := [3]float64{sc, sc, 4 * sc}
		for i, v := range e.Values() {
			assert.InDelta(Te, 1, v/want[i], 1e-9, "scale %g eigenvalue %d: %g", sc, i, v)
		}
		assert.False(Te, math.IsInf(T.Norm(), 0), "scale %g", sc)
		assert.InDelta(Te, 1, T.Norm()/(sc*math.Sqrt(18)), 1e-12, "scale %g", sc)
		require.NoError(Te, CheckEigen(T, e, testTol), "scale %g", sc)

		//the unrotated tensor is not a decomposition at any scale.
		var bad Eigen
		bad[0] = EigenPair{2 * sc, r3.Vec{X: 1}}
		bad[1] = EigenPair{2 * sc, r3.Vec{Y: 1}}
		bad[2] = EigenPair{2 * sc, r3.Vec{Z: 1}}
		assert.Error(Te, CheckEigen(T, bad, testTol), "scale %g", sc)
	}
}

func TestEigenDeterministic(Te *testing.T) {
	T := NewTensor(4.2, 1.3, 7.7, 0.4, -2.2, 0.9)
	a := EigenSym(T)
	b := EigenSym(T)
	assert.Equal(Te, a, b)
}

func TestCheckEigenFails(Te *testing.T) {
	T := Diag(1, 2, 3)
	e := EigenSym(T)
	bad := e
	bad[0].Value = 1.5
	assert.Error(Te, CheckEigen(T, bad, testTol))
	bad = e
	bad[0], bad[1] = bad[1], bad[0]
	assert.Error(Te, CheckEigen(T, bad, testTol))
	bad = e
	bad[2].Vector = r3.Scale(2, bad[2].Vector)
	err := CheckEigen(T, bad, testTol)
	require.Error(Te, err)
	fmt.Println("expected error:", err)
	deco := err.(*Error).Decorate("TestCheckEigenFails")
	assert.Equal(Te, []string{"CheckEigen", "TestCheckEigenFails"}, deco)
}

func toArray(v [3]r3.Vec) [3][3]float64 {
	var ret [3][3]float64
	for j, c := range v {
		ret[0][j], ret[1][j], ret[2][j] = c.X, c.Y, c.Z
	}
	return ret
}

func TestShapeIndexes(Te *testing.T) {
	sphere := ShapeIndexes(EigenSym(Diag(2, 2, 2)))
	assert.InDelta(Te, math.Sqrt(6), sphere.Rg, 1e-12)
	assert.InDelta(Te, 0, sphere.Asphericity, 1e-12)
	assert.InDelta(Te, 0, sphere.Acylindricity, 1e-12)
	assert.InDelta(Te, 0, sphere.Anisotropy, 1e-12)

	rod := ShapeIndexes(EigenSym(Diag(0, 0, 4)))
	assert.InDelta(Te, 2, rod.Rg, 1e-12)
	assert.InDelta(Te, 4, rod.Asphericity, 1e-12)
	assert.InDelta(Te, 1, rod.Anisotropy, 1e-12)

	disk := ShapeIndexes(EigenSym(Diag(0, 1, 1)))
	assert.InDelta(Te, 0.5, disk.Asphericity, 1e-12)
	assert.InDelta(Te, 1, disk.Acylindricity, 1e-12)
	assert.InDelta(Te, 0.25, disk.Anisotropy, 1e-12)

	assert.Equal(Te, Shape{}, ShapeIndexes(EigenSym(Tensor{})))
}

func TestBestPlane(Te *testing.T) {
	//flat in the xz plane
	e := EigenSym(Diag(5, 0.1, 3))
	n := BestPlane(e)
	assert.InDelta(Te, 1, math.Abs(n.Y), 1e-12)
	assert.InDelta(Te, 1, r3.Dot(n, e[0].Vector), 1e-12)
}
