/*
 * shape.go, part of goeig.
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
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

/***Shape indicator functions***/

// Shape contains shape descriptors obtained from the eigenvalues
// of a gyration tensor.
type Shape struct {
	Rg            float64 //radius of gyration, sqrt(λ1+λ2+λ3)
	Asphericity   float64 //λ3 - (λ1+λ2)/2
	Acylindricity float64 //λ2 - λ1
	Anisotropy    float64 //relative shape anisotropy, κ², between 0 and 1
}

// ShapeIndexes returns the shape descriptors for the eigenvalues in E,
// which must come from a gyration tensor, so they are not negative.
// The anisotropy of a structure collapsed to a point is zero.
func ShapeIndexes(E Eigen) Shape {
	l := E.Values()
	rg2 := l[0] + l[1] + l[2]
	s := Shape{
		Rg:            math.Sqrt(math.Max(rg2, 0)),
		Asphericity:   l[2] - 0.5*(l[0]+l[1]),
		Acylindricity: l[1] - l[0],
	}
	if rg2 > appzero {
		s.Anisotropy = (s.Asphericity*s.Asphericity + 0.75*s.Acylindricity*s.Acylindricity) / (rg2 * rg2)
	}
	return s
}

// BestPlane returns the normal to the plane that best contains
// the structure, i.e., the eigenvector of the smallest eigenvalue,
// obtained as the cross product of the other two.
func BestPlane(E Eigen) r3.Vec {
	return r3.Unit(r3.Cross(E[1].Vector, E[2].Vector))
}

// everything equal or less than this is considered zero.
const appzero float64 = 1e-12
