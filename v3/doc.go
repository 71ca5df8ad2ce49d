/*
 * doc.go, part of goeig.
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

/*
Package v3 implements a Tensor type representing a symmetric 3x3 matrix, such
as the gyration tensor of a molecule, and its eigendecomposition.

A Tensor only stores its 6 independent elements, so it is symmetric by construction.
EigenSym diagonalizes it with Jacobi rotations and returns the 3 eigenvalues in
ascending order, each with its unit eigenvector. Vectors are gonum's r3.Vec, so
they can be used directly with the gonum.org/v1/gonum/spatial/r3 functions.
*/
package v3
