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
Package eig obtains the eigenvalues and eigenvectors of the gyration tensor
along a trajectory.

The input is a text file with one gyration tensor per line (see package
github.com/rmera/goeig/traj/gyr for the format). The output is a fixed-width
table with, for each frame, the 3 eigenvalues in ascending order and the
corresponding unit eigenvectors (see package github.com/rmera/goeig/report).

	**goeig Capabilities**

	Reads plain, zstd- or gzip-compressed gyration tensor trajectories.

	Diagonalizes each tensor with a self-contained Jacobi solver (package v3).
	The eigenvalues are always sorted and the eigenvectors form a right-handed
	orthonormal basis, so the output is reproducible.

	Optionally checks every decomposition, and decomposes frames concurrently.

	Writes the report atomically: the output file is either fully written or left
	as it was.

	Plots eigenvalues and shape indexes (asphericity, acylindricity, relative
	shape anisotropy) along the trajectory (package eigplot).

The goeig command in cmd/goeig wraps Run.
*/
package eig
