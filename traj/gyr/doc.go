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

/*
Package gyr reads gyration tensor trajectories, as written, for instance,
by the radius of gyration analysis tools of MD packages.

******************** Format  ***************************************************

The file is plain text, one frame per line. Lines starting with '#' (leading
blanks are allowed) are comments, and blank lines are ignored. Every other line
must contain exactly 9 fields separated by any amount of white space:

	Frame RoG RoG_max XX YY ZZ XY XZ YZ

Only the last 6 fields, the independent elements of the symmetric gyration
tensor, are read. They must be finite real numbers. The first 3 fields are not
checked. Frames are numbered 1, 2, 3... in the order they appear in the file,
regardless of the value in the Frame field or of the comment lines.

A file whose name ends in .zst or .zstd is decompressed with zstd, one ending
in .gz, with gzip.

********************************************************************************
*/
package gyr
