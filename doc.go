/*
 * doc.go, part of gocrys.
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

/*Package crys is the main package of the goCrys library. It provides atom, unit cell and
structure types for molecules and crystals, and the geometric operations used when building
and inspecting them.



	**goCrys Capabilities**


    Element reference data: masses, covalent and van der Waals radii, display colors.

    Unit cells built from parameters (standard orientation) or from lattice vectors,
	with fractional/cartesian conversions.

    Bond inference from covalent radii, center of mass, translation and centering.

    Supercell generation and deep cloning of structures.

    A plain-data form of structures that can be JSON encoded (see the chemjson package)
	and sent to a display layer.

    Reads and writes XYZ, CIF, POSCAR, Gaussian, ORCA, PDB and ABACUS STRU files
	(see the formats and fileio packages).

*/
package crys
