/*
 * bonds.go, part of gocrys.
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

package crys

import (
	"gonum.org/v1/gonum/floats"
)

//Bond is an inferred bond between two atoms of a structure. No bond order
//is assigned.
type Bond struct {
	Index int
	At1   ID
	At2   ID
	Dist  float64
}

//Cross returns the id of the atom at the other end of the bond from origin.
//It panics if origin is not in the bond.
func (B Bond) Cross(origin ID) ID {
	if !B.Has(origin) {
		panic("Trying to cross a bond: The origin atom given is not present in the bond!") //a programming error
	}
	if origin == B.At1 {
		return B.At2
	}
	return B.At1
}

//Has returns true if the atom with the given id takes part in the bond.
func (B Bond) Has(id ID) bool {
	return id == B.At1 || id == B.At2
}

//Bonds infers the bonds of the structure from interatomic distances: two atoms
//are bonded when their distance is less than the sum of their covalent radii
//times BondTolerance. Every pair is checked, so the cost grows with the
//square of the number of atoms. The At1 atom of each bond precedes the At2
//atom in the structure.
func (S *Structure) Bonds() []Bond {
	bonds := make([]Bond, 0, len(S.atoms))
	tot := len(S.atoms)
	d := make([]float64, 3)
	for i := 0; i < tot; i++ {
		at1 := S.atoms[i]
		cov1 := CovalentRadius(at1.symbol)
		for j := i + 1; j < tot; j++ {
			at2 := S.atoms[j]
			cov2 := CovalentRadius(at2.symbol)
			floats.SubTo(d, at2.pos[:], at1.pos[:])
			dist := floats.Norm(d, 2)
			if dist < (cov1+cov2)*BondTolerance {
				bonds = append(bonds, Bond{Index: len(bonds), At1: at1.id, At2: at2.id, Dist: dist})
			}
		}
	}
	return bonds
}
