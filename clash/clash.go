/*
 * clash.go, part of gocrys.
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

//Package clash finds close contacts between atoms that are not bonded to each
//other, which usually point at a broken or badly converted structure.
package clash

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	crys "github.com/rmera/gocrys"
	v3 "github.com/rmera/gocrys/v3"
)

//DefaultScale is the fraction of the van der Waals radii sum below which two
//non-bonded atoms clash.
const DefaultScale = 0.6

//Contact is a pair of non-bonded atoms closer than scale times the sum of their
//van der Waals radii. Overlap is that limit minus the distance, so it is always positive.
type Contact struct {
	At1, At2 crys.ID
	Dist     float64
	Overlap  float64
}

//Contacts returns the clashes of mol, largest overlap first. Atom pairs joined
//by a bond are never reported. A scale <= 0 means DefaultScale.
func Contacts(mol crys.Bonder, scale float64) []Contact {
	if scale <= 0 {
		scale = DefaultScale
	}
	bonded := make(map[[2]crys.ID]bool)
	for _, b := range mol.Bonds() {
		bonded[[2]crys.ID{b.At1, b.At2}] = true
		bonded[[2]crys.ID{b.At2, b.At1}] = true
	}
	var ret []Contact
	d := make([]float64, 3)
	for i := 0; i < mol.Len(); i++ {
		a1 := mol.Atom(i)
		p1 := a1.Position()
		r1 := crys.VdwRadius(a1.Symbol())
		for j := i + 1; j < mol.Len(); j++ {
			a2 := mol.Atom(j)
			if bonded[[2]crys.ID{a1.ID(), a2.ID()}] {
				continue
			}
			p2 := a2.Position()
			floats.SubTo(d, p2[:], p1[:])
			dist := floats.Norm(d, 2)
			limit := scale * (r1 + crys.VdwRadius(a2.Symbol()))
			if dist < limit {
				ret = append(ret, Contact{At1: a1.ID(), At2: a2.ID(), Dist: dist, Overlap: limit - dist})
			}
		}
	}
	sort.SliceStable(ret, func(i, j int) bool { return ret[i].Overlap > ret[j].Overlap })
	return ret
}

//LowestDist returns the shortest distance between a point in test and one in
//clash, and the indexes of both points. It returns -1 and {-1,-1} if either set is empty.
func LowestDist(test, clash *v3.Matrix) (dist float64, indexes [2]int) {
	dist = -1
	indexes = [2]int{-1, -1}
	if test == nil || clash == nil {
		return
	}
	d := make([]float64, 3)
	for i := 0; i < test.NVecs(); i++ {
		a1 := test.Vec(i)
		for j := 0; j < clash.NVecs(); j++ {
			a2 := clash.Vec(j)
			floats.SubTo(d, a1[:], a2[:])
			dt := floats.Norm(d, 2)
			if dist < 0 || dt < dist {
				dist = dt
				indexes[0] = i
				indexes[1] = j
			}
		}
	}
	return
}

//Coords returns the positions of the atoms of mol with the given ids, or nil if
//none of them is in mol.
func Coords(mol *crys.Structure, ids []crys.ID) *v3.Matrix {
	vecs := make([][3]float64, 0, len(ids))
	for _, id := range ids {
		if a, ok := mol.AtomByID(id); ok {
			vecs = append(vecs, a.Position())
		}
	}
	if len(vecs) == 0 {
		return nil
	}
	return v3.FromVecs(vecs...)
}

//FragmentGap returns the shortest distance between atoms of two different
//fragments of mol, where each fragment is given as a set of atom ids. It
//returns -1 for fewer than 2 fragments.
func FragmentGap(mol *crys.Structure, fragments [][]crys.ID) float64 {
	coords := make([]*v3.Matrix, len(fragments))
	for i, f := range fragments {
		coords[i] = Coords(mol, f)
	}
	gap := -1.0
	for i := range coords {
		for j := i + 1; j < len(coords); j++ {
			d, _ := LowestDist(coords[i], coords[j])
			if d >= 0 && (gap < 0 || d < gap) {
				gap = d
			}
		}
	}
	return gap
}
