/*
 * geometry.go, part of gocrys.
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
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"

	v3 "github.com/rmera/gocrys/v3"
)

//Masses returns the mass of each atom, in order. Unknown elements
//get DefaultMass.
func (S *Structure) Masses() ([]float64, error) {
	m := make([]float64, len(S.atoms))
	for i, a := range S.atoms {
		m[i] = AtomicMass(a.symbol)
	}
	return m, nil
}

//Coords returns the atom positions as the rows of a new matrix, or nil
//for an empty structure.
func (S *Structure) Coords() *v3.Matrix {
	if len(S.atoms) == 0 {
		return nil
	}
	c := v3.Zeros(len(S.atoms))
	for i, a := range S.atoms {
		c.SetVec(i, a.pos)
	}
	return c
}

//CenterOfMass returns the mass-weighted average position of the atoms.
//The center of an empty structure is the origin.
func (S *Structure) CenterOfMass() [3]float64 {
	var com [3]float64
	if len(S.atoms) == 0 {
		return com
	}
	masses, _ := S.Masses()
	total := floats.Sum(masses)
	for i, a := range S.atoms {
		for j := range com {
			com[j] += masses[i] * a.pos[j]
		}
	}
	floats.Scale(1/total, com[:])
	return com
}

//Translate moves every atom by v.
func (S *Structure) Translate(v [3]float64) error {
	if !finite3(v) {
		return errors.Wrapf(ErrInvalidGeometry, "Translate: non-finite vector %v", v)
	}
	for _, a := range S.atoms {
		floats.Add(a.pos[:], v[:])
	}
	return nil
}

//CenterAtOrigin translates the structure so its center of mass is at the origin.
func (S *Structure) CenterAtOrigin() {
	com := S.CenterOfMass()
	floats.Scale(-1, com[:])
	S.Translate(com) //com is finite as all positions are.
}

//Supercell returns a new structure made of nx*ny*nz copies of S, each displaced
//by i*a+j*b+k*c, with 0<=i<nx, 0<=j<ny, 0<=k<nz. The new cell is the old one with
//its vectors scaled by nx, ny and nz. S must be a crystal, and the
//multiplicities must be at least 1.
func (S *Structure) Supercell(nx, ny, nz int) (*Structure, error) {
	if !S.crystal || S.cell == nil {
		return nil, errors.Wrapf(ErrInvalidGeometry, "Supercell: structure %q is not periodic", S.Name)
	}
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, errors.Wrapf(ErrInvalidGeometry, "Supercell: multiplicities %d %d %d should be 1 or more", nx, ny, nz)
	}
	vecs := S.cell.Vectors()
	R := NewStructure(S.Name)
	R.charge, R.multi = S.charge, S.multi
	R.atoms = make([]*Atom, 0, len(S.atoms)*nx*ny*nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				var off [3]float64
				for l := range off {
					off[l] = float64(i)*vecs[0][l] + float64(j)*vecs[1][l] + float64(k)*vecs[2][l]
				}
				for _, a := range S.atoms {
					n := a.Copy()
					floats.Add(n.pos[:], off[:])
					R.AddAtom(n) //can't fail, n is fresh.
				}
			}
		}
	}
	R.SetPeriodic(S.cell.Scaled(nx, ny, nz))
	R.Repeat = [3]int{S.Repeat[0] * nx, S.Repeat[1] * ny, S.Repeat[2] * nz}
	return R, nil
}

//Clone returns a deep copy of S. The copy and its atoms get new ids.
func (S *Structure) Clone() *Structure {
	R := NewStructure(S.Name)
	R.atoms = make([]*Atom, 0, len(S.atoms))
	for _, a := range S.atoms {
		R.AddAtom(a.Copy())
	}
	if S.cell != nil {
		R.cell = S.cell.Copy()
	}
	R.crystal = S.crystal
	R.Repeat = S.Repeat
	R.charge, R.multi = S.charge, S.multi
	return R
}

//Formula returns the chemical formula of the structure in Hill order:
//C first, then H, then every other element alphabetically. Without carbon
//all elements go alphabetically.
func (S *Structure) Formula() string {
	count := make(map[string]int)
	for _, a := range S.atoms {
		count[a.symbol]++
	}
	syms := make([]string, 0, len(count))
	for s := range count {
		syms = append(syms, s)
	}
	_, hasC := count["C"]
	sort.Slice(syms, func(i, j int) bool {
		if hasC {
			ri, rj := hillRank(syms[i]), hillRank(syms[j])
			if ri != rj {
				return ri < rj
			}
		}
		return syms[i] < syms[j]
	})
	var b strings.Builder
	for _, s := range syms {
		b.WriteString(s)
		if count[s] > 1 {
			fmt.Fprintf(&b, "%d", count[s])
		}
	}
	return b.String()
}

func hillRank(s string) int {
	switch s {
	case "C":
		return 0
	case "H":
		return 1
	}
	return 2
}
