/*
 * plain.go, part of gocrys.
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
	"github.com/cockroachdb/errors"
)

//PlainAtom is the plain-data form of an Atom.
type PlainAtom struct {
	ID       ID         `json:"id"`
	Element  string     `json:"element"`
	Position [3]float64 `json:"position"`
	Selected bool       `json:"selected"`
	Fixed    bool       `json:"fixed"`
	Color    string     `json:"color"` //#RRGGBB, for display only
}

//PlainCell is the plain-data form of a UnitCell.
type PlainCell struct {
	A       float64       `json:"a"`
	B       float64       `json:"b"`
	C       float64       `json:"c"`
	Alpha   float64       `json:"alpha"`
	Beta    float64       `json:"beta"`
	Gamma   float64       `json:"gamma"`
	Vectors [3][3]float64 `json:"vectors"`
}

//PlainStructure is a plain-data snapshot of a Structure, with no
//references to the live objects, meant to be sent to a display layer.
type PlainStructure struct {
	ID           ID          `json:"id"`
	Name         string      `json:"name"`
	Atoms        []PlainAtom `json:"atoms"`
	UnitCell     *PlainCell  `json:"unitCell,omitempty"`
	IsCrystal    bool        `json:"isCrystal"`
	Supercell    [3]int      `json:"supercell"`
	Charge       int         `json:"charge"`
	Multiplicity int         `json:"multiplicity"`
}

//Plain returns the plain-data form of the structure.
func (S *Structure) Plain() PlainStructure {
	P := PlainStructure{
		ID:           S.id,
		Name:         S.Name,
		Atoms:        make([]PlainAtom, 0, len(S.atoms)),
		IsCrystal:    S.crystal,
		Supercell:    S.Repeat,
		Charge:       S.charge,
		Multiplicity: S.multi,
	}
	for _, a := range S.atoms {
		P.Atoms = append(P.Atoms, PlainAtom{ID: a.id, Element: a.symbol, Position: a.pos, Selected: a.selected, Fixed: a.fixed, Color: a.Element().ColorHex()})
	}
	if S.cell != nil {
		l, ang := S.cell.Lengths(), S.cell.Angles()
		P.UnitCell = &PlainCell{A: l[0], B: l[1], C: l[2], Alpha: ang[0], Beta: ang[1], Gamma: ang[2], Vectors: S.cell.Vectors()}
	}
	return P
}

//FromPlain builds a new Structure from its plain-data form. The structure and
//its atoms get fresh ids; the ids in P are ignored. If P carries lattice vectors
//they are used for the cell, otherwise the cell parameters are.
func FromPlain(P PlainStructure) (*Structure, error) {
	S := NewStructure(P.Name)
	for i, pa := range P.Atoms {
		a, err := NewAtom(pa.Element, pa.Position)
		if err != nil {
			return nil, errors.Wrapf(err, "FromPlain: atom %d", i)
		}
		a.selected, a.fixed = pa.Selected, pa.Fixed
		S.AddAtom(a)
	}
	if P.UnitCell != nil {
		var U *UnitCell
		var err error
		if P.UnitCell.Vectors != [3][3]float64{} {
			U, err = UnitCellFromVectors(P.UnitCell.Vectors)
		} else {
			c := P.UnitCell
			U, err = NewUnitCell(c.A, c.B, c.C, c.Alpha, c.Beta, c.Gamma)
		}
		if err != nil {
			return nil, errors.Wrap(err, "FromPlain")
		}
		S.cell = U
	}
	if err := S.SetCrystal(P.IsCrystal); err != nil {
		return nil, errors.Wrap(err, "FromPlain")
	}
	if P.Supercell != [3]int{} {
		S.Repeat = P.Supercell
	}
	if P.Multiplicity > 0 {
		S.charge, S.multi = P.Charge, P.Multiplicity
	}
	return S, nil
}
