/*
 * structure.go, part of gocrys.
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

	"github.com/cockroachdb/errors"
)

//Structure is a molecule or a crystal: an ordered set of atoms it owns
//exclusively, and an optional unit cell. Atom order is kept as inserted.
//A Structure is not safe for concurrent mutation.
type Structure struct {
	id      ID
	Name    string
	atoms   []*Atom
	byID    map[ID]*Atom
	cell    *UnitCell
	crystal bool
	Repeat  [3]int //multiplicity along a, b and c. Metadata only.
	charge  int
	multi   int
}

//NewStructure returns an empty, non-periodic structure with the given name.
func NewStructure(name string) *Structure {
	return &Structure{
		id:     structureIDs.Next(),
		Name:   name,
		byID:   make(map[ID]*Atom),
		Repeat: [3]int{1, 1, 1},
		multi:  1,
	}
}

func (S *Structure) ID() ID { return S.id }

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int { return len(S.atoms) }

//Atoms returns the atoms of the structure, in order. The slice is a copy
//but the atoms are not.
func (S *Structure) Atoms() []*Atom {
	ret := make([]*Atom, len(S.atoms))
	copy(ret, S.atoms)
	return ret
}

//Atom returns the ith atom of the structure. It panics if i is out of range.
func (S *Structure) Atom(i int) *Atom { return S.atoms[i] }

//AtomByID returns the atom with the given id, and whether it was found.
func (S *Structure) AtomByID(id ID) (*Atom, bool) {
	a, ok := S.byID[id]
	return a, ok
}

//AddAtom appends A to the structure, which takes ownership of it.
//An atom that already belongs to a structure can't be added.
func (S *Structure) AddAtom(A *Atom) error {
	if A == nil {
		return errors.New("AddAtom: nil atom")
	}
	if A.owner != nil {
		return errors.Newf("AddAtom: atom %d already belongs to structure %d", A.id, A.owner.id)
	}
	if _, ok := S.byID[A.id]; ok {
		return errors.Newf("AddAtom: duplicate atom id %d", A.id)
	}
	A.owner = S
	S.atoms = append(S.atoms, A)
	S.byID[A.id] = A
	return nil
}

//NewAtom creates an atom and adds it to the structure in one step.
func (S *Structure) NewAtom(symbol string, pos [3]float64) (*Atom, error) {
	A, err := NewAtom(symbol, pos)
	if err != nil {
		return nil, err
	}
	return A, S.AddAtom(A)
}

//RemoveAtom removes the atom with the given id and returns it, or nil
//if no such atom is in the structure. The removed atom is no longer owned.
func (S *Structure) RemoveAtom(id ID) *Atom {
	A, ok := S.byID[id]
	if !ok {
		return nil
	}
	delete(S.byID, id)
	for i, v := range S.atoms {
		if v == A {
			S.atoms = append(S.atoms[:i], S.atoms[i+1:]...)
			break
		}
	}
	A.owner = nil
	return A
}

//Cell returns the unit cell, or nil for a structure without one.
func (S *Structure) Cell() *UnitCell { return S.cell }

//SetCell sets the unit cell, which is owned by the structure from now on.
//Setting a nil cell also marks the structure as non-periodic.
func (S *Structure) SetCell(U *UnitCell) {
	S.cell = U
	if U == nil {
		S.crystal = false
	}
}

//IsCrystal returns true if the structure is periodic.
func (S *Structure) IsCrystal() bool { return S.crystal }

//SetCrystal marks the structure as periodic or not. A structure
//without a unit cell can't be periodic.
func (S *Structure) SetCrystal(crystal bool) error {
	if crystal && S.cell == nil {
		return errors.Wrap(ErrInvalidGeometry, "SetCrystal: structure has no unit cell")
	}
	S.crystal = crystal
	return nil
}

//SetPeriodic sets the cell and marks the structure as a crystal.
func (S *Structure) SetPeriodic(U *UnitCell) {
	S.cell = U
	S.crystal = U != nil
}

func (S *Structure) Charge() int { return S.charge }
func (S *Structure) Multiplicity() int { return S.multi }

//SetChargeMulti sets the total charge and the spin multiplicity.
//The multiplicity must be at least 1.
func (S *Structure) SetChargeMulti(charge, multi int) error {
	if multi < 1 {
		return errors.Newf("SetChargeMulti: multiplicity %d should be 1 or more", multi)
	}
	S.charge = charge
	S.multi = multi
	return nil
}

func (S *Structure) String() string {
	return fmt.Sprintf("structure %d %q: %d atoms, crystal: %v", S.id, S.Name, len(S.atoms), S.crystal)
}
