/*
 * atom.go, part of gocrys.
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
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

//ID identifies an Atom or a Structure. IDs are handed out in increasing order
//by an IDGenerator and never reused within a process.
type ID uint64

func (I ID) String() string {
	return fmt.Sprintf("%d", uint64(I))
}

//IDGenerator produces monotonically increasing IDs, starting at 1.
//It is safe for concurrent use.
type IDGenerator struct {
	last atomic.Uint64
}

//Next returns a fresh ID.
func (G *IDGenerator) Next() ID {
	return ID(G.last.Add(1))
}

var (
	atomIDs      IDGenerator
	structureIDs IDGenerator
)

//Atom contains the information to represent an atom, except for the bonds, which
//are inferred on demand by its Structure. The position is in Angstrom and is
//always finite.
type Atom struct {
	id       ID
	symbol   string
	pos      [3]float64
	selected bool
	fixed    bool
	owner    *Structure
}

//NewAtom returns a new atom of the element given by symbol, at position pos.
//symbol can be a label such as "C12" or "FE", it is normalized to the
//element symbol. An unknown element or a non-finite position are errors.
func NewAtom(symbol string, pos [3]float64) (*Atom, error) {
	s, ok := NormalizeSymbol(symbol)
	if !ok {
		return nil, errors.Wrapf(ErrMalformedInput, "unknown element %q", symbol)
	}
	if !finite3(pos) {
		return nil, errors.Wrapf(ErrInvalidGeometry, "non-finite position %v for %s atom", pos, s)
	}
	return &Atom{id: atomIDs.Next(), symbol: s, pos: pos}, nil
}

//ID returns the unique identifier of the atom.
func (A *Atom) ID() ID { return A.id }

//Symbol returns the element symbol of the atom.
func (A *Atom) Symbol() string { return A.symbol }

//Element returns the reference data for the atom's element.
func (A *Atom) Element() Element {
	e, _ := LookupElement(A.symbol)
	return e
}

//Position returns a copy of the atom's cartesian position.
func (A *Atom) Position() [3]float64 { return A.pos }

//SetPosition moves the atom to pos. The position is not changed
//if pos has non-finite components.
func (A *Atom) SetPosition(pos [3]float64) error {
	if !finite3(pos) {
		return errors.Wrapf(ErrInvalidGeometry, "non-finite position %v for atom %d", pos, A.id)
	}
	A.pos = pos
	return nil
}

func (A *Atom) Selected() bool { return A.selected }
func (A *Atom) SetSelected(sel bool) { A.selected = sel }
func (A *Atom) Fixed() bool { return A.fixed }
func (A *Atom) SetFixed(fixed bool) { A.fixed = fixed }

//Copy returns a new, unowned atom with the same element, position and flags
//as A, but a fresh ID.
func (A *Atom) Copy() *Atom {
	return &Atom{
		id:       atomIDs.Next(),
		symbol:   A.symbol,
		pos:      A.pos,
		selected: A.selected,
		fixed:    A.fixed,
	}
}

func (A *Atom) String() string {
	return fmt.Sprintf("%-2s %d %10.5f %10.5f %10.5f", A.symbol, A.id, A.pos[0], A.pos[1], A.pos[2])
}
