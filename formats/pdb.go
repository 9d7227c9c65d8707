/*
 * pdb.go, part of gocrys.
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

package formats

import (
	"fmt"
	"strings"

	crys "github.com/rmera/gocrys"
)

//PDBCodec reads and writes the fixed-column PDB format. Only the first model is read.
//The element is taken from columns 77-78, or guessed from the atom name when those are
//blank. A CRYST1 record gives the unit cell.
type PDBCodec struct{}

//pdbField returns the trimmed columns from-to (1-based, inclusive) of line,
//or "" if the line is shorter.
func pdbField(line string, from, to int) string {
	if len(line) < from {
		return ""
	}
	return strings.TrimSpace(line[from-1 : min(to, len(line))])
}

//symbolFromName tries to guess a chemical element symbol from a PDB atom name.
//Mostly based on AMBER names. It only deals with some common bio-elements.
func symbolFromName(name string) string {
	name = strings.TrimLeft(strings.ToUpper(name), "0123456789")
	if name == "" {
		return ""
	}
	switch {
	case len(name) == 4 || name[0] == 'H': //only Hs can have 4-char names in amber.
		return "H"
	case name[0] == 'C': //Ca is not considered here
		switch name {
		case "CU":
			return "Cu"
		case "CO":
			return "Co"
		case "CL":
			return "Cl"
		}
		return "C"
	case name[0] == 'N':
		if name == "NA" {
			return "Na"
		}
		return "N"
	case name[0] == 'O':
		return "O"
	case name[0] == 'P':
		return "P"
	case name[0] == 'S':
		if name == "SE" {
			return "Se"
		}
		return "S"
	case strings.HasPrefix(name, "ZN"):
		return "Zn"
	case strings.HasPrefix(name, "FE"):
		return "Fe"
	case strings.HasPrefix(name, "MG"):
		return "Mg"
	}
	return name
}

func (P PDBCodec) Parse(text string) (*crys.Structure, error) {
	lines := splitLines(text)
	S := crys.NewStructure("")
	records := 0
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "ENDMDL"):
			if records > 0 {
				return S, nil
			}
		case strings.HasPrefix(line, "TITLE") && S.Name == "":
			S.Name = pdbField(line, 11, 80)
		case strings.HasPrefix(line, "CRYST1"):
			pdbCryst1(S, line, i+1)
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			records++
			if len(line) < 54 {
				skipLine(PDB, i+1, "ATOM/HETATM record shorter than 54 columns")
				continue
			}
			pos, err := parseVec([]string{line[30:38], line[38:46], line[46:54]})
			if err != nil {
				skipLine(PDB, i+1, err)
				continue
			}
			el := pdbField(line, 77, 78)
			if el == "" {
				el = symbolFromName(pdbField(line, 13, 16))
			}
			addAtom(S, PDB, i+1, el, pos)
		}
	}
	if records == 0 {
		return nil, malformed(PDB, "no ATOM or HETATM records")
	}
	return S, nil
}

//pdbCryst1 reads a CRYST1 record. The 1 1 1 placeholder cell some
//programs write for non-periodic systems is ignored.
func pdbCryst1(S *crys.Structure, line string, lineno int) {
	cols := [6][2]int{{7, 15}, {16, 24}, {25, 33}, {34, 40}, {41, 47}, {48, 54}}
	var p [6]float64
	for i, c := range cols {
		f, err := parseFloat(pdbField(line, c[0], c[1]))
		if err != nil {
			skipLine(PDB, lineno, err)
			return
		}
		p[i] = f
	}
	if p[0] == 1 && p[1] == 1 && p[2] == 1 {
		return
	}
	U, err := crys.NewUnitCell(p[0], p[1], p[2], p[3], p[4], p[5])
	if err != nil {
		skipLine(PDB, lineno, err)
		return
	}
	S.SetPeriodic(U)
}

func (P PDBCodec) Serialize(S *crys.Structure) string {
	var b strings.Builder
	if t := strings.TrimSpace(strings.ReplaceAll(S.Name, "\n", " ")); t != "" {
		fmt.Fprintf(&b, "TITLE     %s\n", t)
	}
	coords := S.Coords()
	if U := cellOrNil(S); U != nil {
		//CRYST1 only has the cell parameters, so the atoms go in the frame
		//the reader rebuilds the cell in.
		if std, moved, err := U.Standardize(coords); err == nil {
			U, coords = std, moved
		}
		l, a := U.Lengths(), U.Angles()
		fmt.Fprintf(&b, "CRYST1%9.3f%9.3f%9.3f%7.2f%7.2f%7.2f P 1           1\n", l[0], l[1], l[2], a[0], a[1], a[2])
	}
	for i, a := range S.Atoms() {
		s := a.Symbol()
		name := fmt.Sprintf("%-4s", s)
		if len(s) == 1 {
			name = " " + fmt.Sprintf("%-3s", s)
		}
		p := coords.Vec(i)
		fmt.Fprintf(&b, "%-6s%5d %4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n",
			"HETATM", (i+1)%100000, name, "UNL", "A", 1, p[0], p[1], p[2], 1.0, 0.0, strings.ToUpper(s))
	}
	b.WriteString("END\n")
	return b.String()
}
