/*
 * poscar.go, part of gocrys.
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
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	crys "github.com/rmera/gocrys"
)

//POSCARCodec reads and writes VASP POSCAR/CONTCAR files. Both VASP5 files (with
//a species line) and VASP4 ones (species taken from the comment line) are read.
//A negative scale factor is the volume of the cell, as in VASP. An atom is fixed
//if all three of its selective dynamics flags are F. A non-periodic structure
//is written in a cubic box, translated so its atoms sit poscarPadding A away
//from the box faces.
type POSCARCodec struct{}

//poscarPadding is the room left around the atoms of a non-periodic structure
//in the box written for it.
const poscarPadding = 10.0

func (P POSCARCodec) Parse(text string) (*crys.Structure, error) {
	lines := splitLines(text)
	if len(lines) < 7 {
		return nil, malformed(POSCAR, "need at least 7 lines, got %d", len(lines))
	}
	S := crys.NewStructure(strings.TrimSpace(lines[0]))
	scale, err := poscarScale(lines[1])
	if err != nil {
		return nil, err
	}
	var vecs [3][3]float64
	for i := range vecs {
		vecs[i], err = parseVec(strings.Fields(lines[2+i]))
		if err != nil {
			return nil, malformed(POSCAR, "lattice vector %d: %v", i+1, err)
		}
	}
	if scale[0] < 0 {
		U, err := crys.UnitCellFromVectors(vecs)
		if err != nil {
			return nil, malformed(POSCAR, "lattice: %v", err)
		}
		f := math.Cbrt(-scale[0] / U.Volume())
		scale = [3]float64{f, f, f}
	}
	for i := range vecs {
		for j := range vecs[i] {
			vecs[i][j] *= scale[j]
		}
	}
	U, err := crys.UnitCellFromVectors(vecs)
	if err != nil {
		return nil, malformed(POSCAR, "lattice: %v", err)
	}
	S.SetPeriodic(U)
	i := 5
	var species []string
	if _, err := strconv.Atoi(firstField(lines[i])); err != nil {
		species = strings.Fields(lines[i])
		i++
	}
	if i >= len(lines) {
		return nil, malformed(POSCAR, "no atom counts line")
	}
	var counts []int
	for _, f := range strings.Fields(lines[i]) {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, malformed(POSCAR, "bad atom count %q", f)
		}
		counts = append(counts, n)
	}
	i++
	if species == nil {
		species = vasp4Species(lines[0], len(counts))
	}
	if len(species) < len(counts) {
		return nil, malformed(POSCAR, "%d atom counts but %d species", len(counts), len(species))
	}
	selective := false
	if i < len(lines) && strings.HasPrefix(strings.ToLower(firstField(lines[i])), "s") {
		selective = true
		i++
	}
	if i >= len(lines) {
		return nil, malformed(POSCAR, "no Direct/Cartesian line")
	}
	mode := strings.ToLower(firstField(lines[i]))
	cartesian := strings.HasPrefix(mode, "c") || strings.HasPrefix(mode, "k")
	i++
	for sp, n := range counts {
		for k := 0; k < n; k, i = k+1, i+1 {
			if i >= len(lines) {
				skipLine(POSCAR, i+1, "file ends before all atoms were read")
				return S, nil
			}
			fields := strings.Fields(lines[i])
			pos, err := parseVec(fields)
			if err != nil {
				skipLine(POSCAR, i+1, err)
				continue
			}
			if cartesian {
				for j := range pos {
					pos[j] *= scale[j]
				}
			} else {
				pos = U.FracToCart(pos)
			}
			a, ok := addAtom(S, POSCAR, i+1, species[sp], pos)
			if ok && selective && len(fields) >= 6 {
				a.SetFixed(isF(fields[3]) && isF(fields[4]) && isF(fields[5]))
			}
		}
	}
	return S, nil
}

//poscarScale reads the scale line: one factor, a negative volume,
//or three per-axis factors.
func poscarScale(line string) ([3]float64, error) {
	fields := strings.Fields(line)
	if len(fields) >= 3 {
		v, err := parseVec(fields)
		if err == nil && v[0] > 0 && v[1] > 0 && v[2] > 0 {
			return v, nil
		}
	}
	if len(fields) < 1 {
		return [3]float64{}, malformed(POSCAR, "no scale factor")
	}
	f, err := parseFloat(fields[0])
	if err != nil || f == 0 {
		return [3]float64{}, malformed(POSCAR, "bad scale factor %q", fields[0])
	}
	return [3]float64{f, f, f}, nil
}

//vasp4Species takes the species from the comment line of files
//without a species line.
func vasp4Species(comment string, n int) []string {
	var sp []string
	for _, f := range strings.Fields(comment) {
		if s, ok := crys.NormalizeSymbol(f); ok {
			sp = append(sp, s)
		}
		if len(sp) == n {
			break
		}
	}
	return sp
}

func firstField(line string) string {
	f := strings.Fields(line)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

func isF(s string) bool {
	return strings.EqualFold(s, "F") || strings.EqualFold(s, ".false.")
}

func (P POSCARCodec) Serialize(S *crys.Structure) string {
	var b strings.Builder
	name := strings.ReplaceAll(S.Name, "\n", " ")
	if strings.TrimSpace(name) == "" {
		name = S.Formula()
	}
	fmt.Fprintf(&b, "%s\n1.0\n", name)
	U := cellOrNil(S)
	var shift [3]float64
	if U == nil {
		U, shift = enclosingBox(S)
	}
	for _, v := range U.Vectors() {
		fmt.Fprintf(&b, "  "+coordFmt+coordFmt+coordFmt+"\n", v[0], v[1], v[2])
	}
	order, groups := elementGroups(S)
	b.WriteString(" ")
	for _, s := range order {
		fmt.Fprintf(&b, " %-4s", s)
	}
	b.WriteString("\n ")
	for _, s := range order {
		fmt.Fprintf(&b, " %-4d", len(groups[s]))
	}
	b.WriteString("\nSelective dynamics\n")
	if S.IsCrystal() {
		b.WriteString("Direct\n")
	} else {
		b.WriteString("Cartesian\n")
	}
	for _, s := range order {
		for _, a := range groups[s] {
			p := a.Position()
			if S.IsCrystal() {
				p = U.CartToFrac(p)
			} else {
				floats.Add(p[:], shift[:])
			}
			flags := "T T T"
			if a.Fixed() {
				flags = "F F F"
			}
			fmt.Fprintf(&b, "  "+coordFmt+coordFmt+coordFmt+" %s\n", p[0], p[1], p[2], flags)
		}
	}
	return b.String()
}

//enclosingBox returns a cubic cell large enough to hold the atoms
//of S with poscarPadding A to spare on each side, and the translation
//that puts the atoms inside it.
func enclosingBox(S *crys.Structure) (*crys.UnitCell, [3]float64) {
	side := 0.0
	var shift [3]float64
	if S.Len() > 0 {
		lo, hi := S.Atom(0).Position(), S.Atom(0).Position()
		for _, a := range S.Atoms() {
			p := a.Position()
			for j := range p {
				lo[j] = math.Min(lo[j], p[j])
				hi[j] = math.Max(hi[j], p[j])
			}
		}
		for j := range lo {
			side = math.Max(side, hi[j]-lo[j])
			shift[j] = poscarPadding - lo[j]
		}
	}
	side += 2 * poscarPadding
	U, _ := crys.NewUnitCell(side, side, side, 90, 90, 90) //always valid
	return U, shift
}
