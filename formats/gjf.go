/*
 * gjf.go, part of gocrys.
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
	"strconv"
	"strings"

	crys "github.com/rmera/gocrys"
)

//GJFCodec reads and writes Gaussian input files. Link 0 and route lines are
//not validated. Coordinates can be given as "El x y z" or "El flag x y z", where
//a flag of -1 freezes the atom. Elements may be symbols, labels such as
//C(Fragment=1), or atomic numbers. Three Tv lines give the lattice vectors of a
//periodic system. Z-matrix input is not supported.
type GJFCodec struct{}

//GJFRoute is the route section written by GJFCodec.
const GJFRoute = "#P PBE1PBE/def2SVP"

func (G GJFCodec) Parse(text string) (*crys.Structure, error) {
	lines := splitLines(text)
	i := 0
	for ; i < len(lines); i++ {
		l := strings.TrimSpace(lines[i])
		if l == "" || strings.HasPrefix(l, "%") {
			continue
		}
		if strings.HasPrefix(l, "#") {
			break
		}
		return nil, malformed(GJF, "line %d: expected the route section (a line starting with #)", i+1)
	}
	if i >= len(lines) {
		return nil, malformed(GJF, "no route section (a line starting with #)")
	}
	i = skipBlock(lines, i)
	titleStart := i
	i = skipBlock(lines, i)
	title := strings.Join(strings.Fields(strings.Join(lines[titleStart:min(i, len(lines))], " ")), " ")
	if i >= len(lines) {
		return nil, malformed(GJF, "no charge and multiplicity line")
	}
	S := crys.NewStructure(title)
	if err := parseChargeMulti(S, GJF, lines[i]); err != nil {
		return nil, err
	}
	i++
	var tv [][3]float64
	for ; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			break
		}
		fields := strings.Fields(lines[i])
		if len(fields) < 4 {
			skipLine(GJF, i+1, "too few fields")
			continue
		}
		frozen := false
		coords := fields[1:4]
		if len(fields) >= 5 {
			if flag, err := strconv.Atoi(fields[1]); err == nil && (flag == 0 || flag == -1) {
				frozen = flag == -1
				coords = fields[2:5]
			}
		}
		pos, err := parseVec(coords)
		if err != nil {
			skipLine(GJF, i+1, err)
			continue
		}
		if strings.EqualFold(fields[0], "Tv") {
			tv = append(tv, pos)
			continue
		}
		a, ok := addAtom(S, GJF, i+1, gaussianElement(fields[0]), pos)
		if ok {
			a.SetFixed(frozen)
		}
	}
	switch len(tv) {
	case 0:
	case 3:
		U, err := crys.UnitCellFromVectors([3][3]float64{tv[0], tv[1], tv[2]})
		if err != nil {
			return nil, malformed(GJF, "Tv vectors: %v", err)
		}
		S.SetPeriodic(U)
	default:
		skipLine(GJF, i, fmt.Sprintf("%d Tv vectors, only 3D periodicity is supported", len(tv)))
	}
	return S, nil
}

//skipBlock returns the index of the first line after the block of non-blank
//lines starting at i, and the blank lines that follow it.
func skipBlock(lines []string, i int) int {
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		i++
	}
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return i
}

//gaussianElement turns atomic numbers into symbols. Other labels are left
//for crys.NormalizeSymbol.
func gaussianElement(label string) string {
	if z, err := strconv.Atoi(label); err == nil {
		if e, ok := crys.ElementByNumber(z); ok {
			return e.Symbol
		}
	}
	return label
}

//parseChargeMulti reads the charge and the multiplicity from the first two
//fields of line.
func parseChargeMulti(S *crys.Structure, F Format, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return malformed(F, "bad charge and multiplicity line %q", line)
	}
	charge, err1 := strconv.Atoi(fields[0])
	multi, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return malformed(F, "bad charge and multiplicity line %q", line)
	}
	if err := S.SetChargeMulti(charge, multi); err != nil {
		return malformed(F, "%v", err)
	}
	return nil
}

func chargeMultiLine(A crys.AtomMultiCharger) string {
	return fmt.Sprintf("%d %d", A.Charge(), A.Multiplicity())
}

func (G GJFCodec) Serialize(S *crys.Structure) string {
	var b strings.Builder
	title := strings.TrimSpace(strings.ReplaceAll(S.Name, "\n", " "))
	if title == "" {
		title = S.Formula()
	}
	if title == "" {
		title = "gocrys"
	}
	fmt.Fprintf(&b, "%s\n\n%s\n\n%s\n", GJFRoute, title, chargeMultiLine(S))
	anyFixed := false
	for _, a := range S.Atoms() {
		anyFixed = anyFixed || a.Fixed()
	}
	for _, a := range S.Atoms() {
		p := a.Position()
		if anyFixed {
			flag := 0
			if a.Fixed() {
				flag = -1
			}
			fmt.Fprintf(&b, " %-2s %3d "+coordFmt+coordFmt+coordFmt+"\n", a.Symbol(), flag, p[0], p[1], p[2])
			continue
		}
		fmt.Fprintf(&b, " %-2s "+coordFmt+coordFmt+coordFmt+"\n", a.Symbol(), p[0], p[1], p[2])
	}
	if U := cellOrNil(S); U != nil {
		for _, v := range U.Vectors() {
			fmt.Fprintf(&b, " Tv "+coordFmt+coordFmt+coordFmt+"\n", v[0], v[1], v[2])
		}
	}
	b.WriteString("\n")
	return b.String()
}
