/*
 * orca.go, part of gocrys.
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
	"regexp"
	"strconv"
	"strings"

	crys "github.com/rmera/gocrys"
)

//ORCACodec reads and writes ORCA input files. Only the "* xyz charge multiplicity"
//block is read, together with cartesian constraints ({C n C}) in a %geom block,
//which mark atoms as fixed. Keyword lines, lattice and point charge blocks are ignored.
type ORCACodec struct{}

//ORCAKeywords is the keyword line written by ORCACodec.
const ORCAKeywords = "! revPBE def2-SVP D3 TightSCF"

var (
	orcaXYZ        = regexp.MustCompile(`(?i)^\*\s*xyz\s+(-?\d+)\s+(\d+)`)
	orcaConstraint = regexp.MustCompile(`(?i)\{\s*C\s+(\d+)\s+C\s*\}`)
)

func (O ORCACodec) Parse(text string) (*crys.Structure, error) {
	lines := splitLines(text)
	start := -1
	var fixed []int
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if start < 0 {
			if m := orcaXYZ.FindStringSubmatch(l); m != nil {
				start = i
			}
		}
		for _, m := range orcaConstraint.FindAllStringSubmatch(l, -1) {
			n, _ := strconv.Atoi(m[1])
			fixed = append(fixed, n)
		}
	}
	if start < 0 {
		return nil, malformed(ORCA, "no '* xyz <charge> <multiplicity>' block")
	}
	S := crys.NewStructure("")
	m := orcaXYZ.FindStringSubmatch(strings.TrimSpace(lines[start]))
	if err := parseChargeMulti(S, ORCA, m[1]+" "+m[2]); err != nil {
		return nil, err
	}
	closed := false
	//constraint indexes count the atoms as written, skipped lines included
	byIndex := make(map[int]*crys.Atom)
	index := -1
	for i := start + 1; i < len(lines); i++ {
		l := strings.TrimSpace(lines[i])
		if strings.HasPrefix(l, "*") {
			closed = true
			break
		}
		if l == "" {
			continue
		}
		index++
		fields := strings.Fields(l)
		if len(fields) < 4 {
			skipLine(ORCA, i+1, "too few fields")
			continue
		}
		pos, err := parseVec(fields[1:4])
		if err != nil {
			skipLine(ORCA, i+1, err)
			continue
		}
		if a, ok := addAtom(S, ORCA, i+1, strings.TrimSuffix(fields[0], ":"), pos); ok {
			byIndex[index] = a
		}
	}
	if !closed {
		skipLine(ORCA, len(lines), "'* xyz' block not closed by '*'")
	}
	for _, n := range fixed {
		if a, ok := byIndex[n]; ok {
			a.SetFixed(true)
		}
	}
	return S, nil
}

func (O ORCACodec) Serialize(S *crys.Structure) string {
	var b strings.Builder
	b.WriteString(ORCAKeywords + "\n")
	if t := strings.TrimSpace(strings.ReplaceAll(S.Name, "\n", " ")); t != "" {
		fmt.Fprintf(&b, "# %s\n", t)
	}
	var constraints []string
	for i, a := range S.Atoms() {
		if a.Fixed() {
			constraints = append(constraints, fmt.Sprintf("         {C %d C}\n", i))
		}
	}
	if len(constraints) > 0 {
		b.WriteString("%geom Constraints\n")
		for _, c := range constraints {
			b.WriteString(c)
		}
		b.WriteString("         end\n      end\n")
	}
	fmt.Fprintf(&b, "* xyz %s\n", chargeMultiLine(S))
	for _, a := range S.Atoms() {
		p := a.Position()
		fmt.Fprintf(&b, "%-2s "+coordFmt+coordFmt+coordFmt+"\n", a.Symbol(), p[0], p[1], p[2])
	}
	b.WriteString("*\n")
	return b.String()
}
