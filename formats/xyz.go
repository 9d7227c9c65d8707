/*
 * xyz.go, part of gocrys.
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

	"github.com/cockroachdb/errors"

	crys "github.com/rmera/gocrys"
)

//XYZCodec reads and writes XYZ files. Only the first frame is read.
//The atom count in the first line is not enforced. A comment line with an
//extended-XYZ Lattice="..." key makes the structure periodic; otherwise the
//comment is used as the structure name.
type XYZCodec struct{}

var xyzLattice = regexp.MustCompile(`(?i)Lattice\s*=\s*"([^"]*)"`)

func (X XYZCodec) Parse(text string) (*crys.Structure, error) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, malformed(XYZ, "need a count line and a comment line, got %d lines", len(lines))
	}
	count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		skipLine(XYZ, 1, "unreadable atom count")
		count = -1
	}
	S := crys.NewStructure("")
	comment := strings.TrimSpace(lines[1])
	if m := xyzLattice.FindStringSubmatch(comment); m != nil {
		vecs, err := latticeFromFields(strings.Fields(m[1]))
		if err != nil {
			return nil, malformed(XYZ, "bad Lattice key: %v", err)
		}
		U, err := crys.UnitCellFromVectors(vecs)
		if err != nil {
			return nil, malformed(XYZ, "bad Lattice key: %v", err)
		}
		S.SetPeriodic(U)
	} else {
		S.Name = comment
	}
	for i := 2; i < len(lines); i++ {
		if count >= 0 && S.Len() == count && isCount(lines[i]) {
			break //next frame
		}
		fields := strings.Fields(lines[i])
		if len(fields) < 4 {
			skipLine(XYZ, i+1, "too few fields")
			continue
		}
		pos, err := parseVec(fields[1:4])
		if err != nil {
			skipLine(XYZ, i+1, err)
			continue
		}
		addAtom(S, XYZ, i+1, fields[0], pos)
	}
	return S, nil
}

func isCount(line string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(line))
	return err == nil
}

//latticeFromFields reads 9 numbers as three vectors.
func latticeFromFields(fields []string) ([3][3]float64, error) {
	var vecs [3][3]float64
	if len(fields) != 9 {
		return vecs, errors.Newf("need 9 numbers, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		v, err := parseVec(fields[3*i : 3*i+3])
		if err != nil {
			return vecs, err
		}
		vecs[i] = v
	}
	return vecs, nil
}

func (X XYZCodec) Serialize(S *crys.Structure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", S.Len())
	if U := cellOrNil(S); U != nil {
		v := U.Vectors()
		b.WriteString(`Lattice="`)
		for i := range v {
			for j := range v[i] {
				if i+j > 0 {
					b.WriteString(" ")
				}
				fmt.Fprintf(&b, "%.10f", v[i][j])
			}
		}
		b.WriteString(`" Properties=species:S:1:pos:R:3`)
	} else {
		b.WriteString(strings.ReplaceAll(S.Name, "\n", " "))
	}
	b.WriteString("\n")
	for i := 0; i < S.Len(); i++ {
		a := S.Atom(i)
		p := a.Position()
		fmt.Fprintf(&b, "%-2s "+coordFmt+coordFmt+coordFmt+"\n", a.Symbol(), p[0], p[1], p[2])
	}
	return b.String()
}
