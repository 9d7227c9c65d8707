/*
 * stru.go, part of gocrys.
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

//STRUCodec reads and writes ABACUS STRU files. Structures are written with
//direct coordinates and a lattice constant that puts the lattice vectors in
//Angstrom. Non-periodic structures are written without lattice sections, in
//Cartesian_angstrom mode.
type STRUCodec struct{}

//CoordMode is the coordinate convention of an ATOMIC_POSITIONS section.
type CoordMode int

const (
	CoordDirect CoordMode = iota
	CoordCartesian
	CoordCartesianAngstrom
	CoordCartesianAngstromCenterXYZ
	CoordCartesianAngstromCenterXY
	CoordCartesianAngstromCenterXZ
	CoordCartesianAngstromCenterYZ
	CoordCartesianAU
)

//coordModes lists the mode tokens. A token is matched by prefix, so
//longer names go before the names they start with.
var coordModes = []struct {
	prefix string
	mode   CoordMode
}{
	{"cartesian_angstrom_center_xyz", CoordCartesianAngstromCenterXYZ},
	{"cartesian_angstrom_center_xy", CoordCartesianAngstromCenterXY},
	{"cartesian_angstrom_center_xz", CoordCartesianAngstromCenterXZ},
	{"cartesian_angstrom_center_yz", CoordCartesianAngstromCenterYZ},
	{"cartesian_angstrom", CoordCartesianAngstrom},
	{"cartesian_au", CoordCartesianAU},
	{"cartesian", CoordCartesian},
	{"direct", CoordDirect},
}

//ParseCoordMode returns the mode for an ATOMIC_POSITIONS token, case-insensitive.
func ParseCoordMode(token string) (CoordMode, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	for _, m := range coordModes {
		if strings.HasPrefix(t, m.prefix) {
			return m.mode, nil
		}
	}
	return 0, malformed(STRU, "unknown coordinate mode %q", token)
}

func (M CoordMode) String() string {
	switch M {
	case CoordDirect:
		return "Direct"
	case CoordCartesian:
		return "Cartesian"
	case CoordCartesianAngstrom:
		return "Cartesian_angstrom"
	case CoordCartesianAngstromCenterXYZ:
		return "Cartesian_angstrom_center_xyz"
	case CoordCartesianAngstromCenterXY:
		return "Cartesian_angstrom_center_xy"
	case CoordCartesianAngstromCenterXZ:
		return "Cartesian_angstrom_center_xz"
	case CoordCartesianAngstromCenterYZ:
		return "Cartesian_angstrom_center_yz"
	case CoordCartesianAU:
		return "Cartesian_au"
	}
	return "unknown"
}

//NeedsLattice returns true if positions in this mode can't be
//converted without the lattice vectors.
func (M CoordMode) NeedsLattice() bool {
	switch M {
	case CoordDirect, CoordCartesianAngstromCenterXYZ, CoordCartesianAngstromCenterXY,
		CoordCartesianAngstromCenterXZ, CoordCartesianAngstromCenterYZ:
		return true
	}
	return false
}

//center returns the point the positions of a centered mode are relative
//to: the cell center (a+b+c)/2, keeping only the components the mode names.
func (M CoordMode) center(U *crys.UnitCell) [3]float64 {
	c := U.FracToCart([3]float64{0.5, 0.5, 0.5})
	switch M {
	case CoordCartesianAngstromCenterXY:
		c[2] = 0
	case CoordCartesianAngstromCenterXZ:
		c[1] = 0
	case CoordCartesianAngstromCenterYZ:
		c[0] = 0
	}
	return c
}

//toCartesian converts a position read in mode M to cartesian Angstrom.
//lat0 is the lattice constant in Bohr. U may be nil if M doesn't need it.
func (M CoordMode) toCartesian(p [3]float64, lat0 float64, U *crys.UnitCell) [3]float64 {
	switch M {
	case CoordDirect:
		return U.FracToCart(p)
	case CoordCartesian:
		for i := range p {
			p[i] = crys.BohrToAngstrom(p[i] * lat0)
		}
	case CoordCartesianAU:
		for i := range p {
			p[i] = crys.BohrToAngstrom(p[i])
		}
	case CoordCartesianAngstromCenterXYZ, CoordCartesianAngstromCenterXY,
		CoordCartesianAngstromCenterXZ, CoordCartesianAngstromCenterYZ:
		c := M.center(U)
		for i := range p {
			p[i] += c[i]
		}
	}
	return p
}

var struSections = map[string]bool{
	"ATOMIC_SPECIES":       true,
	"NUMERICAL_ORBITAL":    true,
	"LATTICE_CONSTANT":     true,
	"LATTICE_VECTORS":      true,
	"LATTICE_PARAMETERS":   true,
	"ATOMIC_POSITIONS":     true,
	"NUMERICAL_DESCRIPTOR": true,
	"ABFS_ORBITAL":         true,
}

//struStripComment removes // and # comments.
func struStripComment(line string) string {
	if k := strings.Index(line, "//"); k >= 0 {
		line = line[:k]
	}
	if k := strings.Index(line, "#"); k >= 0 {
		line = line[:k]
	}
	return strings.TrimSpace(line)
}

type struLine struct {
	text string
	n    int //line number in the file
}

//struSplit groups the non-empty, comment-free lines by section.
func struSplit(text string) map[string][]struLine {
	sections := make(map[string][]struLine)
	current := ""
	for i, l := range splitLines(text) {
		l = struStripComment(l)
		if l == "" {
			continue
		}
		if f := firstField(l); struSections[strings.ToUpper(f)] {
			current = strings.ToUpper(f)
			sections[current] = []struLine{}
			//some files put the value in the same line as the keyword.
			if rest := strings.TrimSpace(l[len(f):]); rest != "" {
				sections[current] = append(sections[current], struLine{rest, i + 1})
			}
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], struLine{l, i + 1})
		}
	}
	return sections
}

func (T STRUCodec) Parse(text string) (*crys.Structure, error) {
	sections := struSplit(text)
	lat0 := 1.0
	if lc, ok := sections["LATTICE_CONSTANT"]; ok && len(lc) > 0 {
		f, err := parseFloat(firstField(lc[0].text))
		if err != nil || f <= 0 {
			return nil, malformed(STRU, "bad LATTICE_CONSTANT %q", lc[0].text)
		}
		lat0 = f
	}
	S := crys.NewStructure("")
	var U *crys.UnitCell
	if lv, ok := sections["LATTICE_VECTORS"]; ok {
		if len(lv) < 3 {
			return nil, malformed(STRU, "LATTICE_VECTORS needs 3 lines, got %d", len(lv))
		}
		var vecs [3][3]float64
		for i := range vecs {
			v, err := parseVec(strings.Fields(lv[i].text))
			if err != nil {
				return nil, malformed(STRU, "lattice vector %d: %v", i+1, err)
			}
			for j := range v {
				vecs[i][j] = crys.BohrToAngstrom(v[j] * lat0)
			}
		}
		var err error
		if U, err = crys.UnitCellFromVectors(vecs); err != nil {
			return nil, malformed(STRU, "LATTICE_VECTORS: %v", err)
		}
		S.SetPeriodic(U)
	}
	pos, ok := sections["ATOMIC_POSITIONS"]
	if !ok {
		return nil, malformed(STRU, "no ATOMIC_POSITIONS section")
	}
	if len(pos) == 0 {
		return nil, malformed(STRU, "no coordinate mode in ATOMIC_POSITIONS")
	}
	mode, err := ParseCoordMode(firstField(pos[0].text))
	if err != nil {
		return nil, err
	}
	if mode.NeedsLattice() && U == nil {
		return nil, malformed(STRU, "%s coordinates need a LATTICE_VECTORS section", mode)
	}
	i := 1
	for i < len(pos) {
		//element, magnetism and count lines, then the atoms.
		if i+2 >= len(pos) {
			skipLine(STRU, pos[i].n, "incomplete species block")
			break
		}
		label := firstField(pos[i].text)
		count, err := strconv.Atoi(firstField(pos[i+2].text))
		if err != nil || count < 0 {
			return nil, malformed(STRU, "line %d: bad atom count %q for %s", pos[i+2].n, pos[i+2].text, label)
		}
		i += 3
		for k := 0; k < count && i < len(pos); k, i = k+1, i+1 {
			fields := strings.Fields(pos[i].text)
			p, err := parseVec(fields)
			if err != nil {
				skipLine(STRU, pos[i].n, err)
				continue
			}
			a, ok := addAtom(S, STRU, pos[i].n, label, mode.toCartesian(p, lat0, U))
			if !ok {
				continue
			}
			if flags, ok := struMoveFlags(fields[3:]); ok {
				a.SetFixed(flags == [3]bool{})
			}
		}
	}
	return S, nil
}

//struMoveFlags reads the movement flags that follow the coordinates, either bare
//("1 1 0") or after an m keyword ("m 1 1 0"). ok is false if there are no
//flags in either form.
func struMoveFlags(fields []string) (flags [3]bool, ok bool) {
	read := func(f []string) ([3]bool, bool) {
		var fl [3]bool
		if len(f) < 3 {
			return fl, false
		}
		for i := 0; i < 3; i++ {
			switch f[i] {
			case "0":
			case "1":
				fl[i] = true
			default:
				return fl, false
			}
		}
		return fl, true
	}
	if flags, ok = read(fields); ok {
		return flags, ok
	}
	for i, f := range fields {
		if f == "m" {
			return read(fields[i+1:])
		}
	}
	return flags, false
}

func (T STRUCodec) Serialize(S *crys.Structure) string {
	var b strings.Builder
	order, groups := elementGroups(S)
	b.WriteString("ATOMIC_SPECIES\n")
	for _, s := range order {
		fmt.Fprintf(&b, "%-2s %12.6f %s.upf\n", s, crys.AtomicMass(s), s)
	}
	U := cellOrNil(S)
	mode := CoordCartesianAngstrom
	if U != nil {
		mode = CoordDirect
		//with this constant the vectors are in Angstrom.
		fmt.Fprintf(&b, "\nLATTICE_CONSTANT\n%s\n\nLATTICE_VECTORS\n", strconv.FormatFloat(crys.A2Bohr, 'g', -1, 64))
		for _, v := range U.Vectors() {
			fmt.Fprintf(&b, coordFmt+coordFmt+coordFmt+"\n", v[0], v[1], v[2])
		}
	}
	fmt.Fprintf(&b, "\nATOMIC_POSITIONS\n%s\n", mode)
	for _, s := range order {
		fmt.Fprintf(&b, "\n%s\n0.0\n%d\n", s, len(groups[s]))
		for _, a := range groups[s] {
			p := a.Position()
			if U != nil {
				p = U.CartToFrac(p)
			}
			flags := "1 1 1"
			if a.Fixed() {
				flags = "0 0 0"
			}
			fmt.Fprintf(&b, coordFmt+coordFmt+coordFmt+" %s\n", p[0], p[1], p[2], flags)
		}
	}
	return b.String()
}
