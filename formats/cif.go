/*
 * cif.go, part of gocrys.
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

//CIFCodec reads and writes crystallographic information files. Only the first
//data block is read. The cell comes from the _cell_length_* and _cell_angle_*
//tags, the atoms from the first loop with fractional or cartesian atom_site
//columns. Symmetry operations are not applied, so the file is expected to list
//every atom of the cell (as P1 files, and the files this codec writes, do).
type CIFCodec struct{}

//cifmap maps loop column names to their position in each row.
type cifmap map[string]int

//get returns the column for the first of the names present, or -1.
func (m cifmap) get(names ...string) int {
	for _, s := range names {
		if i, ok := m[s]; ok {
			return i
		}
	}
	return -1
}

type cifLoop struct {
	cols cifmap
	rows [][]string
	line int //line number of the first row, for logging
}

//cifTag normalizes a tag so the core CIF (_cell_length_a) and
//mmCIF (_cell.length_a) spellings are the same.
func cifTag(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), ".", "_")
}

//cifTokens splits a CIF line into values, honouring single and double quotes.
func cifTokens(line string) []string {
	var tokens []string
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		if line[i] == '#' {
			break
		}
		if q := line[i]; q == '\'' || q == '"' {
			//a quote only closes if followed by whitespace or the end of the line.
			j := i + 1
			for j < len(line) && !(line[j] == q && (j+1 == len(line) || line[j+1] == ' ' || line[j+1] == '\t')) {
				j++
			}
			tokens = append(tokens, line[i+1:min(j, len(line))])
			i = j + 1
			continue
		}
		j := i
		for j < len(line) && line[j] != ' ' && line[j] != '\t' {
			j++
		}
		tokens = append(tokens, line[i:j])
		i = j
	}
	return tokens
}

//cifNumber parses a CIF number, dropping the standard uncertainty: 5.431(2) is 5.431.
func cifNumber(s string) (float64, error) {
	if k := strings.IndexByte(s, '('); k >= 0 {
		s = s[:k]
	}
	return parseFloat(s)
}

func (C CIFCodec) Parse(text string) (*crys.Structure, error) {
	lines := splitLines(text)
	tags := make(map[string]string)
	var atoms *cifLoop
	name := ""
	blocks := 0
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		low := strings.ToLower(line)
		switch {
		case line == "" || line[0] == '#':
			continue
		case strings.HasPrefix(low, "data_"):
			blocks++
			if blocks > 1 {
				i = len(lines) //only the first block
				continue
			}
			name = line[len("data_"):]
		case strings.HasPrefix(low, "loop_"):
			loop, next := cifReadLoop(lines, i+1)
			i = next - 1
			if atoms == nil && loop.cols.get("_atom_site_fract_x", "_atom_site_cartn_x") >= 0 {
				atoms = loop
			}
		case line[0] == '_':
			tok := cifTokens(line)
			tag := cifTag(tok[0])
			if len(tok) > 1 {
				tags[tag] = tok[1]
				continue
			}
			//value in the next line(s), maybe a ; delimited text field.
			if i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if strings.HasPrefix(next, ";") {
					val := []string{strings.TrimPrefix(next, ";")}
					i += 2
					for ; i < len(lines) && !strings.HasPrefix(lines[i], ";"); i++ {
						val = append(val, lines[i])
					}
					tags[tag] = strings.TrimSpace(strings.Join(val, "\n"))
				} else if nt := cifTokens(next); len(nt) > 0 && !strings.HasPrefix(next, "_") {
					tags[tag] = nt[0]
					i++
				}
			}
		}
	}
	if blocks == 0 && len(tags) == 0 && atoms == nil {
		return nil, malformed(CIF, "no data block")
	}
	S := crys.NewStructure(name)
	U, err := cifCell(tags)
	if err != nil {
		return nil, err
	}
	if U != nil {
		S.SetPeriodic(U)
	}
	if atoms == nil {
		return nil, malformed(CIF, "no atom_site loop with fract or Cartn coordinates")
	}
	fract := atoms.cols.get("_atom_site_fract_x") >= 0
	if fract && U == nil {
		return nil, malformed(CIF, "fractional coordinates but no complete _cell parameters")
	}
	var xyz [3]int
	if fract {
		xyz = [3]int{atoms.cols.get("_atom_site_fract_x"), atoms.cols.get("_atom_site_fract_y"), atoms.cols.get("_atom_site_fract_z")}
	} else {
		xyz = [3]int{atoms.cols.get("_atom_site_cartn_x"), atoms.cols.get("_atom_site_cartn_y"), atoms.cols.get("_atom_site_cartn_z")}
	}
	if xyz[1] < 0 || xyz[2] < 0 {
		return nil, malformed(CIF, "atom_site loop lacks y or z coordinates")
	}
	elcol := atoms.cols.get("_atom_site_type_symbol", "_atom_site_label")
	if elcol < 0 {
		return nil, malformed(CIF, "atom_site loop has no type_symbol or label column")
	}
	for r, row := range atoms.rows {
		var pos [3]float64
		var err error
		for k := range pos {
			if pos[k], err = cifNumber(row[xyz[k]]); err != nil {
				break
			}
		}
		if err != nil {
			skipLine(CIF, atoms.line+r, err)
			continue
		}
		if fract {
			pos = U.FracToCart(pos)
		}
		addAtom(S, CIF, atoms.line+r, row[elcol], pos)
	}
	return S, nil
}

//cifReadLoop reads the loop starting at line i (just after loop_). It returns
//the loop and the index of the first line after it.
func cifReadLoop(lines []string, i int) (*cifLoop, int) {
	loop := &cifLoop{cols: make(cifmap)}
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "_") {
			break
		}
		loop.cols[cifTag(strings.Fields(line)[0])] = len(loop.cols)
	}
	loop.line = i + 1
	ncols := len(loop.cols)
	var pending []string
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		low := strings.ToLower(line)
		if strings.HasPrefix(line, "_") || strings.HasPrefix(low, "loop_") || strings.HasPrefix(low, "data_") {
			break
		}
		if line == "" || line[0] == '#' {
			continue
		}
		pending = append(pending, cifTokens(line)...)
		for ncols > 0 && len(pending) >= ncols {
			loop.rows = append(loop.rows, pending[:ncols:ncols])
			pending = pending[ncols:]
		}
	}
	if len(pending) > 0 {
		skipLine(CIF, i, "incomplete loop row")
	}
	return loop, i
}

//cifCell builds the cell from the tags. It returns nil, nil if the
//file has no complete set of cell parameters.
func cifCell(tags map[string]string) (*crys.UnitCell, error) {
	names := []string{"_cell_length_a", "_cell_length_b", "_cell_length_c", "_cell_angle_alpha", "_cell_angle_beta", "_cell_angle_gamma"}
	var p [6]float64
	for i, n := range names {
		v, ok := tags[n]
		if !ok {
			return nil, nil
		}
		f, err := cifNumber(v)
		if err != nil {
			return nil, malformed(CIF, "bad %s value %q", n, v)
		}
		p[i] = f
	}
	U, err := crys.NewUnitCell(p[0], p[1], p[2], p[3], p[4], p[5])
	if err != nil {
		return nil, malformed(CIF, "cell: %v", err)
	}
	return U, nil
}

func (C CIFCodec) Serialize(S *crys.Structure) string {
	var b strings.Builder
	name := strings.Join(strings.Fields(S.Name), "_")
	if name == "" {
		name = "gocrys"
	}
	fmt.Fprintf(&b, "data_%s\n", name)
	U := cellOrNil(S)
	if U != nil {
		l, a := U.Lengths(), U.Angles()
		fmt.Fprintf(&b, "_cell_length_a    %.10f\n_cell_length_b    %.10f\n_cell_length_c    %.10f\n", l[0], l[1], l[2])
		fmt.Fprintf(&b, "_cell_angle_alpha %.10f\n_cell_angle_beta  %.10f\n_cell_angle_gamma %.10f\n", a[0], a[1], a[2])
		b.WriteString("_symmetry_space_group_name_H-M 'P 1'\n_symmetry_Int_Tables_number 1\n")
	}
	b.WriteString("loop_\n_atom_site_label\n_atom_site_type_symbol\n")
	if U != nil {
		b.WriteString("_atom_site_fract_x\n_atom_site_fract_y\n_atom_site_fract_z\n")
	} else {
		b.WriteString("_atom_site_Cartn_x\n_atom_site_Cartn_y\n_atom_site_Cartn_z\n")
	}
	count := make(map[string]int)
	for _, a := range S.Atoms() {
		s := a.Symbol()
		count[s]++
		p := a.Position()
		if U != nil {
			p = U.CartToFrac(p)
		}
		fmt.Fprintf(&b, "%-6s %-2s "+coordFmt+coordFmt+coordFmt+"\n", fmt.Sprintf("%s%d", s, count[s]), s, p[0], p[1], p[2])
	}
	return b.String()
}
