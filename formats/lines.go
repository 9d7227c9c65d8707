/*
 * lines.go, part of gocrys.
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

	"github.com/cockroachdb/errors"

	crys "github.com/rmera/gocrys"
	"github.com/rmera/gocrys/internal/logger"
)

//coordFmt writes coordinates with enough decimals for positions to survive
//a write/read cycle well below 1e-6 A.
const coordFmt = "%16.10f"

//splitLines splits text in lines, accepting \n and \r\n endings.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

//parseFloat parses a finite number. Fortran-style exponents (1.0D-3) are accepted.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("D", "E", "d", "e").Replace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Newf("non-finite number %q", s)
	}
	return f, nil
}

//parseVec parses the first three elements of fields as a finite vector.
func parseVec(fields []string) ([3]float64, error) {
	var v [3]float64
	if len(fields) < 3 {
		return v, errors.Newf("need 3 numbers, got %d fields", len(fields))
	}
	for i := 0; i < 3; i++ {
		f, err := parseFloat(fields[i])
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

//skipLine records a coordinate line that was left out.
func skipLine(format Format, lineno int, reason interface{}) {
	logger.Logger.Debugw("skipping line", "format", format.String(), "line", lineno, "reason", reason)
}

//addAtom adds an atom built from an element label and a position to S. It returns false,
//after logging, if the atom can't be built.
func addAtom(S *crys.Structure, format Format, lineno int, label string, pos [3]float64) (*crys.Atom, bool) {
	a, err := S.NewAtom(label, pos)
	if err != nil {
		skipLine(format, lineno, err)
		return nil, false
	}
	return a, true
}

//malformed returns an error wrapping crys.ErrMalformedInput.
func malformed(format Format, msg string, args ...interface{}) error {
	return errors.Wrapf(crys.ErrMalformedInput, "%s: %s", format, fmt.Sprintf(msg, args...))
}

//elementGroups returns the distinct element symbols of S in order of first
//appearance, and the atoms of each.
func elementGroups(S *crys.Structure) ([]string, map[string][]*crys.Atom) {
	order := make([]string, 0, 4)
	groups := make(map[string][]*crys.Atom)
	for _, a := range S.Atoms() {
		s := a.Symbol()
		if _, ok := groups[s]; !ok {
			order = append(order, s)
		}
		groups[s] = append(groups[s], a)
	}
	return order, groups
}

//cellOrNil returns the cell of S if S is periodic.
func cellOrNil(S *crys.Structure) *crys.UnitCell {
	if S.IsCrystal() {
		return S.Cell()
	}
	return nil
}
