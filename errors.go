/*
 * errors.go, part of gocrys.
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
	"math"

	"github.com/cockroachdb/errors"
)

//Errors returned by this library and its sub packages wrap one of these,
//so callers can tell them apart with errors.Is.
var (
	//ErrUnsupportedFormat means no codec exists for the requested or inferred format.
	ErrUnsupportedFormat = errors.New("unsupported format")
	//ErrMalformedInput means a mandatory section or marker is absent or unusable.
	ErrMalformedInput = errors.New("malformed input")
	//ErrInvalidGeometry means the operation needs geometric or crystallographic
	//data that is missing or inconsistent.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

//errDecorate adds the caller's name to err, keeping its kind.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, caller)
}

func finite3(v [3]float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
