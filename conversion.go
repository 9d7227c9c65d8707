/*
 * conversion.go, part of gocrys.
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

//This provides useful conversion factors and other constants

//Length conversions. Every codec that deals with atomic units must use these, so
//that round trips through different formats stay consistent.
const (
	Bohr2A = 0.52917721092 //1 Bohr in Angstrom
	A2Bohr = 1 / Bohr2A
)

//Angle conversions
const (
	Deg2Rad = 0.017453292519943295
	Rad2Deg = 1 / Deg2Rad
)

//BondTolerance scales the sum of covalent radii when deciding whether
//two atoms are bonded.
const BondTolerance = 1.1

//appzero is used to correct floating point errors. Everything equal or less than
//this is considered zero.
const appzero float64 = 1e-12

//BohrToAngstrom converts a length in Bohr to Angstrom.
func BohrToAngstrom(b float64) float64 { return b * Bohr2A }

//AngstromToBohr converts a length in Angstrom to Bohr.
func AngstromToBohr(a float64) float64 { return a / Bohr2A }
