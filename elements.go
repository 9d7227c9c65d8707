/*
 * elements.go, part of gocrys.
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
	"fmt"
	"strings"
	"unicode"
)

//Defaults used for elements, or properties, missing from the table.
const (
	DefaultCovRad = 1.5
	DefaultMass   = 1.0
	DefaultVdwRad = 2.0
	DefaultColor  = 0xFF1493
)

//Element holds the reference data for one chemical element.
//A zero CovRad or VdwRad means the value is not tabulated.
type Element struct {
	Number int
	Symbol string
	Mass   float64 //standard atomic weight, g/mol
	CovRad float64 //Angstrom
	VdwRad float64 //Angstrom
	Color  uint32  //0xRRGGBB
}

//ColorHex returns the display color as #RRGGBB
func (E Element) ColorHex() string {
	return fmt.Sprintf("#%06X", E.Color&0xFFFFFF)
}

//Covalent radii are from Cordero et al., 2008 (DOI:10.1039/B801115J), low-spin
//values for the transition metals, except H, which is raised to 0.4 as H only
//forms one bond and the shorter radius misses H2 at 1.1 tolerance.
//van der Waals radii from 10.1021/j100785a001 and 10.1021/jp8111556,
//metal radii from 10.1023/A:1011625728803. Colors are the usual CPK/Jmol ones.
var elements = []Element{
	{1, "H", 1.008, 0.40, 1.10, 0xFFFFFF},
	{2, "He", 4.0026, 0.28, 1.40, 0xD9FFFF},
	{3, "Li", 6.94, 1.28, 1.81, 0xCC80FF},
	{4, "Be", 9.0122, 0.96, 1.53, 0xC2FF00},
	{5, "B", 10.81, 0.84, 1.92, 0xFFB5B5},
	{6, "C", 12.011, 0.76, 1.70, 0x909090},
	{7, "N", 14.007, 0.71, 1.55, 0x3050F8},
	{8, "O", 15.999, 0.66, 1.52, 0xFF0D0D},
	{9, "F", 18.998, 0.57, 1.47, 0x90E050},
	{10, "Ne", 20.180, 0.58, 1.54, 0xB3E3F5},
	{11, "Na", 22.990, 1.66, 2.27, 0xAB5CF2},
	{12, "Mg", 24.305, 1.41, 1.73, 0x8AFF00},
	{13, "Al", 26.982, 1.21, 1.84, 0xBFA6A6},
	{14, "Si", 28.085, 1.11, 2.10, 0xF0C8A0},
	{15, "P", 30.974, 1.07, 1.80, 0xFF8000},
	{16, "S", 32.06, 1.05, 1.80, 0xFFFF30},
	{17, "Cl", 35.45, 1.02, 1.75, 0x1FF01F},
	{18, "Ar", 39.948, 1.06, 1.88, 0x80D1E3},
	{19, "K", 39.098, 2.03, 2.75, 0x8F40D4},
	{20, "Ca", 40.078, 1.76, 2.31, 0x3DFF00},
	{21, "Sc", 44.956, 1.70, 2.30, 0xE6E6E6},
	{22, "Ti", 47.867, 1.60, 2.15, 0xBFC2C7},
	{23, "V", 50.942, 1.53, 2.05, 0xA6A6AB},
	{24, "Cr", 51.996, 1.39, 1.97, 0x8A99C7},
	{25, "Mn", 54.938, 1.39, 1.96, 0x9C7AC7},
	{26, "Fe", 55.845, 1.32, 1.96, 0xE06633},
	{27, "Co", 58.933, 1.26, 1.95, 0xF090A0},
	{28, "Ni", 58.693, 1.24, 1.97, 0x50D050},
	{29, "Cu", 63.546, 1.32, 2.00, 0xC88033},
	{30, "Zn", 65.38, 1.22, 2.02, 0x7D80B0},
	{31, "Ga", 69.723, 1.22, 1.87, 0xC28F8F},
	{32, "Ge", 72.630, 1.20, 2.11, 0x668F8F},
	{33, "As", 74.922, 1.19, 1.85, 0xBD80E3},
	{34, "Se", 78.971, 1.20, 1.90, 0xFFA100},
	{35, "Br", 79.904, 1.20, 1.83, 0xA62929},
	{36, "Kr", 83.798, 1.16, 2.02, 0x5CB8D1},
	{37, "Rb", 85.468, 2.20, 3.03, 0x702EB0},
	{38, "Sr", 87.62, 1.95, 2.49, 0x00FF00},
	{39, "Y", 88.906, 1.90, 2.40, 0x94FFFF},
	{40, "Zr", 91.224, 1.75, 2.30, 0x94E0E0},
	{41, "Nb", 92.906, 1.64, 2.15, 0x73C2C9},
	{42, "Mo", 95.95, 1.54, 2.10, 0x54B5B5},
	{43, "Tc", 98, 1.47, 2.05, 0x3B9E9E},
	{44, "Ru", 101.07, 1.46, 2.05, 0x248F8F},
	{45, "Rh", 102.91, 1.42, 2.00, 0x0A7D8C},
	{46, "Pd", 106.42, 1.39, 2.05, 0x006985},
	{47, "Ag", 107.87, 1.45, 2.10, 0xC0C0C0},
	{48, "Cd", 112.41, 1.44, 2.20, 0xFFD98F},
	{49, "In", 114.82, 1.42, 1.93, 0xA67573},
	{50, "Sn", 118.71, 1.39, 2.17, 0x668080},
	{51, "Sb", 121.76, 1.39, 2.06, 0x9E63B5},
	{52, "Te", 127.60, 1.38, 2.06, 0xD47A00},
	{53, "I", 126.90, 1.39, 1.98, 0x940094},
	{54, "Xe", 131.29, 1.40, 2.16, 0x429EB0},
	{55, "Cs", 132.91, 2.44, 3.43, 0x57178F},
	{56, "Ba", 137.33, 2.15, 2.68, 0x00C900},
	{57, "La", 138.91, 2.07, 0, 0x70D4FF},
	{58, "Ce", 140.12, 2.04, 0, 0xFFFFC7},
	{59, "Pr", 140.91, 2.03, 0, 0xD9FFC7},
	{60, "Nd", 144.24, 2.01, 0, 0xC7FFC7},
	{61, "Pm", 145, 1.99, 0, 0xA3FFC7},
	{62, "Sm", 150.36, 1.98, 0, 0x8FFFC7},
	{63, "Eu", 151.96, 1.98, 0, 0x61FFC7},
	{64, "Gd", 157.25, 1.96, 0, 0x45FFC7},
	{65, "Tb", 158.93, 1.94, 0, 0x30FFC7},
	{66, "Dy", 162.50, 1.92, 0, 0x1FFFC7},
	{67, "Ho", 164.93, 1.92, 0, 0x00FF9C},
	{68, "Er", 167.26, 1.89, 0, 0x00E675},
	{69, "Tm", 168.93, 1.90, 0, 0x00D452},
	{70, "Yb", 173.05, 1.87, 0, 0x00BF38},
	{71, "Lu", 174.97, 1.87, 0, 0x00AB24},
	{72, "Hf", 178.49, 1.75, 2.25, 0x4DC2FF},
	{73, "Ta", 180.95, 1.70, 2.20, 0x4DA6FF},
	{74, "W", 183.84, 1.62, 2.10, 0x2194D6},
	{75, "Re", 186.21, 1.51, 2.05, 0x267DAB},
	{76, "Os", 190.23, 1.44, 2.00, 0x266696},
	{77, "Ir", 192.22, 1.41, 2.00, 0x175487},
	{78, "Pt", 195.08, 1.36, 2.05, 0xD0D0E0},
	{79, "Au", 196.97, 1.36, 2.10, 0xFFD123},
	{80, "Hg", 200.59, 1.32, 2.05, 0xB8B8D0},
	{81, "Tl", 204.38, 1.45, 1.96, 0xA6544D},
	{82, "Pb", 207.2, 1.46, 2.02, 0x575961},
	{83, "Bi", 208.98, 1.48, 2.07, 0x9E4FB5},
	{84, "Po", 209, 1.40, 1.97, 0xAB5C00},
	{85, "At", 210, 1.50, 2.02, 0x754F45},
	{86, "Rn", 222, 1.50, 2.20, 0x428296},
	{87, "Fr", 223, 2.60, 3.48, 0x420066},
	{88, "Ra", 226, 2.21, 2.83, 0x007D00},
	{89, "Ac", 227, 2.15, 0, 0x70ABFA},
	{90, "Th", 232.04, 2.06, 0, 0x00BAFF},
	{91, "Pa", 231.04, 2.00, 0, 0x00A1FF},
	{92, "U", 238.03, 1.96, 1.86, 0x008FFF},
	{93, "Np", 237, 1.90, 0, 0x0080FF},
	{94, "Pu", 244, 1.87, 0, 0x006BFF},
	{95, "Am", 243, 1.80, 0, 0x545CF2},
	{96, "Cm", 247, 1.69, 0, 0x785CE3},
	{97, "Bk", 247, 0, 0, 0x8A4FE3},
	{98, "Cf", 251, 0, 0, 0xA136D4},
	{99, "Es", 252, 0, 0, 0xB31FD4},
	{100, "Fm", 257, 0, 0, 0xB31FBA},
	{101, "Md", 258, 0, 0, 0xB30DA6},
	{102, "No", 259, 0, 0, 0xBD0D87},
	{103, "Lr", 266, 0, 0, 0xC70066},
	{104, "Rf", 267, 0, 0, 0xCC0059},
	{105, "Db", 268, 0, 0, 0xD1004F},
	{106, "Sg", 269, 0, 0, 0xD90045},
	{107, "Bh", 270, 0, 0, 0xE00038},
	{108, "Hs", 277, 0, 0, 0xE6002E},
	{109, "Mt", 278, 0, 0, 0xEB0026},
	{110, "Ds", 281, 0, 0, DefaultColor},
	{111, "Rg", 282, 0, 0, DefaultColor},
	{112, "Cn", 285, 0, 0, DefaultColor},
	{113, "Nh", 286, 0, 0, DefaultColor},
	{114, "Fl", 289, 0, 0, DefaultColor},
	{115, "Mc", 290, 0, 0, DefaultColor},
	{116, "Lv", 293, 0, 0, DefaultColor},
	{117, "Ts", 294, 0, 0, DefaultColor},
	{118, "Og", 294, 0, 0, DefaultColor},
}

var symbolIndex = func() map[string]int {
	m := make(map[string]int, len(elements))
	for i, e := range elements {
		m[e.Symbol] = i
	}
	return m
}()

//LookupElement returns the data for the element with the given symbol.
//The symbol must already be normalized (i.e. "Fe", not "FE").
func LookupElement(symbol string) (Element, bool) {
	i, ok := symbolIndex[symbol]
	if !ok {
		return Element{}, false
	}
	return elements[i], true
}

//ElementByNumber returns the element with atomic number z.
func ElementByNumber(z int) (Element, bool) {
	if z < 1 || z > len(elements) {
		return Element{}, false
	}
	return elements[z-1], true
}

//NormalizeSymbol turns an element label as found in structure files
//("FE", "fe", "Fe2+", "C12", "O1W", "Si_surf") into a known element symbol.
//It takes the leading letters of the label and tries the two-letter symbol first,
//then the one-letter one. It returns false if neither is a known element.
func NormalizeSymbol(label string) (string, bool) {
	label = strings.TrimSpace(label)
	letters := make([]rune, 0, 2)
	for _, r := range label {
		if !unicode.IsLetter(r) || len(letters) == 2 {
			break
		}
		letters = append(letters, r)
	}
	if len(letters) == 0 {
		return "", false
	}
	first := strings.ToUpper(string(letters[0]))
	if len(letters) == 2 {
		two := first + strings.ToLower(string(letters[1]))
		if _, ok := symbolIndex[two]; ok {
			return two, true
		}
	}
	if _, ok := symbolIndex[first]; ok {
		return first, true
	}
	return "", false
}

//CovalentRadius returns the covalent radius for symbol, or DefaultCovRad
//if the element or its radius is unknown.
func CovalentRadius(symbol string) float64 {
	if e, ok := LookupElement(symbol); ok && e.CovRad > 0 {
		return e.CovRad
	}
	return DefaultCovRad
}

//AtomicMass returns the atomic mass of symbol, or DefaultMass if unknown.
func AtomicMass(symbol string) float64 {
	if e, ok := LookupElement(symbol); ok && e.Mass > 0 {
		return e.Mass
	}
	return DefaultMass
}

//VdwRadius returns the van der Waals radius for symbol, or DefaultVdwRad.
func VdwRadius(symbol string) float64 {
	if e, ok := LookupElement(symbol); ok && e.VdwRad > 0 {
		return e.VdwRad
	}
	return DefaultVdwRad
}
