/*
 * format.go, part of gocrys.
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

/*Package formats reads and writes structures in the file formats used in computational
chemistry and materials science: XYZ, CIF, POSCAR, Gaussian input (GJF), ORCA input, PDB
and ABACUS STRU.

Each format has a codec with a Parse and a Serialize method. Parse fails with an error
wrapping crys.ErrMalformedInput when a mandatory section is missing. Single coordinate
lines that can't be used (too few fields, unknown element, non-finite numbers) are skipped
and logged at debug level. Serialize never fails for a valid structure: sections a
structure has no data for are left out.
*/
package formats

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	crys "github.com/rmera/gocrys"
)

//Format is one of the supported file formats.
type Format int

const (
	XYZ Format = iota
	CIF
	POSCAR
	GJF
	ORCA
	PDB
	STRU
)

var formatNames = [...]string{"xyz", "cif", "poscar", "gjf", "orca", "pdb", "stru"}

func (F Format) String() string {
	if F < 0 || int(F) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[F]
}

//Extension returns the extension, with the dot, used when writing files of the format.
func (F Format) Extension() string {
	switch F {
	case ORCA:
		return ".inp"
	case POSCAR:
		return ".vasp"
	}
	return "." + F.String()
}

//Codec reads and writes a structure in one format.
type Codec interface {
	Parse(text string) (*crys.Structure, error)
	Serialize(S *crys.Structure) string
}

var extensions = map[string]Format{
	"xyz":    XYZ,
	"cif":    CIF,
	"poscar": POSCAR,
	"vasp":   POSCAR,
	"gjf":    GJF,
	"com":    GJF,
	"inp":    ORCA,
	"pdb":    PDB,
	"stru":   STRU,
}

var basenames = map[string]Format{
	"POSCAR":  POSCAR,
	"CONTCAR": POSCAR,
	"STRU":    STRU,
}

const supportedHint = "supported extensions: .xyz .cif .poscar .vasp .gjf .com .inp .pdb .stru; files named POSCAR, CONTCAR or STRU are also recognized"

//ParseFormat returns the format with the given name or extension, case-insensitive
//("xyz", "vasp", "com", "orca", "abacus"...).
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if f, ok := extensions[n]; ok {
		return f, nil
	}
	switch n {
	case "orca":
		return ORCA, nil
	case "gaussian":
		return GJF, nil
	case "abacus":
		return STRU, nil
	case "contcar":
		return POSCAR, nil
	}
	return 0, errors.WithHint(errors.Wrapf(crys.ErrUnsupportedFormat, "format %q", name), supportedHint)
}

//FormatOf infers the format of a file from its name. The extension decides,
//case-insensitive. Files without extension are recognized only if named
//exactly POSCAR, CONTCAR or STRU.
func FormatOf(name string) (Format, error) {
	base := filepath.Base(name)
	if f, ok := basenames[base]; ok {
		return f, nil
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	if f, ok := extensions[ext]; ok && ext != "" {
		return f, nil
	}
	return 0, errors.WithHint(errors.Wrapf(crys.ErrUnsupportedFormat, "file %q", name), supportedHint)
}

//ForFile returns the codec for a file, chosen by its name (see FormatOf).
func ForFile(name string) (Codec, error) {
	f, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	return CodecFor(f)
}

//CodecFor returns the codec for a format.
func CodecFor(F Format) (Codec, error) {
	switch F {
	case XYZ:
		return XYZCodec{}, nil
	case CIF:
		return CIFCodec{}, nil
	case POSCAR:
		return POSCARCodec{}, nil
	case GJF:
		return GJFCodec{}, nil
	case ORCA:
		return ORCACodec{}, nil
	case PDB:
		return PDBCodec{}, nil
	case STRU:
		return STRUCodec{}, nil
	}
	return nil, errors.WithHint(errors.Wrapf(crys.ErrUnsupportedFormat, "format tag %d", int(F)), supportedHint)
}

//Parse reads text in the given format.
func Parse(F Format, text string) (*crys.Structure, error) {
	c, err := CodecFor(F)
	if err != nil {
		return nil, err
	}
	return c.Parse(text)
}

//Serialize writes S in the given format. It only fails if the format is unknown.
func Serialize(F Format, S *crys.Structure) (string, error) {
	c, err := CodecFor(F)
	if err != nil {
		return "", err
	}
	return c.Serialize(S), nil
}
