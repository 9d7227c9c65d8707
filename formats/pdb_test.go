package formats

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crys "github.com/rmera/gocrys"
)

const pdbSample = `TITLE     SMALL TEST
CRYST1   10.000   11.000   12.000  90.00  90.00  90.00 P 1           1
ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N
ATOM      2  CA  ALA A   1      11.639   6.071  -5.147  1.00  0.00
HETATM    3 ZN    ZN A   2       1.000   2.000   3.000  1.00  0.00          ZN
ATOM      4  O   ALA A
ATOM      5 1HB  ALA A   1      12.000   7.000  -4.000  1.00  0.00
ENDMDL
ATOM      1  N   ALA A   1      99.104   6.134  -6.504  1.00  0.00           N
END
`

func TestPDBParse(Te *testing.T) {
	S, err := PDBCodec{}.Parse(pdbSample)
	require.NoError(Te, err)
	require.Equal(Te, 4, S.Len())
	assert.Equal(Te, "SMALL TEST", S.Name)
	assert.Equal(Te, []string{"N", "C", "Zn", "H"}, []string{S.Atom(0).Symbol(), S.Atom(1).Symbol(), S.Atom(2).Symbol(), S.Atom(3).Symbol()})
	assert.Equal(Te, [3]float64{11.104, 6.134, -6.504}, S.Atom(0).Position())
	require.True(Te, S.IsCrystal())
	assert.Equal(Te, [3]float64{10, 11, 12}, S.Cell().Lengths())
}

func TestPDBPlaceholderCell(Te *testing.T) {
	text := "CRYST1    1.000    1.000    1.000  90.00  90.00  90.00 P 1           1\n" +
		"HETATM    1  O   HOH A   1       0.000   0.000   0.000  1.00  0.00           O\n"
	S, err := PDBCodec{}.Parse(text)
	require.NoError(Te, err)
	assert.False(Te, S.IsCrystal())
}

func TestPDBNoRecords(Te *testing.T) {
	_, err := PDBCodec{}.Parse("HEADER    NOTHING\nEND\n")
	assert.True(Te, errors.Is(err, crys.ErrMalformedInput))
}

func TestPDBColumns(Te *testing.T) {
	S := crys.NewStructure("")
	S.NewAtom("Cl", [3]float64{-1.5, 22.25, 333.125})
	out := PDBCodec{}.Serialize(S)
	line := splitLines(out)[0]
	assert.Equal(Te, "HETATM", line[0:6])
	assert.Equal(Te, "  -1.500", line[30:38])
	assert.Equal(Te, "  22.250", line[38:46])
	assert.Equal(Te, " 333.125", line[46:54])
	assert.Equal(Te, "CL", line[76:78])
}

//a hexagonal cell with a pointing away from x, as VASP files often have it
const poscarHexRotated = `rotated hexagonal
1.0
  1.5 -2.598076 0.0
  1.5  2.598076 0.0
  0.0  0.0      5.0
  Zn
  1
Direct
  0.333333333 0.666666667 0.5
`

func TestPDBRotatedCell(Te *testing.T) {
	S0, err := POSCARCodec{}.Parse(poscarHexRotated)
	require.NoError(Te, err)
	S1, err := PDBCodec{}.Parse(PDBCodec{}.Serialize(S0))
	require.NoError(Te, err)
	require.True(Te, S1.IsCrystal())
	f0 := S0.Cell().CartToFrac(S0.Atom(0).Position())
	f1 := S1.Cell().CartToFrac(S1.Atom(0).Position())
	assert.InDeltaSlice(Te, f0[:], f1[:], 1e-3)
	assert.InDeltaSlice(Te, []float64{1.0 / 3, 2.0 / 3, 0.5}, f1[:], 1e-3)
	assert.InDelta(Te, S0.Cell().Volume(), S1.Cell().Volume(), 0.05)
}
