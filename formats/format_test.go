package formats

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crys "github.com/rmera/gocrys"
)

func TestFormatOf(Te *testing.T) {
	cases := []struct {
		name string
		want Format
	}{
		{"water.xyz", XYZ},
		{"SI.CIF", CIF},
		{"cell.poscar", POSCAR},
		{"cell.VASP", POSCAR},
		{"mol.gjf", GJF},
		{"mol.com", GJF},
		{"job.inp", ORCA},
		{"1abc.pdb", PDB},
		{"cell.stru", STRU},
		{"POSCAR", POSCAR},
		{"run/CONTCAR", POSCAR},
		{"/tmp/calc/STRU", STRU},
	}
	for _, c := range cases {
		f, err := FormatOf(c.name)
		require.NoError(Te, err, c.name)
		assert.Equal(Te, c.want, f, c.name)
		codec, err := ForFile(c.name)
		require.NoError(Te, err, c.name)
		assert.NotNil(Te, codec)
	}
}

func TestFormatOfUnsupported(Te *testing.T) {
	for _, name := range []string{"a.foo", "README", "poscar", "STRU.bak", "x."} {
		_, err := ForFile(name)
		require.Error(Te, err, name)
		assert.True(Te, errors.Is(err, crys.ErrUnsupportedFormat), name)
	}
	_, err := ForFile("a.foo")
	assert.Contains(Te, errors.FlattenHints(err), ".xyz")
}

func TestParseFormat(Te *testing.T) {
	for name, want := range map[string]Format{
		"xyz": XYZ, "CIF": CIF, "vasp": POSCAR, "poscar": POSCAR, "com": GJF, "gjf": GJF,
		"orca": ORCA, "inp": ORCA, "pdb": PDB, "stru": STRU, "abacus": STRU, ".xyz": XYZ,
	} {
		f, err := ParseFormat(name)
		require.NoError(Te, err, name)
		assert.Equal(Te, want, f, name)
	}
	_, err := ParseFormat("mol2")
	assert.True(Te, errors.Is(err, crys.ErrUnsupportedFormat))
}

func TestCodecFor(Te *testing.T) {
	for f := XYZ; f <= STRU; f++ {
		c, err := CodecFor(f)
		require.NoError(Te, err, f.String())
		assert.NotNil(Te, c)
		assert.NotEqual(Te, "unknown", f.String())
	}
	_, err := CodecFor(Format(42))
	assert.True(Te, errors.Is(err, crys.ErrUnsupportedFormat))
	_, err = Serialize(Format(-1), crys.NewStructure(""))
	assert.True(Te, errors.Is(err, crys.ErrUnsupportedFormat))
}
