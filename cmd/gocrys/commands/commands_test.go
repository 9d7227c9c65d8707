package commands

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crys "github.com/rmera/gocrys"
	"github.com/rmera/gocrys/chemjson"
	"github.com/rmera/gocrys/fileio"
	"github.com/rmera/gocrys/internal/config"
)

const waterXYZ = `3
water
O    0.000000    0.000000    0.000000
H    0.757000    0.586000    0.000000
H   -0.757000    0.586000    0.000000
`

func workdir(Te *testing.T) string {
	Te.Helper()
	SetConfig(config.Default())
	dir := Te.TempDir()
	require.NoError(Te, os.WriteFile(filepath.Join(dir, "water.xyz"), []byte(waterXYZ), 0o644))
	S := crys.NewStructure("Si")
	U, err := crys.NewUnitCell(5.431, 5.431, 5.431, 90, 90, 90)
	require.NoError(Te, err)
	S.SetPeriodic(U)
	for _, f := range [][3]float64{{0, 0, 0}, {0.25, 0.25, 0.25}} {
		_, err := S.NewAtom("Si", U.FracToCart(f))
		require.NoError(Te, err)
	}
	require.NoError(Te, fileio.WriteFile(filepath.Join(dir, "si.cif"), S))
	return dir
}

func run(Te *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	Te.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvert(Te *testing.T) {
	dir := workdir(Te)
	out := filepath.Join(dir, "water.pdb")
	_, err := run(Te, NewConvertCmd(), filepath.Join(dir, "water.xyz"), out)
	require.NoError(Te, err)
	S, err := fileio.ReadFile(out)
	require.NoError(Te, err)
	assert.Equal(Te, "H2O", S.Formula())
	assert.InDelta(Te, 0.757, S.Atom(1).Position()[0], 1e-3)
}

func TestConvertCenter(Te *testing.T) {
	dir := workdir(Te)
	out := filepath.Join(dir, "water.inp")
	_, err := run(Te, NewConvertCmd(), filepath.Join(dir, "water.xyz"), out, "--center")
	require.NoError(Te, err)
	S, err := fileio.ReadFile(out)
	require.NoError(Te, err)
	com := S.CenterOfMass()
	for _, c := range com {
		assert.InDelta(Te, 0, c, 1e-6)
	}
}

func TestConvertTranslate(Te *testing.T) {
	dir := workdir(Te)
	out := filepath.Join(dir, "moved.xyz")
	_, err := run(Te, NewConvertCmd(), filepath.Join(dir, "water.xyz"), out, "--translate", "1,0,-2")
	require.NoError(Te, err)
	S, err := fileio.ReadFile(out)
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, S.Atom(0).Position()[0], 1e-6)
	assert.InDelta(Te, -2.0, S.Atom(0).Position()[2], 1e-6)
	_, err = run(Te, NewConvertCmd(), filepath.Join(dir, "water.xyz"), out, "--translate", "1,0")
	assert.Error(Te, err)
}

func TestConvertFormats(Te *testing.T) {
	dir := workdir(Te)
	//no extension: the configured format is used
	out := filepath.Join(dir, "water_out")
	_, err := run(Te, NewConvertCmd(), filepath.Join(dir, "water.xyz"), out)
	require.NoError(Te, err)
	raw, err := os.ReadFile(out)
	require.NoError(Te, err)
	assert.True(Te, strings.HasPrefix(string(raw), "3\n"))

	out = filepath.Join(dir, "si.out")
	_, err = run(Te, NewConvertCmd(), filepath.Join(dir, "si.cif"), out, "--to", "stru")
	require.NoError(Te, err)
	S, err := readStructure(out, "stru")
	require.NoError(Te, err)
	assert.True(Te, S.IsCrystal())
	assert.Equal(Te, 2, S.Len())

	_, err = run(Te, NewConvertCmd(), filepath.Join(dir, "water.xyz"), out, "--to", "mol2")
	assert.Error(Te, err)
}

func TestSupercell(Te *testing.T) {
	dir := workdir(Te)
	out := filepath.Join(dir, "POSCAR")
	_, err := run(Te, NewSupercellCmd(), filepath.Join(dir, "si.cif"), out, "--n", "2,2,1")
	require.NoError(Te, err)
	S, err := fileio.ReadFile(out)
	require.NoError(Te, err)
	assert.Equal(Te, 8, S.Len())
	l := S.Cell().Lengths()
	assert.InDelta(Te, 2*5.431, l[0], 1e-6)
	assert.InDelta(Te, 5.431, l[2], 1e-6)

	//molecules have no lattice to replicate
	_, err = run(Te, NewSupercellCmd(), filepath.Join(dir, "water.xyz"), filepath.Join(dir, "w.xyz"))
	assert.ErrorIs(Te, err, crys.ErrInvalidGeometry)
}

func TestInfo(Te *testing.T) {
	dir := workdir(Te)
	out, err := run(Te, NewInfoCmd(), filepath.Join(dir, "water.xyz"), filepath.Join(dir, "si.cif"))
	require.NoError(Te, err)
	assert.Contains(Te, out, "H2O")
	assert.Contains(Te, out, "Si2")
	assert.Contains(Te, out, "5.4310")
}

func TestBonds(Te *testing.T) {
	dir := workdir(Te)
	png := filepath.Join(dir, "bonds.png")
	out, err := run(Te, NewBondsCmd(), filepath.Join(dir, "water.xyz"), "--list", "--histo", "--plot", png, "--bins", "5")
	require.NoError(Te, err)
	assert.Contains(Te, out, "H-O")
	assert.Contains(Te, out, "0.9")
	assert.Contains(Te, out, strings.Repeat("#", 40))
	st, err := os.Stat(png)
	require.NoError(Te, err)
	assert.Positive(Te, st.Size())
}

func TestJSON(Te *testing.T) {
	dir := workdir(Te)
	out, err := run(Te, NewJSONCmd(), filepath.Join(dir, "water.xyz"), filepath.Join(dir, "si.cif"))
	require.NoError(Te, err)
	r := bufio.NewReader(strings.NewReader(out))
	S, jerr := chemjson.DecodeStructure(r)
	require.Nil(Te, jerr)
	assert.Equal(Te, "H2O", S.Formula())
	S, jerr = chemjson.DecodeStructure(r)
	require.Nil(Te, jerr)
	assert.True(Te, S.IsCrystal())

	_, err = run(Te, NewJSONCmd(), filepath.Join(dir, "missing.xyz"))
	assert.Error(Te, err)
}

func TestParseTriple(Te *testing.T) {
	n, err := parseTriple("3")
	require.NoError(Te, err)
	assert.Equal(Te, [3]int{3, 3, 3}, n)
	n, err = parseTriple("2, 1,4")
	require.NoError(Te, err)
	assert.Equal(Te, [3]int{2, 1, 4}, n)
	_, err = parseTriple("2,2")
	assert.Error(Te, err)
	_, err = parseTriple("a,b,c")
	assert.Error(Te, err)
}
