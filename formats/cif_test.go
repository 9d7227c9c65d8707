package formats

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crys "github.com/rmera/gocrys"
)

const cifQuartzLike = `# a comment
data_test_cell
_chemical_name_common 'silicon dioxide'
_cell_length_a   4.9160(2)
_cell_length_b   4.9160(2)
_cell_length_c   5.4054(3)
_cell_angle_alpha 90
_cell_angle_beta  90
_cell_angle_gamma 120
_cell_formula_units_Z
3
loop_
_symmetry_equiv_pos_as_xyz
'x, y, z'
'-y, x-y, z+1/3'
loop_
_atom_site_label
_atom_site_type_symbol
_atom_site_fract_x
_atom_site_fract_y
_atom_site_fract_z
Si1 Si4+ 0.4697(1) 0.0000 0.0000
O1 O2- 0.4135 0.2669 0.1191
O2 O2- ? 0.2669 0.1191
loop_
_atom_type_symbol
Si4+
O2-
`

func TestCIFParse(Te *testing.T) {
	S, err := CIFCodec{}.Parse(cifQuartzLike)
	require.NoError(Te, err)
	assert.Equal(Te, "test_cell", S.Name)
	require.True(Te, S.IsCrystal())
	require.Equal(Te, 2, S.Len())
	assert.Equal(Te, "Si", S.Atom(0).Symbol())
	assert.Equal(Te, "O", S.Atom(1).Symbol())
	a := S.Cell().Angles()
	assert.InDelta(Te, 120.0, a[2], 1e-9)
	p := S.Atom(0).Position()
	assert.InDelta(Te, 0.4697*4.916, p[0], 1e-9)
}

func TestCIFCartesian(Te *testing.T) {
	text := "data_mol\nloop_\n_atom_site.label\n_atom_site.Cartn_x\n_atom_site.Cartn_y\n_atom_site.Cartn_z\nC1 0 0 0\nO1 0 0 1.128\n"
	S, err := CIFCodec{}.Parse(text)
	require.NoError(Te, err)
	assert.False(Te, S.IsCrystal())
	assert.Equal(Te, "CO", S.Formula())
	assert.Equal(Te, [3]float64{0, 0, 1.128}, S.Atom(1).Position())
}

func TestCIFMalformed(Te *testing.T) {
	_, err := CIFCodec{}.Parse("data_x\n_cell_length_a 4\n")
	assert.True(Te, errors.Is(err, crys.ErrMalformedInput))
	_, err = CIFCodec{}.Parse("data_x\nloop_\n_atom_site_label\n_atom_site_fract_x\n_atom_site_fract_y\n_atom_site_fract_z\nNa 0 0 0\n")
	assert.True(Te, errors.Is(err, crys.ErrMalformedInput))
	_, err = CIFCodec{}.Parse("")
	assert.True(Te, errors.Is(err, crys.ErrMalformedInput))
}

func TestCIFTokens(Te *testing.T) {
	assert.Equal(Te, []string{"a", "b c", "d'e", "f"}, cifTokens(`a 'b c' 'd'e' f # comment`))
	assert.Equal(Te, []string{"x, y, z"}, cifTokens(`"x, y, z"`))
}
