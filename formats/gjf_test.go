package formats

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crys "github.com/rmera/gocrys"
)

func TestGJFParse(Te *testing.T) {
	text := `%chk=water.chk
%mem=2GB
#P B3LYP/6-31G(d)
 Opt Freq

Water cation
 second title line

1 2
O(Fragment=1)   0.000   0.000   0.117
1  -1   0.000   0.757  -0.469
H   0   0.000  -0.757  -0.469
X   1.0 2.0 3.0

ignored after the blank line
`
	S, err := GJFCodec{}.Parse(text)
	require.NoError(Te, err)
	require.Equal(Te, 3, S.Len())
	assert.Equal(Te, "Water cation second title line", S.Name)
	assert.Equal(Te, 1, S.Charge())
	assert.Equal(Te, 2, S.Multiplicity())
	assert.Equal(Te, "O", S.Atom(0).Symbol())
	assert.Equal(Te, "H", S.Atom(1).Symbol())
	assert.True(Te, S.Atom(1).Fixed())
	assert.False(Te, S.Atom(2).Fixed())
	assert.Equal(Te, [3]float64{0, -0.757, -0.469}, S.Atom(2).Position())
}

func TestGJFPeriodic(Te *testing.T) {
	text := "# PBE/STO-3G\n\nsodium\n\n0 1\nNa 0 0 0\nTv 4 0 0\nTv 0 4 0\nTv 0 0 4\n\n"
	S, err := GJFCodec{}.Parse(text)
	require.NoError(Te, err)
	require.True(Te, S.IsCrystal())
	assert.InDelta(Te, 64.0, S.Cell().Volume(), 1e-9)
	assert.Equal(Te, 1, S.Len())
}

func TestGJFMalformed(Te *testing.T) {
	_, err := GJFCodec{}.Parse("water\n\n0 1\nO 0 0 0\n")
	assert.True(Te, errors.Is(err, crys.ErrMalformedInput))
	_, err = GJFCodec{}.Parse("# HF\n\ntitle\n")
	assert.True(Te, errors.Is(err, crys.ErrMalformedInput))
	_, err = GJFCodec{}.Parse("# HF\n\ntitle\n\nO 0 0 0\n")
	assert.True(Te, errors.Is(err, crys.ErrMalformedInput))
}
