package chemjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crys "github.com/rmera/gocrys"
)

func nacl(Te *testing.T) *crys.Structure {
	S := crys.NewStructure("NaCl")
	U, err := crys.NewUnitCell(5.64, 5.64, 5.64, 90, 90, 90)
	require.NoError(Te, err)
	S.SetPeriodic(U)
	S.NewAtom("Na", [3]float64{0, 0, 0})
	S.NewAtom("Cl", [3]float64{2.82, 2.82, 2.82})
	S.Atom(1).SetFixed(true)
	return S
}

func TestEncodeDecode(Te *testing.T) {
	var buf bytes.Buffer
	S := nacl(Te)
	require.Nil(Te, EncodeStructure(&buf, S))
	require.Nil(Te, EncodeStructure(&buf, S))
	assert.Contains(Te, buf.String(), `"isCrystal":true`)
	assert.Contains(Te, buf.String(), `"unitCell":{`)

	in := bufio.NewReader(&buf)
	for i := 0; i < 2; i++ {
		R, jerr := DecodeStructure(in)
		require.Nil(Te, jerr)
		assert.Equal(Te, "NaCl", R.Name)
		assert.NotEqual(Te, S.ID(), R.ID())
		assert.True(Te, R.IsCrystal())
		assert.True(Te, R.Atom(1).Fixed())
		assert.Equal(Te, S.Atom(1).Position(), R.Atom(1).Position())
	}
	_, jerr := DecodeStructure(in)
	require.NotNil(Te, jerr)
	assert.Equal(Te, io.EOF.Error(), jerr.Message)
}

func TestDecodeErrors(Te *testing.T) {
	_, jerr := DecodeStructure(bufio.NewReader(strings.NewReader("{not json}\n")))
	require.NotNil(Te, jerr)
	assert.Equal(Te, StageDecode, jerr.Stage)
	var back Error
	require.NoError(Te, json.Unmarshal(jerr.Marshal(), &back))
	assert.True(Te, back.IsError)
	assert.Equal(Te, StageDecode, back.Stage)
	assert.Contains(Te, string(jerr.Marshal()), `"stage":"decode"`)

	_, jerr = DecodeStructure(bufio.NewReader(strings.NewReader(`{"name":"x","atoms":[{"element":"Zz"}]}`)))
	require.NotNil(Te, jerr)
}

func TestInfo(Te *testing.T) {
	var buf bytes.Buffer
	J := InfoFor(nacl(Te))
	assert.Equal(Te, []string{"ClNa"}, J.Formulas)
	require.Nil(Te, J.Send(&buf))
	var back Info
	require.NoError(Te, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(Te, 1, back.Structures)
	assert.Equal(Te, []int{2}, back.AtomsPerStructure)
}
