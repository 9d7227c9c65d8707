package histo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewData(Te *testing.T) {
	raw := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	D, err := NewData([]float64{0, 1, 2, 3, 4, 8}, raw)
	require.NoError(Te, err)
	//8, 32 and 44 are out of range
	assert.Equal(Te, len(raw)-3, D.Total())
	assert.Equal(Te, []float64{2, 6, 2, 7, 9}, D.Bins())
	assert.InDelta(Te, float64(D.Total()), D.Sum(), 1e-12)
	D.Normalize()
	assert.InDelta(Te, 1.0, D.Sum(), 1e-12)
	D.AddData(2.5)
	assert.True(Te, D.Normalized())
	D.UnNormalize()
	assert.InDelta(Te, 3.0, D.Bins()[2], 1e-9)
}

func TestAddData(Te *testing.T) {
	D, err := NewData([]float64{0, 1, 2}, nil)
	require.NoError(Te, err)
	D.AddData(0, 0.5, 1, 1.99, 2, -1)
	assert.Equal(Te, []float64{2, 2}, D.Bins())
	assert.Equal(Te, 4, D.Total())
}

func TestUniform(Te *testing.T) {
	d, err := Uniform(1, 2, 4)
	require.NoError(Te, err)
	require.Len(Te, d, 5)
	assert.InDelta(Te, 1.25, d[1], 1e-12)
	D, err := NewData(d, []float64{1, 2})
	require.NoError(Te, err)
	assert.Equal(Te, 2, D.Total()) //the max lands in the last bin
	d, err = Uniform(1.5, 1.5, 3)
	require.NoError(Te, err)
	assert.Greater(Te, d[3], d[0])
	_, err = Uniform(2, 1, 3)
	assert.Error(Te, err)
	_, err = Uniform(0, 1, 0)
	assert.Error(Te, err)
}

func TestBadDividers(Te *testing.T) {
	_, err := NewData([]float64{1}, nil)
	assert.Error(Te, err)
	_, err = NewData([]float64{2, 1, 3}, nil)
	assert.Error(Te, err)
}

func TestJSON(Te *testing.T) {
	D, err := NewData([]float64{0, 1, 2, 3}, []float64{0.5, 1.5, 1.6})
	require.NoError(Te, err)
	j, err := json.Marshal(D)
	require.NoError(Te, err)
	D2 := new(Data)
	require.NoError(Te, json.Unmarshal(j, D2))
	assert.Equal(Te, D.Bins(), D2.Bins())
	assert.Equal(Te, D.Dividers(), D2.Dividers())
	assert.Error(Te, json.Unmarshal([]byte(`{"dividers":[0,1],"histo":[1,2]}`), D2))
}

func TestBars(Te *testing.T) {
	D, err := NewData([]float64{0, 1, 2}, []float64{0.5, 1.2, 1.4})
	require.NoError(Te, err)
	lines := strings.Split(strings.TrimSpace(D.Bars(10)), "\n")
	require.Len(Te, lines, 2)
	assert.Contains(Te, lines[1], strings.Repeat("#", 10))
	assert.Contains(Te, lines[0], "|#####     |")
	assert.NotEmpty(Te, D.String())
}
