package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crys "github.com/rmera/gocrys"
)

func methanol(Te *testing.T) *crys.Structure {
	S := crys.NewStructure("methanol")
	for _, a := range []struct {
		s string
		p [3]float64
	}{
		{"C", [3]float64{-0.0467, 0.6630, 0}},
		{"O", [3]float64{-0.0467, -0.7580, 0}},
		{"H", [3]float64{-1.0863, 0.9752, 0}},
		{"H", [3]float64{0.4409, 1.0639, 0.8892}},
		{"H", [3]float64{0.4409, 1.0639, -0.8892}},
		{"H", [3]float64{0.8588, -1.0848, 0}},
	} {
		_, err := S.NewAtom(a.s, a.p)
		require.NoError(Te, err)
	}
	return S
}

func TestBondStats(Te *testing.T) {
	assert.Equal(Te, Stats{}, BondStats(nil))
	one := BondStats([]crys.Bond{{Dist: 1.5}})
	assert.Equal(Te, Stats{N: 1, Mean: 1.5, Min: 1.5, Max: 1.5}, one)
	s := BondStats([]crys.Bond{{Dist: 1}, {Dist: 2}, {Dist: 3}})
	assert.Equal(Te, 3, s.N)
	assert.InDelta(Te, 2.0, s.Mean, 1e-12)
	assert.InDelta(Te, 1.0, s.StdDev, 1e-12)
	assert.Equal(Te, 1.0, s.Min)
	assert.Equal(Te, 3.0, s.Max)
}

func TestByPair(Te *testing.T) {
	pairs := ByPair(methanol(Te))
	assert.Len(Te, pairs["C-H"], 3)
	assert.Len(Te, pairs["C-O"], 1)
	assert.Len(Te, pairs["H-O"], 1)
	assert.Len(Te, pairs, 3)
}

func TestBondHistogram(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "bonds.png")
	require.NoError(Te, BondHistogram(methanol(Te), 10, "methanol", name, 4, 3))
	info, err := os.Stat(name)
	require.NoError(Te, err)
	assert.Greater(Te, info.Size(), int64(0))
	assert.Error(Te, BondHistogram(crys.NewStructure("empty"), 10, "", name, 4, 3))
}

func TestColors(Te *testing.T) {
	c := colors(0, 3, 255)
	assert.Equal(Te, uint8(255), c.R)
	assert.Equal(Te, uint8(255), c.A)
	r, g, b := iHVS2RGB(0, 1, 0)
	assert.Equal(Te, []uint8{255, 255, 255}, []uint8{r, g, b})
}
