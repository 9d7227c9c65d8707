package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rmera/gocrys/internal/logger"
)

func TestXYZH2(Te *testing.T) {
	S, err := XYZCodec{}.Parse("2\ncomment\nH 0 0 0\nH 0 0 0.74\n")
	require.NoError(Te, err)
	require.Equal(Te, 2, S.Len())
	assert.Equal(Te, "comment", S.Name)
	assert.False(Te, S.IsCrystal())
	bonds := S.Bonds()
	require.Len(Te, bonds, 1)
	assert.InDelta(Te, 0.74, bonds[0].Dist, 1e-9)
}

func TestXYZSkipsBadLines(Te *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	defer logger.Set(nil)

	text := "5\n\nC 0 0 0 extra columns\nQq 1 1 1\nO 1 2\nN NaN 0 0\nH 0 0 1.09\n"
	S, err := XYZCodec{}.Parse(text)
	require.NoError(Te, err)
	require.Equal(Te, 2, S.Len())
	assert.Equal(Te, "C", S.Atom(0).Symbol())
	assert.Equal(Te, "H", S.Atom(1).Symbol())
	assert.Equal(Te, 3, logs.FilterMessage("skipping line").Len())
}

//The atom count is advisory.
func TestXYZCountNotEnforced(Te *testing.T) {
	S, err := XYZCodec{}.Parse("10\nfew atoms\nHe 0 0 0\n")
	require.NoError(Te, err)
	assert.Equal(Te, 1, S.Len())
	S, err = XYZCodec{}.Parse("1\nmore atoms\nHe 0 0 0\nNe 0 0 3\n")
	require.NoError(Te, err)
	assert.Equal(Te, 2, S.Len())
}

func TestXYZMultiFrame(Te *testing.T) {
	S, err := XYZCodec{}.Parse("1\nframe 1\nAr 0 0 0\n1\nframe 2\nAr 1 1 1\n")
	require.NoError(Te, err)
	assert.Equal(Te, 1, S.Len())
}

func TestXYZExtendedLattice(Te *testing.T) {
	text := "1\nLattice=\"4 0 0 0 5 0 0 0 6\" Properties=species:S:1:pos:R:3\nNa 1 1 1\n"
	S, err := XYZCodec{}.Parse(text)
	require.NoError(Te, err)
	require.True(Te, S.IsCrystal())
	assert.InDelta(Te, 120.0, S.Cell().Volume(), 1e-9)
	_, err = XYZCodec{}.Parse("1\nLattice=\"4 0 0\"\nNa 1 1 1\n")
	assert.Error(Te, err)
}

func TestXYZEmpty(Te *testing.T) {
	_, err := XYZCodec{}.Parse("")
	assert.Error(Te, err)
}
