package chemgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crys "github.com/rmera/gocrys"
)

//two water molecules 3 A apart, and a lone argon atom.
func waterDimer(Te *testing.T) *crys.Structure {
	S := crys.NewStructure("dimer")
	for _, a := range []struct {
		s string
		p [3]float64
	}{
		{"O", [3]float64{0, 0, 0}},
		{"H", [3]float64{0.757, 0.586, 0}},
		{"Ar", [3]float64{10, 10, 10}},
		{"O", [3]float64{3, 0, 0}},
		{"H", [3]float64{-0.757, 0.586, 0}},
		{"H", [3]float64{3.757, 0.586, 0}},
		{"H", [3]float64{2.243, 0.586, 0}},
	} {
		_, err := S.NewAtom(a.s, a.p)
		require.NoError(Te, err)
	}
	return S
}

func TestBondGraph(Te *testing.T) {
	S := waterDimer(Te)
	G := NewBondGraph(S)
	assert.Equal(Te, S.Len(), G.Nodes().Len())
	o := int64(S.Atom(0).ID())
	assert.Equal(Te, 2, G.Degree(o))
	assert.Equal(Te, 0, G.Degree(int64(S.Atom(2).ID())))
	assert.Same(Te, S.Atom(0), G.Atom(o))
	w, ok := G.Weight(o, int64(S.Atom(1).ID()))
	require.True(Te, ok)
	assert.InDelta(Te, 0.9569, w, 1e-3)
	assert.Nil(Te, G.Atom(-5))
}

func TestFragments(Te *testing.T) {
	S := waterDimer(Te)
	frags := Fragments(S)
	require.Len(Te, frags, 3)
	id := func(i int) crys.ID { return S.Atom(i).ID() }
	assert.Equal(Te, []crys.ID{id(0), id(1), id(4)}, frags[0])
	assert.Equal(Te, []crys.ID{id(2)}, frags[1])
	assert.Equal(Te, []crys.ID{id(3), id(5), id(6)}, frags[2])
	assert.Empty(Te, Fragments(crys.NewStructure("")))
}
