package clash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crys "github.com/rmera/gocrys"
	"github.com/rmera/gocrys/chemgraph"
	v3 "github.com/rmera/gocrys/v3"
)

func build(Te *testing.T, atoms map[string][][3]float64, order []string) *crys.Structure {
	Te.Helper()
	S := crys.NewStructure("test")
	for _, el := range order {
		for _, p := range atoms[el] {
			_, err := S.NewAtom(el, p)
			require.NoError(Te, err)
		}
	}
	return S
}

func TestContacts(Te *testing.T) {
	//water, plus an argon just outside bonding distance of the oxygen, plus a far away argon
	S := build(Te, map[string][][3]float64{
		"O":  {{0, 0, 0}},
		"H":  {{0.757, 0.586, 0}, {-0.757, 0.586, 0}},
		"Ar": {{0, -1.95, 0}, {0, 0, 10}},
	}, []string{"O", "H", "Ar"})
	//O-Ar bonds below 1.1*(0.66+1.06)=1.892 and clashes below 0.6*(1.52+1.88)=2.04
	c := Contacts(S, 0)
	require.Len(Te, c, 1)
	assert.Equal(Te, S.Atom(0).ID(), c[0].At1)
	assert.Equal(Te, S.Atom(3).ID(), c[0].At2)
	assert.InDelta(Te, 1.95, c[0].Dist, 1e-9)
	assert.InDelta(Te, 2.04-1.95, c[0].Overlap, 1e-9)
	big := Contacts(S, 10)
	for i := 1; i < len(big); i++ {
		assert.LessOrEqual(Te, big[i].Overlap, big[i-1].Overlap)
	}
	//the O-H bonds are never clashes, even with a huge scale
	for _, x := range big {
		assert.False(Te, x.At1 == S.Atom(0).ID() && x.At2 == S.Atom(1).ID())
	}
	assert.Empty(Te, Contacts(build(Te, map[string][][3]float64{"H": {{0, 0, 0}, {0.74, 0, 0}}}, []string{"H"}), 0))
}

func TestLowestDist(Te *testing.T) {
	a := v3.FromVecs([3]float64{0, 0, 0}, [3]float64{5, 0, 0})
	b := v3.FromVecs([3]float64{0, 3, 0}, [3]float64{5, 1, 0}, [3]float64{9, 9, 9})
	d, idx := LowestDist(a, b)
	assert.InDelta(Te, 1.0, d, 1e-12)
	assert.Equal(Te, [2]int{1, 1}, idx)
	d, idx = LowestDist(a, nil)
	assert.Equal(Te, -1.0, d)
	assert.Equal(Te, [2]int{-1, -1}, idx)
}

func TestFragmentGap(Te *testing.T) {
	S := build(Te, map[string][][3]float64{
		"O":  {{0, 0, 0}},
		"H":  {{0.757, 0.586, 0}, {-0.757, 0.586, 0}},
		"Ar": {{0, 4, 0}},
	}, []string{"O", "H", "Ar"})
	frags := chemgraph.Fragments(S)
	require.Len(Te, frags, 2)
	assert.InDelta(Te, math.Hypot(0.757, 4-0.586), FragmentGap(S, frags), 1e-9)
	assert.Equal(Te, -1.0, FragmentGap(S, frags[:1]))
	assert.Nil(Te, Coords(S, nil))
}
