package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crys "github.com/rmera/gocrys"
)

//testWater has 3-decimal positions, which even PDB keeps exactly.
func testWater(Te *testing.T) *crys.Structure {
	S := crys.NewStructure("water")
	for _, a := range []struct {
		s string
		p [3]float64
	}{
		{"O", [3]float64{0, 0, 0.117}},
		{"H", [3]float64{0, 0.757, -0.469}},
		{"H", [3]float64{0, -0.757, -0.469}},
	} {
		_, err := S.NewAtom(a.s, a.p)
		require.NoError(Te, err)
	}
	return S
}

func testSilicon(Te *testing.T) *crys.Structure {
	S := crys.NewStructure("silicon")
	U, err := crys.NewUnitCell(5.4, 5.4, 5.4, 90, 90, 90)
	require.NoError(Te, err)
	S.SetPeriodic(U)
	for _, f := range [][3]float64{{0, 0, 0}, {0.25, 0.25, 0.25}, {0.5, 0.5, 0}, {0.75, 0.75, 0.25}} {
		_, err := S.NewAtom("Si", U.FracToCart(f))
		require.NoError(Te, err)
	}
	S.Atom(0).SetFixed(true)
	return S
}

func assertSamePositions(Te *testing.T, want, got *crys.Structure, tol float64, msg string) {
	Te.Helper()
	require.Equal(Te, want.Len(), got.Len(), msg)
	for i := 0; i < want.Len(); i++ {
		w, g := want.Atom(i).Position(), got.Atom(i).Position()
		assert.InDeltaSlice(Te, w[:], g[:], tol, "%s atom %d", msg, i)
		assert.Equal(Te, want.Atom(i).Symbol(), got.Atom(i).Symbol(), msg)
	}
}

func TestRoundTrip(Te *testing.T) {
	for f := XYZ; f <= STRU; f++ {
		for _, S0 := range []*crys.Structure{testWater(Te), testSilicon(Te)} {
			msg := f.String() + "/" + S0.Name
			text0, err := Serialize(f, S0)
			require.NoError(Te, err, msg)
			S1, err := Parse(f, text0)
			require.NoError(Te, err, msg)
			want := S0
			if f == POSCAR && !S0.IsCrystal() {
				//molecules are moved inside the box POSCAR needs
				_, shift := enclosingBox(S0)
				want = S0.Clone()
				require.NoError(Te, want.Translate(shift), msg)
			}
			assertSamePositions(Te, want, S1, 1e-6, msg)
			text1, err := Serialize(f, S1)
			require.NoError(Te, err, msg)
			S2, err := Parse(f, text1)
			require.NoError(Te, err, msg)
			assertSamePositions(Te, S1, S2, 1e-6, msg)
			if S0.IsCrystal() && f != ORCA { //ORCA input has no lattice
				require.True(Te, S2.IsCrystal(), msg)
				assert.InDelta(Te, S0.Cell().Volume(), S2.Cell().Volume(), 1e-4, msg)
			}
		}
	}
}

//Formats with movement flags keep the fixed atoms.
func TestRoundTripFixed(Te *testing.T) {
	for _, f := range []Format{POSCAR, STRU, GJF, ORCA} {
		S0 := testSilicon(Te)
		text, _ := Serialize(f, S0)
		S1, err := Parse(f, text)
		require.NoError(Te, err, f.String())
		for i := 0; i < S0.Len(); i++ {
			assert.Equal(Te, S0.Atom(i).Fixed(), S1.Atom(i).Fixed(), "%s atom %d", f, i)
		}
	}
}
