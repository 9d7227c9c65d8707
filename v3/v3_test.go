package v3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	assert.Equal(Te, 2, A.NVecs())
	assert.Equal(Te, [3]float64{4, 5, 6}, A.Vec(1))
	_, err = NewMatrix([]float64{1, 2})
	assert.Error(Te, err)
}

func TestVecView(Te *testing.T) {
	A := FromVecs([3]float64{1, 2, 3}, [3]float64{4, 5, 6})
	v := A.VecView(1)
	v.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0))
	c := A.Copy()
	c.Set(0, 0, -1)
	assert.Equal(Te, 1.0, A.At(0, 0))
}

func TestTransformAndInverse(Te *testing.T) {
	L := FromVecs([3]float64{2, 0, 0}, [3]float64{1, 3, 0}, [3]float64{0, 1, 4})
	assert.InDelta(Te, 24.0, L.Det(), 1e-12)
	frac := FromVecs([3]float64{0.5, 0.5, 0.5}, [3]float64{1, 0, 0})
	cart := Zeros(2)
	cart.Transform(frac, L)
	c0 := cart.Vec(0)
	assert.InDeltaSlice(Te, []float64{1.5, 2, 2}, c0[:], 1e-12)
	inv, err := L.Inverse()
	require.NoError(Te, err)
	back := Zeros(2)
	back.Transform(cart, inv)
	b0, b1 := back.Vec(0), back.Vec(1)
	assert.InDeltaSlice(Te, []float64{0.5, 0.5, 0.5}, b0[:], 1e-12)
	assert.InDeltaSlice(Te, []float64{1, 0, 0}, b1[:], 1e-12)
}

func TestSingular(Te *testing.T) {
	L := FromVecs([3]float64{1, 0, 0}, [3]float64{2, 0, 0}, [3]float64{0, 0, 1})
	_, err := L.Inverse()
	assert.Error(Te, err)
}
