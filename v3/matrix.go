/*
 * matrix.go, part of gocrys.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package v3

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 1e-12 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Matrix is a set of vectors in 3D space. Each row is one vector, i.e.
//the cartesian coordinates of a point.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, errors.Newf("v3: input slice length %d not divisible by %d", l, cols)
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

//FromVecs builds a Matrix with one row per given vector.
func FromVecs(vecs ...[3]float64) *Matrix {
	F := Zeros(len(vecs))
	for i, v := range vecs {
		F.SetVec(i, v)
	}
	return F
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, cols*vecs))}
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//Vec returns a copy of the ith vector of F.
func (F *Matrix) Vec(i int) [3]float64 {
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	F.Set(i, 0, v[0])
	F.Set(i, 1, v[1])
	F.Set(i, 2, v[2])
}

//VecView returns a view of the given vector of the matrix. Changes in the
//view are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

//Copy returns a deep copy of F.
func (F *Matrix) Copy() *Matrix {
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

//Transform puts in F the product A*T, where T is a 3x3 matrix. With T holding
//lattice vectors as rows and A fractional coordinates, F gets the cartesian ones.
func (F *Matrix) Transform(A, T *Matrix) {
	if r, c := T.Dims(); r != 3 || c != 3 {
		panic(ErrShape)
	}
	F.Dense.Mul(A.Dense, T.Dense)
}

//Det returns the determinant of a 3x3 Matrix.
func (F *Matrix) Det() float64 {
	if r, _ := F.Dims(); r != 3 {
		panic(ErrDeterminant)
	}
	return mat.Det(F.Dense)
}

//Inverse returns the inverse of a 3x3 matrix, or an error if F is singular.
func (F *Matrix) Inverse() (*Matrix, error) {
	if r, _ := F.Dims(); r != 3 {
		return nil, errors.New("v3: only 3x3 matrices can be inverted")
	}
	if math.Abs(F.Det()) <= appzero {
		return nil, errors.New("v3: singular matrix")
	}
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(F.Dense); err != nil {
		return nil, errors.Wrap(err, "v3: inverting matrix")
	}
	return &Matrix{inv}, nil
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		v = append(v, fmt.Sprintf("%9.4f %9.4f %9.4f", F.At(i, 0), F.At(i, 1), F.At(i, 2)))
	}
	return "[" + strings.Join(v, "\n ") + "]"
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use the functions returning error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrDeterminant = PanicMsg("gocrys/v3: Determinants are only available for 3x3 matrices")
	ErrShape       = PanicMsg("gocrys/v3: Dimension mismatch")
)
