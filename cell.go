/*
 * cell.go, part of gocrys.
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

package crys

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"

	v3 "github.com/rmera/gocrys/v3"
)

//UnitCell is the periodic repeat unit of a crystal. Lengths are in Angstrom,
//angles in degrees. The lattice vectors are kept as the rows of a 3x3 matrix,
//together with its inverse, so coordinates can be moved between the
//fractional and the cartesian frame.
type UnitCell struct {
	lengths [3]float64
	angles  [3]float64
	lattice *v3.Matrix
	inv     *v3.Matrix
}

//NewUnitCell builds a cell from its parameters, with a along x and
//b in the xy plane. It returns an error wrapping ErrInvalidGeometry
//if the lengths are not positive, an angle is outside (0,180), or
//the angles cannot close a cell.
func NewUnitCell(a, b, c, alpha, beta, gamma float64) (*UnitCell, error) {
	for i, l := range []float64{a, b, c} {
		if !(l > 0) || math.IsInf(l, 0) {
			return nil, errors.Wrapf(ErrInvalidGeometry, "cell length %d is %g, should be positive", i, l)
		}
	}
	for i, ang := range []float64{alpha, beta, gamma} {
		if !(ang > 0 && ang < 180) {
			return nil, errors.Wrapf(ErrInvalidGeometry, "cell angle %d is %g, should be in (0,180)", i, ang)
		}
	}
	ca := math.Cos(alpha * Deg2Rad)
	cb := math.Cos(beta * Deg2Rad)
	cg := math.Cos(gamma * Deg2Rad)
	sg := math.Sin(gamma * Deg2Rad)
	cx := c * cb
	cy := c * (ca - cb*cg) / sg
	cz2 := c*c - cx*cx - cy*cy
	if cz2 <= appzero {
		return nil, errors.Wrapf(ErrInvalidGeometry, "angles %g %g %g do not define a cell", alpha, beta, gamma)
	}
	vecs := [3][3]float64{
		{a, 0, 0},
		{snap(b * cg), snap(b * sg), 0},
		{snap(cx), snap(cy), math.Sqrt(cz2)},
	}
	U := &UnitCell{lengths: [3]float64{a, b, c}, angles: [3]float64{alpha, beta, gamma}}
	if err := U.setLattice(vecs); err != nil {
		return nil, err
	}
	return U, nil
}

//UnitCellFromVectors builds a cell from three lattice vectors (Angstrom). The vectors are
//kept as given, and the lengths and angles are derived from them. The vectors must
//form a right-handed set (positive determinant); left-handed lattices are rejected.
func UnitCellFromVectors(vecs [3][3]float64) (*UnitCell, error) {
	for i, v := range vecs {
		if !finite3(v) {
			return nil, errors.Wrapf(ErrInvalidGeometry, "lattice vector %d is not finite", i)
		}
	}
	U := &UnitCell{}
	for i := range vecs {
		U.lengths[i] = floats.Norm(vecs[i][:], 2)
		if U.lengths[i] <= appzero {
			return nil, errors.Wrapf(ErrInvalidGeometry, "lattice vector %d has zero length", i)
		}
	}
	U.angles[0] = angleDeg(vecs[1], vecs[2])
	U.angles[1] = angleDeg(vecs[0], vecs[2])
	U.angles[2] = angleDeg(vecs[0], vecs[1])
	if err := U.setLattice(vecs); err != nil {
		return nil, err
	}
	if U.lattice.Det() <= 0 {
		return nil, errors.Wrap(ErrInvalidGeometry, "lattice vectors are left-handed")
	}
	return U, nil
}

func (U *UnitCell) setLattice(vecs [3][3]float64) error {
	U.lattice = v3.FromVecs(vecs[0], vecs[1], vecs[2])
	inv, err := U.lattice.Inverse()
	if err != nil {
		return errors.Wrapf(ErrInvalidGeometry, "degenerate lattice vectors: %v", err)
	}
	U.inv = inv
	return nil
}

func angleDeg(v1, v2 [3]float64) float64 {
	cos := floats.Dot(v1[:], v2[:]) / (floats.Norm(v1[:], 2) * floats.Norm(v2[:], 2))
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * Rad2Deg
}

func snap(x float64) float64 {
	if math.Abs(x) < appzero {
		return 0
	}
	return x
}

//Lengths returns a, b and c.
func (U *UnitCell) Lengths() [3]float64 { return U.lengths }

//Angles returns alpha, beta and gamma, in degrees.
func (U *UnitCell) Angles() [3]float64 { return U.angles }

//Vectors returns the three lattice vectors.
func (U *UnitCell) Vectors() [3][3]float64 {
	return [3][3]float64{U.lattice.Vec(0), U.lattice.Vec(1), U.lattice.Vec(2)}
}

//Volume returns the cell volume in cubic Angstrom.
func (U *UnitCell) Volume() float64 {
	return math.Abs(U.lattice.Det())
}

//FracToCart converts fractional coordinates to cartesian ones.
func (U *UnitCell) FracToCart(f [3]float64) [3]float64 {
	res := v3.Zeros(1)
	res.Transform(v3.FromVecs(f), U.lattice)
	return res.Vec(0)
}

//CartToFrac converts cartesian coordinates to fractional ones.
func (U *UnitCell) CartToFrac(c [3]float64) [3]float64 {
	res := v3.Zeros(1)
	res.Transform(v3.FromVecs(c), U.inv)
	return res.Vec(0)
}

//FracToCartAll converts a set of fractional coordinates, one per row, to cartesian.
func (U *UnitCell) FracToCartAll(frac *v3.Matrix) *v3.Matrix {
	res := v3.Zeros(frac.NVecs())
	res.Transform(frac, U.lattice)
	return res
}

//CartToFracAll converts a set of cartesian coordinates, one per row, to fractional.
func (U *UnitCell) CartToFracAll(cart *v3.Matrix) *v3.Matrix {
	res := v3.Zeros(cart.NVecs())
	res.Transform(cart, U.inv)
	return res
}

//Standardize returns the cell rebuilt from its parameters in the standard
//orientation, and the cartesian coordinates cart (one per row) moved with it,
//so their fractional coordinates stay the same. cart can be nil.
func (U *UnitCell) Standardize(cart *v3.Matrix) (*UnitCell, *v3.Matrix, error) {
	l, a := U.lengths, U.angles
	std, err := NewUnitCell(l[0], l[1], l[2], a[0], a[1], a[2])
	if err != nil {
		return nil, nil, err
	}
	if cart == nil {
		return std, nil, nil
	}
	return std, std.FracToCartAll(U.CartToFracAll(cart)), nil
}

//Scaled returns a new cell with each lattice vector multiplied by the
//corresponding factor. Angles are unchanged.
func (U *UnitCell) Scaled(nx, ny, nz int) *UnitCell {
	f := [3]float64{float64(nx), float64(ny), float64(nz)}
	vecs := U.Vectors()
	S := &UnitCell{angles: U.angles}
	for i := range vecs {
		for j := range vecs[i] {
			vecs[i][j] *= f[i]
		}
		S.lengths[i] = U.lengths[i] * f[i]
	}
	if err := S.setLattice(vecs); err != nil {
		panic("crys: scaling a valid cell gave a degenerate one") //factors are checked by the caller
	}
	return S
}

//Copy returns an independent copy of the cell.
func (U *UnitCell) Copy() *UnitCell {
	return &UnitCell{
		lengths: U.lengths,
		angles:  U.angles,
		lattice: U.lattice.Copy(),
		inv:     U.inv.Copy(),
	}
}

func (U *UnitCell) String() string {
	return fmt.Sprintf("a=%.4f b=%.4f c=%.4f alpha=%.2f beta=%.2f gamma=%.2f",
		U.lengths[0], U.lengths[1], U.lengths[2], U.angles[0], U.angles[1], U.angles[2])
}
