/*
 * histo.go, part of gocrys.
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

//Package histo builds simple histograms with explicit bin dividers, such as the
//bond-length distributions printed by the gocrys bonds command.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram. Bin i counts the values v with dividers[i] <= v < dividers[i+1].
//Values outside the dividers are ignored.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//Uniform returns bins+1 evenly spaced dividers covering [lo,hi]. The last
//divider is nudged up so hi itself falls in the last bin.
func Uniform(lo, hi float64, bins int) ([]float64, error) {
	if bins < 1 {
		return nil, errors.Newf("histo.Uniform: need at least one bin, got %d", bins)
	}
	if !(hi >= lo) {
		return nil, errors.Newf("histo.Uniform: upper limit %g smaller than lower limit %g", hi, lo)
	}
	if hi == lo {
		hi = lo + 1e-3
	}
	d := floats.Span(make([]float64, bins+1), lo, hi)
	d[bins] += (hi - lo) * 1e-9
	return d, nil
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil. In that case, an empty histogram is created.
func NewData(dividers []float64, rawdata []float64) (*Data, error) {
	if len(dividers) < 2 {
		return nil, errors.Newf("histo.NewData: need at least 2 dividers, got %d", len(dividers))
	}
	if !sort.Float64sAreSorted(dividers) {
		return nil, errors.New("histo.NewData: dividers must be sorted")
	}
	D := new(Data)
	//copied, so nobody changes it from outside
	D.dividers = append([]float64(nil), dividers...)
	D.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		D.rehisto(rawdata)
	}
	return D, nil
}

func (D *Data) rehisto(rawdata []float64) {
	raw := append([]float64(nil), rawdata...)
	sort.Float64s(raw)
	//stat.Histogram panics on out-of-range values, so those go first.
	maxi := sort.SearchFloat64s(raw, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(raw, D.dividers[0])
	raw = raw[mini:maxi]
	D.total = len(raw)
	D.histo = stat.Histogram(nil, D.dividers, raw, nil)
}

//AddData adds the given data point(s) to the histogram
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		i := sort.SearchFloat64s(D.dividers, v)
		if i > last || D.dividers[i] != v {
			i--
		}
		D.histo[i]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

//Total returns the number of values counted.
func (D *Data) Total() int { return D.total }

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize divides every bin by the number of values counted.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize turns a normalized histogram back into counts.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

//Dividers returns a copy of the dividers.
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

//Bins returns a copy of the bin values.
func (D *Data) Bins() []float64 {
	return append([]float64(nil), D.histo...)
}

func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//String returns a two-line representation: the bin ranges, and the bin values.
func (D *Data) String() string {
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return strings.Join(d, " ") + "\n" + strings.Join(h, " ")
}

//Bars draws the histogram as one row of '#' per bin, scaled so the largest bin is width wide.
func (D *Data) Bars(width int) string {
	var b strings.Builder
	mx := floats.Max(D.histo)
	for i, v := range D.histo {
		n := 0
		if mx > 0 {
			n = int(v/mx*float64(width) + 0.5)
		}
		fmt.Fprintf(&b, "%7.3f-%7.3f |%-*s| %g\n", D.dividers[i], D.dividers[i+1], width, strings.Repeat("#", n), v)
	}
	return b.String()
}

type plainData struct {
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(plainData{
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a plainData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return errors.Newf("histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}
