// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package distribution

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is a single evaluation of a distribution.
type Point struct {
	X       float64
	Density float64
	Cdf     float64
}

// Grid returns up to n evaluation points covering the bounds of rv. Discrete
// variables are evaluated on integers only.
func Grid(rv RandomVariable, n int) []float64 {
	lo, hi := rv.Bounds()
	return Span(rv, lo, hi, n)
}

// Span returns up to n evaluation points in [lo, hi]. Discrete variables are
// evaluated on integers only.
func Span(rv RandomVariable, lo, hi float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	if !finite(lo) || !finite(hi) {
		return nil
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	if !IsDiscrete(rv) {
		if lo == hi {
			return []float64{lo}
		}
		return floats.Span(make([]float64, n), lo, hi)
	}

	// integer grid with a stride keeping at most n points
	lo, hi = math.Ceil(lo), math.Floor(hi)
	if hi < lo {
		return nil
	}
	stride := math.Max(1, math.Ceil((hi-lo+1)/float64(n)))
	k := int(math.Min((hi-lo)/stride, float64(n-1))) + 1
	xs := make([]float64, 0, k)
	for i := 0; i < k; i++ {
		xs = append(xs, lo+float64(i)*stride)
	}
	return xs
}

// finite reports whether v is neither infinite nor NaN.
func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Evaluate computes density and cdf of rv at every x.
func Evaluate(rv RandomVariable, xs []float64) []Point {
	points := make([]Point, 0, len(xs))
	for _, x := range xs {
		points = append(points, Point{X: x, Density: Density(rv, x), Cdf: rv.Cdf(x)})
	}
	return points
}
