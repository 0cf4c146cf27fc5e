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
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Poisson counts events occurring at an average rate lambda.
type Poisson struct {
	lambda  float64
	backend distuv.Poisson
}

// NewPoisson creates a Poisson distribution; lambda must be positive.
func NewPoisson(lambda float64) (Poisson, error) {
	if err := checkPositive("lambda", lambda); err != nil {
		return Poisson{}, err
	}
	return Poisson{lambda: lambda, backend: distuv.Poisson{Lambda: lambda}}, nil
}

// MustPoisson is like NewPoisson but panics on invalid parameters.
func MustPoisson(lambda float64) Poisson {
	return must(NewPoisson(lambda))
}

// Lambda returns the rate of events.
func (p Poisson) Lambda() float64 { return p.lambda }

// Family returns FamilyPoisson.
func (p Poisson) Family() Family { return FamilyPoisson }

// String formats the distribution with its parameters.
func (p Poisson) String() string {
	return fmt.Sprintf("Poisson(lambda=%v)", p.lambda)
}

// Mean returns the expected value.
func (p Poisson) Mean() float64 { return p.backend.Mean() }

// Var returns the variance.
func (p Poisson) Var() float64 { return p.backend.Variance() }

// Std returns the standard deviation.
func (p Poisson) Std() float64 { return math.Sqrt(p.Var()) }

// Pmf returns P(X = x).
func (p Poisson) Pmf(x float64) float64 {
	if !onIntegerSupport(x, 0, math.Inf(1)) {
		return 0
	}
	return p.backend.Prob(x)
}

// Cdf returns P(X <= x).
func (p Poisson) Cdf(x float64) float64 {
	if x < 0 {
		return 0
	}
	return p.backend.CDF(x)
}

// Mgf returns exp(lambda*(e^t - 1)).
func (p Poisson) Mgf(t float64) float64 {
	return math.Exp(p.lambda * (math.Exp(t) - 1))
}

// Bounds covers the mean plus six standard deviations.
func (p Poisson) Bounds() (float64, float64) {
	return 0, math.Ceil(p.lambda + 6*math.Sqrt(p.lambda))
}

// Add returns the sum of two independent Poisson variables.
func (p Poisson) Add(o Poisson) (Poisson, error) {
	return NewPoisson(p.lambda + o.lambda)
}
