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

// Normal is the Gaussian distribution with mean mu and standard deviation sigma.
type Normal struct {
	mu      float64
	sigma   float64
	backend distuv.Normal
}

// NewNormal creates a normal distribution; mu must be finite and sigma positive.
func NewNormal(mu, sigma float64) (Normal, error) {
	if err := checkFinite("mu", mu); err != nil {
		return Normal{}, err
	}
	if err := checkPositive("sigma", sigma); err != nil {
		return Normal{}, err
	}
	return Normal{mu: mu, sigma: sigma, backend: distuv.Normal{Mu: mu, Sigma: sigma}}, nil
}

// MustNormal is like NewNormal but panics on invalid parameters.
func MustNormal(mu, sigma float64) Normal {
	return must(NewNormal(mu, sigma))
}

// checkFinite rejects NaN and infinite parameters.
func checkFinite(name string, v float64) error {
	return check(!math.IsNaN(v) && !math.IsInf(v, 0), "%s must be finite, got %v", name, v)
}

// Mu returns the location.
func (n Normal) Mu() float64 { return n.mu }

// Sigma returns the standard deviation parameter.
func (n Normal) Sigma() float64 { return n.sigma }

// Family returns FamilyNormal.
func (n Normal) Family() Family { return FamilyNormal }

// String formats the distribution with its parameters.
func (n Normal) String() string {
	return fmt.Sprintf("Normal(mu=%v, sigma=%v)", n.mu, n.sigma)
}

// Mean returns the expected value.
func (n Normal) Mean() float64 { return n.backend.Mean() }

// Var returns the variance.
func (n Normal) Var() float64 { return n.backend.Variance() }

// Std returns sigma.
func (n Normal) Std() float64 { return n.sigma }

// Pdf returns the density at x.
func (n Normal) Pdf(x float64) float64 { return n.backend.Prob(x) }

// Cdf returns P(X <= x).
func (n Normal) Cdf(x float64) float64 { return n.backend.CDF(x) }

// Quantile returns the inverse of Cdf.
func (n Normal) Quantile(p float64) float64 { return n.backend.Quantile(p) }

// Mgf returns the moment-generating function at t.
func (n Normal) Mgf(t float64) float64 {
	return math.Exp(n.mu*t + n.sigma*n.sigma*t*t/2)
}

// Bounds covers four standard deviations around the mean.
func (n Normal) Bounds() (float64, float64) {
	return n.mu - 4*n.sigma, n.mu + 4*n.sigma
}

// Add returns the sum of two independent normal variables.
func (n Normal) Add(o Normal) (Normal, error) {
	return NewNormal(n.mu+o.mu, math.Hypot(n.sigma, o.sigma))
}

// Shift translates the variable by a constant.
func (n Normal) Shift(c float64) (Normal, error) {
	return NewNormal(n.mu+c, n.sigma)
}

// Mul rescales the variable by a non-zero factor c.
func (n Normal) Mul(c float64) (Normal, error) {
	if err := check(c != 0, "scale factor must be non-zero"); err != nil {
		return Normal{}, err
	}
	return NewNormal(c*n.mu, math.Abs(c)*n.sigma)
}

// Div rescales the variable by 1/c.
func (n Normal) Div(c float64) (Normal, error) {
	if c == 0 {
		return Normal{}, ErrDivisionByZero
	}
	return n.Mul(1 / c)
}
