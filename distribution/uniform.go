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

// Uniform is the continuous uniform distribution on [a, b].
type Uniform struct {
	a, b    float64
	backend distuv.Uniform
}

// NewUniform creates a uniform distribution; a and b must be finite with a < b.
func NewUniform(a, b float64) (Uniform, error) {
	if err := checkFinite("a", a); err != nil {
		return Uniform{}, err
	}
	if err := checkFinite("b", b); err != nil {
		return Uniform{}, err
	}
	if err := check(a < b, "a must be less than b, got a=%v b=%v", a, b); err != nil {
		return Uniform{}, err
	}
	return Uniform{a: a, b: b, backend: distuv.Uniform{Min: a, Max: b}}, nil
}

// MustUniform is like NewUniform but panics on invalid parameters.
func MustUniform(a, b float64) Uniform {
	return must(NewUniform(a, b))
}

// A returns the lower end of the support.
func (u Uniform) A() float64 { return u.a }

// B returns the upper end of the support.
func (u Uniform) B() float64 { return u.b }

// Family returns FamilyUniform.
func (u Uniform) Family() Family { return FamilyUniform }

// String formats the distribution with its parameters.
func (u Uniform) String() string {
	return fmt.Sprintf("Uniform(a=%v, b=%v)", u.a, u.b)
}

// Mean returns the expected value.
func (u Uniform) Mean() float64 { return u.backend.Mean() }

// Var returns the variance.
func (u Uniform) Var() float64 { return u.backend.Variance() }

// Std returns the standard deviation.
func (u Uniform) Std() float64 { return math.Sqrt(u.Var()) }

// Pdf returns 1/(b-a) inside the support and 0 outside.
func (u Uniform) Pdf(x float64) float64 {
	if x < u.a || x > u.b {
		return 0
	}
	return u.backend.Prob(x)
}

// Cdf returns P(X <= x).
func (u Uniform) Cdf(x float64) float64 {
	switch {
	case x <= u.a:
		return 0
	case x >= u.b:
		return 1
	}
	return u.backend.CDF(x)
}

// Quantile returns the inverse of Cdf.
func (u Uniform) Quantile(p float64) float64 { return u.backend.Quantile(p) }

// Mgf returns (e^(tb) - e^(ta)) / (t(b - a)), and 1 at t = 0.
func (u Uniform) Mgf(t float64) float64 {
	if t == 0 {
		return 1
	}
	return (math.Exp(t*u.b) - math.Exp(t*u.a)) / (t * (u.b - u.a))
}

// Bounds returns the support [a, b].
func (u Uniform) Bounds() (float64, float64) {
	return u.a, u.b
}

// Shift translates the support by a constant.
func (u Uniform) Shift(c float64) (Uniform, error) {
	return NewUniform(u.a+c, u.b+c)
}

// Mul rescales the variable by a non-zero factor; negative factors mirror the support.
func (u Uniform) Mul(c float64) (Uniform, error) {
	if err := check(c != 0, "scale factor must be non-zero"); err != nil {
		return Uniform{}, err
	}
	if c < 0 {
		return NewUniform(c*u.b, c*u.a)
	}
	return NewUniform(c*u.a, c*u.b)
}

// Div rescales the variable by 1/c.
func (u Uniform) Div(c float64) (Uniform, error) {
	if c == 0 {
		return Uniform{}, ErrDivisionByZero
	}
	return u.Mul(1 / c)
}
