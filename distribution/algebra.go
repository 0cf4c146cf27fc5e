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
)

// Add returns the distribution of the sum of two independent variables.
// Special cases are promoted to their general family where needed, so a
// Bernoulli may be added to a Binomial and an Exponential to a Gamma.
func Add(x, y RandomVariable) (RandomVariable, error) {
	switch a := x.(type) {
	case Binomial, Bernoulli:
		bx, okx := asBinomial(x)
		by, oky := asBinomial(y)
		if okx && oky {
			return result(bx.Add(by))
		}
	case Gamma, Exponential, ChiSq:
		if b, ok := y.(ChiSq); ok {
			if a, ok := x.(ChiSq); ok {
				return result(a.Add(b))
			}
		}
		if b, ok := y.(Exponential); ok {
			if a, ok := x.(Exponential); ok {
				return result(a.Add(b))
			}
		}
		gx, okx := asGamma(x)
		gy, oky := asGamma(y)
		if okx && oky {
			return result(gx.Add(gy))
		}
	case Poisson:
		if b, ok := y.(Poisson); ok {
			return result(a.Add(b))
		}
	case Normal:
		if b, ok := y.(Normal); ok {
			return result(a.Add(b))
		}
	}
	return nil, fmt.Errorf("%w: cannot add %v and %v", ErrIncompatible, x, y)
}

// Mul returns the distribution of c*x.
func Mul(x RandomVariable, c float64) (RandomVariable, error) {
	switch a := x.(type) {
	case Gamma:
		return result(a.Mul(c))
	case Exponential:
		return result(a.Mul(c))
	case ChiSq:
		return result(a.Mul(c))
	case Normal:
		return result(a.Mul(c))
	case Uniform:
		return result(a.Mul(c))
	}
	return nil, fmt.Errorf("%w: scalar multiplication is not supported by %v", ErrIncompatible, x)
}

// Div returns the distribution of x/c.
func Div(x RandomVariable, c float64) (RandomVariable, error) {
	if c == 0 {
		return nil, ErrDivisionByZero
	}
	return Mul(x, 1/c)
}

// Shift returns the distribution of x+c for families closed under translation.
func Shift(x RandomVariable, c float64) (RandomVariable, error) {
	switch a := x.(type) {
	case Normal:
		return result(a.Shift(c))
	case Uniform:
		return result(a.Shift(c))
	}
	return nil, fmt.Errorf("%w: adding a constant is not supported by %v", ErrIncompatible, x)
}

// Convert casts a variable to another family that it is a special case or a generalisation of.
func Convert(x RandomVariable, to Family) (RandomVariable, error) {
	if x.Family() == to {
		return x, nil
	}
	switch to {
	case FamilyBinomial:
		if b, ok := x.(Bernoulli); ok {
			return b.ToBinomial(), nil
		}
	case FamilyBernoulli:
		if b, ok := x.(Binomial); ok {
			return result(b.ToBernoulli())
		}
	case FamilyGamma:
		if g, ok := asGamma(x); ok {
			return g, nil
		}
	case FamilyExponential:
		if g, ok := asGamma(x); ok {
			return result(g.ToExponential())
		}
	case FamilyChiSq:
		if g, ok := asGamma(x); ok {
			return result(g.ToChiSq())
		}
	}
	return nil, fmt.Errorf("%w: %v cannot be cast to %v", ErrInvalidConversion, x, to)
}

// result converts a typed constructor result, keeping the interface nil on errors.
func result(v RandomVariable, err error) (RandomVariable, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// asBinomial views Bernoulli and Binomial variables as binomials.
func asBinomial(x RandomVariable) (Binomial, bool) {
	switch b := x.(type) {
	case Binomial:
		return b, true
	case Bernoulli:
		return b.ToBinomial(), true
	}
	return Binomial{}, false
}

// asGamma views Gamma, Exponential and ChiSq variables as gammas.
func asGamma(x RandomVariable) (Gamma, bool) {
	switch g := x.(type) {
	case Gamma:
		return g, true
	case Exponential:
		return g.ToGamma(), true
	case ChiSq:
		return g.ToGamma(), true
	}
	return Gamma{}, false
}
