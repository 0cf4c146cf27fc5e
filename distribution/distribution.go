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

// Package distribution provides immutable random-variable values whose
// probabilities are evaluated by gonum's distuv package. Values of the same
// family can be combined with closed-form algebra and cast between special
// cases of a family.
package distribution

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidParameter is returned when a constructor receives parameters outside their domain.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrIncompatible is returned for arithmetic between distributions that have no closed form.
	ErrIncompatible = errors.New("incompatible operands")
	// ErrDivisionByZero is returned when a distribution is divided by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidConversion is returned when a cast precondition does not hold.
	ErrInvalidConversion = errors.New("invalid conversion")
)

// Family identifies a distribution family.
type Family int

const (
	FamilyBinomial Family = iota
	FamilyBernoulli
	FamilyGamma
	FamilyExponential
	FamilyChiSq
	FamilyPoisson
	FamilyNormal
	FamilyUniform
	numFamilies
)

var familyNames = [numFamilies]string{
	FamilyBinomial:    "binomial",
	FamilyBernoulli:   "bernoulli",
	FamilyGamma:       "gamma",
	FamilyExponential: "exponential",
	FamilyChiSq:       "chisq",
	FamilyPoisson:     "poisson",
	FamilyNormal:      "normal",
	FamilyUniform:     "uniform",
}

func (f Family) String() string {
	if f < 0 || f >= numFamilies {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// Families returns all known families in declaration order.
func Families() []Family {
	res := make([]Family, 0, numFamilies)
	for f := Family(0); f < numFamilies; f++ {
		res = append(res, f)
	}
	return res
}

// ParseFamily looks up a family by its (case-insensitive) name.
func ParseFamily(name string) (Family, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "exp":
		return FamilyExponential, nil
	case "chi2", "chisquared":
		return FamilyChiSq, nil
	case "gaussian":
		return FamilyNormal, nil
	}
	for f, n := range familyNames {
		if n == name {
			return Family(f), nil
		}
	}
	return 0, fmt.Errorf("unknown distribution family %q", name)
}

// RandomVariable is the common surface of every distribution in this package.
type RandomVariable interface {
	fmt.Stringer

	// Family returns the distribution family of the variable.
	Family() Family
	// Mean returns the expected value.
	Mean() float64
	// Var returns the variance.
	Var() float64
	// Std returns the standard deviation.
	Std() float64
	// Cdf returns P(X <= x).
	Cdf(x float64) float64
	// Mgf returns E[exp(tX)], or NaN where it does not exist.
	Mgf(t float64) float64
	// Bounds returns a range holding practically all probability mass.
	Bounds() (float64, float64)
}

// Discrete random variables have a probability mass function.
type Discrete interface {
	RandomVariable
	// Pmf returns P(X = x); it is zero off the integer support.
	Pmf(x float64) float64
}

// Continuous random variables have a probability density function.
type Continuous interface {
	RandomVariable
	// Pdf returns the density at x.
	Pdf(x float64) float64
	// Quantile returns the inverse of the Cdf for p in [0, 1].
	Quantile(p float64) float64
}

// Density evaluates the pmf of a discrete or the pdf of a continuous variable.
func Density(rv RandomVariable, x float64) float64 {
	switch d := rv.(type) {
	case Discrete:
		return d.Pmf(x)
	case Continuous:
		return d.Pdf(x)
	}
	return 0
}

// IsDiscrete reports whether the variable has a probability mass function.
func IsDiscrete(rv RandomVariable) bool {
	_, ok := rv.(Discrete)
	return ok
}

// check returns an ErrInvalidParameter error with the given message if cond does not hold.
func check(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// must panics on construction errors.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
