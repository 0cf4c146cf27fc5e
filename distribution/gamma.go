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

// boundsMass is the probability mass covered by Bounds of unbounded continuous families.
const boundsMass = 0.999

// Gamma is parametrised by its shape alpha and its scale beta.
type Gamma struct {
	alpha   float64
	beta    float64
	backend distuv.Gamma
}

// NewGamma creates a gamma distribution; alpha and beta must be positive.
func NewGamma(alpha, beta float64) (Gamma, error) {
	if err := checkPositive("alpha", alpha); err != nil {
		return Gamma{}, err
	}
	if err := checkPositive("beta", beta); err != nil {
		return Gamma{}, err
	}
	return Gamma{
		alpha: alpha,
		beta:  beta,
		// distuv parametrises the gamma distribution by rate
		backend: distuv.Gamma{Alpha: alpha, Beta: 1 / beta},
	}, nil
}

// MustGamma is like NewGamma but panics on invalid parameters.
func MustGamma(alpha, beta float64) Gamma {
	return must(NewGamma(alpha, beta))
}

// checkPositive validates a strictly positive, finite parameter.
func checkPositive(name string, v float64) error {
	return check(v > 0 && !math.IsInf(v, 1), "%s must be positive and finite, got %v", name, v)
}

// Alpha returns the shape parameter.
func (g Gamma) Alpha() float64 { return g.alpha }

// Beta returns the scale parameter.
func (g Gamma) Beta() float64 { return g.beta }

// Family returns FamilyGamma.
func (g Gamma) Family() Family { return FamilyGamma }

// String formats the distribution with its parameters.
func (g Gamma) String() string {
	return fmt.Sprintf("Gamma(alpha=%v, beta=%v)", g.alpha, g.beta)
}

// Mean returns alpha*beta.
func (g Gamma) Mean() float64 { return g.backend.Mean() }

// Var returns the variance.
func (g Gamma) Var() float64 { return g.backend.Variance() }

// Std returns the standard deviation.
func (g Gamma) Std() float64 { return math.Sqrt(g.Var()) }

// Pdf returns the density at x.
func (g Gamma) Pdf(x float64) float64 {
	return gammaPdf(g.alpha, g.beta, x, g.backend.Prob)
}

// Cdf returns P(X <= x).
func (g Gamma) Cdf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return g.backend.CDF(x)
}

// Quantile returns the inverse of Cdf.
func (g Gamma) Quantile(p float64) float64 {
	return g.backend.Quantile(p)
}

// Mgf returns (1 - beta*t)^-alpha, or NaN for t >= 1/beta.
func (g Gamma) Mgf(t float64) float64 {
	return gammaMgf(g.alpha, g.beta, t)
}

// Bounds returns a range holding practically all probability mass.
func (g Gamma) Bounds() (float64, float64) {
	return 0, g.Quantile(boundsMass)
}

// Add returns the sum of two independent gamma variables sharing the same scale.
func (g Gamma) Add(o Gamma) (Gamma, error) {
	if g.beta != o.beta {
		return Gamma{}, fmt.Errorf("%w: gammas with beta=%v and beta=%v", ErrIncompatible, g.beta, o.beta)
	}
	return NewGamma(g.alpha+o.alpha, g.beta)
}

// Mul rescales the variable by a positive factor c.
func (g Gamma) Mul(c float64) (Gamma, error) {
	if err := checkPositive("scale factor", c); err != nil {
		return Gamma{}, err
	}
	return NewGamma(g.alpha, c*g.beta)
}

// Div rescales the variable by 1/c.
func (g Gamma) Div(c float64) (Gamma, error) {
	if c == 0 {
		return Gamma{}, ErrDivisionByZero
	}
	return g.Mul(1 / c)
}

// ToExponential casts a gamma variable with alpha = 1 to an exponential one.
func (g Gamma) ToExponential() (Exponential, error) {
	if g.alpha != 1 {
		return Exponential{}, fmt.Errorf("%w: alpha must be 1 to downcast, got %v", ErrInvalidConversion, g.alpha)
	}
	return NewExponential(1 / g.beta)
}

// ToChiSq casts a gamma variable with beta = 2 to a chi-squared one.
func (g Gamma) ToChiSq() (ChiSq, error) {
	if g.beta != 2 {
		return ChiSq{}, fmt.Errorf("%w: beta must be 2 to downcast, got %v", ErrInvalidConversion, g.beta)
	}
	return NewChiSq(2 * g.alpha)
}

// gammaPdf evaluates a gamma density given by shape alpha and scale beta.
// The backends disagree at x = 0, so the limit of the density is returned
// there: 0 for alpha > 1, 1/beta for alpha = 1 and +Inf for alpha < 1.
func gammaPdf(alpha, beta, x float64, prob func(float64) float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 0:
		return prob(x)
	case alpha > 1:
		return 0
	case alpha == 1:
		return 1 / beta
	}
	return math.Inf(1)
}

// gammaMgf is (1 - beta*t)^-alpha for t < 1/beta.
func gammaMgf(alpha, beta, t float64) float64 {
	if t >= 1/beta {
		return math.NaN()
	}
	return math.Pow(1-beta*t, -alpha)
}

// Exponential is parametrised by its rate; it is Gamma(1, 1/rate).
type Exponential struct {
	rate    float64
	backend distuv.Exponential
}

// NewExponential creates an exponential distribution; rate must be positive.
func NewExponential(rate float64) (Exponential, error) {
	if err := checkPositive("rate", rate); err != nil {
		return Exponential{}, err
	}
	return Exponential{rate: rate, backend: distuv.Exponential{Rate: rate}}, nil
}

// MustExponential is like NewExponential but panics on invalid parameters.
func MustExponential(rate float64) Exponential {
	return must(NewExponential(rate))
}

// Rate returns the rate parameter.
func (e Exponential) Rate() float64 { return e.rate }

// Scale returns 1/rate.
func (e Exponential) Scale() float64 { return 1 / e.rate }

// Family returns FamilyExponential.
func (e Exponential) Family() Family { return FamilyExponential }

// String formats the distribution with its parameters.
func (e Exponential) String() string {
	return fmt.Sprintf("Exponential(rate=%v)", e.rate)
}

// Mean returns the expected value.
func (e Exponential) Mean() float64 { return e.backend.Mean() }

// Var returns the variance.
func (e Exponential) Var() float64 { return e.backend.Variance() }

// Std returns the standard deviation.
func (e Exponential) Std() float64 { return math.Sqrt(e.Var()) }

// Pdf returns the density at x.
func (e Exponential) Pdf(x float64) float64 {
	return gammaPdf(1, e.Scale(), x, e.backend.Prob)
}

// Cdf returns P(X <= x).
func (e Exponential) Cdf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return e.backend.CDF(x)
}

// Quantile returns the inverse of Cdf.
func (e Exponential) Quantile(p float64) float64 {
	return e.backend.Quantile(p)
}

// Mgf returns rate/(rate - t), or NaN for t >= rate.
func (e Exponential) Mgf(t float64) float64 {
	return gammaMgf(1, e.Scale(), t)
}

// Bounds returns a range holding practically all probability mass.
func (e Exponential) Bounds() (float64, float64) {
	return 0, e.Quantile(boundsMass)
}

// Add sums two independent exponentials with equal rate into Gamma(2, 1/rate).
func (e Exponential) Add(o Exponential) (Gamma, error) {
	return e.ToGamma().Add(o.ToGamma())
}

// Mul rescales the variable by a positive factor c.
func (e Exponential) Mul(c float64) (Exponential, error) {
	if err := checkPositive("scale factor", c); err != nil {
		return Exponential{}, err
	}
	return NewExponential(e.rate / c)
}

// Div rescales the variable by 1/c.
func (e Exponential) Div(c float64) (Exponential, error) {
	if c == 0 {
		return Exponential{}, ErrDivisionByZero
	}
	return e.Mul(1 / c)
}

// ToGamma casts the variable to Gamma(1, 1/rate).
func (e Exponential) ToGamma() Gamma {
	return MustGamma(1, e.Scale())
}

// ChiSq is the chi-squared distribution with df degrees of freedom; it is Gamma(df/2, 2).
type ChiSq struct {
	df      float64
	backend distuv.ChiSquared
}

// NewChiSq creates a chi-squared distribution; df must be positive.
func NewChiSq(df float64) (ChiSq, error) {
	if err := checkPositive("df", df); err != nil {
		return ChiSq{}, err
	}
	return ChiSq{df: df, backend: distuv.ChiSquared{K: df}}, nil
}

// MustChiSq is like NewChiSq but panics on invalid parameters.
func MustChiSq(df float64) ChiSq {
	return must(NewChiSq(df))
}

// DF returns the degrees of freedom.
func (c ChiSq) DF() float64 { return c.df }

// Family returns FamilyChiSq.
func (c ChiSq) Family() Family { return FamilyChiSq }

// String formats the distribution with its parameters.
func (c ChiSq) String() string {
	return fmt.Sprintf("ChiSq(df=%v)", c.df)
}

// Mean returns the expected value.
func (c ChiSq) Mean() float64 { return c.backend.Mean() }

// Var returns the variance.
func (c ChiSq) Var() float64 { return c.backend.Variance() }

// Std returns the standard deviation.
func (c ChiSq) Std() float64 { return math.Sqrt(c.Var()) }

// Pdf returns the density at x.
func (c ChiSq) Pdf(x float64) float64 {
	return gammaPdf(c.df/2, 2, x, c.backend.Prob)
}

// Cdf returns P(X <= x).
func (c ChiSq) Cdf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return c.backend.CDF(x)
}

// Quantile returns the inverse of Cdf.
func (c ChiSq) Quantile(p float64) float64 {
	return c.backend.Quantile(p)
}

// Mgf returns (1 - 2t)^(-df/2), or NaN for t >= 1/2.
func (c ChiSq) Mgf(t float64) float64 {
	return gammaMgf(c.df/2, 2, t)
}

// Bounds returns a range holding practically all probability mass.
func (c ChiSq) Bounds() (float64, float64) {
	return 0, c.Quantile(boundsMass)
}

// Add sums two independent chi-squared variables by adding their degrees of freedom.
func (c ChiSq) Add(o ChiSq) (ChiSq, error) {
	return NewChiSq(c.df + o.df)
}

// Mul rescales the variable by a positive factor, leaving the chi-squared family.
func (c ChiSq) Mul(k float64) (Gamma, error) {
	return c.ToGamma().Mul(k)
}

// Div rescales the variable by 1/k.
func (c ChiSq) Div(k float64) (Gamma, error) {
	return c.ToGamma().Div(k)
}

// ToGamma casts the variable to Gamma(df/2, 2).
func (c ChiSq) ToGamma() Gamma {
	return MustGamma(c.df/2, 2)
}
