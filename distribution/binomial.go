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

// Binomial counts the successes of n independent trials with success probability p.
type Binomial struct {
	n       int
	p       float64
	backend distuv.Binomial
}

// NewBinomial creates a binomial distribution; n must be non-negative and p in (0, 1).
func NewBinomial(n int, p float64) (Binomial, error) {
	if err := check(n >= 0, "n must be non-negative, got %d", n); err != nil {
		return Binomial{}, err
	}
	if err := checkProbability(p); err != nil {
		return Binomial{}, err
	}
	return Binomial{
		n:       n,
		p:       p,
		backend: distuv.Binomial{N: float64(n), P: p},
	}, nil
}

// MustBinomial is like NewBinomial but panics on invalid parameters.
func MustBinomial(n int, p float64) Binomial {
	return must(NewBinomial(n, p))
}

// checkProbability validates a success probability.
func checkProbability(p float64) error {
	return check(p > 0 && p < 1, "p must be in (0, 1), got %v", p)
}

// N returns the number of trials.
func (b Binomial) N() int { return b.n }

// P returns the success probability of a single trial.
func (b Binomial) P() float64 { return b.p }

// Q returns the failure probability 1-p.
func (b Binomial) Q() float64 { return 1 - b.p }

// Family returns FamilyBinomial.
func (b Binomial) Family() Family { return FamilyBinomial }

// String formats the distribution with its parameters.
func (b Binomial) String() string {
	return fmt.Sprintf("Binomial(n=%d, p=%v)", b.n, b.p)
}

// Mean returns n*p.
func (b Binomial) Mean() float64 { return b.backend.Mean() }

// Var returns n*p*q.
func (b Binomial) Var() float64 { return b.backend.Variance() }

// Std returns the standard deviation.
func (b Binomial) Std() float64 { return math.Sqrt(b.Var()) }

// Pmf returns P(X = x), which is zero for x outside {0, ..., n}.
func (b Binomial) Pmf(x float64) float64 {
	if !onIntegerSupport(x, 0, float64(b.n)) {
		return 0
	}
	return b.backend.Prob(x)
}

// Cdf returns P(X <= x).
func (b Binomial) Cdf(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x >= float64(b.n) {
		return 1
	}
	return b.backend.CDF(x)
}

// Mgf returns (q + p*e^t)^n.
func (b Binomial) Mgf(t float64) float64 {
	return math.Pow(b.Q()+b.p*math.Exp(t), float64(b.n))
}

// Bounds returns the support [0, n].
func (b Binomial) Bounds() (float64, float64) {
	return 0, float64(b.n)
}

// Add returns the distribution of the sum of two independent binomials sharing p.
func (b Binomial) Add(o Binomial) (Binomial, error) {
	if b.p != o.p {
		return Binomial{}, fmt.Errorf("%w: binomials with p=%v and p=%v", ErrIncompatible, b.p, o.p)
	}
	return NewBinomial(b.n+o.n, b.p)
}

// ToBernoulli casts a single-trial binomial to a Bernoulli distribution.
func (b Binomial) ToBernoulli() (Bernoulli, error) {
	if b.n != 1 {
		return Bernoulli{}, fmt.Errorf("%w: n must be 1 to downcast, got %d", ErrInvalidConversion, b.n)
	}
	return NewBernoulli(b.p)
}

// Bernoulli is a single trial with success probability p.
type Bernoulli struct {
	p       float64
	backend distuv.Bernoulli
}

// NewBernoulli creates a Bernoulli distribution; p must be in (0, 1).
func NewBernoulli(p float64) (Bernoulli, error) {
	if err := checkProbability(p); err != nil {
		return Bernoulli{}, err
	}
	return Bernoulli{p: p, backend: distuv.Bernoulli{P: p}}, nil
}

// MustBernoulli is like NewBernoulli but panics on invalid parameters.
func MustBernoulli(p float64) Bernoulli {
	return must(NewBernoulli(p))
}

// P returns the success probability.
func (b Bernoulli) P() float64 { return b.p }

// Q returns the failure probability 1-p.
func (b Bernoulli) Q() float64 { return 1 - b.p }

// N returns the number of trials, which is always one.
func (b Bernoulli) N() int { return 1 }

// Family returns FamilyBernoulli.
func (b Bernoulli) Family() Family { return FamilyBernoulli }

// String formats the distribution with its parameters.
func (b Bernoulli) String() string {
	return fmt.Sprintf("Bernoulli(p=%v)", b.p)
}

// Mean returns the expected value.
func (b Bernoulli) Mean() float64 { return b.backend.Mean() }

// Var returns the variance.
func (b Bernoulli) Var() float64 { return b.backend.Variance() }

// Std returns the standard deviation.
func (b Bernoulli) Std() float64 { return math.Sqrt(b.Var()) }

// Pmf returns P(X = x).
func (b Bernoulli) Pmf(x float64) float64 {
	if !onIntegerSupport(x, 0, 1) {
		return 0
	}
	return b.backend.Prob(x)
}

// Cdf returns P(X <= x).
func (b Bernoulli) Cdf(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x < 1:
		return b.Q()
	}
	return 1
}

// Mgf returns q + p*e^t.
func (b Bernoulli) Mgf(t float64) float64 {
	return b.Q() + b.p*math.Exp(t)
}

// Bounds returns the support [0, 1].
func (b Bernoulli) Bounds() (float64, float64) {
	return 0, 1
}

// Add sums two independent Bernoulli trials sharing p into a Binomial(2, p).
func (b Bernoulli) Add(o Bernoulli) (Binomial, error) {
	return b.ToBinomial().Add(o.ToBinomial())
}

// ToBinomial casts the trial to a Binomial(1, p).
func (b Bernoulli) ToBinomial() Binomial {
	return Binomial{n: 1, p: b.p, backend: distuv.Binomial{N: 1, P: b.p}}
}

// onIntegerSupport reports whether x is an integer within [lo, hi].
func onIntegerSupport(x, lo, hi float64) bool {
	return x >= lo && x <= hi && x == math.Trunc(x)
}
