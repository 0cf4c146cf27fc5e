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
	"errors"
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

var binomialCases = []struct {
	n int
	p float64
}{
	{0, 0.5},
	{1, 0.3},
	{3, 0.5},
	{7, 0.01},
	{9, 0.99},
	{40, 0.25},
}

func TestBinomial_Moments(t *testing.T) {
	for _, tc := range binomialCases {
		b := MustBinomial(tc.n, tc.p)
		n := float64(tc.n)
		checkMoments(t, b, n*tc.p, n*tc.p*(1-tc.p))
		if b.Q() != 1-tc.p {
			t.Errorf("unexpected q; got %v, want %v", b.Q(), 1-tc.p)
		}
	}
}

func TestBinomial_PmfSumsToOneOverSupport(t *testing.T) {
	for _, tc := range binomialCases {
		t.Run(fmt.Sprintf("n=%d,p=%v", tc.n, tc.p), func(t *testing.T) {
			b := MustBinomial(tc.n, tc.p)
			probs := []float64{}
			for x := 0; x <= tc.n; x++ {
				probs = append(probs, b.Pmf(float64(x)))
			}
			checkClose(t, "pmf sum", floats.Sum(probs), 1, eps)
		})
	}
}

func TestBinomial_PmfIsZeroOutsideSupport(t *testing.T) {
	b := MustBinomial(5, 0.4)
	for _, x := range []float64{-1, 6, 2.5, math.Inf(1), math.NaN()} {
		if got := b.Pmf(x); got != 0 {
			t.Errorf("expected zero mass at %v, got %v", x, got)
		}
	}
}

func TestBinomial_Cdf(t *testing.T) {
	for _, tc := range binomialCases {
		b := MustBinomial(tc.n, tc.p)
		if got := b.Cdf(float64(tc.n)); got != 1 {
			t.Errorf("%v: cdf(n) must be 1, got %v", b, got)
		}
		if got := b.Cdf(-1); got != 0 {
			t.Errorf("%v: cdf(-1) must be 0, got %v", b, got)
		}
		checkClose(t, b.String()+" cdf(0)", b.Cdf(0), math.Pow(b.Q(), float64(tc.n)), eps)
	}
}

func TestBinomial_CdfAccumulatesPmf(t *testing.T) {
	b := MustBinomial(12, 0.35)
	total := 0.0
	for x := 0; x <= 12; x++ {
		total += b.Pmf(float64(x))
		checkClose(t, fmt.Sprintf("cdf(%d)", x), b.Cdf(float64(x)), total, 1e-9)
		checkClose(t, fmt.Sprintf("cdf(%d.5)", x), b.Cdf(float64(x)+0.5), total, 1e-9)
	}
}

func TestBinomial_Mgf(t *testing.T) {
	b := MustBinomial(6, 0.2)
	checkClose(t, "mgf(0)", b.Mgf(0), 1, eps)
	checkClose(t, "mgf(0.7)", b.Mgf(0.7), math.Pow(0.8+0.2*math.Exp(0.7), 6), eps)

	// the derivative at zero is the mean
	h := 1e-6
	checkClose(t, "mgf'(0)", (b.Mgf(h)-b.Mgf(-h))/(2*h), b.Mean(), 1e-6)
}

func TestBinomial_RejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		n int
		p float64
	}{
		{-1, 0.1},
		{3, -0.1},
		{3, 0},
		{3, 1},
		{3, 1.1},
		{3, math.NaN()},
	}
	for _, tc := range tests {
		if _, err := NewBinomial(tc.n, tc.p); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Binomial(%d, %v) should be rejected, got %v", tc.n, tc.p, err)
		}
	}
}

func TestBinomial_AddWithEqualProbability(t *testing.T) {
	x := MustBinomial(4, 0.3)
	y := MustBinomial(7, 0.3)
	z, err := x.Add(y)
	if err != nil {
		t.Fatalf("failed to add binomials; %v", err)
	}
	if z.N() != 11 || z.P() != 0.3 {
		t.Errorf("unexpected sum; got %v, want Binomial(n=11, p=0.3)", z)
	}
}

func TestBinomial_AddWithDifferentProbabilityFails(t *testing.T) {
	_, err := MustBinomial(4, 0.3).Add(MustBinomial(4, 0.4))
	if !errors.Is(err, ErrIncompatible) {
		t.Errorf("expected incompatible operands, got %v", err)
	}
}

func TestBinomial_ToBernoulli(t *testing.T) {
	b, err := MustBinomial(1, 0.5).ToBernoulli()
	if err != nil {
		t.Fatalf("failed to downcast; %v", err)
	}
	if b.P() != 0.5 {
		t.Errorf("unexpected p; got %v", b.P())
	}
	if _, err := MustBinomial(3, 0.5).ToBernoulli(); !errors.Is(err, ErrInvalidConversion) {
		t.Errorf("expected invalid conversion for n=3, got %v", err)
	}
}

func TestBinomial_String(t *testing.T) {
	if got, want := MustBinomial(10, 0.25).String(), "Binomial(n=10, p=0.25)"; got != want {
		t.Errorf("unexpected string; got %v, want %v", got, want)
	}
}

func TestBernoulli_Moments(t *testing.T) {
	for _, p := range []float64{0.01, 0.3, 0.5, 0.99} {
		b := MustBernoulli(p)
		checkMoments(t, b, p, p*(1-p))
	}
}

func TestBernoulli_PmfAndCdf(t *testing.T) {
	b := MustBernoulli(0.3)
	checkClose(t, "pmf sum", b.Pmf(0)+b.Pmf(1), 1, eps)
	for _, x := range []float64{-1, 2, 0.5} {
		if got := b.Pmf(x); got != 0 {
			t.Errorf("expected zero mass at %v, got %v", x, got)
		}
	}
	if got := b.Cdf(-1); got != 0 {
		t.Errorf("cdf(-1) must be 0, got %v", got)
	}
	if got := b.Cdf(0); got != b.Q() {
		t.Errorf("cdf(0) must be q, got %v", got)
	}
	if got := b.Cdf(1); got != 1 {
		t.Errorf("cdf(1) must be 1, got %v", got)
	}
}

func TestBernoulli_EqualsSingleTrialBinomial(t *testing.T) {
	ber := MustBernoulli(0.42)
	bin := ber.ToBinomial()
	if bin.N() != 1 || bin.P() != 0.42 {
		t.Fatalf("unexpected cast; got %v", bin)
	}
	for _, x := range []float64{-1, 0, 0.5, 1, 2} {
		checkClose(t, fmt.Sprintf("pmf(%v)", x), bin.Pmf(x), ber.Pmf(x), eps)
		checkClose(t, fmt.Sprintf("cdf(%v)", x), bin.Cdf(x), ber.Cdf(x), eps)
	}
	for _, s := range []float64{-1, 0, 0.5, 2} {
		checkClose(t, fmt.Sprintf("mgf(%v)", s), bin.Mgf(s), ber.Mgf(s), eps)
	}
	checkMoments(t, bin, ber.Mean(), ber.Var())
}

func TestBernoulli_SumOfTrialsIsBinomial(t *testing.T) {
	p := 0.37
	var sum RandomVariable = MustBernoulli(p)
	for i := 1; i < 6; i++ {
		next, err := Add(sum, MustBernoulli(p))
		if err != nil {
			t.Fatalf("failed to add trial %d; %v", i, err)
		}
		sum = next
	}
	b, ok := sum.(Binomial)
	if !ok {
		t.Fatalf("expected a binomial, got %T", sum)
	}
	if b.N() != 6 || b.P() != p {
		t.Errorf("unexpected sum; got %v", b)
	}
}

func TestBernoulli_AddDirectly(t *testing.T) {
	b, err := MustBernoulli(0.5).Add(MustBernoulli(0.5))
	if err != nil {
		t.Fatalf("failed to add; %v", err)
	}
	if b.N() != 2 {
		t.Errorf("unexpected number of trials; got %v", b.N())
	}
	if _, err := MustBernoulli(0.5).Add(MustBernoulli(0.2)); !errors.Is(err, ErrIncompatible) {
		t.Errorf("expected incompatible operands, got %v", err)
	}
}

func TestBernoulli_RejectsInvalidParameters(t *testing.T) {
	for _, p := range []float64{-0.1, 0, 1, 1.1} {
		if _, err := NewBernoulli(p); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Bernoulli(%v) should be rejected, got %v", p, err)
		}
	}
}
