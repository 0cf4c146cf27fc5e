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
	"testing"
)

func TestAdd_ClosedForms(t *testing.T) {
	tests := []struct {
		x, y RandomVariable
		want string
	}{
		{MustBinomial(3, 0.5), MustBinomial(4, 0.5), "Binomial(n=7, p=0.5)"},
		{MustBinomial(3, 0.5), MustBernoulli(0.5), "Binomial(n=4, p=0.5)"},
		{MustBernoulli(0.5), MustBinomial(3, 0.5), "Binomial(n=4, p=0.5)"},
		{MustBernoulli(0.2), MustBernoulli(0.2), "Binomial(n=2, p=0.2)"},
		{MustGamma(1, 2), MustGamma(3, 2), "Gamma(alpha=4, beta=2)"},
		{MustExponential(0.5), MustExponential(0.5), "Gamma(alpha=2, beta=2)"},
		{MustExponential(0.5), MustGamma(3, 2), "Gamma(alpha=4, beta=2)"},
		{MustChiSq(2), MustChiSq(3), "ChiSq(df=5)"},
		{MustChiSq(2), MustGamma(1, 2), "Gamma(alpha=2, beta=2)"},
		{MustChiSq(2), MustExponential(0.5), "Gamma(alpha=2, beta=2)"},
		{MustPoisson(1), MustPoisson(2), "Poisson(lambda=3)"},
		{MustNormal(0, 3), MustNormal(1, 4), "Normal(mu=1, sigma=5)"},
	}
	for _, tc := range tests {
		got, err := Add(tc.x, tc.y)
		if err != nil {
			t.Fatalf("failed to add %v and %v; %v", tc.x, tc.y, err)
		}
		if got.String() != tc.want {
			t.Errorf("unexpected sum of %v and %v; got %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestAdd_IncompatibleFamilies(t *testing.T) {
	tests := [][2]RandomVariable{
		{MustBinomial(3, 0.5), MustPoisson(1)},
		{MustGamma(1, 2), MustNormal(0, 1)},
		{MustUniform(0, 1), MustUniform(0, 1)},
		{MustBinomial(3, 0.5), MustBinomial(3, 0.4)},
		{MustExponential(1), MustExponential(2)},
		{MustNormal(0, 1), MustGamma(1, 1)},
	}
	for _, tc := range tests {
		got, err := Add(tc[0], tc[1])
		if !errors.Is(err, ErrIncompatible) {
			t.Errorf("expected %v + %v to be rejected, got %v", tc[0], tc[1], err)
		}
		if got != nil {
			t.Errorf("expected no result on failure, got %v", got)
		}
	}
}

func TestMul_DispatchesToFamily(t *testing.T) {
	tests := []struct {
		x    RandomVariable
		c    float64
		want string
	}{
		{MustGamma(2, 3), 2, "Gamma(alpha=2, beta=6)"},
		{MustExponential(2), 4, "Exponential(rate=0.5)"},
		{MustChiSq(4), 0.5, "Gamma(alpha=2, beta=1)"},
		{MustNormal(1, 1), 3, "Normal(mu=3, sigma=3)"},
		{MustUniform(0, 1), 2, "Uniform(a=0, b=2)"},
	}
	for _, tc := range tests {
		got, err := Mul(tc.x, tc.c)
		if err != nil {
			t.Fatalf("failed to multiply %v by %v; %v", tc.x, tc.c, err)
		}
		if got.String() != tc.want {
			t.Errorf("unexpected product; got %v, want %v", got, tc.want)
		}
	}
}

func TestMul_UnsupportedFamilies(t *testing.T) {
	for _, x := range []RandomVariable{MustBinomial(2, 0.5), MustBernoulli(0.5), MustPoisson(2)} {
		if _, err := Mul(x, 2); !errors.Is(err, ErrIncompatible) {
			t.Errorf("expected scaling %v to be rejected, got %v", x, err)
		}
	}
}

func TestDiv_ByZero(t *testing.T) {
	for _, x := range []RandomVariable{MustGamma(2, 3), MustBinomial(2, 0.5)} {
		if _, err := Div(x, 0); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("expected division by zero for %v, got %v", x, err)
		}
	}
	got, err := Div(MustGamma(2, 3), 3)
	if err != nil {
		t.Fatalf("failed to divide; %v", err)
	}
	if g := got.(Gamma); g.Beta() != 1 {
		t.Errorf("unexpected quotient; got %v", g)
	}
}

func TestShift_SupportedFamilies(t *testing.T) {
	got, err := Shift(MustNormal(0, 1), 2)
	if err != nil {
		t.Fatalf("failed to shift; %v", err)
	}
	if got.Mean() != 2 {
		t.Errorf("unexpected mean; got %v", got.Mean())
	}
	if _, err := Shift(MustGamma(1, 1), 2); !errors.Is(err, ErrIncompatible) {
		t.Errorf("expected shifting a gamma to be rejected, got %v", err)
	}
}

func TestConvert_Casts(t *testing.T) {
	tests := []struct {
		x    RandomVariable
		to   Family
		want string
	}{
		{MustBernoulli(0.3), FamilyBinomial, "Binomial(n=1, p=0.3)"},
		{MustBinomial(1, 0.3), FamilyBernoulli, "Bernoulli(p=0.3)"},
		{MustExponential(0.25), FamilyGamma, "Gamma(alpha=1, beta=4)"},
		{MustGamma(1, 4), FamilyExponential, "Exponential(rate=0.25)"},
		{MustChiSq(6), FamilyGamma, "Gamma(alpha=3, beta=2)"},
		{MustGamma(3, 2), FamilyChiSq, "ChiSq(df=6)"},
		{MustExponential(0.5), FamilyChiSq, "ChiSq(df=2)"},
		{MustChiSq(2), FamilyExponential, "Exponential(rate=0.5)"},
		{MustPoisson(2), FamilyPoisson, "Poisson(lambda=2)"},
	}
	for _, tc := range tests {
		got, err := Convert(tc.x, tc.to)
		if err != nil {
			t.Fatalf("failed to convert %v to %v; %v", tc.x, tc.to, err)
		}
		if got.String() != tc.want {
			t.Errorf("unexpected conversion; got %v, want %v", got, tc.want)
		}
	}
}

func TestConvert_InvalidCasts(t *testing.T) {
	tests := []struct {
		x  RandomVariable
		to Family
	}{
		{MustBinomial(3, 0.3), FamilyBernoulli},
		{MustGamma(2, 1), FamilyExponential},
		{MustGamma(2, 1), FamilyChiSq},
		{MustNormal(0, 1), FamilyGamma},
		{MustPoisson(1), FamilyBinomial},
	}
	for _, tc := range tests {
		if _, err := Convert(tc.x, tc.to); !errors.Is(err, ErrInvalidConversion) {
			t.Errorf("expected %v -> %v to be rejected, got %v", tc.x, tc.to, err)
		}
	}
}
