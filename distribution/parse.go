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
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// paramNames lists the parameters of each family in positional order.
var paramNames = [numFamilies][]string{
	FamilyBinomial:    {"n", "p"},
	FamilyBernoulli:   {"p"},
	FamilyGamma:       {"alpha", "beta"},
	FamilyExponential: {"rate"},
	FamilyChiSq:       {"df"},
	FamilyPoisson:     {"lambda"},
	FamilyNormal:      {"mu", "sigma"},
	FamilyUniform:     {"a", "b"},
}

// ParamNames returns the parameter names of a family in positional order.
func ParamNames(f Family) []string {
	if f < 0 || f >= numFamilies {
		return nil
	}
	return append([]string(nil), paramNames[f]...)
}

// New constructs a distribution of the given family from named parameters.
func New(f Family, params map[string]float64) (RandomVariable, error) {
	names := ParamNames(f)
	if names == nil {
		return nil, fmt.Errorf("unknown distribution family %v", f)
	}
	for name := range params {
		if !slices.Contains(names, name) {
			return nil, fmt.Errorf("%w: %v has no parameter %q", ErrInvalidParameter, f, name)
		}
	}
	for _, name := range names {
		if _, ok := params[name]; !ok {
			return nil, fmt.Errorf("%w: %v requires parameter %q", ErrInvalidParameter, f, name)
		}
	}

	switch f {
	case FamilyBinomial:
		n := params["n"]
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("%w: n must be an integer, got %v", ErrInvalidParameter, n)
		}
		if math.Abs(n) > math.MaxInt32 {
			return nil, fmt.Errorf("%w: n must not exceed %d, got %v", ErrInvalidParameter, math.MaxInt32, n)
		}
		return result(NewBinomial(int(n), params["p"]))
	case FamilyBernoulli:
		return result(NewBernoulli(params["p"]))
	case FamilyGamma:
		return result(NewGamma(params["alpha"], params["beta"]))
	case FamilyExponential:
		return result(NewExponential(params["rate"]))
	case FamilyChiSq:
		return result(NewChiSq(params["df"]))
	case FamilyPoisson:
		return result(NewPoisson(params["lambda"]))
	case FamilyNormal:
		return result(NewNormal(params["mu"], params["sigma"]))
	case FamilyUniform:
		return result(NewUniform(params["a"], params["b"]))
	}
	return nil, fmt.Errorf("unknown distribution family %v", f)
}

// Parse constructs a distribution from an expression such as
// "binomial(n=10, p=0.3)" or "gamma(2, 0.5)". Named and positional
// arguments may not be mixed.
func Parse(expr string) (RandomVariable, error) {
	expr = strings.TrimSpace(expr)
	open := strings.IndexByte(expr, '(')
	if open < 0 || !strings.HasSuffix(expr, ")") {
		return nil, fmt.Errorf("malformed distribution %q; expected family(args)", expr)
	}
	f, err := ParseFamily(expr[:open])
	if err != nil {
		return nil, err
	}

	body := strings.TrimSpace(expr[open+1 : len(expr)-1])
	params := map[string]float64{}
	if body == "" {
		return New(f, params)
	}
	names := ParamNames(f)
	named, positional := false, false
	for i, arg := range strings.Split(body, ",") {
		key, value, isNamed := strings.Cut(arg, "=")
		if isNamed {
			named = true
			key = strings.ToLower(strings.TrimSpace(key))
		} else {
			positional = true
			value = key
			if i >= len(names) {
				return nil, fmt.Errorf("%w: too many arguments for %v", ErrInvalidParameter, f)
			}
			key = names[i]
		}
		if named && positional {
			return nil, fmt.Errorf("malformed distribution %q; cannot mix named and positional arguments", expr)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed value for %v in %q; %v", key, expr, err)
		}
		if _, dup := params[key]; dup {
			return nil, fmt.Errorf("%w: parameter %q given twice", ErrInvalidParameter, key)
		}
		params[key] = v
	}
	return New(f, params)
}
