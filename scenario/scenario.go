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


// Package scenario loads YAML documents that declare named random variables
// and variables derived from them by closed-form algebra or casts.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Fantom-foundation/rv/distribution"
	"github.com/Fantom-foundation/rv/logger"
	"gopkg.in/yaml.v3"
)

// Supported operations of derived variables.
const (
	OpAdd     = "add"
	OpMul     = "mul"
	OpDiv     = "div"
	OpShift   = "shift"
	OpConvert = "convert"
)

// Variable declares a named distribution given by an expression, e.g. "gamma(2, 0.5)".
type Variable struct {
	Name string `yaml:"name"`
	Dist string `yaml:"dist"`
}

// Derived declares a variable computed from previously declared ones.
type Derived struct {
	Name   string   `yaml:"name"`
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args"`
	Scalar *float64 `yaml:"scalar,omitempty"` // factor of mul/div, offset of shift
	To     string   `yaml:"to,omitempty"`     // target family of convert
}

// Scenario is the content of a scenario file.
type Scenario struct {
	Name      string     `yaml:"name"`
	Variables []Variable `yaml:"variables"`
	Derived   []Derived  `yaml:"derived"`
	Points    []float64  `yaml:"points"` // evaluation points; bounds based grid if empty
}

// Named binds a random variable to its name in a scenario.
type Named struct {
	Name string
	Var  distribution.RandomVariable
}

// Load reads a scenario from the given file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open scenario; %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load scenario %v; %w", path, err)
	}
	return s, nil
}

// Decode parses a scenario document; unknown fields are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := new(Scenario)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scenario")
		}
		return nil, err
	}
	if len(s.Variables) == 0 {
		return nil, errors.New("scenario declares no variables")
	}
	return s, nil
}

// Evaluate constructs all variables of the scenario in declaration order,
// base variables first. Every name must be unique and derived variables may
// only refer to names declared before them.
func (s *Scenario) Evaluate(log logger.Logger) ([]Named, error) {
	env := make(map[string]distribution.RandomVariable, len(s.Variables)+len(s.Derived))
	res := make([]Named, 0, len(s.Variables)+len(s.Derived))

	bind := func(name string, rv distribution.RandomVariable) error {
		if name == "" {
			return errors.New("variable without a name")
		}
		if _, found := env[name]; found {
			return fmt.Errorf("duplicate variable %v", name)
		}
		env[name] = rv
		res = append(res, Named{Name: name, Var: rv})
		return nil
	}

	for _, v := range s.Variables {
		rv, err := distribution.Parse(v.Dist)
		if err != nil {
			return nil, fmt.Errorf("variable %v; %w", v.Name, err)
		}
		if err = bind(v.Name, rv); err != nil {
			return nil, err
		}
		log.Debugf("%v = %v", v.Name, rv)
	}

	for _, d := range s.Derived {
		args := make([]distribution.RandomVariable, len(d.Args))
		for i, name := range d.Args {
			rv, found := env[name]
			if !found {
				return nil, fmt.Errorf("variable %v refers to unknown variable %v", d.Name, name)
			}
			args[i] = rv
		}
		rv, err := derive(d, args)
		if err != nil {
			return nil, fmt.Errorf("variable %v; %w", d.Name, err)
		}
		if err = bind(d.Name, rv); err != nil {
			return nil, err
		}
		log.Debugf("%v = %v(%v) = %v", d.Name, d.Op, d.Args, rv)
	}

	log.Infof("Scenario %q defines %d variables", s.Name, len(res))
	return res, nil
}

// derive applies the operation of d to its resolved arguments.
func derive(d Derived, args []distribution.RandomVariable) (distribution.RandomVariable, error) {
	switch d.Op {
	case OpAdd:
		if len(args) < 2 {
			return nil, fmt.Errorf("%v requires at least 2 arguments, got %d", d.Op, len(args))
		}
		acc := args[0]
		for _, rv := range args[1:] {
			var err error
			if acc, err = distribution.Add(acc, rv); err != nil {
				return nil, err
			}
		}
		return acc, nil

	case OpMul, OpDiv, OpShift:
		if len(args) != 1 {
			return nil, fmt.Errorf("%v requires exactly 1 argument, got %d", d.Op, len(args))
		}
		if d.Scalar == nil {
			return nil, fmt.Errorf("%v requires a scalar", d.Op)
		}
		switch d.Op {
		case OpMul:
			return distribution.Mul(args[0], *d.Scalar)
		case OpDiv:
			return distribution.Div(args[0], *d.Scalar)
		default:
			return distribution.Shift(args[0], *d.Scalar)
		}

	case OpConvert:
		if len(args) != 1 {
			return nil, fmt.Errorf("%v requires exactly 1 argument, got %d", d.Op, len(args))
		}
		to, err := distribution.ParseFamily(d.To)
		if err != nil {
			return nil, err
		}
		return distribution.Convert(args[0], to)
	}
	return nil, fmt.Errorf("unknown operation %q", d.Op)
}
