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

package utils

import (
	"flag"
	"testing"

	"github.com/Fantom-foundation/rv/distribution"
	"github.com/Fantom-foundation/rv/logger"
	"github.com/urfave/cli/v2"
)

func prepareMockCliContext(t *testing.T, args ...string) *cli.Context {
	flagSet := flag.NewFlagSet("utils_config_test", 0)
	flagSet.String(logger.LogLevelFlag.Name, "critical", "Level of the logging of the app action")
	flagSet.Int(PointsFlag.Name, PointsFlag.Value, "number of evaluation points")
	flagSet.Float64(FromFlag.Name, 0, "lower end of the evaluation range")
	flagSet.Float64(ToFlag.Name, 0, "upper end of the evaluation range")
	flagSet.String(PortFlag.Name, PortFlag.Value, "visualization port")
	if err := flagSet.Parse(args); err != nil {
		t.Fatalf("cannot parse flags; %v", err)
	}

	ctx := cli.NewContext(cli.NewApp(), flagSet, nil)

	command := &cli.Command{Name: "test_command"}
	ctx.Command = command

	return ctx
}

func TestUtilsConfig_ParsesDistributionArguments(t *testing.T) {
	ctx := prepareMockCliContext(t, "--log", "critical", "binomial(n=3, p=0.5)", "gamma(2, 1)")
	cfg, err := NewConfig(ctx, OneToNArgs)
	if err != nil {
		t.Fatalf("cannot create config; %v", err)
	}
	if cfg.CommandName != "test_command" {
		t.Errorf("unexpected command name %v", cfg.CommandName)
	}
	if len(cfg.Variables) != 2 {
		t.Fatalf("unexpected number of variables; got %d, want 2", len(cfg.Variables))
	}
	if got := cfg.Variables[0].String(); got != "Binomial(n=3, p=0.5)" {
		t.Errorf("unexpected first variable %v", got)
	}
	if got := cfg.Variables[1].Family(); got != distribution.FamilyGamma {
		t.Errorf("unexpected second family %v", got)
	}
	if cfg.Points != PointsFlag.Value {
		t.Errorf("unexpected default points %v", cfg.Points)
	}
	if cfg.From != nil || cfg.To != nil {
		t.Errorf("range must be unset by default")
	}
}

func TestUtilsConfig_RangeOverridesBounds(t *testing.T) {
	ctx := prepareMockCliContext(t, "--from", "-1", "binomial(n=3, p=0.5)")
	cfg, err := NewConfig(ctx, OneToNArgs)
	if err != nil {
		t.Fatalf("cannot create config; %v", err)
	}
	lo, hi := cfg.Range(cfg.Variables[0])
	if lo != -1 || hi != 3 {
		t.Errorf("unexpected range [%v, %v]", lo, hi)
	}
}

func TestUtilsConfig_RejectsInvalidValues(t *testing.T) {
	tests := map[string][]string{
		"reversed range":       {"--from", "3", "--to", "1", "poisson(1)"},
		"too few points":       {"--points", "1", "poisson(1)"},
		"unknown log level":    {"--log", "verbose", "poisson(1)"},
		"non-numeric port":     {"--port", "http", "poisson(1)"},
		"invalid parameters":   {"binomial(n=-1, p=0.5)"},
		"unknown family":       {"cauchy(0, 1)"},
		"missing distribution": {},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := prepareMockCliContext(t, args...)
			if _, err := NewConfig(ctx, OneToNArgs); err == nil {
				t.Errorf("expected configuration to be rejected")
			}
		})
	}
}

func TestUtilsConfig_ArgumentModes(t *testing.T) {
	tests := []struct {
		mode ArgumentMode
		args []string
		ok   bool
	}{
		{NoArgs, nil, true},
		{NoArgs, []string{"x"}, false},
		{OneArg, []string{"scenario.yaml"}, true},
		{OneArg, nil, false},
		{OneArg, []string{"a", "b"}, false},
		{ArgumentMode(42), nil, false},
	}
	for _, tc := range tests {
		ctx := prepareMockCliContext(t, tc.args...)
		_, err := NewConfig(ctx, tc.mode)
		if (err == nil) != tc.ok {
			t.Errorf("mode %v with %v: unexpected result %v", tc.mode, tc.args, err)
		}
	}
}

func TestUtilsConfig_NewTestConfig(t *testing.T) {
	cfg := NewTestConfig(distribution.MustPoisson(2))
	if err := validate.Struct(cfg); err != nil {
		t.Errorf("test config must be valid; %v", err)
	}
	lo, hi := cfg.Range(cfg.Variables[0])
	if lo != 0 || hi <= 2 {
		t.Errorf("unexpected range [%v, %v]", lo, hi)
	}
}
