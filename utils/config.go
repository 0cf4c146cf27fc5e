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
	"errors"
	"fmt"

	"github.com/Fantom-foundation/rv/distribution"
	"github.com/Fantom-foundation/rv/logger"
	"github.com/go-playground/validator/v10"
	"github.com/urfave/cli/v2"
)

type ArgumentMode int

// An enums of argument modes used by rv-cli commands.
const (
	NoArgs     ArgumentMode = iota // the command takes no positional arguments
	OneArg                         // exactly one argument, e.g. an input file
	OneToNArgs                     // one or more distribution expressions
)

// Config represents execution configuration for rv tools.
type Config struct {
	AppName     string
	CommandName string

	Args      []string                      // positional command line arguments
	Variables []distribution.RandomVariable // distributions parsed from Args
	LogLevel  string                        `validate:"oneof=critical error warning notice info debug CRITICAL ERROR WARNING NOTICE INFO DEBUG"`
	From      *float64                      // lower end of the evaluation range; bounds of the distribution if nil
	To        *float64                      // upper end of the evaluation range; bounds of the distribution if nil
	Points    int                           `validate:"gte=2,lte=100000"` // number of evaluation points
	MgfAt     []float64                     // arguments at which the MGF is reported
	Port      string                        `validate:"omitempty,numeric"` // port of the visualisation web-server
	Output    string                        // output file; stdout or web-server if empty
}

var validate = validator.New()

type configContext struct {
	cfg *Config       // run configuration
	log logger.Logger // logger for printing logs in config functions
	ctx *cli.Context  // command line context for accessing flags and command line arguments
}

func NewConfigContext(cfg *Config, ctx *cli.Context) *configContext {
	return &configContext{
		log: logger.NewLogger(cfg.LogLevel, "Config"),
		cfg: cfg,
		ctx: ctx,
	}
}

// NewConfig creates and initializes Config with commandline arguments.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	// create config with user flag values, if not set default values are used
	cfg := createConfigFromFlags(ctx)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration; %w", err)
	}
	if cfg.From != nil && cfg.To != nil && *cfg.To < *cfg.From {
		return nil, fmt.Errorf("invalid configuration; --%v (%v) is less than --%v (%v)", ToFlag.Name, *cfg.To, FromFlag.Name, *cfg.From)
	}

	cc := NewConfigContext(cfg, ctx)
	if err := cc.updateConfigArguments(mode); err != nil {
		return nil, fmt.Errorf("unable to parse cli arguments; %w", err)
	}
	cc.reportNewConfig()

	return cfg, nil
}

// NewTestConfig creates a new config for test purpose.
func NewTestConfig(vars ...distribution.RandomVariable) *Config {
	return &Config{
		LogLevel:  "critical",
		Variables: vars,
		Points:    PointsFlag.Value,
	}
}

// createConfigFromFlags returns Config instance with user specified values or the default ones.
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     "rv-cli",
		CommandName: "",
		Args:        ctx.Args().Slice(),
		LogLevel:    getFlagValue(ctx, &logger.LogLevelFlag).(string),
		Points:      getFlagValue(ctx, &PointsFlag).(int),
		MgfAt:       ctx.Float64Slice(MgfFlag.Name),
		Port:        getFlagValue(ctx, &PortFlag).(string),
		Output:      ctx.Path(OutputFlag.Name),
	}
	if ctx.Command != nil {
		cfg.CommandName = ctx.Command.Name
	}
	if ctx.IsSet(FromFlag.Name) {
		v := ctx.Float64(FromFlag.Name)
		cfg.From = &v
	}
	if ctx.IsSet(ToFlag.Name) {
		v := ctx.Float64(ToFlag.Name)
		cfg.To = &v
	}
	return cfg
}

// getFlagValue returns the value of a flag, or its default if the flag is not defined on the context.
func getFlagValue(ctx *cli.Context, flag cli.Flag) any {
	switch f := flag.(type) {
	case *cli.StringFlag:
		if ctx.IsSet(f.Name) {
			return ctx.String(f.Name)
		}
		return f.Value
	case *cli.IntFlag:
		if ctx.IsSet(f.Name) {
			return ctx.Int(f.Name)
		}
		return f.Value
	}
	panic(fmt.Sprintf("unsupported flag type %T", flag))
}

// updateConfigArguments checks the number of positional arguments and parses distribution expressions.
func (cc *configContext) updateConfigArguments(mode ArgumentMode) error {
	args := cc.cfg.Args
	switch mode {
	case NoArgs:
		if len(args) > 0 {
			return errors.New("this command does not take any arguments")
		}
		return nil
	case OneArg:
		if len(args) != 1 {
			return errors.New("this command requires exactly 1 argument")
		}
		return nil
	case OneToNArgs:
		if len(args) < 1 {
			return errors.New("this command requires at least 1 argument")
		}
		for _, arg := range args {
			rv, err := distribution.Parse(arg)
			if err != nil {
				return err
			}
			cc.log.Debugf("Parsed %q as %v", arg, rv)
			cc.cfg.Variables = append(cc.cfg.Variables, rv)
		}
		return nil
	}
	return errors.New("unknown mode; unable to process commandline arguments")
}

// Range returns the evaluation range for rv; unset ends default to the bounds of rv.
func (cfg *Config) Range(rv distribution.RandomVariable) (float64, float64) {
	lo, hi := rv.Bounds()
	if cfg.From != nil {
		lo = *cfg.From
	}
	if cfg.To != nil {
		hi = *cfg.To
	}
	return lo, hi
}

// reportNewConfig logs out the state of config in current run.
func (cc *configContext) reportNewConfig() {
	log := cc.log
	log.Infof("Run config:")
	log.Infof("Command: %v", cc.cfg.CommandName)
	for _, rv := range cc.cfg.Variables {
		log.Infof("Distribution: %v", rv)
	}
	if cc.cfg.From != nil || cc.cfg.To != nil {
		log.Infof("Range: from %v to %v", optional(cc.cfg.From), optional(cc.cfg.To))
	}
	log.Infof("Points: %v", cc.cfg.Points)
	if cc.cfg.Output != "" {
		log.Infof("Output: %v", cc.cfg.Output)
	}
}

// optional formats an optional bound.
func optional(v *float64) string {
	if v == nil {
		return "bounds"
	}
	return fmt.Sprintf("%v", *v)
}
