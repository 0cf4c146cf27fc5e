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


package rv

import (
	"github.com/Fantom-foundation/rv/distribution"
	"github.com/Fantom-foundation/rv/logger"
	"github.com/Fantom-foundation/rv/report"
	"github.com/Fantom-foundation/rv/utils"
	"github.com/urfave/cli/v2"
)

// EvalCommand data structure for the eval app
var EvalCommand = cli.Command{
	Action:    evalAction,
	Name:      "eval",
	Usage:     "evaluates pmf/pdf and cdf of distributions over a range",
	ArgsUsage: "<distribution> [<distribution>...]",
	Flags: []cli.Flag{
		&utils.FromFlag,
		&utils.ToFlag,
		&utils.PointsFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The eval command requires at least one argument:
<distribution> [<distribution>...]

The range defaults to the bounds of each distribution holding practically all
of its probability mass. Discrete distributions are evaluated on integers only.`,
}

// evalAction implements the eval command.
func evalAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.OneToNArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Eval")

	for _, v := range namedArguments(cfg) {
		lo, hi := cfg.Range(v.Var)
		xs := distribution.Span(v.Var, lo, hi, cfg.Points)
		log.Debugf("Evaluating %v at %d points in [%v, %v]", v.Var, len(xs), lo, hi)
		if err = report.WriteEvaluation(ctx.App.Writer, v, distribution.Evaluate(v.Var, xs)); err != nil {
			return err
		}
	}
	return nil
}
