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
	"os"

	"github.com/Fantom-foundation/rv/distribution"
	"github.com/Fantom-foundation/rv/logger"
	"github.com/Fantom-foundation/rv/report"
	"github.com/Fantom-foundation/rv/scenario"
	"github.com/Fantom-foundation/rv/utils"
	"github.com/Fantom-foundation/rv/visualizer"
	"github.com/urfave/cli/v2"
)

// ScenarioCommand data structure for the scenario app
var ScenarioCommand = cli.Command{
	Action:    scenarioAction,
	Name:      "scenario",
	Usage:     "evaluates variables declared in a scenario file",
	ArgsUsage: "<scenario-file>",
	Flags: []cli.Flag{
		&utils.PointsFlag,
		&utils.MgfFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The scenario command requires one argument:
<scenario.yaml>

<scenario.yaml> declares named distributions and variables derived from them:

  name: dice
  variables:
    - {name: X, dist: "binomial(n=4, p=0.5)"}
  derived:
    - {name: Z, op: add, args: [X, X]}
  points: [0, 1, 2]

Every variable is evaluated at the scenario points or, without points, on a
grid over its bounds. With --output the charts are written as HTML page.`,
}

// scenarioAction implements the scenario command.
func scenarioAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.OneArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Scenario")

	log.Infof("Read scenario file %v", cfg.Args[0])
	s, err := scenario.Load(cfg.Args[0])
	if err != nil {
		return err
	}
	vars, err := s.Evaluate(log)
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	if err = report.WriteSummary(w, vars); err != nil {
		return err
	}
	for _, v := range vars {
		xs := s.Points
		if len(xs) == 0 {
			xs = distribution.Grid(v.Var, cfg.Points)
		}
		if err = report.WriteEvaluation(w, v, distribution.Evaluate(v.Var, xs)); err != nil {
			return err
		}
	}
	if len(cfg.MgfAt) > 0 {
		if err = report.WriteMgf(w, vars, cfg.MgfAt); err != nil {
			return err
		}
	}

	if cfg.Output != "" {
		log.Noticef("Write charts to %v", cfg.Output)
		return writeFile(cfg.Output, func(f *os.File) error {
			return visualizer.WritePage(f, vars, cfg)
		})
	}
	return nil
}
