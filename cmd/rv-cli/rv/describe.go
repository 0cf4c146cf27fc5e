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
	"github.com/Fantom-foundation/rv/logger"
	"github.com/Fantom-foundation/rv/report"
	"github.com/Fantom-foundation/rv/utils"
	"github.com/urfave/cli/v2"
)

// DescribeCommand data structure for the describe app
var DescribeCommand = cli.Command{
	Action:    describeAction,
	Name:      "describe",
	Usage:     "prints mean, variance and standard deviation of distributions",
	ArgsUsage: "<distribution> [<distribution>...]",
	Flags: []cli.Flag{
		&utils.MgfFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The describe command requires at least one argument:
<distribution> [<distribution>...]

<distribution> is an expression such as "binomial(n=10, p=0.3)" or "gamma(2, 0.5)".
With --mgf the moment-generating functions are evaluated at the given arguments.`,
}

// describeAction implements the describe command.
func describeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.OneToNArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Describe")

	vars := namedArguments(cfg)
	if err = report.WriteSummary(ctx.App.Writer, vars); err != nil {
		return err
	}
	if len(cfg.MgfAt) > 0 {
		log.Debugf("Evaluating MGF at %v", cfg.MgfAt)
		return report.WriteMgf(ctx.App.Writer, vars, cfg.MgfAt)
	}
	return nil
}
