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

	"github.com/Fantom-foundation/rv/logger"
	"github.com/Fantom-foundation/rv/utils"
	"github.com/Fantom-foundation/rv/visualizer"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand data structure for the visualize app
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "produces charts of pmf/pdf and cdf of distributions",
	ArgsUsage: "<distribution> [<distribution>...]",
	Flags: []cli.Flag{
		&utils.PortFlag,
		&utils.OutputFlag,
		&utils.FromFlag,
		&utils.ToFlag,
		&utils.PointsFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command requires at least one argument:
<distribution> [<distribution>...]

The charts are served on --port unless --output names an HTML file to write.`,
}

// visualizeAction implements the visualize command.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.OneToNArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Visualize")

	vars := namedArguments(cfg)
	if cfg.Output != "" {
		log.Noticef("Write charts to %v", cfg.Output)
		return writeFile(cfg.Output, func(f *os.File) error {
			return visualizer.WritePage(f, vars, cfg)
		})
	}

	// fire-up web-server and visualize distributions
	log.Notice("Cancel visualize with ^C")
	return visualizer.FireUpWeb(vars, cfg, log)
}
