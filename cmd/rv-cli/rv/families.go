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
	"fmt"
	"os"

	"github.com/Fantom-foundation/rv/logger"
	"github.com/Fantom-foundation/rv/report"
	"github.com/Fantom-foundation/rv/utils"
	"github.com/Fantom-foundation/rv/visualizer"
	"github.com/urfave/cli/v2"
)

// FamiliesCommand data structure for the families app
var FamiliesCommand = cli.Command{
	Action: familiesAction,
	Name:   "families",
	Usage:  "lists supported distribution families and renders their relations",
	Flags: []cli.Flag{
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The families command lists all distribution families with their parameters.
With --output the graph of casts and closed-form operations between the
families is written as HTML page.`,
}

// familiesAction implements the families command.
func familiesAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Families")

	if err = report.WriteFamilies(ctx.App.Writer); err != nil {
		return err
	}
	if cfg.Output == "" {
		return nil
	}

	txt, err := visualizer.RenderFamilyGraph()
	if err != nil {
		return fmt.Errorf("cannot render family graph; %w", err)
	}
	log.Noticef("Write family graph to %v", cfg.Output)
	return writeFile(cfg.Output, func(f *os.File) error {
		_, err := fmt.Fprint(f, txt)
		return err
	})
}
