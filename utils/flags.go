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
	"github.com/urfave/cli/v2"
)

// Command line options for common flags of rv-cli commands.
var (
	FromFlag = cli.Float64Flag{
		Name:  "from",
		Usage: "sets the lower end of the evaluation range; defaults to the lower bound of the distribution",
	}
	ToFlag = cli.Float64Flag{
		Name:  "to",
		Usage: "sets the upper end of the evaluation range; defaults to the upper bound of the distribution",
	}
	PointsFlag = cli.IntFlag{
		Name:    "points",
		Aliases: []string{"n"},
		Usage:   "number of evaluation points; discrete distributions are evaluated on integers only",
		Value:   21,
	}
	MgfFlag = cli.Float64SliceFlag{
		Name:  "mgf",
		Usage: "evaluates the moment-generating function at the given arguments",
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output path",
	}
	PortFlag = cli.StringFlag{
		Name:        "port",
		Aliases:     []string{"v"},
		Usage:       "enable visualization on `PORT`",
		DefaultText: "8080",
		Value:       "8080",
	}
)
