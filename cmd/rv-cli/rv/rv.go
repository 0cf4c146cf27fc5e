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


// Package rv implements the commands of the rv-cli application.
package rv

import (
	"fmt"
	"os"

	"github.com/Fantom-foundation/rv/scenario"
	"github.com/Fantom-foundation/rv/utils"
)

// namedArguments binds the distributions given on the command line to the names X1, X2, ...
func namedArguments(cfg *utils.Config) []scenario.Named {
	vars := make([]scenario.Named, 0, len(cfg.Variables))
	for i, rv := range cfg.Variables {
		vars = append(vars, scenario.Named{Name: fmt.Sprintf("X%d", i+1), Var: rv})
	}
	return vars
}

// writeFile creates the output file and passes it to write.
func writeFile(path string, write func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file; %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close output file; %w", cerr)
		}
	}()
	return write(f)
}
