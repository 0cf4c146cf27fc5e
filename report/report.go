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


// Package report renders random variables as console tables.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Fantom-foundation/rv/distribution"
	"github.com/Fantom-foundation/rv/scenario"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// undefined is printed for values that do not exist, e.g. an MGF outside its domain.
const undefined = "undefined"

// WriteSummary sends a table of moments of the given variables into the output writer.
func WriteSummary(w io.Writer, vars []scenario.Named) error {
	m := message.NewPrinter(language.English)
	if err := heading(w, "Distributions"); err != nil {
		return err
	}

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Name", "Distribution", "Mean", "Var", "Std"})
	tbl.SetBorder(true)
	for _, v := range vars {
		tbl.Append([]string{
			v.Name,
			v.Var.String(),
			number(m, v.Var.Mean()),
			number(m, v.Var.Var()),
			number(m, v.Var.Std()),
		})
	}
	tbl.Render()
	return nil
}

// WriteEvaluation sends a table of density and cumulative probability at the given points.
func WriteEvaluation(w io.Writer, v scenario.Named, points []distribution.Point) error {
	m := message.NewPrinter(language.English)
	if err := heading(w, "%v ~ %v", v.Name, v.Var); err != nil {
		return err
	}

	density, abscissa := "pdf", "%.4f"
	if distribution.IsDiscrete(v.Var) {
		density, abscissa = "pmf", "%.0f"
	}

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"x", density, "cdf"})
	tbl.SetBorder(true)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, p := range points {
		tbl.Append([]string{m.Sprintf(abscissa, p.X), number(m, p.Density), number(m, p.Cdf)})
	}
	tbl.Render()
	return nil
}

// WriteMgf sends a table of moment-generating function values with one column per variable.
func WriteMgf(w io.Writer, vars []scenario.Named, ts []float64) error {
	m := message.NewPrinter(language.English)
	if err := heading(w, "Moment-generating functions"); err != nil {
		return err
	}

	header := []string{"t"}
	for _, v := range vars {
		header = append(header, "M_"+v.Name)
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetBorder(true)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, t := range ts {
		row := []string{m.Sprintf("%.4f", t)}
		for _, v := range vars {
			row = append(row, number(m, v.Var.Mgf(t)))
		}
		tbl.Append(row)
	}
	tbl.Render()
	return nil
}

// heading writes a bold title line.
func heading(w io.Writer, format string, a ...any) error {
	bold := color.New(color.Bold).SprintfFunc()
	if _, err := fmt.Fprintln(w, bold(format, a...)); err != nil {
		return fmt.Errorf("could not write output; %w", err)
	}
	return nil
}

// number formats v with grouped digits.
func number(m *message.Printer, v float64) string {
	switch {
	case math.IsNaN(v):
		return undefined
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return m.Sprintf("%.6f", v)
}

// WriteFamilies sends a table of the supported distribution families and their parameters.
func WriteFamilies(w io.Writer) error {
	if err := heading(w, "Families"); err != nil {
		return err
	}

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Family", "Parameters", "Example"})
	tbl.SetBorder(true)
	for _, f := range distribution.Families() {
		names := distribution.ParamNames(f)
		tbl.Append([]string{f.String(), strings.Join(names, ", "), f.String() + "(" + strings.Join(names, "=…, ") + "=…)"})
	}
	tbl.Render()
	return nil
}
