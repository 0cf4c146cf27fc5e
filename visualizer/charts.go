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


// Package visualizer renders random variables as echarts pages and the
// relations between distribution families as a graphviz graph.
package visualizer

import (
	"fmt"
	"io"
	"math"

	"github.com/Fantom-foundation/rv/distribution"
	"github.com/Fantom-foundation/rv/scenario"
	"github.com/Fantom-foundation/rv/utils"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// PageTitle is the title of the rendered chart pages.
const PageTitle = "Random Variables"

// globalOptions returns the options shared by all charts.
func globalOptions(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeChalk,
			PageTitle: PageTitle,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
	}
}

// convertDensityData converts evaluated points to scatter points; non-finite values are skipped.
func convertDensityData(points []distribution.Point) []opts.ScatterData {
	items := []opts.ScatterData{}
	for _, p := range points {
		if !finite(p.X) || !finite(p.Density) {
			continue
		}
		items = append(items, opts.ScatterData{Value: [2]float64{p.X, p.Density}, SymbolSize: 5})
	}
	return items
}

// convertLineData converts evaluated points to line points using the given ordinate; non-finite values are skipped.
func convertLineData(points []distribution.Point, y func(distribution.Point) float64) []opts.LineData {
	items := []opts.LineData{}
	for _, p := range points {
		// JSON has no encoding for NaN and Inf
		if v := y(p); finite(p.X) && finite(v) {
			items = append(items, opts.LineData{Value: [2]float64{p.X, v}})
		}
	}
	return items
}

// finite reports whether v is neither infinite nor NaN.
func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// NewDensityChart creates a scatter chart of the pmf of a discrete variable
// or a line chart of the pdf of a continuous one.
func NewDensityChart(v scenario.Named, points []distribution.Point) components.Charter {
	subtitle := fmt.Sprintf("%v ~ %v", v.Name, v.Var)
	if distribution.IsDiscrete(v.Var) {
		scatter := charts.NewScatter()
		scatter.SetGlobalOptions(globalOptions("Probability Mass Function", subtitle)...)
		scatter.AddSeries("pmf", convertDensityData(points))
		return scatter
	}
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions("Probability Density Function", subtitle)...)
	line.AddSeries("pdf", convertLineData(points, func(p distribution.Point) float64 { return p.Density }))
	return line
}

// NewCdfChart creates a line chart of the cumulative distribution function.
func NewCdfChart(v scenario.Named, points []distribution.Point) components.Charter {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions("Cumulative Distribution Function", fmt.Sprintf("%v ~ %v", v.Name, v.Var))...)
	line.AddSeries("cdf", convertLineData(points, func(p distribution.Point) float64 { return p.Cdf }))
	return line
}

// WritePage renders density and cdf charts of all variables as one HTML page.
// The evaluation range and number of points are taken from cfg.
func WritePage(w io.Writer, vars []scenario.Named, cfg *utils.Config) error {
	page := components.NewPage()
	page.PageTitle = PageTitle
	for _, v := range vars {
		lo, hi := cfg.Range(v.Var)
		points := distribution.Evaluate(v.Var, distribution.Span(v.Var, lo, hi, cfg.Points))
		page.AddCharts(NewDensityChart(v, points), NewCdfChart(v, points))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("cannot render charts; %w", err)
	}
	return nil
}
