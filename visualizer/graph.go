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


package visualizer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Fantom-foundation/rv/distribution"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// FamilyGraphTitle is the title of the family relation page.
const FamilyGraphTitle = "Distribution Families"

// preGraphHtml is the preamble for an HTML page rending a dot graph.
const preGraphHtml = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>TITLE</title>

    <script>
        const dot = ` + "`"

// postGraphHtml is the postamble for an HTML page rending a dot graph.
const postGraphHtml = "`" + `;
    </script>
</head>

<body>
    <h1>TITLE</h1>
    <div id="graph"></div>
    <script type="module">
        import { Graphviz } from "https://cdn.jsdelivr.net/npm/@hpcc-js/wasm/dist/index.js";
        if (Graphviz) {
            const graphviz = await Graphviz.load();
            const svg = graphviz.layout(dot, "svg", "dot");
            document.getElementById("graph").innerHTML = svg;
        }
    </script>
</body>
</html>
`

// RelationKind classifies the edges of the family graph.
type RelationKind int

const (
	Cast  RelationKind = iota // the source is a special case of the target or vice versa
	Sum                       // sum of two independent variables of the source family
	Scale                     // multiplication by a positive constant
)

// edge colors per relation kind
var relationColors = map[RelationKind]string{
	Cast:  "blue",
	Sum:   "darkgreen",
	Scale: "gray",
}

// Relation is a closed-form transition from one family into another.
type Relation struct {
	From, To distribution.Family
	Kind     RelationKind
	Label    string // precondition or parameter rule
}

// Relations lists the casts and closed-form operations supported by the distribution package.
var Relations = []Relation{
	{distribution.FamilyBernoulli, distribution.FamilyBinomial, Cast, "n = 1"},
	{distribution.FamilyBinomial, distribution.FamilyBernoulli, Cast, "if n = 1"},
	{distribution.FamilyExponential, distribution.FamilyGamma, Cast, "alpha = 1, beta = 1/rate"},
	{distribution.FamilyGamma, distribution.FamilyExponential, Cast, "if alpha = 1"},
	{distribution.FamilyChiSq, distribution.FamilyGamma, Cast, "alpha = df/2, beta = 2"},
	{distribution.FamilyGamma, distribution.FamilyChiSq, Cast, "if beta = 2"},
	{distribution.FamilyBinomial, distribution.FamilyBinomial, Sum, "equal p"},
	{distribution.FamilyBernoulli, distribution.FamilyBinomial, Sum, "equal p"},
	{distribution.FamilyGamma, distribution.FamilyGamma, Sum, "equal beta"},
	{distribution.FamilyExponential, distribution.FamilyGamma, Sum, "equal rate"},
	{distribution.FamilyChiSq, distribution.FamilyChiSq, Sum, "df1 + df2"},
	{distribution.FamilyPoisson, distribution.FamilyPoisson, Sum, "lambda1 + lambda2"},
	{distribution.FamilyNormal, distribution.FamilyNormal, Sum, "mu1 + mu2"},
	{distribution.FamilyGamma, distribution.FamilyGamma, Scale, "c*beta"},
	{distribution.FamilyExponential, distribution.FamilyExponential, Scale, "rate/c"},
	{distribution.FamilyChiSq, distribution.FamilyGamma, Scale, "beta = 2c"},
	{distribution.FamilyNormal, distribution.FamilyNormal, Scale, "c*mu, |c|*sigma"},
	{distribution.FamilyUniform, distribution.FamilyUniform, Scale, "c*a, c*b"},
}

// RenderFamilyGraph renders the relations between distribution families as an HTML page.
func RenderFamilyGraph() (string, error) {
	g := graphviz.New()
	graph, err := g.Graph()
	if err != nil {
		return "", err
	}
	defer func() {
		graph.Close()
		g.Close()
	}()

	families := distribution.Families()
	nodes := make([]*cgraph.Node, len(families))
	for i, f := range families {
		if nodes[i], err = graph.CreateNode(f.String()); err != nil {
			return "", err
		}
		nodes[i].SetLabel(f.String())
	}
	for i, r := range Relations {
		// parallel edges need distinct names
		e, err := graph.CreateEdge(fmt.Sprintf("r%d", i), nodes[r.From], nodes[r.To])
		if err != nil {
			return "", err
		}
		e.SetLabel(r.Label)
		e.SetColor(relationColors[r.Kind])
	}
	return renderDotGraph(FamilyGraphTitle, g, graph)
}

// renderDotGraph renders a dotgraph as a HTML document.
func renderDotGraph(title string, g *graphviz.Graphviz, graph *cgraph.Graph) (string, error) {
	preamble := strings.Replace(preGraphHtml, "TITLE", title, -1)
	postamble := strings.Replace(postGraphHtml, "TITLE", title, -1)
	var buf bytes.Buffer
	if err := g.Render(graph, "dot", &buf); err != nil {
		return "", err
	}
	return preamble + buf.String() + postamble, nil
}
