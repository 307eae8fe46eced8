// SPDX-License-Identifier: MIT
// File: html.go
// Role: standalone interactive HTML page backed by vis-network.
// AI-HINT (file):
//   - html/template JSON-encodes values placed in <script>, so node labels
//     cannot break out of the script context.

package render

import (
	"cmp"
	"fmt"
	"html/template"
	"io"

	"github.com/katalvlaran/epigraph/core"
)

// VisNetworkURL is the script loaded by the HTML page.
const VisNetworkURL = "https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"

type visNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
}

type visEdge struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Label string  `json:"label"`
	Title string  `json:"title"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type htmlPage struct {
	Title      string
	RunID      string
	Background string
	FontColor  string
	Height     string
	Width      string
	Script     string
	Nodes      []visNode
	Edges      []visEdge
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.Script}}"></script>
<style>
body { margin: 0; background-color: {{.Background}}; }
#network { width: {{.Width}}; height: {{.Height}}; background-color: {{.Background}}; }
</style>
</head>
<body>
<div id="network"{{if .RunID}} data-run-id="{{.RunID}}"{{end}}></div>
<script>
var nodes = new vis.DataSet({{.Nodes}});
var edges = new vis.DataSet({{.Edges}});
var options = {
  nodes: { shape: "dot", size: 10, font: { color: {{.FontColor}} } },
  edges: { font: { color: {{.FontColor}}, strokeWidth: 0 }, smooth: false },
  physics: { stabilization: true }
};
new vis.Network(document.getElementById("network"), { nodes: nodes, edges: edges }, options);
</script>
</body>
</html>
`))

// HTML writes a self-contained page drawing net with vis-network: dark
// background, weight labels on edges, one uniform edge color.
func HTML[K cmp.Ordered](w io.Writer, net core.Network[K], opts ...Option) error {
	o := newOptions(opts...)
	page := htmlPage{
		Title:      o.title,
		RunID:      o.runID,
		Background: o.background,
		FontColor:  o.fontColor,
		Height:     o.height,
		Width:      o.width,
		Script:     VisNetworkURL,
		Nodes:      make([]visNode, len(net.Nodes)),
		Edges:      make([]visEdge, len(net.Edges)),
	}
	for i, id := range net.Nodes {
		s := fmt.Sprint(id)
		page.Nodes[i] = visNode{ID: s, Label: s, Title: s}
	}
	for i, e := range net.Edges {
		page.Edges[i] = visEdge{
			From:  fmt.Sprint(e.A),
			To:    fmt.Sprint(e.B),
			Label: e.Label,
			Title: e.Label,
			Value: e.Weight,
			Color: e.Color,
		}
	}

	if err := pageTmpl.Execute(w, page); err != nil {
		return fmt.Errorf("render: HTML: %w", err)
	}
	return nil
}
