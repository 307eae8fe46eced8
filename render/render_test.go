package render_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epigraph/core"
	"github.com/katalvlaran/epigraph/render"
)

// triangleNet is a household {1,2} at 0.8 and an isolated node 3.
func triangleNet(t *testing.T) core.Network[int] {
	t.Helper()
	nodes := []core.Node[int]{core.NewNode(1), core.NewNode(2), core.NewNode(3)}
	g := core.NewGraph(nodes)
	require.NoError(t, g.AddCompleteSubgraph(nodes[:2], 0.8))
	return g.Export()
}

func TestParseFormat(t *testing.T) {
	cases := map[string]render.Format{
		"html":    render.FormatHTML,
		".HTM":    render.FormatHTML,
		"dot":     render.FormatDOT,
		".gv":     render.FormatDOT,
		"Mermaid": render.FormatMermaid,
		".mmd":    render.FormatMermaid,
		"json":    render.FormatJSON,
	}
	for in, want := range cases {
		got, err := render.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := render.ParseFormat("png")
	require.ErrorIs(t, err, render.ErrUnknownFormat)
	assert.Len(t, render.Formats(), 4)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := render.Write(&buf, render.Format("svg"), triangleNet(t))
	require.True(t, errors.Is(err, render.ErrUnknownFormat))
	assert.Zero(t, buf.Len())
}

func TestDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, render.FormatDOT, triangleNet(t),
		render.WithTitle("town"), render.WithRunID("r-1")))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "graph \"town\" {\n"))
	assert.Contains(t, out, "// run r-1")
	assert.Contains(t, out, `bgcolor="#222222";`)
	assert.Contains(t, out, `  "3";`)
	assert.Contains(t, out, `"1" -- "2" [label="0.8", color="white"];`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestMermaid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, render.FormatMermaid, triangleNet(t)))
	out := buf.String()

	assert.Contains(t, out, `title: "Contact graph"`+"\n")
	assert.Contains(t, out, "graph LR\n")
	assert.Contains(t, out, `n31(("1"))`)
	assert.Contains(t, out, `n31 ---|"0.8"| n32`)
	assert.Contains(t, out, "linkStyle 0 stroke:white")
}

func TestMermaid_EscapesTitleAndLabels(t *testing.T) {
	nodes := []core.Node[string]{core.NewNode(`a"b`), core.NewNode("c)|d#")}
	g := core.NewGraph(nodes)
	require.NoError(t, g.AddCompleteSubgraph(nodes, 0.5))

	var buf bytes.Buffer
	require.NoError(t, render.Mermaid(&buf, g.Export(), render.WithTitle("town\n---\ngraph TD")))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "---\n"+`title: "town\n---\ngraph TD"`+"\n---\ngraph LR\n"))
	assert.Equal(t, 2, strings.Count(out, "---\n"), "front matter has exactly two fences")
	assert.Contains(t, out, `(("a#quot;b"))`)
	assert.Contains(t, out, `(("c)|d#35;"))`)
	assert.NotContains(t, out, "graph TD\n")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, render.FormatJSON, triangleNet(t), render.WithRunID("abc")))

	var doc render.Document[int]
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "abc", doc.RunID)
	assert.Equal(t, render.DefaultTitle, doc.Title)
	assert.Equal(t, []int{1, 2, 3}, doc.Network.Nodes)
	require.Len(t, doc.Network.Edges, 1)
	assert.Equal(t, core.NetworkEdge[int]{A: 1, B: 2, Weight: 0.8, Label: "0.8", Color: "white"}, doc.Network.Edges[0])
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, render.FormatHTML, triangleNet(t),
		render.WithRunID("run-7"), render.WithSize("500px", "")))
	out := buf.String()

	assert.Contains(t, out, render.VisNetworkURL)
	assert.Contains(t, out, "<title>Contact graph</title>")
	assert.Contains(t, out, "#222222")
	assert.Contains(t, out, "height: 500px")
	assert.Contains(t, out, "width: 100%")
	assert.Contains(t, out, `data-run-id="run-7"`)
	assert.Contains(t, out, `"label":"0.8"`)
	assert.Contains(t, out, `"from":"1"`)
	assert.Contains(t, out, `"id":"3"`)
}

func TestHTML_EscapesLabels(t *testing.T) {
	nodes := []core.Node[string]{core.NewNode("</script>"), core.NewNode("b")}
	g := core.NewGraph(nodes)
	require.NoError(t, g.AddCompleteSubgraph(nodes, 0.5))

	var buf bytes.Buffer
	require.NoError(t, render.HTML(&buf, g.Export(), render.WithTitle("<b>x</b>")))
	out := buf.String()

	assert.Equal(t, 2, strings.Count(out, "</script>"), "only the two real closing tags")
	assert.Contains(t, out, "<title>&lt;b&gt;x&lt;/b&gt;</title>")
}
