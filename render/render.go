// SPDX-License-Identifier: MIT
// File: render.go
// Role: Write dispatcher plus the DOT, Mermaid and JSON renderers.
// Determinism:
//   - Output follows Network order (nodes by ID, edges by (A, B)).

package render

import (
	"bufio"
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/epigraph/core"
)

// Write renders net in format f to w.
func Write[K cmp.Ordered](w io.Writer, f Format, net core.Network[K], opts ...Option) error {
	switch f {
	case FormatHTML:
		return HTML(w, net, opts...)
	case FormatDOT:
		return DOT(w, net, opts...)
	case FormatMermaid:
		return Mermaid(w, net, opts...)
	case FormatJSON:
		return JSON(w, net, opts...)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Document is the JSON envelope.
type Document[K cmp.Ordered] struct {
	RunID   string          `json:"run_id,omitempty"`
	Title   string          `json:"title"`
	Network core.Network[K] `json:"network"`
}

// JSON writes net as an indented Document.
func JSON[K cmp.Ordered](w io.Writer, net core.Network[K], opts ...Option) error {
	o := newOptions(opts...)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document[K]{RunID: o.runID, Title: o.title, Network: net}); err != nil {
		return fmt.Errorf("render: JSON: %w", err)
	}
	return nil
}

// DOT writes net as an undirected Graphviz graph with labeled, colored edges.
func DOT[K cmp.Ordered](w io.Writer, net core.Network[K], opts ...Option) error {
	o := newOptions(opts...)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "graph %s {\n", strconv.Quote(o.title))
	if o.runID != "" {
		fmt.Fprintf(bw, "  // run %s\n", o.runID)
	}
	fmt.Fprintf(bw, "  bgcolor=%s;\n", strconv.Quote(o.background))
	fmt.Fprintf(bw, "  node [shape=circle, color=%s, fontcolor=%s];\n", strconv.Quote(o.fontColor), strconv.Quote(o.fontColor))
	fmt.Fprintf(bw, "  edge [fontcolor=%s];\n\n", strconv.Quote(o.fontColor))

	for _, id := range net.Nodes {
		fmt.Fprintf(bw, "  %s;\n", quoteID(id))
	}
	if len(net.Edges) > 0 {
		bw.WriteString("\n")
	}
	for _, e := range net.Edges {
		fmt.Fprintf(bw, "  %s -- %s [label=%s, color=%s];\n",
			quoteID(e.A), quoteID(e.B), strconv.Quote(e.Label), strconv.Quote(e.Color))
	}
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: DOT: %w", err)
	}
	return nil
}

// Mermaid writes net as a Mermaid flowchart with weight-labeled links.
func Mermaid[K cmp.Ordered](w io.Writer, net core.Network[K], opts ...Option) error {
	o := newOptions(opts...)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "---\ntitle: %s\n---\n", strconv.Quote(o.title))
	bw.WriteString("graph LR\n")
	for _, id := range net.Nodes {
		fmt.Fprintf(bw, "    %s((%s))\n", mermaidID(id), mermaidLabel(fmt.Sprint(id)))
	}
	for i, e := range net.Edges {
		fmt.Fprintf(bw, "    %s ---|%s| %s\n", mermaidID(e.A), mermaidLabel(e.Label), mermaidID(e.B))
		fmt.Fprintf(bw, "    linkStyle %d stroke:%s\n", i, e.Color)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: Mermaid: %w", err)
	}
	return nil
}

func quoteID[K cmp.Ordered](id K) string {
	return strconv.Quote(fmt.Sprint(id))
}

// mermaidEscaper maps characters that end a Mermaid label to entity codes.
var mermaidEscaper = strings.NewReplacer(
	"#", "#35;",
	`"`, "#quot;",
	"\n", " ",
	"\r", " ",
)

// mermaidLabel renders s as a quoted Mermaid label.
func mermaidLabel(s string) string {
	return `"` + mermaidEscaper.Replace(s) + `"`
}

// mermaidID derives a safe node identifier: n + hex of the label bytes.
func mermaidID[K cmp.Ordered](id K) string {
	return fmt.Sprintf("n%x", fmt.Sprint(id))
}
