// SPDX-License-Identifier: MIT
// Package render turns a core.Network snapshot into files for humans and
// tools: an interactive HTML page (vis-network), Graphviz DOT, Mermaid and
// JSON.
//
// Every renderer is a pure function of (Network, Options) and writes to an
// io.Writer, so output is byte-for-byte reproducible for a fixed graph.
//
//	net := g.Export()
//	err := render.Write(f, render.FormatHTML, net, render.WithTitle("households"))
package render
