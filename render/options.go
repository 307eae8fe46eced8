// SPDX-License-Identifier: MIT
// File: options.go
// Role: Format enum and rendering options.

package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects a renderer.
type Format string

const (
	FormatHTML    Format = "html"
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
	FormatJSON    Format = "json"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatHTML, FormatDOT, FormatMermaid, FormatJSON}
}

// ParseFormat maps a case-insensitive name (or file extension) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "html", "htm":
		return FormatHTML, nil
	case "dot", "gv":
		return FormatDOT, nil
	case "mermaid", "mmd":
		return FormatMermaid, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Defaults mirror a dark full-width network view.
const (
	DefaultBackground = "#222222"
	DefaultFontColor  = "white"
	DefaultHeight     = "750px"
	DefaultWidth      = "100%"
	DefaultTitle      = "Contact graph"
)

// Option customizes rendering.
type Option func(*options)

type options struct {
	title      string
	background string
	fontColor  string
	height     string
	width      string
	runID      string
}

func newOptions(opts ...Option) options {
	o := options{
		title:      DefaultTitle,
		background: DefaultBackground,
		fontColor:  DefaultFontColor,
		height:     DefaultHeight,
		width:      DefaultWidth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTitle sets the page or graph title.
func WithTitle(t string) Option {
	return func(o *options) {
		if t != "" {
			o.title = t
		}
	}
}

// WithBackground sets the canvas background color.
func WithBackground(c string) Option {
	return func(o *options) {
		if c != "" {
			o.background = c
		}
	}
}

// WithFontColor sets the label color.
func WithFontColor(c string) Option {
	return func(o *options) {
		if c != "" {
			o.fontColor = c
		}
	}
}

// WithSize sets the canvas height and width as CSS lengths.
func WithSize(height, width string) Option {
	return func(o *options) {
		if height != "" {
			o.height = height
		}
		if width != "" {
			o.width = width
		}
	}
}

// WithRunID stamps the output with the identifier of the producing run.
func WithRunID(id string) Option {
	return func(o *options) { o.runID = id }
}
