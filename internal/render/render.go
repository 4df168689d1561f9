package render

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/vk/inetgraph/internal/graph"
	"gopkg.in/yaml.v3"
)

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatDOT  Format = "dot"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatDOT}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("unknown output format %q", s)
	}
	return f, nil
}

// Options tune the output.
type Options struct {
	// ShowLabels prints explicit labels on edges in the dot and text
	// formats. Hidden labels are never printed.
	ShowLabels bool
	// Name is the document name, used as the graph title.
	Name string
}

// Render writes g to w in format f.
func Render(w io.Writer, g *graph.Graph, f Format, opts Options) error {
	switch f {
	case FormatText:
		return Text(w, g, opts)
	case FormatJSON:
		return JSON(w, g, opts)
	case FormatYAML:
		return YAML(w, g, opts)
	case FormatDOT:
		return DOT(w, g, opts)
	}
	return fmt.Errorf("unknown output format %q", f)
}

// JSON writes the node and edge lists as indented JSON.
func JSON(w io.Writer, g *graph.Graph, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(NewDocument(g, opts.Name)); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// YAML writes the node and edge lists as a YAML document.
func YAML(w io.Writer, g *graph.Graph, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(g, opts.Name)); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
