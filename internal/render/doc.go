// Package render writes a graph in one of the export formats: Graphviz dot,
// JSON, YAML, or a styled text summary. Hidden labels are never printed by
// any format.
package render
