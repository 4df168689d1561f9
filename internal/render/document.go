package render

import (
	"github.com/vk/inetgraph/internal/graph"
)

// NodeView is the exported shape of one node.
type NodeView struct {
	Index int    `json:"index" yaml:"index"`
	Kind  string `json:"kind" yaml:"kind"`
}

// EdgeView is the exported shape of one edge. Label is empty for hidden
// labels, which are flagged instead so they are never displayed.
type EdgeView struct {
	FromIndex int    `json:"fromIndex" yaml:"fromIndex"`
	FromPort  int    `json:"fromPort" yaml:"fromPort"`
	ToIndex   int    `json:"toIndex" yaml:"toIndex"`
	ToPort    int    `json:"toPort" yaml:"toPort"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
	Hidden    bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

// Document is the node and edge lists of a graph.
type Document struct {
	Name  string     `json:"name,omitempty" yaml:"name,omitempty"`
	Nodes []NodeView `json:"nodes" yaml:"nodes"`
	Edges []EdgeView `json:"edges" yaml:"edges"`
}

// NewDocument converts g into its exported shape. Slices are never nil so
// that empty graphs encode as empty lists.
func NewDocument(g *graph.Graph, name string) Document {
	doc := Document{
		Name:  name,
		Nodes: make([]NodeView, len(g.Nodes)),
		Edges: make([]EdgeView, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		doc.Nodes[i] = NodeView{Index: n.Index, Kind: n.Kind.String()}
	}
	for i, e := range g.Edges {
		v := EdgeView{
			FromIndex: e.From.Node,
			FromPort:  e.From.Port,
			ToIndex:   e.To.Node,
			ToPort:    e.To.Port,
		}
		if e.Label().IsHidden() {
			v.Hidden = true
		} else {
			v.Label = e.Label().Name()
		}
		doc.Edges[i] = v
	}
	return doc
}
