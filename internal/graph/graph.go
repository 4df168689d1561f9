package graph

import (
	"context"
	"fmt"

	"github.com/vk/inetgraph/internal/ctxlog"
	"github.com/vk/inetgraph/internal/inet"
)

// Node is a vertex of the graph: a net node identified by its index.
type Node struct {
	Index int
	Kind  inet.Kind
}

// PortRef identifies one port of one node, together with its label.
type PortRef struct {
	Node  int
	Port  int
	Label inet.Label
}

// String renders the reference as "<node>.p<port>", e.g. "3.p1".
func (r PortRef) String() string {
	return fmt.Sprintf("%d.p%d", r.Node, r.Port)
}

// Edge is an undirected wire between two ports. From is the port found
// first in scan order.
type Edge struct {
	From PortRef
	To   PortRef
}

// Label returns the label shared by both ends.
func (e Edge) Label() inet.Label {
	return e.From.Label
}

// Graph is the read-only wiring diagram of a Net.
type Graph struct {
	Nodes []Node
	Edges []Edge

	net inet.Net
}

// Net returns the net the graph was built from.
func (g *Graph) Net() inet.Net {
	return g.net
}

// Direction returns the logical direction of the referenced port.
func (g *Graph) Direction(r PortRef) inet.Direction {
	return inet.PortDirection(g.Nodes[r.Node].Kind, r.Port)
}

// EdgesOf returns the edges touching node index i, in edge order.
func (g *Graph) EdgesOf(i int) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.From.Node == i || e.To.Node == i {
			out = append(out, e)
		}
	}
	return out
}

// Build resolves the net's labels into edges. See the package documentation
// for the scan order.
func Build(net inet.Net) *Graph {
	g := newGraph(net)
	for i := range net {
		from := net[i].Ports()
		for j := i; j < len(net); j++ {
			to := net[j].Ports()
			for k, label := range from {
				start := 0
				if i == j {
					start = k + 1
				}
				for m := start; m < len(to); m++ {
					if to[m] == label {
						g.Edges = append(g.Edges, Edge{
							From: PortRef{Node: i, Port: k, Label: label},
							To:   PortRef{Node: j, Port: m, Label: label},
						})
						break
					}
				}
			}
		}
	}
	return g
}

// BuildContext is Build with debug logging through the context's logger.
func BuildContext(ctx context.Context, net inet.Net) *Graph {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "node_count", len(net))
	g := Build(net)
	logger.Debug("Build: Graph construction finished.", "node_count", len(g.Nodes), "edge_count", len(g.Edges))
	return g
}

func newGraph(net inet.Net) *Graph {
	g := &Graph{
		Nodes: make([]Node, len(net)),
		net:   net,
	}
	for i, n := range net {
		g.Nodes[i] = Node{Index: i, Kind: n.Kind()}
	}
	return g
}
