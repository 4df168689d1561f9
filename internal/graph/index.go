package graph

import (
	"cmp"
	"slices"

	"github.com/vk/inetgraph/internal/inet"
)

// group is every port carrying one label, in node-then-port order.
type group struct {
	label inet.Label
	refs  []PortRef
}

// groupPorts indexes the net's ports by label. Groups are returned in order
// of the label's first appearance.
func groupPorts(net inet.Net) []group {
	index := make(map[inet.Label]int)
	var groups []group
	for i, n := range net {
		for k, l := range n.Ports() {
			ref := PortRef{Node: i, Port: k, Label: l}
			gi, ok := index[l]
			if !ok {
				gi = len(groups)
				index[l] = gi
				groups = append(groups, group{label: l})
			}
			groups[gi].refs = append(groups[gi].refs, ref)
		}
	}
	return groups
}

// BuildIndexed produces the same graph as Build in one pass over the ports
// plus a sort of the edges. Use it for large nets.
func BuildIndexed(net inet.Net) *Graph {
	g := newGraph(net)
	for _, grp := range groupPorts(net) {
		refs := grp.refs
		for p, from := range refs {
			// Within the same node only the next port counts.
			if p+1 < len(refs) && refs[p+1].Node == from.Node {
				g.Edges = append(g.Edges, Edge{From: from, To: refs[p+1]})
			}
			// Against every later node, its lowest port counts.
			for q := p + 1; q < len(refs); q++ {
				to := refs[q]
				if to.Node > from.Node && refs[q-1].Node != to.Node {
					g.Edges = append(g.Edges, Edge{From: from, To: to})
				}
			}
		}
	}

	slices.SortFunc(g.Edges, func(x, y Edge) int {
		return cmp.Or(
			cmp.Compare(x.From.Node, y.From.Node),
			cmp.Compare(x.To.Node, y.To.Node),
			cmp.Compare(x.From.Port, y.From.Port),
		)
	})
	return g
}
