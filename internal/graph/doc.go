// Package graph derives the wiring diagram of an interaction net: the indexed
// nodes of an inet.Net plus the edges between ports that share a label.
//
// # Resolution
//
// Build walks every node pair (i, j) with i <= j and every port k of node i,
// and looks for the lowest port m of node j carrying the same label. A port
// never pairs with itself, and within one node only later ports are
// considered, so a node such as "DUP a a b" yields exactly one edge between
// its ports 0 and 1. Each hit produces one Edge, in loop order:
//
//	for i := range net {
//	    for j := i; j < len(net); j++ {
//	        for k := range net[i].Ports() {
//	            // first m in net[j] with the same label -> Edge{(i,k), (j,m)}
//	        }
//	    }
//	}
//
// In a well-formed net each label occupies exactly two ports and yields one
// edge. A label in one port yields none; a label in three or more ports
// yields several edges sharing a port reference. Build does not reject
// either case. Check reports them as issues for callers that want to.
//
// # Scaling
//
// Build is quadratic in the number of nodes. BuildIndexed groups ports by
// label in one pass and pairs within each group. Both return the same edges
// in the same order.
//
// # Directions
//
// Port directions (inet.PortDirection) are exposed on PortRef for
// renderers. They play no part in resolution.
package graph
