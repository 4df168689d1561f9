// Package inet defines the data model shared by the notation parser and the
// graph builder: node kinds, port labels, nodes and nets.
//
// A Net is an ordered list of nodes. A node's position in the list is its
// index, which is the node's identity in the derived graph. Every node kind
// has a fixed arity that is encoded in its Go type, so a Dup can never be
// built with two ports.
//
// Ports carry a logical direction (up, down or any) that renderers and the
// parser's terminator placement consult. Edge resolution ignores it.
package inet
