package inet

import "fmt"

// Node is one agent of an interaction net. The set of implementations is
// closed: Root, Erase, Dup, Lam and App.
type Node interface {
	// Kind returns the node's kind.
	Kind() Kind
	// Ports returns a copy of the node's port labels in port order.
	Ports() []Label

	sealed()
}

// Root is the terminator marking the net's result.
type Root struct {
	Label Label
}

// Erase is the terminator that discards its partner.
type Erase struct {
	Label Label
}

// Dup is the duplicator. Port 0 is principal and points up.
type Dup struct {
	Labels [3]Label
}

// Lam is the abstraction. Port 0 is principal and points up.
type Lam struct {
	Labels [3]Label
}

// App is the application. Port 0 is principal and points down.
type App struct {
	Labels [3]Label
}

func (Root) Kind() Kind  { return KindRoot }
func (Erase) Kind() Kind { return KindErase }
func (Dup) Kind() Kind   { return KindDup }
func (Lam) Kind() Kind   { return KindLam }
func (App) Kind() Kind   { return KindApp }

func (n Root) Ports() []Label  { return []Label{n.Label} }
func (n Erase) Ports() []Label { return []Label{n.Label} }
func (n Dup) Ports() []Label   { return n.Labels[:] }
func (n Lam) Ports() []Label   { return n.Labels[:] }
func (n App) Ports() []Label   { return n.Labels[:] }

func (Root) sealed()  {}
func (Erase) sealed() {}
func (Dup) sealed()   {}
func (Lam) sealed()   {}
func (App) sealed()   {}

// NewNode builds a node of the given kind. It fails when the number of ports
// does not match the kind's arity.
func NewNode(kind Kind, ports ...Label) (Node, error) {
	if want := kind.Arity(); want == 0 || len(ports) != want {
		return nil, fmt.Errorf("node %s takes %d ports, got %d", kind, kind.Arity(), len(ports))
	}
	switch kind {
	case KindRoot:
		return Root{Label: ports[0]}, nil
	case KindErase:
		return Erase{Label: ports[0]}, nil
	case KindDup:
		return Dup{Labels: [3]Label(ports)}, nil
	case KindLam:
		return Lam{Labels: [3]Label(ports)}, nil
	default:
		return App{Labels: [3]Label(ports)}, nil
	}
}

// Net is an ordered sequence of nodes. A node's position is its index.
type Net []Node

// Labels returns every label of the net in node-then-port order, duplicates
// included.
func (n Net) Labels() []Label {
	var out []Label
	for _, node := range n {
		out = append(out, node.Ports()...)
	}
	return out
}

// Format writes a node back in notation form, e.g. "APP x #0 y". Hidden
// labels use their "#" form, so the result only round-trips for nets without
// wildcards.
func Format(n Node) string {
	s := n.Kind().Keyword()
	for _, l := range n.Ports() {
		s += " " + l.String()
	}
	return s
}
