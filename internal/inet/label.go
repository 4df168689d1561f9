package inet

import "strconv"

// Label names the wire a port is attached to. Two ports sharing a label are
// connected. A label is either explicit (written by the user) or hidden
// (generated by the parser for a wildcard port). Labels are comparable with
// ==, and a hidden label never equals an explicit one.
type Label struct {
	name   string
	id     int
	hidden bool
}

// Explicit returns the user-visible label name.
func Explicit(name string) Label {
	return Label{name: name}
}

// Hidden returns the generated label with the given id.
func Hidden(id int) Label {
	return Label{id: id, hidden: true}
}

// IsHidden reports whether the label was generated by the parser.
func (l Label) IsHidden() bool {
	return l.hidden
}

// Name returns the explicit identifier, or "" for a hidden label.
func (l Label) Name() string {
	return l.name
}

// HiddenID returns the generated id and true for a hidden label.
func (l Label) HiddenID() (int, bool) {
	return l.id, l.hidden
}

// String renders explicit labels verbatim and hidden labels as "#<id>". The
// "#" form is for logs and debugging; it is not valid notation.
func (l Label) String() string {
	if l.hidden {
		return "#" + strconv.Itoa(l.id)
	}
	return l.name
}
