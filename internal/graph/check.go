package graph

import (
	"fmt"
	"strings"

	"github.com/vk/inetgraph/internal/inet"
)

// IssueKind classifies a wiring problem found by Check.
type IssueKind int

const (
	// DanglingPort is a label that occurs in a single port, leaving it open.
	DanglingPort IssueKind = iota
	// OverconnectedLabel is a label that occurs in more than two ports.
	OverconnectedLabel
)

func (k IssueKind) String() string {
	if k == OverconnectedLabel {
		return "overconnected label"
	}
	return "dangling port"
}

// Issue is one wiring problem: the label and every port it occupies.
type Issue struct {
	Kind  IssueKind
	Label inet.Label
	Ports []PortRef
}

// Error implements the error interface, so a caller may treat issues as
// failures.
func (i Issue) Error() string {
	refs := make([]string, len(i.Ports))
	for n, r := range i.Ports {
		refs[n] = r.String()
	}
	return fmt.Sprintf("%s %q at %s", i.Kind, i.Label, strings.Join(refs, ", "))
}

// Check reports labels that do not occupy exactly two ports, in order of the
// label's first appearance. A nil result means every port has exactly one
// partner.
func Check(g *Graph) []Issue {
	var issues []Issue
	for _, grp := range groupPorts(g.net) {
		switch {
		case len(grp.refs) == 1:
			issues = append(issues, Issue{Kind: DanglingPort, Label: grp.label, Ports: grp.refs})
		case len(grp.refs) > 2:
			issues = append(issues, Issue{Kind: OverconnectedLabel, Label: grp.label, Ports: grp.refs})
		}
	}
	return issues
}
