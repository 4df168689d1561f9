package server

import (
	"strings"

	"github.com/vk/inetgraph/internal/engine"
	"github.com/vk/inetgraph/internal/graph"
	"github.com/vk/inetgraph/internal/parser"
	"github.com/vk/inetgraph/internal/render"
)

// GraphPayload is sent with the graph event and by POST /compile.
type GraphPayload struct {
	RequestID string `json:"requestId"`
	render.Document
	DOT    string      `json:"dot"`
	Issues []IssueView `json:"issues"`
	Cached bool        `json:"cached"`
}

// IssueView is one wiring issue. Label is empty for hidden labels.
type IssueView struct {
	Kind   string   `json:"kind"`
	Label  string   `json:"label,omitempty"`
	Hidden bool     `json:"hidden,omitempty"`
	Ports  []string `json:"ports"`
}

// ErrorView is one malformed node.
type ErrorView struct {
	Token   string `json:"token"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// ParseErrorPayload is sent with the parse_error event. Graph still holds
// everything that did parse.
type ParseErrorPayload struct {
	RequestID string       `json:"requestId"`
	Errors    []ErrorView  `json:"errors"`
	Graph     GraphPayload `json:"graph"`
}

func newGraphPayload(id string, res *engine.Result, cached bool, opts render.Options) (GraphPayload, error) {
	var dot strings.Builder
	if err := render.DOT(&dot, res.Graph, opts); err != nil {
		return GraphPayload{}, err
	}
	return GraphPayload{
		RequestID: id,
		Document:  render.NewDocument(res.Graph, opts.Name),
		DOT:       dot.String(),
		Issues:    newIssueViews(res.Issues),
		Cached:    cached,
	}, nil
}

func newIssueViews(issues []graph.Issue) []IssueView {
	out := make([]IssueView, len(issues))
	for i, is := range issues {
		v := IssueView{Kind: is.Kind.String(), Ports: make([]string, len(is.Ports))}
		if is.Label.IsHidden() {
			v.Hidden = true
		} else {
			v.Label = is.Label.Name()
		}
		for n, p := range is.Ports {
			v.Ports[n] = p.String()
		}
		out[i] = v
	}
	return out
}

func newErrorViews(err error) []ErrorView {
	malformed := parser.MalformedNodes(err)
	if len(malformed) == 0 {
		return []ErrorView{{Message: err.Error()}}
	}
	out := make([]ErrorView, len(malformed))
	for i, m := range malformed {
		out[i] = ErrorView{
			Token:   m.Token,
			Line:    m.Range.Start.Line,
			Column:  m.Range.Start.Column,
			Message: m.Error(),
		}
	}
	return out
}
