package parser

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/vk/inetgraph/internal/ctxlog"
	"github.com/vk/inetgraph/internal/inet"
)

// keywordShape matches words that look like a node keyword: two or more
// upper-case letters. Single letters are common labels and never qualify.
// Such a word is only a malformed declaration when a port token follows it.
var keywordShape = regexp.MustCompile(`^[A-Z]{2,}$`)

// Options tunes a parse.
type Options struct {
	// Filename is recorded in error ranges. It may be empty.
	Filename string
}

// Parse parses src with default options. See ParseContext.
func Parse(src string) (inet.Net, error) {
	return ParseContext(context.Background(), src, Options{})
}

// ParseContext parses src into a Net. It always returns every node that did
// parse; the error, if any, joins one *MalformedNodeError per offending token
// and can be inspected with errors.As.
func ParseContext(ctx context.Context, src string, opts Options) (inet.Net, error) {
	logger := ctxlog.FromContext(ctx)
	s := &state{logger: logger}

	offset := 0
	for i, line := range strings.Split(src, "\n") {
		s.scanLine(tokenize(opts.Filename, line, i+1, offset))
		offset += len(line) + 1
	}

	logger.Debug("Parse finished.", "nodes", len(s.net), "hidden_labels", s.nextHidden, "errors", len(s.errs))
	return s.net, errors.Join(s.errs...)
}

// state is the mutable scope of a single parse. The hidden label counter
// lives here and nowhere else.
type state struct {
	logger     *slog.Logger
	nextHidden int
	net        inet.Net
	errs       []error
}

// fresh returns the next unused hidden label.
func (s *state) fresh() inet.Label {
	l := inet.Hidden(s.nextHidden)
	s.nextHidden++
	return l
}

func (s *state) scanLine(toks []token) {
	for i := 0; i < len(toks); {
		t := toks[i]
		if t.kind != tokenWord {
			i++
			continue
		}

		if kind, ok := inet.KindFromKeyword(t.text); ok {
			arity := kind.Arity()
			run := portRun(toks[i+1:], arity)
			if run == arity {
				s.declare(kind, toks[i+1:i+1+arity])
			} else {
				s.logger.Debug("Dropping incomplete declaration.", "keyword", t.text, "line", t.rng.Start.Line, "ports", run, "want", arity)
			}
			i += 1 + run
			continue
		}

		if keywordShape.MatchString(t.text) && portRun(toks[i+1:], 1) == 1 {
			s.errs = append(s.errs, &MalformedNodeError{Token: t.text, Range: t.rng})
			i++
			for i < len(toks) && toks[i].isPort() && !isKeyword(toks[i]) {
				i++
			}
			continue
		}

		i++
	}
}

// declare appends a node of the given kind, replacing wildcard ports with
// hidden labels and placing their Erase terminators around the node.
func (s *state) declare(kind inet.Kind, ports []token) {
	labels := make([]inet.Label, len(ports))
	var before, after inet.Net
	for p, t := range ports {
		if t.kind != tokenWildcard {
			labels[p] = inet.Explicit(t.text)
			continue
		}
		l := s.fresh()
		labels[p] = l
		if inet.PortDirection(kind, p) == inet.Up {
			before = append(before, inet.Erase{Label: l})
		} else {
			after = append(after, inet.Erase{Label: l})
		}
	}

	node, err := inet.NewNode(kind, labels...)
	if err != nil {
		// Unreachable: portRun guarantees the arity.
		panic(err)
	}

	s.net = append(s.net, before...)
	s.net = append(s.net, node)
	s.net = append(s.net, after...)
}

// portRun counts the leading port tokens of toks, stopping at limit.
func portRun(toks []token, limit int) int {
	n := 0
	for n < len(toks) && n < limit && toks[n].isPort() {
		n++
	}
	return n
}

func isKeyword(t token) bool {
	if t.kind != tokenWord {
		return false
	}
	_, ok := inet.KindFromKeyword(t.text)
	return ok
}
