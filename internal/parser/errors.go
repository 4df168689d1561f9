package parser

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// MalformedNodeError reports an upper-case word in declaration position that
// is not one of the known keywords.
type MalformedNodeError struct {
	// Token is the offending keyword as written.
	Token string
	// Range locates the token in the source.
	Range hcl.Range
}

// Error implements the error interface for MalformedNodeError.
func (e *MalformedNodeError) Error() string {
	where := fmt.Sprintf("%d:%d", e.Range.Start.Line, e.Range.Start.Column)
	if e.Range.Filename != "" {
		where = e.Range.Filename + ":" + where
	}
	return fmt.Sprintf("%s: malformed node: unknown keyword %q", where, e.Token)
}

// Diagnostic converts the error into an hcl.Diagnostic, for callers that
// already report source problems through hcl.Diagnostics.
func (e *MalformedNodeError) Diagnostic() *hcl.Diagnostic {
	rng := e.Range
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Malformed node",
		Detail:   fmt.Sprintf("%q is not a node keyword; expected one of ROOT, ERA, DUP, LAM, APP.", e.Token),
		Subject:  &rng,
	}
}

// Diagnostics converts every MalformedNodeError carried by err, in source
// order.
func Diagnostics(err error) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, m := range MalformedNodes(err) {
		diags = append(diags, m.Diagnostic())
	}
	return diags
}

// MalformedNodes flattens err into the MalformedNodeErrors it carries, in
// source order. It returns nil when err holds none.
func MalformedNodes(err error) []*MalformedNodeError {
	if err == nil {
		return nil
	}
	if m, ok := err.(*MalformedNodeError); ok {
		return []*MalformedNodeError{m}
	}
	var out []*MalformedNodeError
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			out = append(out, MalformedNodes(e)...)
		}
	case interface{ Unwrap() error }:
		out = MalformedNodes(u.Unwrap())
	}
	return out
}
