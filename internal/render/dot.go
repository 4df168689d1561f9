package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/inetgraph/internal/graph"
	"github.com/vk/inetgraph/internal/inet"
)

const (
	singlePortRow = `<TR><TD><TABLE BORDER="0" CELLBORDER="0" CELLSPACING="0"><TR>` +
		`<TD HEIGHT="1" WIDTH="1" FIXEDSIZE="TRUE"></TD>` +
		`<TD PORT="p0" HEIGHT="1" WIDTH="1" FIXEDSIZE="TRUE"></TD>` +
		`<TD HEIGHT="1" WIDTH="4" FIXEDSIZE="TRUE"></TD>` +
		`</TR></TABLE></TD></TR>`
	doublePortRow = `<TR><TD><TABLE BORDER="0" CELLBORDER="0" CELLSPACING="0"><TR>` +
		`<TD HEIGHT="1" WIDTH="15" FIXEDSIZE="TRUE"></TD>` +
		`<TD PORT="p1" HEIGHT="1" WIDTH="1" FIXEDSIZE="TRUE"></TD>` +
		`<TD HEIGHT="1" WIDTH="33" FIXEDSIZE="TRUE"></TD>` +
		`<TD PORT="p2" HEIGHT="1" WIDTH="1" FIXEDSIZE="TRUE"></TD>` +
		`<TD HEIGHT="1" WIDTH="15" FIXEDSIZE="TRUE"></TD>` +
		`</TR></TABLE></TD></TR>`
	captionRowFormat = `<TR><TD HEIGHT="24" FIXEDSIZE="FALSE">%s</TD></TR>`
)

// captions marks each combinator in the middle of its shape.
var captions = map[inet.Kind]string{
	inet.KindDup: "&delta;",
	inet.KindLam: "&lambda;",
	inet.KindApp: "@",
}

// NodeName is the DOT identifier of n, e.g. "app_3".
func NodeName(n graph.Node) string {
	return strings.ToLower(n.Kind.String()) + "_" + strconv.Itoa(n.Index)
}

// DOT writes g as a Graphviz digraph. Combinators are HTML tables whose
// principal port sits on the side given by its direction; terminators are a
// circle for Root and an underline for Erase.
func DOT(w io.Writer, g *graph.Graph, opts Options) error {
	var b strings.Builder

	name := "G"
	if opts.Name != "" {
		name = quoteID(opts.Name)
	}
	fmt.Fprintf(&b, "digraph %s {\n", name)
	b.WriteString("  graph [splines=true, center=true]\n")
	b.WriteString("  node [shape=none]\n\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "  %s %s\n", NodeName(n), nodeAttrs(n.Kind))
	}

	b.WriteString("\n  edge [dir=none]\n\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  %s -> %s", endpoint(g, e.From), endpoint(g, e.To))
		if opts.ShowLabels && !e.Label().IsHidden() {
			fmt.Fprintf(&b, " [label=%s]", quoteID("  "+e.Label().Name()))
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func nodeAttrs(k inet.Kind) string {
	switch k {
	case inet.KindRoot:
		return `[shape=circle, label="", width=0.3]`
	case inet.KindErase:
		return `[shape=underline, label="", height=0, width=0.3]`
	}

	caption := fmt.Sprintf(captionRowFormat, captions[k])
	rows := singlePortRow + caption + doublePortRow
	if inet.PortDirection(k, 0) == inet.Down {
		rows = doublePortRow + caption + singlePortRow
	}
	return `[label=<<TABLE BORDER="1" CELLBORDER="0" CELLSPACING="0">` + rows + `</TABLE>>]`
}

// endpoint addresses a port; terminators have a single anonymous port.
func endpoint(g *graph.Graph, r graph.PortRef) string {
	n := g.Nodes[r.Node]
	if n.Kind.Arity() == 1 {
		return NodeName(n)
	}
	return NodeName(n) + ":p" + strconv.Itoa(r.Port)
}

var idEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quoteID writes s as a dot quoted string. Only the quote and backslash are
// escaped; every other byte is passed through as is.
func quoteID(s string) string {
	return `"` + idEscaper.Replace(s) + `"`
}
