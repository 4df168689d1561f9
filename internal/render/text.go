package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vk/inetgraph/internal/graph"
	"github.com/vk/inetgraph/internal/inet"
)

type textStyles struct {
	title   lipgloss.Style
	section lipgloss.Style
	kind    map[inet.Kind]lipgloss.Style
	port    lipgloss.Style
	label   lipgloss.Style
}

// newTextStyles binds the styles to w so that colors are only emitted when w
// is a terminal.
func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF00FF")),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF")),
		kind: map[inet.Kind]lipgloss.Style{
			inet.KindRoot:  r.NewStyle().Foreground(lipgloss.Color("#00FF00")),
			inet.KindErase: r.NewStyle().Foreground(lipgloss.Color("#888888")),
			inet.KindDup:   r.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
			inet.KindLam:   r.NewStyle().Foreground(lipgloss.Color("#FF8800")),
			inet.KindApp:   r.NewStyle().Foreground(lipgloss.Color("#0088FF")),
		},
		port:  r.NewStyle(),
		label: r.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888")),
	}
}

// Text writes a human readable summary: the node list, then one line per
// edge with its port directions.
func Text(w io.Writer, g *graph.Graph, opts Options) error {
	st := newTextStyles(w)
	var b strings.Builder

	title := opts.Name
	if title == "" {
		title = "net"
	}
	b.WriteString(st.title.Render(title) + "\n")

	fmt.Fprintf(&b, "%s\n", st.section.Render(fmt.Sprintf("nodes (%d)", len(g.Nodes))))
	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "  %3d  %s\n", n.Index, st.kind[n.Kind].Render(n.Kind.String()))
	}

	fmt.Fprintf(&b, "%s\n", st.section.Render(fmt.Sprintf("edges (%d)", len(g.Edges))))
	for _, e := range g.Edges {
		line := fmt.Sprintf("  %s %-4s -- %s %-4s",
			st.port.Render(e.From.String()), g.Direction(e.From),
			st.port.Render(e.To.String()), g.Direction(e.To))
		if opts.ShowLabels && !e.Label().IsHidden() {
			line += "  " + st.label.Render(e.Label().Name())
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
