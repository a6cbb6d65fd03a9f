// Package render draws snapshots for a terminal: arrays on one line, trees as
// an indented outline, graphs as node and edge tables. It also dumps whole
// traces as YAML.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/algoviz/snapshot"
	"github.com/katalvlaran/algoviz/tree"
)

// Renderer writes frames to a terminal. The zero value is not usable; call New.
type Renderer struct {
	mark    *color.Color
	found   *color.Color
	status  *color.Color
	nodes   map[snapshot.NodeState]*color.Color
	edges   map[snapshot.EdgeState]*color.Color
	colored bool
}

// New returns a Renderer. With colored false no escape codes are written,
// whatever the terminal; with colored true fatih/color decides from the
// output whether to color.
func New(colored bool) *Renderer {
	r := &Renderer{
		mark:   color.New(color.FgYellow, color.Bold),
		found:  color.New(color.FgGreen, color.Bold),
		status: color.New(color.FgCyan),
		nodes: map[snapshot.NodeState]*color.Color{
			snapshot.NodeUnvisited: color.New(color.Reset),
			snapshot.NodeCurrent:   color.New(color.FgYellow, color.Bold),
			snapshot.NodeVisited:   color.New(color.FgCyan),
			snapshot.NodeIncluded:  color.New(color.FgGreen),
		},
		edges: map[snapshot.EdgeState]*color.Color{
			snapshot.EdgeNormal:      color.New(color.Reset),
			snapshot.EdgeConsidered:  color.New(color.FgYellow),
			snapshot.EdgeHighlighted: color.New(color.FgGreen, color.Bold),
		},
		colored: colored,
	}
	if !colored {
		for _, c := range r.all() {
			c.DisableColor()
		}
	}
	return r
}

func (r *Renderer) all() []*color.Color {
	out := []*color.Color{r.mark, r.found, r.status}
	for _, c := range r.nodes {
		out = append(out, c)
	}
	for _, c := range r.edges {
		out = append(out, c)
	}
	return out
}

// Frame writes a header naming the step, then the frame body.
// step is zero-based.
func (r *Renderer) Frame(w io.Writer, step, total int, s snapshot.Snapshot) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Step %d/%d: %s\n", step+1, total, r.status.Sprint(s.Status()))
	r.body(&b, s)
	_, err := io.WriteString(w, b.String())
	return err
}

// Snapshot returns the body of s without a header.
func (r *Renderer) Snapshot(s snapshot.Snapshot) string {
	var b strings.Builder
	r.body(&b, s)
	return b.String()
}

func (r *Renderer) body(b *strings.Builder, s snapshot.Snapshot) {
	switch s := s.(type) {
	case *snapshot.ArraySnapshot:
		r.array(b, s)
	case snapshot.TreeSnapshot:
		r.tree(b, s)
	case *snapshot.GraphSnapshot:
		r.graph(b, s)
	default:
		fmt.Fprintf(b, "<%s frame>\n", s.Kind())
	}
}

// array writes the values on one line; highlighted cells are bracketed.
func (r *Renderer) array(b *strings.Builder, s *snapshot.ArraySnapshot) {
	for i, e := range s.Elements() {
		if i > 0 {
			b.WriteByte(' ')
		}
		v := strconv.Itoa(e.Value)
		if e.Highlighted {
			b.WriteString(r.mark.Sprint("[" + v + "]"))
		} else {
			b.WriteString(v)
		}
	}
	b.WriteByte('\n')
}

func (r *Renderer) tree(b *strings.Builder, s snapshot.TreeSnapshot) {
	root := s.Root()
	if root == nil {
		b.WriteString("(empty)\n")
		return
	}
	r.treeNode(b, s, root, tree.Root, "", "")
}

func (r *Renderer) treeNode(b *strings.Builder, s snapshot.TreeSnapshot, n *tree.Node, p tree.Path, head, tail string) {
	b.WriteString(head)
	if !p.IsRoot() {
		b.WriteString(strings.ToUpper(p.Side()[:1]) + " ")
	}
	b.WriteString(r.treeLabel(s, n, p))
	b.WriteByte('\n')

	type child struct {
		n *tree.Node
		p tree.Path
	}
	var kids []child
	if n.Left() != nil {
		kids = append(kids, child{n.Left(), p.Left()})
	}
	if n.Right() != nil {
		kids = append(kids, child{n.Right(), p.Right()})
	}
	for i, k := range kids {
		branch, cont := "├── ", "│   "
		if i == len(kids)-1 {
			branch, cont = "└── ", "    "
		}
		r.treeNode(b, s, k.n, k.p, tail+branch, tail+cont)
	}
}

func (r *Renderer) treeLabel(s snapshot.TreeSnapshot, n *tree.Node, p tree.Path) string {
	v := strconv.Itoa(n.Value())
	if bs, ok := s.(*snapshot.BSTSnapshot); ok && bs.IsFound(p) {
		return r.found.Sprint("[" + v + "] found")
	}
	if s.IsHighlighted(p) {
		return r.mark.Sprint("[" + v + "]")
	}
	return v
}

func (r *Renderer) graph(b *strings.Builder, s *snapshot.GraphSnapshot) {
	nodes := newTable()
	nodes.AppendHeader(table.Row{"Node", "State"})
	for _, n := range s.Nodes() {
		nodes.AppendRow(table.Row{n.ID, r.nodes[n.State].Sprint(n.State)})
	}

	edges := newTable()
	edges.AppendHeader(table.Row{"Edge", "Weight", "State"})
	for _, e := range s.Edges() {
		edges.AppendRow(table.Row{
			fmt.Sprintf("%d → %d", e.Source, e.Target),
			e.Weight,
			r.edges[e.State].Sprint(e.State),
		})
	}

	b.WriteString(nodes.Render())
	b.WriteString("\n\n")
	b.WriteString(edges.Render())
	b.WriteByte('\n')
}

// Steps writes a table of every frame's status.
func (r *Renderer) Steps(w io.Writer, tr *snapshot.Trace) error {
	t := newTable()
	t.AppendHeader(table.Row{"Step", "Status"})
	for i, s := range tr.Statuses() {
		t.AppendRow(table.Row{i + 1, s})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d frames", tr.Len())})
	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.DrawBorder = false
	return t
}
