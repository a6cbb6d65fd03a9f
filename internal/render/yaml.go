package render

import (
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/snapshot"
	"github.com/katalvlaran/algoviz/tree"
)

type traceDoc struct {
	Kind   string     `yaml:"kind"`
	Frames []frameDoc `yaml:"frames"`
}

type frameDoc struct {
	Step   int    `yaml:"step"`
	Status string `yaml:"status"`

	Values    []int `yaml:"values,omitempty"`
	Highlight []int `yaml:"highlight,omitempty"`

	Variant string   `yaml:"variant,omitempty"`
	Tree    string   `yaml:"tree,omitempty"`
	Marked  []string `yaml:"marked,omitempty"`
	Found   *string  `yaml:"found,omitempty"`

	Nodes []nodeDoc `yaml:"nodes,omitempty"`
	Edges []edgeDoc `yaml:"edges,omitempty"`
}

type nodeDoc struct {
	ID    int    `yaml:"id"`
	State string `yaml:"state"`
}

type edgeDoc struct {
	Source int    `yaml:"source"`
	Target int    `yaml:"target"`
	Weight int    `yaml:"weight"`
	State  string `yaml:"state"`
}

// YAML writes tr as a single YAML document.
func YAML(w io.Writer, tr *snapshot.Trace) error {
	doc := traceDoc{Kind: tr.Kind().String()}
	for i, s := range tr.Frames() {
		doc.Frames = append(doc.Frames, frameOf(i+1, s))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode trace")
	}
	return errors.Wrap(enc.Close(), "encode trace")
}

func frameOf(step int, s snapshot.Snapshot) frameDoc {
	f := frameDoc{Step: step, Status: s.Status()}
	switch s := s.(type) {
	case *snapshot.ArraySnapshot:
		f.Values = s.Values()
		f.Highlight = s.Highlighted()
	case snapshot.TreeSnapshot:
		f.Variant = s.Variant().String()
		f.Tree = s.Root().String()
		for _, p := range s.Highlighted() {
			f.Marked = append(f.Marked, p.String())
		}
		if bs, ok := s.(*snapshot.BSTSnapshot); ok {
			if p, ok := bs.Found(); ok {
				f.Found = pathString(p)
			}
		}
	case *snapshot.GraphSnapshot:
		for _, n := range s.Nodes() {
			f.Nodes = append(f.Nodes, nodeDoc{ID: n.ID, State: n.State.String()})
		}
		for _, e := range s.Edges() {
			f.Edges = append(f.Edges, edgeDoc{Source: e.Source, Target: e.Target, Weight: e.Weight, State: e.State.String()})
		}
	}
	return f
}

func pathString(p tree.Path) *string {
	s := p.String()
	return &s
}
