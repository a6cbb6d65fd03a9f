package snapshot

// NodeState is the visual state of a graph node.
type NodeState int

const (
	NodeUnvisited NodeState = iota
	NodeCurrent
	NodeVisited
	NodeIncluded
)

func (s NodeState) String() string {
	switch s {
	case NodeUnvisited:
		return "unvisited"
	case NodeCurrent:
		return "current"
	case NodeVisited:
		return "visited"
	case NodeIncluded:
		return "included"
	default:
		return "unknown"
	}
}

// EdgeState is the visual state of a graph edge.
type EdgeState int

const (
	EdgeNormal EdgeState = iota
	EdgeConsidered
	EdgeHighlighted
)

func (s EdgeState) String() string {
	switch s {
	case EdgeNormal:
		return "normal"
	case EdgeConsidered:
		return "considered"
	case EdgeHighlighted:
		return "highlighted"
	default:
		return "unknown"
	}
}

// NodeView is a node as it appears in one frame.
type NodeView struct {
	ID    int
	State NodeState
}

// EdgeView is an edge as it appears in one frame.
type EdgeView struct {
	Source, Target int
	Weight         int
	State          EdgeState
}

// GraphSnapshot is a frame of the graph tracers. Node and edge order (and
// identity) are the same in every frame of one trace.
type GraphSnapshot struct {
	nodes  []NodeView
	edges  []EdgeView
	status string
}

// NewGraph copies nodes and edges into a new frame.
func NewGraph(nodes []NodeView, edges []EdgeView, status string) *GraphSnapshot {
	s := &GraphSnapshot{
		nodes:  make([]NodeView, len(nodes)),
		edges:  make([]EdgeView, len(edges)),
		status: status,
	}
	copy(s.nodes, nodes)
	copy(s.edges, edges)
	return s
}

// Kind implements Snapshot.
func (s *GraphSnapshot) Kind() Kind { return KindGraph }

// Status implements Snapshot.
func (s *GraphSnapshot) Status() string { return s.status }

// NodeCount returns the number of nodes.
func (s *GraphSnapshot) NodeCount() int { return len(s.nodes) }

// EdgeCount returns the number of edges.
func (s *GraphSnapshot) EdgeCount() int { return len(s.edges) }

// Node returns the i-th node.
func (s *GraphSnapshot) Node(i int) NodeView { return s.nodes[i] }

// Edge returns the i-th edge.
func (s *GraphSnapshot) Edge(i int) EdgeView { return s.edges[i] }

// Nodes returns a copy of the nodes.
func (s *GraphSnapshot) Nodes() []NodeView {
	out := make([]NodeView, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Edges returns a copy of the edges.
func (s *GraphSnapshot) Edges() []EdgeView {
	out := make([]EdgeView, len(s.edges))
	copy(out, s.edges)
	return out
}
