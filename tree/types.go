package tree

// Path addresses a node by the turns taken from the root.
// Each byte is either 'L' or 'R'; the empty Path is the root.
type Path string

// Root is the Path of the root node.
const Root Path = ""

// Turns as bytes of a Path.
const (
	turnLeft  byte = 'L'
	turnRight byte = 'R'
)

// Left returns the Path of p's left child.
func (p Path) Left() Path { return p + Path(turnLeft) }

// Right returns the Path of p's right child.
func (p Path) Right() Path { return p + Path(turnRight) }

// IsRoot reports whether p addresses the root.
func (p Path) IsRoot() bool { return p == Root }

// Parent returns the Path of p's parent. The root is its own parent.
func (p Path) Parent() Path {
	if p.IsRoot() {
		return Root
	}
	return p[:len(p)-1]
}

// Depth is the number of edges between the root and p.
func (p Path) Depth() int { return len(p) }

// IsLeft reports whether p is the left child of its parent.
func (p Path) IsLeft() bool { return len(p) > 0 && p[len(p)-1] == turnLeft }

// Side names the side p hangs from its parent: "left", "right" or "root".
func (p Path) Side() string {
	switch {
	case p.IsRoot():
		return "root"
	case p.IsLeft():
		return "left"
	default:
		return "right"
	}
}

// String renders the root as "root" and every other path as its turns.
func (p Path) String() string {
	if p.IsRoot() {
		return "root"
	}
	return string(p)
}

// Node is one immutable vertex of a persistent binary tree.
type Node struct {
	value       int
	left, right *Node
}

// New returns a leaf holding v.
func New(v int) *Node {
	return &Node{value: v}
}

// NewBranch returns a node holding v with the given children (either may be nil).
func NewBranch(v int, left, right *Node) *Node {
	return &Node{value: v, left: left, right: right}
}

// Value returns the value stored in n. The empty tree has value 0.
func (n *Node) Value() int {
	if n == nil {
		return 0
	}
	return n.value
}

// Left returns n's left child or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns n's right child or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf reports whether n exists and has no children.
func (n *Node) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}
