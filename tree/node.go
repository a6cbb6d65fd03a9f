package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// At returns the node addressed by p, or nil if the path leaves the tree.
func (n *Node) At(p Path) *Node {
	cur := n
	for i := 0; i < len(p) && cur != nil; i++ {
		if p[i] == turnLeft {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return cur
}

// Has reports whether a node exists at p.
func (n *Node) Has(p Path) bool { return n.At(p) != nil }

// SetValue returns a new root in which the node at p holds v.
// Only the nodes on the path to p are copied. It panics if p is not in the tree.
func (n *Node) SetValue(p Path, v int) *Node {
	return n.rebuild(p, func(t *Node) *Node {
		if t == nil {
			panic(fmt.Sprintf("tree: SetValue(%s) on a missing node", p))
		}
		return &Node{value: v, left: t.left, right: t.right}
	})
}

// Replace returns a new root in which the subtree at p is sub.
// p may address an empty child slot of an existing node, which attaches sub
// there; a nil sub removes the subtree. Replace(Root, sub) returns sub.
func (n *Node) Replace(p Path, sub *Node) *Node {
	return n.rebuild(p, func(*Node) *Node { return sub })
}

// Swap returns a new root with the values at a and b exchanged.
func (n *Node) Swap(a, b Path) *Node {
	va, vb := n.At(a), n.At(b)
	if va == nil || vb == nil {
		panic(fmt.Sprintf("tree: Swap(%s, %s) on a missing node", a, b))
	}
	return n.SetValue(a, vb.value).SetValue(b, va.value)
}

// rebuild copies every node between the root and p, handing the old subtree
// at p to leaf and linking in whatever it returns.
func (n *Node) rebuild(p Path, leaf func(*Node) *Node) *Node {
	if p.IsRoot() {
		return leaf(n)
	}
	if n == nil {
		panic(fmt.Sprintf("tree: path %s runs past a missing node", p))
	}
	cp := &Node{value: n.value, left: n.left, right: n.right}
	switch p[0] {
	case turnLeft:
		cp.left = n.left.rebuild(p[1:], leaf)
	case turnRight:
		cp.right = n.right.rebuild(p[1:], leaf)
	default:
		panic(fmt.Sprintf("tree: invalid turn %q in path", p[0]))
	}
	return cp
}

// Size returns the number of nodes in the tree.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.Size() + n.right.Size()
}

// Height returns the number of levels; the empty tree has height 0.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.Height(), n.right.Height())
}

// String renders the tree as nested value(left,right) groups, with "-"
// standing in for a missing child, e.g. "50(25(10,40),75)".
func (n *Node) String() string {
	if n == nil {
		return "()"
	}
	var sb strings.Builder
	n.format(&sb)
	return sb.String()
}

func (n *Node) format(sb *strings.Builder) {
	if n == nil {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(strconv.Itoa(n.value))
	if n.left == nil && n.right == nil {
		return
	}
	sb.WriteByte('(')
	n.left.format(sb)
	if n.right != nil {
		sb.WriteByte(',')
		n.right.format(sb)
	}
	sb.WriteByte(')')
}
