package tree

// LevelOrder returns the path of every node in breadth-first, left-first order.
func (n *Node) LevelOrder() []Path {
	if n == nil {
		return nil
	}
	out := make([]Path, 0, 8)
	queue := []Path{Root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		out = append(out, p)
		cur := n.At(p)
		if cur.left != nil {
			queue = append(queue, p.Left())
		}
		if cur.right != nil {
			queue = append(queue, p.Right())
		}
	}
	return out
}

// Values returns node values in level order.
func (n *Node) Values() []int {
	paths := n.LevelOrder()
	out := make([]int, len(paths))
	for i, p := range paths {
		out[i] = n.At(p).value
	}
	return out
}

// InOrder returns node values in left-node-right order.
func (n *Node) InOrder() []int {
	var out []int
	var walk func(*Node)
	walk = func(t *Node) {
		if t == nil {
			return
		}
		walk(t.left)
		out = append(out, t.value)
		walk(t.right)
	}
	walk(n)
	return out
}

// NextSlot returns the path of the first empty child position met by a
// breadth-first scan: the first node missing its left child yields that left
// slot, otherwise the first node missing its right child yields the right one.
// On a complete tree this is the slot that keeps the tree complete.
// The empty tree's next slot is the root.
func (n *Node) NextSlot() Path {
	if n == nil {
		return Root
	}
	queue := []Path{Root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cur := n.At(p)
		if cur.left == nil {
			return p.Left()
		}
		queue = append(queue, p.Left())
		if cur.right == nil {
			return p.Right()
		}
		queue = append(queue, p.Right())
	}
	// unreachable: a finite tree always has an empty slot
	return Root
}

// Last returns the path of the last node in level order, the node whose
// removal keeps a complete tree complete. ok is false for the empty tree.
func (n *Node) Last() (p Path, ok bool) {
	paths := n.LevelOrder()
	if len(paths) == 0 {
		return Root, false
	}
	return paths[len(paths)-1], true
}

// FromLevelOrder builds the complete tree whose level-order values are vs.
func FromLevelOrder(vs []int) *Node {
	var build func(i int) *Node
	build = func(i int) *Node {
		if i >= len(vs) {
			return nil
		}
		return &Node{value: vs[i], left: build(2*i + 1), right: build(2*i + 2)}
	}
	return build(0)
}
