package tree

// IsValidHeap reports whether every node's value is ≥ the values of both of
// its children. The empty tree is a valid heap.
func IsValidHeap(n *Node) bool {
	if n == nil {
		return true
	}
	if n.left != nil && n.left.value > n.value {
		return false
	}
	if n.right != nil && n.right.value > n.value {
		return false
	}
	return IsValidHeap(n.left) && IsValidHeap(n.right)
}

// IsValidBST reports whether, for every node, all values in its left subtree
// are strictly smaller and all values in its right subtree strictly larger.
func IsValidBST(n *Node) bool {
	var check func(t *Node, lo, hi *int) bool
	check = func(t *Node, lo, hi *int) bool {
		if t == nil {
			return true
		}
		if lo != nil && t.value <= *lo {
			return false
		}
		if hi != nil && t.value >= *hi {
			return false
		}
		return check(t.left, lo, &t.value) && check(t.right, &t.value, hi)
	}
	return check(n, nil, nil)
}

// IsComplete reports whether the tree is complete: every level full except
// possibly the last, which is filled from the left.
func IsComplete(n *Node) bool {
	if n == nil {
		return true
	}
	queue := []*Node{n}
	gap := false
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range [2]*Node{cur.left, cur.right} {
			if child == nil {
				gap = true
				continue
			}
			if gap {
				return false
			}
			queue = append(queue, child)
		}
	}
	return true
}
