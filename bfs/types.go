package bfs

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// ErrNoPath is returned by PathTo for a node the traversal never reached.
var ErrNoPath = errors.New("bfs: no path to node")

// Result is the traversal that the frames animate, keyed by node ID.
type Result struct {
	// Order lists node IDs in dequeue order.
	Order []int
	// Depth is the edge distance of every reached node from the start.
	Depth map[int]int
	// Parent maps every reached node except the start to its discoverer.
	Parent map[int]int
}

// PathTo reconstructs the discovery path from the start node to dest,
// both included.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Wrapf(ErrNoPath, "%d", dest)
	}
	path := []int{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)
	return path, nil
}
