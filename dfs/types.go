package dfs

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// ErrNoPath is returned by PathTo for a node the traversal never reached.
var ErrNoPath = errors.New("dfs: no path to node")

// Result is the traversal that the frames animate, keyed by node ID.
type Result struct {
	// Order lists node IDs in pre-order.
	Order []int
	// Depth is the tree depth of every reached node; roots are 0.
	Depth map[int]int
	// Parent maps every reached node except the roots to the node it was reached from.
	Parent map[int]int
	// SkippedNeighbors counts neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}

// PathTo returns the tree path from dest's root to dest, both included.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Wrapf(ErrNoPath, "%d", dest)
	}
	path := []int{dest}
	for cur, ok := r.Parent[dest]; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path, nil
}
