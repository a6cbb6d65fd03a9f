// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// random.go: random arrays, targets and graphs.
//
// Graph model:
//   • Nodes 0..n-1 with n drawn from the node range.
//   • A chain 0→1→…→n-1 plus the closing edge n-1→0 keeps every node
//     reachable from every start, so all five graph tracers have work to do.
//   • ⌊extraFactor·n⌋ further edges between distinct, not yet linked pairs.
//   • Weights drawn from the weight range.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/core"
)

// RandomArray returns a value list for the sorting and searching tracers.
func RandomArray(opts ...Option) ([]int, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, errors.Wrap(ErrNeedRandSource, "RandomArray")
	}
	out := make([]int, cfg.between(cfg.minLen, cfg.maxLen))
	for i := range out {
		out[i] = cfg.between(cfg.minValue, cfg.maxValue)
	}
	return out, nil
}

// RandomTarget picks a search target: a member of values with the configured
// hit rate, otherwise any value from the value range.
func RandomTarget(values []int, opts ...Option) (int, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return 0, errors.Wrap(ErrNeedRandSource, "RandomTarget")
	}
	if len(values) == 0 {
		return 0, errors.Wrap(ErrEmptyValues, "RandomTarget")
	}
	if cfg.rng.Float64() < cfg.hitRate {
		return values[cfg.rng.Intn(len(values))], nil
	}
	return cfg.between(cfg.minValue, cfg.maxValue), nil
}

// RandomGraph returns a strongly connected weighted graph.
func RandomGraph(opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, errors.Wrap(ErrNeedRandSource, "RandomGraph")
	}
	n := cfg.between(cfg.minNodes, cfg.maxNodes)

	type pair struct{ u, v int }
	linked := make(map[pair]bool)
	edges := make([]core.Edge, 0, n+int(cfg.extraFactor*float64(n)))
	add := func(u, v int) {
		linked[pair{u, v}] = true
		linked[pair{v, u}] = true
		edges = append(edges, core.Edge{Source: u, Target: v, Weight: cfg.between(cfg.minWeight, cfg.maxWeight)})
	}

	for i := 0; i < n-1; i++ {
		add(i, i+1)
	}
	add(n-1, 0)

	// Bound attempts so dense requests on tiny graphs still terminate.
	extra := int(cfg.extraFactor * float64(n))
	for tries := 0; extra > 0 && tries < 20*n; tries++ {
		u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
		if u == v || linked[pair{u, v}] {
			continue
		}
		add(u, v)
		extra--
	}

	return core.NewGraph(core.Sequential(n), edges)
}
