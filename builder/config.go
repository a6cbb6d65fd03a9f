// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Generator defaults:
//   • arrays:  5..15 values, each in 1..100
//   • targets: an existing value 70% of the time
//   • graphs:  5..10 nodes, weights in 1..10

package builder

import (
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultMinLen      = 5
	defaultMaxLen      = 15
	defaultMinValue    = 1
	defaultMaxValue    = 100
	defaultHitRate     = 0.7
	defaultMinNodes    = 5
	defaultMaxNodes    = 10
	defaultMinWeight   = 1
	defaultMaxWeight   = 10
	defaultExtraFactor = 0.5 // extra edges beyond the spanning chain, per node
)

// builderConfig aggregates all knobs used by the generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	rng *rand.Rand

	minLen, maxLen     int
	minValue, maxValue int
	hitRate            float64

	minNodes, maxNodes   int
	minWeight, maxWeight int
	extraFactor          float64
}

// newBuilderConfig applies opts over the defaults, in order (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		minLen:      defaultMinLen,
		maxLen:      defaultMaxLen,
		minValue:    defaultMinValue,
		maxValue:    defaultMaxValue,
		hitRate:     defaultHitRate,
		minNodes:    defaultMinNodes,
		maxNodes:    defaultMaxNodes,
		minWeight:   defaultMinWeight,
		maxWeight:   defaultMaxWeight,
		extraFactor: defaultExtraFactor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// between draws uniformly from [lo, hi].
func (c builderConfig) between(lo, hi int) int {
	return lo + c.rng.Intn(hi-lo+1)
}
