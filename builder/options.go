// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// options.go: functional options for the generators.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a generator by mutating its builderConfig.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLength bounds the length of random arrays. Panics unless 1 ≤ lo ≤ hi.
func WithLength(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("builder: WithLength(%d, %d)", lo, hi))
	}
	return func(c *builderConfig) {
		c.minLen, c.maxLen = lo, hi
	}
}

// WithValueRange bounds random array values and targets. Panics if hi < lo.
func WithValueRange(lo, hi int) Option {
	if hi < lo {
		panic(fmt.Sprintf("builder: WithValueRange(%d, %d)", lo, hi))
	}
	return func(c *builderConfig) {
		c.minValue, c.maxValue = lo, hi
	}
}

// WithHitRate sets the probability that RandomTarget picks an existing value.
// Panics outside [0, 1].
func WithHitRate(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithHitRate(%g)", p))
	}
	return func(c *builderConfig) {
		c.hitRate = p
	}
}

// WithNodeRange bounds the node count of random graphs. Panics unless 2 ≤ lo ≤ hi.
func WithNodeRange(lo, hi int) Option {
	if lo < 2 || hi < lo {
		panic(fmt.Sprintf("builder: WithNodeRange(%d, %d)", lo, hi))
	}
	return func(c *builderConfig) {
		c.minNodes, c.maxNodes = lo, hi
	}
}

// WithWeightRange bounds random edge weights. Panics unless 0 ≤ lo ≤ hi.
func WithWeightRange(lo, hi int) Option {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: WithWeightRange(%d, %d)", lo, hi))
	}
	return func(c *builderConfig) {
		c.minWeight, c.maxWeight = lo, hi
	}
}

// WithExtraEdges sets how many edges beyond the spanning chain a random graph
// gets, as a fraction of its node count. Panics if f < 0.
func WithExtraEdges(f float64) Option {
	if f < 0 {
		panic(fmt.Sprintf("builder: WithExtraEdges(%g)", f))
	}
	return func(c *builderConfig) {
		c.extraFactor = f
	}
}
