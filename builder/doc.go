// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// Package builder produces the inputs the tracers run on: random arrays,
// random search targets, random connected graphs, and the fixed seed
// structures a session starts from.
//
// Determinism:
//   - Random generators take their *rand.Rand from WithSeed/WithRand and fail
//     with ErrNeedRandSource when neither is given. There is no hidden global
//     source; the same seed always yields the same input.
//   - Seeds (SampleGraph, SeedBST, SeedHeap) are constants.
//
// Options follow the functional style: option constructors validate their
// arguments and panic on meaningless values; generators never panic.
package builder
