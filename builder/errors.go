// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Generators attach context by wrapping, never by building new messages.

package builder

import (
	"github.com/cockroachdb/errors"
)

// ErrNeedRandSource indicates that a random generator was called without
// WithSeed or WithRand.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply a seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEmptyValues indicates RandomTarget was given nothing to pick from.
var ErrEmptyValues = errors.New("builder: no values to pick a target from")
