// SPDX-License-Identifier: MIT
// Package: fmesh/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math"
	"math/rand" // RNG source for jittered builders

	"github.com/katalvlaran/fmesh/vec"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before mesh construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithSpacing sets the distance between neighbouring lattice points.
// Panics unless h is finite and positive.
func WithSpacing(h float64) BuilderOption {
	if !(h > 0) || math.IsInf(h, 0) {
		panic(fmt.Sprintf("builder: WithSpacing(%v)", h))
	}
	return func(c *builderConfig) {
		c.spacing = h
	}
}

// WithOrigin places lattice point (0,0) at p.
func WithOrigin(p vec.Vec3) BuilderOption {
	return func(c *builderConfig) {
		c.origin = p
	}
}

// WithJitter perturbs every generated point in-plane by up to f·spacing
// along each axis. Requires WithSeed or WithRand.
// Panics unless 0 ≤ f ≤ 0.49, the bound under which cells cannot fold.
func WithJitter(f float64) BuilderOption {
	if !(f >= 0 && f <= maxJitter) {
		panic(fmt.Sprintf("builder: WithJitter(%v) outside [0,%v]", f, maxJitter))
	}
	return func(c *builderConfig) {
		c.jitter = f
	}
}

// WithRand provides an explicit RNG for jittered builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
