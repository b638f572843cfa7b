// SPDX-License-Identifier: MIT
// Package: fmesh/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • spacing = 1.0          (unit cells)
//   • origin  = (0,0,0)
//   • jitter  = 0.0          (exact lattice positions)
//   • rng     = nil          (pure/deterministic unless seeded)

package builder

import (
	"fmt"
	"math/rand" // RNG for jittered positions

	"github.com/katalvlaran/fmesh/vec"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Distance between neighbouring lattice points.
	spacing float64
	// Position of lattice point (0,0).
	origin vec.Vec3
	// In-plane perturbation, as a fraction of spacing; 0 disables it.
	jitter float64
	// RNG for jitter; nil means “no randomness”.
	rng *rand.Rand
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultSpacing = 1.0
	defaultJitter  = 0.0
	// maxJitter keeps perturbed lattice cells from folding over.
	maxJitter = 0.49
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing: defaultSpacing,
		origin:  vec.Vec3{},
		jitter:  defaultJitter,
		rng:     nil,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// point returns the position of lattice point (x, y), jittered if configured.
func (c builderConfig) point(x, y int) vec.Vec3 {
	p := vec.Vec3{
		X: c.origin.X + float64(x)*c.spacing,
		Y: c.origin.Y + float64(y)*c.spacing,
		Z: c.origin.Z,
	}
	if c.jitter > 0 {
		p.X += (2*c.rng.Float64() - 1) * c.jitter * c.spacing
		p.Y += (2*c.rng.Float64() - 1) * c.jitter * c.spacing
	}
	return p
}

// check validates the combination of options a constructor is about to use.
func (c builderConfig) check(method string) error {
	if c.jitter > 0 && c.rng == nil {
		return fmt.Errorf("%s: jitter %.2f without rng: %w", method, c.jitter, ErrNeedRandSource)
	}
	return nil
}
