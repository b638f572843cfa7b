// SPDX-License-Identifier: MIT
// Package: fmesh/builder
//
// impl_fan.go: implementation of Fan(n) constructor.
//
// Canonical model:
//   • A closed triangle fan: one hub at cfg.origin and n rim points on a
//     circle of radius cfg.spacing, rim point i at angle 2πi/n.
//   • The hub is added first, then the rim in angle order.
//   • Triangle i is (hub, rim[i], rim[(i+1) mod n]), counter-clockwise.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Jitter does not apply: rim points are exact.
//   • V = n+1, E = 2n, F = n. Every spoke is shared by two triangles.
//
// Complexity:
//   • Time: O(n).
//   • Space: O(1) extra.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fmesh/face"
	"github.com/katalvlaran/fmesh/index"
	"github.com/katalvlaran/fmesh/mesh"
	"github.com/katalvlaran/fmesh/vec"
)

const (
	methodFan = "Fan"
	minFanRim = 3
)

// Fan returns a Constructor that builds a closed fan of n triangles.
func Fan(n int) Constructor[face.Tri] {
	return func(m *mesh.Mesh[vec.Vec3, face.Tri], cfg builderConfig) error {
		if n < minFanRim {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFan, n, minFanRim, ErrTooFewVertices)
		}

		hub := m.AddVertex(cfg.origin)
		first := hub.Next()
		for i := range n {
			theta := 2 * math.Pi * float64(i) / float64(n)
			m.AddVertex(cfg.origin.Add(vec.Vec3{
				X: cfg.spacing * math.Cos(theta),
				Y: cfg.spacing * math.Sin(theta),
			}))
		}

		rim := func(i int) index.Vertex { return first.Add(i % n) }
		for i := range n {
			if err := insert(m, methodFan, face.NewTri(hub, rim(i), rim(i+1))); err != nil {
				return err
			}
		}
		return nil
	}
}
