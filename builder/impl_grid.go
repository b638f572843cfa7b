// SPDX-License-Identifier: MIT
// Package: fmesh/builder
//
// impl_grid.go: implementation of TriGrid(rows, cols) and QuadGrid(rows, cols).
//
// Canonical model:
//   • A rows×cols block of square cells in the XY plane at cfg.origin.Z.
//   • Lattice points are added in row-major order (y asc, then x asc), so
//     point (x,y) has handle base + y·(cols+1) + x, base being
//     m.NumVertices() on entry.
//   • QuadGrid emits one counter-clockwise quad per cell; TriGrid splits each
//     cell along its (x,y)-(x+1,y+1) diagonal into two counter-clockwise
//     triangles, lower-right first.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Jitter requires an RNG (else ErrNeedRandSource).
//   • Shared edges are created once by the mesh; counts are
//     Quad: E = rows(cols+1) + cols(rows+1); Tri: the same plus rows·cols diagonals.
//
// Complexity:
//   • Time: O(rows·cols).
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fmesh/face"
	"github.com/katalvlaran/fmesh/index"
	"github.com/katalvlaran/fmesh/mesh"
	"github.com/katalvlaran/fmesh/vec"
)

// File-local constants: method tags and minima.
const (
	methodTriGrid  = "TriGrid"
	methodQuadGrid = "QuadGrid"
	minGridDim     = 1
)

// TriGrid returns a Constructor that builds a rows×cols grid of cells, each
// split into two triangles.
func TriGrid(rows, cols int) Constructor[face.Tri] {
	return func(m *mesh.Mesh[vec.Vec3, face.Tri], cfg builderConfig) error {
		if err := checkGrid(methodTriGrid, rows, cols, cfg); err != nil {
			return err
		}
		at := addLattice(m, cfg, cols+1, rows+1)

		for y := range rows {
			for x := range cols {
				lower := face.NewTri(at(x, y), at(x+1, y), at(x+1, y+1))
				upper := face.NewTri(at(x, y), at(x+1, y+1), at(x, y+1))
				if err := insert(m, methodTriGrid, lower); err != nil {
					return err
				}
				if err := insert(m, methodTriGrid, upper); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// QuadGrid returns a Constructor that builds a rows×cols grid of quads.
func QuadGrid(rows, cols int) Constructor[face.Quad] {
	return func(m *mesh.Mesh[vec.Vec3, face.Quad], cfg builderConfig) error {
		if err := checkGrid(methodQuadGrid, rows, cols, cfg); err != nil {
			return err
		}
		at := addLattice(m, cfg, cols+1, rows+1)

		for y := range rows {
			for x := range cols {
				q := face.NewQuad(at(x, y), at(x+1, y), at(x+1, y+1), at(x, y+1))
				if err := insert(m, methodQuadGrid, q); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

func checkGrid(method string, rows, cols int, cfg builderConfig) error {
	if rows < minGridDim || cols < minGridDim {
		return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			method, rows, cols, minGridDim, ErrTooFewVertices)
	}
	return cfg.check(method)
}

// addLattice appends w×h lattice points row-major and returns the handle of point (x,y).
func addLattice[F face.Face[F]](m *mesh.Mesh[vec.Vec3, F], cfg builderConfig, w, h int) func(x, y int) index.Vertex {
	base := m.NumVertices()
	for y := range h {
		for x := range w {
			m.AddVertex(cfg.point(x, y))
		}
	}
	return func(x, y int) index.Vertex { return index.NewVertex(base + y*w + x) }
}

// insert adds f and turns a rejection into ErrConstructFailed.
func insert[F face.Face[F]](m *mesh.Mesh[vec.Vec3, F], method string, f F) error {
	if _, err := m.InsertFace(f); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}
	return nil
}
