// Package vec provides small fixed-size vector value types used as mesh points.
package vec

import (
	"fmt"
	"math"
)

// Vec2 is a point or direction in the plane.
type Vec2 struct{ X, Y float64 }

// Vec3 is a point or direction in space.
type Vec3 struct{ X, Y, Z float64 }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }
func (a Vec2) SquaredNorm() float64 { return a.Dot(a) }
func (a Vec2) Norm() float64 { return math.Hypot(a.X, a.Y) }
func (a Vec2) Distance(b Vec2) float64 { return a.Sub(b).Norm() }
func (a Vec2) String() string { return fmt.Sprintf("(%g, %g)", a.X, a.Y) }

// Normalized returns a scaled to unit length. The zero vector is returned unchanged.
func (a Vec2) Normalized() Vec2 {
	n := a.Norm()
	if n == 0 {
		return a
	}
	return a.Scale(1 / n)
}

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) SquaredNorm() float64 { return a.Dot(a) }
func (a Vec3) Norm() float64 { return math.Sqrt(a.SquaredNorm()) }
func (a Vec3) Distance(b Vec3) float64 { return a.Sub(b).Norm() }
func (a Vec3) String() string { return fmt.Sprintf("(%g, %g, %g)", a.X, a.Y, a.Z) }

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{a.Y*b.Z - a.Z*b.Y, a.Z*b.X - a.X*b.Z, a.X*b.Y - a.Y*b.X}
}

// Normalized returns a scaled to unit length. The zero vector is returned unchanged.
func (a Vec3) Normalized() Vec3 {
	n := a.Norm()
	if n == 0 {
		return a
	}
	return a.Scale(1 / n)
}
