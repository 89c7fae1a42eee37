// Package core provides fundamental types and utilities shared by the runner
// simulation and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec3 is a point or extent in world space.
// X is lateral (lanes), Y is vertical, Z is longitudinal (distance ahead of the player).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul returns v scaled component-wise by o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Box is an axis-aligned bounding box in world space.
type Box struct {
	Min, Max Vec3
}

// BoxFromCenter builds a box from its center and full size.
func BoxFromCenter(center, size Vec3) Box {
	half := size.Scale(0.5)
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the center of the box.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the full extent of the box on each axis.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Intersects reports whether two boxes overlap on all three axes.
// Boxes that only touch along a face do not intersect.
func (b Box) Intersects(o Box) bool {
	if b.Min.X >= o.Max.X || o.Min.X >= b.Max.X {
		return false
	}
	if b.Min.Y >= o.Max.Y || o.Min.Y >= b.Max.Y {
		return false
	}
	if b.Min.Z >= o.Max.Z || o.Min.Z >= b.Max.Z {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
