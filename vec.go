package g3d

import (
	"fmt"
	"math"
)

// Vec2 represents a 2D vector: a screen position, a texture coordinate,
// or a displacement between them.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// MulXY returns the vector scaled independently on each axis.
func (v Vec2) MulXY(x, y float64) Vec2 {
	return Vec2{X: v.X * x, Y: v.Y * y}
}

// Div returns the vector divided by a scalar.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// DivXY returns the vector divided independently on each axis.
func (v Vec2) DivXY(x, y float64) Vec2 {
	return Vec2{X: v.X / x, Y: v.Y / y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Perpendicular returns the vector rotated 90 degrees clockwise in a y-up
// frame, which is counter-clockwise on screen where y grows downwards.
// Dotting against it gives the signed side of a point relative to a line.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Saturate clamps both components to [0, 1].
func (v Vec2) Saturate() Vec2 {
	return Vec2{X: saturate(v.X), Y: saturate(v.Y)}
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

func saturate(x float64) float64 {
	return clamp(x, 0, 1)
}

func clamp[T int | float64](x, lo, hi T) T {
	return min(max(x, lo), hi)
}
