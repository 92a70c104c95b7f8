package g3d

import (
	"fmt"
	"math"
)

// Transform places an object in its parent space: a position, a
// non-uniform scale and a yaw/pitch orientation.
//
// Yaw rotates around the vertical (+Y) axis first; pitch then rotates
// around the yaw-rotated right axis. The resulting basis is always
// orthonormal because scale is applied separately, never folded into the
// rotation. Roll is not supported.
type Transform struct {
	Position Vec3
	Scale    Vec3
	Yaw      float64 // radians
	Pitch    float64 // radians
}

// NewTransform returns an identity transform (unit scale, no rotation, at the origin).
func NewTransform() Transform {
	return Transform{Scale: Vec3{X: 1, Y: 1, Z: 1}}
}

// Basis returns the rotated right, up and forward unit vectors.
func (t Transform) Basis() (right, up, forward Vec3) {
	sy, cy := math.Sincos(t.Yaw)
	sp, cp := math.Sincos(t.Pitch)

	iYaw := Vec3{X: cy, Y: 0, Z: sy}
	jYaw := Vec3{X: 0, Y: 1, Z: 0}
	kYaw := Vec3{X: -sy, Y: 0, Z: cy}

	// Pitch basis expressed in the yaw frame: i=(1,0,0), j=(0,cp,-sp), k=(0,sp,cp).
	right = iYaw
	up = jYaw.Mul(cp).Add(kYaw.Mul(-sp))
	forward = jYaw.Mul(sp).Add(kYaw.Mul(cp))
	return right, up, forward
}

// ToWorldPoint maps a point from local space to parent (world) space:
// scale, then rotate, then translate.
func (t Transform) ToWorldPoint(local Vec3) Vec3 {
	return t.ToWorldDirection(local.MulVec(t.Scale)).Add(t.Position)
}

// ToLocalPoint maps a point from parent (world) space into local space.
// It is the inverse of ToWorldPoint: the rotation is undone with the
// transpose of the basis, which equals its inverse for an orthonormal basis.
func (t Transform) ToLocalPoint(world Vec3) Vec3 {
	right, up, forward := t.Basis()
	d := world.Sub(t.Position)
	rotated := Vec3{X: d.Dot(right), Y: d.Dot(up), Z: d.Dot(forward)}
	return rotated.DivVec(t.Scale)
}

// ToWorldDirection rotates a direction into parent space. Neither scale
// nor translation is applied.
func (t Transform) ToWorldDirection(local Vec3) Vec3 {
	right, up, forward := t.Basis()
	return right.Mul(local.X).Add(up.Mul(local.Y)).Add(forward.Mul(local.Z))
}

func (t Transform) String() string {
	return fmt.Sprintf("pos=%v scale=%v yaw=%.1f pitch=%.1f",
		t.Position, t.Scale, Degrees(t.Yaw), Degrees(t.Pitch))
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
