package effects

import (
	"github.com/go-gl/mathgl/mgl32"
)

var (
	forwardAxis = mgl32.Vec3{0, 0, 1}
	upAxis      = mgl32.Vec3{0, 1, 0}
)

// DirectionVector is a flow direction on the ground plane.
type DirectionVector struct {
	DX       float32
	DZ       float32
	Speed    float32
	Strength float32 // only used by the noise flow
}

// ResolveDirection rotates the forward axis around the up axis by
// headingDegrees and keeps the horizontal components.
func ResolveDirection(headingDegrees, speed float32) DirectionVector {
	rotation := mgl32.QuatRotate(mgl32.DegToRad(headingDegrees), upAxis)
	dir := rotation.Rotate(forwardAxis)
	return DirectionVector{
		DX:    dir.X(),
		DZ:    dir.Z(),
		Speed: speed,
	}
}

// WithStrength returns a copy of d carrying the given strength.
func (d DirectionVector) WithStrength(strength float32) DirectionVector {
	d.Strength = strength
	return d
}

// Vec4 packs the vector as (dx, dz, speed, strength).
func (d DirectionVector) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{d.DX, d.DZ, d.Speed, d.Strength}
}
