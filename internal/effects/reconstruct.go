package effects

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// minCornerCos keeps far/cos(angle) finite for cameras whose half diagonal
// field of view approaches 90 degrees.
const minCornerCos = 1e-6

// CameraFrustumSample is the per-frame camera state the water effect needs.
// All rays start at Position; directions are expected to be unit length.
type CameraFrustumSample struct {
	Position  mgl32.Vec3
	FarClip   float32
	Ray00     mgl32.Vec3 // through screen (0, 0)
	RayW0     mgl32.Vec3 // through screen (W, 0)
	Ray0H     mgl32.Vec3 // through screen (0, H)
	RayCenter mgl32.Vec3 // through screen (W/2, H/2)
}

// ReconstructionBasis spans the far clip rectangle in world space. The far
// plane point under screen UV (u, v) is Origin + u*EdgeX + v*EdgeY.
type ReconstructionBasis struct {
	Origin mgl32.Vec3
	EdgeX  mgl32.Vec3
	EdgeY  mgl32.Vec3
}

// AngleBetween returns the angle between a and b in radians. Zero length
// inputs give 0.
func AngleBetween(a, b mgl32.Vec3) float64 {
	ax, ay, az := float64(a[0]), float64(a[1]), float64(a[2])
	bx, by, bz := float64(b[0]), float64(b[1]), float64(b[2])
	denom := math.Sqrt((ax*ax + ay*ay + az*az) * (bx*bx + by*by + bz*bz))
	if denom < 1e-15 {
		return 0
	}
	dot := (ax*bx + ay*by + az*bz) / denom
	dot = math.Max(-1, math.Min(1, dot))
	return math.Acos(dot)
}

// CornerDistance is the distance along a corner ray to the far clip plane.
// The plane faces the camera's forward axis, so a corner ray has to travel
// farClip/cos(angle) to reach it.
func CornerDistance(farClip float32, angleRad float64) float32 {
	c := math.Cos(angleRad)
	if c < minCornerCos {
		c = minCornerCos
	}
	return float32(float64(farClip) / c)
}

// Reconstruct derives the far plane basis for one frame. All corner rays
// share one distance because they end on the same flat plane.
func Reconstruct(sample CameraFrustumSample) ReconstructionBasis {
	angle := AngleBetween(sample.RayCenter, sample.Ray00)
	dist := CornerDistance(sample.FarClip, angle)

	corner00 := sample.Ray00.Mul(dist)
	return ReconstructionBasis{
		Origin: sample.Position.Add(corner00),
		EdgeX:  sample.RayW0.Mul(dist).Sub(corner00),
		EdgeY:  sample.Ray0H.Mul(dist).Sub(corner00),
	}
}

// At returns the far plane point under screen UV (u, v).
func (b ReconstructionBasis) At(u, v float32) mgl32.Vec3 {
	return b.Origin.Add(b.EdgeX.Mul(u)).Add(b.EdgeY.Mul(v))
}

// WorldPosition is the per-pixel reconstruction a shading stage performs:
// the point at linear depth fraction t (0 at the camera, 1 at the far plane)
// along the ray through (u, v).
func (b ReconstructionBasis) WorldPosition(camera mgl32.Vec3, u, v, t float32) mgl32.Vec3 {
	return camera.Add(b.At(u, v).Sub(camera).Mul(t))
}
