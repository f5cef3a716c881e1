package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// RayIntersectWaterPlane intersects the ray with the horizontal plane
// y = level. Returns: (intersected, distance, intersection point)
func RayIntersectWaterPlane(ray Ray, level float32) (bool, float32, mgl32.Vec3) {
	const epsilon = 0.0000001

	dy := ray.Direction.Y()
	if dy > -epsilon && dy < epsilon {
		return false, 0, mgl32.Vec3{} // Ray is parallel to the plane
	}

	t := (level - ray.Origin.Y()) / dy
	if t < 0 {
		return false, 0, mgl32.Vec3{} // Plane is behind the ray origin
	}
	return true, t, ray.At(t)
}
