// camera.go
package renderer

import (
	"math"

	"GopherFX/internal/config"
	"GopherFX/internal/effects"

	"github.com/xlab/linmath"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	// HOT DATA - read every frame for rays and view/projection
	Position   mgl32.Vec3 // Camera position in world space
	Front      mgl32.Vec3 // Forward direction vector
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix
	Pitch      float32    // Pitch angle (vertical rotation)
	Yaw        float32    // Yaw angle (horizontal rotation)

	// COLD DATA - configuration and input handling
	WorldUp      mgl32.Vec3 // World up vector (usually (0,1,0))
	Speed        float32    // Movement speed
	Sensitivity  float32    // Mouse sensitivity
	Fov          float32    // Vertical field of view, degrees
	Near         float32    // Near clipping plane
	Far          float32    // Far clipping plane
	AspectRatio  float32    // Width / height
	LastX, LastY float32    // Last mouse position
	InvertMouse  bool       // Invert mouse Y axis
	firstMouse   bool       // First mouse movement flag
}

// NewCamera places a camera from configuration for a width x height viewport.
func NewCamera(cfg config.CameraConfig, width, height int) *Camera {
	camera := Camera{
		Position:    cfg.Position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Pitch:       cfg.Pitch,
		Yaw:         cfg.Yaw,
		Speed:       cfg.Speed,
		Sensitivity: cfg.Sensitivity,
		Fov:         cfg.Fov,
		Near:        cfg.Near,
		Far:         cfg.Far,
		LastX:       float32(width) / 2,
		LastY:       float32(height) / 2,
		AspectRatio: aspect(width, height),
		firstMouse:  true,
	}
	camera.updateCameraVectors()
	camera.UpdateProjection()
	return &camera
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

// Setter methods that automatically update projection
func (c *Camera) SetFar(far float32) {
	c.Far = far
	c.UpdateProjection()
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

// SetViewport updates the aspect ratio after a resize.
func (c *Camera) SetViewport(width, height int) {
	c.AspectRatio = aspect(width, height)
	c.UpdateProjection()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

// convertMGL32Mat4ToLinMathMat4x4 copies a column major mgl32 matrix into
// linmath's [column][row] layout.
func convertMGL32Mat4ToLinMathMat4x4(m mgl32.Mat4) linmath.Mat4x4 {
	var out linmath.Mat4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i*4+j]
		}
	}
	return out
}

// GetViewProjectionVulkan returns the view-projection for hosts that feed a
// Vulkan backend through linmath.
func (c *Camera) GetViewProjectionVulkan() linmath.Mat4x4 {
	return convertMGL32Mat4ToLinMathMat4x4(c.GetViewProjection())
}

// ScreenPointToRay returns the world ray through pixel (x, y) of a
// width x height viewport. The screen origin is the bottom left corner, so
// (0, 0) is the bottom left pixel corner and (width, height) the top right.
func (c *Camera) ScreenPointToRay(x, y, width, height float32) Ray {
	ndcX := 2*x/width - 1
	ndcY := 2*y/height - 1

	tanHalf := float32(math.Tan(float64(mgl32.DegToRad(c.Fov)) / 2))
	dir := c.Front.
		Add(c.Right.Mul(ndcX * tanHalf * c.AspectRatio)).
		Add(c.Up.Mul(ndcY * tanHalf))

	return Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// FrustumSample captures what the water effect needs from this camera for
// one frame of a width x height viewport.
func (c *Camera) FrustumSample(width, height int) effects.CameraFrustumSample {
	w, h := float32(width), float32(height)
	return effects.CameraFrustumSample{
		Position:  c.Position,
		FarClip:   c.Far,
		Ray00:     c.ScreenPointToRay(0, 0, w, h).Direction,
		RayW0:     c.ScreenPointToRay(w, 0, w, h).Direction,
		Ray0H:     c.ScreenPointToRay(0, h, w, h).Direction,
		RayCenter: c.ScreenPointToRay(w/2, h/2, w, h).Direction,
	}
}

func (c *Camera) ProcessKeyboard(window *glfw.Window, deltaTime float32) {
	baseVelocity := c.Speed * deltaTime

	// Shift sprints
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press || window.GetKey(glfw.KeyRightShift) == glfw.Press {
		baseVelocity *= 2.5
	}

	if window.GetKey(glfw.KeyW) == glfw.Press {
		c.Position = c.Position.Add(c.Front.Mul(baseVelocity))
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		c.Position = c.Position.Sub(c.Front.Mul(baseVelocity))
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		c.Position = c.Position.Sub(c.Right.Mul(baseVelocity))
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		c.Position = c.Position.Add(c.Right.Mul(baseVelocity))
	}
}

// ProcessMouse turns an absolute cursor position into a look offset.
func (c *Camera) ProcessMouse(x, y float32) {
	if c.firstMouse {
		c.LastX, c.LastY = x, y
		c.firstMouse = false
	}
	xoffset := x - c.LastX
	yoffset := c.LastY - y
	c.LastX, c.LastY = x, y
	c.ProcessMouseMovement(xoffset, yoffset, true)
}

// ResetMouse forgets the last cursor position, so the next ProcessMouse
// does not jump.
func (c *Camera) ResetMouse() {
	c.firstMouse = true
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset

	if c.InvertMouse {
		c.Pitch -= yoffset
	} else {
		c.Pitch += yoffset
	}
	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89.0, 89.0) // Prevent extreme pitch values
	}
	c.updateCameraVectors()
}

// LookAt turns the camera towards target.
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.Position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()
	c.Pitch = mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(direction.Y(), -1, 1)))))
	c.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yawRad := float64(mgl32.DegToRad(c.Yaw))
	pitchRad := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
