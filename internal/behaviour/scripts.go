package behaviour

import (
	"math"

	"GopherFX/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	RegisterScript("orbit", func(p ScriptParams) CameraBehaviour {
		return &OrbitScript{Params: p}
	})
	RegisterScript("bob", func(p ScriptParams) CameraBehaviour {
		return &BobScript{Params: p}
	})
}

// OrbitScript circles the camera around Target at constant height, so the
// far plane basis sweeps through every heading.
type OrbitScript struct {
	Params ScriptParams
	radius float32
	height float32
	angle  float32
}

func (o *OrbitScript) Start(camera *renderer.Camera) {
	offset := camera.Position.Sub(o.Params.Target)
	o.radius = o.Params.Radius
	if o.radius <= 0 {
		o.radius = mgl32.Vec2{offset.X(), offset.Z()}.Len()
	}
	o.height = offset.Y()
	o.angle = float32(math.Atan2(float64(offset.Z()), float64(offset.X())))
}

func (o *OrbitScript) Update(camera *renderer.Camera, deltaTime float32) {
	o.angle += deltaTime * o.Params.Speed

	x := float32(math.Cos(float64(o.angle))) * o.radius
	z := float32(math.Sin(float64(o.angle))) * o.radius

	camera.Position = o.Params.Target.Add(mgl32.Vec3{x, o.height, z})
	camera.LookAt(o.Params.Target)
}

// BobScript moves the camera up and down around its start height, taking it
// through the water level when the amplitude allows.
type BobScript struct {
	Params ScriptParams
	baseY  float32
	time   float32
}

func (b *BobScript) Start(camera *renderer.Camera) {
	b.baseY = camera.Position.Y()
}

func (b *BobScript) Update(camera *renderer.Camera, deltaTime float32) {
	b.time += deltaTime * b.Params.Speed
	camera.Position[1] = b.baseY + b.Params.Radius*float32(math.Sin(float64(b.time)))
}
