package effects

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Color is a linear RGBA color.
type Color [4]float32

// White is the default tint.
var White = Color{1, 1, 1, 1}

func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4(c)
}

// TextureRef identifies a texture owned by the host.
type TextureRef struct {
	ID     uint32
	Width  int
	Height int
}

// IsZero reports whether t refers to no texture at all.
func (t TextureRef) IsZero() bool {
	return t.ID == 0
}

// ParameterTable maps shading stage parameter names to values. Values are
// one of float32, mgl32.Vec2, mgl32.Vec3, mgl32.Vec4, Color or TextureRef.
type ParameterTable map[string]interface{}

// Float returns the named float parameter.
func (p ParameterTable) Float(name string) (float32, bool) {
	v, ok := p[name].(float32)
	return v, ok
}

// Vec2 returns the named vec2 parameter.
func (p ParameterTable) Vec2(name string) (mgl32.Vec2, bool) {
	v, ok := p[name].(mgl32.Vec2)
	return v, ok
}

// Vec4 returns the named vec4 parameter. Colors are returned as vec4 too.
func (p ParameterTable) Vec4(name string) (mgl32.Vec4, bool) {
	switch v := p[name].(type) {
	case mgl32.Vec4:
		return v, true
	case Color:
		return v.Vec4(), true
	}
	return mgl32.Vec4{}, false
}

// Texture returns the named texture parameter.
func (p ParameterTable) Texture(name string) (TextureRef, bool) {
	v, ok := p[name].(TextureRef)
	return v, ok
}

func clamp01(v float32) float32 {
	return mgl32.Clamp(v, 0, 1)
}

// vec4w0 widens a direction to a vec4 with w = 0.
func vec4w0(v mgl32.Vec3) mgl32.Vec4 {
	return v.Vec4(0)
}
