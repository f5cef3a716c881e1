package renderer

import (
	"GopherFX/internal/effects"
	"GopherFX/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// GLBlitter implements effects.Blitter for RenderTargets.
type GLBlitter struct {
	// Depth is the target holding the scene depth. Draw binds its depth
	// texture as DepthTex so effects further down a chain still see it.
	Depth *RenderTarget

	vao           uint32
	warnedForeign bool
}

// NewGLBlitter needs a current GL context. Core profile refuses draws
// without a bound vertex array, so the blitter keeps an empty one.
func NewGLBlitter() *GLBlitter {
	b := &GLBlitter{}
	gl.GenVertexArrays(1, &b.vao)
	return b
}

// Copy transfers src to dst with glBlitFramebuffer.
func (b *GLBlitter) Copy(src, dst effects.Target) {
	s, d, ok := b.targets(src, dst)
	if !ok {
		return
	}
	filter := uint32(gl.NEAREST)
	if s.Width != d.Width || s.Height != d.Height {
		filter = gl.LINEAR
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, s.FBO)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, d.FBO)
	gl.BlitFramebuffer(
		0, 0, int32(s.Width), int32(s.Height),
		0, 0, int32(d.Width), int32(d.Height),
		gl.COLOR_BUFFER_BIT, filter)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Draw runs prog over src into dst with a full-screen triangle. Programs
// that are not ShaderPrograms degrade to a copy.
func (b *GLBlitter) Draw(src, dst effects.Target, prog effects.Program, params effects.ParameterTable) {
	sp, ok := prog.(*ShaderProgram)
	if !ok || sp.program == 0 {
		b.Copy(src, dst)
		return
	}
	s, d, ok := b.targets(src, dst)
	if !ok {
		return
	}

	d.Bind()
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	sp.Use()

	gl.ActiveTexture(gl.TEXTURE0 + mainTexUnit)
	gl.BindTexture(gl.TEXTURE_2D, s.Color)
	sp.uniforms.SetInt("MainTex", mainTexUnit)

	if b.Depth != nil && b.Depth.Depth != 0 {
		gl.ActiveTexture(gl.TEXTURE0 + depthTexUnit)
		gl.BindTexture(gl.TEXTURE_2D, b.Depth.Depth)
		sp.uniforms.SetInt("DepthTex", depthTexUnit)
	}
	sp.uniforms.SetVec2("ScreenSize", mgl32.Vec2{float32(d.Width), float32(d.Height)})

	sp.Apply(params, firstParameterUnit)

	b.drawFullscreen()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (b *GLBlitter) drawFullscreen() {
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

func (b *GLBlitter) Delete() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}

func (b *GLBlitter) targets(src, dst effects.Target) (*RenderTarget, *RenderTarget, bool) {
	s, sok := src.(*RenderTarget)
	d, dok := dst.(*RenderTarget)
	if !sok || !dok || s == nil || d == nil {
		if !b.warnedForeign {
			logger.Log.Warn("GL blitter got a target it does not own, skipping",
				zap.String("src", targetKind(src)), zap.String("dst", targetKind(dst)))
			b.warnedForeign = true
		}
		return nil, nil, false
	}
	return s, d, true
}

func targetKind(t effects.Target) string {
	switch t.(type) {
	case *RenderTarget:
		return "render-target"
	case nil:
		return "nil"
	default:
		return "foreign"
	}
}
