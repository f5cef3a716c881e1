package renderer

import (
	"fmt"

	"GopherFX/internal/effects"
	"GopherFX/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// Backdrop is the demo scene: a clear color, optionally covered by an image
// drawn full-screen. Depth is cleared to the far plane.
type Backdrop struct {
	ClearColor effects.Color

	textures *TextureManager
	texture  effects.TextureRef
	program  *ShaderProgram
}

// NewBackdrop loads imagePath, or sets up a clear-only scene when it is
// empty. Needs a current GL context.
func NewBackdrop(textures *TextureManager, imagePath string, clear effects.Color) (*Backdrop, error) {
	b := &Backdrop{ClearColor: clear, textures: textures}
	if imagePath == "" {
		return b, nil
	}

	tex, err := textures.LoadTexture(imagePath)
	if err != nil {
		return nil, fmt.Errorf("backdrop %q: %w", imagePath, err)
	}
	prog, err := NewShaderProgram("backdrop", backdropFragmentSource)
	if err != nil {
		textures.ReleaseTexture(tex.ID)
		return nil, err
	}
	b.texture, b.program = tex, prog

	logger.Log.Info("Backdrop loaded",
		zap.String("path", imagePath),
		zap.Int("width", tex.Width),
		zap.Int("height", tex.Height))
	return b, nil
}

// Render draws the scene into dst.
func (b *Backdrop) Render(blitter *GLBlitter, dst *RenderTarget) {
	dst.Bind()
	c := b.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.ClearDepth(1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if b.program != nil {
		gl.Disable(gl.DEPTH_TEST)
		b.program.Use()
		gl.ActiveTexture(gl.TEXTURE0 + mainTexUnit)
		gl.BindTexture(gl.TEXTURE_2D, b.texture.ID)
		b.program.uniforms.SetInt("MainTex", mainTexUnit)
		blitter.drawFullscreen()
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (b *Backdrop) Delete() {
	if b.program != nil {
		b.program.Delete()
		b.program = nil
	}
	if b.texture.ID != 0 {
		b.textures.ReleaseTexture(b.texture.ID)
		b.texture = effects.TextureRef{}
	}
}
