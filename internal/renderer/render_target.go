package renderer

import (
	"fmt"

	"GopherFX/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// RenderTarget is a framebuffer with a color texture and an optional depth
// texture. The screen target wraps the window's default framebuffer.
type RenderTarget struct {
	FBO       uint32
	Color     uint32
	Depth     uint32
	Width     int
	Height    int
	withDepth bool
	screen    bool
}

// attachments are the GL objects behind one offscreen target.
type attachments struct {
	fbo, color, depth uint32
}

// GL entry points, replaceable so resize bookkeeping can be tested headless.
var (
	allocateAttachments = glAllocateAttachments
	freeAttachments     = glFreeAttachments
)

// NewScreenTarget wraps the default framebuffer.
func NewScreenTarget(width, height int) *RenderTarget {
	return &RenderTarget{Width: width, Height: height, screen: true}
}

// NewRenderTarget allocates a width x height offscreen target.
func NewRenderTarget(width, height int, withDepth bool) (*RenderTarget, error) {
	a, err := allocateAttachments(width, height, withDepth)
	if err != nil {
		return nil, err
	}
	t := &RenderTarget{withDepth: withDepth}
	t.adopt(a, width, height)
	return t, nil
}

func (t *RenderTarget) Size() (int, int) { return t.Width, t.Height }

// IsScreen reports whether t is the default framebuffer.
func (t *RenderTarget) IsScreen() bool { return t.screen }

// Resize reallocates the attachments. On failure t keeps its old
// attachments and size. The screen target only records the new size.
func (t *RenderTarget) Resize(width, height int) error {
	if width == t.Width && height == t.Height {
		return nil
	}
	if t.screen {
		t.Width, t.Height = width, height
		return nil
	}
	a, err := allocateAttachments(width, height, t.withDepth)
	if err != nil {
		return err
	}
	t.Delete()
	t.adopt(a, width, height)
	return nil
}

func (t *RenderTarget) adopt(a attachments, width, height int) {
	t.FBO, t.Color, t.Depth = a.fbo, a.color, a.depth
	t.Width, t.Height = width, height
}

// Bind makes t the draw framebuffer and sets the viewport to cover it.
func (t *RenderTarget) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)
	gl.Viewport(0, 0, int32(t.Width), int32(t.Height))
}

func (t *RenderTarget) Delete() {
	if t.screen || t.FBO == 0 {
		return
	}
	freeAttachments(attachments{fbo: t.FBO, color: t.Color, depth: t.Depth})
	t.FBO, t.Color, t.Depth = 0, 0, 0
}

func glFreeAttachments(a attachments) {
	if a.depth != 0 {
		gl.DeleteTextures(1, &a.depth)
	}
	gl.DeleteTextures(1, &a.color)
	gl.DeleteFramebuffers(1, &a.fbo)
}

func glAllocateAttachments(width, height int, withDepth bool) (attachments, error) {
	if width <= 0 || height <= 0 {
		return attachments{}, fmt.Errorf("render target size %dx%d", width, height)
	}

	var cleanup Unwind
	defer cleanup.Unwind()

	var fbo, color, depth uint32
	gl.GenFramebuffers(1, &fbo)
	cleanup.Add(func() { gl.DeleteFramebuffers(1, &fbo) })
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)

	gl.GenTextures(1, &color)
	cleanup.Add(func() { gl.DeleteTextures(1, &color) })
	gl.BindTexture(gl.TEXTURE_2D, color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, color, 0)

	if withDepth {
		gl.GenTextures(1, &depth)
		cleanup.Add(func() { gl.DeleteTextures(1, &depth) })
		gl.BindTexture(gl.TEXTURE_2D, depth)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT32F, int32(width), int32(height), 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, depth, 0)
	}

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return attachments{}, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	cleanup.Discard()
	logger.Log.Debug("Render target allocated",
		zap.Uint32("fbo", fbo),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("depth", withDepth))
	return attachments{fbo: fbo, color: color, depth: depth}, nil
}

// ResizeAll resizes targets together. If one fails, the ones already resized
// go back to their previous size so every target keeps matching.
func ResizeAll(width, height int, targets ...*RenderTarget) error {
	for i, t := range targets {
		oldWidth, oldHeight := t.Size()
		if err := t.Resize(width, height); err != nil {
			for j := i - 1; j >= 0; j-- {
				if rerr := targets[j].Resize(oldWidth, oldHeight); rerr != nil {
					logger.Log.Error("Failed to restore render target", zap.Error(rerr))
				}
			}
			return fmt.Errorf("resize to %dx%d: %w", width, height, err)
		}
	}
	return nil
}
