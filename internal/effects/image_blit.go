package effects

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ImageTarget is a CPU side Target backed by an RGBA image.
type ImageTarget struct {
	Image *image.RGBA
}

// NewImageTarget allocates a width x height target.
func NewImageTarget(width, height int) *ImageTarget {
	return &ImageTarget{Image: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (t *ImageTarget) Size() (int, int) {
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// ImageShader is a Program that can run on the CPU.
type ImageShader interface {
	Program
	ShadeImage(src, dst *image.RGBA, params ParameterTable)
}

// ImageBlitter implements Blitter for ImageTargets. It is the headless
// fallback: programs that are not ImageShaders degrade to a copy.
type ImageBlitter struct{}

func (ImageBlitter) Copy(src, dst Target) {
	s, d := imageOf(src), imageOf(dst)
	if s == nil || d == nil {
		return
	}
	if s.Bounds().Size() == d.Bounds().Size() {
		xdraw.Copy(d, d.Bounds().Min, s, s.Bounds(), xdraw.Src, nil)
		return
	}
	xdraw.ApproxBiLinear.Scale(d, d.Bounds(), s, s.Bounds(), xdraw.Src, nil)
}

func (b ImageBlitter) Draw(src, dst Target, prog Program, params ParameterTable) {
	shader, ok := prog.(ImageShader)
	if !ok {
		b.Copy(src, dst)
		return
	}
	s, d := imageOf(src), imageOf(dst)
	if s == nil || d == nil {
		return
	}
	shader.ShadeImage(s, d, params)
}

func imageOf(t Target) *image.RGBA {
	it, ok := t.(*ImageTarget)
	if !ok || it == nil {
		return nil
	}
	return it.Image
}
