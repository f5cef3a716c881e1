package effects

import (
	"errors"
	"image"
	"image/color"
)

type fakeProgram struct {
	name string
}

func (p *fakeProgram) Name() string { return p.name }

// invertShader is a CPU program used to tell shaded output from copies.
type invertShader struct {
	fakeProgram
	lastParams ParameterTable
}

func (s *invertShader) ShadeImage(src, dst *image.RGBA, params ParameterTable) {
	s.lastParams = params
	for i := 0; i+3 < len(src.Pix) && i+3 < len(dst.Pix); i += 4 {
		dst.Pix[i] = 255 - src.Pix[i]
		dst.Pix[i+1] = 255 - src.Pix[i+1]
		dst.Pix[i+2] = 255 - src.Pix[i+2]
		dst.Pix[i+3] = src.Pix[i+3]
	}
}

type fakeResources struct {
	programs        map[string]Program
	textures        map[string]TextureRef
	placeholder     TextureRef
	loadedPrograms  int
	releasedProgram int
	loadedTextures  int
	releasedTexture int
	failTextures    bool
}

func newFakeResources() *fakeResources {
	return &fakeResources{
		programs:    make(map[string]Program),
		textures:    make(map[string]TextureRef),
		placeholder: TextureRef{ID: 1, Width: 1, Height: 1},
	}
}

func (r *fakeResources) LoadProgram(path string) (Program, error) {
	p, ok := r.programs[path]
	if !ok {
		return nil, errors.New("no such program")
	}
	r.loadedPrograms++
	return p, nil
}

func (r *fakeResources) ReleaseProgram(Program) { r.releasedProgram++ }

func (r *fakeResources) LoadTexture(path string) (TextureRef, error) {
	if r.failTextures {
		return TextureRef{}, errors.New("decode failed")
	}
	t, ok := r.textures[path]
	if !ok {
		t = TextureRef{ID: uint32(10 + len(r.textures)), Width: 64, Height: 64}
		r.textures[path] = t
	}
	r.loadedTextures++
	return t, nil
}

func (r *fakeResources) ReleaseTexture(TextureRef) { r.releasedTexture++ }

func (r *fakeResources) PlaceholderTexture() TextureRef { return r.placeholder }

// recordingBlitter logs every blit so tests can check routing.
type recordingBlitter struct {
	calls []blitCall
}

type blitCall struct {
	src, dst Target
	prog     Program
	params   ParameterTable
}

func (b *recordingBlitter) Copy(src, dst Target) {
	b.calls = append(b.calls, blitCall{src: src, dst: dst})
}

func (b *recordingBlitter) Draw(src, dst Target, prog Program, params ParameterTable) {
	b.calls = append(b.calls, blitCall{src: src, dst: dst, prog: prog, params: params})
}

type namedTarget string

func (namedTarget) Size() (int, int) { return 4, 4 }

func gradientTarget(w, h int) *ImageTarget {
	t := NewImageTarget(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t.Image.SetRGBA(x, y, color.RGBA{R: uint8(x * 17), G: uint8(y * 29), B: uint8(x ^ y), A: 255})
		}
	}
	return t
}
