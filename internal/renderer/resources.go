package renderer

import (
	"fmt"

	"GopherFX/internal/config"
	"GopherFX/internal/effects"
	"GopherFX/internal/logger"

	"go.uber.org/zap"
)

// GLResources implements effects.Resources on top of a TextureManager and
// fragment stages read from disk.
type GLResources struct {
	Textures *TextureManager

	loadProgram func(path string) (*ShaderProgram, error)
}

// NewGLResources needs a current GL context for every call except
// construction.
func NewGLResources(textures *TextureManager) *GLResources {
	return &GLResources{Textures: textures, loadProgram: LoadShaderProgram}
}

func (r *GLResources) LoadProgram(path string) (effects.Program, error) {
	prog, err := r.loadProgram(path)
	if err != nil {
		return nil, err
	}
	return prog, nil
}

func (r *GLResources) ReleaseProgram(prog effects.Program) {
	sp, ok := prog.(*ShaderProgram)
	if !ok {
		logger.Log.Warn("Release of a program this host did not create",
			zap.String("program", prog.Name()))
		return
	}
	sp.Delete()
}

// LoadTexture reads an image file or generates a procedural texture for
// paths built by config.ProceduralPath.
func (r *GLResources) LoadTexture(path string) (effects.TextureRef, error) {
	if _, _, ok := config.ParseProceduralPath(path); ok {
		img, err := GenerateProcedural(path)
		if err != nil {
			return effects.TextureRef{}, err
		}
		return r.Textures.CreateTextureFromImage(img, path)
	}
	ref, err := r.Textures.LoadTexture(path)
	if err != nil {
		return effects.TextureRef{}, fmt.Errorf("load texture %q: %w", path, err)
	}
	return ref, nil
}

func (r *GLResources) ReleaseTexture(tex effects.TextureRef) {
	r.Textures.ReleaseTexture(tex.ID)
}

func (r *GLResources) PlaceholderTexture() effects.TextureRef {
	return r.Textures.Placeholder()
}
