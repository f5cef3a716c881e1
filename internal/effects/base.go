package effects

import (
	"fmt"

	"GopherFX/internal/logger"

	"go.uber.org/zap"
)

// base carries the lifecycle shared by all effects: one program handle and
// the textures loaded for it, acquired on Activate and released on
// Deactivate.
type base struct {
	name     string
	enabled  bool
	state    LifecycleState
	res      Resources
	program  Program
	textures []TextureRef
}

func newBase(name string) base {
	return base{name: name, enabled: true}
}

func (b *base) Name() string            { return b.name }
func (b *base) State() LifecycleState   { return b.state }
func (b *base) Enabled() bool           { return b.enabled }
func (b *base) SetEnabled(enabled bool) { b.enabled = enabled }
func (b *base) Program() Program        { return b.program }
func (b *base) ready() bool             { return b.state == Ready }
func (b *base) attach(res Resources)    { b.res = res }
func (b *base) hasProgram() bool        { return b.program != nil }

// loadProgram acquires the shading program. An empty path leaves the effect
// without a program; required turns that into ErrNoProgram.
func (b *base) loadProgram(path string, required bool) error {
	if path == "" {
		if required {
			return fmt.Errorf("%s: %w", b.name, ErrNoProgram)
		}
		logger.Log.Warn("No shading program configured, frames pass through",
			zap.String("effect", b.name))
		return nil
	}
	prog, err := b.res.LoadProgram(path)
	if err != nil {
		return fmt.Errorf("%s: load program %q: %w", b.name, path, err)
	}
	b.program = prog
	return nil
}

// loadTexture loads path, falling back to the host placeholder when the path
// is empty or cannot be loaded.
func (b *base) loadTexture(slot, path string) TextureRef {
	if path == "" {
		logger.Log.Debug("Texture not configured, using placeholder",
			zap.String("effect", b.name), zap.String("slot", slot))
		return b.res.PlaceholderTexture()
	}
	tex, err := b.res.LoadTexture(path)
	if err != nil {
		logger.Log.Warn("Texture failed to load, using placeholder",
			zap.String("effect", b.name),
			zap.String("slot", slot),
			zap.String("path", path),
			zap.Error(err))
		return b.res.PlaceholderTexture()
	}
	b.textures = append(b.textures, tex)
	return tex
}

// release gives back everything acquired since the last Activate.
func (b *base) release() {
	if b.res != nil {
		for _, tex := range b.textures {
			b.res.ReleaseTexture(tex)
		}
		if b.program != nil {
			b.res.ReleaseProgram(b.program)
		}
	}
	b.textures = b.textures[:0]
	b.program = nil
	b.res = nil
	b.state = Uninitialized
}

func (b *base) markReady() {
	b.state = Ready
	logger.Log.Info("Effect activated",
		zap.String("effect", b.name),
		zap.Bool("program", b.program != nil),
		zap.Int("textures", len(b.textures)))
}

func (b *base) logDeactivated() {
	logger.Log.Info("Effect deactivated", zap.String("effect", b.name))
}
