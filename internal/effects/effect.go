package effects

import (
	"errors"
)

var (
	// ErrNoProgram is returned when an effect that cannot pass frames through
	// is activated without a shading program.
	ErrNoProgram = errors.New("effects: no shading program configured")

	// ErrDuplicateEffect is returned when a chain already holds an effect of
	// the same name.
	ErrDuplicateEffect = errors.New("effects: duplicate effect name")
)

// LifecycleState tags whether an effect holds its resources.
type LifecycleState int

const (
	Uninitialized LifecycleState = iota
	Ready
)

func (s LifecycleState) String() string {
	switch s {
	case Ready:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Frame carries the host's per-frame inputs.
type Frame struct {
	Delta   float32 // seconds since the previous frame
	Elapsed float32 // seconds since start
	Width   int
	Height  int
	Camera  *CameraFrustumSample // nil when the host has no camera for this frame
}

// Target is a color (and optionally depth) buffer owned by the host.
type Target interface {
	Size() (width, height int)
}

// Program is a bound shading stage program.
type Program interface {
	Name() string
}

// Blitter performs full-screen copies between targets.
type Blitter interface {
	// Copy transfers src to dst unchanged.
	Copy(src, dst Target)
	// Draw runs prog over src into dst with the given parameters.
	Draw(src, dst Target, prog Program, params ParameterTable)
}

// Resources is the host side of effect activation.
type Resources interface {
	LoadProgram(path string) (Program, error)
	ReleaseProgram(prog Program)
	LoadTexture(path string) (TextureRef, error)
	ReleaseTexture(tex TextureRef)
	// PlaceholderTexture is a 1x1 texture owned by the host. Effects never
	// release it.
	PlaceholderTexture() TextureRef
}

// Effect is one full-screen post-processing step.
type Effect interface {
	Name() string
	RequiresDepth() bool
	State() LifecycleState
	Enabled() bool
	SetEnabled(enabled bool)
	Activate(res Resources) error
	Deactivate()
	Render(frame Frame, b Blitter, src, dst Target)
}
