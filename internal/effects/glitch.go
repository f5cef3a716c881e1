package effects

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// GlitchName is the chain name of the analogue glitch effect.
	GlitchName = "glitch"

	colorDriftPhaseRate float32 = 606.11
)

// GlitchSettings are the user tunables of the analogue glitch. All amounts
// are in [0, 1].
type GlitchSettings struct {
	Shader          string  `yaml:"shader"`
	ScanLineJitter  float32 `yaml:"scan_line_jitter"`
	VerticalJump    float32 `yaml:"vertical_jump"`
	HorizontalShake float32 `yaml:"horizontal_shake"`
	ColorDrift      float32 `yaml:"color_drift"`
}

// Glitch emulates a misbehaving analogue video signal: jittering scan lines,
// vertical roll, horizontal shake and color channel drift.
type Glitch struct {
	base
	Settings GlitchSettings
	anim     AnimationState
}

func NewGlitch(settings GlitchSettings) *Glitch {
	return &Glitch{
		base:     newBase(GlitchName),
		Settings: settings,
		anim:     NewAnimationState(),
	}
}

func (g *Glitch) RequiresDepth() bool { return false }

// Activate acquires the glitch program. The glitch has no meaningful
// pass-through, so a missing program is an error.
func (g *Glitch) Activate(res Resources) error {
	if g.ready() {
		return nil
	}
	g.attach(res)
	if err := g.loadProgram(g.Settings.Shader, true); err != nil {
		g.release()
		return err
	}
	g.anim = NewAnimationState()
	g.markReady()
	return nil
}

func (g *Glitch) Deactivate() {
	if !g.ready() {
		return
	}
	g.release()
	g.logDeactivated()
}

// Animation returns the current accumulator state.
func (g *Glitch) Animation() AnimationState { return g.anim }

// Parameters advances the jump phase by one frame and returns the full table.
func (g *Glitch) Parameters(frame Frame) ParameterTable {
	g.anim.JumpTime = AdvanceJumpTime(g.anim.JumpTime, frame.Delta, g.Settings.VerticalJump)
	return GlitchParameters(g.Settings, g.anim.JumpTime, frame.Elapsed)
}

func (g *Glitch) Render(frame Frame, b Blitter, src, dst Target) {
	if !g.ready() {
		b.Copy(src, dst)
		return
	}
	Composite(b, src, dst, g.Parameters(frame), g.program)
}

// GlitchParameters maps glitch settings onto the shading stage table.
func GlitchParameters(s GlitchSettings, jumpTime, elapsed float32) ParameterTable {
	jitter := s.ScanLineJitter
	threshold := clamp01(1 - jitter*1.2)
	displacement := 0.002 + jitter*jitter*jitter*0.05

	return ParameterTable{
		"ScanLineJitter":  mgl32.Vec2{displacement, threshold},
		"VerticalJump":    mgl32.Vec2{s.VerticalJump, jumpTime},
		"HorizontalShake": s.HorizontalShake * 0.2,
		"ColorDrift":      mgl32.Vec2{s.ColorDrift * 0.04, elapsed * colorDriftPhaseRate},
	}
}
