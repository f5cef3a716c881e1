package effects

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestGlitchScanLineJitter(t *testing.T) {
	cases := []struct {
		jitter float32
		want   mgl32.Vec2
	}{
		{0, mgl32.Vec2{0.002, 1}},
		{1, mgl32.Vec2{0.002 + 0.05, 0}},
		{0.5, mgl32.Vec2{0.002 + 0.125*0.05, 0.4}},
	}
	for _, tc := range cases {
		table := GlitchParameters(GlitchSettings{ScanLineJitter: tc.jitter}, 0, 0)
		got, ok := table.Vec2("ScanLineJitter")
		if !ok {
			t.Fatalf("jitter %v: ScanLineJitter missing", tc.jitter)
		}
		if !scalar.EqualWithinAbs(float64(got[0]), float64(tc.want[0]), 1e-7) ||
			!scalar.EqualWithinAbs(float64(got[1]), float64(tc.want[1]), 1e-6) {
			t.Errorf("jitter %v: ScanLineJitter = %v, want %v", tc.jitter, got, tc.want)
		}
	}
}

func TestGlitchThresholdClamps(t *testing.T) {
	table := GlitchParameters(GlitchSettings{ScanLineJitter: 1}, 0, 0)
	v, _ := table.Vec2("ScanLineJitter")
	if v[1] != 0 {
		t.Errorf("threshold = %v, want exactly 0", v[1])
	}
}

func TestGlitchParameterKeys(t *testing.T) {
	s := GlitchSettings{ScanLineJitter: 0.2, VerticalJump: 0.3, HorizontalShake: 0.5, ColorDrift: 0.25}
	table := GlitchParameters(s, 4, 2)

	if len(table) != 4 {
		t.Errorf("expected 4 parameters, got %d", len(table))
	}
	if v, _ := table.Vec2("VerticalJump"); v != (mgl32.Vec2{0.3, 4}) {
		t.Errorf("VerticalJump = %v", v)
	}
	if f, _ := table.Float("HorizontalShake"); !scalar.EqualWithinAbs(float64(f), 0.1, 1e-7) {
		t.Errorf("HorizontalShake = %v, want 0.1", f)
	}
	drift, _ := table.Vec2("ColorDrift")
	if !scalar.EqualWithinAbs(float64(drift[0]), 0.01, 1e-7) {
		t.Errorf("ColorDrift amount = %v, want 0.01", drift[0])
	}
	if !scalar.EqualWithinAbs(float64(drift[1]), 2*606.11, 1e-3) {
		t.Errorf("ColorDrift phase = %v, want %v", drift[1], 2*606.11)
	}
}

func TestGlitchRequiresProgram(t *testing.T) {
	g := NewGlitch(GlitchSettings{})
	err := g.Activate(newFakeResources())
	if !errors.Is(err, ErrNoProgram) {
		t.Fatalf("Activate error = %v, want ErrNoProgram", err)
	}
	if g.State() != Uninitialized {
		t.Errorf("state = %v after failed activation", g.State())
	}
}

func TestGlitchActivationFailurePropagates(t *testing.T) {
	g := NewGlitch(GlitchSettings{Shader: "missing.frag"})
	if err := g.Activate(newFakeResources()); err == nil {
		t.Fatal("expected load error")
	}
}

func TestGlitchRenderAdvancesJumpTime(t *testing.T) {
	res := newFakeResources()
	prog := &fakeProgram{name: "glitch"}
	res.programs["glitch.frag"] = prog

	g := NewGlitch(GlitchSettings{Shader: "glitch.frag", VerticalJump: 1})
	if err := g.Activate(res); err != nil {
		t.Fatal(err)
	}

	b := &recordingBlitter{}
	g.Render(Frame{Delta: 1, Elapsed: 1}, b, namedTarget("src"), namedTarget("dst"))

	if len(b.calls) != 1 || b.calls[0].prog != prog {
		t.Fatalf("expected one shaded blit, got %+v", b.calls)
	}
	jump, _ := b.calls[0].params.Vec2("VerticalJump")
	if jump[1] != 11.3 {
		t.Errorf("jump time = %v, want 11.3", jump[1])
	}
	if g.Animation().JumpTime != 11.3 {
		t.Errorf("state jump time = %v", g.Animation().JumpTime)
	}
}

func TestGlitchLifecycleReleasesProgram(t *testing.T) {
	res := newFakeResources()
	res.programs["glitch.frag"] = &fakeProgram{name: "glitch"}
	g := NewGlitch(GlitchSettings{Shader: "glitch.frag"})

	for i := 0; i < 3; i++ {
		if err := g.Activate(res); err != nil {
			t.Fatal(err)
		}
		// A second activation is a no-op.
		if err := g.Activate(res); err != nil {
			t.Fatal(err)
		}
		g.Deactivate()
		g.Deactivate()
	}
	if res.loadedPrograms != 3 || res.releasedProgram != 3 {
		t.Errorf("loaded %d, released %d programs; want 3 and 3", res.loadedPrograms, res.releasedProgram)
	}
}

func TestGlitchRenderBeforeActivateCopies(t *testing.T) {
	g := NewGlitch(GlitchSettings{Shader: "glitch.frag"})
	b := &recordingBlitter{}
	g.Render(Frame{Delta: 1}, b, namedTarget("src"), namedTarget("dst"))
	if len(b.calls) != 1 || b.calls[0].prog != nil {
		t.Errorf("expected a plain copy, got %+v", b.calls)
	}
}
