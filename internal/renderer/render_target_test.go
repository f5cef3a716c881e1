package renderer

import (
	"errors"
	"testing"
)

// headlessTargets swaps the GL allocation for counters. Allocations wider
// than failWidth fail.
func headlessTargets(t *testing.T, failWidth int) *[]uint32 {
	t.Helper()
	origAlloc, origFree := allocateAttachments, freeAttachments
	t.Cleanup(func() { allocateAttachments, freeAttachments = origAlloc, origFree })

	next := uint32(0)
	var freed []uint32
	allocateAttachments = func(width, height int, withDepth bool) (attachments, error) {
		if width > failWidth {
			return attachments{}, errors.New("framebuffer incomplete")
		}
		next += 3
		a := attachments{fbo: next, color: next + 1}
		if withDepth {
			a.depth = next + 2
		}
		return a, nil
	}
	freeAttachments = func(a attachments) { freed = append(freed, a.fbo) }
	return &freed
}

func TestRenderTargetResize(t *testing.T) {
	freed := headlessTargets(t, 4096)

	rt, err := NewRenderTarget(640, 480, true)
	if err != nil {
		t.Fatal(err)
	}
	old := rt.FBO
	if err := rt.Resize(800, 600); err != nil {
		t.Fatal(err)
	}
	if w, h := rt.Size(); w != 800 || h != 600 {
		t.Errorf("size = %dx%d", w, h)
	}
	if rt.FBO == old || rt.Depth == 0 || rt.IsScreen() {
		t.Errorf("target = %+v", rt)
	}
	if len(*freed) != 1 || (*freed)[0] != old {
		t.Errorf("freed = %v, want [%d]", *freed, old)
	}
}

func TestRenderTargetResizeFailureKeepsTarget(t *testing.T) {
	freed := headlessTargets(t, 1000)

	rt, err := NewRenderTarget(640, 480, false)
	if err != nil {
		t.Fatal(err)
	}
	before := *rt
	if err := rt.Resize(2000, 1000); err == nil {
		t.Fatal("expected resize error")
	}
	if *rt != before {
		t.Errorf("target changed after failed resize: %+v, want %+v", *rt, before)
	}
	if rt.IsScreen() || len(*freed) != 0 {
		t.Error("failed resize must not free or demote the target")
	}
}

func TestResizeAllRollsBack(t *testing.T) {
	headlessTargets(t, 1000)

	small, err := NewRenderTarget(100, 100, false)
	if err != nil {
		t.Fatal(err)
	}
	big, err := NewRenderTarget(100, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	screen := NewScreenTarget(100, 100)

	if err := ResizeAll(800, 600, small, big, screen); err != nil {
		t.Fatal(err)
	}

	allocateAttachments = func(width, height int, withDepth bool) (attachments, error) {
		if withDepth {
			return attachments{}, errors.New("no depth")
		}
		return attachments{fbo: 90, color: 91}, nil
	}
	if err := ResizeAll(1024, 768, small, big, screen); err == nil {
		t.Fatal("expected error")
	}
	for _, rt := range []*RenderTarget{small, big, screen} {
		if w, h := rt.Size(); w != 800 || h != 600 {
			t.Errorf("target left at %dx%d, want 800x600", w, h)
		}
	}
}

func TestScreenTarget(t *testing.T) {
	freed := headlessTargets(t, 0)
	screen := NewScreenTarget(320, 240)
	if !screen.IsScreen() {
		t.Fatal("screen target should report IsScreen")
	}
	if err := screen.Resize(640, 480); err != nil {
		t.Fatal(err)
	}
	screen.Delete()
	if w, _ := screen.Size(); w != 640 || len(*freed) != 0 {
		t.Errorf("width = %d, freed = %v", w, *freed)
	}
}
