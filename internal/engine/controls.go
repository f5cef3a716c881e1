package engine

import (
	"GopherFX/internal/effects"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// frameClock turns absolute glfw time into per-frame delta and elapsed
// seconds.
type frameClock struct {
	start, last float64
	started     bool
}

func (c *frameClock) Start(now float64) {
	c.start, c.last, c.started = now, now, true
}

// Tick returns the seconds since the previous tick and since Start. A clock
// that was never started starts now.
func (c *frameClock) Tick(now float64) (delta, elapsed float32) {
	if !c.started {
		c.Start(now)
	}
	d := now - c.last
	if d < 0 {
		d = 0
	}
	c.last = now
	return float32(d), float32(now - c.start)
}

// effectIndexForKey maps keys 1-9 to chain positions 0-8.
func effectIndexForKey(key glfw.Key) (int, bool) {
	if key < glfw.Key1 || key > glfw.Key9 {
		return 0, false
	}
	return int(key - glfw.Key1), true
}

// toggleEffect flips the enable flag of the effect at index.
func toggleEffect(chain *effects.Chain, index int) (name string, enabled bool, ok bool) {
	list := chain.Effects()
	if index < 0 || index >= len(list) {
		return "", false, false
	}
	e := list[index]
	e.SetEnabled(!e.Enabled())
	return e.Name(), e.Enabled(), true
}

// colorRef packs c as a Win32 COLORREF (0x00BBGGRR), ignoring alpha.
func colorRef(c effects.Color) uint32 {
	channel := func(v float32) uint32 {
		return uint32(mgl32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return channel(c[0]) | channel(c[1])<<8 | channel(c[2])<<16
}
