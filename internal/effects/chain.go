package effects

import (
	"fmt"

	"GopherFX/internal/logger"

	"go.uber.org/zap"
)

// Chain runs effects in order on one camera's frame, ping-ponging between
// targets so no effect reads the buffer it writes.
type Chain struct {
	effects       []Effect
	res           Resources
	warnedScratch bool
}

// NewChain builds an inactive chain from effects as given; names are not
// checked here, config.Validate and Add do that.
func NewChain(effects ...Effect) *Chain {
	return &Chain{effects: effects}
}

// Effects returns the effects in render order.
func (c *Chain) Effects() []Effect {
	return c.effects
}

// Find returns the effect with the given name or nil.
func (c *Chain) Find(name string) Effect {
	for _, e := range c.effects {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

// Add appends e. Names are unique within a chain. If the chain is active e
// is activated immediately.
func (c *Chain) Add(e Effect) error {
	if c.Find(e.Name()) != nil {
		return fmt.Errorf("add %s: %w", e.Name(), ErrDuplicateEffect)
	}
	if c.res != nil {
		if err := e.Activate(c.res); err != nil {
			return fmt.Errorf("activate %s: %w", e.Name(), err)
		}
	}
	c.effects = append(c.effects, e)
	return nil
}

// Remove deactivates and drops e.
func (c *Chain) Remove(e Effect) {
	for i, existing := range c.effects {
		if existing == e {
			e.Deactivate()
			c.effects = append(c.effects[:i], c.effects[i+1:]...)
			return
		}
	}
}

// RequiresDepth reports whether any enabled effect needs the depth buffer.
func (c *Chain) RequiresDepth() bool {
	for _, e := range c.effects {
		if e.Enabled() && e.RequiresDepth() {
			return true
		}
	}
	return false
}

// Activate activates every effect. On failure the effects activated by this
// call are deactivated again and the error is returned; effects that were
// already Ready stay Ready.
func (c *Chain) Activate(res Resources) error {
	activated := make([]Effect, 0, len(c.effects))
	for _, e := range c.effects {
		wasReady := e.State() == Ready
		if err := e.Activate(res); err != nil {
			for j := len(activated) - 1; j >= 0; j-- {
				activated[j].Deactivate()
			}
			return fmt.Errorf("activate %s: %w", e.Name(), err)
		}
		if !wasReady {
			activated = append(activated, e)
		}
	}
	c.res = res
	logger.Log.Info("Effect chain activated", zap.Int("effects", len(c.effects)))
	return nil
}

// Deactivate releases the resources of every effect, last first.
func (c *Chain) Deactivate() {
	for i := len(c.effects) - 1; i >= 0; i-- {
		c.effects[i].Deactivate()
	}
	c.res = nil
}

// Render composites src into dst through every enabled effect. scratch is
// only touched when two or more effects are enabled.
func (c *Chain) Render(frame Frame, b Blitter, src, dst, scratch Target) {
	active := make([]Effect, 0, len(c.effects))
	for _, e := range c.effects {
		if e.Enabled() {
			active = append(active, e)
		}
	}

	if len(active) == 0 {
		b.Copy(src, dst)
		return
	}
	if len(active) > 1 && scratch == nil {
		if !c.warnedScratch {
			logger.Log.Warn("No scratch target, only the first effect runs",
				zap.Int("enabled", len(active)))
			c.warnedScratch = true
		}
		active = active[:1]
	}

	in := src
	for i, e := range active {
		e.Render(frame, b, in, pingPongTarget(i, len(active), dst, scratch))
		in = pingPongTarget(i, len(active), dst, scratch)
	}
}

// pingPongTarget picks the output of step i out of n. The last step writes
// dst, the one before it scratch, and so on alternating backwards.
func pingPongTarget(i, n int, dst, scratch Target) Target {
	if (n-1-i)%2 == 0 {
		return dst
	}
	return scratch
}
