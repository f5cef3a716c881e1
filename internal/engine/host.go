package engine

import (
	"fmt"
	"runtime"

	"GopherFX/internal/behaviour"
	"GopherFX/internal/config"
	"GopherFX/internal/effects"
	"GopherFX/internal/logger"
	"GopherFX/internal/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Host owns the window, the GL resources and the frame loop that renders the
// backdrop scene and runs the effect chain over it.
type Host struct {
	Width             int
	Height            int
	Camera            *renderer.Camera
	Chain             *effects.Chain
	EnableCameraInput bool

	cfg       *config.Config
	window    *glfw.Window
	textures  *renderer.TextureManager
	resources *renderer.GLResources
	blitter   *renderer.GLBlitter
	backdrop  *renderer.Backdrop
	targets   frameTargets
	clock     frameClock
	scripts   *behaviour.BehaviourManager

	failedSize [2]int

	onRenderCallback func(deltaTime float64)
}

// frameTargets are the buffers one frame moves through: the scene renders
// into source, the chain writes output, output is copied to screen.
type frameTargets struct {
	source  *renderer.RenderTarget
	scratch *renderer.RenderTarget
	output  *renderer.RenderTarget
	screen  *renderer.RenderTarget
}

func NewHost(cfg *config.Config, chain *effects.Chain) *Host {
	return &Host{
		Width:             cfg.Window.Width,
		Height:            cfg.Window.Height,
		Chain:             chain,
		EnableCameraInput: true,
		cfg:               cfg,
		scripts:           behaviour.NewBehaviourManager(),
	}
}

// AddCameraBehaviour attaches a behaviour that animates the camera each frame.
func (h *Host) AddCameraBehaviour(b behaviour.CameraBehaviour) {
	h.scripts.Add(b)
}

func (h *Host) addConfiguredScript() error {
	name := h.cfg.Camera.Script
	if name == "" {
		return nil
	}
	script := behaviour.CreateScript(name, behaviour.ScriptParams{
		Speed:  h.cfg.Camera.ScriptSpeed,
		Radius: h.cfg.Camera.ScriptRadius,
		Target: h.cfg.Camera.ScriptTarget,
	})
	if script == nil {
		return fmt.Errorf("unknown camera script %q (available: %v)", name, behaviour.GetAvailableScripts())
	}
	h.AddCameraBehaviour(script)
	logger.Log.Info("Camera script attached", zap.String("script", name))
	return nil
}

// SetOnRenderCallback sets a callback that will be called each frame after
// the chain output reached the screen.
func (h *Host) SetOnRenderCallback(callback func(deltaTime float64)) {
	h.onRenderCallback = callback
}

// Run opens the window at (x, y) and blocks until it is closed.
func (h *Host) Run(x, y int) error {
	if err := h.addConfiguredScript(); err != nil {
		return err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(h.Width, h.Height, h.cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	h.window = window
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}
	if h.cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetPos(x, y)
	applyWindowStyle(window, h.cfg.Scene.ClearColor)

	logger.Log.Info("OpenGL context ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	// Render at framebuffer resolution, which differs from the window size on HiDPI displays.
	fbWidth, fbHeight := window.GetFramebufferSize()
	h.Width, h.Height = fbWidth, fbHeight
	h.Camera = renderer.NewCamera(h.cfg.Camera, h.Width, h.Height)

	if err := h.setup(); err != nil {
		h.cleanup()
		return err
	}
	defer h.cleanup()

	window.SetCursorPosCallback(h.mouseCallback)
	window.SetKeyCallback(h.keyCallback)

	h.RenderLoop()
	return nil
}

func (h *Host) setup() error {
	h.textures = renderer.NewTextureManager()
	h.resources = renderer.NewGLResources(h.textures)
	h.blitter = renderer.NewGLBlitter()

	backdrop, err := renderer.NewBackdrop(h.textures, h.cfg.Scene.Backdrop, h.cfg.Scene.ClearColor)
	if err != nil {
		return err
	}
	h.backdrop = backdrop

	if err := h.allocateTargets(); err != nil {
		return err
	}
	if err := h.Chain.Activate(h.resources); err != nil {
		return err
	}
	h.logWaterHorizon()
	return nil
}

func (h *Host) allocateTargets() error {
	var err error
	if h.targets.source, err = renderer.NewRenderTarget(h.Width, h.Height, true); err != nil {
		return fmt.Errorf("source target: %w", err)
	}
	if h.targets.scratch, err = renderer.NewRenderTarget(h.Width, h.Height, false); err != nil {
		return fmt.Errorf("scratch target: %w", err)
	}
	if h.targets.output, err = renderer.NewRenderTarget(h.Width, h.Height, false); err != nil {
		return fmt.Errorf("output target: %w", err)
	}
	h.targets.screen = renderer.NewScreenTarget(h.Width, h.Height)
	h.attachDepth()
	return nil
}

// attachDepth exposes the scene depth to the effects when any enabled effect
// asks for it.
func (h *Host) attachDepth() {
	if h.Chain.RequiresDepth() {
		h.blitter.Depth = h.targets.source
	} else {
		h.blitter.Depth = nil
	}
}

func (h *Host) resize(width, height int) {
	t := h.targets
	if err := renderer.ResizeAll(width, height, t.source, t.scratch, t.output, t.screen); err != nil {
		// Retried every frame while the size differs; report each size once.
		if h.failedSize != [2]int{width, height} {
			logger.Log.Error("Failed to resize render targets", zap.Error(err))
			h.failedSize = [2]int{width, height}
		}
		return
	}
	h.failedSize = [2]int{}
	h.Width, h.Height = width, height
	h.Camera.SetViewport(width, height)
	logger.Log.Debug("Viewport resized", zap.Int("width", width), zap.Int("height", height))
}

func (h *Host) RenderLoop() {
	h.clock.Start(glfw.GetTime())

	for !h.window.ShouldClose() {
		delta, elapsed := h.clock.Tick(glfw.GetTime())

		width, height := h.window.GetFramebufferSize()
		if width > 0 && height > 0 && (width != h.Width || height != h.Height) {
			h.resize(width, height)
		}

		if h.EnableCameraInput {
			h.Camera.ProcessKeyboard(h.window, delta)
		}

		h.scripts.UpdateAll(h.Camera, delta)
		h.renderFrame(delta, elapsed)

		if h.onRenderCallback != nil {
			h.onRenderCallback(float64(delta))
		}

		h.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (h *Host) renderFrame(delta, elapsed float32) {
	h.backdrop.Render(h.blitter, h.targets.source)

	sample := h.Camera.FrustumSample(h.Width, h.Height)
	frame := effects.Frame{
		Delta:   delta,
		Elapsed: elapsed,
		Width:   h.Width,
		Height:  h.Height,
		Camera:  &sample,
	}
	h.Chain.Render(frame, h.blitter, h.targets.source, h.targets.output, h.targets.scratch)
	h.blitter.Copy(h.targets.output, h.targets.screen)
}

func (h *Host) cleanup() {
	if h.Chain != nil {
		h.Chain.Deactivate()
	}
	for _, t := range []*renderer.RenderTarget{h.targets.source, h.targets.scratch, h.targets.output} {
		if t != nil {
			t.Delete()
		}
	}
	if h.backdrop != nil {
		h.backdrop.Delete()
	}
	if h.blitter != nil {
		h.blitter.Delete()
	}
	if h.textures != nil {
		h.textures.LogStats()
		h.textures.Clear()
	}
}

// logWaterHorizon reports where the view center meets the water plane.
func (h *Host) logWaterHorizon() {
	water, ok := h.Chain.Find(effects.WaterName).(*effects.Water)
	if !ok {
		return
	}
	center := h.Camera.ScreenPointToRay(float32(h.Width)/2, float32(h.Height)/2, float32(h.Width), float32(h.Height))
	if hit, dist, point := renderer.RayIntersectWaterPlane(center, water.Settings.WaterLevel); hit {
		logger.Log.Debug("View center meets the water plane",
			zap.Float32("distance", dist),
			zap.Float32s("point", point[:]))
	} else {
		logger.Log.Debug("View center does not reach the water plane",
			zap.Float32("level", water.Settings.WaterLevel))
	}
}

func (h *Host) keyCallback(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if key == glfw.KeyEscape {
		w.SetShouldClose(true)
		return
	}
	if index, ok := effectIndexForKey(key); ok {
		if name, enabled, ok := toggleEffect(h.Chain, index); ok {
			h.attachDepth()
			logger.Log.Info("Effect toggled", zap.String("effect", name), zap.Bool("enabled", enabled))
		}
	}
}

// Mouse look while the right button is held.
func (h *Host) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	if h.EnableCameraInput && w.GetAttrib(glfw.Focused) == glfw.True && w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		h.Camera.ProcessMouse(float32(xpos), float32(ypos))
	} else {
		h.Camera.ResetMouse()
	}
}
