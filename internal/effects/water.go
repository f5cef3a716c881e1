package effects

import (
	"GopherFX/internal/logger"

	"go.uber.org/zap"
)

const WaterName = "water"

// WaterSettings are the user tunables of the water level overlay.
type WaterSettings struct {
	Shader         string  `yaml:"shader"`
	WaterTexture   string  `yaml:"water_texture"`
	WaterLevel     float32 `yaml:"water_level"`     // world height of the plane
	WaterDirection float32 `yaml:"water_direction"` // heading, degrees 0-360
	WaterSpeed     float32 `yaml:"water_speed"`     // 0-20
	WaterTint      Color   `yaml:"water_tint"`
	NoiseTexture   string  `yaml:"noise_texture"`
	NoiseDirection float32 `yaml:"noise_direction"` // heading, degrees 0-360
	NoiseSpeed     float32 `yaml:"noise_speed"`     // 0-20
	NoiseStrength  float32 `yaml:"noise_strength"`  // 0-2
}

func DefaultWaterSettings() WaterSettings {
	return WaterSettings{
		WaterLevel:     10,
		WaterDirection: 37,
		WaterSpeed:     5,
		WaterTint:      White,
		NoiseDirection: 17,
		NoiseSpeed:     7,
		NoiseStrength:  0.35,
	}
}

// Water overlays a moving, noise perturbed water plane at a fixed world
// height. The shading stage rebuilds each pixel's world position from depth
// using the far plane basis computed here.
type Water struct {
	base
	Settings     WaterSettings
	water        TextureRef
	noise        TextureRef
	warnedCamera bool
}

func NewWater(settings WaterSettings) *Water {
	return &Water{
		base:     newBase(WaterName),
		Settings: settings,
	}
}

// RequiresDepth is true: world positions come from the depth buffer.
func (w *Water) RequiresDepth() bool { return true }

func (w *Water) Activate(res Resources) error {
	if w.ready() {
		return nil
	}
	w.attach(res)
	if err := w.loadProgram(w.Settings.Shader, false); err != nil {
		w.release()
		return err
	}
	w.water = w.loadTexture("WaterTexture", w.Settings.WaterTexture)
	w.noise = w.loadTexture("NoiseMap", w.Settings.NoiseTexture)
	w.warnedCamera = false
	w.markReady()
	return nil
}

func (w *Water) Deactivate() {
	if !w.ready() {
		return
	}
	w.release()
	w.water, w.noise = TextureRef{}, TextureRef{}
	w.logDeactivated()
}

// Parameters returns the full water table for frame. Without a camera
// sample the basis vectors are zero.
func (w *Water) Parameters(frame Frame) ParameterTable {
	var basis ReconstructionBasis
	if frame.Camera != nil {
		basis = Reconstruct(*frame.Camera)
	}
	return WaterParameters(w.Settings, basis, w.water, w.noise)
}

func (w *Water) Render(frame Frame, b Blitter, src, dst Target) {
	if !w.ready() || !w.hasProgram() {
		b.Copy(src, dst)
		return
	}
	if frame.Camera == nil {
		if !w.warnedCamera {
			logger.Log.Warn("No camera sample for frame, water passes through",
				zap.String("effect", w.name))
			w.warnedCamera = true
		}
		b.Copy(src, dst)
		return
	}
	Composite(b, src, dst, w.Parameters(frame), w.program)
}

// WaterParameters maps water settings and the far plane basis onto the
// shading stage table.
func WaterParameters(s WaterSettings, basis ReconstructionBasis, water, noise TextureRef) ParameterTable {
	flow := ResolveDirection(s.WaterDirection, s.WaterSpeed)
	noiseFlow := ResolveDirection(s.NoiseDirection, s.NoiseSpeed).WithStrength(s.NoiseStrength)

	return ParameterTable{
		"Vector_X":       vec4w0(basis.EdgeX),
		"Vector_Y":       vec4w0(basis.EdgeY),
		"Screen_Corner":  vec4w0(basis.Origin),
		"WaterTexture":   water,
		"WaterLevel":     s.WaterLevel,
		"WaterDirection": flow.Vec4(),
		"ColorTint":      s.WaterTint,
		"NoiseMap":       noise,
		"NoiseDirection": noiseFlow.Vec4(),
	}
}
