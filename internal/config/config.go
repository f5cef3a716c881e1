// Package config loads the effect host configuration from YAML on top of
// embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"GopherFX/internal/effects"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Texture paths with this prefix are generated by the host instead of being
// read from disk, e.g. "procedural:noise/256".
const ProceduralPrefix = "procedural:"

// Config holds everything the demo host needs to run an effect chain.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Scene  SceneConfig  `yaml:"scene"`
	Glitch GlitchConfig `yaml:"glitch"`
	Paper  PaperConfig  `yaml:"paper"`
	Water  WaterConfig  `yaml:"water"`
	Chain  []string     `yaml:"chain"` // effect names in render order
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// CameraConfig places the scene camera. Angles are in degrees.
type CameraConfig struct {
	Position    mgl32.Vec3 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Fov         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`

	// Script names a camera behaviour that animates the camera, empty = manual.
	Script       string     `yaml:"script"`
	ScriptSpeed  float32    `yaml:"script_speed"`
	ScriptRadius float32    `yaml:"script_radius"`
	ScriptTarget mgl32.Vec3 `yaml:"script_target"`
}

// SceneConfig describes what the host draws before the effects run.
type SceneConfig struct {
	Backdrop   string        `yaml:"backdrop"` // image drawn full-screen, empty = clear color only
	ClearColor effects.Color `yaml:"clear_color"`
}

type GlitchConfig struct {
	effects.GlitchSettings `yaml:",inline"`
}

type PaperConfig struct {
	effects.PaperSettings `yaml:",inline"`
	// GenerateSize > 0 replaces an empty paper texture with generated grain.
	GenerateSize int `yaml:"paper_generate_size"`
}

type WaterConfig struct {
	effects.WaterSettings `yaml:",inline"`
	// NoiseGenerateSize > 0 replaces an empty noise texture with a Perlin map.
	NoiseGenerateSize int `yaml:"noise_generate_size"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate clamps effect parameters into their editor ranges and rejects
// settings the host cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalid)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes near=%v far=%v: %w", c.Camera.Near, c.Camera.Far, ErrInvalid)
	}
	c.Camera.Fov = mgl32.Clamp(c.Camera.Fov, 1, 179)

	g := &c.Glitch.GlitchSettings
	g.ScanLineJitter = clamp(g.ScanLineJitter, 0, 1)
	g.VerticalJump = clamp(g.VerticalJump, 0, 1)
	g.HorizontalShake = clamp(g.HorizontalShake, 0, 1)
	g.ColorDrift = clamp(g.ColorDrift, 0, 1)

	p := &c.Paper.PaperSettings
	p.PencilSize = clamp(p.PencilSize, 0, 2)
	p.PencilCorrection = clamp(p.PencilCorrection, 0, 2)
	p.Intensity = clamp(p.Intensity, 0, 1)
	p.AnimationSpeed = clamp(p.AnimationSpeed, 0, 2)
	p.CornerLoss = clamp(p.CornerLoss, 0, 1)
	p.PaperFadeIn = clamp(p.PaperFadeIn, 0, 1)
	p.PaperFadeColor = clamp(p.PaperFadeColor, 0, 1)

	w := &c.Water.WaterSettings
	w.WaterDirection = wrapDegrees(w.WaterDirection)
	w.WaterSpeed = clamp(w.WaterSpeed, 0, 20)
	w.NoiseDirection = wrapDegrees(w.NoiseDirection)
	w.NoiseSpeed = clamp(w.NoiseSpeed, 0, 20)
	w.NoiseStrength = clamp(w.NoiseStrength, 0, 2)

	seen := make(map[string]bool, len(c.Chain))
	for _, name := range c.Chain {
		switch name {
		case effects.GlitchName, effects.PaperName, effects.WaterName:
		default:
			return fmt.Errorf("chain entry %q: %w", name, ErrUnknownEffect)
		}
		if seen[name] {
			return fmt.Errorf("chain entry %q listed twice: %w", name, ErrInvalid)
		}
		seen[name] = true
	}
	return nil
}

// GlitchSettings returns the glitch settings as the effect consumes them.
func (c *Config) GlitchSettings() effects.GlitchSettings {
	return c.Glitch.GlitchSettings
}

// PaperSettings returns the paper settings with generated grain filled in.
func (c *Config) PaperSettings() effects.PaperSettings {
	s := c.Paper.PaperSettings
	if s.PaperTexture == "" && c.Paper.GenerateSize > 0 {
		s.PaperTexture = ProceduralPath("paper", c.Paper.GenerateSize)
	}
	return s
}

// WaterSettings returns the water settings with a generated noise map filled
// in.
func (c *Config) WaterSettings() effects.WaterSettings {
	s := c.Water.WaterSettings
	if s.NoiseTexture == "" && c.Water.NoiseGenerateSize > 0 {
		s.NoiseTexture = ProceduralPath("noise", c.Water.NoiseGenerateSize)
	}
	return s
}

// BuildChain creates the effects listed in Chain, in order.
func (c *Config) BuildChain() *effects.Chain {
	list := make([]effects.Effect, 0, len(c.Chain))
	for _, name := range c.Chain {
		switch name {
		case effects.GlitchName:
			list = append(list, effects.NewGlitch(c.GlitchSettings()))
		case effects.PaperName:
			list = append(list, effects.NewPaper(c.PaperSettings()))
		case effects.WaterName:
			list = append(list, effects.NewWater(c.WaterSettings()))
		}
	}
	return effects.NewChain(list...)
}

// ProceduralPath builds a texture path the host generates on demand.
func ProceduralPath(kind string, size int) string {
	return fmt.Sprintf("%s%s/%d", ProceduralPrefix, kind, size)
}

// ParseProceduralPath splits a path built by ProceduralPath. ok is false for
// ordinary file paths and malformed sizes.
func ParseProceduralPath(path string) (kind string, size int, ok bool) {
	rest := strings.TrimPrefix(path, ProceduralPrefix)
	if rest == path {
		return "", 0, false
	}
	slash := strings.LastIndexByte(rest, '/')
	if slash <= 0 {
		return "", 0, false
	}
	size, err := strconv.Atoi(rest[slash+1:])
	if err != nil || size <= 0 {
		return "", 0, false
	}
	return rest[:slash], size, true
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func clamp(v, lo, hi float32) float32 {
	return mgl32.Clamp(v, lo, hi)
}

// wrapDegrees maps a heading into [0, 360). Headings are periodic, so 400
// means 40.
func wrapDegrees(v float32) float32 {
	d := math.Mod(float64(v), 360)
	if d < 0 {
		d += 360
	}
	return float32(d)
}
