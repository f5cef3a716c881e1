package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"GopherFX/internal/effects"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	paper := cfg.Paper.PaperSettings
	want := effects.DefaultPaperSettings()
	if paper != want {
		t.Errorf("paper defaults = %+v, want %+v", paper, want)
	}

	water := cfg.Water.WaterSettings
	wantWater := effects.DefaultWaterSettings()
	if water != wantWater {
		t.Errorf("water defaults = %+v, want %+v", water, wantWater)
	}

	if len(cfg.Chain) != 2 || cfg.Chain[0] != effects.WaterName {
		t.Errorf("chain = %v", cfg.Chain)
	}
}

func TestLoadOverlaysUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.yaml")
	data := []byte("water:\n  water_level: 3.5\nchain: [glitch]\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Water.WaterLevel != 3.5 {
		t.Errorf("water level = %v, want 3.5", cfg.Water.WaterLevel)
	}
	if cfg.Water.WaterDirection != 37 {
		t.Errorf("unset fields should keep defaults, direction = %v", cfg.Water.WaterDirection)
	}
	if len(cfg.Chain) != 1 || cfg.Chain[0] != effects.GlitchName {
		t.Errorf("chain = %v", cfg.Chain)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateClamps(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Glitch.ScanLineJitter = 3
	cfg.Glitch.ColorDrift = -1
	cfg.Paper.PencilSize = 5
	cfg.Paper.Intensity = -2
	cfg.Water.WaterDirection = 400
	cfg.Water.NoiseDirection = -30
	cfg.Water.NoiseSpeed = 99
	cfg.Water.NoiseStrength = 2.5

	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		name      string
		got, want float32
	}{
		{"scan line jitter", cfg.Glitch.ScanLineJitter, 1},
		{"color drift", cfg.Glitch.ColorDrift, 0},
		{"pencil size", cfg.Paper.PencilSize, 2},
		{"intensity", cfg.Paper.Intensity, 0},
		{"water direction wraps", cfg.Water.WaterDirection, 40},
		{"noise direction wraps", cfg.Water.NoiseDirection, 330},
		{"noise speed", cfg.Water.NoiseSpeed, 20},
		{"noise strength", cfg.Water.NoiseStrength, 2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown effect", func(c *Config) { c.Chain = []string{"bloom"} }, ErrUnknownEffect},
		{"duplicate effect", func(c *Config) { c.Chain = []string{"paper", "paper"} }, ErrInvalid},
		{"zero window", func(c *Config) { c.Window.Width = 0 }, ErrInvalid},
		{"far before near", func(c *Config) { c.Camera.Far = c.Camera.Near }, ErrInvalid},
	}
	for _, tc := range cases {
		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		tc.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Errorf("%s: error = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestProceduralTextures(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.WaterSettings().NoiseTexture; got != "procedural:noise/256" {
		t.Errorf("noise texture = %q", got)
	}
	if got := cfg.PaperSettings().PaperTexture; got != "procedural:paper/512" {
		t.Errorf("paper texture = %q", got)
	}

	cfg.Water.NoiseTexture = "noise.png"
	if got := cfg.WaterSettings().NoiseTexture; got != "noise.png" {
		t.Errorf("explicit noise texture replaced: %q", got)
	}
	cfg.Paper.GenerateSize = 0
	if got := cfg.PaperSettings().PaperTexture; got != "" {
		t.Errorf("paper texture = %q, want empty", got)
	}
}

func TestParseProceduralPath(t *testing.T) {
	cases := []struct {
		path string
		kind string
		size int
		ok   bool
	}{
		{"procedural:noise/256", "noise", 256, true},
		{ProceduralPath("paper", 64), "paper", 64, true},
		{"textures/water.png", "", 0, false},
		{"procedural:noise", "", 0, false},
		{"procedural:noise/abc", "", 0, false},
		{"procedural:/12", "", 0, false},
		{"procedural:noise/-4", "", 0, false},
	}
	for _, tc := range cases {
		kind, size, ok := ParseProceduralPath(tc.path)
		if kind != tc.kind || size != tc.size || ok != tc.ok {
			t.Errorf("ParseProceduralPath(%q) = %q, %d, %v", tc.path, kind, size, ok)
		}
	}
}

func TestBuildChainOrder(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Chain = []string{effects.GlitchName, effects.WaterName}

	list := cfg.BuildChain().Effects()
	if len(list) != 2 || list[0].Name() != effects.GlitchName || list[1].Name() != effects.WaterName {
		t.Errorf("chain effects = %v", list)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Water.WaterLevel = -2
	cfg.Chain = []string{effects.PaperName}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load written file: %v", err)
	}
	if back.Water.WaterLevel != -2 || len(back.Chain) != 1 || back.Chain[0] != effects.PaperName {
		t.Errorf("reloaded config differs: level %v chain %v", back.Water.WaterLevel, back.Chain)
	}
}
