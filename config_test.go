package fractal

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

// smallConfig is a quick render of the classic view used across tests.
func smallConfig() RenderConfig {
	cfg := DefaultConfig()
	cfg.Width = 61
	cfg.Height = 37
	cfg.MaxIterations = 100
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 800 || cfg.MaxIterations != 256 {
		t.Errorf("DefaultConfig() = %dx%d/%d, want 800x800/256", cfg.Width, cfg.Height, cfg.MaxIterations)
	}
	if cfg.Mode != Mandelbrot || cfg.Zoom != 1 || cfg.ColorMultiplier != 1 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if cfg.JuliaReal != 0 || cfg.JuliaImag != 0 {
		t.Errorf("Julia constant = (%v, %v), want (0, 0)", cfg.JuliaReal, cfg.JuliaImag)
	}
}

func TestRenderConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RenderConfig)
		want   string
	}{
		{"zero width", func(c *RenderConfig) { c.Width = 0 }, "width"},
		{"negative height", func(c *RenderConfig) { c.Height = -3 }, "height"},
		{"zero iterations", func(c *RenderConfig) { c.MaxIterations = 0 }, "iterations"},
		{"zero zoom", func(c *RenderConfig) { c.Zoom = 0 }, "zoom"},
		{"negative zoom", func(c *RenderConfig) { c.Zoom = -1 }, "zoom"},
		{"infinite zoom", func(c *RenderConfig) { c.Zoom = math.Inf(1) }, "zoom"},
		{"nan zoom", func(c *RenderConfig) { c.Zoom = math.NaN() }, "zoom"},
		{"nan center", func(c *RenderConfig) { c.CenterReal = math.NaN() }, "center real"},
		{"infinite julia", func(c *RenderConfig) { c.JuliaImag = math.Inf(-1) }, "julia imag"},
		{"infinite multiplier", func(c *RenderConfig) { c.ColorMultiplier = math.Inf(1) }, "multiplier"},
		{"unknown mode", func(c *RenderConfig) { c.Mode = Mode(7) }, "mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestRenderConfig_ValidateReportsAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	cfg.Height = 0
	cfg.MaxIterations = 0

	err := cfg.Validate()
	for _, want := range []string{"width", "height", "iterations"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, missing %q", err, want)
		}
	}
}

func TestRenderConfig_NegativeMultiplierIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColorMultiplier = -2.5
	cfg.ColorOffset = -0.3
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestMode_Text(t *testing.T) {
	for _, m := range []Mode{Mandelbrot, Julia} {
		b, err := m.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() = %v", m, err)
		}
		var got Mode
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) = %v", b, err)
		}
		if got != m {
			t.Errorf("round trip of %v = %v", m, got)
		}
	}

	if _, err := Mode(9).MarshalText(); err == nil {
		t.Error("MarshalText(Mode(9)) = nil error")
	}
	var m Mode
	if err := m.UnmarshalText([]byte("burningship")); err == nil {
		t.Error("UnmarshalText(burningship) = nil error")
	}
	if s := Mode(9).String(); s != "Mode(9)" {
		t.Errorf("Mode(9).String() = %q", s)
	}
}

func TestRenderConfig_JSON(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = Julia
	cfg.JuliaReal = -0.4
	cfg.JuliaImag = 0.6

	b, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"mode":"julia"`) {
		t.Errorf("json = %s, want mode as text", b)
	}

	var got RenderConfig
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestRenderConfig_Scaled(t *testing.T) {
	cfg := smallConfig()
	s := cfg.scaled(3)
	if s.Width != cfg.Width*3 || s.Height != cfg.Height*3 {
		t.Errorf("scaled(3) = %dx%d", s.Width, s.Height)
	}
	if s.Zoom != cfg.Zoom || s.CenterReal != cfg.CenterReal {
		t.Error("scaled changed the plane framing")
	}
	// Same extent: one output pixel covers three scaled pixels.
	if got, want := NewViewport(s).Scale()*3, NewViewport(cfg).Scale(); math.Abs(got-want) > 1e-15 {
		t.Errorf("scaled pixel size * 3 = %v, want %v", got, want)
	}
}
