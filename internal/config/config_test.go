package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[window]
width = 800

[ecs]
max_entities = 16

[loop]
tick_rate = "33ms"
frames = 120

[logging]
level = "debug"
`), "test")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 720 {
		t.Errorf("window = %dx%d, want 800x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.ECS.MaxEntities != 16 {
		t.Errorf("max_entities = %d, want 16", cfg.ECS.MaxEntities)
	}
	if cfg.Loop.TickRate != 33*time.Millisecond || cfg.Loop.Frames != 120 {
		t.Errorf("loop = %+v", cfg.Loop)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Paths.Scene != "data/yaml/scene.yaml" {
		t.Errorf("scene path = %q", cfg.Paths.Scene)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "[window]\nwidth = 0"},
		{"negative entities", "[ecs]\nmax_entities = -1"},
		{"bad profile", "[profile]\nmode = \"block\""},
		{"syntax", "[window\nwidth = 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.body), "test"); err == nil {
				t.Errorf("expected error for %q", tt.body)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	if err := os.WriteFile(path, []byte("[window]\ntitle = \"demo\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "demo" {
		t.Errorf("title = %q, want demo", cfg.Window.Title)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
