package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/diegok/paddleball/internal/game"
)

// clearEnv unsets every variable the config reads and restores them after
// the test, including anything a dotenv file sets.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvUI, EnvFPS, EnvMute, EnvDebug} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestParseArgs_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI != UITerminal {
		t.Errorf("expected UI %q, got %q", UITerminal, cfg.UI)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected FPS %d, got %d", DefaultFPS, cfg.FPS)
	}
	if cfg.Scale != DefaultScale {
		t.Errorf("expected Scale %v, got %v", DefaultScale, cfg.Scale)
	}
	if cfg.Mute || cfg.Debug || cfg.Demo {
		t.Errorf("expected mute, debug and demo off, got %+v", cfg)
	}
	if cfg.Frames != 0 {
		t.Errorf("expected Frames 0, got %d", cfg.Frames)
	}
	if cfg.Board != game.DefaultBoard() {
		t.Errorf("expected default board, got %+v", cfg.Board)
	}
	if cfg.Path != "" {
		t.Errorf("expected no settings file, got %q", cfg.Path)
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	clearEnv(t)
	args := []string{"--ui", "window", "--fps", "30", "--mute", "--debug", "--demo", "--scale", "1.5", "--frames", "120"}

	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI != UIWindow {
		t.Errorf("expected UI %q, got %q", UIWindow, cfg.UI)
	}
	if cfg.FPS != 30 {
		t.Errorf("expected FPS 30, got %d", cfg.FPS)
	}
	if !cfg.Mute || !cfg.Debug || !cfg.Demo {
		t.Errorf("expected mute, debug and demo on, got %+v", cfg)
	}
	if cfg.Scale != 1.5 {
		t.Errorf("expected Scale 1.5, got %v", cfg.Scale)
	}
	if cfg.Frames != 120 {
		t.Errorf("expected Frames 120, got %d", cfg.Frames)
	}
}

func TestParseArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown ui", []string{"--ui", "canvas"}},
		{"fps zero", []string{"--fps", "0"}},
		{"fps too high", []string{"--fps", "241"}},
		{"scale zero", []string{"--scale", "0"}},
		{"negative frames", []string{"--frames", "-1"}},
		{"unknown flag", []string{"--server"}},
		{"missing env file", []string{"--env", "/nonexistent/paddleball.env"}},
		{"missing settings file", []string{"--config", "/nonexistent/paddleball.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if _, err := ParseArgs(tt.args); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestParseArgs_ValidFPSBoundaries(t *testing.T) {
	tests := []struct {
		name string
		fps  string
		want int
	}{
		{"minimum fps", "1", 1},
		{"maximum fps", "240", 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := ParseArgs([]string{"--fps", tt.fps})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.FPS != tt.want {
				t.Errorf("expected fps %d, got %d", tt.want, cfg.FPS)
			}
		})
	}
}

func TestParseArgs_SettingsFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "paddleball.toml", `
ui = "window"
fps = 30
demo = true

[board]
width = 800.0
height = 640.0
`)

	cfg, err := ParseArgs([]string{"--config", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI != UIWindow || cfg.FPS != 30 || !cfg.Demo {
		t.Errorf("expected settings from file, got %+v", cfg)
	}
	if cfg.Board.Width != 800 || cfg.Board.Height != 640 {
		t.Errorf("expected board 800x640, got %+v", cfg.Board)
	}
	if cfg.Scale != DefaultScale {
		t.Errorf("expected unset keys to keep defaults, got scale %v", cfg.Scale)
	}
	if cfg.Path != path {
		t.Errorf("expected Path %q, got %q", path, cfg.Path)
	}
}

func TestParseArgs_SettingsFileFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "paddleball.toml", `fps = 50`)
	t.Setenv(EnvConfig, path)

	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FPS != 50 {
		t.Errorf("expected FPS 50, got %d", cfg.FPS)
	}
}

func TestParseArgs_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "paddleball.toml", `
ui = "window"
fps = 30
mute = false
`)
	t.Setenv(EnvFPS, "45")
	t.Setenv(EnvMute, "true")

	cfg, err := ParseArgs([]string{"--config", path, "--fps", "90"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI != UIWindow {
		t.Errorf("expected file to set UI, got %q", cfg.UI)
	}
	if !cfg.Mute {
		t.Error("expected environment to override file for mute")
	}
	if cfg.FPS != 90 {
		t.Errorf("expected flag to override environment, got FPS %d", cfg.FPS)
	}
}

func TestParseArgs_EnvFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "test.env", "PADDLEBALL_FPS=45\nPADDLEBALL_DEBUG=1\n")

	cfg, err := ParseArgs([]string{"--env", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FPS != 45 {
		t.Errorf("expected FPS 45 from env file, got %d", cfg.FPS)
	}
	if !cfg.Debug {
		t.Error("expected debug on from env file")
	}
}

func TestParseArgs_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "test.env", "PADDLEBALL_FPS=45\n")
	t.Setenv(EnvFPS, "20")

	cfg, err := ParseArgs([]string{"--env", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FPS != 20 {
		t.Errorf("expected existing environment to win, got FPS %d", cfg.FPS)
	}
}

func TestParseArgs_BadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFPS, "fast")

	if _, err := ParseArgs(nil); err == nil {
		t.Error("expected error for non-numeric fps in environment")
	}
}

func TestParseArgs_NonFiniteBoardFailsAtGameInit(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "paddleball.toml", `
[board]
width = nan
height = 600.0
`)

	cfg, err := ParseArgs([]string{"--config", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(cfg.Board.Width) {
		t.Fatalf("expected NaN width, got %v", cfg.Board.Width)
	}
	if _, err := game.New(cfg.Board); err == nil {
		t.Error("expected game.New to reject a NaN board")
	}
}

func TestDefaultConstants(t *testing.T) {
	if DefaultFPS != 60 {
		t.Errorf("expected DefaultFPS 60, got %d", DefaultFPS)
	}
	if DefaultUI != UITerminal {
		t.Errorf("expected DefaultUI %q, got %q", UITerminal, DefaultUI)
	}
}
