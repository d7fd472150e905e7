package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRun_InvalidArgs(t *testing.T) {
	if code := run([]string{"--fps", "0"}); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestRun_InvalidBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[board]\nwidth = 10.0\nheight = 10.0\n"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if code := run([]string{"--config", path, "--mute"}); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}
