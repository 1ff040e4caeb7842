package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("empty path returns defaults", func(t *testing.T) {
		s, err := LoadSettings("")
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s != DefaultSettings() {
			t.Errorf("expected defaults, got %+v", s)
		}
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		s, err := LoadSettings(filepath.Join(tempDir, "nope.yaml"))
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s != DefaultSettings() {
			t.Errorf("expected defaults, got %+v", s)
		}
	})

	t.Run("partial file keeps other defaults", func(t *testing.T) {
		path := filepath.Join(tempDir, "partial.yaml")
		content := "seed: 42\nstartGame: shooter\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		s, err := LoadSettings(path)
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.Seed != 42 {
			t.Errorf("seed: expected 42, got %d", s.Seed)
		}
		if s.StartGame != StartShooter {
			t.Errorf("startGame: expected shooter, got %q", s.StartGame)
		}
		if !s.SoundEnabled || s.SoundVolume != 0.6 {
			t.Errorf("sound defaults lost: %+v", s)
		}
	})

	t.Run("invalid volume is rejected", func(t *testing.T) {
		path := filepath.Join(tempDir, "bad_volume.yaml")
		if err := os.WriteFile(path, []byte("soundVolume: 3\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadSettings(path); err == nil {
			t.Error("expected error for soundVolume 3")
		}
	})

	t.Run("unknown start game is rejected", func(t *testing.T) {
		path := filepath.Join(tempDir, "bad_start.yaml")
		if err := os.WriteFile(path, []byte("startGame: pong\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadSettings(path); err == nil {
			t.Error("expected error for startGame pong")
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("seed: [1, 2\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadSettings(path); err == nil {
			t.Error("expected parse error")
		}
	})
}
