package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTuning()) {
		t.Errorf("embedded yaml and DefaultTuning differ:\n yaml: %+v\n code: %+v", cfg, DefaultTuning())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFileYAMLKeepsMissingDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	doc := "player:\n  max_speed: 420\nspawn:\n  fast_chance: 0.5\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Player.MaxSpeed != 420 {
		t.Errorf("MaxSpeed = %v, expected 420", cfg.Player.MaxSpeed)
	}
	if cfg.Spawn.FastChance != 0.5 {
		t.Errorf("FastChance = %v, expected 0.5", cfg.Spawn.FastChance)
	}
	if cfg.Player.Acceleration != 800 {
		t.Errorf("Acceleration = %v, expected default 800", cfg.Player.Acceleration)
	}
}

func TestLoadFileTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.toml")
	doc := "[enemies.boss]\nhealth = 80.0\nscore = 75\n\n[particles]\ncapacity = 200\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Enemies.Boss.Health != 80 || cfg.Enemies.Boss.Score != 75 {
		t.Errorf("boss = %+v, expected health 80 score 75", cfg.Enemies.Boss)
	}
	if cfg.Enemies.Boss.Speed != 60 {
		t.Errorf("boss speed = %v, expected default 60", cfg.Enemies.Boss.Speed)
	}
	if cfg.Particles.Capacity != 200 {
		t.Errorf("Capacity = %d, expected 200", cfg.Particles.Capacity)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  friction: 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(invalid); !errors.Is(err, ErrInvalidTuning) {
		t.Errorf("friction 1.5 should be ErrInvalidTuning, got %v", err)
	}
}

func TestLoadSearchesLocalConfigs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", filepath.Join(dir, "nohome"))
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTuning()) {
		t.Error("with no files Load should return the embedded defaults")
	}
	if Locate("") != "" {
		t.Error("Locate should report the embedded default")
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "ghostbrawl.yaml"), []byte("player:\n  max_health: 150\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.MaxHealth != 150 {
		t.Errorf("MaxHealth = %v, expected 150 from ./configs", cfg.Player.MaxHealth)
	}
	if got := Locate(""); got != filepath.Join("configs", "ghostbrawl.yaml") {
		t.Errorf("Locate = %q", got)
	}
}

func TestLoadRejectsBrokenSearchPathFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		doc     string
		wantErr error
	}{
		{"malformed yaml", "ghostbrawl.yaml", "player: [unclosed", nil},
		{"malformed toml", "ghostbrawl.toml", "[player\nmax_speed = ", nil},
		{"invalid value", "ghostbrawl.yaml", "player:\n  friction: 1.5\n", ErrInvalidTuning},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("HOME", filepath.Join(dir, "nohome"))
			t.Chdir(dir)

			if err := os.MkdirAll("configs", 0o755); err != nil {
				t.Fatal(err)
			}
			path := filepath.Join("configs", tc.file)
			if err := os.WriteFile(path, []byte(tc.doc), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := Load("")
			if err == nil {
				t.Fatalf("Load should fail on %s", path)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("Load error = %v, expected %v", err, tc.wantErr)
			}
			if got := Locate(""); got != path {
				t.Errorf("Locate = %q, expected %q", got, path)
			}
		})
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ghostbrawl.yaml")
	if err := os.WriteFile(path, []byte("player:\n  max_speed: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("player:\n  max_speed: 250\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			if cfg.Player.MaxSpeed == 250 {
				return
			}
		case err := <-w.Errors():
			t.Logf("transient reload error: %v", err)
		case <-deadline:
			t.Fatal("no reload within 3s")
		}
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghostbrawl.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
