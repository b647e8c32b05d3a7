package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grade != 3 {
		t.Errorf("grade = %d, want 3", cfg.Grade)
	}
	if cfg.PacingDelay != time.Second {
		t.Errorf("pacing delay = %v, want 1s", cfg.PacingDelay)
	}
	if cfg.HasCredential() {
		t.Error("no credential expected by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("KIDSKILLS_API_KEY", "sk-or-test")
	t.Setenv("KIDSKILLS_MODEL", "anthropic/claude-3-haiku")
	t.Setenv("KIDSKILLS_GRADE", "2")
	t.Setenv("KIDSKILLS_INTERESTS", "dinosaurs, robots")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.HasCredential() {
		t.Error("credential not picked up")
	}
	if cfg.Model != "anthropic/claude-3-haiku" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.Grade != 2 {
		t.Errorf("grade = %d, want 2", cfg.Grade)
	}
	if len(cfg.Interests) != 2 || cfg.Interests[0] != "dinosaurs" || cfg.Interests[1] != "robots" {
		t.Errorf("interests = %v", cfg.Interests)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Grade: 3}, false},
		{"grade too low", Config{Grade: 0}, true},
		{"grade too high", Config{Grade: 9}, true},
		{"negative pacing", Config{Grade: 3, PacingDelay: -time.Second}, true},
		{"bad log level", Config{Grade: 3, LogLevel: "loud"}, true},
		{"good log level", Config{Grade: 3, LogLevel: "debug"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
