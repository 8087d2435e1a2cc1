package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""), "lyre.yaml")
	if err != nil {
		t.Fatalf("Parse() error: %s", err)
	}
	if cfg.InitialStack != DefaultInitialStack {
		t.Errorf("InitialStack = %d, want %d", cfg.InitialStack, DefaultInitialStack)
	}
	if cfg.MaxFrames != DefaultMaxFrames {
		t.Errorf("MaxFrames = %d, want %d", cfg.MaxFrames, DefaultMaxFrames)
	}
	if cfg.TraceColor != ColorAuto {
		t.Errorf("TraceColor = %q, want %q", cfg.TraceColor, ColorAuto)
	}
	if cfg.Trace {
		t.Error("Trace should default to false")
	}
}

func TestParse(t *testing.T) {
	data := []byte("initial_stack: 64\nmax_frames: 128\ntrace: true\ntrace_color: never\n")
	cfg, err := Parse(data, "lyre.yaml")
	if err != nil {
		t.Fatalf("Parse() error: %s", err)
	}
	if cfg.InitialStack != 64 {
		t.Errorf("InitialStack = %d, want 64", cfg.InitialStack)
	}
	if cfg.MaxFrames != 128 {
		t.Errorf("MaxFrames = %d, want 128", cfg.MaxFrames)
	}
	if !cfg.Trace {
		t.Error("Trace = false, want true")
	}
	if cfg.TraceColor != ColorNever {
		t.Errorf("TraceColor = %q, want %q", cfg.TraceColor, ColorNever)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", ":\n:"},
		{"negative stack", "initial_stack: -1"},
		{"negative frames", "max_frames: -5"},
		{"bad color", "trace_color: sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), "lyre.yaml"); err == nil {
				t.Error("Parse() succeeded, want error")
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "lyre.yaml")); err == nil {
		t.Error("Load() of missing file succeeded, want error")
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, "lyre.yaml")
	if err := os.WriteFile(cfgPath, []byte("max_frames: 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Find(nested)
	if err != nil {
		t.Fatalf("Find() error: %s", err)
	}
	if found != cfgPath {
		t.Errorf("Find() = %q, want %q", found, cfgPath)
	}
}

func TestFindNotFound(t *testing.T) {
	found, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find() error: %s", err)
	}
	if found != "" {
		t.Errorf("Find() = %q, want empty", found)
	}
}
