package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_DefaultConfigPath(t *testing.T) {
	dir := t.TempDir()

	p, err := New(dir, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.RootPath != dir {
		t.Errorf("RootPath = %q, want %q", p.RootPath, dir)
	}
	if want := filepath.Join(dir, ConfigFileName); p.ConfigPath != want {
		t.Errorf("ConfigPath = %q, want %q", p.ConfigPath, want)
	}
	if !p.Exists() {
		t.Error("expected project root to exist")
	}
	if p.HasConfig() {
		t.Error("expected no config in a fresh directory")
	}
}

func TestNew_ExplicitConfigPath(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "other.yaml")

	p, err := New(dir, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ConfigPath != cfg {
		t.Errorf("ConfigPath = %q, want %q", p.ConfigPath, cfg)
	}

	if err := os.WriteFile(cfg, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if !p.HasConfig() {
		t.Error("expected HasConfig after writing the file")
	}
}

func TestProject_Exists_Missing(t *testing.T) {
	p, err := New(filepath.Join(t.TempDir(), "missing"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Exists() {
		t.Error("expected missing root to not exist")
	}
}

func TestProject_Resolve(t *testing.T) {
	p := &Project{RootPath: "/site"}

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"relative", "public/icon.svg", "/site/public/icon.svg"},
		{"dot relative", "./public/icon.png", "/site/public/icon.png"},
		{"absolute", "/tmp/icon.svg", "/tmp/icon.svg"},
		{"absolute unclean", "/tmp/../tmp/icon.svg", "/tmp/icon.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Resolve(tt.path); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestProject_Relative(t *testing.T) {
	p := &Project{RootPath: "/site"}

	if got := p.Relative("/site/public/icon.png"); got != filepath.Join("public", "icon.png") {
		t.Errorf("Relative() = %q", got)
	}
	if got := p.Relative("public/icon.png"); got != filepath.Join("public", "icon.png") {
		t.Errorf("Relative() of a relative path = %q", got)
	}
}
