package appdir

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_XDG(t *testing.T) {
	state := t.TempDir()
	config := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)
	t.Setenv("XDG_CONFIG_HOME", config)

	d, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"state", d.StatePath, filepath.Join(state, "ativos")},
		{"charts", d.ChartsPath, filepath.Join(state, "ativos", "charts")},
		{"config", d.ConfigPath, filepath.Join(config, "ativos", "config.yaml")},
		{"log", d.LogPath(), filepath.Join(state, "ativos", "ativos.log")},
		{"chart file", d.ChartPath("ativos.html"), filepath.Join(state, "ativos", "charts", "ativos.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestDirs_Initialize(t *testing.T) {
	root := t.TempDir()
	d := &Dirs{
		StatePath:  filepath.Join(root, "state"),
		ChartsPath: filepath.Join(root, "state", "charts"),
	}

	if err := d.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	for _, dir := range []string{d.StatePath, d.ChartsPath} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("%s was not created", dir)
		}
	}
}
