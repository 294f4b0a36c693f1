package appdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "ativos"

// Dirs holds the per-user locations ativos reads and writes
type Dirs struct {
	StatePath  string
	ChartsPath string
	ConfigPath string
}

// New resolves XDG-compliant paths. Nothing is created on disk.
func New() (*Dirs, error) {
	statePath, stateErr := getStateRoot()
	configPath, configErr := getConfigPath()
	if stateErr != nil {
		return nil, fmt.Errorf("failed to determine state directory: %w", stateErr)
	}
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}

	return &Dirs{
		StatePath:  statePath,
		ChartsPath: filepath.Join(statePath, "charts"),
		ConfigPath: configPath,
	}, nil
}

// getStateRoot returns the state directory path
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func getStateRoot() (string, error) {
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return filepath.Join(xdgStateHome, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName), nil
	}

	// Fall back to ~/.local/state/ativos
	return filepath.Join(homeDir, ".local", "state", appName), nil
}

func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName+"-config", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// Initialize creates the state directories if they don't exist
func (d *Dirs) Initialize() error {
	for _, dir := range []string{d.StatePath, d.ChartsPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// LogPath returns the default log file location
func (d *Dirs) LogPath() string {
	return filepath.Join(d.StatePath, appName+".log")
}

// ChartPath returns the full path for a chart file
func (d *Dirs) ChartPath(filename string) string {
	return filepath.Join(d.ChartsPath, filename)
}
