package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// GetPreferredEditor returns the editor command from config, env, or default
func GetPreferredEditor() string {
	// 1. Check Config
	if appConfig != nil && appConfig.Editor != "" {
		return appConfig.Editor
	}
	// 2. Check Environment
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	// 3. Fallback
	return "vi"
}

// OpenFile opens a file using a custom viewer or the OS default application.
func OpenFile(path string, viewer string) error {
	var cmd *exec.Cmd

	if viewer != "" {
		// Use user-configured viewer (e.g. firefox)
		cmd = exec.Command(viewer, path)
	} else {
		// Fallback to OS default
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", path)
		case "windows":
			cmd = exec.Command("cmd", "/c", "start", path)
		default:
			cmd = exec.Command("xdg-open", path)
		}
	}

	// Start() detaches the viewer so ativos can exit while it stays open
	if err := cmd.Start(); err != nil {
		if viewer != "" {
			return fmt.Errorf("failed to open '%s' with '%s': %w", path, viewer, err)
		}
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}

	return nil
}

// OpenInEditor runs the preferred editor on path in the foreground
func OpenInEditor(path string) error {
	fields := strings.Fields(GetPreferredEditor())
	c := exec.Command(fields[0], append(fields[1:], path)...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
