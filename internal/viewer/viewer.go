// Package viewer hands rendered figures to the platform's default viewer.
package viewer

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Command returns the command that opens path with the default
// application of the platform.
func Command(path string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", path), nil
	case "darwin":
		return exec.Command("open", "-W", path), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "/wait", "", path), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// Show opens path and waits until the launcher exits. Where the platform
// launcher supports it this is when the viewer window is closed.
func Show(path string) error {
	cmd, err := Command(path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
