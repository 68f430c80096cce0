// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard helper is installed.
var ErrUnavailable = errors.New("no clipboard helper found")

// Write copies text to the system clipboard.
func Write(text string) error {
	name, args, err := command(runtime.GOOS, exec.LookPath)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Available reports whether Write has a helper to run.
func Available() bool {
	_, _, err := command(runtime.GOOS, exec.LookPath)
	return err == nil
}

// command picks the helper for goos. lookPath is exec.LookPath outside tests.
func command(goos string, lookPath func(string) (string, error)) (string, []string, error) {
	switch goos {
	case "darwin":
		if _, err := lookPath("pbcopy"); err == nil {
			return "pbcopy", nil, nil
		}
	case "windows":
		// clip ships with every Windows install
		return "cmd", []string{"/c", "clip"}, nil
	default:
		// Wayland first, then the X11 helpers
		if _, err := lookPath("wl-copy"); err == nil {
			return "wl-copy", nil, nil
		}
		if _, err := lookPath("xclip"); err == nil {
			return "xclip", []string{"-selection", "clipboard"}, nil
		}
		if _, err := lookPath("xsel"); err == nil {
			return "xsel", []string{"--clipboard", "--input"}, nil
		}
	}
	return "", nil, fmt.Errorf("%w on %s", ErrUnavailable, goos)
}
