package auth

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenBrowser opens url in the user's browser without waiting for it.
func OpenBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "linux":
		// Try xdg-open first, then fall back to common browsers
		found := false
		for _, candidate := range []string{"xdg-open", "google-chrome", "firefox"} {
			if _, err := exec.LookPath(candidate); err == nil {
				cmd = candidate
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no browser found")
		}
		args = []string{url}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	process := exec.Command(cmd, args...)
	if err := process.Start(); err != nil {
		return err
	}
	go process.Wait()
	return nil
}
