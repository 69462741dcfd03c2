// Package browser opens shared theme links in the user's browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// execCommand is overridden in tests to avoid launching a browser.
var execCommand = func(name string, args ...string) cmdRunner {
	return exec.Command(name, args...)
}

type cmdRunner interface {
	Start() error
}

// Command returns the launcher and arguments for goos.
func Command(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "cmd", []string{"/c", "start", target}
	default:
		return "xdg-open", []string{target}
	}
}

// Open opens an http or https URL in the default browser.
func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open non-web URL %q", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host: %q", rawURL)
	}

	name, args := Command(runtime.GOOS, u.String())
	if err := execCommand(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}
