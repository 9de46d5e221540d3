// Package browser launches dashboard links in the user's default browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// ErrUnsupportedURL is returned for links that are not absolute http(s) URLs.
var ErrUnsupportedURL = errors.New("unsupported url")

// Opener opens a URL outside the process.
type Opener interface {
	Open(rawURL string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(rawURL string) error

// Open calls f(rawURL).
func (f OpenerFunc) Open(rawURL string) error { return f(rawURL) }

// OpenCommand returns the generic "open" command for goos:
// open on macOS, rundll32 on Windows and xdg-open elsewhere.
func OpenCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// System opens links with the platform open command.
type System struct {
	// GOOS overrides runtime.GOOS.
	GOOS string
	// Start launches the command without waiting for it. Defaults to exec.
	Start func(name string, args ...string) error
}

// Open validates rawURL and hands it to the platform open command.
func (s System) Open(rawURL string) error {
	if err := Validate(rawURL); err != nil {
		return err
	}
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	name, args := OpenCommand(goos)
	start := s.Start
	if start == nil {
		start = startDetached
	}
	if err := start(name, append(args, rawURL)...); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	return nil
}

// Validate reports whether rawURL is an absolute http(s) URL.
func Validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrUnsupportedURL, rawURL)
	}
	return nil
}

func startDetached(name string, args ...string) error {
	// #nosec G204 -- name comes from OpenCommand, the argument is a validated URL
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child in the background; its exit status is irrelevant.
	go func() { _ = cmd.Wait() }()
	return nil
}
