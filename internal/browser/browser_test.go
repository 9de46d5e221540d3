package browser

import (
	"errors"
	"strings"
	"testing"
)

func TestOpenCommand(t *testing.T) {
	cases := map[string]string{
		"darwin":  "open",
		"linux":   "xdg-open",
		"freebsd": "xdg-open",
		"windows": "rundll32",
	}
	for goos, want := range cases {
		if got, _ := OpenCommand(goos); got != want {
			t.Errorf("OpenCommand(%q) = %q, want %q", goos, got, want)
		}
	}
}

func TestSystemOpenPassesURL(t *testing.T) {
	var gotName string
	var gotArgs []string
	s := System{GOOS: "windows", Start: func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}}
	link := "https://app.datadoghq.com/logs?query=x"
	if err := s.Open(link); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if gotName != "rundll32" || len(gotArgs) != 2 || gotArgs[1] != link {
		t.Fatalf("unexpected launch: %s %v", gotName, gotArgs)
	}
}

func TestSystemOpenRejectsBadURL(t *testing.T) {
	s := System{Start: func(string, ...string) error {
		t.Fatal("launch must not run for invalid urls")
		return nil
	}}
	for _, link := range []string{"", "file:///etc/passwd", "logs?query=x", "https://"} {
		if err := s.Open(link); !errors.Is(err, ErrUnsupportedURL) {
			t.Errorf("Open(%q) = %v, want ErrUnsupportedURL", link, err)
		}
	}
}

func TestSystemOpenWrapsLaunchError(t *testing.T) {
	s := System{GOOS: "linux", Start: func(string, ...string) error {
		return errors.New("executable file not found")
	}}
	err := s.Open("https://example.com")
	if err == nil || !strings.Contains(err.Error(), "launch xdg-open") {
		t.Fatalf("unexpected error: %v", err)
	}
}
