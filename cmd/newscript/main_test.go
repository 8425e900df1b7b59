package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Rotator", "rotator"},
		{"GlobeWobbler", "globe_wobbler"},
		{"A", "a"},
	}
	for _, tt := range tests {
		if got := toSnakeCase(tt.in); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestValidateName(t *testing.T) {
	for _, bad := range []string{"", "wobbler", "Wob-bler", "Wob bler"} {
		if validateName(bad) == nil {
			t.Errorf("Expected %q to be rejected", bad)
		}
	}
	if err := validateName("Wobbler2"); err != nil {
		t.Errorf("Expected Wobbler2 to be accepted, got %v", err)
	}
}

func TestRender(t *testing.T) {
	out := render("Wobbler")
	for _, want := range []string{
		"type Wobbler struct",
		`engine.RegisterScript("Wobbler", wobblerFactory)`,
		"func wobblerFactory(",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
	if strings.Contains(out, "{{") {
		t.Error("Expected every placeholder replaced")
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	path, err := create(dir, "GlobeWobbler")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "globe_wobbler.go") {
		t.Errorf("Expected globe_wobbler.go, got %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file written, got %v", err)
	}

	if _, err := create(dir, "GlobeWobbler"); err == nil {
		t.Error("Expected an error when the script already exists")
	}
}
