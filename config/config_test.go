package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_FlagsOnly(t *testing.T) {
	c, err := Parse("", []string{
		"--input", "in.json",
		"--output", "out.json",
		"--vis-dir", "viz",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Input != "in.json" || c.Output != "out.json" || c.VisDir != "viz" {
		t.Fatalf("unexpected config: %+v", c)
	}
	tc := c.TrackerConfig()
	if tc.MaxDist != 0 || tc.MaxAge != 0 || tc.Alpha != 0 {
		t.Fatalf("expected zero-valued tracker config fields to defer to engine defaults, got %+v", tc)
	}
}

func TestParse_MissingRequiredFlags(t *testing.T) {
	_, err := Parse("", []string{"--input", "in.json"})
	if err == nil {
		t.Fatal("expected an error when --output/--vis-dir are missing")
	}
}

func TestParse_INIDefaultsWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	iniPath := filepath.Join(dir, "defaults.ini")
	body := "[tracker]\ninput = default-in.json\noutput = default-out.json\nvis-dir = default-viz\nmax-dist = 0.2\nmax-age = 10\nalpha = 0.5\n"
	if err := os.WriteFile(iniPath, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write ini fixture: %v", err)
	}

	c, err := Parse(iniPath, []string{"--output", "override-out.json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Input != "default-in.json" {
		t.Errorf("expected input from ini, got %s", c.Input)
	}
	if c.Output != "override-out.json" {
		t.Errorf("expected output overridden by flag, got %s", c.Output)
	}
	if c.MaxAge != 10 {
		t.Errorf("expected max-age 10 from ini, got %d", c.MaxAge)
	}
}

func TestParse_MissingINIFileIsNotFatal(t *testing.T) {
	c, err := Parse(filepath.Join(t.TempDir(), "missing.ini"), []string{
		"--input", "in.json", "--output", "out.json", "--vis-dir", "viz",
	})
	if err != nil {
		t.Fatalf("a missing defaults.ini should not be fatal when all required flags are set: %v", err)
	}
	if c.Input != "in.json" {
		t.Errorf("expected flag value to apply, got %s", c.Input)
	}
}
