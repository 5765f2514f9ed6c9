package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"blang/internal/config"
	"blang/internal/target"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "b.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTargetOverride(t *testing.T) {
	path := writeManifest(t, "[target]\nos = \"windows\"\narch = \"x86-32\"\n")
	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := target.Platform{Name: target.Windows, Arch: target.X8632}
	if opts.Target != want {
		t.Fatalf("Target = %v, want %v", opts.Target, want)
	}
}

func TestLoadEmptyManifestKeepsDefaults(t *testing.T) {
	path := writeManifest(t, "")
	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts != config.Default() {
		t.Fatalf("Load = %+v, want defaults", opts)
	}
}

func TestLoadLimits(t *testing.T) {
	path := writeManifest(t, "[limits]\nmax-issues = 7\n")
	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.MaxIssues != 7 {
		t.Fatalf("MaxIssues = %d, want 7", opts.MaxIssues)
	}
}

func TestLoadRejectsPartialTarget(t *testing.T) {
	path := writeManifest(t, "[target]\nos = \"linux\"\n")
	_, err := config.Load(path)
	if !errors.Is(err, config.ErrManifestTargetIncomplete) {
		t.Fatalf("err = %v, want ErrManifestTargetIncomplete", err)
	}
}

func TestLoadRejectsUnknownSpellings(t *testing.T) {
	cases := []string{
		"[target]\nos = \"plan9\"\narch = \"x86-64\"\n",
		"[target]\nos = \"linux\"\narch = \"arm64\"\n",
	}
	for _, content := range cases {
		path := writeManifest(t, content)
		if _, err := config.Load(path); err == nil {
			t.Fatalf("Load must fail for %q", content)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("Load must fail for a missing manifest")
	}
}
