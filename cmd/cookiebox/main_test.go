package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func noEnv(string) string { return "" }

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--help"}, noEnv, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "USAGE:") {
		t.Fatalf("expected usage text, got %q", stdout.String())
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--theme", "purple"}, noEnv, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "invalid theme") {
		t.Fatalf("expected theme error, got %q", stderr.String())
	}
}

func TestRunRejectsUnknownLogLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--log-level", "verbose", "--dump"}, noEnv, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "invalid log level") {
		t.Fatalf("expected log level error, got %q", stderr.String())
	}
}

func TestRunDumpFiltersDefaultCatalog(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--dump", "--search", "OATMEAL"}, noEnv, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr.String())
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "Oatmeal Raisin Cookies (4.6/5)") {
		t.Fatalf("unexpected dump output:\n%s", out)
	}
	if strings.Contains(out, "Chocolate Chip") {
		t.Fatalf("filtered-out item in dump:\n%s", out)
	}
}

func TestRunDumpNoMatches(t *testing.T) {
	var stdout, stderr bytes.Buffer
	run([]string{"-d", "-s", "gingerbread"}, noEnv, &stdout, &stderr)
	if strings.TrimSpace(stdout.String()) != "No cookies found" {
		t.Fatalf("expected empty message, got %q", stdout.String())
	}
}

func TestRunDumpCatalogFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.yaml")
	seed := "cookies:\n  - name: Snickerdoodle\n    ingredients: [flour, cinnamon]\n    process: Roll in cinnamon sugar.\n    rating: 4.2\n"
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	getenv := func(key string) string {
		if key == "COOKIEBOX_CATALOG" {
			return path
		}
		return ""
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"--dump"}, getenv, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Snickerdoodle (4.2/5)") {
		t.Fatalf("expected item from env catalog, got %q", stdout.String())
	}
}

func TestRunMissingCatalogFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if code := run([]string{"--dump", "--catalog", missing}, noEnv, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "missing.yaml") {
		t.Fatalf("expected error naming the file, got %q", stderr.String())
	}
}
