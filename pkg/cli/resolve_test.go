package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testTheme = `tokens:
  height: 36px
  shape-radius: var(--mdc-shape-radius, 4px)
styles:
  .mdc-button:
    height: height
    border-radius: shape-radius
`

func TestResolveCommandWritesFile(t *testing.T) {
	dir := t.TempDir()
	themePath := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(themePath, []byte(testTheme), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "out.css")

	rootCmd.SetArgs([]string{"resolve", "--theme", themePath, "-o", outPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "height: 36px;") {
		t.Errorf("output missing resolved height:\n%s", out)
	}
	if !strings.Contains(out, "border-radius: var(--mdc-shape-radius, 4px);") {
		t.Errorf("output missing var reference:\n%s", out)
	}
}

func TestResolveCommandFallbackMode(t *testing.T) {
	dir := t.TempDir()
	themePath := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(themePath, []byte(testTheme), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "out.css")

	rootCmd.SetArgs([]string{"resolve", "--theme", themePath, "-o", outPath, "--fallback"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if out := string(data); !strings.Contains(out, "border-radius: 4px;") {
		t.Errorf("output missing inlined fallback:\n%s", out)
	}
}

func TestResolveCommandMissingTheme(t *testing.T) {
	rootCmd.SetArgs([]string{"resolve", "--theme", filepath.Join(t.TempDir(), "nope.yaml")})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for missing theme file")
	}
}
