package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRelativePrefix(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"index.html", "./"},
		{"a/b.html", "../"},
		{"a/b/c.html", "../../"},
		{"a/b/c/d.html", "../../../"},
		{"./index.html", "./"},
	}
	for _, tt := range tests {
		got := RelativePrefix(tt.input)
		if got != tt.want {
			t.Errorf("RelativePrefix(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestScriptPath(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"index.html", "./assets/mermaid/mermaid.esm.min.mjs"},
		{"a/b.html", "../assets/mermaid/mermaid.esm.min.mjs"},
		{"a/b/c.html", "../../assets/mermaid/mermaid.esm.min.mjs"},
	}
	for _, tt := range tests {
		got := ScriptPath(tt.input)
		if got != tt.want {
			t.Errorf("ScriptPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if !strings.HasSuffix(got, EntryFile) {
			t.Errorf("script path must end with the entry filename: %q", got)
		}
	}
}

// writeFile creates a file with intermediate directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveFindsSiblingInstall(t *testing.T) {
	root := t.TempDir()
	dist := filepath.Join(root, "node_modules", "mermaid", "dist")
	writeFile(t, filepath.Join(dist, EntryFile), "export default {}")

	// Search starts below the install, as it does for a plugin running
	// inside a nested project directory.
	start := filepath.Join(root, "docs", "api")
	if err := os.MkdirAll(start, 0o755); err != nil {
		t.Fatal(err)
	}

	res, err := Resolve(start)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if res.Dir != dist {
		t.Errorf("Dir = %q, want %q", res.Dir, dist)
	}
}

func TestResolveNotInstalled(t *testing.T) {
	_, err := Resolve(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing install")
	}
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("error should wrap ErrNotInstalled: %v", err)
	}
	if !strings.Contains(err.Error(), "npm install mermaid") {
		t.Errorf("error should instruct installation: %v", err)
	}
}

func TestResolveIncompatibleVersion(t *testing.T) {
	root := t.TempDir()
	// Pre-ESM layouts ship mermaid.min.js but no ESM entry point.
	writeFile(t, filepath.Join(root, "node_modules", "mermaid", "dist", "mermaid.min.js"), "var mermaid;")

	_, err := Resolve(root)
	if err == nil {
		t.Fatal("expected error for incompatible install")
	}
	if !errors.Is(err, ErrIncompatible) {
		t.Errorf("error should wrap ErrIncompatible: %v", err)
	}
	if !strings.Contains(err.Error(), ">= 10") {
		t.Errorf("error should name the minimum required version: %v", err)
	}
}

func TestStage(t *testing.T) {
	srcRoot := t.TempDir()
	dist := filepath.Join(srcRoot, "node_modules", "mermaid", "dist")
	writeFile(t, filepath.Join(dist, EntryFile), "export default {}")
	writeFile(t, filepath.Join(dist, "chunks", "mermaid.esm.min", "flowchart.mjs"), "chunk a")
	writeFile(t, filepath.Join(dist, "chunks", "mermaid.esm.min", "sequence.mjs"), "chunk b")

	res, err := Resolve(srcRoot)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	out := t.TempDir()
	if err := Stage(res, out); err != nil {
		t.Fatalf("Stage error: %v", err)
	}

	staged := []string{
		filepath.Join(out, "assets", "mermaid", EntryFile),
		filepath.Join(out, "assets", "mermaid", "chunks", "mermaid.esm.min", "flowchart.mjs"),
		filepath.Join(out, "assets", "mermaid", "chunks", "mermaid.esm.min", "sequence.mjs"),
	}
	for _, p := range staged {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected staged file %s: %v", p, err)
		}
	}

	data, err := os.ReadFile(staged[1])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "chunk a" {
		t.Errorf("staged chunk content = %q", data)
	}
}

func TestStageNoChunks(t *testing.T) {
	srcRoot := t.TempDir()
	writeFile(t, filepath.Join(srcRoot, "node_modules", "mermaid", "dist", EntryFile), "export default {}")

	res, err := Resolve(srcRoot)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if err := Stage(res, t.TempDir()); err != nil {
		t.Errorf("Stage without chunks should succeed: %v", err)
	}
}
