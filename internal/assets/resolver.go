// Package assets locates the mermaid distributable on disk and computes the
// paths the activation script imports it from, for both remote and locally
// staged asset modes.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	// LibraryName is the npm package the diagrams are rendered with.
	LibraryName = "mermaid"
	// EntryFile is the ESM entry point the activation script imports.
	EntryFile = "mermaid.esm.min.mjs"
	// ChunksDir is the lazy-loaded chunk subdirectory next to the entry.
	ChunksDir = "chunks"
	// StagingDir is the shared assets directory under the output root.
	StagingDir = "assets"
)

// Sentinel errors distinguishing the two local-resolution failure modes.
var (
	ErrNotInstalled = errors.New("mermaid is not installed")
	ErrIncompatible = errors.New("installed mermaid is missing its ESM entry point")
)

// Resolution is the verified location of mermaid's distributable files.
type Resolution struct {
	// Dir is the absolute dist directory containing EntryFile.
	Dir string
}

// RelativePrefix returns the parent-directory prefix that reaches the
// output root from a page's output-relative URL: the root page gets "./",
// and every additional path segment adds one "../" step.
func RelativePrefix(pageRel string) string {
	rel := path.Clean(filepath.ToSlash(pageRel))
	depth := strings.Count(rel, "/")
	if depth == 0 {
		return "./"
	}
	return strings.Repeat("../", depth)
}

// ScriptPath returns the page-relative path to the staged mermaid entry
// point for use as the activation script's import source in local mode.
func ScriptPath(pageRel string) string {
	return RelativePrefix(pageRel) + path.Join(StagingDir, LibraryName, EntryFile)
}

// Resolve locates mermaid's installed dist directory by walking up from
// startDir through node_modules, the same search order the host ecosystem's
// module resolution uses, so a copy installed as a sibling dependency is
// found. The returned errors wrap ErrNotInstalled or ErrIncompatible and
// carry an actionable instruction; callers run this once per render cycle,
// before any page is processed, so a missing dependency fails the whole
// build instead of producing partially-broken pages.
func Resolve(startDir string) (*Resolution, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving search root %s: %w", startDir, err)
	}

	for {
		dist := filepath.Join(dir, "node_modules", LibraryName, "dist")
		if info, statErr := os.Stat(dist); statErr == nil && info.IsDir() {
			entry := filepath.Join(dist, EntryFile)
			if _, entryErr := os.Stat(entry); entryErr != nil {
				return nil, fmt.Errorf("%w: found %s but no %s (mermaid >= 10 is required), run `npm install mermaid@latest`",
					ErrIncompatible, dist, EntryFile)
			}
			return &Resolution{Dir: dist}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, fmt.Errorf("%w: run `npm install mermaid` in your documentation project, or switch to remote asset mode",
		ErrNotInstalled)
}
