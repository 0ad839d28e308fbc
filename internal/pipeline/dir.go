package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/mermaidoc/internal/config"
	"github.com/ziadkadry99/mermaidoc/internal/progress"
)

// Result summarizes a directory transform.
type Result struct {
	PagesScanned  int
	PagesModified int
	Blocks        int
}

// TransformDir runs a full render cycle over a directory of rendered HTML
// pages: Begin, one Page per matching file (rewritten in place), End. This
// is the standalone equivalent of the per-page hook a documentation
// generator would invoke.
func TransformDir(cfg *config.Config, dir string, reporter progress.Reporter) (*Result, error) {
	pages, err := listPages(cfg, dir)
	if err != nil {
		return nil, err
	}

	cycle := NewCycle(cfg)
	if err := cycle.Begin(); err != nil {
		return nil, err
	}

	if reporter != nil {
		reporter.Start(len(pages))
	}

	res := &Result{}
	for i, rel := range pages {
		if reporter != nil {
			reporter.Update(i+1, rel)
		}
		full := filepath.Join(dir, filepath.FromSlash(rel))
		content, err := os.ReadFile(full)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rel, err)
		}

		out, changed := cycle.Page(rel, string(content))
		res.PagesScanned++
		if !changed {
			continue
		}
		if err := os.WriteFile(full, []byte(out), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", rel, err)
		}
		res.PagesModified++
	}

	if reporter != nil {
		reporter.Finish()
	}

	cycle.End(dir)
	res.Blocks = cycle.Blocks()
	return res, nil
}

// listPages collects the output-relative paths of pages matching the
// configured include/exclude globs, in walk order.
func listPages(cfg *config.Config, dir string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !matchesInclude(rel, cfg.Include) || matchesAny(rel, cfg.Exclude) {
			return nil
		}
		pages = append(pages, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	return pages, nil
}

// matchesInclude returns true if relPath matches any include pattern.
// An empty pattern list includes everything.
func matchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks relPath against the given glob patterns.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.PathMatch(filepath.ToSlash(pattern), relPath); err == nil && matched {
			return true
		}
	}
	return false
}
