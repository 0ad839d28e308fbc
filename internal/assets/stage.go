package assets

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Stage copies the verified entry point and its lazy-loaded chunk
// subdirectory into <outputRoot>/assets/mermaid, preserving the chunk
// directory's internal structure. It runs once per render cycle, after all
// pages are processed, and only when at least one page gained a diagram.
func Stage(res *Resolution, outputRoot string) error {
	dest := filepath.Join(outputRoot, StagingDir, LibraryName)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating assets directory %s: %w", dest, err)
	}

	if err := copyFile(filepath.Join(res.Dir, EntryFile), filepath.Join(dest, EntryFile)); err != nil {
		return fmt.Errorf("staging %s: %w", EntryFile, err)
	}

	// Chunks are optional: some mermaid builds ship a single-file bundle.
	chunks := filepath.Join(res.Dir, ChunksDir)
	if info, err := os.Stat(chunks); err != nil || !info.IsDir() {
		return nil
	}
	if err := copyDir(chunks, filepath.Join(dest, ChunksDir)); err != nil {
		return fmt.Errorf("staging %s: %w", ChunksDir, err)
	}
	return nil
}

// copyDir recursively copies src into dst, preserving structure.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
