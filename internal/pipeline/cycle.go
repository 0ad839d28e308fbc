// Package pipeline drives one render cycle: asset resolution at the start,
// a per-page transform pass, and the asset staging step at the end. All
// cross-phase state lives on the Cycle so a long-lived process can never
// reuse a stale verdict from a previous run.
package pipeline

import (
	"fmt"
	"os"

	"github.com/ziadkadry99/mermaidoc/internal/assets"
	"github.com/ziadkadry99/mermaidoc/internal/config"
	"github.com/ziadkadry99/mermaidoc/internal/entity"
	"github.com/ziadkadry99/mermaidoc/internal/markup"
	"github.com/ziadkadry99/mermaidoc/internal/rewrite"
)

// Cycle carries the state of one render cycle. Each phase writes state that
// at most one later phase reads: Begin caches the asset resolution, Page
// records whether any page gained diagrams, End consumes both. Create a new
// Cycle per render.
type Cycle struct {
	cfg     *config.Config
	builder *markup.Builder

	resolution  *assets.Resolution
	needsAssets bool
	pages       int
	blocks      int
}

// NewCycle creates a Cycle for the given configuration.
func NewCycle(cfg *config.Config) *Cycle {
	return &Cycle{
		cfg: cfg,
		builder: markup.New(
			entity.ParseStrategy(cfg.Strategy),
			markup.ParsePlaceholderMode(cfg.Placeholder),
		),
	}
}

// Begin starts the cycle. In local mode it resolves the mermaid install
// immediately so a missing dependency aborts the whole render before any
// page is touched, rather than producing partially-broken output.
func (c *Cycle) Begin() error {
	c.resolution = nil
	c.needsAssets = false
	c.pages = 0
	c.blocks = 0

	if c.cfg.Mode == config.AssetModeLocal {
		res, err := assets.Resolve(c.cfg.SearchDir)
		if err != nil {
			return fmt.Errorf("local asset resolution: %w", err)
		}
		c.resolution = res
	}
	return nil
}

// Page transforms one rendered page. relPath is the page's output-relative
// URL, used to compute the script import path in local mode. Returns the
// page content (unchanged when no diagram blocks matched) and whether it
// was modified.
func (c *Cycle) Page(relPath, page string) (string, bool) {
	out, n := rewrite.TransformPage(page, c.builder)
	if n == 0 {
		return page, false
	}

	src := c.cfg.RemoteURL
	if c.cfg.Mode == config.AssetModeLocal {
		src = assets.ScriptPath(relPath)
	}
	out = rewrite.InjectAssets(out, c.builder.StyleTag(), c.builder.ScriptTag(src))

	c.needsAssets = true
	c.pages++
	c.blocks += n
	return out, true
}

// End finishes the cycle. In local mode, when at least one page gained
// diagrams, it stages the mermaid distributable into the output tree using
// the resolution cached by Begin. A copy failure is logged and the render
// completes: the pages are intact, only the assets are missing, which beats
// aborting a build already in flight.
func (c *Cycle) End(outputRoot string) {
	if !c.needsAssets || c.cfg.Mode != config.AssetModeLocal {
		return
	}
	if c.resolution == nil {
		// Begin either was not called or failed; never re-resolve here,
		// the render-start verdict is the only one that counts.
		fmt.Fprintln(os.Stderr, "Error: asset staging skipped: no resolved mermaid install for this cycle")
		return
	}
	if err := assets.Stage(c.resolution, outputRoot); err != nil {
		fmt.Fprintf(os.Stderr, "Error: staging mermaid assets: %v\n", err)
	}
}

// Pages returns how many pages gained diagram markup this cycle.
func (c *Cycle) Pages() int { return c.pages }

// Blocks returns how many diagram blocks were rewritten this cycle.
func (c *Cycle) Blocks() int { return c.blocks }
