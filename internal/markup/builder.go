// Package markup builds the theme-reactive replacement markup for diagram
// blocks: the wrapper container, the placeholder element(s), the always
// present fallback block, and the shared style/activation script injected
// once per page.
package markup

import (
	"fmt"

	"github.com/ziadkadry99/mermaidoc/internal/entity"
)

// PlaceholderMode selects how many diagram placeholders each block carries.
type PlaceholderMode string

const (
	// PlaceholderSingle mounts one placeholder that the activation script
	// re-renders in place whenever the site theme changes. Mermaid reuses
	// internal element identifiers across renders, so two permanently
	// mounted copies corrupt connectors in some diagram types; a single
	// re-rendered element avoids that. This is the default.
	PlaceholderSingle PlaceholderMode = "single"

	// PlaceholderDual mounts pre-tagged light and dark placeholders, each
	// with a theme directive prepended, and toggles visibility with CSS.
	PlaceholderDual PlaceholderMode = "dual"
)

// ParsePlaceholderMode maps a config string to a PlaceholderMode,
// defaulting to single.
func ParsePlaceholderMode(s string) PlaceholderMode {
	if PlaceholderMode(s) == PlaceholderDual {
		return PlaceholderDual
	}
	return PlaceholderSingle
}

// Builder produces replacement markup for diagram blocks. The zero value
// uses the passthrough codec strategy and a single placeholder.
type Builder struct {
	Strategy    entity.Strategy
	Placeholder PlaceholderMode
}

// New creates a Builder with the given codec strategy and placeholder mode.
func New(strategy entity.Strategy, placeholder PlaceholderMode) *Builder {
	return &Builder{Strategy: strategy, Placeholder: placeholder}
}

// Block converts one block's markup-escaped diagram source into the wrapper
// container: placeholder(s) plus a fallback <pre><code> showing the
// human-readable source. The fallback is visible until the activation
// script marks the block active.
func (b *Builder) Block(escaped string) string {
	if b.Placeholder == PlaceholderDual {
		return b.dualBlock(escaped)
	}
	return b.singleBlock(escaped)
}

func (b *Builder) singleBlock(escaped string) string {
	attr := entity.AttributeEscape(entity.Encode(b.Strategy, escaped))
	return fmt.Sprintf(`<div class="mermaidoc">
<div class="mermaidoc-diagram" data-diagram-source="%s"></div>
<pre class="mermaidoc-fallback"><code>%s</code></pre>
</div>`, attr, escaped)
}

func (b *Builder) dualBlock(escaped string) string {
	encoded := entity.Encode(b.Strategy, escaped)
	return fmt.Sprintf(`<div class="mermaidoc" data-variant="dual">
<div class="mermaidoc-diagram mermaid" data-diagram-theme="light">%%%%{init: {"theme": "default"}}%%%%
%s</div>
<div class="mermaidoc-diagram mermaid" data-diagram-theme="dark">%%%%{init: {"theme": "dark"}}%%%%
%s</div>
<pre class="mermaidoc-fallback"><code>%s</code></pre>
</div>`, encoded, encoded, escaped)
}

// StyleTag returns the shared <style> block injected before </head> on
// pages containing at least one diagram.
func (b *Builder) StyleTag() string {
	return "<style>\n" + diagramCSS + "</style>"
}

// ScriptTag returns the activation <script type="module"> block injected
// before </body>, importing mermaid from the given URL or relative path.
func (b *Builder) ScriptTag(importSource string) string {
	return fmt.Sprintf("<script type=\"module\">\n"+activationJS+"</script>", importSource)
}
