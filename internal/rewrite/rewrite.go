// Package rewrite locates diagram-source code blocks inside rendered page
// markup and replaces them with the markup builder's output. It is a
// best-effort textual transform, not a markup parser: anything that does
// not match the host generator's exact block shape passes through
// byte-for-byte.
package rewrite

import (
	"strings"

	"github.com/ziadkadry99/mermaidoc/internal/markup"
)

const (
	openPrefix  = `<pre><code class="`
	codeClose   = `</code>`
	buttonOpen  = `<button`
	blockSuffix = `</button></pre>`
)

// block is one located diagram block: the span it occupies in the page and
// the raw markup-escaped source captured from inside the code element.
type block struct {
	start  int
	end    int
	source string
}

// TransformPage scans a rendered page body for diagram-source blocks and
// replaces each with the builder's output. The scan is single-pass and
// non-overlapping; pages with no diagram blocks come back unchanged, and
// malformed or unterminated blocks leave the remaining tail untouched.
// Returns the rewritten page and the number of blocks replaced.
func TransformPage(page string, b *markup.Builder) (string, int) {
	var out strings.Builder
	count := 0
	rest := page
	for {
		m, ok := nextBlock(rest)
		if !ok {
			break
		}
		out.WriteString(rest[:m.start])
		out.WriteString(b.Block(m.source))
		rest = rest[m.end:]
		count++
	}
	if count == 0 {
		return page, 0
	}
	out.WriteString(rest)
	return out.String(), count
}

// nextBlock finds the first diagram block in s: a <pre><code> whose class
// list tags it as mermaid source, immediately followed by the host's copy
// button, which the rewrite consumes and discards.
func nextBlock(s string) (block, bool) {
	offset := 0
	for {
		idx := strings.Index(s[offset:], openPrefix)
		if idx < 0 {
			return block{}, false
		}
		idx += offset

		classStart := idx + len(openPrefix)
		classEnd := strings.IndexByte(s[classStart:], '"')
		if classEnd < 0 {
			// No quote anywhere ahead, so no later candidate can close its
			// class attribute either.
			return block{}, false
		}
		class := s[classStart : classStart+classEnd]

		// The code element must close with ">" right after the class
		// attribute; anything fancier is not the host's shape.
		tagEnd := classStart + classEnd + 1
		if !strings.HasPrefix(s[tagEnd:], ">") {
			offset = classStart
			continue
		}
		contentStart := tagEnd + 1

		if !isDiagramClass(class) {
			offset = contentStart
			continue
		}

		closeIdx := strings.Index(s[contentStart:], codeClose)
		if closeIdx < 0 {
			return block{}, false
		}
		source := s[contentStart : contentStart+closeIdx]
		afterCode := contentStart + closeIdx + len(codeClose)

		// The copy affordance must be the immediately adjacent sibling.
		if !strings.HasPrefix(s[afterCode:], buttonOpen) {
			offset = afterCode
			continue
		}
		suffixIdx := strings.Index(s[afterCode:], blockSuffix)
		if suffixIdx < 0 {
			return block{}, false
		}

		return block{
			start:  idx,
			end:    afterCode + suffixIdx + len(blockSuffix),
			source: source,
		}, true
	}
}

// isDiagramClass reports whether a class attribute value tags a code block
// as mermaid source. Hosts emit either "mermaid" or "language-mermaid",
// possibly among other classes.
func isDiagramClass(class string) bool {
	for _, c := range strings.Fields(class) {
		if c == "mermaid" || c == "language-mermaid" {
			return true
		}
	}
	return false
}

// InjectAssets inserts the shared style block directly before </head> and
// the activation script directly before </body>. Pages missing either tag
// get the insertion appended at the end of the document instead, so the
// assets are never silently dropped.
func InjectAssets(page, styleTag, scriptTag string) string {
	if i := strings.Index(page, "</head>"); i >= 0 {
		page = page[:i] + styleTag + "\n" + page[i:]
	} else {
		page += "\n" + styleTag
	}
	if i := strings.Index(page, "</body>"); i >= 0 {
		page = page[:i] + scriptTag + "\n" + page[i:]
	} else {
		page += "\n" + scriptTag
	}
	return page
}
