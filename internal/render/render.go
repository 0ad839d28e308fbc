// Package render converts a directory of markdown documentation into HTML
// pages shaped the way the diagram transform expects: fenced code blocks
// become <pre><code class="language-..."> spans with an adjacent copy
// button. It is the standalone stand-in for a host documentation generator.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Generator converts markdown documentation into a static HTML site.
type Generator struct {
	DocsDir     string
	OutputDir   string
	ProjectName string
}

// NewGenerator creates a Generator with the given directories.
func NewGenerator(docsDir, outputDir, projectName string) *Generator {
	return &Generator{
		DocsDir:     docsDir,
		OutputDir:   outputDir,
		ProjectName: projectName,
	}
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title       string
	ProjectName string
	Content     template.HTML
	BasePath    string
}

// Generate renders every markdown file to an HTML page and writes the
// shared static assets. Returns the number of pages generated.
func (g *Generator) Generate() (int, error) {
	var mdPaths []string
	err := filepath.WalkDir(g.DocsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			rel, err := filepath.Rel(g.DocsDir, path)
			if err != nil {
				return err
			}
			mdPaths = append(mdPaths, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walking docs dir: %w", err)
	}

	if len(mdPaths) == 0 {
		return 0, fmt.Errorf("no markdown files found in %s", g.DocsDir)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	// Write static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	for _, relPath := range mdPaths {
		if err := g.renderPage(md, tmpl, relPath); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", relPath, err)
		}
	}

	return len(mdPaths), nil
}

// renderPage converts a single markdown file to an HTML page.
func (g *Generator) renderPage(md goldmark.Markdown, tmpl *template.Template, relPath string) error {
	srcPath := filepath.Join(g.DocsDir, filepath.FromSlash(relPath))
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	var htmlBuf bytes.Buffer
	if err := md.Convert(content, &htmlBuf); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	htmlContent := htmlBuf.String()
	htmlContent = addCopyButtons(htmlContent)
	htmlContent = rewriteMDLinks(htmlContent)

	htmlRelPath := mdPathToHTML(relPath)
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(htmlRelPath))

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	// Compute base path for CSS/JS references.
	depth := strings.Count(htmlRelPath, "/")
	basePath := ""
	for i := 0; i < depth; i++ {
		basePath += "../"
	}

	data := pageData{
		Title:       extractTitle(string(content), relPath),
		ProjectName: g.ProjectName,
		Content:     template.HTML(htmlContent),
		BasePath:    basePath,
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// addCopyButtons appends a copy affordance to every plain code block,
// matching the shape the diagram transform consumes. Highlighted blocks
// wrap their markup differently and keep their own structure.
func addCopyButtons(htmlContent string) string {
	return strings.ReplaceAll(htmlContent, "</code></pre>",
		`</code><button class="copy-button" type="button">Copy</button></pre>`)
}

// rewriteMDLinks changes .md links in HTML content to .html links.
func rewriteMDLinks(content string) string {
	result := strings.ReplaceAll(content, `.md"`, `.html"`)
	result = strings.ReplaceAll(result, `.md#`, `.html#`)
	return result
}

// mdPathToHTML maps a markdown relative path to its output page path.
func mdPathToHTML(relPath string) string {
	if strings.HasSuffix(relPath, ".md") {
		return strings.TrimSuffix(relPath, ".md") + ".html"
	}
	return relPath
}

// extractTitle pulls the first # heading from markdown content, or falls
// back to the filename.
func extractTitle(content, relPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return strings.TrimSuffix(filepath.Base(relPath), ".md")
}
