package render

// pageTemplate is the HTML shell for every generated page. The data-theme
// attribute on <html> is the site-wide theme signal the diagram activation
// script watches.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} — {{.ProjectName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <header class="topbar">
    <span class="project-name">{{.ProjectName}}</span>
    <button id="theme-toggle" type="button" aria-label="Toggle theme">◐</button>
  </header>
  <main>
    <article class="page-content">
{{.Content}}
    </article>
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>
`

// cssContent is the shared site stylesheet.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --border: #d0d7de;
  --code-bg: #f6f8fa;
  --accent: #0969da;
}
html[data-theme="dark"] {
  --bg: #0d1117;
  --fg: #e6edf3;
  --border: #30363d;
  --code-bg: #161b22;
  --accent: #58a6ff;
}
@media (prefers-color-scheme: dark) {
  html:not([data-theme="light"]) {
    --bg: #0d1117;
    --fg: #e6edf3;
    --border: #30363d;
    --code-bg: #161b22;
    --accent: #58a6ff;
  }
}
body {
  margin: 0;
  background: var(--bg);
  color: var(--fg);
  font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
}
.topbar {
  display: flex;
  justify-content: space-between;
  align-items: center;
  padding: 0.6rem 1.2rem;
  border-bottom: 1px solid var(--border);
}
.project-name { font-weight: 600; }
#theme-toggle {
  background: none;
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--fg);
  cursor: pointer;
  padding: 0.2rem 0.55rem;
  font-size: 1rem;
}
main { max-width: 52rem; margin: 0 auto; padding: 1.5rem 1.2rem 4rem; }
a { color: var(--accent); }
pre {
  position: relative;
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 0.8rem 1rem;
  overflow-x: auto;
}
code { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 0.9em; }
.copy-button {
  position: absolute;
  top: 0.4rem;
  right: 0.4rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--fg);
  cursor: pointer;
  font-size: 0.75rem;
  padding: 0.15rem 0.5rem;
}
`

// jsContent is the site JavaScript: theme toggle and copy buttons. Theme
// changes only write the data-theme attribute; the diagram activation
// script observes the attribute and re-renders on its own.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;

  function getStoredTheme() {
    try { return localStorage.getItem("mermaidoc-theme"); } catch (e) { return null; }
  }

  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("mermaidoc-theme", theme); } catch (e) {}
  }

  var stored = getStoredTheme();
  if (stored === "dark" || stored === "light") {
    setTheme(stored);
  }

  var toggle = document.getElementById("theme-toggle");
  if (toggle) {
    toggle.addEventListener("click", function() {
      var current = html.getAttribute("data-theme");
      if (!current) {
        current = window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches ? "dark" : "light";
      }
      setTheme(current === "dark" ? "light" : "dark");
    });
  }

  document.querySelectorAll("pre > .copy-button").forEach(function(button) {
    button.addEventListener("click", function() {
      var code = button.parentElement.querySelector("code");
      if (!code || !navigator.clipboard) return;
      navigator.clipboard.writeText(code.textContent).then(function() {
        button.textContent = "Copied";
        setTimeout(function() { button.textContent = "Copy"; }, 1500);
      });
    });
  });
})();
`
