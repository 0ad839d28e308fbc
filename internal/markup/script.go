package markup

// diagramCSS is the shared stylesheet for diagram blocks. Placeholders stay
// hidden and the fallback stays visible until the activation script marks a
// block active, so pages degrade to readable source without JavaScript.
const diagramCSS = `.mermaidoc { margin: 1em 0; }
.mermaidoc .mermaidoc-diagram { display: none; }
.mermaidoc[data-active] .mermaidoc-diagram { display: block; }
.mermaidoc[data-active] .mermaidoc-fallback { display: none; }
.mermaidoc[data-variant="dual"][data-active] .mermaidoc-diagram[data-diagram-theme="dark"] { display: none; }
html[data-theme="dark"] .mermaidoc[data-variant="dual"][data-active] .mermaidoc-diagram[data-diagram-theme="light"] { display: none; }
html[data-theme="dark"] .mermaidoc[data-variant="dual"][data-active] .mermaidoc-diagram[data-diagram-theme="dark"] { display: block; }
@media (prefers-color-scheme: dark) {
  html:not([data-theme="light"]) .mermaidoc[data-variant="dual"][data-active] .mermaidoc-diagram[data-diagram-theme="light"] { display: none; }
  html:not([data-theme="light"]) .mermaidoc[data-variant="dual"][data-active] .mermaidoc-diagram[data-diagram-theme="dark"] { display: block; }
}
`

// activationJS is the body of the activation script. The single %s is the
// mermaid import URL or page-relative path. Theme detection reads the
// site-wide data-theme attribute on the document root, falling back to the
// OS color-scheme preference, and re-runs whenever either signal changes.
const activationJS = `import mermaid from "%s";

const root = document.documentElement;

function currentTheme() {
  const explicit = root.getAttribute("data-theme");
  if (explicit === "dark" || explicit === "light") return explicit;
  if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) return "dark";
  return "light";
}

let generation = 0;

async function renderAll() {
  const theme = currentTheme();
  mermaid.initialize({
    startOnLoad: false,
    theme: theme === "dark" ? "dark" : "default",
    securityLevel: "loose"
  });
  const gen = ++generation;
  let index = 0;
  // Single-placeholder blocks are re-rendered in place on every theme
  // change; each render gets a fresh element id so mermaid never collides
  // with ids from a previous pass.
  for (const el of document.querySelectorAll(".mermaidoc-diagram[data-diagram-source]")) {
    const source = el.getAttribute("data-diagram-source") || "";
    try {
      const { svg } = await mermaid.render("mermaidoc-" + gen + "-" + index++, source);
      if (gen !== generation) return;
      el.innerHTML = svg;
      el.closest(".mermaidoc").setAttribute("data-active", "");
    } catch (err) {
      el.closest(".mermaidoc").removeAttribute("data-active");
    }
  }
  // Dual-mounted blocks carry their theme directive inline and render once;
  // CSS toggles which copy is visible afterwards.
  for (const block of document.querySelectorAll('.mermaidoc[data-variant="dual"]:not([data-active])')) {
    try {
      await mermaid.run({ nodes: block.querySelectorAll(".mermaid") });
      block.setAttribute("data-active", "");
    } catch (err) {
      // fallback stays visible
    }
  }
}

new MutationObserver(() => renderAll()).observe(root, {
  attributes: true,
  attributeFilter: ["data-theme"]
});
if (window.matchMedia) {
  window.matchMedia("(prefers-color-scheme: dark)").addEventListener("change", () => renderAll());
}
renderAll();
`
