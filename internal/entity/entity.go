// Package entity implements the reversible text transforms that carry
// diagram source between the host markup, HTML attributes, and the
// mermaid parser without corrupting either syntax.
package entity

import "strings"

// Strategy selects how markup-escaped diagram source is prepared for
// delivery to the mermaid parser.
type Strategy string

const (
	// StrategyPassthrough keeps the markup-escaped text as-is and relies on
	// the browser's attribute decoding to hand mermaid the original glyphs.
	// Sources mixing literal angle brackets (List<int>) with arrow syntax
	// (-->) survive this path intact, so it is the default.
	StrategyPassthrough Strategy = "passthrough"

	// StrategyTokens rewrites markup character references into mermaid's own
	// #lt;-style tokens so the source can be embedded as an element text
	// node. Mermaid then shows the tokens as literal glyphs, which also means
	// escaped arrow syntax comes out as text rather than edges.
	StrategyTokens Strategy = "tokens"
)

// ParseStrategy maps a config string to a Strategy, defaulting to passthrough.
func ParseStrategy(s string) Strategy {
	if Strategy(s) == StrategyTokens {
		return StrategyTokens
	}
	return StrategyPassthrough
}

// EscapeHTML replaces markup-significant characters with named character
// references. Ampersand goes first so the references produced by the later
// replacements are not themselves escaped.
func EscapeHTML(raw string) string {
	s := strings.ReplaceAll(raw, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}

// UnescapeHTML reverses EscapeHTML. Ampersand goes last, mirroring the
// escape order, so "&amp;lt;" decodes to "&lt;" and not "<".
func UnescapeHTML(escaped string) string {
	s := strings.ReplaceAll(escaped, "&#39;", "'")
	s = strings.ReplaceAll(s, "&apos;", "'")
	s = strings.ReplaceAll(s, "&quot;", "\"")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

// ToMermaidTokens converts markup character references into mermaid's token
// syntax for the characters mermaid would otherwise parse as structure.
// Apostrophes have no mermaid token and decode to the literal glyph, which
// is safe in a text node. &amp; goes last so references the host produced
// from a literal ampersand decode exactly once.
func ToMermaidTokens(escaped string) string {
	s := strings.ReplaceAll(escaped, "&lt;", "#lt;")
	s = strings.ReplaceAll(s, "&gt;", "#gt;")
	s = strings.ReplaceAll(s, "&quot;", "#quot;")
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&apos;", "'")
	s = strings.ReplaceAll(s, "&amp;", "#amp;")
	return s
}

// AttributeEscape makes already markup-escaped text safe inside a
// double-quoted attribute value. Hosts escape angle brackets and ampersands
// in code blocks but not all of them escape quotes, so only the quote forms
// are normalized here; existing references contain no quote characters and
// pass through untouched.
func AttributeEscape(escaped string) string {
	s := strings.ReplaceAll(escaped, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}

// Encode applies the given strategy to markup-escaped source text.
func Encode(strategy Strategy, escaped string) string {
	if strategy == StrategyTokens {
		return ToMermaidTokens(escaped)
	}
	return escaped
}
