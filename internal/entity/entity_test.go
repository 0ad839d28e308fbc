package entity

import (
	"strings"
	"testing"
)

func TestEscapeHTMLRoundTrip(t *testing.T) {
	tests := []string{
		"graph TD",
		"A[List<int>] --> B",
		`say "hello" & 'goodbye'`,
		"&lt; pre-escaped looking input &gt;",
		"a < b > c & d \" e ' f",
		"",
	}
	for _, raw := range tests {
		got := UnescapeHTML(EscapeHTML(raw))
		if got != raw {
			t.Errorf("round trip of %q = %q", raw, got)
		}
	}
}

func TestEscapeHTMLNoRawSpecials(t *testing.T) {
	escaped := EscapeHTML(`<script>alert("x&y")</script>`)
	for _, c := range []string{"<", ">", "\"", "'"} {
		if strings.Contains(escaped, c) {
			t.Errorf("escaped output contains raw %q: %s", c, escaped)
		}
	}
}

func TestEscapeHTMLAmpersandFirst(t *testing.T) {
	// A literal "&lt;" in the source must not collapse into "<" after a
	// round trip through escape and decode.
	got := EscapeHTML("&lt;")
	if got != "&amp;lt;" {
		t.Errorf("EscapeHTML(\"&lt;\") = %q, want %q", got, "&amp;lt;")
	}
	if back := UnescapeHTML(got); back != "&lt;" {
		t.Errorf("UnescapeHTML(%q) = %q, want %q", got, back, "&lt;")
	}
}

func TestToMermaidTokens(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"A[List&lt;int&gt;]", "A[List#lt;int#gt;]"},
		{"&quot;label&quot;", "#quot;label#quot;"},
		{"a &amp; b", "a #amp; b"},
		{"it&#39;s", "it's"},
		{"A --&gt; B", "A --#gt; B"},
	}
	for _, tt := range tests {
		got := ToMermaidTokens(tt.input)
		if got != tt.want {
			t.Errorf("ToMermaidTokens(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestToMermaidTokensNoRawMarkup(t *testing.T) {
	got := ToMermaidTokens(EscapeHTML(`A[Map<string, List<int>>] --> B{"x" & 'y'}`))
	if strings.Contains(got, "<") || strings.Contains(got, ">") || strings.Contains(got, "&") {
		t.Errorf("token output contains raw markup characters: %s", got)
	}
}

func TestAttributeEscape(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`a "quoted" value`, "a &quot;quoted&quot; value"},
		{"already &quot;safe&quot;", "already &quot;safe&quot;"},
		{"it's", "it&#39;s"},
		{"A --&gt; B", "A --&gt; B"},
	}
	for _, tt := range tests {
		got := AttributeEscape(tt.input)
		if got != tt.want {
			t.Errorf("AttributeEscape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEncodeStrategies(t *testing.T) {
	escaped := "A[List&lt;int&gt;] --&gt; B"

	if got := Encode(StrategyPassthrough, escaped); got != escaped {
		t.Errorf("passthrough changed input: %q", got)
	}
	if got := Encode(StrategyTokens, escaped); got != "A[List#lt;int#gt;] --#gt; B" {
		t.Errorf("tokens = %q", got)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input string
		want  Strategy
	}{
		{"tokens", StrategyTokens},
		{"passthrough", StrategyPassthrough},
		{"", StrategyPassthrough},
		{"bogus", StrategyPassthrough},
	}
	for _, tt := range tests {
		if got := ParseStrategy(tt.input); got != tt.want {
			t.Errorf("ParseStrategy(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
