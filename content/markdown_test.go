package content

import (
	"strings"
	"testing"
)

func TestRenderMarkdownBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"heading", "## Hello", "<h2>Hello</h2>"},
		{"paragraph", "Just text.", "<p>Just text.</p>"},
		{"list", "- one\n- two", "<li>one</li>"},
		{"emphasis", "some *emphasis* here", "<em>emphasis</em>"},
		{"strong", "very **bold** words", "<strong>bold</strong>"},
		{"link", "[home](https://example.com)", `<a href="https://example.com">home</a>`},
		{"inline code", "run `go test` now", "<code>go test</code>"},
		{"blockquote", "> quoted", "<blockquote>"},
		{"rule", "above\n\n---\n\nbelow", "<hr>"},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", "<td>1</td>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderMarkdown(tt.in)
			if err != nil {
				t.Fatalf("renderMarkdown: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("renderMarkdown(%q) = %q, want it to contain %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderMarkdownDeterministic(t *testing.T) {
	src := "# Title\n\nSome **bold** text with a [link](https://example.com).\n\n- a\n- b\n"
	first, err := renderMarkdown(src)
	if err != nil {
		t.Fatalf("renderMarkdown: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := renderMarkdown(src)
		if err != nil {
			t.Fatalf("renderMarkdown: %v", err)
		}
		if again != first {
			t.Fatalf("render %d differs from first render", i)
		}
	}
}
