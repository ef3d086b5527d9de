package content

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownEngine is shared across all renders. Goldmark instances hold no
// per-convert state, so concurrent calls are safe. Raw HTML must pass
// through unchanged because the overview preprocessor injects explicit
// heading and figure markup before conversion.
var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// renderMarkdown converts markdown source to HTML. The conversion is a pure
// function of its input: the same source always yields byte-identical output.
func renderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("content: render markdown: %w", err)
	}
	return buf.String(), nil
}
