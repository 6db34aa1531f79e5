// Package markdown renders CommonMark text to HTML fragments using the
// goldmark library. The rest of the engine treats this as an opaque
// capability.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Flavor identifies the Markdown flavor supported by the renderer.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Renderer converts Markdown text to HTML fragments.
type Renderer struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a renderer for the given flavor. Supported flavors are
// "commonmark" and "gfm"; invalid flavors default to "commonmark".
func New(flavor string) *Renderer {
	f := flavorOrDefault(flavor)
	return &Renderer{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (r *Renderer) Flavor() string {
	return r.flavor
}

// Render converts body to an HTML fragment. The fragment carries no
// trailing newline.
func (r *Renderer) Render(body string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance builds the goldmark pipeline. XHTML-style output
// keeps hard breaks as <br />; raw HTML in the source passes through
// unchanged, since the input is the author's own document.
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			html.WithUnsafe(),
		),
	}
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return goldmark.New(opts...)
}
