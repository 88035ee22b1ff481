package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown bodies into HTML. It is stateless, so a single
// instance can be shared across imports without locking.
type Renderer struct {
	engine goldmark.Markdown
}

// RendererOptions tunes the goldmark engine.
type RendererOptions struct {
	HardWraps bool
	Unsafe    bool
}

// NewRenderer constructs a renderer with GFM extensions enabled.
func NewRenderer(opts RendererOptions) *Renderer {
	rendererOptions := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if opts.HardWraps && opts.Unsafe {
		rendererOptions = append(rendererOptions, goldmark.WithRendererOptions(html.WithHardWraps(), html.WithUnsafe()))
	} else if opts.HardWraps {
		rendererOptions = append(rendererOptions, goldmark.WithRendererOptions(html.WithHardWraps()))
	} else if opts.Unsafe {
		rendererOptions = append(rendererOptions, goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	return &Renderer{engine: goldmark.New(rendererOptions...)}
}

// Render converts a Markdown body into HTML.
func (r *Renderer) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}
