package render

import (
	"context"

	"github.com/nao1215/neodynium/internal/model"
)

// Renderer loads a URL and reports the resulting page.
type Renderer interface {
	Render(ctx context.Context, url string) (*model.Page, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, url string) (*model.Page, error)

// Render implements Renderer.
func (f RendererFunc) Render(ctx context.Context, url string) (*model.Page, error) {
	return f(ctx, url)
}
