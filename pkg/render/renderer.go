package render

import (
	"context"

	"github.com/goliatone/go-charmgen/pkg/charm"
)

// Renderer converts a RenderContext into generated source.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, rc charm.RenderContext) ([]byte, error)
}
