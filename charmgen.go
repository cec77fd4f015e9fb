// Package charmgen renders the Python class stub of an OpenStack charm. The
// root package re-exports the most common entry points; the building blocks
// live under pkg/.
package charmgen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-charmgen/pkg/charm"
	"github.com/goliatone/go-charmgen/pkg/generator"
	"github.com/goliatone/go-charmgen/pkg/renderers/python"
)

// RenderContext aliases charm.RenderContext for callers importing the root
// package only.
type RenderContext = charm.RenderContext

// CapabilityModule aliases charm.CapabilityModule.
type CapabilityModule = charm.CapabilityModule

// Request aliases generator.Request.
type Request = generator.Request

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// RenderClass renders rc with the embedded charm class template.
func RenderClass(ctx context.Context, rc RenderContext, options ...python.Option) ([]byte, error) {
	renderer, err := python.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, rc)
}

// EmbeddedTemplates exposes the built-in class template bundle so callers can
// copy or extend it.
func EmbeddedTemplates() fs.FS {
	return python.TemplatesFS()
}
