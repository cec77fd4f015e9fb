package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-charmgen/pkg/charm"
	"github.com/goliatone/go-charmgen/pkg/render"
	"github.com/goliatone/go-charmgen/pkg/renderers/python"
)

const defaultRendererName = "python"

// Prompter completes a render context interactively.
type Prompter interface {
	Fill(ctx context.Context, rc charm.RenderContext) (charm.RenderContext, error)
}

// Option customises the generator configuration.
type Option func(*Generator)

// WithRegistry injects a renderer registry. When it lacks the default
// renderer, the embedded Python class renderer is registered.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.defaultRenderer = name
		}
	}
}

// WithPrompter registers the prompter used for interactive requests.
func WithPrompter(prompter Prompter) Option {
	return func(g *Generator) {
		g.prompter = prompter
	}
}

// Generator resolves a render context from its sources and renders it with
// a registered renderer.
type Generator struct {
	registry        *render.Registry
	defaultRenderer string
	prompter        Prompter
	initialiseErr   error
}

// New constructs a Generator applying any provided options. Construction
// failures of the built-in renderer are reported by Generate.
func New(options ...Option) *Generator {
	g := &Generator{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.registry == nil {
		g.registry = render.NewRegistry()
	}
	if g.defaultRenderer == defaultRendererName && !g.registry.Has(defaultRendererName) {
		renderer, err := python.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("generator: configure python renderer: %w", err)
		} else if err := g.registry.Register(renderer); err != nil {
			g.initialiseErr = fmt.Errorf("generator: register python renderer: %w", err)
		}
	}
	return g
}

// Request describes where the render context comes from. Sources are applied
// in order: ContextPath, MetadataPath, Overrides, then prompting.
type Request struct {
	// ContextPath points at a YAML or JSON render context document.
	ContextPath string

	// MetadataPath points at a charm metadata.yaml whose name becomes
	// metadata.package.
	MetadataPath string

	// Overrides carries values such as CLI flags; non-empty fields win.
	Overrides charm.RenderContext

	// Interactive asks the configured prompter for fields still missing.
	Interactive bool

	// Renderer names the renderer to use. If empty, the generator falls back
	// to the configured default renderer.
	Renderer string
}

// Resolve builds the render context for req without rendering it.
func (g *Generator) Resolve(ctx context.Context, req Request) (charm.RenderContext, error) {
	if ctx == nil {
		return charm.RenderContext{}, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return charm.RenderContext{}, err
	}

	var rc charm.RenderContext
	if req.ContextPath != "" {
		loaded, err := charm.LoadContextFile(req.ContextPath)
		if err != nil {
			return charm.RenderContext{}, fmt.Errorf("generator: load context: %w", err)
		}
		rc = loaded
	}
	if req.MetadataPath != "" {
		meta, err := charm.ReadMetadataFile(req.MetadataPath)
		if err != nil {
			return charm.RenderContext{}, fmt.Errorf("generator: load metadata: %w", err)
		}
		rc = rc.Merge(charm.RenderContext{Metadata: meta})
	}
	rc = rc.Merge(req.Overrides)

	if req.Interactive && len(rc.Missing()) > 0 {
		if g.prompter == nil {
			return charm.RenderContext{}, errors.New("generator: interactive request without prompter")
		}
		filled, err := g.prompter.Fill(ctx, rc)
		if err != nil {
			return charm.RenderContext{}, fmt.Errorf("generator: prompt: %w", err)
		}
		rc = filled
	}
	return rc, nil
}

// Generate resolves the render context for req and renders it.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if err := g.initialiseErr; err != nil {
		return nil, err
	}

	renderer, err := g.registry.Resolve(req.Renderer, g.defaultRenderer)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	rc, err := g.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, rc)
}
