package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-charmgen/pkg/charm"
	"github.com/goliatone/go-charmgen/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, charm.RenderContext) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	for _, name := range []string{"python", "layer"} {
		if err := registry.Register(stubRenderer{name: name}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	if err := registry.Register(stubRenderer{name: "python"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}

	renderer, err := registry.Get("python")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "python" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected lookup error")
	}

	if diff := cmp.Diff([]string{"layer", "python"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("layer") || registry.Has("missing") {
		t.Fatalf("Has reported wrong membership")
	}
}

func TestRegistry_ResolveFallback(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(stubRenderer{name: "python"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Resolve(" ", "python")
	if err != nil {
		t.Fatalf("resolve fallback: %v", err)
	}
	if renderer.Name() != "python" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}

	if _, err := registry.Resolve("layer", "python"); err == nil || !strings.Contains(err.Error(), "available: python") {
		t.Fatalf("expected not found error listing available renderers, got %v", err)
	}
}
