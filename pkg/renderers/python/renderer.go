package python

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-charmgen/pkg/charm"
	"github.com/goliatone/go-charmgen/pkg/render"
	rendertemplate "github.com/goliatone/go-charmgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-charmgen/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	templateName     string
	baseClass        string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must contain the template named by WithTemplateName (ClassTemplate by
// default).
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
// The renderer must provide the pystr and pylist filters.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTemplateName selects the class template inside the bundle.
func WithTemplateName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.templateName = name
		}
	}
}

// WithBaseClass overrides the dotted reference of the class the generated
// charm extends.
func WithBaseClass(ref string) Option {
	return func(cfg *config) {
		if ref != "" {
			cfg.baseClass = ref
		}
	}
}

// Renderer emits the Python source of a charm class from a RenderContext.
// It holds no per-call state and may be shared between goroutines.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	templateName string
	baseClass    string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the Python class renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		templateName: ClassTemplate,
		baseClass:    charm.BaseClassRef,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if err := charm.CheckDottedName("base class", cfg.baseClass); err != nil {
		return nil, fmt.Errorf("python renderer: %w", err)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		if cfg.templateFS == nil {
			cfg.templateFS = TemplatesFS()
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
			gotemplate.WithTemplateFunc(templateFilters()),
		)
		if err != nil {
			return nil, fmt.Errorf("python renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:    renderer,
		templateName: cfg.templateName,
		baseClass:    cfg.baseClass,
	}, nil
}

func (r *Renderer) Name() string {
	return "python"
}

func (r *Renderer) ContentType() string {
	return "text/x-python; charset=utf-8"
}

// Render validates rc and returns the charm class source. Validation failures
// surface as *charm.MissingFieldError, *charm.InvalidIdentifierError or
// *charm.SerializationError.
func (r *Renderer) Render(_ context.Context, rc charm.RenderContext) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("python renderer: template renderer is nil")
	}
	if err := rc.Validate(); err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate(r.templateName, viewData(rc, r.baseClass))
	if err != nil {
		return nil, fmt.Errorf("python renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// RenderTo renders rc and writes the source to w.
func (r *Renderer) RenderTo(ctx context.Context, rc charm.RenderContext, w io.Writer) error {
	out, err := r.Render(ctx, rc)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func viewData(rc charm.RenderContext, baseClass string) map[string]any {
	return map[string]any{
		"charm_class": rc.CharmClass,
		"metadata": map[string]any{
			"package": rc.Metadata.Package,
		},
		"release":      rc.Release,
		"packages":     append([]string{}, rc.Packages...),
		"import_block": importBlock(rc.EffectiveCapabilities()),
		"base_class":   baseClass,
	}
}

// importBlock renders the framework import followed by one line per
// capability. It carries no trailing newline so the template controls the
// spacing before the class statement.
func importBlock(capabilities []charm.CapabilityModule) string {
	var b strings.Builder
	b.WriteString("import charms_openstack.charm")
	for _, capability := range capabilities {
		b.WriteByte('\n')
		if !capability.Enabled {
			b.WriteString("# ")
		}
		b.WriteString("import ")
		b.WriteString(capability.ImportSpec())
	}
	return b.String()
}
