// Package preview renders view-models as HTML previews. Each view-model kind
// has its own template; listings and profile groups render their items first
// and hand the fragments to the parent template.
package preview

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-journalvm/pkg/render"
	rendertemplate "github.com/goliatone/go-journalvm/pkg/render/template"
	"github.com/goliatone/go-journalvm/pkg/render/template/pongo"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// Name is the registry name of the renderer.
const Name = "html"

// PartialPrefix prefixes theme template keys. A manifest entry
// "journalvm.teaser" replaces the teaser template.
const PartialPrefix = "journalvm."

const pageTemplate = "templates/page"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	selector         theme.ThemeSelector
	defaultTheme     string
	defaultVariant   string
}

// WithTemplatesFS layers an extra template bundle over the embedded one.
// Theme partials resolve against it first.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir layers templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector resolves themes through selector. defaultTheme and
// defaultVariant apply when RenderOptions leave them empty.
func WithThemeSelector(selector theme.ThemeSelector, defaultTheme, defaultVariant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.defaultTheme = strings.TrimSpace(defaultTheme)
		cfg.defaultVariant = strings.TrimSpace(defaultVariant)
	}
}

// Renderer produces HTML from view-models.
type Renderer struct {
	templates      rendertemplate.TemplateRenderer
	selector       theme.ThemeSelector
	defaultTheme   string
	defaultVariant string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the preview renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOptions := []pongo.Option{}
		if cfg.templateFS != nil {
			engineOptions = append(engineOptions, pongo.WithFS(cfg.templateFS))
		}
		engineOptions = append(engineOptions, pongo.WithFS(TemplatesFS()))

		engine, err := pongo.New(engineOptions...)
		if err != nil {
			return nil, fmt.Errorf("preview renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:      renderer,
		selector:       cfg.selector,
		defaultTheme:   cfg.defaultTheme,
		defaultVariant: cfg.defaultVariant,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render renders vm, wrapped in a full document unless options.Fragment is
// set.
func (r *Renderer) Render(_ context.Context, vm viewmodel.ViewModel, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("preview renderer: template renderer is nil")
	}
	if vm == nil {
		return nil, fmt.Errorf("preview renderer: view-model is nil")
	}

	cfg, err := r.resolveTheme(options)
	if err != nil {
		return nil, err
	}
	partials := map[string]string(nil)
	if cfg != nil {
		partials = cfg.Partials
	}

	body, err := r.renderNode(vm, partials)
	if err != nil {
		return nil, err
	}
	if options.Fragment {
		return []byte(body), nil
	}

	page, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"title": pageTitle(options.Title, vm),
		"body":  body,
		"theme": buildThemeContext(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("preview renderer: render page: %w", err)
	}
	return []byte(page), nil
}

func (r *Renderer) renderNode(vm viewmodel.ViewModel, partials map[string]string) (string, error) {
	kind := vm.ViewModelKind()

	var items []any
	for idx, child := range children(vm) {
		if child == nil {
			continue
		}
		fragment, err := r.renderNode(child, partials)
		if err != nil {
			return "", fmt.Errorf("preview renderer: %s item %d: %w", kind, idx, err)
		}
		items = append(items, fragment)
	}

	out, err := r.templates.RenderTemplate(templateFor(kind, partials), map[string]any{
		"kind":  string(kind),
		"vm":    vm,
		"items": items,
	})
	if err != nil {
		return "", fmt.Errorf("preview renderer: render %s: %w", kind, err)
	}
	return out, nil
}

func templateFor(kind viewmodel.Kind, partials map[string]string) string {
	if override := strings.TrimSpace(partials[PartialPrefix+string(kind)]); override != "" {
		return override
	}
	switch kind {
	case viewmodel.KindListingTeasers, viewmodel.KindListingAnnotationTeasers:
		return "templates/listing"
	default:
		return "templates/" + string(kind)
	}
}

func children(vm viewmodel.ViewModel) []viewmodel.ViewModel {
	switch v := vm.(type) {
	case viewmodel.ListingTeasers:
		return v.Items
	case *viewmodel.ListingTeasers:
		return v.Items
	case viewmodel.ListingAnnotationTeasers:
		return v.Items
	case *viewmodel.ListingAnnotationTeasers:
		return v.Items
	case viewmodel.AboutProfiles:
		return v.Items
	case *viewmodel.AboutProfiles:
		return v.Items
	}
	return nil
}

func pageTitle(title string, vm viewmodel.ViewModel) string {
	if title = strings.TrimSpace(title); title != "" {
		return title
	}
	return "Preview: " + string(vm.ViewModelKind())
}
