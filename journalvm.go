// Package journalvm wires the default journal converters into a dispatch
// registry and exposes the entry points most callers need.
package journalvm

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-journalvm/pkg/citation"
	"github.com/goliatone/go-journalvm/pkg/config"
	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/converters/digest"
	"github.com/goliatone/go-journalvm/pkg/converters/listing"
	"github.com/goliatone/go-journalvm/pkg/converters/profile"
	"github.com/goliatone/go-journalvm/pkg/converters/reference"
	"github.com/goliatone/go-journalvm/pkg/converters/teaser"
	"github.com/goliatone/go-journalvm/pkg/markup"
	"github.com/goliatone/go-journalvm/pkg/paginate"
	"github.com/goliatone/go-journalvm/pkg/render"
	"github.com/goliatone/go-journalvm/pkg/renderers/preview"
	"github.com/goliatone/go-journalvm/pkg/renderers/raw"
	"github.com/goliatone/go-journalvm/pkg/urlgen"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// Context aliases convert.Context so callers can build conversion options
// from the top-level package.
type Context = convert.Context

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Deps are the collaborators shared by the default converters.
type Deps struct {
	URLs          urlgen.Generator
	Stripper      markup.Stripper
	Reference     reference.Deps
	Licence       string
	LoadMoreLabel string
}

// DepsFromConfig builds Deps from a loaded configuration. Reference.Stripper
// is left unset so the reference converters share Deps.Stripper.
func DepsFromConfig(cfg config.Config) Deps {
	return Deps{
		URLs:     urlgen.NewRoutes(cfg.Routes, urlgen.WithBaseURL(cfg.BaseURL)),
		Stripper: markup.Bluemonday{},
		Reference: reference.Deps{
			Formatter:   citation.NewFormatter(cfg.Citation),
			Links:       cfg.Links,
			DOIResolver: cfg.DOIResolver,
		},
		Licence:       cfg.Licence,
		LoadMoreLabel: cfg.Listing.LoadMore,
	}
}

// NewRegistry registers the default converters in their fixed order: the
// digest header, the paginator listing, the seven reference kinds, the
// compact and full profiles, then the teaser. An unset
// Deps.Reference.Stripper is filled from Deps.Stripper; the rest of
// Deps.Reference is used as given.
func NewRegistry(deps Deps, options ...convert.Option) (*convert.Registry, error) {
	if deps.URLs == nil {
		return nil, errors.New("journalvm: URL generator is required")
	}
	if deps.Stripper == nil {
		deps.Stripper = markup.Bluemonday{}
	}
	if deps.Reference.Stripper == nil {
		deps.Reference.Stripper = deps.Stripper
	}

	registry := convert.NewRegistry(options...)

	converters := []convert.Converter{
		digest.NewHeaderConverter(deps.URLs,
			digest.WithStripper(deps.Stripper),
			digest.WithLicence(deps.Licence),
		),
		listing.New(listing.WithLoadMoreLabel(deps.LoadMoreLabel)),
	}
	converters = append(converters, reference.Converters(deps.Reference)...)
	converters = append(converters,
		profile.NewCompactConverter(),
		profile.NewFullConverter(),
		teaser.New(deps.URLs),
	)

	for _, converter := range converters {
		if err := registry.Register(converter); err != nil {
			return nil, fmt.Errorf("journalvm: %w", err)
		}
	}
	return registry, nil
}

// MustNewRegistry panics when NewRegistry fails. Useful for init-time wiring.
func MustNewRegistry(deps Deps, options ...convert.Option) *convert.Registry {
	registry, err := NewRegistry(deps, options...)
	if err != nil {
		panic(err)
	}
	return registry
}

// Convert dispatches object and asserts the result type.
func Convert[T viewmodel.ViewModel](d convert.Dispatcher, object any, target viewmodel.Kind, ctx Context) (T, error) {
	var zero T
	vm, err := d.Convert(object, target, ctx)
	if err != nil {
		return zero, err
	}
	typed, ok := vm.(T)
	if !ok {
		return zero, fmt.Errorf("journalvm: %s conversion produced %T, want %T", target, vm, zero)
	}
	return typed, nil
}

// ConvertMany converts a typed slice in order, stopping at the first error.
func ConvertMany[T any](d convert.Dispatcher, objects []T, target viewmodel.Kind, ctx Context) ([]viewmodel.ViewModel, error) {
	return convert.Map(d, objects, target, ctx)
}

// Listing pages items, converts the page's items to itemTarget and then
// converts the page itself to a listing of kind target.
func Listing[T any](d convert.Dispatcher, items []T, itemTarget, target viewmodel.Kind, page, perPage int, ctx Context, options ...paginate.Option) (viewmodel.ViewModel, error) {
	built, err := paginate.Build(items, page, perPage, func(item T) (viewmodel.ViewModel, error) {
		return d.Convert(item, itemTarget, ctx)
	}, options...)
	if err != nil {
		return nil, err
	}
	return d.Convert(built, target, ctx)
}

// NewRenderRegistry registers the json renderer (the default) and the html
// preview renderer.
func NewRenderRegistry(options ...preview.Option) (*render.Registry, error) {
	html, err := preview.New(options...)
	if err != nil {
		return nil, fmt.Errorf("journalvm: %w", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(raw.New(), html)
	return registry, nil
}
