// Package reference converts the seven bibliographic reference kinds into the
// Reference view-model. Converters dispatch on runtime type only; the
// requested target is not constrained.
package reference

import (
	"github.com/goliatone/go-journalvm/pkg/citation"
	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/markup"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// Deps are the formatting collaborators shared by every reference converter.
type Deps struct {
	Formatter   citation.Formatter
	Links       citation.Links
	Stripper    markup.Stripper
	DOIResolver string
}

// Option customises Deps.
type Option func(*Deps)

// WithStyle overrides the citation separators.
func WithStyle(style citation.Style) Option {
	return func(d *Deps) {
		d.Formatter = citation.NewFormatter(style)
	}
}

// WithLinks overrides the PubMed and Scholar endpoints.
func WithLinks(links citation.Links) Option {
	return func(d *Deps) {
		d.Links = links
	}
}

// WithStripper overrides the markup stripper used for query titles.
func WithStripper(stripper markup.Stripper) Option {
	return func(d *Deps) {
		d.Stripper = stripper
	}
}

// WithDOIResolver overrides the DOI link prefix.
func WithDOIResolver(resolver string) Option {
	return func(d *Deps) {
		d.DOIResolver = resolver
	}
}

// NewDeps builds Deps with the journal defaults.
func NewDeps(options ...Option) Deps {
	d := Deps{
		Formatter:   citation.NewFormatter(citation.DefaultStyle()),
		Links:       citation.DefaultLinks(),
		Stripper:    markup.Bluemonday{},
		DOIResolver: viewmodel.DefaultDOIResolver,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&d)
	}
	if d.Stripper == nil {
		d.Stripper = markup.Bluemonday{}
	}
	return d
}

// Converters returns one converter per reference kind in registration order.
func Converters(deps Deps) []convert.Converter {
	return []convert.Converter{
		NewBookConverter(deps),
		NewClinicalTrialConverter(deps),
		NewConferenceProceedingConverter(deps),
		NewDataConverter(deps),
		NewPeriodicalConverter(deps),
		NewSoftwareConverter(deps),
		NewUnknownConverter(deps),
	}
}

// as accepts both T and *T so callers may pass references by value.
func as[T any](object any) (*T, bool) {
	switch v := object.(type) {
	case *T:
		return v, v != nil
	case T:
		return &v, true
	}
	return nil, false
}

// build emits the DOI shape when the reference has a DOI, otherwise the
// title-link shape.
func (d Deps) build(ref model.Reference, title string, origin []string, authors []viewmodel.ReferenceAuthorList, abstracts []viewmodel.Link) viewmodel.Reference {
	if doi := ref.ReferenceDOI(); doi != "" {
		return viewmodel.ReferenceWithDOI(title, viewmodel.NewDoi(doi, d.DOIResolver), origin, authors, abstracts)
	}
	return viewmodel.ReferenceWithoutDOI(viewmodel.NewLink(title, ref.ReferenceURI()), origin, authors, abstracts)
}

func (d Deps) strip(text string) string {
	if d.Stripper == nil {
		return markup.Strip(text)
	}
	return d.Stripper.StripMarkup(text)
}

func appendNonEmpty(list []string, values ...string) []string {
	for _, value := range values {
		if value != "" {
			list = append(list, value)
		}
	}
	return list
}
