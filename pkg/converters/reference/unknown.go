package reference

import (
	"github.com/goliatone/go-journalvm/pkg/citation"
	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// UnknownConverter formats references the upstream API could not classify.
type UnknownConverter struct {
	deps Deps
}

// NewUnknownConverter builds an UnknownConverter.
func NewUnknownConverter(deps Deps) UnknownConverter {
	return UnknownConverter{deps: deps}
}

func (UnknownConverter) Name() string { return "reference.unknown" }

func (UnknownConverter) Supports(object any, _ viewmodel.Kind, _ convert.Context) bool {
	_, ok := as[model.UnknownReference](object)
	return ok
}

func (c UnknownConverter) Convert(object any, _ viewmodel.Kind, _ convert.Context) (viewmodel.ViewModel, error) {
	ref, ok := as[model.UnknownReference](object)
	if !ok {
		return nil, convert.Unsupported(c.Name(), object)
	}

	lists := []viewmodel.ReferenceAuthorList{
		c.deps.Formatter.CreateAuthors(ref.Authors.Contributors, ref.Authors.EtAl, citation.ReferenceSuffix(ref)),
	}

	query := citation.NewQuery().
		Set("title", c.deps.strip(ref.Title)).
		SetList("author", citation.Strings(ref.Authors.Contributors)).
		SetInt("publication_year", ref.Date.Year)
	abstracts := []viewmodel.Link{c.deps.Links.ScholarLink(query)}

	return c.deps.build(ref, ref.Title, appendNonEmpty(nil, ref.Details), lists, abstracts), nil
}
