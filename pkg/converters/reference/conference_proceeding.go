package reference

import (
	"github.com/goliatone/go-journalvm/pkg/citation"
	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// ConferenceProceedingConverter formats ConferenceProceedingReference values.
type ConferenceProceedingConverter struct {
	deps Deps
}

// NewConferenceProceedingConverter builds a ConferenceProceedingConverter.
func NewConferenceProceedingConverter(deps Deps) ConferenceProceedingConverter {
	return ConferenceProceedingConverter{deps: deps}
}

func (ConferenceProceedingConverter) Name() string { return "reference.conference-proceeding" }

func (ConferenceProceedingConverter) Supports(object any, _ viewmodel.Kind, _ convert.Context) bool {
	_, ok := as[model.ConferenceProceedingReference](object)
	return ok
}

func (c ConferenceProceedingConverter) Convert(object any, _ viewmodel.Kind, _ convert.Context) (viewmodel.ViewModel, error) {
	ref, ok := as[model.ConferenceProceedingReference](object)
	if !ok {
		return nil, convert.Unsupported(c.Name(), object)
	}

	conference := ref.Conference.String()
	pages := ""
	if ref.Pages != nil {
		pages = ref.Pages.String()
	}
	origin := appendNonEmpty(nil, conference, pages)

	authors := citation.PruneAuthors(ref.Authors.Contributors)
	lists := []viewmodel.ReferenceAuthorList{
		c.deps.Formatter.CreateAuthors(authors, ref.Authors.EtAl, citation.ReferenceSuffix(ref)),
	}

	query := citation.NewQuery().
		Set("title", c.deps.strip(ref.ArticleTitle)).
		Set("conference", conference).
		SetList("author", citation.Strings(ref.Authors.Contributors)).
		SetInt("publication_year", ref.Date.Year).
		Set("pages", pages)
	abstracts := []viewmodel.Link{c.deps.Links.ScholarLink(query)}

	return c.deps.build(ref, ref.ArticleTitle, origin, lists, abstracts), nil
}
