package reference

import (
	"github.com/goliatone/go-journalvm/pkg/citation"
	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// PeriodicalConverter formats PeriodicalReference values.
type PeriodicalConverter struct {
	deps Deps
}

// NewPeriodicalConverter builds a PeriodicalConverter.
func NewPeriodicalConverter(deps Deps) PeriodicalConverter {
	return PeriodicalConverter{deps: deps}
}

func (PeriodicalConverter) Name() string { return "reference.periodical" }

func (PeriodicalConverter) Supports(object any, _ viewmodel.Kind, _ convert.Context) bool {
	_, ok := as[model.PeriodicalReference](object)
	return ok
}

func (c PeriodicalConverter) Convert(object any, _ viewmodel.Kind, _ convert.Context) (viewmodel.ViewModel, error) {
	ref, ok := as[model.PeriodicalReference](object)
	if !ok {
		return nil, convert.Unsupported(c.Name(), object)
	}

	authors := citation.PruneAuthors(ref.Authors.Contributors)
	lists := []viewmodel.ReferenceAuthorList{
		c.deps.Formatter.CreateAuthors(authors, ref.Authors.EtAl, citation.ReferenceSuffix(ref)),
	}

	return c.deps.build(ref, ref.ArticleTitle, []string{PeriodicalCitation(ref)}, lists, nil), nil
}

// PeriodicalCitation renders "<i>Name</i> <b>Volume</b>:range", or
// "<i>Name</i> pages" when there is no volume.
func PeriodicalCitation(ref *model.PeriodicalReference) string {
	out := "<i>" + ref.Periodical + "</i>"
	pages := ""
	if ref.Pages != nil {
		pages = ref.Pages.String()
	}

	if ref.Volume != "" {
		out += " <b>" + ref.Volume + "</b>"
		if pages != "" {
			out += ":" + pageRange(ref.Pages)
		}
		return out
	}
	if pages != "" {
		out += " " + pages
	}
	return out
}

func pageRange(pages model.ReferencePages) string {
	switch p := pages.(type) {
	case model.PageRange:
		return p.RangeString()
	case *model.PageRange:
		return p.RangeString()
	default:
		return pages.String()
	}
}
