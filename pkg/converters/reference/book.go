package reference

import (
	"github.com/goliatone/go-journalvm/pkg/citation"
	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// BookConverter formats BookReference values.
type BookConverter struct {
	deps Deps
}

// NewBookConverter builds a BookConverter.
func NewBookConverter(deps Deps) BookConverter {
	return BookConverter{deps: deps}
}

func (BookConverter) Name() string { return "reference.book" }

func (BookConverter) Supports(object any, _ viewmodel.Kind, _ convert.Context) bool {
	_, ok := as[model.BookReference](object)
	return ok
}

func (c BookConverter) Convert(object any, _ viewmodel.Kind, _ convert.Context) (viewmodel.ViewModel, error) {
	ref, ok := as[model.BookReference](object)
	if !ok {
		return nil, convert.Unsupported(c.Name(), object)
	}
	f := c.deps.Formatter

	title := ref.BookTitle
	if ref.Volume != "" {
		title += ", " + ref.Volume
	}
	if ref.Edition != "" {
		title += " (" + ref.Edition + ")"
	}

	authors := citation.PruneAuthors(ref.Authors.Contributors)
	editors := citation.PruneAuthors(ref.Editors.Contributors, authors)

	var abstracts []viewmodel.Link
	if ref.PMID != "" {
		abstracts = append(abstracts, c.deps.Links.PubMedLink(ref.PMID))
	}
	query := citation.NewQuery().
		Set("title", c.deps.strip(ref.BookTitle)).
		SetList("author", citation.Strings(authors)).
		SetInt("publication_year", ref.Date.Year).
		Set("pmid", ref.PMID).
		Set("isbn", ref.ISBN)
	abstracts = append(abstracts, c.deps.Links.ScholarLink(query))

	suffix := citation.ReferenceSuffix(ref)

	var (
		lists  []viewmodel.ReferenceAuthorList
		origin []string
	)
	switch {
	case len(authors) == 0 && len(editors) == 0:
		lists = append(lists, f.CreateAuthors(nil, ref.Editors.EtAl, nil))
	case len(authors) == 0:
		lists = append(lists, f.CreateAuthors(editors, ref.Editors.EtAl, append([]string{citation.RoleEditors}, suffix...)))
	default:
		lists = append(lists, f.CreateAuthors(authors, ref.Authors.EtAl, suffix))
		if len(editors) > 0 {
			origin = append(origin, f.CreateAuthorsString(editors, ref.Editors.EtAl)+", "+citation.RoleEditors)
		}
	}

	origin = appendNonEmpty(origin, citation.PublisherString(ref.Publisher))
	if ref.ISBN != "" {
		origin = append(origin, "ISBN "+ref.ISBN)
	}

	return c.deps.build(ref, title, origin, lists, abstracts), nil
}
