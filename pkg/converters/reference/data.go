package reference

import (
	"github.com/goliatone/go-journalvm/pkg/citation"
	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// DataConverter formats DataReference values. Each non-empty role group is
// rendered with its role label; only the first group in precedence order
// (authors, compilers, curators) carries the year.
type DataConverter struct {
	deps Deps
}

// NewDataConverter builds a DataConverter.
func NewDataConverter(deps Deps) DataConverter {
	return DataConverter{deps: deps}
}

func (DataConverter) Name() string { return "reference.data" }

func (DataConverter) Supports(object any, _ viewmodel.Kind, _ convert.Context) bool {
	_, ok := as[model.DataReference](object)
	return ok
}

func (c DataConverter) Convert(object any, _ viewmodel.Kind, _ convert.Context) (viewmodel.ViewModel, error) {
	ref, ok := as[model.DataReference](object)
	if !ok {
		return nil, convert.Unsupported(c.Name(), object)
	}

	origin := appendNonEmpty(nil, ref.Source)
	if ref.AssigningAuthority != nil {
		origin = appendNonEmpty(origin, ref.AssigningAuthority.String())
	}
	if ref.DataID != "" {
		origin = append(origin, "ID "+ref.DataID)
	}

	authors := citation.PruneAuthors(ref.Authors.Contributors)
	compilers := citation.PruneAuthors(ref.Compilers.Contributors, authors)
	curators := citation.PruneAuthors(ref.Curators.Contributors, authors, compilers)

	groups := []struct {
		role   string
		people []model.Contributor
		etAl   bool
	}{
		{citation.RoleAuthors, authors, ref.Authors.EtAl},
		{citation.RoleCompilers, compilers, ref.Compilers.EtAl},
		{citation.RoleCurators, curators, ref.Curators.EtAl},
	}

	year := citation.YearSuffix(ref.Date, ref.Discriminator)
	var lists []viewmodel.ReferenceAuthorList
	for _, group := range groups {
		if len(group.people) == 0 {
			continue
		}
		lists = append(lists, c.deps.Formatter.CreateAuthors(group.people, group.etAl, []string{group.role, year}))
		year = ""
	}

	return c.deps.build(ref, ref.Title, origin, lists, nil), nil
}
