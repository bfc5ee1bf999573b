package reference

import (
	"github.com/goliatone/go-journalvm/pkg/citation"
	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// SoftwareConverter formats SoftwareReference values.
type SoftwareConverter struct {
	deps Deps
}

// NewSoftwareConverter builds a SoftwareConverter.
func NewSoftwareConverter(deps Deps) SoftwareConverter {
	return SoftwareConverter{deps: deps}
}

func (SoftwareConverter) Name() string { return "reference.software" }

func (SoftwareConverter) Supports(object any, _ viewmodel.Kind, _ convert.Context) bool {
	_, ok := as[model.SoftwareReference](object)
	return ok
}

func (c SoftwareConverter) Convert(object any, _ viewmodel.Kind, _ convert.Context) (viewmodel.ViewModel, error) {
	ref, ok := as[model.SoftwareReference](object)
	if !ok {
		return nil, convert.Unsupported(c.Name(), object)
	}

	title := ref.Title
	if ref.Version != "" {
		title += ", version " + ref.Version
	}

	lists := []viewmodel.ReferenceAuthorList{
		c.deps.Formatter.CreateAuthors(ref.Authors.Contributors, ref.Authors.EtAl, citation.ReferenceSuffix(ref)),
	}

	return c.deps.build(ref, title, appendNonEmpty(nil, ref.Publisher.String()), lists, nil), nil
}
