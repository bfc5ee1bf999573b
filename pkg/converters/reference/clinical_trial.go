package reference

import (
	"github.com/goliatone/go-journalvm/pkg/citation"
	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// ClinicalTrialConverter formats ClinicalTrialReference values. The
// contributor role label comes straight from the reference.
type ClinicalTrialConverter struct {
	deps Deps
}

// NewClinicalTrialConverter builds a ClinicalTrialConverter.
func NewClinicalTrialConverter(deps Deps) ClinicalTrialConverter {
	return ClinicalTrialConverter{deps: deps}
}

func (ClinicalTrialConverter) Name() string { return "reference.clinical-trial" }

func (ClinicalTrialConverter) Supports(object any, _ viewmodel.Kind, _ convert.Context) bool {
	_, ok := as[model.ClinicalTrialReference](object)
	return ok
}

func (c ClinicalTrialConverter) Convert(object any, _ viewmodel.Kind, _ convert.Context) (viewmodel.ViewModel, error) {
	ref, ok := as[model.ClinicalTrialReference](object)
	if !ok {
		return nil, convert.Unsupported(c.Name(), object)
	}

	suffix := []string{ref.AuthorsType, citation.YearSuffix(ref.Date, ref.Discriminator)}
	lists := []viewmodel.ReferenceAuthorList{
		c.deps.Formatter.CreateAuthors(ref.Authors.Contributors, ref.Authors.EtAl, suffix),
	}

	return c.deps.build(ref, ref.Title, nil, lists, nil), nil
}
