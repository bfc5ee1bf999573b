// Package profile converts people into about-page profiles. The compact
// converter must be registered before the full one: both accept the same
// input and the compact one narrows on the Compact option.
package profile

import (
	"strings"

	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// OrcidBase prefixes ORCID identifiers.
const OrcidBase = "https://orcid.org/"

// CompactConverter renders name, role and affiliations only.
type CompactConverter struct{}

// NewCompactConverter builds a CompactConverter.
func NewCompactConverter() CompactConverter { return CompactConverter{} }

func (CompactConverter) Name() string { return "profile.compact" }

func (CompactConverter) Supports(object any, target viewmodel.Kind, ctx convert.Context) bool {
	_, ok := asPerson(object)
	return ok && target == viewmodel.KindAboutProfile && ctx.Profile.Compact
}

func (c CompactConverter) Convert(object any, _ viewmodel.Kind, _ convert.Context) (viewmodel.ViewModel, error) {
	person, ok := asPerson(object)
	if !ok {
		return nil, convert.Unsupported(c.Name(), object)
	}
	return viewmodel.AboutProfile{
		Name:         person.String(),
		Role:         person.Role,
		Affiliations: affiliations(person.Affiliations),
		Compact:      true,
	}, nil
}

// FullConverter adds the biography and ORCID link.
type FullConverter struct{}

// NewFullConverter builds a FullConverter.
func NewFullConverter() FullConverter { return FullConverter{} }

func (FullConverter) Name() string { return "profile.full" }

func (FullConverter) Supports(object any, target viewmodel.Kind, _ convert.Context) bool {
	_, ok := asPerson(object)
	return ok && target == viewmodel.KindAboutProfile
}

func (c FullConverter) Convert(object any, _ viewmodel.Kind, _ convert.Context) (viewmodel.ViewModel, error) {
	person, ok := asPerson(object)
	if !ok {
		return nil, convert.Unsupported(c.Name(), object)
	}
	profile := viewmodel.AboutProfile{
		Name:         person.String(),
		Role:         person.Role,
		Affiliations: affiliations(person.Affiliations),
		Biography:    strings.TrimSpace(person.Biography),
	}
	if orcid := strings.TrimSpace(person.Orcid); orcid != "" {
		link := viewmodel.NewLink("ORCID", OrcidBase+orcid)
		profile.Orcid = &link
	}
	return profile, nil
}

// Group converts people into an AboutProfiles block under heading, or
// returns nil when there is nobody to show.
func Group(d convert.Dispatcher, people []model.Person, heading string, compact bool) (*viewmodel.AboutProfiles, error) {
	if len(people) == 0 {
		return nil, nil
	}
	ctx := convert.Context{Profile: convert.ProfileOptions{Compact: compact}}
	items, err := convert.Map(d, people, viewmodel.KindAboutProfile, ctx)
	if err != nil {
		return nil, err
	}
	return &viewmodel.AboutProfiles{
		Items:   items,
		Heading: viewmodel.NewListHeading(heading),
		Compact: compact,
	}, nil
}

func affiliations(values []string) []string {
	var out []string
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func asPerson(object any) (*model.Person, bool) {
	switch v := object.(type) {
	case *model.Person:
		return v, v != nil
	case model.Person:
		return &v, true
	}
	return nil, false
}
