package profile_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/converters/profile"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

func registry() *convert.Registry {
	r := convert.NewRegistry()
	r.MustRegister(profile.NewCompactConverter(), profile.NewFullConverter())
	return r
}

var editor = model.Person{
	PreferredName: "Ana Silva",
	Role:          "Editor",
	Affiliations:  []string{"University of Lisbon", " "},
	Biography:     "Works on tax-benefit models.",
	Orcid:         "0000-0002-1825-0097",
}

func TestGroupCompact(t *testing.T) {
	got, err := profile.Group(registry(), []model.Person{editor}, "Editors", true)
	if err != nil {
		t.Fatalf("group: %v", err)
	}

	want := &viewmodel.AboutProfiles{
		Items: []viewmodel.ViewModel{viewmodel.AboutProfile{
			Name:         "Ana Silva",
			Role:         "Editor",
			Affiliations: []string{"University of Lisbon"},
			Compact:      true,
		}},
		Heading: viewmodel.NewListHeading("Editors"),
		Compact: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("profiles mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupFull(t *testing.T) {
	got, err := profile.Group(registry(), []model.Person{editor}, "Board", false)
	if err != nil {
		t.Fatalf("group: %v", err)
	}

	want := viewmodel.AboutProfile{
		Name:         "Ana Silva",
		Role:         "Editor",
		Affiliations: []string{"University of Lisbon"},
		Biography:    "Works on tax-benefit models.",
		Orcid:        &viewmodel.Link{Name: "ORCID", URL: "https://orcid.org/0000-0002-1825-0097"},
	}
	if diff := cmp.Diff(want, got.Items[0]); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupEmpty(t *testing.T) {
	got, err := profile.Group(registry(), nil, "Editors", false)
	if err != nil || got != nil {
		t.Fatalf("expected nil group for no people, got %+v, %v", got, err)
	}
}

func TestFullRegisteredFirstShadowsCompact(t *testing.T) {
	r := convert.NewRegistry()
	r.MustRegister(profile.NewFullConverter(), profile.NewCompactConverter())

	ctx := convert.Context{Profile: convert.ProfileOptions{Compact: true}}
	vm, err := r.Convert(editor, viewmodel.KindAboutProfile, ctx)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if vm.(viewmodel.AboutProfile).Compact {
		t.Fatalf("expected the first registered converter to win")
	}
}

func TestProfileWrongTarget(t *testing.T) {
	_, err := registry().Convert(editor, viewmodel.KindTeaser, convert.Context{})
	if !errors.Is(err, convert.ErrNoMatchingConverter) {
		t.Fatalf("expected ErrNoMatchingConverter, got %v", err)
	}
}
