package reference_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/converters/reference"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

func person(name string) model.Contributor {
	return model.Person{PreferredName: name}
}

func newRegistry(t *testing.T) *convert.Registry {
	t.Helper()
	registry := convert.NewRegistry()
	registry.MustRegister(reference.Converters(reference.NewDeps())...)
	return registry
}

func convertReference(t *testing.T, object any) viewmodel.Reference {
	t.Helper()
	vm, err := newRegistry(t).Convert(object, viewmodel.KindReference, convert.Context{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	ref, ok := vm.(viewmodel.Reference)
	if !ok {
		t.Fatalf("expected viewmodel.Reference, got %T", vm)
	}
	return ref
}

func TestBookWithDOI(t *testing.T) {
	book := model.BookReference{
		ReferenceBase: model.ReferenceBase{
			ID:            "bib1",
			Date:          model.Date{Year: 2020},
			Discriminator: "a",
			DOI:           "10.7554/eLife.00001",
		},
		BookTitle: "Molecular Biology",
		Publisher: model.NewPlace("Academic Press", "London"),
		ISBN:      "978-0-12-345678-9",
		Authors:   model.Authors(false, person("Smith J"), person("Doe A")),
	}

	got := convertReference(t, book)

	want := viewmodel.Reference{
		Title: "Molecular Biology",
		Doi: &viewmodel.Doi{
			DOI: "10.7554/eLife.00001",
			URL: "https://doi.org/10.7554/eLife.00001",
		},
		Origin: []string{"London: Academic Press", "ISBN 978-0-12-345678-9"},
		AuthorLists: []viewmodel.ReferenceAuthorList{{
			Authors: []viewmodel.Author{{Name: "Smith J"}, {Name: "Doe A"}},
			Suffix:  "2020a",
			Text:    "Smith J, Doe A, 2020a",
		}},
		AbstractLinks: []viewmodel.Link{{
			Name: "Google Scholar",
			URL:  "https://scholar.google.com/scholar_lookup?title=Molecular+Biology&author=Smith+J&author=Doe+A&publication_year=2020&isbn=978-0-12-345678-9",
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("book mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasSuffix(got.AuthorLists[0].Text, "2020a") {
		t.Fatalf("expected author fragment to end with year, got %q", got.AuthorLists[0].Text)
	}
}

func TestBookEditorsOnly(t *testing.T) {
	book := &model.BookReference{
		ReferenceBase: model.ReferenceBase{
			Date: model.Date{Year: 2019},
			URI:  "https://example.org/book",
		},
		BookTitle: "Handbook",
		Volume:    "2",
		Edition:   "3rd edn",
		PMID:      "12345",
		Editors:   model.Authors(true, person("Lee K")),
	}

	got := convertReference(t, book)

	if got.HasDOI() {
		t.Fatalf("expected title-link shape without DOI")
	}
	wantTitle := viewmodel.Link{Name: "Handbook, 2 (3rd edn)", URL: "https://example.org/book"}
	if diff := cmp.Diff(&wantTitle, got.TitleLink); diff != "" {
		t.Fatalf("title mismatch (-want +got):\n%s", diff)
	}
	wantAuthors := []viewmodel.ReferenceAuthorList{{
		Authors: []viewmodel.Author{{Name: "Lee K"}, {Name: "et al."}},
		Suffix:  "editors, 2019",
		Text:    "Lee K, et al., editors, 2019",
	}}
	if diff := cmp.Diff(wantAuthors, got.AuthorLists); diff != "" {
		t.Fatalf("authors mismatch (-want +got):\n%s", diff)
	}
	if len(got.AbstractLinks) != 2 || got.AbstractLinks[0].URL != "https://www.ncbi.nlm.nih.gov/pubmed/12345" {
		t.Fatalf("expected PubMed link first, got %+v", got.AbstractLinks)
	}
	if !strings.Contains(got.AbstractLinks[1].URL, "pmid=12345") {
		t.Fatalf("expected scholar query to carry pmid, got %q", got.AbstractLinks[1].URL)
	}
}

func TestBookAuthorsAndEditors(t *testing.T) {
	book := model.BookReference{
		ReferenceBase: model.ReferenceBase{Date: model.Date{Year: 2001}},
		BookTitle:     "Genetics",
		Publisher:     model.NewPlace("Cold Spring Harbor Press"),
		Authors:       model.Authors(false, person("Smith J")),
		Editors:       model.Authors(false, person("Smith J"), person("Brown R")),
	}

	got := convertReference(t, book)

	wantOrigin := []string{"Brown R, editors", "Cold Spring Harbor Press"}
	if diff := cmp.Diff(wantOrigin, got.Origin); diff != "" {
		t.Fatalf("origin mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownYearHasNoSuffix(t *testing.T) {
	for _, year := range []int{0, 1000} {
		got := convertReference(t, model.SoftwareReference{
			ReferenceBase: model.ReferenceBase{Date: model.Date{Year: year}, Discriminator: "b"},
			Title:         "Tool",
			Version:       "1.2",
			Publisher:     model.NewPlace("GitHub"),
			Authors:       model.Authors(false, person("Roe P")),
		})

		want := viewmodel.ReferenceAuthorList{
			Authors: []viewmodel.Author{{Name: "Roe P"}},
			Text:    "Roe P",
		}
		if diff := cmp.Diff(want, got.AuthorLists[0]); diff != "" {
			t.Fatalf("year %d: authors mismatch (-want +got):\n%s", year, diff)
		}
		if got.DisplayTitle() != "Tool, version 1.2" {
			t.Fatalf("unexpected software title %q", got.DisplayTitle())
		}
		if diff := cmp.Diff([]string{"GitHub"}, got.Origin); diff != "" {
			t.Fatalf("origin mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestPeriodicalCitation(t *testing.T) {
	tests := []struct {
		name string
		ref  model.PeriodicalReference
		want string
	}{
		{
			name: "no volume",
			ref:  model.PeriodicalReference{Periodical: "Name", Pages: model.StringPages("12-20")},
			want: "<i>Name</i> 12-20",
		},
		{
			name: "volume and range",
			ref:  model.PeriodicalReference{Periodical: "Name", Volume: "4", Pages: model.PageRange{First: "12", Last: "20"}},
			want: "<i>Name</i> <b>4</b>:12-20",
		},
		{
			name: "volume without pages",
			ref:  model.PeriodicalReference{Periodical: "Name", Volume: "4"},
			want: "<i>Name</i> <b>4</b>",
		},
		{
			name: "range without volume",
			ref:  model.PeriodicalReference{Periodical: "Name", Pages: &model.PageRange{First: "5"}},
			want: "<i>Name</i> pp. 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reference.PeriodicalCitation(&tt.ref); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDataYearCarriedByAuthors(t *testing.T) {
	data := model.DataReference{
		ReferenceBase: model.ReferenceBase{Date: model.Date{Year: 2018}},
		Title:         "Dataset",
		Source:        "Dryad",
		DataID:        "abc",
		Authors:       model.Authors(false, person("Kim S")),
		Curators:      model.Authors(false, person("Kim S"), person("Ng T")),
	}

	got := convertReference(t, data)

	want := []viewmodel.ReferenceAuthorList{
		{
			Authors: []viewmodel.Author{{Name: "Kim S"}},
			Suffix:  "authors, 2018",
			Text:    "Kim S, authors, 2018",
		},
		{
			Authors: []viewmodel.Author{{Name: "Ng T"}},
			Suffix:  "curators",
			Text:    "Ng T, curators",
		},
	}
	if diff := cmp.Diff(want, got.AuthorLists); diff != "" {
		t.Fatalf("authors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Dryad", "ID abc"}, got.Origin); diff != "" {
		t.Fatalf("origin mismatch (-want +got):\n%s", diff)
	}
}

func TestDataUnknownYearKeepsRoleLabels(t *testing.T) {
	got := convertReference(t, model.DataReference{
		ReferenceBase: model.ReferenceBase{Date: model.Date{Year: 1000}, Discriminator: "a"},
		Title:         "Dataset",
		Source:        "Dryad",
		Authors:       model.Authors(false, person("Kim S")),
		Curators:      model.Authors(false, person("Ng T")),
	})

	want := []viewmodel.ReferenceAuthorList{
		{
			Authors: []viewmodel.Author{{Name: "Kim S"}},
			Suffix:  "authors",
			Text:    "Kim S, authors",
		},
		{
			Authors: []viewmodel.Author{{Name: "Ng T"}},
			Suffix:  "curators",
			Text:    "Ng T, curators",
		},
	}
	if diff := cmp.Diff(want, got.AuthorLists); diff != "" {
		t.Fatalf("authors mismatch (-want +got):\n%s", diff)
	}
}

func TestConferenceProceedingWithDOI(t *testing.T) {
	got := convertReference(t, &model.ConferenceProceedingReference{
		ReferenceBase: model.ReferenceBase{
			Date: model.Date{Year: 2015},
			DOI:  "10.1109/ismb.2015.1",
			URI:  "https://example.org/ismb",
		},
		ArticleTitle: "A method",
		Conference:   model.NewPlace("ISMB"),
		Authors:      model.Authors(false, person("Ode L")),
	})

	if !got.HasDOI() {
		t.Fatalf("expected DOI shape, got %+v", got)
	}
	want := &viewmodel.Doi{DOI: "10.1109/ismb.2015.1", URL: "https://doi.org/10.1109/ismb.2015.1"}
	if diff := cmp.Diff(want, got.Doi); diff != "" {
		t.Fatalf("doi mismatch (-want +got):\n%s", diff)
	}
	if got.TitleLink != nil {
		t.Fatalf("expected no title link alongside a DOI, got %+v", got.TitleLink)
	}
	if got.DisplayTitle() != "A method" {
		t.Fatalf("unexpected title %q", got.DisplayTitle())
	}
}

func TestScholarAuthorsUseFullContributorList(t *testing.T) {
	authors := model.Authors(false, person("Ode L"), person("Ode L"))

	conference := convertReference(t, model.ConferenceProceedingReference{
		ReferenceBase: model.ReferenceBase{Date: model.Date{Year: 2015}},
		ArticleTitle:  "A method",
		Conference:    model.NewPlace("ISMB"),
		Authors:       authors,
	})
	unknown := convertReference(t, model.UnknownReference{
		ReferenceBase: model.ReferenceBase{Date: model.Date{Year: 2015}},
		Title:         "A method",
		Authors:       authors,
	})

	for name, ref := range map[string]viewmodel.Reference{"conference": conference, "unknown": unknown} {
		if got := strings.Count(ref.AbstractLinks[0].URL, "Ode+L"); got != 2 {
			t.Fatalf("%s: expected both authors in scholar query, got %d in %q", name, got, ref.AbstractLinks[0].URL)
		}
	}
	if got := conference.AuthorLists[0].Text; got != "Ode L, 2015" {
		t.Fatalf("expected pruned displayed authors, got %q", got)
	}
}

func TestConferenceProceeding(t *testing.T) {
	got := convertReference(t, model.ConferenceProceedingReference{
		ReferenceBase: model.ReferenceBase{Date: model.Date{Year: 2015, Month: 6}},
		ArticleTitle:  "A <i>new</i> method",
		Conference:    model.NewPlace("ISMB"),
		Pages:         model.PageRange{First: "1", Last: "9"},
		Authors:       model.Authors(false, person("Ode L")),
	})

	if diff := cmp.Diff([]string{"ISMB", "pp. 1-9"}, got.Origin); diff != "" {
		t.Fatalf("origin mismatch (-want +got):\n%s", diff)
	}
	if got.AuthorLists[0].Suffix != "June 2015" {
		t.Fatalf("expected month precision suffix, got %q", got.AuthorLists[0].Suffix)
	}
	wantURL := "https://scholar.google.com/scholar_lookup?title=A+new+method&conference=ISMB&author=Ode+L&publication_year=2015&pages=pp.+1-9"
	if got.AbstractLinks[0].URL != wantURL {
		t.Fatalf("expected %q, got %q", wantURL, got.AbstractLinks[0].URL)
	}
}

func TestClinicalTrialAndUnknown(t *testing.T) {
	trial := convertReference(t, model.ClinicalTrialReference{
		ReferenceBase: model.ReferenceBase{Date: model.Date{Year: 2012}, URI: "https://clinicaltrials.gov/x"},
		Title:         "Trial",
		Authors:       model.Authors(false, model.Group{Name: "Trial Group"}),
		AuthorsType:   "sponsors",
	})
	if trial.AuthorLists[0].Text != "Trial Group, sponsors, 2012" {
		t.Fatalf("unexpected trial authors %q", trial.AuthorLists[0].Text)
	}
	if trial.Origin != nil {
		t.Fatalf("expected no origin, got %v", trial.Origin)
	}

	unknown := convertReference(t, model.UnknownReference{
		ReferenceBase: model.ReferenceBase{Date: model.Date{Year: 2010}},
		Title:         "Thing",
		Details:       "Personal communication",
	})
	if diff := cmp.Diff([]string{"Personal communication"}, unknown.Origin); diff != "" {
		t.Fatalf("origin mismatch (-want +got):\n%s", diff)
	}
	if unknown.AuthorLists[0].Text != "2010" {
		t.Fatalf("expected bare year for empty authors, got %q", unknown.AuthorLists[0].Text)
	}
}

func TestConverterRejectsOtherKinds(t *testing.T) {
	book := reference.NewBookConverter(reference.NewDeps())
	if book.Supports(model.SoftwareReference{}, viewmodel.KindReference, convert.Context{}) {
		t.Fatalf("book converter should not support software references")
	}
	if _, err := book.Convert("nope", viewmodel.KindReference, convert.Context{}); !errors.Is(err, convert.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	var nilBook *model.BookReference
	if book.Supports(nilBook, viewmodel.KindReference, convert.Context{}) {
		t.Fatalf("nil pointer should not be supported")
	}
}
