package teaser_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/converters/teaser"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/urlgen"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

func converter() *teaser.Converter {
	return teaser.New(urlgen.NewRoutes(map[string]string{
		teaser.RouteArticle:    "/articles/{id}",
		teaser.RouteCollection: "/collections/{id}",
	}))
}

var published = time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestArticleTeaser(t *testing.T) {
	snippet := &model.ArticleSnippet{
		ID:              "7",
		Type:            "Research article",
		Title:           "Ageing populations",
		ImpactStatement: "Pensions under pressure.",
		AuthorLine:      "Smith J et al.",
		Published:       published,
	}

	got, err := converter().Convert(snippet, viewmodel.KindTeaser, convert.Context{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	want := viewmodel.Teaser{
		Title:           "Ageing populations",
		URL:             "/articles/7",
		ImpactStatement: "Pensions under pressure.",
		AuthorLine:      "Smith J et al.",
		Meta: &viewmodel.Meta{
			Type: &viewmodel.Link{Name: "Research article"},
			Date: &viewmodel.Date{ISO: "2021-01-15", Formatted: "Jan 15, 2021"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("teaser mismatch (-want +got):\n%s", diff)
	}
}

func TestSecondaryCollectionTeaser(t *testing.T) {
	col := model.Collection{ID: "issue-3", Title: "Issue 3", ImpactStatement: "Spring issue", Published: published}
	ctx := convert.Context{Teaser: convert.TeaserOptions{Variant: teaser.VariantSecondary}}

	vm, err := converter().Convert(col, viewmodel.KindTeaser, ctx)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	got := vm.(viewmodel.Teaser)

	if got.ImpactStatement != "" {
		t.Fatalf("secondary teasers drop the impact statement, got %q", got.ImpactStatement)
	}
	if got.URL != "/collections/issue-3" || got.Variant != teaser.VariantSecondary {
		t.Fatalf("unexpected teaser %+v", got)
	}
	if got.Meta.Type.Name != "Collection" {
		t.Fatalf("expected collection type link, got %+v", got.Meta.Type)
	}
}

func TestTeaserSupports(t *testing.T) {
	c := converter()
	if c.Supports(model.Digest{}, viewmodel.KindTeaser, convert.Context{}) {
		t.Fatalf("digests are not teasers")
	}
	if c.Supports(model.Collection{}, viewmodel.KindListingTeasers, convert.Context{}) {
		t.Fatalf("teaser converter only answers the teaser target")
	}
	var nilSnippet *model.ArticleSnippet
	if c.Supports(nilSnippet, viewmodel.KindTeaser, convert.Context{}) {
		t.Fatalf("nil snippets are not supported")
	}
}
