package digest_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/converters/digest"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/urlgen"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

func routes() *urlgen.Routes {
	return urlgen.NewRoutes(map[string]string{
		digest.RouteDigest:  "/digests/{id}",
		digest.RouteDigests: "/digests",
	}, urlgen.WithBaseURL("https://journal.example"))
}

func TestDigestContentHeader(t *testing.T) {
	c := digest.NewHeaderConverter(routes())
	d := &model.Digest{
		ID:              "42",
		Title:           "Cells <i>in vivo</i>",
		ImpactStatement: "Why it matters.",
		Published:       time.Date(2019, time.March, 7, 10, 0, 0, 0, time.UTC),
	}

	if !c.Supports(d, viewmodel.KindContentHeader, convert.Context{}) {
		t.Fatalf("expected digest support for content header")
	}
	if c.Supports(d, viewmodel.KindTeaser, convert.Context{}) {
		t.Fatalf("unexpected support for teaser target")
	}

	got, err := c.Convert(d, viewmodel.KindContentHeader, convert.Context{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	want := viewmodel.ContentHeader{
		Title:           "Cells <i>in vivo</i>",
		ImpactStatement: "Why it matters.",
		Sharers: &viewmodel.SocialMediaSharers{
			Title: "Cells in vivo",
			URL:   "https://journal.example/digests/42",
		},
		Meta: &viewmodel.Meta{
			Type: &viewmodel.Link{Name: "Digest", URL: "/digests"},
			Date: &viewmodel.Date{ISO: "2019-03-07", Formatted: "Mar 7, 2019"},
		},
		LicenceURI: viewmodel.DefaultLicenceURI,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestDigestMissingRoute(t *testing.T) {
	c := digest.NewHeaderConverter(urlgen.NewRoutes(nil))

	_, err := c.Convert(model.Digest{ID: "1"}, viewmodel.KindContentHeader, convert.Context{})
	if !errors.Is(err, urlgen.ErrUnknownRoute) {
		t.Fatalf("expected ErrUnknownRoute, got %v", err)
	}
}
