package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-journalvm/internal/loader"
	"github.com/goliatone/go-journalvm/pkg/model"
)

var fixture = filepath.Join("..", "..", "internal", "loader", "testdata", "journal.yaml")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func assertContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(output, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, output)
		}
	}
}

func TestReferencesCommand(t *testing.T) {
	out, err := execute(t, "references", fixture, "--id", "bib1")
	if err != nil {
		t.Fatalf("references: %v", err)
	}
	assertContains(t, out,
		`"kind": "reference"`,
		`"url": "https://doi.org/10.34196/ijm.00214"`,
		`"text": "Bélanger A, Sabourin P, 2020a"`,
	)
	if strings.Count(out, `"kind"`) != 1 {
		t.Fatalf("expected a single reference\n%s", out)
	}

	all, err := execute(t, "references", fixture)
	if err != nil {
		t.Fatalf("references: %v", err)
	}
	if got := strings.Count(all, `"kind": "reference"`); got != 4 {
		t.Fatalf("expected 4 references, got %d", got)
	}

	if _, err := execute(t, "references", fixture, "--id", "nope"); err == nil {
		t.Fatalf("expected unknown reference error")
	}
}

func TestListingCommand(t *testing.T) {
	out, err := execute(t, "listing", fixture, "--per-page", "2", "--label", "research")
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	assertContains(t, out,
		`"kind": "listing-teasers"`,
		`"heading": "Latest research"`,
		`"name": "Load more"`,
		`"url": "?page=2"`,
		`"url": "/articles/103"`,
	)

	second, err := execute(t, "listing", fixture, "--per-page", "2", "--page", "2", "--label", "research", "--annotations")
	if err != nil {
		t.Fatalf("listing page 2: %v", err)
	}
	assertContains(t, second,
		`"kind": "listing-annotation-teasers"`,
		`"name": "Newer research"`,
		`"url": "?page=1"`,
	)

	empty, err := execute(t, "listing", fixture, "--type", "Editorial", "--empty-text", "Nothing here.")
	if err != nil {
		t.Fatalf("empty listing: %v", err)
	}
	assertContains(t, empty, `"kind": "empty-listing"`, `"text": "Nothing here."`)

	collections, err := execute(t, "listing", fixture, "--collections", "--format", "html", "--fragment")
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	assertContains(t, collections, `<a href="/collections/issue-3">Volume 14, Issue 3</a>`)
}

func TestDigestCommandUsesBaseURL(t *testing.T) {
	t.Setenv(envBaseURL, "https://journal.example/")

	out, err := execute(t, "digest", fixture, "--id", "42", "--format", "html")
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	assertContains(t, out,
		"<!DOCTYPE html>",
		`data-url="https://journal.example/digests/42"`,
		`<a class="meta__type" href="/digests">Digest</a>`,
	)

	if _, err := execute(t, "digest", fixture); err == nil {
		t.Fatalf("expected missing --id error")
	}
	if _, err := execute(t, "digest", fixture, "--id", "7"); err == nil {
		t.Fatalf("expected missing digest error")
	}
}

func TestPeopleCommand(t *testing.T) {
	out, err := execute(t, "people", fixture, "--compact", "--heading", "Editors")
	if err != nil {
		t.Fatalf("people: %v", err)
	}
	assertContains(t, out, `"kind": "about-profiles"`, `"heading": "Editors"`, `"compact": true`)
	if strings.Contains(out, "orcid.org") {
		t.Fatalf("compact profiles should omit ORCID links\n%s", out)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := execute(t, "references", fixture, "--format", "pdf"); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
}

type stubPrompter struct {
	choice  int
	options []string
}

func (s *stubPrompter) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.options = cfg.Options
	return s.choice, nil
}

func TestChooseReference(t *testing.T) {
	doc, err := loader.LoadFile(fixture)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	prompter := &stubPrompter{choice: 1}
	chosen, err := chooseReference(context.Background(), prompter, doc.References)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if diff := cmp.Diff([]model.Reference{doc.References[1]}, chosen); diff != "" {
		t.Fatalf("choice mismatch (-want +got):\n%s", diff)
	}
	want := []string{
		"bib1 [book] Microsimulation and Population Dynamics (2020)",
		"bib2 [periodical] The LIAM2 microsimulation framework (June 2013)",
		"bib3 [data] EU-SILC cross-sectional data (2018)",
		"bib4 [unknown] Personal communication (1000)",
	}
	if diff := cmp.Diff(want, prompter.options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	if _, err := chooseReference(context.Background(), &stubPrompter{choice: -1}, doc.References); err == nil {
		t.Fatalf("expected invalid selection error")
	}
}
