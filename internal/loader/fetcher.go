package loader

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-journalvm/pkg/content"
	"github.com/goliatone/go-journalvm/pkg/model"
)

// Fetcher serves a decoded Document through content.Fetcher so fixture files
// can stand in for the upstream API.
type Fetcher struct {
	doc Document
}

var _ content.Fetcher = (*Fetcher)(nil)

// NewFetcher wraps doc.
func NewFetcher(doc Document) *Fetcher {
	return &Fetcher{doc: doc}
}

// References returns every reference in the document. Fixture files hold a
// single article's bibliography, so articleID is not used for filtering.
func (f *Fetcher) References(ctx context.Context, _ string) ([]model.Reference, error) {
	if err := ctx.Err(); err != nil {
		return nil, content.Upstream("references", err)
	}
	return f.doc.References, nil
}

func (f *Fetcher) Digest(ctx context.Context, id string) (*model.Digest, error) {
	if err := ctx.Err(); err != nil {
		return nil, content.Upstream("digest", err)
	}
	for idx := range f.doc.Digests {
		if f.doc.Digests[idx].ID == id {
			digest := f.doc.Digests[idx]
			return &digest, nil
		}
	}
	return nil, content.Upstream("digest", fmt.Errorf("digest %q not found", id))
}

// Search filters articles by type (case-insensitive) and sorts them newest
// first. Paging is left to the caller.
func (f *Fetcher) Search(ctx context.Context, query content.Query) ([]model.ArticleSnippet, error) {
	if err := ctx.Err(); err != nil {
		return nil, content.Upstream("search", err)
	}
	var out []model.ArticleSnippet
	for _, article := range f.doc.Articles {
		if matchesType(article.Type, query.Types) {
			out = append(out, article)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Published.After(out[j].Published)
	})
	return out, nil
}

func matchesType(articleType string, types []string) bool {
	if len(types) == 0 {
		return true
	}
	for _, candidate := range types {
		if strings.EqualFold(strings.TrimSpace(candidate), articleType) {
			return true
		}
	}
	return false
}
