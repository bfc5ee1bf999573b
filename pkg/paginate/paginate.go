// Package paginate slices converted sequences into pages for the listing
// converter.
package paginate

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// ErrInvalidPage is returned for page or per-page values below 1.
var ErrInvalidPage = errors.New("paginate: invalid page")

// PathFunc returns the URL of page n.
type PathFunc func(page int) string

// Page is one page of already-converted items.
type Page struct {
	Title       string
	CurrentPage int
	// NextPage is 0 when this is the last page.
	NextPage   int
	TotalPages int
	Items      []viewmodel.ViewModel
	PagePath   PathFunc
}

// HasNextPage reports whether an older page follows this one.
func (p *Page) HasNextPage() bool {
	return p != nil && p.NextPage > 0
}

// PreviousPagePath links to the page before the current one.
func (p *Page) PreviousPagePath() string {
	if p.CurrentPage <= 1 {
		return p.path(1)
	}
	return p.path(p.CurrentPage - 1)
}

// NextPagePath links to the next page, or "" on the last page.
func (p *Page) NextPagePath() string {
	if !p.HasNextPage() {
		return ""
	}
	return p.path(p.NextPage)
}

func (p *Page) path(n int) string {
	if p.PagePath == nil {
		return ""
	}
	return p.PagePath(n)
}

// Option customises a built Page.
type Option func(*Page)

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(p *Page) {
		p.Title = title
	}
}

// WithPath sets the page URL builder.
func WithPath(path PathFunc) Option {
	return func(p *Page) {
		p.PagePath = path
	}
}

// Build cuts page (1-based) out of items and converts only that slice, in
// order. A page past the end is returned empty rather than as an error.
func Build[T any](items []T, page, perPage int, convert func(T) (viewmodel.ViewModel, error), options ...Option) (*Page, error) {
	if page < 1 || perPage < 1 {
		return nil, fmt.Errorf("%w: page %d, per page %d", ErrInvalidPage, page, perPage)
	}
	if convert == nil {
		return nil, fmt.Errorf("paginate: convert function is required")
	}

	total := (len(items) + perPage - 1) / perPage
	out := &Page{CurrentPage: page, TotalPages: total}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(out)
	}
	if page < total {
		out.NextPage = page + 1
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		out.Items = []viewmodel.ViewModel{}
		return out, nil
	}
	end := min(start+perPage, len(items))

	out.Items = make([]viewmodel.ViewModel, 0, end-start)
	for idx, item := range items[start:end] {
		vm, err := convert(item)
		if err != nil {
			return nil, fmt.Errorf("paginate: item %d: %w", start+idx, err)
		}
		out.Items = append(out.Items, vm)
	}
	return out, nil
}
