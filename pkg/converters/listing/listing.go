// Package listing turns a paginate.Page into a teaser listing. Which shape is
// produced depends on the page state:
//
//	no items                 -> EmptyListing
//	page > 1                 -> newer/older pager, no heading
//	page 1, more pages       -> "Load more" pager with heading
//	page 1, single page      -> basic listing with heading
package listing

import (
	"strings"

	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/paginate"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

const (
	// DefaultLoadMoreLabel labels the first-page pager.
	DefaultLoadMoreLabel = "Load more"
	// TargetID anchors the first-page pager and the listing element.
	TargetID = "listing"
)

// Option customises the Converter.
type Option func(*Converter)

// WithLoadMoreLabel overrides the first-page pager label.
func WithLoadMoreLabel(label string) Option {
	return func(c *Converter) {
		if strings.TrimSpace(label) != "" {
			c.loadMore = label
		}
	}
}

// Converter builds ListingTeasers and ListingAnnotationTeasers from pages.
type Converter struct {
	loadMore string
}

// New builds a listing Converter.
func New(options ...Option) *Converter {
	c := &Converter{loadMore: DefaultLoadMoreLabel}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

func (c *Converter) Name() string { return "listing.paginator" }

func (c *Converter) Supports(object any, target viewmodel.Kind, _ convert.Context) bool {
	page, ok := object.(*paginate.Page)
	if !ok || page == nil {
		return false
	}
	return target == viewmodel.KindListingTeasers || target == viewmodel.KindListingAnnotationTeasers
}

func (c *Converter) Convert(object any, target viewmodel.Kind, ctx convert.Context) (viewmodel.ViewModel, error) {
	page, ok := object.(*paginate.Page)
	if !ok || page == nil {
		return nil, convert.Unsupported(c.Name(), object)
	}

	opts := ctx.Listing
	heading := Heading(opts)

	if len(page.Items) == 0 {
		return viewmodel.EmptyListing{Heading: heading, Text: EmptyText(opts)}, nil
	}

	var listing viewmodel.Listing
	switch {
	case page.CurrentPage > 1:
		var older *viewmodel.Link
		if page.HasNextPage() {
			link := viewmodel.NewLink(label("Older", opts.Type), page.NextPagePath())
			older = &link
		}
		newer := viewmodel.NewLink(label("Newer", opts.Type), page.PreviousPagePath())
		listing = viewmodel.PaginatedListing(page.Items, viewmodel.SubsequentPagePager(newer, older), nil, "")
	case page.HasNextPage():
		pager := viewmodel.FirstPagePager(viewmodel.NewLink(c.loadMore, page.NextPagePath()), TargetID)
		listing = viewmodel.PaginatedListing(page.Items, pager, heading, TargetID)
	default:
		listing = viewmodel.BasicListing(page.Items, heading, TargetID)
	}

	if target == viewmodel.KindListingAnnotationTeasers {
		return viewmodel.ListingAnnotationTeasers{Listing: listing}, nil
	}
	return viewmodel.ListingTeasers{Listing: listing}, nil
}

// Heading resolves the listing heading. An explicit empty heading suppresses
// it; otherwise it defaults to "Latest {type}".
func Heading(opts convert.ListingOptions) *viewmodel.ListHeading {
	if opts.Heading != nil {
		if *opts.Heading == "" {
			return nil
		}
		return viewmodel.NewListHeading(*opts.Heading)
	}
	return viewmodel.NewListHeading(label("Latest", opts.Type))
}

// EmptyText resolves the message shown for an empty listing.
func EmptyText(opts convert.ListingOptions) string {
	if opts.EmptyText != nil {
		return *opts.EmptyText
	}
	kind := opts.Type
	if kind == "" {
		kind = "items"
	}
	return strings.TrimSpace("No " + kind + " available.")
}

func label(prefix, kind string) string {
	return strings.TrimSpace(prefix + " " + kind)
}
