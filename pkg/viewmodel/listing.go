package viewmodel

// PagerVariant distinguishes the load-more control shown on a first page from
// the newer/older pair shown on later pages.
type PagerVariant string

const (
	PagerFirstPage      PagerVariant = "first-page"
	PagerSubsequentPage PagerVariant = "subsequent-page"
)

// Pager is the pagination control attached to a listing.
type Pager struct {
	Variant      PagerVariant `json:"variant"`
	PreviousPage *Link        `json:"previousPage,omitempty"`
	NextPage     *Link        `json:"nextPage,omitempty"`
	TargetID     string       `json:"targetId,omitempty"`
}

// FirstPagePager is the single forward "load more" control.
func FirstPagePager(next Link, targetID string) *Pager {
	return &Pager{Variant: PagerFirstPage, NextPage: &next, TargetID: targetID}
}

// SubsequentPagePager links back to newer items and, optionally, forward to
// older ones.
func SubsequentPagePager(previous Link, next *Link) *Pager {
	return &Pager{Variant: PagerSubsequentPage, PreviousPage: &previous, NextPage: next}
}

// SeeMoreLink points from a truncated listing to the full one.
type SeeMoreLink struct {
	Link Link `json:"link"`
}

// Listing is the body shared by the teaser listing shapes.
type Listing struct {
	Items      []ViewModel  `json:"items"`
	Heading    *ListHeading `json:"heading,omitempty"`
	Pagination *Pager       `json:"pagination,omitempty"`
	SeeMore    *SeeMoreLink `json:"seeMore,omitempty"`
	ID         string       `json:"id,omitempty"`
}

// ListingTeasers lists teaser view-models.
type ListingTeasers struct {
	Listing
}

func (ListingTeasers) ViewModelKind() Kind { return KindListingTeasers }

// ListingAnnotationTeasers lists annotation teasers.
type ListingAnnotationTeasers struct {
	Listing
}

func (ListingAnnotationTeasers) ViewModelKind() Kind { return KindListingAnnotationTeasers }

// BasicListing builds a listing without pagination.
func BasicListing(items []ViewModel, heading *ListHeading, id string) Listing {
	return Listing{Items: items, Heading: heading, ID: id}
}

// PaginatedListing builds a listing with a pager.
func PaginatedListing(items []ViewModel, pager *Pager, heading *ListHeading, id string) Listing {
	return Listing{Items: items, Pagination: pager, Heading: heading, ID: id}
}

// SeeMoreListing builds a truncated listing that links to the full one.
func SeeMoreListing(items []ViewModel, seeMore SeeMoreLink, heading *ListHeading) Listing {
	return Listing{Items: items, SeeMore: &seeMore, Heading: heading}
}

// EmptyListing replaces a listing that has no items.
type EmptyListing struct {
	Heading *ListHeading `json:"heading,omitempty"`
	Text    string       `json:"text"`
}

func (EmptyListing) ViewModelKind() Kind { return KindEmptyListing }
