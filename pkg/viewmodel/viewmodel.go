// Package viewmodel holds the presentation-ready structures handed to the
// template layer. Values are plain data: converters build them once and
// nothing mutates them afterwards.
package viewmodel

import "time"

// Kind tags a view-model shape. Callers pass a Kind as the requested target
// type when converting.
type Kind string

const (
	KindReference                Kind = "reference"
	KindListingTeasers           Kind = "listing-teasers"
	KindListingAnnotationTeasers Kind = "listing-annotation-teasers"
	KindEmptyListing             Kind = "empty-listing"
	KindContentHeader            Kind = "content-header"
	KindAboutProfile             Kind = "about-profile"
	KindAboutProfiles            Kind = "about-profiles"
	KindTeaser                   Kind = "teaser"
)

// ViewModel is implemented by every converter output.
type ViewModel interface {
	ViewModelKind() Kind
}

// Link is a labelled URL. URL may be empty for plain-text titles.
type Link struct {
	Name      string `json:"name"`
	URL       string `json:"url,omitempty"`
	IsCurrent bool   `json:"isCurrent,omitempty"`
}

// NewLink builds a Link.
func NewLink(name, url string) Link {
	return Link{Name: name, URL: url}
}

// ListHeading titles a listing.
type ListHeading struct {
	Heading string `json:"heading"`
}

// NewListHeading returns a heading pointer for optional embedding.
func NewListHeading(heading string) *ListHeading {
	return &ListHeading{Heading: heading}
}

// Date is a rendered date stamp.
type Date struct {
	ISO       string `json:"iso"`
	Formatted string `json:"formatted"`
	Label     string `json:"label,omitempty"`
}

// SimpleDate renders a date stamp, or nil for the zero time.
func SimpleDate(t time.Time) *Date {
	if t.IsZero() {
		return nil
	}
	t = t.UTC()
	return &Date{
		ISO:       t.Format("2006-01-02"),
		Formatted: t.Format("Jan 2, 2006"),
	}
}
