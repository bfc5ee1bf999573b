package viewmodel

import "strings"

// DefaultDOIResolver prefixes DOIs when no resolver is configured.
const DefaultDOIResolver = "https://doi.org"

// Doi is a resolvable DOI link.
type Doi struct {
	DOI string `json:"doi"`
	URL string `json:"url"`
}

// NewDoi builds a Doi against resolver, falling back to DefaultDOIResolver.
func NewDoi(doi, resolver string) Doi {
	base := strings.TrimRight(strings.TrimSpace(resolver), "/")
	if base == "" {
		base = DefaultDOIResolver
	}
	return Doi{DOI: doi, URL: base + "/" + doi}
}

// Author is one rendered contributor name (or the et-al marker).
type Author struct {
	Name string `json:"name"`
}

// ReferenceAuthorList is one role-group of a citation. Text is the complete
// fragment ("Smith J, Doe A, editors, 2019a").
type ReferenceAuthorList struct {
	Authors []Author `json:"authors"`
	Suffix  string   `json:"suffix,omitempty"`
	Text    string   `json:"text"`
}

// Reference is a formatted citation. Build it with ReferenceWithDOI or
// ReferenceWithoutDOI; exactly one of Doi and TitleLink is set.
type Reference struct {
	Title         string                `json:"title,omitempty"`
	Doi           *Doi                  `json:"doi,omitempty"`
	TitleLink     *Link                 `json:"titleLink,omitempty"`
	Origin        []string              `json:"origin,omitempty"`
	AuthorLists   []ReferenceAuthorList `json:"authorLists"`
	AbstractLinks []Link                `json:"abstracts,omitempty"`
}

// ReferenceWithDOI builds the DOI-linked shape.
func ReferenceWithDOI(title string, doi Doi, origin []string, authors []ReferenceAuthorList, abstracts []Link) Reference {
	return Reference{
		Title:         title,
		Doi:           &doi,
		Origin:        origin,
		AuthorLists:   authors,
		AbstractLinks: abstracts,
	}
}

// ReferenceWithoutDOI builds the shape whose title is itself the link.
func ReferenceWithoutDOI(title Link, origin []string, authors []ReferenceAuthorList, abstracts []Link) Reference {
	return Reference{
		TitleLink:     &title,
		Origin:        origin,
		AuthorLists:   authors,
		AbstractLinks: abstracts,
	}
}

// HasDOI reports which of the two shapes r is.
func (r Reference) HasDOI() bool {
	return r.Doi != nil
}

// DisplayTitle returns the title regardless of shape.
func (r Reference) DisplayTitle() string {
	if r.TitleLink != nil {
		return r.TitleLink.Name
	}
	return r.Title
}

func (Reference) ViewModelKind() Kind { return KindReference }
