package model

// Reference is the polymorphic bibliographic reference attached to an
// article. Converters dispatch on the concrete kind.
type Reference interface {
	ReferenceID() string
	ReferenceDate() Date
	ReferenceDiscriminator() string
	ReferenceDOI() string
	ReferenceURI() string
}

// ReferenceBase carries the fields every reference kind shares.
type ReferenceBase struct {
	ID string
	// Date is the primary date used for disambiguation.
	Date Date
	// Discriminator separates same-year references by the same authors ("a", "b").
	Discriminator string
	DOI           string
	URI           string
}

func (r ReferenceBase) ReferenceID() string            { return r.ID }
func (r ReferenceBase) ReferenceDate() Date            { return r.Date }
func (r ReferenceBase) ReferenceDiscriminator() string { return r.Discriminator }
func (r ReferenceBase) ReferenceDOI() string           { return r.DOI }
func (r ReferenceBase) ReferenceURI() string           { return r.URI }

// BookReference cites a book, optionally a specific volume or edition.
type BookReference struct {
	ReferenceBase
	BookTitle string
	Volume    string
	Edition   string
	Publisher Place
	ISBN      string
	PMID      string
	Authors   AuthorGroup
	Editors   AuthorGroup
}

// ClinicalTrialReference cites a registered clinical trial. AuthorsType
// labels the role of the listed contributors ("authors", "collaborators",
// "sponsors").
type ClinicalTrialReference struct {
	ReferenceBase
	Title       string
	Authors     AuthorGroup
	AuthorsType string
}

// ConferenceProceedingReference cites a paper presented at a conference.
type ConferenceProceedingReference struct {
	ReferenceBase
	ArticleTitle string
	Conference   Place
	Pages        ReferencePages
	Authors      AuthorGroup
}

// DataReference cites a dataset. Contributors may be listed under three
// roles.
type DataReference struct {
	ReferenceBase
	Title              string
	Source             string
	AssigningAuthority *Place
	DataID             string
	Authors            AuthorGroup
	Compilers          AuthorGroup
	Curators           AuthorGroup
}

// PeriodicalReference cites an article in a journal, magazine or newspaper.
type PeriodicalReference struct {
	ReferenceBase
	ArticleTitle string
	Periodical   string
	Volume       string
	Pages        ReferencePages
	Authors      AuthorGroup
}

// SoftwareReference cites a software package.
type SoftwareReference struct {
	ReferenceBase
	Title     string
	Version   string
	Publisher Place
	Authors   AuthorGroup
}

// UnknownReference is the fallback for references the upstream API could not
// classify. Details holds whatever free text was available.
type UnknownReference struct {
	ReferenceBase
	Title   string
	Details string
	Authors AuthorGroup
}

var (
	_ Reference = (*BookReference)(nil)
	_ Reference = (*ClinicalTrialReference)(nil)
	_ Reference = (*ConferenceProceedingReference)(nil)
	_ Reference = (*DataReference)(nil)
	_ Reference = (*PeriodicalReference)(nil)
	_ Reference = (*SoftwareReference)(nil)
	_ Reference = (*UnknownReference)(nil)
)
