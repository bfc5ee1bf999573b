package model

import (
	"strconv"
	"strings"
	"time"
)

// UnknownYearThreshold is the legacy sentinel used by the upstream API for
// incomplete dates: any year at or below it means the date is unknown.
const UnknownYearThreshold = 1000

// Date is a partial calendar date. Month and Day are optional (zero when
// absent).
type Date struct {
	Year  int
	Month int
	Day   int
}

// Known reports whether the year is a real publication year rather than the
// missing-date sentinel. 1000 itself counts as unknown.
func (d Date) Known() bool {
	return d.Year > UnknownYearThreshold
}

// Format renders the date at the precision it carries.
func (d Date) Format() string {
	switch {
	case d.Month > 0 && d.Day > 0:
		return d.time().Format("January 2, 2006")
	case d.Month > 0:
		return d.time().Format("January 2006")
	default:
		return strconv.Itoa(d.Year)
	}
}

func (d Date) time() time.Time {
	month := d.Month
	if month < 1 {
		month = 1
	}
	day := d.Day
	if day < 1 {
		day = 1
	}
	return time.Date(d.Year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Contributor is anything that can be listed as an author, editor, curator or
// compiler of a reference.
type Contributor interface {
	String() string
}

// Person is an individual contributor. It doubles as the profile model for
// editorial board listings.
type Person struct {
	ID            string
	PreferredName string
	IndexName     string
	Role          string
	Affiliations  []string
	Biography     string
	Orcid         string
}

func (p Person) String() string {
	return strings.TrimSpace(p.PreferredName)
}

// Group is an organisational or consortium contributor.
type Group struct {
	Name string
}

func (g Group) String() string {
	return strings.TrimSpace(g.Name)
}

// AuthorGroup is an ordered list of contributors plus the et-al flag set when
// the upstream list was truncated.
type AuthorGroup struct {
	Contributors []Contributor
	EtAl         bool
}

// Empty reports whether the group lists no contributors.
func (g AuthorGroup) Empty() bool {
	return len(g.Contributors) == 0
}

// Authors builds an AuthorGroup from contributors.
func Authors(etAl bool, contributors ...Contributor) AuthorGroup {
	return AuthorGroup{Contributors: contributors, EtAl: etAl}
}

// Place is a named location-like entity (publisher, conference, authority).
type Place struct {
	Name     []string
	Locality []string
}

// NewPlace is a convenience constructor for single-component names.
func NewPlace(name string, locality ...string) Place {
	return Place{Name: []string{name}, Locality: locality}
}

func (p Place) String() string {
	return joinNonEmpty(p.Name, ", ")
}

// Empty reports whether the place has no name components.
func (p Place) Empty() bool {
	return p.String() == ""
}

// ReferencePages describes the page information attached to a reference.
type ReferencePages interface {
	String() string
}

// PageRange is a first/last page span.
type PageRange struct {
	First string
	Last  string
	Range string
}

func (p PageRange) String() string {
	return "pp. " + p.RangeString()
}

// RangeString returns the bare range, deriving it from First/Last when Range
// is not set.
func (p PageRange) RangeString() string {
	if p.Range != "" {
		return p.Range
	}
	if p.Last == "" || p.Last == p.First {
		return p.First
	}
	return p.First + "-" + p.Last
}

// StringPages is free-text page information rendered verbatim.
type StringPages string

func (p StringPages) String() string {
	return string(p)
}

func joinNonEmpty(parts []string, sep string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, sep)
}
