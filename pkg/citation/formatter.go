// Package citation holds the formatting rules shared by every reference
// converter: how contributor groups are rendered, which group carries the
// year, and how abstract links are built. Everything here is side-effect free
// so one Formatter can be injected into all converters.
package citation

import (
	"strings"

	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// Role labels appended as suffix tokens.
const (
	RoleAuthors   = "authors"
	RoleCompilers = "compilers"
	RoleCurators  = "curators"
	RoleEditors   = "editors"
)

// Style controls the separators used when joining citation fragments.
type Style struct {
	NameSeparator  string `yaml:"nameSeparator" json:"nameSeparator"`
	TokenSeparator string `yaml:"tokenSeparator" json:"tokenSeparator"`
	EtAl           string `yaml:"etAl" json:"etAl"`
}

// DefaultStyle returns the journal's citation separators.
func DefaultStyle() Style {
	return Style{
		NameSeparator:  ", ",
		TokenSeparator: ", ",
		EtAl:           "et al.",
	}
}

func (s Style) withDefaults() Style {
	def := DefaultStyle()
	if s.NameSeparator == "" {
		s.NameSeparator = def.NameSeparator
	}
	if s.TokenSeparator == "" {
		s.TokenSeparator = def.TokenSeparator
	}
	if s.EtAl == "" {
		s.EtAl = def.EtAl
	}
	return s
}

// Formatter renders contributor groups into citation fragments.
type Formatter struct {
	style Style
}

// NewFormatter builds a Formatter, filling unset separators from DefaultStyle.
func NewFormatter(style Style) Formatter {
	return Formatter{style: style.withDefaults()}
}

// Style returns the effective style.
func (f Formatter) Style() Style {
	return f.style.withDefaults()
}

// CreateAuthors renders people followed by the non-empty suffix tokens, in
// the order given. "et al." is appended only when people is non-empty.
func (f Formatter) CreateAuthors(people []model.Contributor, etAl bool, suffix []string) viewmodel.ReferenceAuthorList {
	style := f.Style()
	names := f.names(people, etAl)

	authors := make([]viewmodel.Author, 0, len(names))
	for _, name := range names {
		authors = append(authors, viewmodel.Author{Name: name})
	}

	suffixText := joinTokens(suffix, style.TokenSeparator)
	text := strings.Join(names, style.NameSeparator)
	if suffixText != "" {
		if text != "" {
			text += style.TokenSeparator
		}
		text += suffixText
	}

	return viewmodel.ReferenceAuthorList{
		Authors: authors,
		Suffix:  suffixText,
		Text:    text,
	}
}

// CreateAuthorsString renders only the joined names (plus et al.).
func (f Formatter) CreateAuthorsString(people []model.Contributor, etAl bool) string {
	return strings.Join(f.names(people, etAl), f.Style().NameSeparator)
}

func (f Formatter) names(people []model.Contributor, etAl bool) []string {
	names := make([]string, 0, len(people)+1)
	for _, person := range people {
		if person == nil {
			continue
		}
		if name := strings.TrimSpace(person.String()); name != "" {
			names = append(names, name)
		}
	}
	if etAl && len(names) > 0 {
		names = append(names, f.Style().EtAl)
	}
	return names
}

// PruneAuthors drops empty entries, repeats within group, and anyone already
// listed in a higher-precedence group (authors > compilers > curators >
// editors), so each person appears under a single role.
func PruneAuthors(group []model.Contributor, higher ...[]model.Contributor) []model.Contributor {
	seen := make(map[string]struct{})
	for _, other := range higher {
		for _, person := range other {
			if person == nil {
				continue
			}
			seen[contributorKey(person)] = struct{}{}
		}
	}

	out := make([]model.Contributor, 0, len(group))
	for _, person := range group {
		if person == nil {
			continue
		}
		key := contributorKey(person)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, person)
	}
	return out
}

func contributorKey(person model.Contributor) string {
	return strings.ToLower(strings.TrimSpace(person.String()))
}

// AuthorsSuffix returns the year+discriminator token, or nil when the date is
// the missing-date sentinel (year <= 1000).
func AuthorsSuffix(date model.Date, discriminator string) []string {
	if token := YearSuffix(date, discriminator); token != "" {
		return []string{token}
	}
	return nil
}

// YearSuffix is the single-token form of AuthorsSuffix; "" for unknown dates.
func YearSuffix(date model.Date, discriminator string) string {
	if !date.Known() {
		return ""
	}
	return date.Format() + discriminator
}

// ReferenceSuffix computes AuthorsSuffix for a reference.
func ReferenceSuffix(ref model.Reference) []string {
	return AuthorsSuffix(ref.ReferenceDate(), ref.ReferenceDiscriminator())
}

// PublisherString renders "Locality: Name", or just the name when the
// publisher has no locality.
func PublisherString(publisher model.Place) string {
	name := publisher.String()
	locality := make([]string, 0, len(publisher.Locality))
	for _, part := range publisher.Locality {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			locality = append(locality, trimmed)
		}
	}
	if len(locality) == 0 {
		return name
	}
	return strings.Join(locality, ", ") + ": " + name
}

// Strings renders contributors with their String method, skipping blanks.
func Strings(people []model.Contributor) []string {
	out := make([]string, 0, len(people))
	for _, person := range people {
		if person == nil {
			continue
		}
		if name := strings.TrimSpace(person.String()); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func joinTokens(tokens []string, sep string) string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, sep)
}
