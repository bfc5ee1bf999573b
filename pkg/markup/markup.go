// Package markup strips inline HTML from upstream text before it is embedded
// into query strings or share titles.
package markup

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Stripper turns marked-up text into plain text.
type Stripper interface {
	StripMarkup(text string) string
}

// StripperFunc adapts a function into a Stripper.
type StripperFunc func(string) string

func (f StripperFunc) StripMarkup(text string) string { return f(text) }

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

// Bluemonday strips every tag using a strict bluemonday policy. The zero value
// is ready to use.
type Bluemonday struct{}

var _ Stripper = Bluemonday{}

// StripMarkup removes tags and decodes entities, so "<i>A</i> &amp; B"
// becomes "A & B". Escaped tags are decoded before sanitising so they are
// stripped too.
func (Bluemonday) StripMarkup(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	cleaned := policy().Sanitize(html.UnescapeString(text))
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// Strip is a package-level shortcut for Bluemonday{}.StripMarkup.
func Strip(text string) string {
	return Bluemonday{}.StripMarkup(text)
}

func policy() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
