// Package digest converts digests into content headers.
package digest

import (
	"fmt"

	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/markup"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/urlgen"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// Route names used to link a digest and the digest index.
const (
	RouteDigest  = "digest"
	RouteDigests = "digests"
)

// Option customises the HeaderConverter.
type Option func(*HeaderConverter)

// WithStripper overrides the title stripper used for share text.
func WithStripper(stripper markup.Stripper) Option {
	return func(c *HeaderConverter) {
		if stripper != nil {
			c.stripper = stripper
		}
	}
}

// WithLicence overrides the licence URI.
func WithLicence(uri string) Option {
	return func(c *HeaderConverter) {
		if uri != "" {
			c.licence = uri
		}
	}
}

// HeaderConverter builds the ContentHeader shown on a digest page.
type HeaderConverter struct {
	urls     urlgen.Generator
	stripper markup.Stripper
	licence  string
}

// NewHeaderConverter builds a HeaderConverter over urls.
func NewHeaderConverter(urls urlgen.Generator, options ...Option) *HeaderConverter {
	c := &HeaderConverter{
		urls:     urls,
		stripper: markup.Bluemonday{},
		licence:  viewmodel.DefaultLicenceURI,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

func (c *HeaderConverter) Name() string { return "digest.content-header" }

func (c *HeaderConverter) Supports(object any, target viewmodel.Kind, _ convert.Context) bool {
	_, ok := asDigest(object)
	return ok && target == viewmodel.KindContentHeader
}

func (c *HeaderConverter) Convert(object any, _ viewmodel.Kind, _ convert.Context) (viewmodel.ViewModel, error) {
	digest, ok := asDigest(object)
	if !ok {
		return nil, convert.Unsupported(c.Name(), object)
	}
	if c.urls == nil {
		return nil, fmt.Errorf("digest: url generator is required")
	}

	shareURL, err := c.urls.Generate(RouteDigest, map[string]string{"id": digest.ID}, true)
	if err != nil {
		return nil, fmt.Errorf("digest: share url: %w", err)
	}
	indexURL, err := c.urls.Generate(RouteDigests, nil, false)
	if err != nil {
		return nil, fmt.Errorf("digest: index url: %w", err)
	}

	typeLink := viewmodel.NewLink("Digest", indexURL)
	return viewmodel.ContentHeader{
		Title:           digest.Title,
		ImpactStatement: digest.ImpactStatement,
		Sharers: &viewmodel.SocialMediaSharers{
			Title: c.stripper.StripMarkup(digest.Title),
			URL:   shareURL,
		},
		Meta: &viewmodel.Meta{
			Type: &typeLink,
			Date: viewmodel.SimpleDate(digest.Published),
		},
		LicenceURI: c.licence,
	}, nil
}

func asDigest(object any) (*model.Digest, bool) {
	switch v := object.(type) {
	case *model.Digest:
		return v, v != nil
	case model.Digest:
		return &v, true
	}
	return nil, false
}
