// Package teaser converts article snippets and collections into teasers.
package teaser

import (
	"fmt"

	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/urlgen"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// Route names used to link teasers.
const (
	RouteArticle    = "article"
	RouteCollection = "collection"
)

// VariantSecondary drops the impact statement.
const VariantSecondary = "secondary"

// Converter builds teasers for ArticleSnippet and Collection values.
type Converter struct {
	urls urlgen.Generator
}

// New builds a teaser Converter over urls.
func New(urls urlgen.Generator) *Converter {
	return &Converter{urls: urls}
}

func (c *Converter) Name() string { return "teaser" }

func (c *Converter) Supports(object any, target viewmodel.Kind, _ convert.Context) bool {
	if target != viewmodel.KindTeaser {
		return false
	}
	switch v := object.(type) {
	case *model.ArticleSnippet:
		return v != nil
	case model.ArticleSnippet:
		return true
	case *model.Collection:
		return v != nil
	case model.Collection:
		return true
	}
	return false
}

func (c *Converter) Convert(object any, _ viewmodel.Kind, ctx convert.Context) (viewmodel.ViewModel, error) {
	var (
		out   viewmodel.Teaser
		route string
		id    string
		typ   string
	)
	switch v := object.(type) {
	case *model.ArticleSnippet:
		if v == nil {
			return nil, convert.Unsupported(c.Name(), object)
		}
		out, route, id, typ = articleTeaser(*v), RouteArticle, v.ID, v.Type
	case model.ArticleSnippet:
		out, route, id, typ = articleTeaser(v), RouteArticle, v.ID, v.Type
	case *model.Collection:
		if v == nil {
			return nil, convert.Unsupported(c.Name(), object)
		}
		out, route, id, typ = collectionTeaser(*v), RouteCollection, v.ID, "Collection"
	case model.Collection:
		out, route, id, typ = collectionTeaser(v), RouteCollection, v.ID, "Collection"
	default:
		return nil, convert.Unsupported(c.Name(), object)
	}

	if c.urls == nil {
		return nil, fmt.Errorf("teaser: url generator is required")
	}
	url, err := c.urls.Generate(route, map[string]string{"id": id}, false)
	if err != nil {
		return nil, fmt.Errorf("teaser: %s url: %w", route, err)
	}
	out.URL = url

	if typ != "" {
		link := viewmodel.NewLink(typ, "")
		out.Meta.Type = &link
	}

	if variant := ctx.Teaser.Variant; variant != "" {
		out.Variant = variant
		if variant == VariantSecondary {
			out.ImpactStatement = ""
		}
	}
	return out, nil
}

func articleTeaser(a model.ArticleSnippet) viewmodel.Teaser {
	return viewmodel.Teaser{
		Title:           a.Title,
		ImpactStatement: a.ImpactStatement,
		AuthorLine:      a.AuthorLine,
		Meta:            &viewmodel.Meta{Date: viewmodel.SimpleDate(a.Published)},
	}
}

func collectionTeaser(col model.Collection) viewmodel.Teaser {
	return viewmodel.Teaser{
		Title:           col.Title,
		ImpactStatement: col.ImpactStatement,
		Meta:            &viewmodel.Meta{Date: viewmodel.SimpleDate(col.Published)},
	}
}
