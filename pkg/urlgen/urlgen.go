// Package urlgen builds internal journal URLs from named routes.
package urlgen

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnknownRoute is returned for route names missing from the table.
var ErrUnknownRoute = errors.New("urlgen: unknown route")

// Generator produces URLs for named routes. Params fill "{name}" placeholders;
// leftovers become the query string.
type Generator interface {
	Generate(route string, params map[string]string, absolute bool) (string, error)
}

// Option customises Routes.
type Option func(*Routes)

// WithBaseURL sets the scheme and host prefixed to absolute URLs.
func WithBaseURL(base string) Option {
	return func(r *Routes) {
		r.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

// Routes is a static route table, e.g. {"digest": "/digests/{id}"}.
type Routes struct {
	patterns map[string]string
	baseURL  string
}

var _ Generator = (*Routes)(nil)

// NewRoutes copies patterns into a new route table.
func NewRoutes(patterns map[string]string, options ...Option) *Routes {
	r := &Routes{patterns: make(map[string]string, len(patterns))}
	for name, pattern := range patterns {
		r.patterns[strings.TrimSpace(name)] = pattern
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Generate implements Generator.
func (r *Routes) Generate(route string, params map[string]string, absolute bool) (string, error) {
	pattern, ok := r.patterns[route]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownRoute, route)
	}

	used := make(map[string]struct{}, len(params))
	var b strings.Builder
	rest := pattern
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("urlgen: route %q has an unterminated placeholder", route)
		}
		name := rest[open+1 : open+end]
		value, ok := params[name]
		if !ok || value == "" {
			return "", fmt.Errorf("urlgen: route %q requires parameter %q", route, name)
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		used[name] = struct{}{}
		rest = rest[open+end+1:]
	}

	path := b.String()
	if query := leftoverQuery(params, used); query != "" {
		path += "?" + query
	}
	if absolute {
		path = r.baseURL + path
	}
	return path, nil
}

// leftoverQuery encodes the params not consumed by placeholders, sorted by key.
func leftoverQuery(params map[string]string, used map[string]struct{}) string {
	values := url.Values{}
	for key, value := range params {
		if _, ok := used[key]; ok || value == "" {
			continue
		}
		values.Set(key, value)
	}
	return values.Encode()
}
