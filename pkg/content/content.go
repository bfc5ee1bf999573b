// Package content describes the upstream content-fetch layer the converters
// consume. Only the contract lives here; transport belongs to the caller.
package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-journalvm/pkg/model"
)

// ErrUpstream matches every UpstreamError.
var ErrUpstream = errors.New("content: upstream failure")

// UpstreamError reports a failed fetch. The conversion engine never handles
// it; callers decide whether to degrade to an empty listing.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("content: %s failed", e.Op)
	}
	return fmt.Sprintf("content: %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Is lets errors.Is match against ErrUpstream.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// Upstream wraps err as an UpstreamError for op. A nil err stays nil.
func Upstream(op string, err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamError{Op: op, Err: err}
}

// Query filters a search.
type Query struct {
	Types   []string
	SortBy  string
	Page    int
	PerPage int
}

// Fetcher loads the domain objects fed to the converters.
type Fetcher interface {
	References(ctx context.Context, articleID string) ([]model.Reference, error)
	Digest(ctx context.Context, id string) (*model.Digest, error)
	Search(ctx context.Context, query Query) ([]model.ArticleSnippet, error)
}
