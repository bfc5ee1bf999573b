// Package render turns converted view-models into bytes for a consumer (HTML
// previews, JSON payloads). Renderers are looked up by name in a Registry.
package render

import (
	"context"

	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// Renderer converts a view-model into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, vm viewmodel.ViewModel, options RenderOptions) ([]byte, error)
}
