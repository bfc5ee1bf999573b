// Package raw renders view-models as JSON for API consumers and debugging.
package raw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-journalvm/pkg/render"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// Name is the registry name of the renderer.
const Name = "json"

// Envelope is the encoded document: the view-model tagged with its kind.
type Envelope struct {
	Kind viewmodel.Kind      `json:"kind"`
	Data viewmodel.ViewModel `json:"data"`
}

type Option func(*Renderer)

// WithIndent pretty-prints every render, regardless of RenderOptions.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer encodes view-models with encoding/json.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the JSON renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(_ context.Context, vm viewmodel.ViewModel, options render.RenderOptions) ([]byte, error) {
	if vm == nil {
		return nil, fmt.Errorf("raw renderer: view-model is nil")
	}

	indent := r.indent
	if indent == "" && options.Indent {
		indent = "  "
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if indent != "" {
		encoder.SetIndent("", indent)
	}
	if err := encoder.Encode(Envelope{Kind: vm.ViewModelKind(), Data: vm}); err != nil {
		return nil, fmt.Errorf("raw renderer: encode %s: %w", vm.ViewModelKind(), err)
	}
	return buf.Bytes(), nil
}
