package pongo_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-journalvm/pkg/render/template/pongo"
	"github.com/goliatone/go-journalvm/pkg/testsupport"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func newEngine(t *testing.T, options ...pongo.Option) *pongo.Engine {
	t.Helper()

	sub, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	engine, err := pongo.New(append([]pongo.Option{pongo.WithFS(sub)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func assertGolden(t *testing.T, golden, result, written string) {
	t.Helper()

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", golden))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})
	assertGolden(t, "hello.golden", result, written)

	if !engine.Has("hello.tpl") || engine.Has("missing") {
		t.Fatalf("unexpected Has results")
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, pongo.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "production"},
	}))
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})
	assertGolden(t, "use-global.golden", result, written)
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("journalvm_shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("journalvm_shout", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})
	assertGolden(t, "use-filter.golden", result, written)
}

func TestEngine_ViewModelFieldsUseJSONNames(t *testing.T) {
	engine := newEngine(t)
	teaser := viewmodel.Teaser{Title: "A <i>study</i>", URL: "  /articles/1 "}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("view-model", map[string]any{"vm": teaser}, w)
	})
	assertGolden(t, "view-model.golden", result, written)
}

func TestEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderString("{{ items|join:\", \" }}", map[string]any{"items": []any{"a", "b"}})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "a, b" {
		t.Fatalf("unexpected result %q", result)
	}

	if _, err := engine.RenderString("{% if %}", nil); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestEngine_FSOrder(t *testing.T) {
	override := fstest.MapFS{"hello.tpl": {Data: []byte("Hi {{ name }}")}}
	engine := newEngine(t)
	layered, err := pongo.New(pongo.WithFS(override), pongo.WithFS(fstest.MapFS{
		"hello.tpl": {Data: []byte("Hello {{ name }}")},
		"other.tpl": {Data: []byte("other")},
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if got, err := layered.RenderTemplate("hello", map[string]any{"name": "Ada"}); err != nil || got != "Hi Ada" {
		t.Fatalf("expected first filesystem to win, got %q (%v)", got, err)
	}
	if got, err := layered.RenderTemplate("other", nil); err != nil || got != "other" {
		t.Fatalf("expected fallback filesystem, got %q (%v)", got, err)
	}
	if !engine.Has("hello") {
		t.Fatalf("expected embedded template")
	}
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}
