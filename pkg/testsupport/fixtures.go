package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-journalvm/internal/loader"
	"github.com/goliatone/go-journalvm/pkg/content"
	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/urlgen"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// JournalFixture is the shared fixture document name.
const JournalFixture = "journal.yaml"

// FixturesDir returns the directory holding the shared YAML fixtures.
func FixturesDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return filepath.Join("internal", "loader", "testdata")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "internal", "loader", "testdata")
}

// LoadFixture decodes a fixture from FixturesDir, failing the test on error.
func LoadFixture(t *testing.T, name string) loader.Document {
	t.Helper()

	doc, err := LoadFixtureFromPath(filepath.Join(FixturesDir(), name))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return doc
}

// LoadFixtureFromPath returns a Document without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadFixtureFromPath(path string) (loader.Document, error) {
	if path == "" {
		return loader.Document{}, errors.New("testsupport: fixture path is required")
	}
	doc, err := loader.LoadFile(path)
	if err != nil {
		return loader.Document{}, fmt.Errorf("testsupport: %w", err)
	}
	return doc, nil
}

// Routes returns a route table with the journal's default routes under
// https://journal.test.
func Routes() *urlgen.Routes {
	return urlgen.NewRoutes(map[string]string{
		"article":    "/articles/{id}",
		"collection": "/collections/{id}",
		"digest":     "/digests/{id}",
		"digests":    "/digests",
		"home":       "/",
	}, urlgen.WithBaseURL("https://journal.test"))
}

// URLCall records one Generate invocation.
type URLCall struct {
	Route    string
	Params   map[string]string
	Absolute bool
}

// RecordingURLs wraps a Generator and records every call.
type RecordingURLs struct {
	Next urlgen.Generator

	mu    sync.Mutex
	calls []URLCall
}

var _ urlgen.Generator = (*RecordingURLs)(nil)

func (r *RecordingURLs) Generate(route string, params map[string]string, absolute bool) (string, error) {
	r.mu.Lock()
	r.calls = append(r.calls, URLCall{Route: route, Params: params, Absolute: absolute})
	r.mu.Unlock()

	if r.Next == nil {
		return "/" + route, nil
	}
	return r.Next.Generate(route, params, absolute)
}

// Calls returns a copy of the recorded calls.
func (r *RecordingURLs) Calls() []URLCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]URLCall(nil), r.calls...)
}

// RecordingObserver collects conversion outcomes as "name->target" strings.
type RecordingObserver struct {
	mu        sync.Mutex
	converted []string
	missed    []string
}

var _ convert.Observer = (*RecordingObserver)(nil)

func (o *RecordingObserver) Converted(converter string, target viewmodel.Kind) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.converted = append(o.converted, converter+"->"+string(target))
}

func (o *RecordingObserver) Missed(objectType string, target viewmodel.Kind) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.missed = append(o.missed, objectType+"->"+string(target))
}

// ConvertedCalls returns the recorded conversions in call order.
func (o *RecordingObserver) ConvertedCalls() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.converted...)
}

// MissedCalls returns the recorded misses in call order.
func (o *RecordingObserver) MissedCalls() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.missed...)
}

// StubFetcher serves a fixture document through content.Fetcher. Err, when
// set, is returned wrapped as an upstream failure from every call.
type StubFetcher struct {
	Doc loader.Document
	Err error
}

var _ content.Fetcher = StubFetcher{}

func (f StubFetcher) References(ctx context.Context, articleID string) ([]model.Reference, error) {
	if f.Err != nil {
		return nil, content.Upstream("references", f.Err)
	}
	return loader.NewFetcher(f.Doc).References(ctx, articleID)
}

func (f StubFetcher) Digest(ctx context.Context, id string) (*model.Digest, error) {
	if f.Err != nil {
		return nil, content.Upstream("digest", f.Err)
	}
	return loader.NewFetcher(f.Doc).Digest(ctx, id)
}

func (f StubFetcher) Search(ctx context.Context, query content.Query) ([]model.ArticleSnippet, error) {
	if f.Err != nil {
		return nil, content.Upstream("search", f.Err)
	}
	return loader.NewFetcher(f.Doc).Search(ctx, query)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
