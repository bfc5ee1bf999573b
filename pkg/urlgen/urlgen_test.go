package urlgen_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-journalvm/pkg/urlgen"
)

func TestGenerate(t *testing.T) {
	routes := urlgen.NewRoutes(map[string]string{
		"article": "/articles/{id}",
		"home":    "/",
	}, urlgen.WithBaseURL("https://journal.example/"))

	tests := []struct {
		name     string
		route    string
		params   map[string]string
		absolute bool
		want     string
	}{
		{"relative", "article", map[string]string{"id": "a b"}, false, "/articles/a%20b"},
		{"absolute", "article", map[string]string{"id": "7"}, true, "https://journal.example/articles/7"},
		{"leftover query", "home", map[string]string{"page": "2", "type": "research"}, false, "/?page=2&type=research"},
		{"empty leftovers dropped", "home", map[string]string{"page": ""}, false, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := routes.Generate(tt.route, tt.params, tt.absolute)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	routes := urlgen.NewRoutes(map[string]string{
		"article": "/articles/{id}",
		"broken":  "/x/{id",
	})

	if _, err := routes.Generate("missing", nil, false); !errors.Is(err, urlgen.ErrUnknownRoute) {
		t.Fatalf("expected ErrUnknownRoute, got %v", err)
	}
	if _, err := routes.Generate("article", nil, false); err == nil {
		t.Fatalf("expected missing parameter error")
	}
	if _, err := routes.Generate("broken", map[string]string{"id": "1"}, false); err == nil {
		t.Fatalf("expected unterminated placeholder error")
	}
}
