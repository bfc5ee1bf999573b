// Package config loads the engine configuration from YAML. Every field is
// optional; missing values fall back to the journal defaults.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-journalvm/pkg/citation"
	"github.com/goliatone/go-journalvm/pkg/converters/listing"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// Config is the engine configuration document.
type Config struct {
	BaseURL     string            `yaml:"baseURL"`
	DOIResolver string            `yaml:"doiResolver"`
	Licence     string            `yaml:"licence"`
	Citation    citation.Style    `yaml:"citation"`
	Links       citation.Links    `yaml:"links"`
	Routes      map[string]string `yaml:"routes"`
	Listing     Listing           `yaml:"listing"`
	Theme       Theme             `yaml:"theme"`
}

// Listing holds listing labels.
type Listing struct {
	LoadMore string `yaml:"loadMore"`
	PerPage  int    `yaml:"perPage"`
}

// Theme selects an HTML preview theme. Manifest points at a theme manifest
// file; Templates is the directory its template paths resolve against.
type Theme struct {
	Name      string `yaml:"name"`
	Variant   string `yaml:"variant"`
	Manifest  string `yaml:"manifest"`
	Templates string `yaml:"templates"`
}

// DefaultPerPage is the listing page size when none is configured.
const DefaultPerPage = 10

// DefaultRoutes are the journal's public URL patterns.
func DefaultRoutes() map[string]string {
	return map[string]string{
		"article":    "/articles/{id}",
		"collection": "/collections/{id}",
		"digest":     "/digests/{id}",
		"digests":    "/digests",
		"home":       "/",
	}
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if strings.TrimSpace(c.DOIResolver) == "" {
		c.DOIResolver = viewmodel.DefaultDOIResolver
	}
	if strings.TrimSpace(c.Licence) == "" {
		c.Licence = viewmodel.DefaultLicenceURI
	}
	c.Citation = citation.NewFormatter(c.Citation).Style()

	links := citation.DefaultLinks()
	if strings.TrimSpace(c.Links.PubMed) == "" {
		c.Links.PubMed = links.PubMed
	}
	if strings.TrimSpace(c.Links.Scholar) == "" {
		c.Links.Scholar = links.Scholar
	}

	routes := DefaultRoutes()
	for name, pattern := range c.Routes {
		if name = strings.TrimSpace(name); name != "" && strings.TrimSpace(pattern) != "" {
			routes[name] = pattern
		}
	}
	c.Routes = routes

	if strings.TrimSpace(c.Listing.LoadMore) == "" {
		c.Listing.LoadMore = listing.DefaultLoadMoreLabel
	}
	if c.Listing.PerPage < 1 {
		c.Listing.PerPage = DefaultPerPage
	}
}

// Parse decodes a YAML document and applies defaults. An empty document is
// the default configuration.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse: %w", err)
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Load reads path from fsys.
func Load(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, fmt.Errorf("config: filesystem is required")
	}
	if path == "" {
		return Config{}, fmt.Errorf("config: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFile reads a configuration file from disk.
func LoadFile(path string) (Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	return Load(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}
