package preview

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// ManifestSelector selects among manifests registered in memory. An empty
// theme name selects the first manifest registered.
type ManifestSelector struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
	order     []string
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector registers manifests in order.
func NewManifestSelector(manifests ...*theme.Manifest) (*ManifestSelector, error) {
	s := &ManifestSelector{manifests: make(map[string]*theme.Manifest)}
	for _, manifest := range manifests {
		if err := s.Register(manifest); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register adds manifest under its name. Duplicate names return an error.
func (s *ManifestSelector) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return fmt.Errorf("preview: theme manifest is required")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return fmt.Errorf("preview: theme manifest name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.manifests[name]; exists {
		return fmt.Errorf("preview: theme %q already registered", name)
	}
	s.manifests[name] = manifest
	s.order = append(s.order, name)
	return nil
}

// Select implements theme.ThemeSelector. An unknown variant falls back to the
// manifest's base values.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		if len(s.order) == 0 {
			return nil, fmt.Errorf("preview: no themes registered")
		}
		name = s.order[0]
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("preview: unknown theme %q", name)
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  strings.TrimSpace(variant),
		Manifest: manifest,
	}, nil
}

// LoadManifest decodes a YAML theme manifest from fsys.
func LoadManifest(fsys fs.FS, path string) (*theme.Manifest, error) {
	if fsys == nil {
		return nil, fmt.Errorf("preview: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preview: read manifest %s: %w", path, err)
	}
	var manifest theme.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("preview: parse manifest %s: %w", path, err)
	}
	if strings.TrimSpace(manifest.Name) == "" {
		return nil, fmt.Errorf("preview: manifest %s has no name", path)
	}
	return &manifest, nil
}
