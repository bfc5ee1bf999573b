package preview

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-journalvm/pkg/render"
)

// StylesheetAsset is the theme asset key linked from the page head.
const StylesheetAsset = "journalvm.stylesheet"

type themeContext struct {
	Name       string `json:"name,omitempty"`
	Variant    string `json:"variant,omitempty"`
	Style      string `json:"style,omitempty"`
	Stylesheet string `json:"stylesheet,omitempty"`
}

func (r *Renderer) resolveTheme(options render.RenderOptions) (*theme.RendererConfig, error) {
	if r.selector == nil {
		return nil, nil
	}
	name := firstNonEmpty(options.ThemeName, r.defaultTheme)
	variant := firstNonEmpty(options.ThemeVariant, r.defaultVariant)

	selection, err := r.selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("preview renderer: select theme %q: %w", name, err)
	}
	return rendererConfig(selection), nil
}

// rendererConfig flattens a selection: variant tokens, templates and asset
// files override the manifest's.
func rendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	variant := manifest.Variants[selection.Variant]

	tokens := mergeStrings(manifest.Tokens, variant.Tokens)
	files := mergeStrings(manifest.Assets.Files, variant.Assets.Files)
	prefix := firstNonEmpty(variant.Assets.Prefix, manifest.Assets.Prefix)

	return &theme.RendererConfig{
		Theme:    firstNonEmpty(selection.Theme, manifest.Name),
		Variant:  selection.Variant,
		Tokens:   tokens,
		CSSVars:  cssVars(tokens),
		Partials: mergeStrings(manifest.Templates, variant.Templates),
		AssetURL: func(key string) string {
			return assetURL(prefix, files[key])
		},
	}
}

func buildThemeContext(cfg *theme.RendererConfig) themeContext {
	if cfg == nil {
		return themeContext{}
	}
	ctx := themeContext{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Style:   cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		ctx.Stylesheet = cfg.AssetURL(StylesheetAsset)
	}
	return ctx
}

func assetURL(prefix, file string) string {
	file = strings.TrimSpace(file)
	if file == "" {
		return ""
	}
	if strings.HasPrefix(file, "/") || strings.Contains(file, "://") || prefix == "" {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
}

func cssVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		out["--"+strings.TrimPrefix(key, "--")] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func mergeStrings(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
