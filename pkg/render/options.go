package render

// RenderOptions carry per-request presentation choices. Renderers ignore the
// fields they do not understand.
type RenderOptions struct {
	// Title is used by renderers that wrap output in a full document.
	Title string
	// Fragment skips the document wrapper.
	Fragment bool
	// ThemeName and ThemeVariant select a theme when the renderer was built
	// with a theme selector.
	ThemeName    string
	ThemeVariant string
	// Indent pretty-prints structured output.
	Indent bool
}
