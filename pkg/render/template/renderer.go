package template

import (
	"io"
)

// FilterFunc transforms a template value. param is nil when the filter is
// used without an argument.
type FilterFunc func(input any, param any) (any, error)

// TemplateRenderer is the seam HTML renderers depend on. Data is converted to
// plain maps before execution, so templates address view-model fields by
// their JSON names.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn FilterFunc) error
	GlobalContext(data any) error
}
