package convert

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// Option customises a Registry.
type Option func(*Registry)

// WithLogger logs converter selection at debug level and misses at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithObserver reports every conversion outcome to observer.
func WithObserver(observer Observer) Option {
	return func(r *Registry) {
		r.observer = observer
	}
}

// Registry holds converters in registration order. It is populated at start
// up; the first conversion seals it, after which it is read-only and safe for
// concurrent use.
type Registry struct {
	mu         sync.RWMutex
	converters []Converter
	names      map[string]struct{}
	sealed     bool

	logger   *slog.Logger
	observer Observer
}

// NewRegistry creates an empty registry.
func NewRegistry(options ...Option) *Registry {
	r := &Registry{names: make(map[string]struct{})}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Register appends a converter. Converters registered earlier take
// precedence when several support the same input.
func (r *Registry) Register(converter Converter) error {
	if converter == nil {
		return fmt.Errorf("convert: converter is required")
	}
	name := strings.TrimSpace(converter.Name())
	if name == "" {
		return fmt.Errorf("convert: converter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("convert: register %q: %w", name, ErrRegistrySealed)
	}
	if _, exists := r.names[name]; exists {
		return fmt.Errorf("convert: converter %q already registered", name)
	}

	r.names[name] = struct{}{}
	r.converters = append(r.converters, converter)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(converters ...Converter) {
	for _, converter := range converters {
		if err := r.Register(converter); err != nil {
			panic(err)
		}
	}
}

// Names lists converter names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.converters))
	for _, converter := range r.converters {
		names = append(names, converter.Name())
	}
	return names
}

// Resolve returns the first converter supporting the triple.
func (r *Registry) Resolve(object any, target viewmodel.Kind, ctx Context) (Converter, bool) {
	converters := r.snapshot()
	if object == nil {
		return nil, false
	}
	for _, converter := range converters {
		if converter.Supports(object, target, ctx) {
			return converter, true
		}
	}
	return nil, false
}

// Convert converts object into the target shape using the first supporting
// converter.
func (r *Registry) Convert(object any, target viewmodel.Kind, ctx Context) (viewmodel.ViewModel, error) {
	converter, ok := r.Resolve(object, target, ctx)
	if !ok {
		err := &NoMatchingConverterError{ObjectType: typeName(object), Target: target}
		if r.logger != nil {
			r.logger.Warn("no matching converter", "object_type", err.ObjectType, "target", string(target))
		}
		if r.observer != nil {
			r.observer.Missed(err.ObjectType, target)
		}
		return nil, err
	}

	if r.logger != nil {
		r.logger.Debug("converting", "converter", converter.Name(), "object_type", typeName(object), "target", string(target))
	}

	vm, err := converter.Convert(object, target, ctx)
	if err != nil {
		return nil, fmt.Errorf("convert: %s: %w", converter.Name(), err)
	}
	if r.observer != nil {
		r.observer.Converted(converter.Name(), target)
	}
	return vm, nil
}

// ConvertMany converts each object in order, stopping at the first failure.
func (r *Registry) ConvertMany(objects []any, target viewmodel.Kind, ctx Context) ([]viewmodel.ViewModel, error) {
	return Map(r, objects, target, ctx)
}

// WillConvertTo binds target and ctx, returning a function suitable for
// mapping over sequences.
func (r *Registry) WillConvertTo(target viewmodel.Kind, ctx Context) func(any) (viewmodel.ViewModel, error) {
	return func(object any) (viewmodel.ViewModel, error) {
		return r.Convert(object, target, ctx)
	}
}

func (r *Registry) snapshot() []Converter {
	r.mu.RLock()
	if r.sealed {
		converters := r.converters
		r.mu.RUnlock()
		return converters
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
	return r.converters
}

// Dispatcher is the conversion contract exposed to collaborators.
type Dispatcher interface {
	Convert(object any, target viewmodel.Kind, ctx Context) (viewmodel.ViewModel, error)
}

// Map converts a typed slice through d, preserving order.
func Map[T any](d Dispatcher, objects []T, target viewmodel.Kind, ctx Context) ([]viewmodel.ViewModel, error) {
	out := make([]viewmodel.ViewModel, 0, len(objects))
	for idx, object := range objects {
		vm, err := d.Convert(object, target, ctx)
		if err != nil {
			return nil, fmt.Errorf("convert: item %d: %w", idx, err)
		}
		out = append(out, vm)
	}
	return out, nil
}
