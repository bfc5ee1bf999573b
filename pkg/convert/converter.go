// Package convert dispatches domain objects to the converter that turns them
// into a requested view-model shape. Converters are consulted in registration
// order and the first one whose Supports predicate accepts the (object,
// target, context) triple wins, so registration order is the priority.
package convert

import "github.com/goliatone/go-journalvm/pkg/viewmodel"

// Converter maps one family of domain objects to one or more view-model
// shapes. Implementations must be pure functions of their inputs.
type Converter interface {
	Name() string
	Supports(object any, target viewmodel.Kind, ctx Context) bool
	Convert(object any, target viewmodel.Kind, ctx Context) (viewmodel.ViewModel, error)
}

// Func adapts a pair of plain functions into a Converter. Useful for tests and
// one-off registrations.
type Func struct {
	ID         string
	SupportsFn func(object any, target viewmodel.Kind, ctx Context) bool
	ConvertFn  func(object any, target viewmodel.Kind, ctx Context) (viewmodel.ViewModel, error)
}

func (f Func) Name() string { return f.ID }

func (f Func) Supports(object any, target viewmodel.Kind, ctx Context) bool {
	if f.SupportsFn == nil {
		return false
	}
	return f.SupportsFn(object, target, ctx)
}

func (f Func) Convert(object any, target viewmodel.Kind, ctx Context) (viewmodel.ViewModel, error) {
	if f.ConvertFn == nil {
		return nil, Unsupported(f.ID, object)
	}
	return f.ConvertFn(object, target, ctx)
}
