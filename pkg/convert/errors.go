package convert

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

var (
	// ErrNoMatchingConverter matches every NoMatchingConverterError.
	ErrNoMatchingConverter = errors.New("convert: no matching converter")
	// ErrRegistrySealed is returned when registering after the first
	// conversion.
	ErrRegistrySealed = errors.New("convert: registry is sealed")
	// ErrUnsupported is returned by a converter handed an object it does not
	// support; the registry never does this.
	ErrUnsupported = errors.New("convert: unsupported object")
)

// NoMatchingConverterError reports that no registered converter accepted the
// object for the requested target.
type NoMatchingConverterError struct {
	ObjectType string
	Target     viewmodel.Kind
}

func (e *NoMatchingConverterError) Error() string {
	return fmt.Sprintf("convert: no converter for %s to %q", e.ObjectType, e.Target)
}

// Is lets errors.Is match against ErrNoMatchingConverter.
func (e *NoMatchingConverterError) Is(target error) bool {
	return target == ErrNoMatchingConverter
}

// Unsupported builds the error a converter returns when called directly with
// an object outside its Supports predicate.
func Unsupported(converter string, object any) error {
	return fmt.Errorf("%w: %s cannot convert %s", ErrUnsupported, converter, typeName(object))
}

func typeName(object any) string {
	if object == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", object)
}
