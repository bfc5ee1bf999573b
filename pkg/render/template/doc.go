// Package template defines the renderer-agnostic template engine contract.
// The pongo subpackage provides the default implementation.
package template
