// Package model defines the upstream domain objects consumed by converters:
// bibliographic references in their seven structural kinds, the contributors
// and dates they carry, and the non-reference content (digests, people,
// article snippets, collections) rendered elsewhere on the journal. Values are
// expected to be fully materialised before they reach a converter; nothing in
// this package performs I/O.
package model
