// Released under an MIT license. See LICENSE.

// Package cell defines the interface for values that can be bound to names.
package cell

// I (cell) is the basic unit of storage.
type I interface {
	Equal(c I) bool
	Name() string
}
