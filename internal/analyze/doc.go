// Package analyze discovers compatibility pairs in Go source.
//
// A pair is any exported named type T declaring the CompatibleWith contract
// method
//
//	func (T) FromOld(Old) T
//
// Discovery runs on go/types information loaded through
// golang.org/x/tools/go/packages, so Old may be any type expression: a named
// type, a slice, a type imported from another package.
package analyze
