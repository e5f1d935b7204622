package analyze

// Pair describes one discovered (Old, Current) schema pair: a current type
// declaring FromOld, plus everything the generator needs to render its
// decode hook.
type Pair struct {
	// PkgPath and PkgName identify the package Current is declared in.
	PkgPath string
	PkgName string
	// Dir holds the package sources; generated output lands next to them.
	Dir string
	// Current is the local name of the current type.
	Current string
	// Old is the old type expression spelled as it must appear inside the
	// package, e.g. "LegacyProfile", "[]Dir", "store.Order".
	Old string
	// Imports lists the packages the Old expression needs.
	Imports []Import
}

// Import is a package required by a rendered type expression.
type Import struct {
	Name string
	Path string
}

// Ref returns the package-qualified name of the current type, the form used
// by pair files ("userprofile.Profile").
func (p Pair) Ref() string {
	return p.PkgName + "." + p.Current
}
