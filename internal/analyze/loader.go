package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information discovery needs from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// contractMethod is the method name of the CompatibleWith contract.
const contractMethod = "FromOld"

// Discover loads the given package patterns and returns the compatibility
// pairs found in them, sorted by package path and type name.
func Discover(patterns ...string) ([]Pair, error) {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var pairs []Pair
	for _, pkg := range pkgs {
		pairs = append(pairs, discoverPackage(pkg)...)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].PkgPath != pairs[j].PkgPath {
			return pairs[i].PkgPath < pairs[j].PkgPath
		}
		return pairs[i].Current < pairs[j].Current
	})

	return pairs, nil
}

func discoverPackage(pkg *packages.Package) []Pair {
	if len(pkg.GoFiles) == 0 {
		return nil
	}
	dir := filepath.Dir(pkg.GoFiles[0])

	var pairs []Pair

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		old, ok := contractOld(named)
		if !ok {
			continue
		}

		rendered, imports := renderType(old, pkg.Types)
		pairs = append(pairs, Pair{
			PkgPath: pkg.PkgPath,
			PkgName: pkg.Name,
			Dir:     dir,
			Current: typeName.Name(),
			Old:     rendered,
			Imports: imports,
		})
	}

	return pairs
}

// contractOld returns the Old type of named's FromOld method, if the method
// matches the contract shape: one parameter, one result identical to the
// receiver, declared on the value receiver so it is callable on the zero
// value.
func contractOld(named *types.Named) (types.Type, bool) {
	for i := 0; i < named.NumMethods(); i++ {
		method := named.Method(i)
		if method.Name() != contractMethod {
			continue
		}

		sig, ok := method.Type().(*types.Signature)
		if !ok {
			return nil, false
		}
		if _, pointer := sig.Recv().Type().(*types.Pointer); pointer {
			return nil, false
		}
		if sig.Params().Len() != 1 || sig.Results().Len() != 1 {
			return nil, false
		}
		if !types.Identical(sig.Results().At(0).Type(), named) {
			return nil, false
		}

		old := sig.Params().At(0).Type()
		if types.Identical(old, named) {
			return nil, false
		}

		return old, true
	}

	return nil, false
}

// renderType spells out t as it must appear inside pkg, collecting the
// imports the spelling requires.
func renderType(t types.Type, pkg *types.Package) (string, []Import) {
	var imports []Import
	seen := map[string]bool{}

	qualifier := func(other *types.Package) string {
		if other == pkg {
			return ""
		}
		if !seen[other.Path()] {
			seen[other.Path()] = true
			imports = append(imports, Import{Name: other.Name(), Path: other.Path()})
		}
		return other.Name()
	}

	return types.TypeString(t, qualifier), imports
}
