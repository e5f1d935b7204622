package gen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uttarayan21/compatible-with/internal/analyze"
	"github.com/uttarayan21/compatible-with/internal/gen"
)

func TestGenerateSinglePair(t *testing.T) {
	pairs := []analyze.Pair{{
		PkgPath: "example.com/demo/userprofile",
		PkgName: "userprofile",
		Dir:     "/tmp/userprofile",
		Current: "UserID",
		Old:     "int64",
	}}

	files, err := gen.Generate(pairs, gen.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "/tmp/userprofile", files[0].Dir)
	assert.Equal(t, "compat_gen.go", files[0].Filename)

	want := `// Code generated by compatgen. DO NOT EDIT.

package userprofile

import (
	compat "github.com/uttarayan21/compatible-with"
)

var _ compat.CompatibleWith[int64, UserID] = *new(UserID)

// UnmarshalJSON decodes UserID from either its current shape or its
// int64 predecessor, upgrading the latter.
func (v *UserID) UnmarshalJSON(data []byte) error {
	// plain sheds the methods of UserID so the current-shape candidate
	// does not re-enter this hook.
	type plain UserID
	var old int64
	var cur plain
	switch i, err := compat.FirstMatch(data, &old, &cur); {
	case err != nil:
		return err
	case i == 0:
		*v = compat.IntoCurrent[int64, UserID](old)
	default:
		*v = UserID(cur)
	}
	return nil
}
`
	assert.Equal(t, want, string(files[0].Content))
}

func TestGenerateYAMLHook(t *testing.T) {
	pairs := []analyze.Pair{{
		PkgName: "userprofile",
		Dir:     "/tmp/userprofile",
		Current: "UserID",
		Old:     "int64",
	}}

	cfg := gen.DefaultConfig()
	cfg.YAML = true

	files, err := gen.Generate(pairs, cfg)
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)
	assert.Contains(t, content, `"gopkg.in/yaml.v3"`)
	assert.Contains(t, content, "func (v *UserID) UnmarshalYAML(node *yaml.Node) error {")
	assert.Contains(t, content, "compat.FirstMatchYAML(data, &old, &cur)")
}

func TestGenerateGroupsByPackage(t *testing.T) {
	pairs := []analyze.Pair{
		{PkgName: "userprofile", Dir: "/tmp/userprofile", Current: "Profile", Old: "LegacyProfile"},
		{PkgName: "userprofile", Dir: "/tmp/userprofile", Current: "UserID", Old: "int64"},
		{PkgName: "other", Dir: "/tmp/other", Current: "Thing", Old: "OldThing"},
	}

	files, err := gen.Generate(pairs, gen.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, files, 2)

	first := string(files[0].Content)
	assert.Contains(t, first, "func (v *Profile) UnmarshalJSON")
	assert.Contains(t, first, "func (v *UserID) UnmarshalJSON")
	assert.Contains(t, string(files[1].Content), "package other")
}

func TestGenerateCrossPackageOld(t *testing.T) {
	pairs := []analyze.Pair{{
		PkgName: "warehouse",
		Dir:     "/tmp/warehouse",
		Current: "Order",
		Old:     "store.Order",
		Imports: []analyze.Import{{Name: "store", Path: "example.com/demo/store"}},
	}}

	files, err := gen.Generate(pairs, gen.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)
	assert.Contains(t, content, `"example.com/demo/store"`)
	assert.Contains(t, content, "var old store.Order")
	assert.Contains(t, content, "compat.IntoCurrent[store.Order, Order](old)")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	files := []gen.File{{Dir: dir, Filename: "compat_gen.go", Content: []byte("package demo\n")}}

	require.NoError(t, gen.WriteFiles(files))

	data, err := os.ReadFile(filepath.Join(dir, "compat_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package demo\n", string(data))
}
