// Package gen renders the generated decode hooks and formats them with
// go/format. Each package with discovered pairs receives one file whose
// methods make the current types decodable straight from their old shapes.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"text/template"

	"github.com/uttarayan21/compatible-with/internal/analyze"
)

// compatPath is the import path of the root adapter package.
const compatPath = "github.com/uttarayan21/compatible-with"

// Config holds code generation settings.
type Config struct {
	// Filename of the generated file inside each package.
	Filename string
	// YAML additionally emits the YAML engine hook.
	YAML bool
}

// DefaultConfig returns the settings compatgen starts from.
func DefaultConfig() Config {
	return Config{Filename: "compat_gen.go"}
}

// File is one generated Go source file.
type File struct {
	// Dir is the package directory the file belongs in.
	Dir      string
	Filename string
	Content  []byte
}

type templateData struct {
	PkgName string
	YAML    bool
	Imports []string
	Pairs   []analyze.Pair
}

var fileTemplate = template.Must(template.New("compat_gen").Parse(`// Code generated by compatgen. DO NOT EDIT.

package {{.PkgName}}

import (
	compat "github.com/uttarayan21/compatible-with"
{{- if .YAML}}
	"gopkg.in/yaml.v3"
{{- end}}
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{range .Pairs}}
var _ compat.CompatibleWith[{{.Old}}, {{.Current}}] = *new({{.Current}})

// UnmarshalJSON decodes {{.Current}} from either its current shape or its
// {{.Old}} predecessor, upgrading the latter.
func (v *{{.Current}}) UnmarshalJSON(data []byte) error {
	// plain sheds the methods of {{.Current}} so the current-shape candidate
	// does not re-enter this hook.
	type plain {{.Current}}
	var old {{.Old}}
	var cur plain
	switch i, err := compat.FirstMatch(data, &old, &cur); {
	case err != nil:
		return err
	case i == 0:
		*v = compat.IntoCurrent[{{.Old}}, {{.Current}}](old)
	default:
		*v = {{.Current}}(cur)
	}
	return nil
}
{{- if $.YAML}}

// UnmarshalYAML mirrors UnmarshalJSON for the YAML engine.
func (v *{{.Current}}) UnmarshalYAML(node *yaml.Node) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	type plain {{.Current}}
	var old {{.Old}}
	var cur plain
	switch i, err := compat.FirstMatchYAML(data, &old, &cur); {
	case err != nil:
		return err
	case i == 0:
		*v = compat.IntoCurrent[{{.Old}}, {{.Current}}](old)
	default:
		*v = {{.Current}}(cur)
	}
	return nil
}
{{- end}}
{{end}}`))

// Generate renders one file per package directory from the given pairs.
// Pairs are expected in the order Discover returns them.
func Generate(pairs []analyze.Pair, cfg Config) ([]File, error) {
	var dirs []string
	grouped := map[string][]analyze.Pair{}
	for _, pair := range pairs {
		if _, seen := grouped[pair.Dir]; !seen {
			dirs = append(dirs, pair.Dir)
		}
		grouped[pair.Dir] = append(grouped[pair.Dir], pair)
	}

	var files []File
	for _, dir := range dirs {
		group := grouped[dir]

		content, err := renderFile(group, cfg)
		if err != nil {
			return nil, fmt.Errorf("generating for %s: %w", group[0].PkgPath, err)
		}

		files = append(files, File{Dir: dir, Filename: cfg.Filename, Content: content})
	}

	return files, nil
}

func renderFile(pairs []analyze.Pair, cfg Config) ([]byte, error) {
	data := templateData{
		PkgName: pairs[0].PkgName,
		YAML:    cfg.YAML,
		Imports: renderImports(pairs),
		Pairs:   pairs,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting: %w", err)
	}

	return src, nil
}

// renderImports spells the extra import lines the old type expressions need,
// deduplicated and excluding the always-present adapter import.
func renderImports(pairs []analyze.Pair) []string {
	var lines []string
	seen := map[string]bool{}

	for _, pair := range pairs {
		for _, imp := range pair.Imports {
			if imp.Path == compatPath || seen[imp.Path] {
				continue
			}
			seen[imp.Path] = true

			if imp.Name == path.Base(imp.Path) {
				lines = append(lines, fmt.Sprintf("%q", imp.Path))
			} else {
				lines = append(lines, fmt.Sprintf("%s %q", imp.Name, imp.Path))
			}
		}
	}

	return lines
}
