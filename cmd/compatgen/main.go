// Package main provides the CLI entrypoint for compatgen.
//
// compatgen scans Go packages for current types implementing the
// CompatibleWith contract (a FromOld method) and generates the decode hook
// that routes their decode path through the compatibility adapter, so call
// sites decode the current type directly and still accept old payloads.
//
// Usage:
//
//	compatgen [flags] [packages]
//
// With no packages, the current directory is scanned. An optional YAML pair
// file (-config) pins which pairs are generated and with which engines.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"github.com/uttarayan21/compatible-with/internal/analyze"
	"github.com/uttarayan21/compatible-with/internal/gen"
	"github.com/uttarayan21/compatible-with/internal/mapping"
)

type options struct {
	configPath string
	output     string
	yaml       bool
	dryRun     bool
	debug      bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML pair file pinning which pairs to generate")
	flag.StringVar(&opts.output, "o", "compat_gen.go", "name of the generated file in each package")
	flag.BoolVar(&opts.yaml, "yaml", false, "also generate the YAML engine hook")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "print generated files instead of writing them")
	flag.BoolVar(&opts.debug, "debug", false, "dump the discovered pairs")
	flag.Parse()

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	if err := run(patterns, opts); err != nil {
		fmt.Fprintln(os.Stderr, "compatgen:", err)
		os.Exit(1)
	}
}

func run(patterns []string, opts options) error {
	pairs, err := analyze.Discover(patterns...)
	if err != nil {
		return err
	}

	if opts.configPath != "" {
		file, err := mapping.Load(opts.configPath)
		if err != nil {
			return err
		}
		pairs, err = selectPairs(pairs, file)
		if err != nil {
			return err
		}
		opts.yaml = opts.yaml || file.YAML()
	}

	if opts.debug {
		spew.Fdump(os.Stderr, pairs)
	}
	if len(pairs) == 0 {
		return errors.New("no compatible types found")
	}

	cfg := gen.Config{Filename: opts.output, YAML: opts.yaml}
	files, err := gen.Generate(pairs, cfg)
	if err != nil {
		return err
	}

	if opts.dryRun {
		for _, file := range files {
			fmt.Printf("--- %s\n%s", filepath.Join(file.Dir, file.Filename), file.Content)
		}
		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}
	for _, file := range files {
		fmt.Println("wrote", filepath.Join(file.Dir, file.Filename))
	}

	return nil
}

// selectPairs filters discovery down to what the pair file asks for and
// verifies the file agrees with the source about each old shape.
func selectPairs(pairs []analyze.Pair, file *mapping.File) ([]analyze.Pair, error) {
	var selected []analyze.Pair
	matched := map[string]bool{}

	for _, pair := range pairs {
		if !file.Selects(pair.Ref()) {
			continue
		}
		if pinned, ok := file.Find(pair.Ref()); ok {
			matched[pinned.Current] = true
			if pinned.Old != "" && pinned.Old != pair.Old {
				return nil, fmt.Errorf("pair %s: config declares old %q but FromOld takes %q",
					pair.Ref(), pinned.Old, pair.Old)
			}
		}
		selected = append(selected, pair)
	}

	for _, pinned := range file.Pairs {
		if !matched[pinned.Current] {
			return nil, fmt.Errorf("pair %s: no such type with a FromOld method in the scanned packages",
				pinned.Current)
		}
	}

	return selected, nil
}
