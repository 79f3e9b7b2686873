// Package loader wraps go/packages to resolve package patterns
// (import paths, ./..., std-style wildcards) to source directories.
package loader

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode is the minimum set of flags needed to locate source files.
const LoadMode = packages.NeedName | packages.NeedFiles

// Package is a resolved package and the directory holding its files.
type Package struct {
	PkgPath string
	Dir     string
	GoFiles []string
}

// Load resolves patterns relative to dir (the module root; empty
// means the working directory). Packages that fail to load are
// reported as one aggregated error.
func Load(dir string, patterns ...string) ([]Package, error) {
	cfg := &packages.Config{
		Mode:  LoadMode,
		Dir:   dir,
		Tests: false,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages %v: %w", patterns, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found for patterns %v", patterns)
	}

	var errs []string
	out := make([]Package, 0, len(pkgs))
	for _, p := range pkgs {
		for _, e := range p.Errors {
			errs = append(errs, e.Error())
		}
		if len(p.GoFiles) == 0 {
			continue
		}
		out = append(out, Package{
			PkgPath: p.PkgPath,
			Dir:     filepath.Dir(p.GoFiles[0]),
			GoFiles: p.GoFiles,
		})
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("packages %v have errors:\n  %s",
			patterns, strings.Join(errs, "\n  "))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PkgPath < out[j].PkgPath })
	return out, nil
}

// Dirs returns the distinct source directories of pkgs.
func Dirs(pkgs []Package) []string {
	seen := make(map[string]bool, len(pkgs))
	var dirs []string
	for _, p := range pkgs {
		if !seen[p.Dir] {
			seen[p.Dir] = true
			dirs = append(dirs, p.Dir)
		}
	}
	return dirs
}
