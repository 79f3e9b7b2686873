package loader_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/unbound-force/labkit/internal/loader"
)

func TestLoad_ValidPackage(t *testing.T) {
	// Load the loader package itself (it's a valid Go package).
	pkgs, err := loader.Load("", "github.com/unbound-force/labkit/internal/loader")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(pkgs) != 1 {
		t.Fatalf("expected 1 package, got %d", len(pkgs))
	}
	if pkgs[0].PkgPath != "github.com/unbound-force/labkit/internal/loader" {
		t.Errorf("expected pkg path 'github.com/unbound-force/labkit/internal/loader', got %q",
			pkgs[0].PkgPath)
	}
	if filepath.Base(pkgs[0].Dir) != "loader" {
		t.Errorf("expected dir ending in 'loader', got %q", pkgs[0].Dir)
	}
	for _, f := range pkgs[0].GoFiles {
		if strings.HasSuffix(f, "_test.go") {
			t.Errorf("test file %q should not be loaded", f)
		}
	}
}

func TestLoad_Wildcard(t *testing.T) {
	pkgs, err := loader.Load("../..", "./internal/...")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	seen := make(map[string]bool)
	for _, p := range pkgs {
		seen[p.PkgPath] = true
	}
	for _, want := range []string{
		"github.com/unbound-force/labkit/internal/loader",
		"github.com/unbound-force/labkit/internal/numeric",
	} {
		if !seen[want] {
			t.Errorf("expected %q among loaded packages", want)
		}
	}
	for i := 1; i < len(pkgs); i++ {
		if pkgs[i-1].PkgPath > pkgs[i].PkgPath {
			t.Fatalf("packages not sorted: %q before %q", pkgs[i-1].PkgPath, pkgs[i].PkgPath)
		}
	}
}

func TestLoad_InvalidPattern(t *testing.T) {
	_, err := loader.Load("", "github.com/nonexistent/package/that/does/not/exist")
	if err == nil {
		t.Error("expected error for nonexistent package")
	}
}

func TestDirs_Deduplicates(t *testing.T) {
	dirs := loader.Dirs([]loader.Package{
		{PkgPath: "a", Dir: "/x/a"},
		{PkgPath: "a_ext", Dir: "/x/a"},
		{PkgPath: "b", Dir: "/x/b"},
	})
	if len(dirs) != 2 || dirs[0] != "/x/a" || dirs[1] != "/x/b" {
		t.Errorf("Dirs() = %v, want [/x/a /x/b]", dirs)
	}
}
