// Package scaffold embeds the starter files for a labkit working
// directory and writes them to a target directory.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed assets/*
var assets embed.FS

// Options configures the scaffold operation.
type Options struct {
	// TargetDir is the directory to scaffold into.
	// Defaults to the current working directory.
	TargetDir string

	// Force overwrites existing files when true.
	// When false, existing files are skipped.
	Force bool

	// Version is embedded in the version marker comment.
	// Defaults to "dev".
	Version string

	// Stdout is the writer for summary output.
	// Defaults to os.Stdout.
	Stdout io.Writer
}

// Result reports what the scaffold operation did.
type Result struct {
	// Created lists files that were written for the first time.
	Created []string

	// Skipped lists files that already existed and were not
	// overwritten (Force was false).
	Skipped []string

	// Overwritten lists files that existed and were replaced
	// (Force was true).
	Overwritten []string
}

// versionMarker returns the comment line prepended to a scaffolded
// file, or "" for formats without comments. sample.txt is counted by
// the line counter and stays unmarked.
func versionMarker(name, version string) string {
	if version == "" {
		version = "dev"
	}
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".hcl":
		return fmt.Sprintf("# scaffolded by labkit %s\n", version)
	default:
		return ""
	}
}

// Run writes the embedded starter files into opts.TargetDir:
//
//	.labkit.yaml   settings with every key at its default
//	cases.hcl      example case overrides
//	sample.txt     the line counter's default input
//
// Existing files are skipped unless opts.Force is set.
func Run(opts Options) (*Result, error) {
	if opts.TargetDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		opts.TargetDir = cwd
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	info, err := os.Stat(opts.TargetDir)
	if err != nil {
		return nil, fmt.Errorf("target directory %s: %w", opts.TargetDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target %s is not a directory", opts.TargetDir)
	}

	result := &Result{}
	err = fs.WalkDir(assets, "assets", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(path, "assets/")
		outPath := filepath.Join(opts.TargetDir, rel)

		_, statErr := os.Stat(outPath)
		exists := statErr == nil
		if exists && !opts.Force {
			result.Skipped = append(result.Skipped, rel)
			return nil
		}

		content, err := assets.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading embedded asset %s: %w", path, err)
		}

		out := append([]byte(versionMarker(rel, opts.Version)), content...)
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return fmt.Errorf("creating %s: %w", rel, err)
		}

		if exists {
			result.Overwritten = append(result.Overwritten, rel)
		} else {
			result.Created = append(result.Created, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	printSummary(opts.Stdout, result)
	return result, nil
}

func printSummary(w io.Writer, r *Result) {
	fmt.Fprintln(w, "labkit working directory initialized:")

	for _, f := range r.Created {
		fmt.Fprintf(w, "  created: %s\n", f)
	}
	for _, f := range r.Skipped {
		fmt.Fprintf(w, "  skipped: %s (already exists)\n", f)
	}
	for _, f := range r.Overwritten {
		fmt.Fprintf(w, "  overwritten: %s\n", f)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'labkit run --cases cases.hcl' to try the example overrides.")

	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "%d file(s) skipped (use --force to overwrite).\n", len(r.Skipped))
	}
}

// AssetPaths returns the relative paths of all embedded assets.
func AssetPaths() ([]string, error) {
	var paths []string
	err := fs.WalkDir(assets, "assets", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		paths = append(paths, strings.TrimPrefix(path, "assets/"))
		return nil
	})
	return paths, err
}

// AssetContent returns the raw content of an embedded asset by
// its relative path (e.g., "cases.hcl").
func AssetContent(relPath string) ([]byte, error) {
	return assets.ReadFile("assets/" + relPath)
}
