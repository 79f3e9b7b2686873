// Package audit checks Go functions against a cyclomatic complexity
// budget.
//
// Each function under the requested package patterns is scored with
// gocyclo. A function whose complexity exceeds the budget (default
// 10) is over budget. When a coverage profile is supplied, each score
// also carries the function's statement coverage.
package audit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/fzipp/gocyclo"
	"github.com/unbound-force/labkit/internal/loader"
)

// DefaultMaxComplexity is the budget used when none is configured.
const DefaultMaxComplexity = 10

// worstCount is how many functions the summary lists as worst.
const worstCount = 5

// Options configures an audit.
type Options struct {
	// MaxComplexity is the highest complexity within budget.
	MaxComplexity int

	// CoverProfile is an optional `go test -coverprofile` output.
	CoverProfile string

	// IgnoreGenerated excludes files with a "// Code generated"
	// header.
	IgnoreGenerated bool
}

// DefaultOptions returns the default budget with generated files
// excluded.
func DefaultOptions() Options {
	return Options{
		MaxComplexity:   DefaultMaxComplexity,
		IgnoreGenerated: true,
	}
}

// Score is the audit result for a single function.
type Score struct {
	Package    string `json:"package"`
	Function   string `json:"function"`
	File       string `json:"file"`
	Line       int    `json:"line"`
	Complexity int    `json:"complexity"`

	// Coverage is the statement coverage (0-100). Nil without a
	// coverage profile.
	Coverage *float64 `json:"coverage,omitempty"`

	OverBudget bool `json:"over_budget"`
}

// Summary holds aggregate statistics for an audit.
type Summary struct {
	TotalFunctions int      `json:"total_functions"`
	AvgComplexity  float64  `json:"avg_complexity"`
	MaxComplexity  int      `json:"max_complexity"`
	Budget         int      `json:"budget"`
	OverBudget     int      `json:"over_budget"`
	AvgCoverage    *float64 `json:"avg_coverage,omitempty"`
	Worst          []Score  `json:"worst"`
}

// Report is the complete audit output.
type Report struct {
	Scores  []Score `json:"scores"`
	Summary Summary `json:"summary"`
}

// Exceeded reports whether any function is over budget.
func (r *Report) Exceeded() bool {
	return r.Summary.OverBudget > 0
}

// Analyze scores every non-test function under patterns, resolved
// relative to moduleDir.
func Analyze(patterns []string, moduleDir string, opts Options) (*Report, error) {
	if opts.MaxComplexity <= 0 {
		opts.MaxComplexity = DefaultMaxComplexity
	}
	if moduleDir == "" {
		moduleDir = "."
	}
	moduleDir, err := filepath.Abs(moduleDir)
	if err != nil {
		return nil, fmt.Errorf("resolving module dir: %w", err)
	}

	paths, err := resolvePatterns(patterns, moduleDir)
	if err != nil {
		return nil, fmt.Errorf("resolving patterns: %w", err)
	}

	var coverMap coverMaps
	if opts.CoverProfile != "" {
		profile := filepath.Clean(opts.CoverProfile)
		info, err := os.Stat(profile)
		if err != nil {
			return nil, fmt.Errorf("cover profile %q: %w", profile, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("cover profile %q is a directory, not a file", profile)
		}
		funcCoverages, err := ParseCoverProfile(profile, moduleDir)
		if err != nil {
			return nil, fmt.Errorf("parsing coverage profile: %w", err)
		}
		coverMap = buildCoverMap(funcCoverages)
	}

	stats := gocyclo.Analyze(paths, regexp.MustCompile(`_test\.go$`))
	generatedCache := make(map[string]bool)

	scores := make([]Score, 0, len(stats))
	seen := make(map[string]bool, len(stats))
	for _, stat := range stats {
		file := stat.Pos.Filename
		if strings.HasSuffix(file, "_test.go") || hiddenPath(moduleDir, file) {
			continue
		}
		if opts.IgnoreGenerated {
			gen, ok := generatedCache[file]
			if !ok {
				gen = isGeneratedFile(file)
				generatedCache[file] = gen
			}
			if gen {
				continue
			}
		}

		// Overlapping patterns ("./..." and "./internal/...") walk
		// the same file twice.
		key := fmt.Sprintf("%s:%d:%s", file, stat.Pos.Line, stat.FuncName)
		if seen[key] {
			continue
		}
		seen[key] = true

		score := Score{
			Package:    stat.PkgName,
			Function:   stat.FuncName,
			File:       file,
			Line:       stat.Pos.Line,
			Complexity: stat.Complexity,
			OverBudget: stat.Complexity > opts.MaxComplexity,
		}
		if coverMap.exact != nil {
			pct := lookupCoverage(file, stat.Pos.Line, coverMap)
			score.Coverage = &pct
		}
		scores = append(scores, score)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].File != scores[j].File {
			return scores[i].File < scores[j].File
		}
		return scores[i].Line < scores[j].Line
	})

	return &Report{
		Scores:  scores,
		Summary: buildSummary(scores, opts),
	}, nil
}

// resolvePatterns converts package patterns to filesystem paths that
// gocyclo can walk. Relative directories and "dir/..." forms are
// used as-is; anything else is resolved as an import path.
func resolvePatterns(patterns []string, moduleDir string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	var paths, importPaths []string
	for _, p := range patterns {
		local := strings.TrimSuffix(p, "...")
		local = strings.TrimSuffix(local, "/")
		if local == "" || local == "." {
			paths = append(paths, moduleDir)
			continue
		}
		if !filepath.IsAbs(local) {
			local = filepath.Join(moduleDir, local)
		}
		if _, err := os.Stat(local); err == nil {
			paths = append(paths, local)
			continue
		}
		importPaths = append(importPaths, p)
	}

	if len(importPaths) > 0 {
		pkgs, err := loader.Load(moduleDir, importPaths...)
		if err != nil {
			return nil, err
		}
		// A package directory is walked recursively by gocyclo, so
		// use its files to stay within the package.
		for _, pkg := range pkgs {
			paths = append(paths, pkg.GoFiles...)
		}
	}
	return paths, nil
}

// hiddenPath reports whether file sits under a directory the go tool
// ignores (leading "_" or ".") below root.
func hiddenPath(root, file string) bool {
	rel, err := filepath.Rel(root, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	parts := strings.Split(filepath.ToSlash(filepath.Dir(rel)), "/")
	for _, part := range parts {
		if part != "." && (strings.HasPrefix(part, "_") || strings.HasPrefix(part, ".")) {
			return true
		}
	}
	return false
}

var generatedRegexp = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// isGeneratedFile looks for the generated-code marker before the
// package clause.
func isGeneratedFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(trimmed, "package ") {
			return false
		}
		if generatedRegexp.MatchString(trimmed) {
			return true
		}
	}
	return false
}

func buildSummary(scores []Score, opts Options) Summary {
	summary := Summary{
		Budget: opts.MaxComplexity,
		Worst:  []Score{},
	}
	if len(scores) == 0 {
		return summary
	}

	var totalComp, totalCov float64
	hasCoverage := false
	for _, s := range scores {
		totalComp += float64(s.Complexity)
		if s.Complexity > summary.MaxComplexity {
			summary.MaxComplexity = s.Complexity
		}
		if s.OverBudget {
			summary.OverBudget++
		}
		if s.Coverage != nil {
			hasCoverage = true
			totalCov += *s.Coverage
		}
	}

	n := float64(len(scores))
	summary.TotalFunctions = len(scores)
	summary.AvgComplexity = totalComp / n
	if hasCoverage {
		avg := totalCov / n
		summary.AvgCoverage = &avg
	}

	sorted := make([]Score, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Complexity > sorted[j].Complexity
	})
	if len(sorted) > worstCount {
		sorted = sorted[:worstCount]
	}
	summary.Worst = sorted

	return summary
}
