package audit

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/cover"
)

// FuncCoverage is the statement coverage of one function.
type FuncCoverage struct {
	File         string  `json:"file"`
	FuncName     string  `json:"func_name"`
	StartLine    int     `json:"start_line"`
	EndLine      int     `json:"end_line"`
	CoveredStmts int64   `json:"covered_stmts"`
	TotalStmts   int64   `json:"total_stmts"`
	Percentage   float64 `json:"percentage"`
}

// ParseCoverProfile reads a coverage profile and computes coverage
// per function. Profile file names are either absolute or
// import-path relative; the latter are mapped onto moduleDir using
// the module path from its go.mod.
func ParseCoverProfile(profilePath string, moduleDir string) ([]FuncCoverage, error) {
	profiles, err := cover.ParseProfiles(profilePath)
	if err != nil {
		return nil, err
	}

	var results []FuncCoverage
	modulePath := readModulePath(moduleDir)
	for _, profile := range profiles {
		filePath := resolveFilePath(profile.FileName, moduleDir, modulePath)
		if filePath == "" {
			continue
		}
		funcs, err := findFunctions(filePath)
		if err != nil {
			continue
		}
		for _, fn := range funcs {
			covered, total := funcCoverage(fn, profile)
			pct := 0.0
			if total > 0 {
				pct = 100.0 * float64(covered) / float64(total)
			}
			results = append(results, FuncCoverage{
				File:         filePath,
				FuncName:     fn.name,
				StartLine:    fn.startLine,
				EndLine:      fn.endLine,
				CoveredStmts: covered,
				TotalStmts:   total,
				Percentage:   pct,
			})
		}
	}
	return results, nil
}

type funcExtent struct {
	name      string
	startLine int
	startCol  int
	endLine   int
	endCol    int
}

func findFunctions(filePath string) ([]funcExtent, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filePath, nil, 0)
	if err != nil {
		return nil, err
	}

	var funcs []funcExtent
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		start := fset.Position(fn.Pos())
		end := fset.Position(fn.End())
		funcs = append(funcs, funcExtent{
			name:      fn.Name.Name,
			startLine: start.Line,
			startCol:  start.Column,
			endLine:   end.Line,
			endCol:    end.Column,
		})
	}
	return funcs, nil
}

// funcCoverage sums the statements of the profile blocks that
// overlap fn. Blocks are sorted by position.
func funcCoverage(fn funcExtent, profile *cover.Profile) (covered, total int64) {
	for _, b := range profile.Blocks {
		if b.StartLine > fn.endLine || (b.StartLine == fn.endLine && b.StartCol >= fn.endCol) {
			break
		}
		if b.EndLine < fn.startLine || (b.EndLine == fn.startLine && b.EndCol <= fn.startCol) {
			continue
		}
		total += int64(b.NumStmt)
		if b.Count > 0 {
			covered += int64(b.NumStmt)
		}
	}
	return covered, total
}

func resolveFilePath(profileName, moduleDir, modulePath string) string {
	if filepath.IsAbs(profileName) {
		if _, err := os.Stat(profileName); err == nil {
			return profileName
		}
		return ""
	}
	if modulePath == "" || !strings.HasPrefix(profileName, modulePath+"/") {
		return ""
	}
	abs := filepath.Join(moduleDir, strings.TrimPrefix(profileName, modulePath+"/"))
	if _, err := os.Stat(abs); err != nil {
		return ""
	}
	return abs
}

func readModulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "module ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "module"))
		}
	}
	return ""
}

type coverKey struct {
	file string
	line int
}

// coverMaps indexes coverage by exact path and by base name, so a
// profile taken in a different checkout still matches.
type coverMaps struct {
	exact    map[coverKey]float64
	basename map[coverKey]float64
}

func buildCoverMap(coverages []FuncCoverage) coverMaps {
	exact := make(map[coverKey]float64, len(coverages))
	base := make(map[coverKey]float64, len(coverages))
	for _, fc := range coverages {
		exact[coverKey{file: fc.File, line: fc.StartLine}] = fc.Percentage
		base[coverKey{file: filepath.Base(fc.File), line: fc.StartLine}] = fc.Percentage
	}
	return coverMaps{exact: exact, basename: base}
}

// lookupCoverage returns 0 for a function the profile never reached.
func lookupCoverage(file string, line int, maps coverMaps) float64 {
	if pct, ok := maps.exact[coverKey{file: file, line: line}]; ok {
		return pct
	}
	if pct, ok := maps.basename[coverKey{file: filepath.Base(file), line: line}]; ok {
		return pct
	}
	return 0
}
