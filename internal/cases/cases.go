// Package cases loads HCL files that replace the fixed demonstration
// inputs of individual labs.
//
// A cases file holds one block per lab:
//
//	lab "prime" {
//	  numbers = [2, 17, 25]
//	}
//
//	lab "leapyear" {
//	  numbers = [current_year, current_year + 1]
//	}
//
// The variable current_year is available in every expression.
package cases

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

// Lab is the set of overrides for one lab. Each lab reads the list
// that matches its input kind.
type Lab struct {
	Name    string    `hcl:"name,label"`
	Numbers []int     `hcl:"numbers,optional"`
	Values  []float64 `hcl:"values,optional"`
	Texts   []string  `hcl:"texts,optional"`
}

type file struct {
	Labs []Lab `hcl:"lab,block"`
}

// Set indexes overrides by lab name. The zero value and a nil *Set
// hold no overrides.
type Set struct {
	labs map[string]Lab
}

// Load reads and decodes the cases file at path.
func Load(path string) (*Set, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cases file %s: %w", path, err)
	}
	return Parse(path, src, time.Now())
}

// Parse decodes src. filename must end in .hcl (or .json for the
// JSON syntax). now supplies current_year.
func Parse(filename string, src []byte, now time.Time) (*Set, error) {
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"current_year": cty.NumberIntVal(int64(now.Year())),
		},
	}

	var f file
	if err := hclsimple.Decode(filename, src, ctx, &f); err != nil {
		return nil, fmt.Errorf("decoding cases file %s: %w", filename, err)
	}

	set := &Set{labs: make(map[string]Lab, len(f.Labs))}
	for _, l := range f.Labs {
		if _, dup := set.labs[l.Name]; dup {
			return nil, fmt.Errorf("cases file %s: duplicate lab %q", filename, l.Name)
		}
		set.labs[l.Name] = l
	}
	return set, nil
}

// Names returns the labs with overrides, sorted.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.labs))
	for n := range s.labs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Numbers returns the integer overrides for lab, or def.
func (s *Set) Numbers(lab string, def []int) []int {
	if l, ok := s.lookup(lab); ok && l.Numbers != nil {
		return l.Numbers
	}
	return def
}

// Values returns the decimal overrides for lab, or def.
func (s *Set) Values(lab string, def []float64) []float64 {
	if l, ok := s.lookup(lab); ok && l.Values != nil {
		return l.Values
	}
	return def
}

// Texts returns the string overrides for lab, or def.
func (s *Set) Texts(lab string, def []string) []string {
	if l, ok := s.lookup(lab); ok && l.Texts != nil {
		return l.Texts
	}
	return def
}

func (s *Set) lookup(lab string) (Lab, bool) {
	if s == nil || s.labs == nil {
		return Lab{}, false
	}
	l, ok := s.labs[lab]
	return l, ok
}
