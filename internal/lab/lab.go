// Package lab contains the demonstration driver for each exercise.
//
// A driver reproduces one classroom script: a banner, a fixed set of
// demonstration cases, then at most one line of interactive input.
// Drivers build a report.LabReport instead of printing, and read
// input through a console.LineSource, so they run the same under a
// terminal, in batch mode and in tests.
package lab

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/unbound-force/labkit/internal/cases"
	"github.com/unbound-force/labkit/internal/config"
	"github.com/unbound-force/labkit/internal/console"
	"github.com/unbound-force/labkit/internal/report"
)

// Env is everything a driver may depend on.
type Env struct {
	// Input supplies the interactive line. Nil means no input.
	Input console.LineSource

	// Logger receives diagnostics. Nil discards them.
	Logger *log.Logger

	// Cases overrides the fixed demonstration inputs. May be nil.
	Cases *cases.Set

	// Config holds run settings. Nil means config.DefaultConfig().
	Config *config.Config

	// WorkDir resolves relative file paths. Empty means the process
	// working directory.
	WorkDir string

	// Progress, when set, is called with the partial report just
	// before the driver prompts for input.
	Progress func(rep *report.LabReport)
}

func (e *Env) input() console.LineSource {
	if e.Input == nil {
		return console.NoInput()
	}
	return e.Input
}

func (e *Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

func (e *Env) config() *config.Config {
	if e.Config == nil {
		return config.DefaultConfig()
	}
	return e.Config
}

func (e *Env) path(p string) string {
	if e.WorkDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(e.WorkDir, p)
}

// interactive reads one line with prompt. Blank or absent input
// skips the step; otherwise handle fills a new "Interactive" section.
// A read error is reported in that section and does not stop the lab.
func (e *Env) interactive(rep *report.LabReport, prompt string, handle func(line string, sec *report.Section)) {
	if e.Progress != nil {
		e.Progress(rep)
	}
	line, ok, err := e.input().ReadLine(prompt)
	if err != nil {
		e.logger().Warn("input unavailable", "lab", rep.Lab, "err", err)
		rep.Text("Interactive:", fmt.Sprintf("Error: %v", err))
		return
	}
	if !ok || strings.TrimSpace(line) == "" {
		e.logger().Debug("interactive step skipped", "lab", rep.Lab)
		return
	}
	handle(line, rep.Text("Interactive:"))
}

// Lab is one registered exercise.
type Lab struct {
	Name    string
	Aliases []string
	Title   string
	Summary string

	// Run executes the demonstration driver.
	Run func(env *Env) (*report.LabReport, error)

	// Eval applies the lab's function to a single input and renders
	// the result. Validation failures come back as text; domain
	// errors come back as errors.
	Eval func(input string) (string, error)
}

// Registry maps lab names and aliases to labs.
type Registry struct {
	primary map[string]Lab
	lookup  map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		primary: make(map[string]Lab),
		lookup:  make(map[string]string),
	}
}

// Register adds l. Names and aliases must be unique.
func (r *Registry) Register(l Lab) error {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return fmt.Errorf("lab registry: empty lab name")
	}
	if l.Run == nil || l.Eval == nil {
		return fmt.Errorf("lab registry: %q is missing a handler", l.Name)
	}
	if _, ok := r.lookup[l.Name]; ok {
		return fmt.Errorf("lab registry: duplicate lab %q", l.Name)
	}

	r.primary[l.Name] = l
	r.lookup[l.Name] = l.Name

	for _, alias := range l.Aliases {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			continue
		}
		if _, ok := r.lookup[alias]; ok {
			return fmt.Errorf("lab registry: duplicate alias %q", alias)
		}
		r.lookup[alias] = l.Name
	}
	return nil
}

// Resolve finds a lab by name or alias.
func (r *Registry) Resolve(name string) (Lab, bool) {
	primary, ok := r.lookup[strings.TrimSpace(name)]
	if !ok {
		return Lab{}, false
	}
	l, ok := r.primary[primary]
	return l, ok
}

// Names returns the primary lab names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.primary))
	for name := range r.primary {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Order lists the labs in classroom order, which Default registers
// and `labkit run` without arguments follows.
var Order = []string{
	"leapyear", "evenodd", "prime", "perfect", "armstrong", "factorial",
	"palindrome", "stats", "vowels", "name", "lines", "cm2in",
}

// Default returns a registry holding every lab.
func Default() *Registry {
	r := NewRegistry()
	for _, l := range []Lab{
		leapYearLab(), evenOddLab(), primeLab(), perfectLab(),
		armstrongLab(), factorialLab(), palindromeLab(), statsLab(),
		vowelsLab(), nameLab(), linesLab(), cmToInchesLab(),
	} {
		if err := r.Register(l); err != nil {
			panic(err)
		}
	}
	return r
}
