package lab

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/unbound-force/labkit/internal/cases"
	"github.com/unbound-force/labkit/internal/config"
	"github.com/unbound-force/labkit/internal/console"
	"github.com/unbound-force/labkit/internal/report"
)

// runLab executes the named lab and returns the report.
func runLab(t *testing.T, name string, env *Env) *report.LabReport {
	t.Helper()
	l, ok := Default().Resolve(name)
	if !ok {
		t.Fatalf("lab %q not registered", name)
	}
	rep, err := l.Run(env)
	if err != nil {
		t.Fatalf("running %s: %v", name, err)
	}
	return rep
}

// section returns the first section whose heading starts with prefix.
func section(t *testing.T, rep *report.LabReport, prefix string) *report.Section {
	t.Helper()
	for _, s := range rep.Sections {
		if strings.HasPrefix(s.Heading, prefix) {
			return s
		}
	}
	t.Fatalf("lab %s has no section %q", rep.Lab, prefix)
	return nil
}

func hasLine(sec *report.Section, want string) bool {
	for _, l := range sec.Lines {
		if l == want {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

func TestDefault_RegistersEveryLabInOrder(t *testing.T) {
	r := Default()
	if got := len(r.Names()); got != len(Order) {
		t.Fatalf("registry has %d labs, Order lists %d", got, len(Order))
	}
	for _, name := range Order {
		l, ok := r.Resolve(name)
		if !ok {
			t.Errorf("lab %q missing from registry", name)
			continue
		}
		if l.Title == "" || l.Summary == "" {
			t.Errorf("lab %q lacks a title or summary", name)
		}
	}
}

func TestRegistry_Aliases(t *testing.T) {
	r := Default()
	l, ok := r.Resolve("leap")
	if !ok || l.Name != "leapyear" {
		t.Errorf("Resolve(\"leap\") = %q, %v; want leapyear", l.Name, ok)
	}
	if _, ok := r.Resolve("nope"); ok {
		t.Error("unknown lab resolved")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	l := leapYearLab()
	if err := r.Register(l); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(l); err == nil {
		t.Error("expected duplicate lab error")
	}

	other := primeLab()
	other.Aliases = []string{"leap"}
	if err := r.Register(other); err == nil {
		t.Error("expected duplicate alias error")
	}

	if err := r.Register(Lab{Name: "broken"}); err == nil {
		t.Error("expected missing handler error")
	}
}

// ---------------------------------------------------------------------------
// Drivers
// ---------------------------------------------------------------------------

func TestAllLabs_RunWithoutInput(t *testing.T) {
	env := &Env{WorkDir: t.TempDir()}
	for _, name := range Order {
		rep := runLab(t, name, env)
		if rep.Lab != name {
			t.Errorf("report lab = %q, want %q", rep.Lab, name)
		}
		if len(rep.Sections) == 0 {
			t.Errorf("lab %s produced no sections", name)
		}
		for _, s := range rep.Sections {
			if s.Heading == "Interactive:" {
				t.Errorf("lab %s ran an interactive step without input", name)
			}
		}
	}
}

func TestLeapYear_Interactive(t *testing.T) {
	rep := runLab(t, "leapyear", &Env{Input: console.Lines("2024")})
	if sec := section(t, rep, "Interactive"); !hasLine(sec, "2024 is a Leap Year!") {
		t.Errorf("interactive lines = %v", sec.Lines)
	}

	rep = runLab(t, "leapyear", &Env{Input: console.Lines("twenty")})
	if sec := section(t, rep, "Interactive"); !hasLine(sec, "Invalid input! Please enter a valid year.") {
		t.Errorf("interactive lines = %v", sec.Lines)
	}
}

func TestLeapYear_UsesConfiguredRange(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Leap.RangeStart, cfg.Leap.RangeEnd = 1896, 1904
	rep := runLab(t, "leapyear", &Env{Config: cfg})
	sec := section(t, rep, "Leap years from 1896 to 1904")
	if !hasLine(sec, "[1896 1904]") {
		t.Errorf("range lines = %v", sec.Lines)
	}
}

func TestBlankInputSkipsInteractiveStep(t *testing.T) {
	rep := runLab(t, "prime", &Env{Input: console.Lines("   ")})
	for _, s := range rep.Sections {
		if s.Heading == "Interactive:" {
			t.Fatal("blank input should skip the interactive step")
		}
	}
}

func TestEvenOdd_InvalidInputsAreReported(t *testing.T) {
	rep := runLab(t, "evenodd", &Env{})
	sec := section(t, rep, "Input Validation Tests")
	for _, row := range sec.Rows {
		if row[1] != "Invalid Input: Please provide a valid integer" {
			t.Errorf("row %v should be invalid", row)
		}
	}
}

func TestPrime_CaseOverrides(t *testing.T) {
	set, err := cases.Parse("cases.hcl", []byte(`lab "prime" { numbers = [17, 25] }`), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	rep := runLab(t, "prime", &Env{Cases: set, Input: console.Lines("1")})

	sec := section(t, rep, "Classification Results")
	if len(sec.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(sec.Rows))
	}
	if sec.Rows[0][2] != "17 is Prime" || sec.Rows[1][2] != "25 is Composite (divisible by 5)" {
		t.Errorf("rows = %v", sec.Rows)
	}
	if s := section(t, rep, "Interactive"); !hasLine(s, "1 is Neither (1 is not considered Prime or Composite)") {
		t.Errorf("interactive lines = %v", s.Lines)
	}
}

func TestPerfect_SearchLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Perfect.SearchLimit = 100
	rep := runLab(t, "perfect", &Env{Config: cfg})
	sec := section(t, rep, "Perfect Numbers up to 100")
	if !hasLine(sec, "Perfect Numbers: [6 28]") {
		t.Errorf("lines = %v", sec.Lines)
	}
}

func TestFactorial_DomainErrorDoesNotAbort(t *testing.T) {
	rep := runLab(t, "factorial", &Env{Input: console.Lines("-1")})
	sec := section(t, rep, "Interactive")
	if !hasLine(sec, "Error: factorial is not defined for negative numbers") {
		t.Errorf("interactive lines = %v", sec.Lines)
	}
	iter := section(t, rep, "Iterative")
	if iter.Rows[2][1] != "120" {
		t.Errorf("factorial(5) row = %v", iter.Rows[2])
	}
}

func TestStats_Interactive(t *testing.T) {
	rep := runLab(t, "stats", &Env{Input: console.Lines("1 2 3 4 5")})
	sec := section(t, rep, "Interactive")
	if !hasLine(sec, "Input List: [1 2 3 4 5]") {
		t.Errorf("interactive lines = %v", sec.Lines)
	}

	rep = runLab(t, "stats", &Env{Input: console.Lines("1 x")})
	sec = section(t, rep, "Interactive")
	if !hasLine(sec, "Error: Invalid input. Please enter only integers separated by spaces.") {
		t.Errorf("interactive lines = %v", sec.Lines)
	}
}

func TestStats_EmptyOverrideReportsError(t *testing.T) {
	set, err := cases.Parse("cases.hcl", []byte(`lab "stats" { texts = ["1 2", ""] }`), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	sec := section(t, runLab(t, "stats", &Env{Cases: set}), "Examples")
	if len(sec.Rows) != 1 || len(sec.Lines) != 1 {
		t.Fatalf("rows = %v, lines = %v", sec.Rows, sec.Lines)
	}
	if !strings.Contains(sec.Lines[0], "cannot be empty") {
		t.Errorf("line = %q", sec.Lines[0])
	}
}

func TestLines_MissingFileIsReportedAndLogged(t *testing.T) {
	var logs bytes.Buffer
	env := &Env{WorkDir: t.TempDir(), Logger: log.New(&logs)}
	rep := runLab(t, "lines", env)

	sec := section(t, rep, "Test 1")
	if !hasLine(sec, "Error: File 'sample.txt' not found.") {
		t.Errorf("lines = %v", sec.Lines)
	}
	if !strings.Contains(logs.String(), "line count unavailable") {
		t.Errorf("expected a warning in the log, got %q", logs.String())
	}
}

func TestLines_CountsSampleAndInteractiveFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sample.txt"), []byte("a\nb\nc\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	rep := runLab(t, "lines", &Env{WorkDir: dir, Input: console.Lines("other.txt")})

	if !hasLine(section(t, rep, "Test 1"), "Number of lines in 'sample.txt': 3") {
		t.Error("sample.txt should have 3 lines")
	}
	if !hasLine(section(t, rep, "Interactive"), "Number of lines in 'other.txt': 1") {
		t.Error("other.txt should have 1 line")
	}
}

func TestName_AndVowels_AndUnits(t *testing.T) {
	rep := runLab(t, "name", &Env{Input: console.Lines("Grace Hopper")})
	if !hasLine(section(t, rep, "Interactive"), "Formatted: Hopper, Grace") {
		t.Error("name not formatted")
	}

	rep = runLab(t, "vowels", &Env{Input: console.Lines("Education")})
	if !hasLine(section(t, rep, "Interactive"), "Number of vowels: 5") {
		t.Error("vowels not counted")
	}

	rep = runLab(t, "cm2in", &Env{Input: console.Lines("254")})
	if !hasLine(section(t, rep, "Interactive"), "254 cm = 100.00 inches") {
		t.Errorf("conversion lines = %v", section(t, rep, "Interactive").Lines)
	}

	rep = runLab(t, "cm2in", &Env{Input: console.Lines("abc")})
	if !hasLine(section(t, rep, "Interactive"), "Please enter a valid number") {
		t.Error("invalid length not reported")
	}
}

type errSource struct{}

func (errSource) ReadLine(string) (string, bool, error) {
	return "", false, errors.New("stdin closed")
}

func TestRun_InputErrorIsReported(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs)
	rep := runLab(t, "palindrome", &Env{Input: errSource{}, Logger: logger})

	sec := section(t, rep, "Interactive:")
	if !hasLine(sec, "Error: stdin closed") {
		t.Errorf("interactive section = %v, want the read error", sec.Lines)
	}
	if !strings.Contains(logs.String(), "input unavailable") {
		t.Errorf("expected a warning in the log, got %q", logs.String())
	}
}

func TestRun_ProgressBeforePrompt(t *testing.T) {
	var seen []int
	env := &Env{
		Input: console.Lines("2024"),
		Progress: func(rep *report.LabReport) {
			seen = append(seen, len(rep.Sections))
		},
	}
	rep := runLab(t, "leapyear", env)

	if len(seen) != 1 {
		t.Fatalf("Progress called %d times, want 1", len(seen))
	}
	if seen[0] == 0 || seen[0] != len(rep.Sections)-1 {
		t.Errorf("Progress saw %d sections, want every section but Interactive (%d)",
			seen[0], len(rep.Sections)-1)
	}
}

// ---------------------------------------------------------------------------
// Eval
// ---------------------------------------------------------------------------

func TestEval(t *testing.T) {
	tests := []struct {
		lab   string
		input string
		want  string
	}{
		{"leapyear", "2000", "2000 is a leap year"},
		{"leapyear", "1900", "1900 is not a leap year"},
		{"evenodd", " 42 ", "42 is Even"},
		{"evenodd", "abc", "Invalid Input: Please provide a valid integer"},
		{"prime", "17", "17 is Prime"},
		{"prime", "x", "Invalid Input: Please provide a valid integer"},
		{"perfect", "6", "6 is a Perfect Number (divisors [1 2 3], sum 6)"},
		{"armstrong", "153", "Armstrong Number"},
		{"palindrome", "-121", "-121: false"},
		{"factorial", "5", "factorial(5) = 120"},
		{"factorial", "abc", "Invalid Input: Please provide a valid integer"},
		{"factorial", "2.5", "Invalid Input: Please provide a valid integer"},
		{"stats", "1 2 3 4 5", "even_sum=6 odd_sum=9 total_sum=15 even_count=2 odd_count=3 total_count=5"},
		{"vowels", "Hello World", `"Hello World" -> 3 vowels`},
		{"name", "John Smith", "Smith, John"},
		{"cm2in", "2.54", "2.54 cm = 1.00 inches"},
	}
	r := Default()
	for _, tt := range tests {
		l, _ := r.Resolve(tt.lab)
		got, err := l.Eval(tt.input)
		if err != nil {
			t.Errorf("%s Eval(%q) error: %v", tt.lab, tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s Eval(%q) = %q, want %q", tt.lab, tt.input, got, tt.want)
		}
	}
}

func TestEval_StrictErrors(t *testing.T) {
	r := Default()
	fact, _ := r.Resolve("factorial")
	if _, err := fact.Eval("-1"); err == nil {
		t.Error("factorial of a negative number should be an error")
	}
	if _, err := fact.Eval("21"); err == nil {
		t.Error("factorial past the uint64 limit should be an error")
	}
	stats, _ := r.Resolve("stats")
	if _, err := stats.Eval("  "); err == nil {
		t.Error("statistics of empty input should be an error")
	}
	lines, _ := r.Resolve("lines")
	got, err := lines.Eval(filepath.Join(t.TempDir(), "missing.txt"))
	if err != nil || !strings.HasPrefix(got, "Error: File") {
		t.Errorf("missing file should be reported, got %q, %v", got, err)
	}
}
