package lab

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/unbound-force/labkit/internal/arith"
	"github.com/unbound-force/labkit/internal/numeric"
	"github.com/unbound-force/labkit/internal/report"
	"github.com/unbound-force/labkit/internal/text"
	"github.com/unbound-force/labkit/internal/units"
)

func joinPlus(terms []string) string { return strings.Join(terms, " + ") }

// ---------------------------------------------------------------------------
// factorial
// ---------------------------------------------------------------------------

func factorialLab() Lab {
	return Lab{
		Name:    "factorial",
		Aliases: []string{"fact"},
		Title:   "Factorial Calculation",
		Summary: "Iterative and recursive n!",
		Run:     runFactorial,
		Eval: func(input string) (string, error) {
			n, err := numeric.ParseInteger(input)
			if err != nil {
				return numeric.InvalidInputMessage, nil
			}
			f, err := arith.Factorial(n)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("factorial(%d) = %d", n, f), nil
		},
	}
}

func runFactorial(env *Env) (*report.LabReport, error) {
	rep := report.NewLab("factorial", "Factorial Calculation")
	inputs := env.Cases.Numbers("factorial", []int{0, 1, 5, 10, 15})

	for _, v := range []struct {
		heading string
		fn      func(int) (uint64, error)
		label   string
	}{
		{"Iterative Approach:", arith.Factorial, "factorial"},
		{"Recursive Approach:", arith.FactorialRecursive, "factorial_recursive"},
	} {
		tbl := rep.Table(v.heading, "n", v.label+"(n)")
		for _, n := range inputs {
			f, err := v.fn(n)
			if err != nil {
				tbl.Row(strconv.Itoa(n), "error: "+err.Error())
				continue
			}
			tbl.Row(strconv.Itoa(n), strconv.FormatUint(f, 10))
		}
	}

	errs := rep.Text("Domain Errors:")
	for _, n := range []int{-1, arith.MaxFactorialInput + 1} {
		if _, err := arith.Factorial(n); err != nil {
			errs.Line(fmt.Sprintf("factorial(%d): %v", n, err))
		}
	}

	five, _ := arith.Factorial(5)
	rep.Text("Example:", fmt.Sprintf("factorial(5) = %d", five))

	env.interactive(rep, "Enter a non-negative integer (or press Enter to skip): ",
		func(line string, sec *report.Section) {
			n, err := numeric.ParseInteger(line)
			if err != nil {
				sec.Line(numeric.InvalidInputMessage)
				return
			}
			f, err := arith.Factorial(n)
			if err != nil {
				sec.Line(fmt.Sprintf("Error: %v", err))
				return
			}
			sec.Line(fmt.Sprintf("factorial(%d) = %d", n, f))
		})
	return rep, nil
}

// ---------------------------------------------------------------------------
// stats
// ---------------------------------------------------------------------------

func statsLab() Lab {
	return Lab{
		Name:    "stats",
		Aliases: []string{"evensum"},
		Title:   "Even and Odd Statistics Calculator",
		Summary: "Sums and counts of even and odd numbers",
		Run:     runStats,
		Eval: func(input string) (string, error) {
			numbers, err := arith.ParseNumbers(input)
			if err != nil {
				return "", err
			}
			s, err := arith.EvenOddStatistics(numbers)
			if err != nil {
				return "", err
			}
			return formatStats(s), nil
		},
	}
}

func formatStats(s arith.Statistics) string {
	return fmt.Sprintf("even_sum=%d odd_sum=%d total_sum=%d even_count=%d odd_count=%d total_count=%d",
		s.EvenSum, s.OddSum, s.TotalSum, s.EvenCount, s.OddCount, s.TotalCount)
}

func statsRow(sec *report.Section, label string, s arith.Statistics) {
	sec.Row(label,
		strconv.Itoa(s.EvenSum), strconv.Itoa(s.EvenCount),
		strconv.Itoa(s.OddSum), strconv.Itoa(s.OddCount),
		strconv.Itoa(s.TotalSum), strconv.Itoa(s.TotalCount))
}

var statsColumns = []string{"Input", "Even Sum", "Even Count", "Odd Sum", "Odd Count", "Total Sum", "Total Count"}

func runStats(env *Env) (*report.LabReport, error) {
	rep := report.NewLab("stats", "Even and Odd Statistics Calculator")

	lists := env.Cases.Texts("stats", []string{
		"1 2 3 4 5 6 7 8 9 10",
		"15 22 33 44 55 66 77 88 99",
		"-5 -4 -3 -2 -1 0 1 2 3 4 5",
	})
	tbl := rep.Table("Examples:", statsColumns...)
	for _, in := range lists {
		numbers, err := arith.ParseNumbers(in)
		if err == nil {
			var s arith.Statistics
			if s, err = arith.EvenOddStatistics(numbers); err == nil {
				statsRow(tbl, fmt.Sprint(numbers), s)
				continue
			}
		}
		tbl.Line(fmt.Sprintf("Error for %q: %v", in, err))
	}

	rng := rep.Table("Range-Based (1-20):", statsColumns...)
	if s, err := arith.StatisticsForRange(1, 20); err == nil {
		statsRow(rng, "1..20", s)
	}

	errs := rep.Text("Error Handling:")
	if _, err := arith.EvenOddStatistics([]int{}); err != nil {
		errs.Line(fmt.Sprintf("empty list: %v", err))
	}
	if _, err := arith.StatisticsForRange(10, 1); err != nil {
		errs.Line(fmt.Sprintf("range 10..1: %v", err))
	}

	env.interactive(rep, "Enter numbers separated by spaces (press Enter to skip): ",
		func(line string, sec *report.Section) {
			numbers, err := arith.ParseNumbers(line)
			if err != nil {
				sec.Line("Error: Invalid input. Please enter only integers separated by spaces.")
				sec.Line(fmt.Sprintf("Details: %v", err))
				return
			}
			s, err := arith.EvenOddStatistics(numbers)
			if err != nil {
				sec.Line(fmt.Sprintf("Error: %v", err))
				return
			}
			sec.Line(fmt.Sprintf("Input List: %v", numbers))
			sec.Line(fmt.Sprintf("Even Sum: %10d (Count: %d)", s.EvenSum, s.EvenCount))
			sec.Line(fmt.Sprintf("Odd Sum:  %10d (Count: %d)", s.OddSum, s.OddCount))
			sec.Line(fmt.Sprintf("Total Sum: %9d (Total: %d numbers)", s.TotalSum, s.TotalCount))
		})
	return rep, nil
}

// ---------------------------------------------------------------------------
// vowels
// ---------------------------------------------------------------------------

func vowelsLab() Lab {
	return Lab{
		Name:    "vowels",
		Title:   "Vowel Counter",
		Summary: "Case-insensitive vowel count",
		Run:     runVowels,
		Eval: func(input string) (string, error) {
			return fmt.Sprintf("%q -> %d vowels", input, text.CountVowels(input)), nil
		},
	}
}

func runVowels(env *Env) (*report.LabReport, error) {
	rep := report.NewLab("vowels", "Vowel Counter")

	tbl := rep.Table("Test Cases:", "Text", "Vowels")
	for _, s := range env.Cases.Texts("vowels", []string{
		"Hello World",
		"Programming",
		"Python",
		"aeiou",
		"bcdfg",
		"The quick brown fox jumps over the lazy dog",
	}) {
		tbl.Row(strconv.Quote(s), strconv.Itoa(text.CountVowels(s)))
	}

	env.interactive(rep, "Enter a string: ",
		func(line string, sec *report.Section) {
			sec.Line(fmt.Sprintf("Number of vowels: %d", text.CountVowels(line)))
		})
	return rep, nil
}

// ---------------------------------------------------------------------------
// name
// ---------------------------------------------------------------------------

func nameLab() Lab {
	return Lab{
		Name:    "name",
		Aliases: []string{"formatname"},
		Title:   "Name Formatter - 'First Last' to 'Last, First'",
		Summary: "Reorders a full name as Last, First",
		Run:     runName,
		Eval: func(input string) (string, error) {
			return text.FormatName(input), nil
		},
	}
}

func runName(env *Env) (*report.LabReport, error) {
	rep := report.NewLab("name", "Name Formatter - 'First Last' to 'Last, First'")

	tbl := rep.Table("Test Cases:", "Input", "Formatted")
	for _, n := range env.Cases.Texts("name", []string{
		"John Smith",
		"Anita Rao",
		"Mary Jane Watson",
		"Michael Scott",
	}) {
		tbl.Row(strconv.Quote(n), strconv.Quote(text.FormatName(n)))
	}

	env.interactive(rep, "Enter a full name: ",
		func(line string, sec *report.Section) {
			sec.Line("Formatted: " + text.FormatName(line))
		})
	return rep, nil
}

// ---------------------------------------------------------------------------
// lines
// ---------------------------------------------------------------------------

func linesLab() Lab {
	return Lab{
		Name:    "lines",
		Aliases: []string{"wc"},
		Title:   "Text File Line Counter",
		Summary: "Counts lines in a text file",
		Run:     runLines,
		Eval: func(input string) (string, error) {
			return describeLineCount(strings.TrimSpace(input), strings.TrimSpace(input)), nil
		},
	}
}

// describeLineCount counts lines in path and renders the outcome,
// using name in messages.
func describeLineCount(name, path string) string {
	n, err := text.CountLines(path)
	if err == nil {
		return fmt.Sprintf("Number of lines in '%s': %d", name, n)
	}
	if errors.Is(err, text.ErrFileNotFound) {
		return fmt.Sprintf("Error: File '%s' not found.", name)
	}
	return fmt.Sprintf("Error reading file: %v", err)
}

func (e *Env) countLines(sec *report.Section, name string) {
	path := e.path(name)
	msg := describeLineCount(name, path)
	if strings.HasPrefix(msg, "Error") {
		e.logger().Warn("line count unavailable", "file", path)
	}
	sec.Line(msg)
}

func runLines(env *Env) (*report.LabReport, error) {
	rep := report.NewLab("lines", "Text File Line Counter")

	files := env.Cases.Texts("lines", []string{env.config().Lines.SampleFile})
	for i, f := range files {
		env.countLines(rep.Text(fmt.Sprintf("Test %d: Using %s", i+1, f)), f)
	}

	env.interactive(rep, "Enter another filename to count (or press Enter to skip): ",
		func(line string, sec *report.Section) {
			env.countLines(sec, strings.TrimSpace(line))
		})
	return rep, nil
}

// ---------------------------------------------------------------------------
// cm2in
// ---------------------------------------------------------------------------

func cmToInchesLab() Lab {
	return Lab{
		Name:    "cm2in",
		Aliases: []string{"units"},
		Title:   "Centimeters to Inches Converter",
		Summary: "Divides by 2.54",
		Run:     runCMToInches,
		Eval: func(input string) (string, error) {
			cm, err := units.ParseLength(input)
			if err != nil {
				return "Please enter a valid number", nil
			}
			return formatConversion(cm), nil
		},
	}
}

func formatConversion(cm float64) string {
	return fmt.Sprintf("%s cm = %.2f inches",
		strconv.FormatFloat(cm, 'f', -1, 64), units.CMToInches(cm))
}

func runCMToInches(env *Env) (*report.LabReport, error) {
	rep := report.NewLab("cm2in", "Centimeters to Inches Converter")

	tbl := rep.Table("Test Cases:", "Centimeters", "Inches")
	for _, cm := range env.Cases.Values("cm2in", []float64{10, 25, 50, 100, 2.54}) {
		tbl.Row(strconv.FormatFloat(cm, 'f', -1, 64), fmt.Sprintf("%.2f", units.CMToInches(cm)))
	}

	env.interactive(rep, "Enter length in centimeters: ",
		func(line string, sec *report.Section) {
			cm, err := units.ParseLength(line)
			if err != nil {
				sec.Line("Please enter a valid number")
				return
			}
			sec.Line(formatConversion(cm))
		})
	return rep, nil
}
