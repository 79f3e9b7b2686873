package lab

import (
	"fmt"
	"strconv"

	"github.com/unbound-force/labkit/internal/numeric"
	"github.com/unbound-force/labkit/internal/report"
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// ---------------------------------------------------------------------------
// leapyear
// ---------------------------------------------------------------------------

func leapYearLab() Lab {
	return Lab{
		Name:    "leapyear",
		Aliases: []string{"leap"},
		Title:   "Leap Year Checker",
		Summary: "Gregorian leap-year rule",
		Run:     runLeapYear,
		Eval: func(input string) (string, error) {
			year, err := numeric.ParseInteger(input)
			if err != nil {
				return "Please enter a valid year (integer)", nil
			}
			return numeric.LeapYearMessage(year), nil
		},
	}
}

func runLeapYear(env *Env) (*report.LabReport, error) {
	rep := report.NewLab("leapyear", "Leap Year Checker")
	cfg := env.config()

	years := env.Cases.Numbers("leapyear",
		[]int{2000, 1900, 2004, 2100, 2024, 2023, 2025, 1996, 2001, 2400})
	sec := rep.Table("Checking individual years:", "Year", "Result", "Message")
	for _, y := range years {
		verdict := "Not a Leap Year"
		if numeric.IsLeapYear(y) {
			verdict = "Leap Year"
		}
		sec.Row(strconv.Itoa(y), verdict, numeric.LeapYearMessage(y))
	}

	start, end := cfg.Leap.RangeStart, cfg.Leap.RangeEnd
	rep.Text(fmt.Sprintf("Leap years from %d to %d:", start, end),
		fmt.Sprint(numeric.LeapYearsInRange(start, end)))

	century := numeric.LeapYearsInRange(2000, 2099)
	rep.Text("Leap years in 21st century (2000-2099):",
		fmt.Sprintf("Total: %d leap years", len(century)),
		fmt.Sprintf("First 10: %v", century[:10]),
		fmt.Sprintf("Last 10: %v", century[len(century)-10:]))

	env.interactive(rep, "Enter a year to check (or press Enter to skip): ",
		func(line string, sec *report.Section) {
			year, err := numeric.ParseInteger(line)
			if err != nil {
				sec.Line("Invalid input! Please enter a valid year.")
				return
			}
			if numeric.IsLeapYear(year) {
				sec.Line(fmt.Sprintf("%d is a Leap Year!", year))
			} else {
				sec.Line(fmt.Sprintf("%d is NOT a Leap Year.", year))
			}
		})
	return rep, nil
}

// ---------------------------------------------------------------------------
// evenodd
// ---------------------------------------------------------------------------

func evenOddLab() Lab {
	return Lab{
		Name:    "evenodd",
		Aliases: []string{"parity"},
		Title:   "EVEN OR ODD CHECKER WITH INPUT VALIDATION",
		Summary: "Even/odd classification with input validation",
		Run:     runEvenOdd,
		Eval: func(input string) (string, error) {
			return numeric.CheckEvenOddVerbose(input).Message, nil
		},
	}
}

func runEvenOdd(env *Env) (*report.LabReport, error) {
	rep := report.NewLab("evenodd", "EVEN OR ODD CHECKER WITH INPUT VALIDATION")

	ex := rep.Text("Examples from User Request:")
	for _, n := range []int{8, 15, 0} {
		ex.Line(fmt.Sprintf("Input: %d -> Output: %s", n, numeric.Parity(n)))
	}

	valid := rep.Table("Test Cases - Valid Inputs:", "Number", "Classification", "Divisible by 2")
	for _, n := range env.Cases.Numbers("evenodd",
		[]int{-10, -5, -1, 0, 1, 2, 3, 5, 10, 100, 999, 1000}) {
		valid.Row(strconv.Itoa(n), numeric.Parity(n), yesNo(numeric.IsEven(n)))
	}

	inv := rep.Table("Input Validation Tests:", "Input", "Result")
	for _, in := range env.Cases.Texts("evenodd", []string{"abc", "12.5", "", "10a", "3.14"}) {
		inv.Row(strconv.Quote(in), numeric.CheckEvenOdd(in))
	}

	conv := rep.Text("String Input Conversion:")
	for _, in := range []string{"8", "15", "  42  ", "-7", "0"} {
		conv.Line(fmt.Sprintf("Input: %q -> Output: %s", in, numeric.CheckEvenOdd(in)))
	}

	bools := rep.Table("Boolean Functions Demo:", "Number", "IsEven", "IsOdd")
	for _, n := range []int{4, 7, 0, -3, 100} {
		bools.Row(strconv.Itoa(n),
			strconv.FormatBool(numeric.IsEven(n)), strconv.FormatBool(numeric.IsOdd(n)))
	}

	env.interactive(rep, "Enter a number to check (or press Enter to skip): ",
		func(line string, sec *report.Section) {
			res := numeric.CheckEvenOddVerbose(line)
			sec.Line(res.Message)
			if res.Valid {
				sec.Line(fmt.Sprintf("Remainder: %d, divisible by 2: %s",
					res.Remainder, yesNo(res.DivisibleBy2)))
			}
		})
	return rep, nil
}

// ---------------------------------------------------------------------------
// prime
// ---------------------------------------------------------------------------

func primeLab() Lab {
	return Lab{
		Name:    "prime",
		Aliases: []string{"classify"},
		Title:   "NUMBER CLASSIFICATION: Prime, Composite, or Neither",
		Summary: "Prime/composite classification by trial division",
		Run:     runPrime,
		Eval: func(input string) (string, error) {
			c, err := numeric.ClassifyInput(input)
			if err != nil {
				return numeric.InvalidInputMessage, nil
			}
			return c.Message(), nil
		},
	}
}

func runPrime(env *Env) (*report.LabReport, error) {
	rep := report.NewLab("prime", "NUMBER CLASSIFICATION: Prime, Composite, or Neither")

	tbl := rep.Table("Classification Results:", "Number", "Class", "Classification")
	for _, n := range env.Cases.Numbers("prime",
		[]int{-5, 0, 1, 2, 3, 4, 5, 10, 11, 15, 17, 20, 29, 30, 97, 100}) {
		c := numeric.Classify(n)
		tbl.Row(strconv.Itoa(n), string(c.Class), c.Message())
	}

	perf := rep.Text("Performance Test - Large Numbers:")
	for _, n := range []int{1000000007, 1000000008, 1000000009, 9999991} {
		perf.Line(numeric.Classify(n).Message())
	}

	val := rep.Text("Input Validation Test:")
	for _, in := range env.Cases.Texts("prime", []string{"abc", "3.14", ""}) {
		msg := numeric.InvalidInputMessage
		if c, err := numeric.ClassifyInput(in); err == nil {
			msg = c.Message()
		}
		val.Line(fmt.Sprintf("Input: %q -> %s", in, msg))
	}

	bools := rep.Text("Prime Check (Boolean Output):")
	for _, n := range []int{2, 17, 25, 97} {
		bools.Line(fmt.Sprintf("IsPrime(%d): %t", n, numeric.IsPrime(n)))
	}

	env.interactive(rep, "Enter a number to classify (or press Enter to skip): ",
		func(line string, sec *report.Section) {
			c, err := numeric.ClassifyInput(line)
			if err != nil {
				sec.Line(numeric.InvalidInputMessage)
				return
			}
			sec.Line(c.Message())
		})
	return rep, nil
}

// ---------------------------------------------------------------------------
// perfect
// ---------------------------------------------------------------------------

func perfectLab() Lab {
	return Lab{
		Name:    "perfect",
		Title:   "PERFECT NUMBER CHECKER",
		Summary: "Perfect numbers via proper divisor sums",
		Run:     runPerfect,
		Eval: func(input string) (string, error) {
			n, err := numeric.ParseInteger(input)
			if err != nil {
				return numeric.InvalidInputMessage, nil
			}
			info := numeric.PerfectInfo(n)
			return fmt.Sprintf("%s (divisors %v, sum %d)", info.Message, info.Divisors, info.Sum), nil
		},
	}
}

func perfectStatus(perfect bool) string {
	if perfect {
		return "PERFECT"
	}
	return "NOT PERFECT"
}

func runPerfect(env *Env) (*report.LabReport, error) {
	rep := report.NewLab("perfect", "PERFECT NUMBER CHECKER")

	tbl := rep.Table("Detailed Information for Test Numbers:", "Number", "Status", "Divisors")
	for _, n := range env.Cases.Numbers("perfect", []int{1, 5, 6, 10, 28, 100, 496, 500, 8128}) {
		info := numeric.PerfectInfo(n)
		divs := fmt.Sprint(info.Divisors)
		if len(divs) > 47 {
			divs = divs[:44] + "..."
		}
		tbl.Row(strconv.Itoa(n), perfectStatus(info.IsPerfect), divs)
	}

	detail := rep.Text("DETAILED EXAMPLES:")
	for _, n := range []int{6, 28, 496} {
		info := numeric.PerfectInfo(n)
		terms := make([]string, len(info.Divisors))
		for i, d := range info.Divisors {
			terms[i] = strconv.Itoa(d)
		}
		detail.Line(fmt.Sprintf("Number: %d", n))
		detail.Line(fmt.Sprintf("Divisors (excluding %d): %v", n, info.Divisors))
		detail.Line(fmt.Sprintf("Sum: %s = %d", joinPlus(terms), info.Sum))
		detail.Line(fmt.Sprintf("Result: %s", info.Message))
	}

	limit := env.config().Perfect.SearchLimit
	found := numeric.FindPerfectNumbers(limit)
	rep.Text(fmt.Sprintf("Perfect Numbers up to %d:", limit),
		fmt.Sprintf("Perfect Numbers: %v", found),
		fmt.Sprintf("Total found: %d", len(found)))

	large := rep.Text("Performance Test - Large Numbers:")
	for _, n := range []int{100000, 8128, 1000000} {
		large.Line(fmt.Sprintf("%d: %s", n, perfectStatus(numeric.IsPerfect(n))))
	}

	env.interactive(rep, "Enter a number to check (or press Enter to skip): ",
		func(line string, sec *report.Section) {
			n, err := numeric.ParseInteger(line)
			if err != nil {
				sec.Line(numeric.InvalidInputMessage)
				return
			}
			info := numeric.PerfectInfo(n)
			sec.Line(info.Message)
			if len(info.Divisors) > 0 {
				sec.Line(fmt.Sprintf("Divisors: %v (sum %d)", info.Divisors, info.Sum))
			}
		})
	return rep, nil
}

// ---------------------------------------------------------------------------
// armstrong
// ---------------------------------------------------------------------------

func armstrongLab() Lab {
	return Lab{
		Name:    "armstrong",
		Aliases: []string{"narcissistic"},
		Title:   "Armstrong Number Checker",
		Summary: "Sum of digits raised to the digit count",
		Run:     runArmstrong,
		Eval: func(input string) (string, error) {
			n, err := numeric.ParseInteger(input)
			if err != nil {
				return numeric.InvalidInputMessage, nil
			}
			return numeric.ArmstrongLabel(n), nil
		},
	}
}

func runArmstrong(env *Env) (*report.LabReport, error) {
	rep := report.NewLab("armstrong", "Armstrong Number Checker")

	tbl := rep.Table("Test Cases:", "Number", "Result", "Calculation")
	for _, n := range env.Cases.Numbers("armstrong", []int{153, 370, 371, 407, 123, 100, 9, 10, 1, 0}) {
		tbl.Row(strconv.Itoa(n), numeric.ArmstrongLabel(n), numeric.ArmstrongCalculation(n))
	}

	ex := rep.Text("Examples from user request:")
	for _, n := range []int{153, 370, 123} {
		ex.Line(fmt.Sprintf("Input: %d -> Output: %s", n, numeric.ArmstrongLabel(n)))
	}

	env.interactive(rep, "Enter a number to check (or press Enter to skip): ",
		func(line string, sec *report.Section) {
			n, err := numeric.ParseInteger(line)
			if err != nil {
				sec.Line(numeric.InvalidInputMessage)
				return
			}
			sec.Line(fmt.Sprintf("%d: %s (%s)", n, numeric.ArmstrongLabel(n), numeric.ArmstrongCalculation(n)))
		})
	return rep, nil
}

// ---------------------------------------------------------------------------
// palindrome
// ---------------------------------------------------------------------------

func palindromeLab() Lab {
	return Lab{
		Name:    "palindrome",
		Title:   "Palindrome Number Checker",
		Summary: "Numbers that read the same reversed",
		Run:     runPalindrome,
		Eval: func(input string) (string, error) {
			n, err := numeric.ParseInteger(input)
			if err != nil {
				return numeric.InvalidInputMessage, nil
			}
			return fmt.Sprintf("%d: %t", n, numeric.IsPalindrome(n)), nil
		},
	}
}

func runPalindrome(env *Env) (*report.LabReport, error) {
	rep := report.NewLab("palindrome", "Palindrome Number Checker")

	tbl := rep.Table("Test Cases:", "Number", "Palindrome")
	for _, n := range env.Cases.Numbers("palindrome", []int{121, 123, 10, 0, -121, 1001, 1234, 9, 12321}) {
		tbl.Row(strconv.Itoa(n), strconv.FormatBool(numeric.IsPalindrome(n)))
	}

	env.interactive(rep, "Enter a number to check (or press Enter to skip): ",
		func(line string, sec *report.Section) {
			n, err := numeric.ParseInteger(line)
			if err != nil {
				sec.Line(numeric.InvalidInputMessage)
				return
			}
			sec.Line(fmt.Sprintf("%d: %t", n, numeric.IsPalindrome(n)))
		})
	return rep, nil
}
