package numeric

import "fmt"

// IsLeapYear reports whether year is a leap year under the Gregorian
// rule.
func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	case year%4 == 0:
		return true
	default:
		return false
	}
}

// LeapYearMessage renders the verdict for year as a sentence.
func LeapYearMessage(year int) string {
	if IsLeapYear(year) {
		return fmt.Sprintf("%d is a leap year", year)
	}
	return fmt.Sprintf("%d is not a leap year", year)
}

// LeapYearsInRange returns the leap years in [start, end], ascending.
// The result is empty when start > end.
func LeapYearsInRange(start, end int) []int {
	years := []int{}
	for y := start; y <= end; y++ {
		if IsLeapYear(y) {
			years = append(years, y)
		}
		if y == end {
			break
		}
	}
	return years
}
