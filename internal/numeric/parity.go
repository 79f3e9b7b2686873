package numeric

import "fmt"

// Parity labels.
const (
	Even = "Even"
	Odd  = "Odd"
)

// ParityResult is the detailed outcome of CheckEvenOddVerbose.
type ParityResult struct {
	// Valid is false when the input could not be parsed.
	Valid bool `json:"valid"`

	// Number is the parsed value. Zero when Valid is false.
	Number int `json:"number"`

	// Classification is Even or Odd; empty when Valid is false.
	Classification string `json:"classification,omitempty"`

	// Message is a one-line summary, or InvalidInputMessage.
	Message string `json:"message"`

	// DivisibleBy2 mirrors Classification == Even.
	DivisibleBy2 bool `json:"divisible_by_2"`

	// Remainder is the non-negative remainder of Number / 2.
	Remainder int `json:"remainder"`
}

// Parity returns Even when n is divisible by two and Odd otherwise.
func Parity(n int) string {
	if n%2 == 0 {
		return Even
	}
	return Odd
}

// IsEven reports whether n is divisible by two.
func IsEven(n int) bool { return n%2 == 0 }

// IsOdd reports whether n is not divisible by two.
func IsOdd(n int) bool { return n%2 != 0 }

// CheckEvenOdd parses input and returns its parity label, or
// InvalidInputMessage when input is not an integer.
func CheckEvenOdd(input string) string {
	n, err := ParseInteger(input)
	if err != nil {
		return InvalidInputMessage
	}
	return Parity(n)
}

// CheckEvenOddVerbose is CheckEvenOdd with the remainder and
// divisibility flag attached.
func CheckEvenOddVerbose(input string) ParityResult {
	n, err := ParseInteger(input)
	if err != nil {
		return ParityResult{Message: InvalidInputMessage}
	}

	rem := n % 2
	if rem < 0 {
		rem = -rem
	}
	class := Parity(n)
	return ParityResult{
		Valid:          true,
		Number:         n,
		Classification: class,
		Message:        fmt.Sprintf("%d is %s", n, class),
		DivisibleBy2:   rem == 0,
		Remainder:      rem,
	}
}
