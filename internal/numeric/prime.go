package numeric

import "fmt"

// Class is the prime/composite verdict for an integer.
type Class string

// Prime classification constants.
const (
	Prime     Class = "Prime"
	Composite Class = "Composite"
	Neither   Class = "Neither"
)

// Classification is the result of Classify.
type Classification struct {
	Number int   `json:"number"`
	Class  Class `json:"class"`

	// Divisor is the smallest divisor found for a Composite number.
	Divisor int `json:"divisor,omitempty"`

	// Reason explains a Neither verdict.
	Reason string `json:"reason,omitempty"`
}

// Message renders the classification as a sentence, e.g.
// "15 is Composite (divisible by 3)".
func (c Classification) Message() string {
	switch {
	case c.Class == Composite:
		return fmt.Sprintf("%d is Composite (divisible by %d)", c.Number, c.Divisor)
	case c.Reason != "":
		return fmt.Sprintf("%d is %s (%s)", c.Number, c.Class, c.Reason)
	default:
		return fmt.Sprintf("%d is %s", c.Number, c.Class)
	}
}

// Classify labels n as Prime, Composite or Neither. Trial division
// stops at the integer square root and only tests odd divisors.
func Classify(n int) Classification {
	c := Classification{Number: n, Class: Neither}
	switch {
	case n < 0:
		c.Reason = "negative numbers are not classified as Prime or Composite"
		return c
	case n == 0:
		c.Reason = "0 is not classified as Prime or Composite"
		return c
	case n == 1:
		c.Reason = "1 is not considered Prime or Composite"
		return c
	case n == 2:
		c.Class = Prime
		return c
	case n%2 == 0:
		c.Class = Composite
		c.Divisor = 2
		return c
	}

	// i <= n/i avoids overflowing i*i near math.MaxInt.
	for i := 3; i <= n/i; i += 2 {
		if n%i == 0 {
			c.Class = Composite
			c.Divisor = i
			return c
		}
	}
	c.Class = Prime
	return c
}

// ClassifyInput parses input and classifies it. Malformed input
// returns an error wrapping ErrInvalidInput.
func ClassifyInput(input string) (Classification, error) {
	n, err := ParseInteger(input)
	if err != nil {
		return Classification{}, err
	}
	return Classify(n), nil
}

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	return Classify(n).Class == Prime
}
