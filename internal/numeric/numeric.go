// Package numeric implements the integer predicates used by the lab
// exercises: leap years, parity, prime classification, perfect and
// Armstrong numbers, and numeric palindromes.
//
// Every predicate takes a typed integer. Functions that accept raw
// console text go through ParseInteger first and report malformed
// input as a value rather than a panic.
package numeric

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// InvalidInputMessage is the label returned by the validating
// classifiers when the input is not an integer.
const InvalidInputMessage = "Invalid Input: Please provide a valid integer"

// ErrInvalidInput is wrapped by ParseInteger when the input cannot be
// read as a base-10 integer.
var ErrInvalidInput = errors.New("invalid integer input")

// ParseInteger trims surrounding whitespace and parses the remainder
// as a base-10 integer.
func ParseInteger(input string) (int, error) {
	s := strings.TrimSpace(input)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, input)
	}
	return n, nil
}

// absUint returns |n| without overflowing on math.MinInt.
func absUint(n int) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}
