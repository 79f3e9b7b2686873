// Package arith holds the arithmetic lab utilities: factorials and
// even/odd aggregate statistics.
package arith

import (
	"errors"
	"fmt"
)

// MaxFactorialInput is the largest n whose factorial fits in a uint64.
const MaxFactorialInput = 20

// Factorial errors.
var (
	ErrNegativeFactorial = errors.New("factorial is not defined for negative numbers")
	ErrFactorialOverflow = errors.New("factorial overflows uint64")
)

func checkFactorialDomain(n int) error {
	if n < 0 {
		return ErrNegativeFactorial
	}
	if n > MaxFactorialInput {
		return fmt.Errorf("%w: %d > %d", ErrFactorialOverflow, n, MaxFactorialInput)
	}
	return nil
}

// Factorial computes n! by multiplying 2..n.
func Factorial(n int) (uint64, error) {
	if err := checkFactorialDomain(n); err != nil {
		return 0, err
	}
	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}
	return result, nil
}

// FactorialRecursive computes n! as n * (n-1)!, with 0! = 1! = 1.
func FactorialRecursive(n int) (uint64, error) {
	if err := checkFactorialDomain(n); err != nil {
		return 0, err
	}
	return factorialRec(uint64(n)), nil
}

func factorialRec(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return n * factorialRec(n-1)
}
