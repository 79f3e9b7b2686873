package arith

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Statistics errors.
var (
	ErrNilInput     = errors.New("input cannot be nil")
	ErrEmptyInput   = errors.New("input collection cannot be empty")
	ErrInvalidRange = errors.New("start must be less than or equal to end")
)

// Statistics aggregates the even and odd members of a sequence.
type Statistics struct {
	EvenSum    int `json:"even_sum"`
	OddSum     int `json:"odd_sum"`
	TotalSum   int `json:"total_sum"`
	EvenCount  int `json:"even_count"`
	OddCount   int `json:"odd_count"`
	TotalCount int `json:"total_count"`
}

// EvenOddStatistics sums and counts the even and odd elements of
// numbers. A nil slice returns ErrNilInput and an empty one
// ErrEmptyInput.
func EvenOddStatistics(numbers []int) (Statistics, error) {
	if numbers == nil {
		return Statistics{}, ErrNilInput
	}
	if len(numbers) == 0 {
		return Statistics{}, ErrEmptyInput
	}

	var s Statistics
	for _, n := range numbers {
		if n%2 == 0 {
			s.EvenSum += n
			s.EvenCount++
		} else {
			s.OddSum += n
			s.OddCount++
		}
	}
	s.TotalSum = s.EvenSum + s.OddSum
	s.TotalCount = len(numbers)
	return s, nil
}

// StatisticsForRange computes EvenOddStatistics over the inclusive
// integer range [start, end].
func StatisticsForRange(start, end int) (Statistics, error) {
	if start > end {
		return Statistics{}, fmt.Errorf("%w: %d > %d", ErrInvalidRange, start, end)
	}
	numbers := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		numbers = append(numbers, n)
		if n == end {
			break
		}
	}
	return EvenOddStatistics(numbers)
}

// ParseNumbers reads whitespace-separated integers.
func ParseNumbers(input string) ([]int, error) {
	fields := strings.Fields(input)
	numbers := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
