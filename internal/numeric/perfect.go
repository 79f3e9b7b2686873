package numeric

import (
	"fmt"
	"sort"
)

// PerfectReport is the diagnostic view of a perfect-number check.
type PerfectReport struct {
	Number    int    `json:"number"`
	IsPerfect bool   `json:"is_perfect"`
	Divisors  []int  `json:"divisors"`
	Sum       int    `json:"sum_of_divisors"`
	Message   string `json:"message"`
}

// IsPerfect reports whether n equals the sum of its proper divisors.
// Values below 2 are never perfect.
func IsPerfect(n int) bool {
	if n <= 1 {
		return false
	}
	sum := 1
	for i := 2; i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		sum += i
		if j := n / i; j != i {
			sum += j
		}
		if sum > n {
			return false
		}
	}
	return sum == n
}

// PerfectInfo lists the proper divisors of n, their sum and the
// verdict.
func PerfectInfo(n int) PerfectReport {
	if n <= 0 {
		return PerfectReport{
			Number:   n,
			Divisors: []int{},
			Message:  "Perfect numbers must be positive",
		}
	}

	divisors := properDivisors(n)
	sum := 0
	for _, d := range divisors {
		sum += d
	}
	perfect := sum == n

	verdict := "NOT a Perfect Number"
	if perfect {
		verdict = "a Perfect Number"
	}
	return PerfectReport{
		Number:    n,
		IsPerfect: perfect,
		Divisors:  divisors,
		Sum:       sum,
		Message:   fmt.Sprintf("%d is %s", n, verdict),
	}
}

// FindPerfectNumbers returns the perfect numbers in [1, limit].
func FindPerfectNumbers(limit int) []int {
	found := []int{}
	for n := 2; n <= limit; n++ {
		if IsPerfect(n) {
			found = append(found, n)
		}
	}
	return found
}

// properDivisors returns the divisors of n other than n, ascending.
func properDivisors(n int) []int {
	if n == 1 {
		return []int{}
	}
	divisors := []int{1}
	for i := 2; i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		divisors = append(divisors, i)
		if j := n / i; j != i {
			divisors = append(divisors, j)
		}
	}
	sort.Ints(divisors)
	return divisors
}
