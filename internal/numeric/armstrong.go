package numeric

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Armstrong labels.
const (
	ArmstrongYes = "Armstrong Number"
	ArmstrongNo  = "Not an Armstrong Number"
)

// IsArmstrong reports whether |n| equals the sum of its decimal
// digits each raised to the number of digits.
func IsArmstrong(n int) bool {
	_, sum, ok := ArmstrongBreakdown(n)
	return ok && sum == absUint(n)
}

// ArmstrongLabel returns ArmstrongYes or ArmstrongNo for n.
func ArmstrongLabel(n int) string {
	if IsArmstrong(n) {
		return ArmstrongYes
	}
	return ArmstrongNo
}

// ArmstrongBreakdown returns the digit-power terms of |n| (for
// example "1^3 + 5^3 + 3^3") and their sum. ok is false when the sum
// does not fit in a uint64; sum is then meaningless.
func ArmstrongBreakdown(n int) (terms string, sum uint64, ok bool) {
	digits := strconv.FormatUint(absUint(n), 10)
	k := len(digits)

	parts := make([]string, 0, k)
	ok = true
	for _, r := range digits {
		parts = append(parts, fmt.Sprintf("%c^%d", r, k))
		if !ok {
			continue
		}
		p, fits := pow(uint64(r-'0'), k)
		var carry uint64
		sum, carry = bits.Add64(sum, p, 0)
		ok = fits && carry == 0
	}
	return strings.Join(parts, " + "), sum, ok
}

// ArmstrongCalculation renders the breakdown of n as "terms = sum".
func ArmstrongCalculation(n int) string {
	terms, sum, ok := ArmstrongBreakdown(n)
	if !ok {
		return terms + " > " + strconv.FormatUint(math.MaxUint64, 10)
	}
	return fmt.Sprintf("%s = %d", terms, sum)
}

// pow returns base^exp; fits is false if the result overflows.
func pow(base uint64, exp int) (result uint64, fits bool) {
	result = 1
	for ; exp > 0; exp-- {
		hi, lo := bits.Mul64(result, base)
		if hi != 0 {
			return 0, false
		}
		result = lo
	}
	return result, true
}
