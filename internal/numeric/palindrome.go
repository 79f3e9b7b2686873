package numeric

import "strconv"

// IsPalindrome reports whether the decimal digits of n read the same
// in both directions. Negative numbers are never palindromes.
func IsPalindrome(n int) bool {
	if n < 0 {
		return false
	}
	s := strconv.Itoa(n)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}
