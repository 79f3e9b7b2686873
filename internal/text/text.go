// Package text provides the string and file lab utilities: vowel
// counting, name formatting and line counting.
package text

import "strings"

const vowels = "aeiouAEIOU"

// CountVowels returns the number of a, e, i, o and u characters in
// s, ignoring case.
func CountVowels(s string) int {
	count := 0
	for _, r := range s {
		if strings.ContainsRune(vowels, r) {
			count++
		}
	}
	return count
}

// FormatName turns "First [Middle...] Last" into "Last, First".
// Input with fewer than two whitespace-separated tokens is returned
// unchanged.
func FormatName(full string) string {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return full
	}
	return parts[len(parts)-1] + ", " + parts[0]
}
