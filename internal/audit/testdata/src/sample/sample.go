package sample

// Simple has complexity 1.
func Simple() int { return 1 }

// Branchy has complexity 4.
func Branchy(n int) string {
	if n < 0 {
		return "negative"
	}
	if n == 0 {
		return "zero"
	}
	if n%2 == 0 {
		return "even"
	}
	return "odd"
}

// Tangled has complexity 12.
func Tangled(a, b, c int) int {
	total := 0
	for i := 0; i < a; i++ {
		switch {
		case i%15 == 0:
			total += 15
		case i%5 == 0:
			total += 5
		case i%3 == 0:
			total += 3
		default:
			total++
		}
	}
	if b > 0 && c > 0 {
		total += b * c
	}
	if b < 0 || c < 0 {
		total -= b + c
	}
	if total > 100 {
		total = 100
	}
	if total < -100 && a > 0 {
		total = -100
	}
	return total
}
