package scratch

func Hidden(n int) bool {
	return n > 0
}
