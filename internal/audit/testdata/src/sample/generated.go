// Code generated by hand for audit tests. DO NOT EDIT.

package sample

func Generated(n int) int {
	if n > 0 {
		return n
	}
	return 0
}
