package sample

import "testing"

func TestSimple(t *testing.T) {
	if Simple() != 1 {
		t.Fatal("unexpected")
	}
}
