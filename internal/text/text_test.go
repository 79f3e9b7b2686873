package text

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCountVowels(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"Hello World", 3},
		{"Programming", 3},
		{"Python", 1},
		{"aeiou", 5},
		{"AEIOU", 5},
		{"bcdfg", 0},
		{"", 0},
		{"The quick brown fox jumps over the lazy dog", 11},
	}
	for _, tt := range tests {
		if got := CountVowels(tt.in); got != tt.want {
			t.Errorf("CountVowels(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John Smith", "Smith, John"},
		{"Anita Rao", "Rao, Anita"},
		{"Mary Jane Watson", "Watson, Mary"},
		{"  Michael   Scott ", "Scott, Michael"},
		{"Cher", "Cher"},
		{" Cher ", " Cher "},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatName(tt.in); got != tt.want {
			t.Errorf("FormatName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCountLinesReader(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"one", 1},
		{"one\n", 1},
		{"one\ntwo", 2},
		{"one\ntwo\n", 2},
		{"\n\n\n", 3},
	}
	for _, tt := range tests {
		got, err := CountLinesReader(strings.NewReader(tt.in))
		if err != nil {
			t.Fatalf("CountLinesReader(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("CountLinesReader(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCountLinesReader_LargeInput(t *testing.T) {
	// Spans several read buffers.
	in := strings.Repeat("abcdefghij\n", 10000)
	got, err := CountLinesReader(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got != 10000 {
		t.Errorf("got %d lines, want 10000", got)
	}
}

func TestCountLines_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0o600); err != nil {
		t.Fatalf("writing sample: %v", err)
	}
	got, err := CountLines(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("CountLines = %d, want 3", got)
	}
}

func TestCountLines_Missing(t *testing.T) {
	got, err := CountLines(filepath.Join(t.TempDir(), "missing.txt"))
	if got != LinesUnavailable {
		t.Errorf("CountLines(missing) = %d, want %d", got, LinesUnavailable)
	}
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("error = %v, want ErrFileNotFound", err)
	}
}

func TestCountLines_Directory(t *testing.T) {
	got, err := CountLines(t.TempDir())
	if got != LinesUnavailable || err == nil {
		t.Errorf("CountLines(dir) = %d, %v; want -1 and an error", got, err)
	}
	if errors.Is(err, ErrFileNotFound) {
		t.Error("a directory is not a missing file")
	}
}
