package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrompter_ReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("2024\r\nnext\n"), &out)

	line, ok, err := p.ReadLine("Enter a year: ")
	if err != nil || !ok {
		t.Fatalf("ReadLine = %q, %v, %v", line, ok, err)
	}
	if line != "2024" {
		t.Errorf("line = %q, want %q", line, "2024")
	}
	if out.String() != "Enter a year: " {
		t.Errorf("prompt output = %q", out.String())
	}

	line, ok, _ = p.ReadLine("")
	if !ok || line != "next" {
		t.Errorf("second ReadLine = %q, %v", line, ok)
	}

	if _, ok, err := p.ReadLine("again: "); ok || err != nil {
		t.Errorf("ReadLine at EOF = ok %v, err %v; want false, nil", ok, err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestPrompter_ReadError(t *testing.T) {
	p := NewPrompter(failingReader{}, nil)
	_, ok, err := p.ReadLine("x")
	if ok || err == nil {
		t.Errorf("ReadLine = ok %v, err %v; want false and an error", ok, err)
	}
}

func TestPrompter_LineTooLongIsSkipped(t *testing.T) {
	in := "2024\n" + strings.Repeat("a", 70000) + "\nJohn Smith\n"
	p := NewPrompter(strings.NewReader(in), nil)

	if line, ok, err := p.ReadLine(""); err != nil || !ok || line != "2024" {
		t.Fatalf("first ReadLine = %q, %v, %v", line, ok, err)
	}
	if _, ok, err := p.ReadLine(""); ok || !errors.Is(err, ErrLineTooLong) {
		t.Errorf("long ReadLine = ok %v, err %v; want ErrLineTooLong", ok, err)
	}
	if line, ok, err := p.ReadLine(""); err != nil || !ok || line != "John Smith" {
		t.Errorf("ReadLine after long line = %q, %v, %v; want John Smith", line, ok, err)
	}
}

func TestPrompter_LastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("17"), nil)
	if line, ok, err := p.ReadLine(""); err != nil || !ok || line != "17" {
		t.Errorf("ReadLine = %q, %v, %v; want 17", line, ok, err)
	}
}

func TestLines(t *testing.T) {
	src := Lines("a", "b")
	for _, want := range []string{"a", "b"} {
		got, ok, err := src.ReadLine("")
		if err != nil || !ok || got != want {
			t.Fatalf("ReadLine = %q, %v, %v; want %q", got, ok, err, want)
		}
	}
	if _, ok, _ := src.ReadLine(""); ok {
		t.Error("exhausted source should report no input")
	}
}

func TestNoInput(t *testing.T) {
	if _, ok, err := NoInput().ReadLine("prompt"); ok || err != nil {
		t.Errorf("NoInput().ReadLine = %v, %v", ok, err)
	}
}
