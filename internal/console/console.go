// Package console abstracts the single line of interactive input each
// lab reads, so drivers can be exercised without a terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineSource produces one line of user input per call. ok is false
// when no input is available (end of input, or input disabled).
type LineSource interface {
	ReadLine(prompt string) (line string, ok bool, err error)
}

// MaxLineLength is the longest line a Prompter accepts.
const MaxLineLength = 64 * 1024

// ErrLineTooLong is returned for a line longer than MaxLineLength.
// The line is consumed, so the next call reads the following line.
var ErrLineTooLong = errors.New("line too long")

// Prompter writes a prompt and reads the reply from a reader.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter returns a Prompter reading from r. Prompts are written
// to w, which may be nil to suppress them.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), out: w}
}

// ReadLine implements LineSource. The trailing newline (and a CR, if
// any) is stripped.
func (p *Prompter) ReadLine(prompt string) (string, bool, error) {
	if p.out != nil && prompt != "" {
		fmt.Fprint(p.out, prompt)
	}

	var (
		buf     []byte
		tooLong bool
		started bool
	)
	for {
		chunk, more, err := p.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if !started {
					return "", false, nil
				}
				break
			}
			return "", false, fmt.Errorf("reading input: %w", err)
		}
		started = true
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > MaxLineLength {
				tooLong, buf = true, nil
			}
		}
		if !more {
			break
		}
	}
	if tooLong {
		return "", false, fmt.Errorf("reading input: %w", ErrLineTooLong)
	}
	return strings.TrimRight(string(buf), "\r"), true, nil
}

// scripted replays a fixed list of lines.
type scripted struct {
	lines []string
}

// Lines returns a LineSource that yields each line in order, then
// reports no input.
func Lines(lines ...string) LineSource {
	return &scripted{lines: lines}
}

func (s *scripted) ReadLine(string) (string, bool, error) {
	if len(s.lines) == 0 {
		return "", false, nil
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, true, nil
}

type none struct{}

// NoInput returns a LineSource that never has input.
func NoInput() LineSource { return none{} }

func (none) ReadLine(string) (string, bool, error) { return "", false, nil }
