package text

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// LinesUnavailable is returned by CountLines alongside an error when
// the file could not be read.
const LinesUnavailable = -1

// ErrFileNotFound is wrapped by CountLines when the path does not
// exist.
var ErrFileNotFound = errors.New("file not found")

// CountLines counts the newline-delimited records in the file at
// path. A final line without a trailing newline still counts.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LinesUnavailable, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return LinesUnavailable, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	n, err := CountLinesReader(f)
	if err != nil {
		return LinesUnavailable, fmt.Errorf("reading %s: %w", path, err)
	}
	return n, nil
}

// CountLinesReader counts newline-delimited records read from r.
func CountLinesReader(r io.Reader) (int, error) {
	buf := make([]byte, 32*1024)
	count := 0
	var last byte = '\n'
	for {
		n, err := r.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	if last != '\n' {
		count++
	}
	return count, nil
}
