package interpreter

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// InputSource supplies one line of console input per call. At the end of
// input it returns io.EOF.
type InputSource interface {
	ReadLine() (string, error)
}

// LineReader reads newline-terminated lines from an io.Reader.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r. A nil reader behaves as empty input.
func NewLineReader(r io.Reader) *LineReader {
	if r == nil {
		r = strings.NewReader("")
	}
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its terminator. A final line with no
// trailing newline is returned before io.EOF.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Lines is a canned InputSource, mostly useful in tests.
type Lines []string

// ReadLine pops the first remaining line.
func (l *Lines) ReadLine() (string, error) {
	if len(*l) == 0 {
		return "", io.EOF
	}
	line := (*l)[0]
	*l = (*l)[1:]
	return line, nil
}
