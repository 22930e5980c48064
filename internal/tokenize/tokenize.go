// Package tokenize splits input text into space-delimited tokens.
package tokenize

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInputUnavailable is returned when the input source cannot be opened.
var ErrInputUnavailable = errors.New("input unavailable")

// maxLine is the longest line the Scanner accepts.
const maxLine = 1 << 20

// Split splits line on the space character. Consecutive spaces yield empty
// tokens; a line that is empty or ends in a space has no trailing empty token.
func Split(line string) []string {
	if line == "" {
		return nil
	}
	tokens := strings.Split(line, " ")
	if tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// Scanner reads tokens line by line from an io.Reader.
type Scanner struct {
	lines   *bufio.Scanner
	pending []string
	token   string
	line    int
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Scanner{lines: lines}
}

// Scan advances to the next token, returning false at end of input or on a
// read error.
func (s *Scanner) Scan() bool {
	for len(s.pending) == 0 {
		if !s.lines.Scan() {
			return false
		}
		s.line++
		s.pending = Split(s.lines.Text())
	}
	s.token, s.pending = s.pending[0], s.pending[1:]
	return true
}

// Token returns the token produced by the last call to Scan.
func (s *Scanner) Token() string {
	return s.token
}

// Line returns the 1-based number of the line the current token came from.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first non-EOF read error.
func (s *Scanner) Err() error {
	return s.lines.Err()
}

// All reads every token from r.
func All(r io.Reader) ([]string, error) {
	var tokens []string
	s := NewScanner(r)
	for s.Scan() {
		tokens = append(tokens, s.Token())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}
	return tokens, nil
}

// Open opens the input file at path.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	return f, nil
}
