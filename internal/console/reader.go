// Package console implements the interactive prompt/answer session of the
// grafo binary and the renderers that print query results.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Input errors.
var (
	// ErrInputEnded is returned when the input ends before an answer is read.
	ErrInputEnded = errors.New("console: input ended")

	// ErrNotInteger is returned when a token cannot be parsed as an integer.
	ErrNotInteger = errors.New("console: expected an integer")
)

// Reader reads whitespace-separated integers, printing a prompt before each
// answer when one is given.
type Reader struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewReader returns a Reader over in that writes prompts to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc, out: out}
}

// ReadInt prints prompt (if non-empty) and returns the next integer token.
func (r *Reader) ReadInt(prompt string) (int, error) {
	if prompt != "" {
		if _, err := fmt.Fprint(r.out, prompt); err != nil {
			return 0, err
		}
	}

	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}
		return 0, ErrInputEnded
	}

	tok := r.sc.Text()
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, tok)
	}
	return n, nil
}

// ReadPair reads two integers without prompting.
func (r *Reader) ReadPair() (int, int, error) {
	u, err := r.ReadInt("")
	if err != nil {
		return 0, 0, err
	}
	v, err := r.ReadInt("")
	if err != nil {
		return 0, 0, err
	}
	return u, v, nil
}
