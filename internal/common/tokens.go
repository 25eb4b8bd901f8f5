package common

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// TokenReader reads whitespace separated numbers from a geometry stream.
// Running out of input is reported as io.EOF on a token boundary; a token that
// does not parse is reported as a *strconv.NumError and the token is consumed.
type TokenReader struct {
	sc  *bufio.Scanner
	err error
}

// NewTokenReader wraps r.
func NewTokenReader(r io.Reader) *TokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &TokenReader{sc: sc}
}

func (t *TokenReader) next() (string, error) {
	if t.err != nil {
		return "", t.err
	}
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			t.err = fmt.Errorf("read geometry: %w", err)
		} else {
			t.err = io.EOF
		}
		return "", t.err
	}
	return t.sc.Text(), nil
}

// Int reads the next token as a base 10 integer.
func (t *TokenReader) Int() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

// Float reads the next token as a float64.
func (t *TokenReader) Float() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(tok, 64)
}

// Exhausted reports whether the underlying stream has ended or failed.
func (t *TokenReader) Exhausted() bool {
	return t.err != nil
}
