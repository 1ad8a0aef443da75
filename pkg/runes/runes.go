package runes

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

var ErrInvalidRune = errors.New("invalid utf-8 encoding")

type Reader struct {
	*bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{bufio.NewReader(r)}
}

// Returns up to n runes ahead of the read position without consuming them.
// Fewer than n runes are returned when the input ends first.
func (r *Reader) PeekRunes(n int) ([]rune, error) {
	if n < 1 {
		return nil, nil
	}

	word := []rune{}
	peekOffset := 0

	for i := 0; i < n; i++ {
		decoded := false
		for peekBytes := utf8.UTFMax; peekBytes > 0; peekBytes-- {
			b, err := r.Peek(peekBytes + peekOffset)
			if err != nil {
				continue
			}

			char, size := utf8.DecodeRune(b[peekOffset:])
			if char == utf8.RuneError && size <= 1 {
				return nil, ErrInvalidRune
			}

			peekOffset += size
			word = append(word, char)
			decoded = true
			break
		}
		if !decoded {
			break
		}
	}

	return word, nil
}

// Returns the next rune without consuming it, or io.EOF at the end of input.
func (r *Reader) PeekRune() (rune, error) {
	word, err := r.PeekRunes(1)
	if err != nil {
		return 0, err
	}
	if len(word) == 0 {
		return 0, io.EOF
	}
	return word[0], nil
}

// Consumes runes while skip reports true and returns how many bytes were
// consumed.
func (r *Reader) SkipWhile(skip func(rune) bool) (int, error) {
	n := 0
	for {
		char, size, err := r.ReadRune()
		if err != nil {
			return n, err
		}
		if !skip(char) {
			return n, r.UnreadRune()
		}
		n += size
	}
}
