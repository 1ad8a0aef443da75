package interpret

import (
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ian-shakespeare/rpncalc/pkg/array"
	"github.com/ian-shakespeare/rpncalc/pkg/runes"
)

var operatorSymbols = []rune{'+', '-', '*', '/', '%', '^'}

type Scanner struct {
	input  *runes.Reader
	offset int
}

func NewScanner(input io.Reader) *Scanner {
	return &Scanner{
		input: runes.NewReader(input),
	}
}

// Tokenize returns the tokens of expression. Each range over the result
// scans the string from the beginning, and the string itself is never
// modified.
func Tokenize(expression string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		s := NewScanner(strings.NewReader(expression))
		for token, err := range s.Tokens() {
			if !yield(token, err) {
				return
			}
		}
	}
}

// NextToken returns the next token, or io.EOF once the input is exhausted.
func (s *Scanner) NextToken() (Token, error) {
	n, err := s.input.SkipWhile(unicode.IsSpace)
	s.offset += n
	if err != nil {
		return Token{}, err
	}

	start := s.offset
	b, size, err := s.input.ReadRune()
	if err != nil {
		return Token{}, err
	}
	s.offset += size

	switch {
	case b == '.' || isDigit(b):
		return s.scanNumeric(start, b)
	case b == '-':
		next, err := s.input.PeekRune()
		if err == nil && isDigit(next) {
			return s.scanNumeric(start, b)
		}
		return s.scanWord(start, b)
	default:
		return s.scanWord(start, b)
	}
}

func (s *Scanner) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := s.NextToken()
			if errors.Is(err, io.EOF) {
				return
			}
			var exprErr *ExprError
			if err != nil && !errors.As(err, &exprErr) {
				yield(token, err)
				return
			}
			if !yield(token, err) {
				return
			}
		}
	}
}

func (s *Scanner) readWord(startingChars ...rune) (string, error) {
	var word strings.Builder
	for _, c := range startingChars {
		word.WriteRune(c)
	}

	for {
		b, size, err := s.input.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(b) {
			if err := s.input.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
		s.offset += size
		word.WriteRune(b)
	}

	return word.String(), nil
}

func (s *Scanner) scanNumeric(start int, startingChars ...rune) (Token, error) {
	word, err := s.readWord(startingChars...)
	if err != nil {
		return Token{}, err
	}

	token := Token{Type: NUMBER_TOKEN, Value: word, Offset: start}
	if !isDecimalLiteral(word) {
		return token, NewExprError(INVALID_NUMBER, token, "malformed numeric literal")
	}
	value, err := strconv.ParseFloat(word, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return token, NewExprError(INVALID_NUMBER, token, "number out of range").wrap(err)
		}
		return token, NewExprError(INVALID_NUMBER, token, "malformed numeric literal").wrap(err)
	}
	token.Number = value

	return token, nil
}

func (s *Scanner) scanWord(start int, startingChars ...rune) (Token, error) {
	word, err := s.readWord(startingChars...)
	if err != nil {
		return Token{}, err
	}

	t := FUNCTION_TOKEN
	if utf8.RuneCountInString(word) == 1 && array.Contains(operatorSymbols, startingChars[0]) {
		t = OPERATOR_TOKEN
	}

	return Token{Type: t, Value: word, Offset: start}, nil
}

// Digits with at most one decimal point and an optional leading minus.
// Exponents and hex forms are rejected.
func isDecimalLiteral(word string) bool {
	word = strings.TrimPrefix(word, "-")
	digits, dots := 0, 0
	for _, r := range word {
		switch {
		case isDigit(r):
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
