package interpret

import "fmt"

type TokenType int

const (
	UNKNOWN_TOKEN  TokenType = 0
	NUMBER_TOKEN   TokenType = 1
	OPERATOR_TOKEN TokenType = 2
	FUNCTION_TOKEN TokenType = 3
)

func (t TokenType) String() string {
	switch t {
	case NUMBER_TOKEN:
		return "number"
	case OPERATOR_TOKEN:
		return "operator"
	case FUNCTION_TOKEN:
		return "function"
	default:
		return "unknown"
	}
}

// Token is one whitespace-delimited word of a postfix expression. Value keeps
// the literal text as written; Number is only meaningful for NUMBER_TOKEN.
type Token struct {
	Type   TokenType
	Value  string
	Number float64
	Offset int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

// Operator returns the operator symbol of an OPERATOR_TOKEN.
func (t Token) Operator() rune {
	if t.Type != OPERATOR_TOKEN || len(t.Value) != 1 {
		return 0
	}
	return rune(t.Value[0])
}
