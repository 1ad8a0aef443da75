package interpret

import (
	"strings"
	"unicode/utf8"

	"github.com/ian-shakespeare/rpncalc/pkg/stack"
)

// operand is a sub-expression on the text stack. op is the operator at its
// top level, or zero for literals and function calls. leadingNegative is set
// when the text starts with a minus sign outside any parentheses.
type operand struct {
	text            string
	op              rune
	leadingNegative bool
}

// ToInfix rewrites a postfix expression in infix form, e.g. "3 4 + 5 *"
// becomes "(3+4)*5". Parentheses are only added where conventional
// precedence and left-to-right associativity would otherwise regroup the
// operands.
func ToInfix(expression string, opts ...Option) (string, error) {
	o := newOptions(opts)
	s := stack.New[operand](o.stackCapacity)

	err := fold(Tokenize(expression), func(token Token) error {
		o.logger.Debug("infix", "token", token.Value, "type", token.Type, "depth", s.Len())
		next, err := infixToken(s, token)
		if err != nil {
			return err
		}
		if n := utf8.RuneCountInString(next.text); n > o.maxTextLength {
			return NewExprErrorf(CAPACITY_EXCEEDED, token, "sub-expression is %d characters, limit is %d", n, o.maxTextLength)
		}
		return push(s, token, next)
	})
	if err != nil {
		return "", err
	}

	final, err := result(s)
	if err != nil {
		return "", err
	}
	return final.text, nil
}

func infixToken(s *stack.Stack[operand], token Token) (operand, error) {
	switch token.Type {
	case NUMBER_TOKEN:
		return operand{
			text:            token.Value,
			leadingNegative: strings.HasPrefix(token.Value, "-"),
		}, nil
	case OPERATOR_TOKEN:
		if s.Len() < 2 {
			return operand{}, NewExprErrorf(INSUFFICIENT_OPERANDS, token, "operator needs 2 operands, have %d", s.Len())
		}
		operands, err := s.PopN(2)
		if err != nil {
			return operand{}, NewExprError(INSUFFICIENT_OPERANDS, token, "operator needs 2 operands").wrap(err)
		}
		lhs, rhs := operands[0], operands[1]
		op := token.Operator()

		wrapLeft := needsParensLeft(lhs, op)

		var b strings.Builder
		writeOperand(&b, lhs, wrapLeft)
		b.WriteRune(op)
		writeOperand(&b, rhs, needsParensRight(rhs, op))

		return operand{
			text:            b.String(),
			op:              op,
			leadingNegative: lhs.leadingNegative && !wrapLeft,
		}, nil
	case FUNCTION_TOKEN:
		if s.Len() < 1 {
			return operand{}, NewExprError(INSUFFICIENT_OPERANDS, token, "function needs 1 operand")
		}
		arg, err := s.Pop()
		if err != nil {
			return operand{}, NewExprError(INSUFFICIENT_OPERANDS, token, "function needs 1 operand").wrap(err)
		}
		if _, ok := lookupFunction(token.Value); !ok {
			return operand{}, NewExprErrorf(UNKNOWN_FUNCTION, token, "no function named %q", token.Value)
		}

		return operand{text: token.Value + "(" + arg.text + ")"}, nil
	default:
		return operand{}, NewExprErrorf(MALFORMED_EXPRESSION, token, "unexpected %s token", token.Type)
	}
}

func writeOperand(b *strings.Builder, x operand, parens bool) {
	if parens {
		b.WriteByte('(')
	}
	b.WriteString(x.text)
	if parens {
		b.WriteByte(')')
	}
}

func needsParensLeft(lhs operand, op rune) bool {
	// -3^2 would read as -(3^2)
	if lhs.leadingNegative && op == '^' {
		return true
	}
	if lhs.op == 0 {
		return false
	}
	return binaryOperators[lhs.op].precedence < binaryOperators[op].precedence
}

// A right operand starting with a minus is always wrapped, so the output
// never holds "--", "+-" or "*-".
func needsParensRight(rhs operand, op rune) bool {
	if rhs.leadingNegative {
		return true
	}
	if rhs.op == 0 {
		return false
	}

	inner, outer := binaryOperators[rhs.op], binaryOperators[op]
	switch {
	case inner.precedence < outer.precedence:
		return true
	case inner.precedence > outer.precedence:
		return false
	default:
		return !(rhs.op == op && outer.associative)
	}
}
