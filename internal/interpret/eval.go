package interpret

import (
	"errors"
	"iter"

	"github.com/ian-shakespeare/rpncalc/pkg/stack"
)

// Evaluate computes the value of a postfix expression such as "3 4 + 5 *".
// Failures are returned as *ExprError.
func Evaluate(expression string, opts ...Option) (float64, error) {
	o := newOptions(opts)
	s := stack.New[float64](o.stackCapacity)

	err := fold(Tokenize(expression), func(token Token) error {
		o.logger.Debug("evaluate", "token", token.Value, "type", token.Type, "depth", s.Len())
		return evalToken(s, token)
	})
	if err != nil {
		return 0, err
	}

	return result(s)
}

func evalToken(s *stack.Stack[float64], token Token) error {
	switch token.Type {
	case NUMBER_TOKEN:
		return push(s, token, token.Number)
	case OPERATOR_TOKEN:
		if s.Len() < 2 {
			return NewExprErrorf(INSUFFICIENT_OPERANDS, token, "operator needs 2 operands, have %d", s.Len())
		}
		operands, err := s.PopN(2)
		if err != nil {
			return NewExprError(INSUFFICIENT_OPERANDS, token, "operator needs 2 operands").wrap(err)
		}
		op1, op2 := operands[0], operands[1]

		sym := token.Operator()
		if (sym == '/' || sym == '%') && op2 == 0 {
			return NewExprError(DIVISION_BY_ZERO, token, "right operand is zero")
		}
		return push(s, token, binaryOperators[sym].apply(op1, op2))
	case FUNCTION_TOKEN:
		if s.Len() < 1 {
			return NewExprError(INSUFFICIENT_OPERANDS, token, "function needs 1 operand")
		}
		op1, err := s.Pop()
		if err != nil {
			return NewExprError(INSUFFICIENT_OPERANDS, token, "function needs 1 operand").wrap(err)
		}

		fn, ok := lookupFunction(token.Value)
		if !ok {
			return NewExprErrorf(UNKNOWN_FUNCTION, token, "no function named %q", token.Value)
		}
		return push(s, token, fn(op1))
	default:
		return NewExprErrorf(MALFORMED_EXPRESSION, token, "unexpected %s token", token.Type)
	}
}

// fold applies step to every token, stopping at the first error. An input
// with no tokens is an EMPTY_INPUT error.
func fold(tokens iter.Seq2[Token, error], step func(Token) error) error {
	empty := true
	for token, err := range tokens {
		if err != nil {
			return err
		}
		empty = false
		if err := step(token); err != nil {
			return err
		}
	}

	if empty {
		return newExpressionError(EMPTY_INPUT, "expression has no tokens")
	}
	return nil
}

func push[T any](s *stack.Stack[T], token Token, value T) error {
	if err := s.Push(value); err != nil {
		if errors.Is(err, stack.ErrFull) {
			return NewExprErrorf(CAPACITY_EXCEEDED, token, "stack holds at most %d operands", s.Cap()).wrap(err)
		}
		return err
	}
	return nil
}

// result pops the single value a well-formed expression leaves behind.
func result[T any](s *stack.Stack[T]) (T, error) {
	if s.Len() != 1 {
		var zero T
		return zero, newExpressionErrorf(MALFORMED_EXPRESSION, "expected 1 value after the last token, have %d", s.Len())
	}
	return s.Pop()
}
