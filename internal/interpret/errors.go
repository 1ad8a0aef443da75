package interpret

import "fmt"

type ErrorType string

const (
	INSUFFICIENT_OPERANDS ErrorType = "insufficientoperands"
	DIVISION_BY_ZERO      ErrorType = "divisionbyzero"
	UNKNOWN_FUNCTION      ErrorType = "unknownfunction"
	MALFORMED_EXPRESSION  ErrorType = "malformedexpression"
	CAPACITY_EXCEEDED     ErrorType = "capacityexceeded"
	EMPTY_INPUT           ErrorType = "emptyinput"
	INVALID_NUMBER        ErrorType = "invalidnumber"
)

// Sentinels for errors.Is. An *ExprError matches a sentinel of the same Type.
var (
	ErrInsufficientOperands = &ExprError{Type: INSUFFICIENT_OPERANDS}
	ErrDivisionByZero       = &ExprError{Type: DIVISION_BY_ZERO}
	ErrUnknownFunction      = &ExprError{Type: UNKNOWN_FUNCTION}
	ErrMalformedExpression  = &ExprError{Type: MALFORMED_EXPRESSION}
	ErrCapacityExceeded     = &ExprError{Type: CAPACITY_EXCEEDED}
	ErrEmptyInput           = &ExprError{Type: EMPTY_INPUT}
	ErrInvalidNumber        = &ExprError{Type: INVALID_NUMBER}
)

type ExprError struct {
	Type    ErrorType
	Message string
	// Token and Offset locate the failing token; Offset is -1 when the error
	// is not tied to a single token.
	Token  string
	Offset int
	Err    error
}

func NewExprError(t ErrorType, token Token, message string) *ExprError {
	return &ExprError{
		Type:    t,
		Message: message,
		Token:   token.Value,
		Offset:  token.Offset,
	}
}

func NewExprErrorf(t ErrorType, token Token, format string, a ...any) *ExprError {
	return NewExprError(t, token, fmt.Sprintf(format, a...))
}

func newExpressionError(t ErrorType, message string) *ExprError {
	return &ExprError{
		Type:    t,
		Message: message,
		Offset:  -1,
	}
}

func newExpressionErrorf(t ErrorType, format string, a ...any) *ExprError {
	return newExpressionError(t, fmt.Sprintf(format, a...))
}

func (e *ExprError) Error() string {
	if e.Offset >= 0 && e.Token != "" {
		return fmt.Sprintf("%s: %s (token %q at offset %d)", e.Type, e.Message, e.Token, e.Offset)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *ExprError) Unwrap() error {
	return e.Err
}

func (e *ExprError) Is(target error) bool {
	t, ok := target.(*ExprError)
	return ok && t.Type == e.Type
}

func (e *ExprError) wrap(err error) *ExprError {
	e.Err = err
	return e
}
