package interpret_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/ian-shakespeare/rpncalc/internal/interpret"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInfix(t *testing.T) {
	t.Parallel()

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			infix, err := interpret.ToInfix(f.postfix)
			require.NoError(t, err)
			assert.Equal(t, f.infix, infix)
			assert.NotContains(t, infix, " ")
		})
	}

	cases := []struct {
		name    string
		postfix string
		want    string
	}{
		{"single", "42", "42"},
		{"literalPreserved", "3.50 .5 +", "3.50+.5"},
		{"leftAssociativeSum", "1 2 + 3 +", "1+2+3"},
		{"rightSum", "1 2 3 + +", "1+2+3"},
		{"rightDifference", "1 2 3 - -", "1-(2-3)"},
		{"leftDifference", "1 2 - 3 -", "1-2-3"},
		{"sumRightOfDifference", "1 2 3 + -", "1-(2+3)"},
		{"differenceRightOfSum", "1 2 3 - +", "1+(2-3)"},
		{"rightProduct", "2 3 4 * *", "2*3*4"},
		{"rightQuotient", "8 4 2 / /", "8/(4/2)"},
		{"productRightOfQuotient", "8 4 2 * /", "8/(4*2)"},
		{"moduloRightOfProduct", "8 4 2 % *", "8*(4%2)"},
		{"productLeftOfModulo", "8 4 * 3 %", "8*4%3"},
		{"powerOfSum", "1 2 + 3 ^", "(1+2)^3"},
		{"powerOfPower", "2 3 ^ 2 ^", "2^3^2"},
		{"rightPower", "2 3 2 ^ ^", "2^(3^2)"},
		{"sumOfPowers", "2 3 ^ 4 5 ^ +", "2^3+4^5"},
		{"productOfPowers", "2 3 ^ 4 *", "2^3*4"},
		{"functionArgument", "1 2 + 3 * raiz", "raiz((1+2)*3)"},
		{"nestedFunctions", "30 sen cos", "cos(sen(30))"},
		{"aliasPreserved", "2 sqrt 45 tan +", "sqrt(2)+tan(45)"},
		{"functionOperand", "9 raiz 2 ^", "raiz(9)^2"},
		{"negativeLeft", "-3 4 +", "-3+4"},
		{"negativeRight", "4 -3 -", "4-(-3)"},
		{"negativeRightOfProduct", "4 -3 *", "4*(-3)"},
		{"negativeBase", "-3 2 ^", "(-3)^2"},
		{"negativeFunctionArgument", "-8 log", "log(-8)"},
		{"negativeLeadsProductOnRight", "2 -3 4 * -", "2-(-3*4)"},
		{"negativeLeadsSumOnRight", "2 -3 4 + +", "2+(-3+4)"},
		{"negativeLeadsSameOperatorOnRight", "2 -3 4 * *", "2*(-3*4)"},
		{"negativeLeadsPowerOnRight", "2 -3 2 ^ *", "2*(-3)^2"},
		{"negativeLeadsBase", "-3 4 * 2 ^", "(-3*4)^2"},
		{"negativeInsideFunctionOnRight", "2 -3 cos -", "2-cos(-3)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			infix, err := interpret.ToInfix(c.postfix)
			require.NoError(t, err)
			assert.Equal(t, c.want, infix)
		})
	}
}

func TestToInfixErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		postfix string
		want    error
	}{
		{"operatorMissingOperand", "4 +", interpret.ErrInsufficientOperands},
		{"functionNoOperand", "sen", interpret.ErrInsufficientOperands},
		{"unknownFunction", "4 foo", interpret.ErrUnknownFunction},
		{"leftover", "4 5", interpret.ErrMalformedExpression},
		{"empty", "", interpret.ErrEmptyInput},
		{"invalidNumber", "1..2 3 +", interpret.ErrInvalidNumber},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			infix, err := interpret.ToInfix(c.postfix)
			assert.ErrorIs(t, err, c.want)
			assert.Empty(t, infix)
		})
	}

	t.Run("divisionByZeroIsText", func(t *testing.T) {
		t.Parallel()

		infix, err := interpret.ToInfix("4 0 /")
		require.NoError(t, err)
		assert.Equal(t, "4/0", infix)
	})

	t.Run("maxTextLength", func(t *testing.T) {
		t.Parallel()

		infix, err := interpret.ToInfix("1 2 + 3 *", interpret.WithMaxTextLength(7))
		require.NoError(t, err)
		assert.Equal(t, "(1+2)*3", infix)

		_, err = interpret.ToInfix("1 2 + 3 *", interpret.WithMaxTextLength(6))
		assert.ErrorIs(t, err, interpret.ErrCapacityExceeded)
	})

	t.Run("defaultMaxTextLength", func(t *testing.T) {
		t.Parallel()

		// 256 leaves joined by 255 "+" signs is 511 characters.
		fits := strings.Repeat("1 ", 256) + strings.Repeat("+ ", 255)
		infix, err := interpret.ToInfix(fits)
		require.NoError(t, err)
		assert.Len(t, infix, interpret.DefaultMaxTextLength)

		tooLong := strings.Repeat("1 ", 257) + strings.Repeat("+ ", 256)
		_, err = interpret.ToInfix(tooLong)
		assert.ErrorIs(t, err, interpret.ErrCapacityExceeded)
	})

	t.Run("stackCapacity", func(t *testing.T) {
		t.Parallel()

		_, err := interpret.ToInfix("1 2 3 + +", interpret.WithStackCapacity(2))
		assert.ErrorIs(t, err, interpret.ErrCapacityExceeded)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	check := func(t *testing.T, postfix string) {
		want, err := interpret.Evaluate(postfix)
		if err != nil {
			t.Skipf("%q does not evaluate: %v", postfix, err)
		}
		infix, err := interpret.ToInfix(postfix)
		require.NoError(t, err)
		for _, adjacent := range []string{"--", "+-", "*-", "/-", "%-", "^-"} {
			assert.NotContains(t, infix, adjacent, "%q rendered as %q", postfix, infix)
		}

		got, err := evalInfix(infix)
		require.NoError(t, err, infix)
		assert.InDelta(t, want, got, epsilon, "%q rendered as %q", postfix, infix)
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()
			check(t, f.postfix)
		})
	}

	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		postfix := randomPostfix(r, 3)
		t.Run(fmt.Sprintf("random%d", i), func(t *testing.T) {
			t.Parallel()
			check(t, postfix)
		})
	}
}

// randomPostfix builds an expression over small integer leaves, so every
// regrouping ToInfix is allowed to make is exact in float64.
func randomPostfix(r *rand.Rand, depth int) string {
	if depth == 0 || r.IntN(4) == 0 {
		leaf := strconv.Itoa(r.IntN(9) + 1)
		if r.IntN(5) == 0 {
			leaf = "-" + leaf
		}
		return leaf
	}
	ops := []string{"+", "-", "*", "+", "-", "*", "^"}
	op := ops[r.IntN(len(ops))]
	if op == "^" {
		return randomPostfix(r, 0) + " " + strconv.Itoa(r.IntN(3)) + " ^"
	}
	return randomPostfix(r, depth-1) + " " + randomPostfix(r, depth-1) + " " + op
}

// evalInfix is a precedence-climbing evaluator for the infix produced by
// ToInfix: left-associative binary operators, negative literals and
// function calls. Function calls are computed through Evaluate.
func evalInfix(input string) (float64, error) {
	p := &infixParser{input: input}
	v, err := p.expr(1)
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("trailing input at %d in %q", p.pos, p.input)
	}
	return v, nil
}

type infixParser struct {
	input string
	pos   int
}

var infixPrecedence = map[byte]int{'+': 1, '-': 1, '*': 2, '/': 2, '%': 2, '^': 3}

func (p *infixParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *infixParser) expr(minPrec int) (float64, error) {
	lhs, err := p.primary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		prec, ok := infixPrecedence[op]
		if !ok || prec < minPrec {
			return lhs, nil
		}
		p.pos++
		rhs, err := p.expr(prec + 1)
		if err != nil {
			return 0, err
		}
		switch op {
		case '+':
			lhs += rhs
		case '-':
			lhs -= rhs
		case '*':
			lhs *= rhs
		case '/':
			lhs /= rhs
		case '%':
			lhs = math.Mod(lhs, rhs)
		case '^':
			lhs = math.Pow(lhs, rhs)
		}
	}
}

func (p *infixParser) primary() (float64, error) {
	start := p.pos
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		v, err := p.expr(1)
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("expected ) at %d in %q", p.pos, p.input)
		}
		p.pos++
		return v, nil
	case c == '-' || c == '.' || (c >= '0' && c <= '9'):
		p.pos++
		for c := p.peek(); c == '.' || (c >= '0' && c <= '9'); c = p.peek() {
			p.pos++
		}
		return strconv.ParseFloat(p.input[start:p.pos], 64)
	case c >= 'a' && c <= 'z':
		for c := p.peek(); c >= 'a' && c <= 'z'; c = p.peek() {
			p.pos++
		}
		name := p.input[start:p.pos]
		if p.peek() != '(' {
			return 0, fmt.Errorf("expected ( after %s", name)
		}
		p.pos++
		arg, err := p.expr(1)
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("expected ) after argument of %s", name)
		}
		p.pos++
		return interpret.Evaluate(strconv.FormatFloat(arg, 'f', -1, 64) + " " + name)
	default:
		return 0, fmt.Errorf("unexpected %q at %d in %q", c, p.pos, p.input)
	}
}
