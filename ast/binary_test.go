package ast

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type values map[string]float64

func (v values) Lookup(name string) (float64, bool) {
	value, ok := v[name]
	return value, ok
}

type recordingContext struct {
	values
	lookups []string
}

func (c *recordingContext) Lookup(name string) (float64, bool) {
	c.lookups = append(c.lookups, name)
	return c.values.Lookup(name)
}

var errSinkClosed = errors.New("sink closed")

// failingEmitter accepts limit writes and then fails every write after.
type failingEmitter struct {
	strings.Builder
	limit int
}

func (f *failingEmitter) WriteString(s string) (int, error) {
	if f.limit == 0 {
		return 0, errSinkClosed
	}
	f.limit--

	return f.Builder.WriteString(s)
}

func lit(v float64) *Literal {
	return NewLiteral(v)
}

func variable(name string) *Variable {
	return NewVariable(name)
}

func bin(op BinaryOperator, lhs, rhs Node) *BinaryExpression {
	return NewBinaryExpression(op, lhs, rhs)
}

func TestBinaryExpressionEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr Node
		ctx  Context
		want float64
	}{
		{name: "addition", expr: bin(Addition, lit(1.5), lit(2.25)), want: 3.75},
		{name: "subtraction", expr: bin(Subtraction, lit(1), lit(4)), want: -3},
		{name: "multiplication", expr: bin(Multiplication, lit(-3), lit(7)), want: -21},
		{name: "division", expr: bin(Division, lit(7), lit(2)), want: 3.5},
		{name: "division by tiny divisor", expr: bin(Division, lit(1), lit(0x1p-1000)), want: 0x1p1000},
		{name: "exponentiation", expr: bin(Exponentiation, lit(2), lit(10)), want: 1024},
		{name: "fractional exponent", expr: bin(Exponentiation, lit(9), lit(0.5)), want: 3},
		{name: "negative exponent", expr: bin(Exponentiation, lit(2), lit(-2)), want: 0.25},
		{name: "zero to the zero", expr: bin(Exponentiation, lit(0), lit(0)), want: 1},
		{
			name: "nested with variables",
			expr: bin(Multiplication,
				bin(Addition, variable("x"), lit(2)),
				bin(Subtraction, variable("y"), variable("x"))),
			ctx:  values{"x": 3, "y": 10},
			want: 35,
		},
		{
			name: "unary operand",
			expr: bin(Addition, NewUnaryExpression(Negation, variable("x")), lit(1)),
			ctx:  values{"x": 5},
			want: -4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.expr.Evaluate(tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBinaryExpressionArithmeticMatchesGo(t *testing.T) {
	pairs := [][2]float64{{0, 0}, {1, 2}, {-7.5, 3}, {1e308, 1e308}, {0.1, 0.2}, {math.Inf(1), 1}}
	for _, p := range pairs {
		a, b := p[0], p[1]

		sum, err := bin(Addition, lit(a), lit(b)).Evaluate(nil)
		require.NoError(t, err)
		assert.Equal(t, a+b, sum)

		difference, err := bin(Subtraction, lit(a), lit(b)).Evaluate(nil)
		require.NoError(t, err)
		assert.Equal(t, a-b, difference)

		product, err := bin(Multiplication, lit(a), lit(b)).Evaluate(nil)
		require.NoError(t, err)
		assert.Equal(t, a*b, product)
	}
}

func TestBinaryExpressionExponentiationFollowsMathPow(t *testing.T) {
	got, err := bin(Exponentiation, lit(-8), lit(1.0/3)).Evaluate(nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	got, err = bin(Exponentiation, lit(0), lit(-1)).Evaluate(nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}

func TestBinaryExpressionDivisionByZero(t *testing.T) {
	for _, dividend := range []float64{0, 1, -1, 42.5, math.Inf(1), math.NaN()} {
		for _, zero := range []float64{0, math.Copysign(0, -1)} {
			_, err := bin(Division, lit(dividend), lit(zero)).Evaluate(nil)
			require.ErrorIs(t, err, ErrDivisionByZero)
		}
	}

	_, err := bin(Division, lit(1), bin(Subtraction, variable("x"), variable("x"))).Evaluate(values{"x": 3})
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestBinaryExpressionUnsupportedOperator(t *testing.T) {
	expr := bin(BinaryOperator(99), lit(1), lit(2))

	_, err := expr.Evaluate(nil)
	require.ErrorIs(t, err, ErrUnsupportedOperator)
	assert.Contains(t, err.Error(), "BinaryOperator(99)")

	var sb strings.Builder
	err = expr.GenerateCode(&sb)
	require.ErrorIs(t, err, ErrUnsupportedOperator)
}

func TestBinaryExpressionEvaluatesLeftFirst(t *testing.T) {
	ctx := &recordingContext{values: values{"a": 1, "b": 2}}

	_, err := bin(Addition, variable("a"), variable("b")).Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ctx.lookups)

	ctx.lookups = nil
	_, err = bin(Addition, variable("missing"), variable("b")).Evaluate(ctx)
	require.ErrorIs(t, err, ErrUndefinedVariable)
	assert.Equal(t, []string{"missing"}, ctx.lookups)
}

func TestBinaryExpressionGenerateCode(t *testing.T) {
	tests := []struct {
		name string
		expr Node
		want string
	}{
		{
			name: "nested infix",
			expr: bin(Multiplication, bin(Addition, lit(1), lit(2)), lit(3)),
			want: "((1 + 2) * 3)",
		},
		{
			name: "right nested keeps structure",
			expr: bin(Subtraction, lit(1), bin(Subtraction, lit(2), lit(3))),
			want: "(1 - (2 - 3))",
		},
		{
			name: "division",
			expr: bin(Division, variable("x"), lit(0.5)),
			want: "(x / 0.5)",
		},
		{
			name: "exponentiation uses power function",
			expr: bin(Exponentiation, variable("x"), lit(2)),
			want: "Math.pow(x, 2)",
		},
		{
			name: "exponentiation nested in infix",
			expr: bin(Addition, bin(Exponentiation, variable("x"), bin(Multiplication, lit(2), variable("y"))), lit(1)),
			want: "(Math.pow(x, (2 * y)) + 1)",
		},
		{
			name: "negative literal",
			expr: bin(Subtraction, lit(1), lit(-2)),
			want: "(1 - (-2))",
		},
		{
			name: "negation",
			expr: NewUnaryExpression(Negation, bin(Addition, variable("a"), variable("b"))),
			want: "(-(a + b))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			require.NoError(t, tt.expr.GenerateCode(&sb))
			assert.Equal(t, tt.want, sb.String())
			assert.NotContains(t, sb.String(), "^")
		})
	}
}

func TestBinaryExpressionGenerateCodeStopsOnEmitterError(t *testing.T) {
	expr := bin(Multiplication, bin(Addition, lit(1), lit(2)), lit(3))

	for limit := 0; limit < 7; limit++ {
		em := &failingEmitter{limit: limit}
		err := expr.GenerateCode(em)
		require.Error(t, err)
		assert.Same(t, errSinkClosed, err)
		assert.True(t, strings.HasPrefix("((1 + 2) * 3)", em.String()))
	}

	pow := bin(Exponentiation, variable("x"), lit(2))
	for limit := 0; limit < 5; limit++ {
		err := pow.GenerateCode(&failingEmitter{limit: limit})
		assert.Same(t, errSinkClosed, err)
	}
}

func TestBinaryExpressionChildren(t *testing.T) {
	lhs, rhs := variable("x"), lit(2)
	children := bin(Exponentiation, lhs, rhs).Children()

	require.Equal(t, 2, children.Len())
	front := children.Front()
	assert.Equal(t, "lhs", front.Key)
	assert.Same(t, lhs, front.Value)
	assert.Equal(t, "rhs", front.Next().Key)
	assert.Same(t, rhs, front.Next().Value)
	assert.Nil(t, front.Next().Next())
}

func TestBinaryExpressionRejectsNilChildren(t *testing.T) {
	assert.Panics(t, func() { NewBinaryExpression(Addition, nil, lit(1)) })
	assert.Panics(t, func() { NewBinaryExpression(Addition, lit(1), nil) })
	assert.Panics(t, func() { NewUnaryExpression(Negation, nil) })
}

func TestBinaryExpressionConcurrentUse(t *testing.T) {
	expr := bin(Addition, bin(Exponentiation, variable("x"), lit(2)), bin(Division, lit(1), variable("x")))

	var wg sync.WaitGroup
	for i := 1; i <= 16; i++ {
		wg.Add(1)
		go func(x float64) {
			defer wg.Done()

			got, err := expr.Evaluate(values{"x": x})
			if assert.NoError(t, err) {
				assert.Equal(t, x*x+1/x, got)
			}

			var sb strings.Builder
			if assert.NoError(t, expr.GenerateCode(&sb)) {
				assert.Equal(t, "(Math.pow(x, 2) + (1 / x))", sb.String())
			}
		}(float64(i))
	}
	wg.Wait()
}
