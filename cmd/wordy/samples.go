package main

import (
	"fmt"

	"github.com/jvitoroc/wordy/ast"
)

type sample struct {
	name string
	expr ast.Node
}

func binary(op ast.BinaryOperator, lhs, rhs ast.Node) ast.Node {
	return ast.NewBinaryExpression(op, lhs, rhs)
}

func num(v float64) ast.Node {
	return ast.NewLiteral(v)
}

func ref(n string) ast.Node {
	return ast.NewVariable(n)
}

// Trees a parser would build for a few Wordy programs.
var samples = []sample{
	{"sum", binary(ast.Multiplication, binary(ast.Addition, num(1), num(2)), num(3))},
	{"square", binary(ast.Exponentiation, ref("x"), num(2))},
	{"average", binary(ast.Division, binary(ast.Addition, ref("a"), ref("b")), num(2))},
	{"kinetic-energy", binary(ast.Multiplication,
		binary(ast.Multiplication, num(0.5), ref("mass")),
		binary(ast.Exponentiation, ref("velocity"), num(2)))},
	{"compound-interest", binary(ast.Multiplication,
		ref("principal"),
		binary(ast.Exponentiation,
			binary(ast.Addition, num(1), binary(ast.Division, ref("rate"), ref("n"))),
			binary(ast.Multiplication, ref("n"), ref("years"))))},
	{"negate", ast.NewUnaryExpression(ast.Negation, binary(ast.Subtraction, ref("x"), num(1)))},
	{"reciprocal", binary(ast.Division, num(1), ref("x"))},
}

func lookupSample(n string) (ast.Node, error) {
	for _, s := range samples {
		if s.name == n {
			return s.expr, nil
		}
	}

	return nil, fmt.Errorf("sample '%s' does not exist", n)
}
