package ast

import (
	"fmt"
	"slices"
)

// BinaryOperator is the closed set of operators a BinaryExpression can apply.
// Adding a value here means updating every switch over it in this package.
type BinaryOperator int

const (
	Addition BinaryOperator = iota + 1
	Subtraction
	Multiplication
	Division
	Exponentiation
)

var binaryOperators = []BinaryOperator{Addition, Subtraction, Multiplication, Division, Exponentiation}

func (op BinaryOperator) String() string {
	switch op {
	case Addition:
		return "ADDITION"
	case Subtraction:
		return "SUBTRACTION"
	case Multiplication:
		return "MULTIPLICATION"
	case Division:
		return "DIVISION"
	case Exponentiation:
		return "EXPONENTIATION"
	default:
		return fmt.Sprintf("BinaryOperator(%d)", int(op))
	}
}

func (op BinaryOperator) Valid() bool {
	return slices.Contains(binaryOperators, op)
}

type UnaryOperator int

const (
	Negation UnaryOperator = iota + 1
)

func (op UnaryOperator) String() string {
	switch op {
	case Negation:
		return "NEGATION"
	default:
		return fmt.Sprintf("UnaryOperator(%d)", int(op))
	}
}

func (op UnaryOperator) Valid() bool {
	return op == Negation
}
