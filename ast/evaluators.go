package ast

import "math"

func evaluateAddition(left, right float64) (float64, error) {
	return left + right, nil
}

func evaluateSubtraction(left, right float64) (float64, error) {
	return left - right, nil
}

func evaluateMultiplication(left, right float64) (float64, error) {
	return left * right, nil
}

// Exact comparison: a divisor that is merely close to zero still divides.
func evaluateDivision(left, right float64) (float64, error) {
	if right == 0 {
		return 0, ErrDivisionByZero
	}

	return left / right, nil
}

func evaluateExponentiation(left, right float64) (float64, error) {
	return math.Pow(left, right), nil
}
