package eval

import (
	"github.com/jvitoroc/wordy/ast"
)

type EvalResult struct {
	Value float64
}

// Evaluate runs expr against ctx. Errors from the tree (ast.ErrDivisionByZero,
// ast.ErrUndefinedVariable, ast.ErrUnsupportedOperator) are returned as is.
func Evaluate(expr ast.Node, ctx ast.Context) (*EvalResult, error) {
	v, err := expr.Evaluate(ctx)
	if err != nil {
		return nil, err
	}

	return &EvalResult{Value: v}, nil
}
