package codegen

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jvitoroc/wordy/ast"
)

const programHeader = "// Generated by wordy. Requires " + ast.PowerFunction + ".\n"

// WriteProgram emits a standalone program binding expr to name:
//
//	const name = <expr>;
//
// An empty name is replaced with a generated one, which is returned.
func WriteProgram(em ast.Emitter, name string, expr ast.Node) (string, error) {
	if name == "" {
		name = "expr_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	if _, err := em.WriteString(programHeader + "const " + name + " = "); err != nil {
		return "", err
	}

	if err := expr.GenerateCode(em); err != nil {
		return "", err
	}

	if _, err := em.WriteString(";\n"); err != nil {
		return "", err
	}

	return name, nil
}
