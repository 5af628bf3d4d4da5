package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/go-git/go-billy/v5/osfs"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jvitoroc/wordy/ast"
	"github.com/jvitoroc/wordy/codegen"
	"github.com/jvitoroc/wordy/eval"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the built-in sample expressions.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range samples {
			fmt.Fprintln(cmd.OutOrStdout(), s.name)
		}
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [flags] sample",
	Short: "evaluate a sample expression.",
	Long: `Evaluate a sample expression. Variables are bound with --var name=value
	or read from a YAML file given with --vars; --var wins on conflicts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := lookupSample(args[0])
		if err != nil {
			return err
		}

		ctx, err := bindings(cmd)
		if err != nil {
			return err
		}

		log.Debugf("evaluating %s", expr)

		res, err := eval.Evaluate(expr, ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(res.Value, 'g', -1, 64))

		return nil
	},
}

var compileCmd = &cobra.Command{
	Use:   "compile [flags] sample",
	Short: "compile a sample expression to target source.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := lookupSample(args[0])
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		program := GetFlag(cmd, "program")

		var em ast.Emitter = writerEmitter{cmd.OutOrStdout()}
		if out != "" {
			f, err := codegen.Create(osfs.New(filepath.Dir(out)), filepath.Base(out))
			if err != nil {
				return err
			}
			defer f.Close()

			log.Debugf("writing %s", f.Name())
			em = f
		}

		if program {
			name, err := codegen.WriteProgram(em, "", expr)
			if err != nil {
				return err
			}
			log.Debugf("bound expression to %s", name)

			return nil
		}

		if err := expr.GenerateCode(em); err != nil {
			return err
		}

		_, err = em.WriteString("\n")

		return err
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump sample",
	Short: "print the syntax tree of a sample expression.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := lookupSample(args[0])
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), ast.Dump(expr))

		return nil
	},
}

type writerEmitter struct {
	io.Writer
}

func (w writerEmitter) WriteString(s string) (int, error) {
	return io.WriteString(w.Writer, s)
}

func bindings(cmd *cobra.Command) (ast.Context, error) {
	file, _ := cmd.Flags().GetString("vars")
	vars, _ := cmd.Flags().GetStringToString("var")

	var parent ast.Context
	if file != "" {
		values, err := eval.LoadValues(osfs.New(filepath.Dir(file)), filepath.Base(file))
		if err != nil {
			return nil, err
		}
		log.Debugf("loaded %d bindings from %s", len(values), file)
		parent = values
	}

	values := make(eval.Values, len(vars))
	for n, v := range vars {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("variable '%s' is not a number: %w", n, err)
		}
		values[n] = f
	}

	return eval.NewScope(parent, values), nil
}

func init() {
	evalCmd.Flags().StringToString("var", nil, "bind a variable, e.g. --var x=2")
	evalCmd.Flags().String("vars", "", "YAML file of variable bindings")
	compileCmd.Flags().StringP("out", "o", "", "write the generated code to a file")
	compileCmd.Flags().Bool("program", false, "wrap the expression in a standalone program")
}
