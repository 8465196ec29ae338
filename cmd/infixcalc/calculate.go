package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/internal/eval"
	"github.com/DjordjeVuckovic/infix-calc/internal/token"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [expression]",
	Short: "Print the tokens of an expression",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := readExpression(cmd, args)
		if err != nil {
			return err
		}
		calc, err := calculator()
		if err != nil {
			return err
		}
		tokens, err := calc.Tokenize(expr)
		if err != nil {
			return err
		}
		writeTokens(cmd.OutOrStdout(), tokens)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [expression]",
	Short: "Check an expression without evaluating it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := readExpression(cmd, args)
		if err != nil {
			return err
		}
		calc, err := calculator()
		if err != nil {
			return err
		}
		_, err = calc.Validate(expr)
		writeValidity(cmd.OutOrStdout(), err == nil)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return errFailed
		}
		return nil
	},
}

func runCalculate(cmd *cobra.Command, args []string) error {
	expr, err := readExpression(cmd, args)
	if err != nil {
		return err
	}
	calc, err := calculator()
	if err != nil {
		return err
	}

	res, err := calc.Calculate(expr)
	if !writeOutcome(cmd.OutOrStdout(), cmd.ErrOrStderr(), res, err) {
		return errFailed
	}
	return nil
}

// writeOutcome prints the validity line and, on success, the result line.
// Errors go to errW. It reports whether the expression evaluated.
func writeOutcome(w, errW io.Writer, res *eval.Result, err error) bool {
	writeValidity(w, res != nil && res.Valid)
	if err != nil {
		fmt.Fprintln(errW, color.YellowString("%v", err))
		return false
	}
	fmt.Fprintln(w, domain.FormatNumber(res.Value))
	return true
}

func writeValidity(w io.Writer, valid bool) {
	if valid {
		fmt.Fprintln(w, color.GreenString("True"))
		return
	}
	fmt.Fprintln(w, color.RedString("False"))
}

func writeTokens(w io.Writer, tokens []token.Token) {
	for _, t := range tokens {
		fmt.Fprintf(w, "%-4d %-9s %s\n", t.Pos, t.Type, color.CyanString(t.Value))
	}
}

func readExpression(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read expression: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
