package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/infix-calc/internal/eval"
	"github.com/DjordjeVuckovic/infix-calc/pkg/config/env"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// errFailed signals a negative outcome that has already been reported to the user.
var errFailed = errors.New("failed")

var (
	strict  bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "infixcalc [expression]",
	Short: "Evaluate infix arithmetic expressions",
	Long: `infixcalc tokenizes, validates and evaluates an infix expression over
numbers, the placeholders x and y, the operators + - * / and parentheses.

Without an argument the expression is read from standard input. Prints
True or False for validity and, on success, the result. Expressions that
start with '-' must follow '--', e.g. infixcalc -- -1+2.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadEnv()
		if noColor {
			color.NoColor = true
		}
	},
	RunE: runCalculate,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject unclassified characters while tokenizing")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(tokensCmd, validateCmd, suiteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		}
		os.Exit(1)
	}
}

// loadEnv reads .env before logging and calculator settings are taken from the environment.
func loadEnv() {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/infixcalc/.env"); err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}
	env.SetupLogging()
}

// calculator honours --strict, falling back to CALC_STRICT_TOKENS.
func calculator() (*eval.Calculator, error) {
	opts, err := eval.LoadOptions()
	if err != nil {
		return nil, err
	}
	if strict {
		opts.StrictTokens = true
	}
	return eval.NewDefaultCalculator(opts), nil
}
