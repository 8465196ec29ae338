package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/infix-calc/internal/report"
	"github.com/DjordjeVuckovic/infix-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/infix-calc/internal/suite"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	storeRun   bool
)

var suiteCmd = &cobra.Command{
	Use:   "suite <file>",
	Short: "Run a YAML expression suite",
	Long: `Runs every case of a YAML expression suite and prints a report.

With --store the outcomes are recorded in the evaluation history configured
through STORAGE_TYPE and the PG_* / ES_* environment variables.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuite,
}

func init() {
	suiteCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	suiteCmd.Flags().BoolVar(&storeRun, "store", false, "Record case outcomes in the evaluation history")
}

func runSuite(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loaded, err := suite.LoadFromFile(args[0])
	if err != nil {
		return err
	}

	calc, err := calculator()
	if err != nil {
		return err
	}

	var opts []suite.RunOption
	if storeRun {
		cfg, err := factory.LoadEnv()
		if err != nil {
			return err
		}
		store, err := factory.NewStore(ctx, *cfg)
		if err != nil {
			return fmt.Errorf("create evaluation store: %w", err)
		}
		defer store.Close()
		opts = append(opts, suite.WithStorer(store))
	}

	r, runErr := suite.Run(ctx, loaded, calc, opts...)
	if r != nil {
		if err := writeReport(cmd, r); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}
	if !r.OK() {
		return errFailed
	}
	return nil
}

func writeReport(cmd *cobra.Command, r *report.Report) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		return report.WriteJSON(r, out)
	}

	if err := report.WriteTable(r, out); err != nil {
		return err
	}
	if r.OK() {
		fmt.Fprintln(out, color.GreenString("\nPASS"))
	} else {
		fmt.Fprintln(out, color.RedString("\nFAIL"))
	}
	return nil
}
