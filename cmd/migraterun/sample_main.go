package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/migraterun/migraterun/internal/assessment"
	"github.com/migraterun/migraterun/internal/report"
)

func runSample(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")

	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	engine := assessment.NewEngine(nil)
	result, err := engine.EvaluateQuestionnaire(assessment.DefaultQuestionnaire(), assessment.SampleResponses())
	if err != nil {
		return fmt.Errorf("sample assessment failed: %w", err)
	}

	if format == report.FormatText {
		fmt.Printf("%s Sample Readiness Assessment\n\n", appName)
	}
	return report.NewEmitter().Emit(os.Stdout, result, format)
}
