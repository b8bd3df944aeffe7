package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/migraterun/migraterun/internal/assessment"
	"github.com/migraterun/migraterun/internal/config"
	"github.com/migraterun/migraterun/internal/input"
	"github.com/migraterun/migraterun/internal/report"
)

func runAssess(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	configPath, _ := cmd.Flags().GetString("config")
	formatFlag, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	engine, err := buildEngine(configPath)
	if err != nil {
		return err
	}

	doc, err := input.Load(inputPath)
	if err != nil {
		return err
	}

	log.Info().Str("input", inputPath).Bool("questionnaire", doc.HasQuestionnaire()).Msg("Scoring assessment")

	result, err := evaluateDocument(engine, doc)
	if err != nil {
		return fmt.Errorf("assessment failed: %w", err)
	}

	w, closeFn, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := report.NewEmitter().Emit(w, result, format); err != nil {
		return err
	}

	log.Info().Str("run_id", result.RunID).Msg(report.GetScoreSummary(result))
	return nil
}

// buildEngine loads the config file when one is given, otherwise uses the
// built-in defaults.
func buildEngine(configPath string) (*assessment.Engine, error) {
	if configPath == "" {
		return assessment.NewEngine(nil), nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return assessment.NewEngine(cfg), nil
}

// evaluateDocument routes between flat responses and the questionnaire.
func evaluateDocument(engine *assessment.Engine, doc *input.Document) (*assessment.Result, error) {
	if doc.HasQuestionnaire() {
		return engine.EvaluateQuestionnaire(assessment.DefaultQuestionnaire(), doc.Questionnaire)
	}
	return engine.Evaluate(doc.FlatResponses())
}

// openOutput returns the writer for the result, stdout when no path is set.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	return file, func() { file.Close() }, nil
}
