package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/migraterun/migraterun/internal/assessment"
	"github.com/migraterun/migraterun/internal/input"
)

func runValidate(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	configPath, _ := cmd.Flags().GetString("config")

	engine, err := buildEngine(configPath)
	if err != nil {
		return err
	}

	doc, err := input.Load(inputPath)
	if err != nil {
		return err
	}

	if doc.HasQuestionnaire() {
		// Questionnaire validation runs inside scoring; discard the result.
		_, err = engine.EvaluateQuestionnaire(assessment.DefaultQuestionnaire(), doc.Questionnaire)
	} else {
		err = engine.Validate(doc.FlatResponses())
	}
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	log.Info().Str("input", inputPath).Msg("Input valid")
	fmt.Printf("✅ %s: all factors answered, scores in range, weights consistent\n", inputPath)
	return nil
}
