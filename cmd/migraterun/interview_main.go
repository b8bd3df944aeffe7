package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/migraterun/migraterun/internal/assessment"
	"github.com/migraterun/migraterun/internal/report"
)

func runInterview(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	outPath, _ := cmd.Flags().GetString("out")

	engine, err := buildEngine(configPath)
	if err != nil {
		return err
	}

	cfg := engine.Config()
	categories := assessment.DefaultQuestionnaire()
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("%s Readiness Interview\n", appName)
	fmt.Printf("Rate each item from %.0f to %.0f.\n", cfg.ScoreMin, cfg.ScoreMax)

	answers := make(assessment.QuestionnaireResponses, len(categories))
	for _, category := range categories {
		fmt.Printf("\n── %s ──\n", category.Title)
		categoryAnswers := make(map[string]float64, len(category.Questions))
		for _, q := range category.Questions {
			score, err := promptScore(reader, q.Prompt, cfg.ScoreMin, cfg.ScoreMax)
			if err != nil {
				return err
			}
			categoryAnswers[q.Key] = score
		}
		answers[category.Factor] = categoryAnswers
	}

	result, err := engine.EvaluateQuestionnaire(categories, answers)
	if err != nil {
		return fmt.Errorf("assessment failed: %w", err)
	}

	fmt.Println()
	if err := report.NewEmitter().EmitText(os.Stdout, result); err != nil {
		return err
	}

	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", outPath, err)
		}
		defer file.Close()

		if err := report.NewEmitter().EmitJSON(file, result); err != nil {
			return err
		}
		log.Info().Str("out", outPath).Msg("Result written")
	}

	return nil
}

// promptScore asks until the answer parses as an in-range number.
func promptScore(reader *bufio.Reader, prompt string, min, max float64) (float64, error) {
	for {
		fmt.Printf("  %s [%.0f-%.0f]: ", prompt, min, max)

		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("failed to read answer: %w", err)
		}

		score, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil || score < min || score > max {
			fmt.Printf("  Enter a number between %.0f and %.0f.\n", min, max)
			continue
		}
		return score, nil
	}
}
