package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	appName = "MigrateRun"
	version = "v1.2.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     "migraterun",
		Short:   "Migration readiness assessment for enterprise asset-management deployments",
		Version: version,
		Long: `MigrateRun scores an organization's readiness for migrating an enterprise
asset-management deployment, and recommends separate-instance vs
enterprise-integrated rollout.

Run 'migraterun' in a terminal for the interactive questionnaire.
Subcommands and flags cover non-interactive automation.`,
		Run: runDefaultEntry,
	}

	assessCmd := &cobra.Command{
		Use:   "assess",
		Short: "Score a response file and emit the assessment result",
		Long:  "Validates and scores survey responses (flat factor scores or a category questionnaire) and emits the weighted recommendation",
		RunE:  runAssess,
	}

	assessCmd.Flags().String("input", "", "Input file (.yaml, .json, .csv); '-' reads YAML from stdin")
	assessCmd.Flags().String("config", "", "Assessment config file (defaults to built-in weights)")
	assessCmd.Flags().String("format", "text", "Output format (text|json|csv)")
	assessCmd.Flags().String("out", "", "Output file (defaults to stdout)")
	_ = assessCmd.MarkFlagRequired("input")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a response file without scoring it",
		Long:  "Checks factor coverage, score ranges, and weight sums; reports the first violation found",
		RunE:  runValidate,
	}

	validateCmd.Flags().String("input", "", "Input file (.yaml, .json, .csv); '-' reads YAML from stdin")
	validateCmd.Flags().String("config", "", "Assessment config file (defaults to built-in weights)")
	_ = validateCmd.MarkFlagRequired("input")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Run the built-in demonstration scenario",
		Long:  "Scores a municipal-utility-like response set and prints the full assessment report",
		RunE:  runSample,
	}

	sampleCmd.Flags().String("format", "text", "Output format (text|json|csv)")

	interviewCmd := &cobra.Command{
		Use:   "interview",
		Short: "Run the interactive readiness questionnaire",
		Long:  "Prompts each survey question on the terminal, then scores the answers",
		RunE:  runInterview,
	}

	interviewCmd.Flags().String("config", "", "Assessment config file (defaults to built-in weights)")
	interviewCmd.Flags().String("out", "", "Write the JSON result to a file in addition to the report")

	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sampleCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// runDefaultEntry routes a bare invocation to the interview on a TTY and to
// usage guidance otherwise.
func runDefaultEntry(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "The interactive questionnaire requires a TTY terminal.\n")
		fmt.Fprintf(os.Stderr, "Use subcommands and flags for non-interactive automation:\n\n")
		fmt.Fprintf(os.Stderr, "  migraterun assess --input responses.yaml --format json\n")
		fmt.Fprintf(os.Stderr, "  migraterun validate --input responses.csv\n")
		fmt.Fprintf(os.Stderr, "  migraterun sample\n")
		fmt.Fprintf(os.Stderr, "  migraterun --help\n")
		os.Exit(2)
	}

	if err := runInterview(cmd, args); err != nil {
		log.Error().Err(err).Msg("interview failed")
		os.Exit(1)
	}
}
