// Package report renders assessment results as a human-readable breakdown,
// an indented JSON artifact, or CSV rows for spreadsheet import.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/migraterun/migraterun/internal/assessment"
)

// Format selects the output rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, json, or csv)", s)
	}
}

type Emitter struct{}

func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit renders the result in the requested format.
func (e *Emitter) Emit(w io.Writer, result *assessment.Result, format Format) error {
	switch format {
	case FormatJSON:
		return e.EmitJSON(w, result)
	case FormatCSV:
		return e.EmitCSV(w, result)
	default:
		return e.EmitText(w, result)
	}
}

// EmitJSON writes the result as an indented JSON artifact.
func (e *Emitter) EmitJSON(w io.Writer, result *assessment.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON result: %w", err)
	}
	return nil
}

// EmitCSV writes one row per factor plus a composite row.
func (e *Emitter) EmitCSV(w io.Writer, result *assessment.Result) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Factor", "Score", "Contribution", "Band", "Confidence"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, name := range sortedFactorNames(result) {
		record := []string{
			name,
			fmt.Sprintf("%.2f", result.FactorScores[name]),
			fmt.Sprintf("%.4f", result.Contributions[name]),
			"", "",
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	composite := []string{
		"composite",
		fmt.Sprintf("%.4f", result.CompositeScore),
		fmt.Sprintf("%.4f", result.CompositeScore),
		string(result.Band),
		string(result.Confidence),
	}
	if err := writer.Write(composite); err != nil {
		return fmt.Errorf("failed to write CSV composite row: %w", err)
	}

	return nil
}

// EmitText writes the full readable assessment report.
func (e *Emitter) EmitText(w io.Writer, result *assessment.Result) error {
	var b strings.Builder
	rule := strings.Repeat("=", 72)

	b.WriteString(rule + "\n")
	b.WriteString("MIGRATION READINESS ASSESSMENT REPORT\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Run ID: %s\n", result.RunID)
	fmt.Fprintf(&b, "Assessment Date: %s\n\n", result.Timestamp.Format("2006-01-02 15:04:05"))

	if len(result.Categories) > 0 {
		b.WriteString("ASSESSMENT RESULTS BY CATEGORY:\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, c := range result.Categories {
			fmt.Fprintf(&b, "\n%s ASSESSMENT:\n", strings.ToUpper(c.Title))
			fmt.Fprintf(&b, "  Composite Score: %.1f/10\n", c.Score)
			fmt.Fprintf(&b, "  Recommendation: %s\n", c.Recommendation)
			b.WriteString("  Factor Breakdown:\n")
			for _, key := range sortedKeys(c.Breakdown) {
				fmt.Fprintf(&b, "    %s: %g/10\n", key, c.Breakdown[key])
			}
		}
		b.WriteString("\n")
	} else {
		b.WriteString("FACTOR CONTRIBUTIONS:\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, name := range sortedFactorNames(result) {
			fmt.Fprintf(&b, "  %s: %.1f/10 (weighted %.2f)\n",
				name, result.FactorScores[name], result.Contributions[name])
		}
		b.WriteString("\n")
	}

	b.WriteString(rule + "\n")
	b.WriteString("OVERALL RECOMMENDATION:\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Weighted Score: %.2f/10\n", result.CompositeScore)
	fmt.Fprintf(&b, "Recommendation: %s\n", result.Band)
	fmt.Fprintf(&b, "Confidence Level: %s\n", result.Confidence)
	fmt.Fprintf(&b, "\nRationale: %s\n", result.Rationale)

	b.WriteString("\nRECOMMENDED NEXT STEPS:\n")
	for i, step := range result.NextSteps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	b.WriteString(rule + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}

// GetScoreSummary returns a one-line result summary for log output.
func GetScoreSummary(result *assessment.Result) string {
	return fmt.Sprintf("score %.2f/10 → %s (%s confidence, %dms)",
		result.CompositeScore, result.Band, result.Confidence, result.EvaluationTimeMs)
}

func sortedFactorNames(result *assessment.Result) []string {
	return sortedKeys(result.FactorScores)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
