// Package input loads survey responses from flat files: YAML or JSON
// documents carrying either a flat factor map or a category questionnaire,
// or two-column CSV for spreadsheet exports.
package input

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/migraterun/migraterun/internal/assessment"
)

// Document is the parsed input record set. Exactly one of Responses or
// Questionnaire is populated.
type Document struct {
	Responses     map[string]float64                `yaml:"responses" json:"responses"`
	Questionnaire assessment.QuestionnaireResponses `yaml:"questionnaire" json:"questionnaire"`
}

// HasQuestionnaire reports whether the document carries category-level
// question answers rather than flat factor scores.
func (d *Document) HasQuestionnaire() bool {
	return len(d.Questionnaire) > 0
}

// FlatResponses converts the flat map to engine responses in stable order.
func (d *Document) FlatResponses() []assessment.Response {
	names := make([]string, 0, len(d.Responses))
	for name := range d.Responses {
		names = append(names, name)
	}
	sort.Strings(names)

	responses := make([]assessment.Response, 0, len(names))
	for _, name := range names {
		responses = append(responses, assessment.Response{Factor: name, Score: d.Responses[name]})
	}
	return responses
}

// Load reads an input document. The format follows the file extension
// (.yaml/.yml, .json, .csv); "-" reads YAML from stdin.
func Load(path string) (*Document, error) {
	if path == "-" {
		return parseYAML(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(file)
	case ".json":
		return parseJSON(file)
	case ".csv":
		return parseCSV(file)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .yaml, .json, or .csv)", filepath.Ext(path))
	}
}

func parseYAML(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML input: %w", err)
	}
	return validateDocument(&doc)
}

func parseJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON input: %w", err)
	}
	return validateDocument(&doc)
}

// parseCSV reads flat two-column records (factor,score). A header row with a
// non-numeric second column is skipped.
func parseCSV(r io.Reader) (*Document, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV input: %w", err)
	}

	doc := &Document{Responses: make(map[string]float64, len(records))}
	for i, record := range records {
		score, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("CSV row %d: invalid score %q", i+1, record[1])
		}
		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("CSV row %d: empty factor name", i+1)
		}
		doc.Responses[name] = score
	}

	return validateDocument(doc)
}

func validateDocument(doc *Document) (*Document, error) {
	hasFlat := len(doc.Responses) > 0
	hasQuestionnaire := len(doc.Questionnaire) > 0

	if hasFlat && hasQuestionnaire {
		return nil, fmt.Errorf("input carries both flat responses and a questionnaire; supply one")
	}
	if !hasFlat && !hasQuestionnaire {
		return nil, fmt.Errorf("input carries no responses")
	}
	return doc, nil
}
