package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FlatYAML(t *testing.T) {
	path := writeInput(t, "responses.yaml", `
responses:
  organizational_autonomy: 9
  technical_complexity: 8
  timeline_criticality: 7
  resource_availability: 6
  risk_tolerance: 8
`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.False(t, doc.HasQuestionnaire())

	responses := doc.FlatResponses()
	require.Len(t, responses, 5)
	// Stable alphabetical order.
	assert.Equal(t, "organizational_autonomy", responses[0].Factor)
	assert.Equal(t, 9.0, responses[0].Score)
}

func TestLoad_QuestionnaireYAML(t *testing.T) {
	path := writeInput(t, "survey.yml", `
questionnaire:
  organizational_autonomy:
    independent_budget: 9
    decision_timeline: 8
`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.True(t, doc.HasQuestionnaire())
	assert.Equal(t, 9.0, doc.Questionnaire["organizational_autonomy"]["independent_budget"])
}

func TestLoad_JSON(t *testing.T) {
	path := writeInput(t, "responses.json",
		`{"responses": {"organizational_autonomy": 9.5, "risk_tolerance": 4}}`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9.5, doc.Responses["organizational_autonomy"])
	assert.Equal(t, 4.0, doc.Responses["risk_tolerance"])
}

func TestLoad_CSV(t *testing.T) {
	path := writeInput(t, "responses.csv",
		"factor,score\norganizational_autonomy,9\nrisk_tolerance,7.5\n")

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Responses, 2)
	assert.Equal(t, 9.0, doc.Responses["organizational_autonomy"])
	assert.Equal(t, 7.5, doc.Responses["risk_tolerance"])
}

func TestLoad_CSVWithoutHeader(t *testing.T) {
	path := writeInput(t, "responses.csv",
		"organizational_autonomy,9\nrisk_tolerance,7.5\n")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Responses, 2)
}

func TestLoad_CSVBadScore(t *testing.T) {
	path := writeInput(t, "responses.csv",
		"factor,score\norganizational_autonomy,high\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid score")
}

func TestLoad_RejectsAmbiguousAndEmptyDocuments(t *testing.T) {
	t.Run("both_sections", func(t *testing.T) {
		path := writeInput(t, "both.yaml", `
responses:
  risk_tolerance: 5
questionnaire:
  risk_tolerance:
    failure_tolerance: 5
`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		path := writeInput(t, "empty.yaml", "{}\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeInput(t, "responses.toml", "x = 1\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input format")
}
