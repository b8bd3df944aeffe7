package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/migraterun/migraterun/internal/assessment"
)

func sampleResult(t *testing.T) *assessment.Result {
	t.Helper()
	engine := assessment.NewEngine(nil)
	result, err := engine.EvaluateQuestionnaire(assessment.DefaultQuestionnaire(), assessment.SampleResponses())
	require.NoError(t, err)
	return result
}

func TestEmitText_FullReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEmitter().EmitText(&buf, sampleResult(t)))
	out := buf.String()

	assert.Contains(t, out, "MIGRATION READINESS ASSESSMENT REPORT")
	assert.Contains(t, out, "ORGANIZATIONAL ASSESSMENT:")
	assert.Contains(t, out, "RISK ASSESSMENT:")
	assert.Contains(t, out, "Weighted Score: 8.04/10")
	assert.Contains(t, out, "Recommendation: SEPARATE_INSTANCE")
	assert.Contains(t, out, "Confidence Level: HIGH")
	assert.Contains(t, out, "RECOMMENDED NEXT STEPS:")
	assert.Contains(t, out, "1. Proceed with separate instance architecture planning")
}

func TestEmitText_FlatResult(t *testing.T) {
	engine := assessment.NewEngine(nil)
	result, err := engine.Evaluate([]assessment.Response{
		{Factor: assessment.FactorOrganizationalAutonomy, Score: 3},
		{Factor: assessment.FactorTechnicalComplexity, Score: 3},
		{Factor: assessment.FactorTimelineCriticality, Score: 3},
		{Factor: assessment.FactorResourceAvailability, Score: 3},
		{Factor: assessment.FactorRiskTolerance, Score: 3},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewEmitter().EmitText(&buf, result))
	out := buf.String()

	assert.Contains(t, out, "FACTOR CONTRIBUTIONS:")
	assert.Contains(t, out, "Recommendation: ENTERPRISE_INTEGRATION")
	assert.NotContains(t, out, "ASSESSMENT RESULTS BY CATEGORY")
}

func TestEmitJSON_RoundTrip(t *testing.T) {
	result := sampleResult(t)

	var buf bytes.Buffer
	require.NoError(t, NewEmitter().EmitJSON(&buf, result))

	var decoded assessment.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, result.RunID, decoded.RunID)
	assert.InDelta(t, 8.0375, decoded.CompositeScore, 1e-9)
	assert.Equal(t, assessment.BandSeparateInstance, decoded.Band)
	assert.Len(t, decoded.Categories, 5)
}

func TestEmitCSV_Rows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEmitter().EmitCSV(&buf, sampleResult(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header + five factors + composite row.
	require.Len(t, records, 7)
	assert.Equal(t, []string{"Factor", "Score", "Contribution", "Band", "Confidence"}, records[0])

	last := records[len(records)-1]
	assert.Equal(t, "composite", last[0])
	assert.Equal(t, "8.0375", last[1])
	assert.Equal(t, "SEPARATE_INSTANCE", last[3])
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "JSON", "csv"} {
		format, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(strings.ToLower(s)), format)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestGetScoreSummary(t *testing.T) {
	summary := GetScoreSummary(sampleResult(t))
	assert.Contains(t, summary, "8.04/10")
	assert.Contains(t, summary, "SEPARATE_INSTANCE")
}
