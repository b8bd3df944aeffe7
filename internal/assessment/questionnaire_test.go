package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateQuestionnaire_SampleScenario(t *testing.T) {
	engine := NewEngine(nil)

	result, err := engine.EvaluateQuestionnaire(DefaultQuestionnaire(), SampleResponses())
	require.NoError(t, err)

	// Category means: org 8.5, tech 7.5, timeline 8.0, resource 7.75, risk 8.25.
	// Weighted: 0.25×8.5 + 0.20×7.5 + 0.20×8.0 + 0.15×7.75 + 0.20×8.25 = 8.0375
	assert.InDelta(t, 8.0375, result.CompositeScore, 1e-9)
	assert.Equal(t, BandSeparateInstance, result.Band)
	assert.Equal(t, ConfidenceHigh, result.Confidence)

	require.Len(t, result.Categories, 5)
	byFactor := make(map[string]CategoryResult, len(result.Categories))
	for _, c := range result.Categories {
		byFactor[c.Factor] = c
	}

	assert.InDelta(t, 8.5, byFactor[FactorOrganizationalAutonomy].Score, 1e-9)
	assert.InDelta(t, 7.5, byFactor[FactorTechnicalComplexity].Score, 1e-9)
	assert.InDelta(t, 8.0, byFactor[FactorTimelineCriticality].Score, 1e-9)
	assert.InDelta(t, 7.75, byFactor[FactorResourceAvailability].Score, 1e-9)
	assert.InDelta(t, 8.25, byFactor[FactorRiskTolerance].Score, 1e-9)

	for _, c := range result.Categories {
		assert.NotEmpty(t, c.Recommendation, "category %s", c.Factor)
		assert.Len(t, c.Breakdown, 4)
	}
}

func TestEvaluateQuestionnaire_MissingQuestion(t *testing.T) {
	engine := NewEngine(nil)

	responses := SampleResponses()
	delete(responses[FactorRiskTolerance], "dependency_risk")

	_, err := engine.EvaluateQuestionnaire(DefaultQuestionnaire(), responses)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFactorResponse)
	assert.Contains(t, err.Error(), "risk_tolerance.dependency_risk")
}

func TestEvaluateQuestionnaire_MissingCategory(t *testing.T) {
	engine := NewEngine(nil)

	responses := SampleResponses()
	delete(responses, FactorResourceAvailability)

	_, err := engine.EvaluateQuestionnaire(DefaultQuestionnaire(), responses)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFactorResponse)
	assert.Contains(t, err.Error(), FactorResourceAvailability)
}

func TestEvaluateQuestionnaire_OutOfRangeAnswer(t *testing.T) {
	engine := NewEngine(nil)

	responses := SampleResponses()
	responses[FactorTechnicalComplexity]["data_control"] = 12

	_, err := engine.EvaluateQuestionnaire(DefaultQuestionnaire(), responses)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRangeScore)
}

func TestEvaluateQuestionnaire_UnknownEntries(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("unknown_category", func(t *testing.T) {
		responses := SampleResponses()
		responses["vibes"] = map[string]float64{"general": 10}

		_, err := engine.EvaluateQuestionnaire(DefaultQuestionnaire(), responses)
		assert.ErrorIs(t, err, ErrUnknownFactor)
	})

	t.Run("unknown_question", func(t *testing.T) {
		responses := SampleResponses()
		responses[FactorRiskTolerance]["mystery"] = 5

		_, err := engine.EvaluateQuestionnaire(DefaultQuestionnaire(), responses)
		assert.ErrorIs(t, err, ErrUnknownFactor)
	})
}

func TestCategoryRecommendation_Tiers(t *testing.T) {
	strong := CategoryRecommendation(FactorOrganizationalAutonomy, 8.0)
	moderate := CategoryRecommendation(FactorOrganizationalAutonomy, 6.5)
	low := CategoryRecommendation(FactorOrganizationalAutonomy, 3.0)

	assert.Contains(t, strong, "strongly favor")
	assert.Contains(t, moderate, "Moderate")
	assert.Contains(t, low, "enterprise integration")
	assert.Empty(t, CategoryRecommendation("unknown", 5.0))
}
