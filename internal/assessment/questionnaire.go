package assessment

// Question is a single survey item scored on the assessment scale.
type Question struct {
	Key    string `json:"key" yaml:"key"`
	Prompt string `json:"prompt" yaml:"prompt"`
}

// Category groups the questions that feed one weighted factor. The category
// score is the mean of its question scores.
type Category struct {
	Factor    string     `json:"factor" yaml:"factor"`
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// QuestionnaireResponses maps factor name to question key to raw score.
type QuestionnaireResponses map[string]map[string]float64

// CategoryResult is the scored breakdown for one assessment category.
type CategoryResult struct {
	Factor         string             `json:"factor"`
	Title          string             `json:"title"`
	Score          float64            `json:"composite_score"`
	Recommendation string             `json:"recommendation"`
	Breakdown      map[string]float64 `json:"breakdown"`
}

// DefaultQuestionnaire returns the five-category readiness survey.
func DefaultQuestionnaire() []Category {
	return []Category{
		{
			Factor: FactorOrganizationalAutonomy,
			Title:  "Organizational",
			Questions: []Question{
				{Key: "independent_budget", Prompt: "How much independent budget control does the division hold?"},
				{Key: "decision_timeline", Prompt: "How quickly can the division make binding decisions on its own?"},
				{Key: "division_priorities", Prompt: "How strongly do division priorities diverge from enterprise priorities?"},
				{Key: "outcome_ownership", Prompt: "How directly is the division accountable for migration outcomes?"},
			},
		},
		{
			Factor: FactorTechnicalComplexity,
			Title:  "Technical",
			Questions: []Question{
				{Key: "integration_needs", Prompt: "How limited are the required integrations with enterprise systems?"},
				{Key: "data_control", Prompt: "How strict are the division's data sovereignty requirements?"},
				{Key: "security_complexity", Prompt: "How demanding are the division-specific security requirements?"},
				{Key: "custom_workflows", Prompt: "How extensive are the division-specific workflow customizations?"},
			},
		},
		{
			Factor: FactorTimelineCriticality,
			Title:  "Timeline",
			Questions: []Question{
				{Key: "market_pressure", Prompt: "How strong is the business pressure to deliver quickly?"},
				{Key: "regulatory_timeline", Prompt: "How firm are the compliance or regulatory deadlines?"},
				{Key: "strategic_timing", Prompt: "How much competitive advantage depends on delivery timing?"},
				{Key: "delay_sensitivity", Prompt: "How costly would a coordination-driven delay be?"},
			},
		},
		{
			Factor: FactorResourceAvailability,
			Title:  "Resource",
			Questions: []Question{
				{Key: "team_availability", Prompt: "How available is a dedicated implementation team?"},
				{Key: "budget_flexibility", Prompt: "How flexible is the funding model for an independent project?"},
				{Key: "vendor_access", Prompt: "How direct is the division's access to the vendor?"},
				{Key: "internal_capability", Prompt: "How strong is the internal platform expertise?"},
			},
		},
		{
			Factor: FactorRiskTolerance,
			Title:  "Risk",
			Questions: []Question{
				{Key: "failure_tolerance", Prompt: "How intolerant is the service of implementation failure?"},
				{Key: "downtime_sensitivity", Prompt: "How sensitive are operations to migration downtime?"},
				{Key: "upgrade_flexibility", Prompt: "How important are independent upgrade cycles?"},
				{Key: "dependency_risk", Prompt: "How costly are cross-division coordination dependencies?"},
			},
		},
	}
}

// Category recommendation tiers on the 0-10 scale.
const (
	categoryStrongCutoff   = 7.5
	categoryModerateCutoff = 6.0
)

var categoryRecommendations = map[string][3]string{
	FactorOrganizationalAutonomy: {
		"High autonomy requirements strongly favor separate instance deployment",
		"Moderate autonomy needs support separate instance consideration",
		"Current autonomy requirements may be met through enterprise integration",
	},
	FactorTechnicalComplexity: {
		"Technical factors strongly support simplified separate instance architecture",
		"Technical complexity moderate - evaluate integration vs. independence trade-offs",
		"Technical requirements may benefit from shared enterprise infrastructure",
	},
	FactorTimelineCriticality: {
		"Critical timeline requirements strongly favor accelerated separate instance approach",
		"Timeline considerations support separate instance for faster delivery",
		"Timeline flexibility allows for coordinated enterprise implementation",
	},
	FactorResourceAvailability: {
		"Strong resource availability enables dedicated separate instance implementation",
		"Adequate resources available for separate instance approach",
		"Resource constraints may benefit from shared enterprise approach",
	},
	FactorRiskTolerance: {
		"Risk profile strongly supports independent implementation approach",
		"Risk considerations favor separate instance for reduced dependencies",
		"Risk tolerance may accommodate enterprise coordination requirements",
	},
}

// CategoryRecommendation returns the tiered guidance line for a category score.
func CategoryRecommendation(factor string, score float64) string {
	tiers, ok := categoryRecommendations[factor]
	if !ok {
		return ""
	}
	switch {
	case score >= categoryStrongCutoff:
		return tiers[0]
	case score >= categoryModerateCutoff:
		return tiers[1]
	default:
		return tiers[2]
	}
}

// EvaluateQuestionnaire scores a category questionnaire: each category score
// is the mean of its question responses, and the category scores feed the
// weighted composite as the flat factor responses.
func (e *Engine) EvaluateQuestionnaire(categories []Category, qr QuestionnaireResponses) (*Result, error) {
	responses, categoryResults, err := e.scoreCategories(categories, qr)
	if err != nil {
		return nil, err
	}

	result, err := e.Evaluate(responses)
	if err != nil {
		return nil, err
	}

	result.Categories = categoryResults
	return result, nil
}

// scoreCategories validates the questionnaire answers and reduces each
// category to its mean score.
func (e *Engine) scoreCategories(categories []Category, qr QuestionnaireResponses) ([]Response, []CategoryResult, error) {
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.Factor] = true
	}
	for factor := range qr {
		if !known[factor] {
			return nil, nil, newValidationError(ErrUnknownFactor, factor,
				"no questionnaire category matches this response block")
		}
	}

	responses := make([]Response, 0, len(categories))
	results := make([]CategoryResult, 0, len(categories))

	for _, c := range categories {
		answers, ok := qr[c.Factor]
		if !ok {
			return nil, nil, newValidationError(ErrMissingFactorResponse, c.Factor,
				"no responses supplied for this category")
		}

		breakdown := make(map[string]float64, len(c.Questions))
		sum := 0.0
		for _, q := range c.Questions {
			score, ok := answers[q.Key]
			if !ok {
				return nil, nil, newValidationError(ErrMissingFactorResponse,
					c.Factor+"."+q.Key, "question not answered")
			}
			if score < e.config.ScoreMin || score > e.config.ScoreMax {
				return nil, nil, newValidationError(ErrOutOfRangeScore,
					c.Factor+"."+q.Key, "score %.2f outside [%.0f,%.0f]",
					score, e.config.ScoreMin, e.config.ScoreMax)
			}
			breakdown[q.Key] = score
			sum += score
		}

		for key := range answers {
			if _, ok := breakdown[key]; !ok {
				return nil, nil, newValidationError(ErrUnknownFactor,
					c.Factor+"."+key, "no questionnaire item matches this response")
			}
		}

		categoryScore := sum / float64(len(c.Questions))
		responses = append(responses, Response{Factor: c.Factor, Score: categoryScore})
		results = append(results, CategoryResult{
			Factor:         c.Factor,
			Title:          c.Title,
			Score:          categoryScore,
			Recommendation: CategoryRecommendation(c.Factor, categoryScore),
			Breakdown:      breakdown,
		})
	}

	return responses, results, nil
}
