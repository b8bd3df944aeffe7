package assessment

// Factor is one weighted criterion in the deployment decision.
type Factor struct {
	Name   string  `json:"name" yaml:"name"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Response is a respondent's rating for one factor on the configured scale.
type Response struct {
	Factor string  `json:"factor" yaml:"factor"`
	Score  float64 `json:"score" yaml:"score"`
}

// Canonical factor names used by the default configuration and the built-in
// questionnaire.
const (
	FactorOrganizationalAutonomy = "organizational_autonomy"
	FactorTechnicalComplexity    = "technical_complexity"
	FactorTimelineCriticality    = "timeline_criticality"
	FactorResourceAvailability   = "resource_availability"
	FactorRiskTolerance          = "risk_tolerance"
)

// DefaultFactors returns the production weight allocation across the five
// readiness dimensions.
func DefaultFactors() []Factor {
	return []Factor{
		{Name: FactorOrganizationalAutonomy, Weight: 0.25},
		{Name: FactorTechnicalComplexity, Weight: 0.20},
		{Name: FactorTimelineCriticality, Weight: 0.20},
		{Name: FactorResourceAvailability, Weight: 0.15},
		{Name: FactorRiskTolerance, Weight: 0.20},
	}
}

// WeightSum returns the total weight across a factor set.
func WeightSum(factors []Factor) float64 {
	sum := 0.0
	for _, f := range factors {
		sum += f.Weight
	}
	return sum
}
