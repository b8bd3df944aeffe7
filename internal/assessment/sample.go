package assessment

// SampleResponses returns a demonstration scenario modeled on a large
// municipal water utility: high autonomy, firm deadlines, strong funding,
// low tolerance for cross-division dependencies.
func SampleResponses() QuestionnaireResponses {
	return QuestionnaireResponses{
		FactorOrganizationalAutonomy: {
			"independent_budget":  9,
			"decision_timeline":   8,
			"division_priorities": 9,
			"outcome_ownership":   8,
		},
		FactorTechnicalComplexity: {
			"integration_needs":   6,
			"data_control":        9,
			"security_complexity": 7,
			"custom_workflows":    8,
		},
		FactorTimelineCriticality: {
			"market_pressure":     7,
			"regulatory_timeline": 8,
			"strategic_timing":    9,
			"delay_sensitivity":   8,
		},
		FactorResourceAvailability: {
			"team_availability":   8,
			"budget_flexibility":  9,
			"vendor_access":       7,
			"internal_capability": 7,
		},
		FactorRiskTolerance: {
			"failure_tolerance":    9,
			"downtime_sensitivity": 8,
			"upgrade_flexibility":  7,
			"dependency_risk":      9,
		},
	}
}
