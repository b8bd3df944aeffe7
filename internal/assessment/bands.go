package assessment

// Band is the recommended deployment model derived from the composite score.
type Band string

const (
	BandSeparateInstance      Band = "SEPARATE_INSTANCE"
	BandEnterpriseIntegration Band = "ENTERPRISE_INTEGRATION"
	BandMixed                 Band = "MIXED"
)

// Confidence qualifies how strongly the factors support the band.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
)

// Thresholds holds the band cutoffs on the composite scale.
// SeparateInstance is inclusive (a tie at the boundary resolves to the
// higher-scoring band); EnterpriseIntegration covers scores at or below its
// cutoff; everything between is Mixed. StrongConfidence marks the composite
// level at which a SeparateInstance call is reported with high confidence.
type Thresholds struct {
	SeparateInstance      float64
	EnterpriseIntegration float64
	StrongConfidence      float64
}

// DefaultThresholds returns the production band cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SeparateInstance:      7.0,
		EnterpriseIntegration: 4.0,
		StrongConfidence:      7.5,
	}
}

// Classify maps a composite score to its recommendation band.
func (t Thresholds) Classify(score float64) Band {
	switch {
	case score >= t.SeparateInstance:
		return BandSeparateInstance
	case score <= t.EnterpriseIntegration:
		return BandEnterpriseIntegration
	default:
		return BandMixed
	}
}

// ConfidenceFor qualifies the band call for a given composite score.
func (t Thresholds) ConfidenceFor(score float64, band Band) Confidence {
	if band == BandSeparateInstance && score >= t.StrongConfidence {
		return ConfidenceHigh
	}
	return ConfidenceMedium
}

// Rationale returns the one-line justification attached to a band call.
func Rationale(band Band, confidence Confidence) string {
	switch band {
	case BandSeparateInstance:
		if confidence == ConfidenceHigh {
			return "Multiple factors strongly favor separate instance deployment for operational independence and accelerated delivery."
		}
		return "Several factors favor separate instance approach, though some considerations may benefit from additional evaluation."
	case BandEnterpriseIntegration:
		return "Current factors suggest enterprise integration approach may provide better alignment with organizational needs."
	default:
		return "Mixed factors require detailed analysis of specific organizational priorities and constraints."
	}
}

// NextSteps returns the recommended follow-up actions for a band call.
func NextSteps(band Band, confidence Confidence) []string {
	switch band {
	case BandSeparateInstance:
		if confidence == ConfidenceHigh {
			return []string{
				"Proceed with separate instance architecture planning",
				"Develop SOW amendment for scope redefinition",
				"Create dedicated project timeline and resource plan",
				"Establish independent vendor relationship framework",
			}
		}
		return []string{
			"Conduct detailed cost-benefit analysis comparing approaches",
			"Validate resource availability and timeline requirements",
			"Develop risk mitigation strategies for independent implementation",
			"Engage stakeholders for deployment approach confirmation",
		}
	case BandEnterpriseIntegration:
		return []string{
			"Develop enterprise integration timeline and coordination plan",
			"Establish shared governance and decision-making framework",
			"Create multi-divisional communication and change management strategy",
			"Define shared infrastructure requirements and dependencies",
		}
	default:
		return []string{
			"Perform detailed stakeholder requirements analysis",
			"Conduct pilot evaluation of both approaches",
			"Develop comparative implementation scenarios",
			"Schedule decision workshop with key stakeholders",
		}
	}
}
