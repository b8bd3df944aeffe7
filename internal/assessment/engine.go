package assessment

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Config contains the factor weights and bounds for readiness scoring.
type Config struct {
	Factors            []Factor
	ScoreMin           float64
	ScoreMax           float64
	WeightSumTolerance float64
	Thresholds         Thresholds
}

// DefaultConfig returns the production assessment configuration.
func DefaultConfig() *Config {
	return &Config{
		Factors:            DefaultFactors(),
		ScoreMin:           0.0,
		ScoreMax:           10.0,
		WeightSumTolerance: 0.005,
		Thresholds:         DefaultThresholds(),
	}
}

// Engine computes weighted readiness scores over survey responses.
type Engine struct {
	config *Config
}

// NewEngine creates a scoring engine. A nil config selects the defaults.
func NewEngine(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{config: config}
}

// Config returns the engine's active configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Result contains the complete assessment outcome.
type Result struct {
	RunID            string             `json:"run_id"`
	Timestamp        time.Time          `json:"timestamp"`
	CompositeScore   float64            `json:"composite_score"`
	Band             Band               `json:"recommendation_band"`
	Confidence       Confidence         `json:"confidence"`
	Rationale        string             `json:"rationale"`
	NextSteps        []string           `json:"next_steps"`
	FactorScores     map[string]float64 `json:"factor_scores"`
	Contributions    map[string]float64 `json:"contributions"`
	Categories       []CategoryResult   `json:"categories,omitempty"`
	EvaluationTimeMs int64              `json:"evaluation_time_ms"`
}

// Validate checks a response set against the configured factors without
// scoring it. Every factor needs exactly one in-range response.
func (e *Engine) Validate(responses []Response) error {
	if err := e.validateWeights(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(responses))
	known := make(map[string]bool, len(e.config.Factors))
	for _, f := range e.config.Factors {
		known[f.Name] = true
	}

	for _, r := range responses {
		if !known[r.Factor] {
			return newValidationError(ErrUnknownFactor, r.Factor,
				"no configured factor matches this response")
		}
		if seen[r.Factor] {
			return newValidationError(ErrDuplicateResponse, r.Factor,
				"factor answered more than once")
		}
		seen[r.Factor] = true

		if r.Score < e.config.ScoreMin || r.Score > e.config.ScoreMax {
			return newValidationError(ErrOutOfRangeScore, r.Factor,
				"score %.2f outside [%.0f,%.0f]", r.Score, e.config.ScoreMin, e.config.ScoreMax)
		}
	}

	for _, f := range e.config.Factors {
		if !seen[f.Name] {
			return newValidationError(ErrMissingFactorResponse, f.Name,
				"no response supplied for this factor")
		}
	}

	return nil
}

// Evaluate validates the responses and computes the weighted composite score
// with its recommendation band. The computation is deterministic: identical
// inputs always produce the same composite and band.
func (e *Engine) Evaluate(responses []Response) (*Result, error) {
	startTime := time.Now()

	if err := e.Validate(responses); err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(responses))
	for _, r := range responses {
		scores[r.Factor] = r.Score
	}

	composite := 0.0
	contributions := make(map[string]float64, len(e.config.Factors))
	for _, f := range e.config.Factors {
		contribution := f.Weight * scores[f.Name]
		contributions[f.Name] = contribution
		composite += contribution
	}
	composite = e.normalizeScore(composite)

	band := e.config.Thresholds.Classify(composite)
	confidence := e.config.Thresholds.ConfidenceFor(composite, band)

	return &Result{
		RunID:            uuid.New().String(),
		Timestamp:        time.Now().UTC(),
		CompositeScore:   composite,
		Band:             band,
		Confidence:       confidence,
		Rationale:        Rationale(band, confidence),
		NextSteps:        NextSteps(band, confidence),
		FactorScores:     scores,
		Contributions:    contributions,
		EvaluationTimeMs: time.Since(startTime).Milliseconds(),
	}, nil
}

// validateWeights enforces the sum-to-1.0 invariant on the factor set.
func (e *Engine) validateWeights() error {
	if len(e.config.Factors) == 0 {
		return newValidationError(ErrInvalidWeightSum, "factors", "no factors configured")
	}

	for _, f := range e.config.Factors {
		if f.Weight < 0 {
			return newValidationError(ErrInvalidWeightSum, f.Name,
				"negative weight %.3f", f.Weight)
		}
	}

	sum := WeightSum(e.config.Factors)
	if math.Abs(sum-1.0) > e.config.WeightSumTolerance {
		return newValidationError(ErrInvalidWeightSum, "factors",
			"weights sum to %.4f, expected 1.0 ± %.3f", sum, e.config.WeightSumTolerance)
	}

	return nil
}

// normalizeScore keeps the composite within the configured bounds.
func (e *Engine) normalizeScore(score float64) float64 {
	return math.Min(e.config.ScoreMax, math.Max(e.config.ScoreMin, score))
}
