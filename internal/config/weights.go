package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/migraterun/migraterun/internal/assessment"
)

// FileConfig is the on-disk schema for assessment configuration.
type FileConfig struct {
	Factors    []FactorConfig   `yaml:"factors"`
	Scale      ScaleConfig      `yaml:"scale"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Validation ValidationConfig `yaml:"validation"`
}

// FactorConfig declares one weighted factor.
type FactorConfig struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// ScaleConfig declares the raw score bounds.
type ScaleConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ThresholdsConfig declares the recommendation band cutoffs.
type ThresholdsConfig struct {
	SeparateInstance      float64 `yaml:"separate_instance"`
	EnterpriseIntegration float64 `yaml:"enterprise_integration"`
	StrongConfidence      float64 `yaml:"strong_confidence"`
}

// ValidationConfig declares tolerances for configuration validation.
type ValidationConfig struct {
	WeightSumTolerance float64 `yaml:"weight_sum_tolerance"`
}

// Load reads and validates an assessment configuration file, converting it
// to the engine's config type.
func Load(configPath string) (*assessment.Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	cfg, err := fc.toEngineConfig()
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// toEngineConfig validates the file schema and builds the engine config.
func (fc *FileConfig) toEngineConfig() (*assessment.Config, error) {
	if len(fc.Factors) == 0 {
		return nil, fmt.Errorf("no factors configured")
	}

	tolerance := fc.Validation.WeightSumTolerance
	if tolerance == 0 {
		tolerance = assessment.DefaultConfig().WeightSumTolerance
	}

	seen := make(map[string]bool, len(fc.Factors))
	factors := make([]assessment.Factor, 0, len(fc.Factors))
	for _, f := range fc.Factors {
		if f.Name == "" {
			return nil, fmt.Errorf("factor with empty name")
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("duplicate factor: %s", f.Name)
		}
		seen[f.Name] = true

		if f.Weight < 0 {
			return nil, fmt.Errorf("factor %s has negative weight: %.3f", f.Name, f.Weight)
		}
		factors = append(factors, assessment.Factor{Name: f.Name, Weight: f.Weight})
	}

	sum := assessment.WeightSum(factors)
	if math.Abs(sum-1.0) > tolerance {
		return nil, fmt.Errorf("%w: weights sum to %.4f, expected 1.0 ± %.3f",
			assessment.ErrInvalidWeightSum, sum, tolerance)
	}

	if fc.Scale.Max <= fc.Scale.Min {
		return nil, fmt.Errorf("scale max %.1f must exceed min %.1f", fc.Scale.Max, fc.Scale.Min)
	}

	t := fc.Thresholds
	if t.EnterpriseIntegration >= t.SeparateInstance {
		return nil, fmt.Errorf("enterprise_integration threshold %.1f must be below separate_instance %.1f",
			t.EnterpriseIntegration, t.SeparateInstance)
	}
	if t.StrongConfidence < t.SeparateInstance {
		return nil, fmt.Errorf("strong_confidence threshold %.1f must be at or above separate_instance %.1f",
			t.StrongConfidence, t.SeparateInstance)
	}
	if t.SeparateInstance > fc.Scale.Max || t.EnterpriseIntegration < fc.Scale.Min {
		return nil, fmt.Errorf("thresholds outside score scale [%.1f,%.1f]", fc.Scale.Min, fc.Scale.Max)
	}

	return &assessment.Config{
		Factors:            factors,
		ScoreMin:           fc.Scale.Min,
		ScoreMax:           fc.Scale.Max,
		WeightSumTolerance: tolerance,
		Thresholds: assessment.Thresholds{
			SeparateInstance:      t.SeparateInstance,
			EnterpriseIntegration: t.EnterpriseIntegration,
			StrongConfidence:      t.StrongConfidence,
		},
	}, nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join("config", "assessment.yaml")
}
