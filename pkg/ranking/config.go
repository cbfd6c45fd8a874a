package ranking

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FeatureName identifies one of the eight pure scoring features.
type FeatureName string

const (
	FeatureExactMatch       FeatureName = "exact_match"
	FeaturePrefixMatch      FeatureName = "prefix_match"
	FeatureContainsMatch    FeatureName = "contains_match"
	FeatureFrequency        FeatureName = "frequency"
	FeaturePOSWeight        FeatureName = "pos_weight"
	FeatureKatakanaDemotion FeatureName = "katakana_demotion"
	FeatureCanonicalNative  FeatureName = "canonical_native"
	FeatureParentheticalHint FeatureName = "parenthetical_hint"
)

// knownFeatureNames is the closed set Validate checks unknown names
// against.
var knownFeatureNames = map[FeatureName]bool{
	FeatureExactMatch:        true,
	FeaturePrefixMatch:       true,
	FeatureContainsMatch:     true,
	FeatureFrequency:         true,
	FeaturePOSWeight:         true,
	FeatureKatakanaDemotion:  true,
	FeatureCanonicalNative:   true,
	FeatureParentheticalHint: true,
}

// Range is a feature's declared clamp range, lo <= hi.
type Range struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// Feature is one scoring feature's configuration: its declared range,
// weight, and whether it participates in scoring at all.
type Feature struct {
	Name    FeatureName `yaml:"name"`
	Enabled bool        `yaml:"enabled"`
	Weight  float64     `yaml:"weight"`
	Range   Range       `yaml:"range"`
}

// Configuration is the full feature set driving the ranking engine.
type Configuration struct {
	Features []Feature `yaml:"features"`
}

// Validate rejects range.lo > range.hi, weight < 0 || weight > 10, and
// unknown feature names.
func (c Configuration) Validate() error {
	for _, f := range c.Features {
		if !knownFeatureNames[f.Name] {
			return fmt.Errorf("ranking: unknown feature name %q", f.Name)
		}
		if f.Range.Lo > f.Range.Hi {
			return fmt.Errorf("ranking: feature %q has range.lo > range.hi (%v > %v)", f.Name, f.Range.Lo, f.Range.Hi)
		}
		if f.Weight < 0 || f.Weight > 10 {
			return fmt.Errorf("ranking: feature %q has out-of-range weight %v", f.Name, f.Weight)
		}
	}
	return nil
}

//go:embed default_config.yaml
var defaultConfigYAML []byte

// defaultConfigFallback is the pure-Go struct equivalent of
// default_config.yaml, used if the embedded document ever fails to
// parse (it never should, since it ships with the binary) so that
// DefaultConfiguration always returns usable weights.
var defaultConfigFallback = Configuration{
	Features: []Feature{
		{Name: FeatureExactMatch, Enabled: true, Weight: 2.0, Range: Range{Lo: 0, Hi: 100}},
		{Name: FeaturePrefixMatch, Enabled: true, Weight: 1.2, Range: Range{Lo: 0, Hi: 60}},
		{Name: FeatureContainsMatch, Enabled: true, Weight: 0.8, Range: Range{Lo: 0, Hi: 30}},
		{Name: FeatureFrequency, Enabled: true, Weight: 1.0, Range: Range{Lo: 0, Hi: 40}},
		{Name: FeaturePOSWeight, Enabled: true, Weight: 1.0, Range: Range{Lo: -20, Hi: 20}},
		{Name: FeatureKatakanaDemotion, Enabled: true, Weight: 1.0, Range: Range{Lo: -30, Hi: 0}},
		{Name: FeatureCanonicalNative, Enabled: true, Weight: 2.0, Range: Range{Lo: 0, Hi: 80}},
		{Name: FeatureParentheticalHint, Enabled: true, Weight: 1.5, Range: Range{Lo: 0, Hi: 40}},
	},
}

// DefaultConfiguration parses the embedded default_config.yaml. Callers
// needing a different weighting scheme construct their own
// Configuration and pass it to the Search Service instead.
func DefaultConfiguration() (Configuration, error) {
	var cfg Configuration
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return defaultConfigFallback, nil
	}
	if err := cfg.Validate(); err != nil {
		return defaultConfigFallback, nil
	}
	return cfg, nil
}

// weightFor returns the configured weight, range, and enabled flag for
// name, or zero values with enabled=false if name isn't present. A
// disabled feature's configured weight is returned unchanged alongside
// enabled=false.
func (c Configuration) weightFor(name FeatureName) (weight float64, rng Range, enabled bool) {
	for _, f := range c.Features {
		if f.Name == name {
			return f.Weight, f.Range, f.Enabled
		}
	}
	return 0, Range{}, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
