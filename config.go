package fxaa

import (
	"fmt"
	"math"

	"github.com/gogpu/fxaa/internal/filter"
)

// Weights are the red, green and blue luminance coefficients.
// They should be non-negative and are recommended to sum to 1.
type Weights = filter.Weights

// Luminance weight presets.
var (
	// PerceptualWeights are {0.299, 0.587, 0.114}.
	PerceptualWeights = filter.PerceptualWeights

	// UniformWeights are {0.333, 0.333, 0.333}.
	UniformWeights = filter.UniformWeights
)

// BlendPolicy selects how edge pixels are mixed with their neighbors.
type BlendPolicy = filter.BlendPolicy

// Blend policies.
const (
	// WeightedNeighborAverage averages the 3×3 neighborhood weighted by
	// luminance similarity and edge strength. Weights are not clamped.
	WeightedNeighborAverage = filter.WeightedNeighborAverage

	// SigmoidCenterBlend mixes each neighbor with the center pixel by a
	// logistic function of their luminance difference.
	SigmoidCenterBlend = filter.SigmoidCenterBlend
)

// ParseBlendPolicy parses "weighted-neighbor-average" (or "wna") and
// "sigmoid-center" (or "sigmoid").
func ParseBlendPolicy(s string) (BlendPolicy, error) {
	p, err := filter.ParseBlendPolicy(s)
	if err != nil {
		return 0, fmt.Errorf("fxaa: blend policy %q: %w", s, ErrInvalidConfig)
	}
	return p, nil
}

// Default parameter values.
const (
	// DefaultEdgeThreshold is the edge strength a pixel must exceed to be
	// blended.
	DefaultEdgeThreshold = 0.05

	// DefaultPasses is the number of passes of DefaultConfig.
	DefaultPasses = 1
)

// Config holds the parameters of a filter run. It is a plain value; a
// Filter keeps its own copy.
type Config struct {
	// Weights are the luminance coefficients for R, G and B.
	Weights Weights

	// EdgeThreshold is the edge strength a pixel must strictly exceed to
	// be blended.
	EdgeThreshold float32

	// Passes is the number of sequential passes. Zero returns the input
	// unchanged.
	Passes int

	// Policy is the blend function applied to edge pixels.
	Policy BlendPolicy

	// RecomputeLuminance recomputes the luminance map from each pass's
	// input. When false the map of the original image is reused for every
	// pass.
	RecomputeLuminance bool

	// Workers is the number of goroutines per pass. Zero uses GOMAXPROCS,
	// one runs on the calling goroutine.
	Workers int
}

// DefaultConfig returns perceptual weights, threshold 0.05, one pass,
// WeightedNeighborAverage, luminance computed once and GOMAXPROCS workers.
func DefaultConfig() Config {
	return Config{
		Weights:       PerceptualWeights,
		EdgeThreshold: DefaultEdgeThreshold,
		Passes:        DefaultPasses,
		Policy:        WeightedNeighborAverage,
	}
}

// Validate reports whether c can be used for a filter run.
// All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Passes < 0 {
		return fmt.Errorf("fxaa: passes must be >= 0, got %d: %w", c.Passes, ErrInvalidConfig)
	}

	var sum float32
	for i, w := range c.Weights {
		if w < 0 || math.IsNaN(float64(w)) || math.IsInf(float64(w), 0) {
			return fmt.Errorf("fxaa: weight %d must be finite and >= 0, got %v: %w", i, w, ErrInvalidConfig)
		}
		sum += w
	}
	if sum == 0 {
		return fmt.Errorf("fxaa: all luminance weights are zero: %w", ErrInvalidConfig)
	}

	t := float64(c.EdgeThreshold)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("fxaa: edge threshold must be finite, got %v: %w", c.EdgeThreshold, ErrInvalidConfig)
	}
	if !c.Policy.IsValid() {
		return fmt.Errorf("fxaa: unknown blend policy %d: %w", c.Policy, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("fxaa: workers must be >= 0, got %d: %w", c.Workers, ErrInvalidConfig)
	}
	return nil
}

// params converts c into orchestrator parameters.
func (c Config) params() filter.Params {
	return filter.Params{
		Weights:            c.Weights,
		Threshold:          c.EdgeThreshold,
		Policy:             c.Policy,
		Passes:             c.Passes,
		RecomputeLuminance: c.RecomputeLuminance,
	}
}
