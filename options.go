package fxaa

// Option configures a Filter during creation.
//
// Example:
//
//	f, err := fxaa.New(
//	    fxaa.WithPasses(3),
//	    fxaa.WithBlendPolicy(fxaa.SigmoidCenterBlend),
//	)
type Option func(*Config)

// WithWeights sets the luminance weights.
func WithWeights(w Weights) Option {
	return func(c *Config) {
		c.Weights = w
	}
}

// WithEdgeThreshold sets the edge threshold.
func WithEdgeThreshold(t float32) Option {
	return func(c *Config) {
		c.EdgeThreshold = t
	}
}

// WithPasses sets the number of passes.
func WithPasses(n int) Option {
	return func(c *Config) {
		c.Passes = n
	}
}

// WithBlendPolicy sets the blend policy.
func WithBlendPolicy(p BlendPolicy) Option {
	return func(c *Config) {
		c.Policy = p
	}
}

// WithLuminanceRecompute selects whether the luminance map is recomputed
// at the start of every pass.
func WithLuminanceRecompute(recompute bool) Option {
	return func(c *Config) {
		c.RecomputeLuminance = recompute
	}
}

// WithWorkers sets the number of goroutines used per pass.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithConfig replaces the whole configuration. Later options still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}
