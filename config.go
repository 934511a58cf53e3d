package upgma

import "fmt"

// Config controls ClusterPoints.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Metric is the distance function used between points.
	// Built-in: EuclideanMetric, ManhattanMetric, ChebyshevMetric,
	// CosineMetric. Use DistanceFunc to wrap a custom function.
	// Default: EuclideanMetric.
	Metric DistanceMetric

	// NormalizeHeight rescales the finished tree so that the root height
	// equals this value. Linkage distances are not rescaled. 0 leaves the
	// heights as produced. Must be >= 0. Default: 0.
	NormalizeHeight float64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Metric: EuclideanMetric{},
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.NormalizeHeight < 0 {
		return fmt.Errorf("upgma: NormalizeHeight must be >= 0, got %f", cfg.NormalizeHeight)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
}

// ClusterPoints computes pairwise distances between labelled points and
// runs UPGMA over them.
func ClusterPoints(labels []string, points [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	leaves, dm, err := PairwiseDistances(labels, points, cfg.Metric)
	if err != nil {
		return nil, err
	}
	r, err := Cluster(leaves, dm)
	if err != nil {
		return nil, err
	}
	if cfg.NormalizeHeight > 0 && r.Merges > 0 && r.Root.Height() > 0 {
		root, err := r.Root.NormalizeTo(cfg.NormalizeHeight)
		if err != nil {
			return nil, err
		}
		r.Root = root
	}
	return r, nil
}
