package upgma

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DistanceMetric computes the distance between two feature vectors of equal
// length.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, math.Inf(1)) }

// CosineMetric computes the cosine distance: 1 - cosine_similarity.
// For two zero vectors, the result is NaN (0/0).
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	return 1.0 - floats.Dot(a, b)/(floats.Norm(a, 2)*floats.Norm(b, 2))
}

// PairwiseDistances builds leaves for labels and a complete DistanceMatrix
// between the matching points. All points must have the same dimensionality
// and every computed distance must be finite and non-negative.
func PairwiseDistances(labels []string, points [][]float64, metric DistanceMetric) ([]*Node, *DistanceMatrix, error) {
	if len(labels) != len(points) {
		return nil, nil, fmt.Errorf("upgma: %d labels for %d points", len(labels), len(points))
	}
	if len(points) == 0 {
		return nil, nil, ErrEmptyInput
	}
	dims := len(points[0])
	for i, p := range points {
		if len(p) != dims {
			return nil, nil, fmt.Errorf("upgma: point %d has %d dimensions, want %d", i, len(p), dims)
		}
	}

	leaves := make([]*Node, len(labels))
	for i, l := range labels {
		leaves[i] = NewLeaf(l)
	}
	dm, err := NewDistanceMatrix(leaves)
	if err != nil {
		return nil, nil, err
	}

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if err := dm.Set(leaves[i], leaves[j], metric.Distance(points[i], points[j])); err != nil {
				return nil, nil, err
			}
		}
	}
	return leaves, dm, nil
}
