package upgma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, EuclideanMetric{}, cfg.Metric)
	assert.Zero(t, cfg.NormalizeHeight)
}

func TestClusterPoints(t *testing.T) {
	// 1-D points 0, 1, 5: (A,B) at 1 → height 0.5;
	// d(AB,C) = 1/2*5 + 1/2*4 = 4.5 → root height 2.25.
	r, err := ClusterPoints([]string{"A", "B", "C"}, [][]float64{{0}, {1}, {5}}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, r.Merges)
	assert.InDelta(t, 2.25, r.Root.Height(), floatTol)
	assert.Equal(t, []string{"C", "A", "B"}, r.Root.Leaves())
}

func TestClusterPoints_NilMetricDefaults(t *testing.T) {
	r, err := ClusterPoints([]string{"A", "B"}, [][]float64{{0, 0}, {3, 4}}, Config{})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, r.Root.Height(), floatTol)
}

func TestClusterPoints_Manhattan(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Metric = ManhattanMetric{}
	r, err := ClusterPoints([]string{"A", "B"}, [][]float64{{0, 0}, {3, 4}}, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, r.Root.Height(), floatTol)
}

func TestClusterPoints_Normalize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NormalizeHeight = 6
	r, err := ClusterPoints([]string{"A", "B", "C"}, [][]float64{{0}, {1}, {5}}, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, r.Root.Height(), floatTol)
	// 0.5 / 2.25 * 6
	assert.InDelta(t, 4.0/3.0, r.Root.Right().Height(), floatTol)
	// Linkage keeps the raw distances.
	assert.InDelta(t, 4.5, r.Linkage[1][2], floatTol)
}

func TestClusterPoints_NormalizeSinglePoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NormalizeHeight = 6
	r, err := ClusterPoints([]string{"A"}, [][]float64{{0}}, cfg)
	require.NoError(t, err)
	assert.True(t, r.Root.IsLeaf())
}

func TestClusterPoints_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NormalizeHeight = -1
	_, err := ClusterPoints([]string{"A"}, [][]float64{{0}}, cfg)
	assert.Error(t, err)
}
