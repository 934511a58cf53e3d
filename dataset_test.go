package upgma

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareDataset = `
taxa: [A, B, C]
distances:
  - [0, 2, 4]
  - [2, 0, 4]
  - [4, 4, 0]
`

func TestLoadDataset_Square(t *testing.T) {
	ds, err := LoadDataset(strings.NewReader(squareDataset))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ds.Taxa)

	leaves, dm, err := ds.Build()
	require.NoError(t, err)
	root, err := UPGMA(leaves, dm)
	require.NoError(t, err)
	assert.Equal(t, "(2, (C, (), ()), (1, (A, (), ()), (B, (), ())))", root.String())
}

func TestLoadDataset_Pairs(t *testing.T) {
	ds, err := LoadDataset(strings.NewReader(`
taxa: [A, B, C]
pairs:
  - {a: B, b: A, d: 2}
  - {a: A, b: C, d: 4}
  - {a: C, b: B, d: 4}
`))
	require.NoError(t, err)

	leaves, dm, err := ds.Build()
	require.NoError(t, err)
	root, err := UPGMA(leaves, dm)
	require.NoError(t, err)
	assert.Equal(t, "(2, (C, (), ()), (1, (A, (), ()), (B, (), ())))", root.String())
}

func TestLoadDataset_SquareAndPairsAgree(t *testing.T) {
	ds, err := LoadDataset(strings.NewReader(squareDataset + "pairs:\n  - {a: A, b: B, d: 2}\n"))
	require.NoError(t, err)
	_, _, err = ds.Build()
	assert.NoError(t, err)
}

func TestLoadDataset_Errors(t *testing.T) {
	_, err := LoadDataset(strings.NewReader(""))
	assert.Error(t, err, "empty")

	_, err = LoadDataset(strings.NewReader("taxa: [A]\nunknown: 1\n"))
	assert.Error(t, err, "unknown field")

	_, err = LoadDataset(strings.NewReader("taxa: [A\n"))
	assert.Error(t, err, "bad yaml")
}

func TestDatasetBuild_Errors(t *testing.T) {
	cases := map[string]struct {
		ds     Dataset
		target error
	}{
		"no taxa": {Dataset{}, ErrEmptyInput},
		"duplicate taxon": {
			Dataset{Taxa: []string{"A", "A"}, Pairs: []Pair{{"A", "A", 0}}},
			ErrDuplicateLeaf,
		},
		"unknown taxon": {
			Dataset{Taxa: []string{"A", "B"}, Pairs: []Pair{{"A", "Q", 1}}},
			ErrUnknownLeaf,
		},
		"missing pair": {
			Dataset{Taxa: []string{"A", "B", "C"}, Pairs: []Pair{{"A", "B", 1}, {"A", "C", 1}}},
			ErrMissingDistance,
		},
		"negative distance": {
			Dataset{Taxa: []string{"A", "B"}, Pairs: []Pair{{"A", "B", -1}}},
			ErrInvalidDistance,
		},
		"non-zero diagonal": {
			Dataset{Taxa: []string{"A", "B"}, Distances: [][]float64{{1, 2}, {2, 0}}},
			ErrInvalidDistance,
		},
	}
	for name, tc := range cases {
		_, _, err := tc.ds.Build()
		assert.ErrorIs(t, err, tc.target, name)
	}

	shape := map[string]Dataset{
		"short matrix":  {Taxa: []string{"A", "B"}, Distances: [][]float64{{0, 1}}},
		"ragged row":    {Taxa: []string{"A", "B"}, Distances: [][]float64{{0, 1}, {1}}},
		"asymmetric":    {Taxa: []string{"A", "B"}, Distances: [][]float64{{0, 1}, {2, 0}}},
		"conflict pair": {Taxa: []string{"A", "B"}, Distances: [][]float64{{0, 1}, {1, 0}}, Pairs: []Pair{{"B", "A", 3}}},
	}
	for name, ds := range shape {
		_, _, err := ds.Build()
		assert.Error(t, err, name)
	}
}

func TestReadDatasetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(squareDataset), 0o644))

	ds, err := ReadDatasetFile(path)
	require.NoError(t, err)
	assert.Len(t, ds.Taxa, 3)

	_, err = ReadDatasetFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
