package upgma

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Dataset is a labelled distance table as read from YAML:
//
//	taxa: [A, B, C]
//	distances:
//	  - [0, 2, 4]
//	  - [2, 0, 4]
//	  - [4, 4, 0]
//	pairs:
//	  - {a: A, b: C, d: 4}
//
// Distances gives full square rows in taxa order; Pairs gives individual
// entries. Either or both may be present, but together they must cover every
// pair of taxa and must not disagree.
type Dataset struct {
	Taxa      []string    `yaml:"taxa"`
	Distances [][]float64 `yaml:"distances,omitempty"`
	Pairs     []Pair      `yaml:"pairs,omitempty"`
}

// Pair is one distance entry between two named taxa.
type Pair struct {
	A string  `yaml:"a"`
	B string  `yaml:"b"`
	D float64 `yaml:"d"`
}

// LoadDataset decodes a YAML dataset from r. Unknown fields are rejected.
func LoadDataset(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("upgma: empty dataset")
		}
		return nil, fmt.Errorf("upgma: decode dataset: %w", err)
	}
	return &ds, nil
}

// ReadDatasetFile loads a YAML dataset from path.
func ReadDatasetFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("upgma: %w", err)
	}
	defer f.Close()
	return LoadDataset(f)
}

// Build returns one leaf per taxon, in taxa order, and the distance matrix
// between them. It fails on duplicate or unknown taxa, malformed or
// asymmetric rows, conflicting entries, and incomplete coverage.
func (ds *Dataset) Build() ([]*Node, *DistanceMatrix, error) {
	n := len(ds.Taxa)
	if n == 0 {
		return nil, nil, ErrEmptyInput
	}

	leaves := make([]*Node, n)
	byName := make(map[string]*Node, n)
	for i, name := range ds.Taxa {
		if _, dup := byName[name]; dup {
			return nil, nil, fmt.Errorf("%w: taxon %q", ErrDuplicateLeaf, name)
		}
		leaves[i] = NewLeaf(name)
		byName[name] = leaves[i]
	}

	dm, err := NewDistanceMatrix(leaves)
	if err != nil {
		return nil, nil, err
	}

	if len(ds.Distances) > 0 {
		if len(ds.Distances) != n {
			return nil, nil, fmt.Errorf("upgma: distances has %d rows, want %d", len(ds.Distances), n)
		}
		for i, row := range ds.Distances {
			if len(row) != n {
				return nil, nil, fmt.Errorf("upgma: distances row %d has %d entries, want %d", i, len(row), n)
			}
		}
		for i := 0; i < n; i++ {
			if ds.Distances[i][i] != 0 {
				return nil, nil, fmt.Errorf("%w: %q has non-zero distance to itself", ErrInvalidDistance, ds.Taxa[i])
			}
			for j := i + 1; j < n; j++ {
				d := ds.Distances[i][j]
				if d != ds.Distances[j][i] {
					return nil, nil, fmt.Errorf("upgma: distances not symmetric at %q/%q: %v vs %v",
						ds.Taxa[i], ds.Taxa[j], d, ds.Distances[j][i])
				}
				if err := dm.Set(leaves[i], leaves[j], d); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	for _, p := range ds.Pairs {
		a, ok := byName[p.A]
		if !ok {
			return nil, nil, fmt.Errorf("%w: taxon %q", ErrUnknownLeaf, p.A)
		}
		b, ok := byName[p.B]
		if !ok {
			return nil, nil, fmt.Errorf("%w: taxon %q", ErrUnknownLeaf, p.B)
		}
		if prev, err := dm.Distance(a, b); err == nil && prev != p.D && a != b {
			return nil, nil, fmt.Errorf("upgma: conflicting distances for %q/%q: %v vs %v", p.A, p.B, prev, p.D)
		}
		if err := dm.Set(a, b, p.D); err != nil {
			return nil, nil, err
		}
	}

	if err := dm.Validate(); err != nil {
		return nil, nil, err
	}
	return leaves, dm, nil
}
