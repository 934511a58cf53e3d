package upgma

import (
	"errors"
	"fmt"
)

// UnitSizes returns the input sizes of n single-leaf clusters.
func UnitSizes(n int) []int {
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = 1
	}
	return sizes
}

// ValidateLinkage checks that linkage is a well-formed merge history for
// len(sizes) input clusters: n-1 rows, each joining two live clusters, with
// a size column equal to the leaf count of the replayed merge. sizes[i] is
// the leaf count of input cluster i, as in Result.Sizes; use UnitSizes when
// every input is a single leaf.
func ValidateLinkage(linkage [][4]float64, sizes []int) error {
	_, err := replay(linkage, sizes, len(linkage))
	return err
}

// CutTree assigns each input cluster to one of k flat clusters by replaying
// the first n-k merges of linkage, where n = len(sizes). Labels are
// numbered from 0 in order of first appearance by input index.
func CutTree(linkage [][4]float64, sizes []int, k int) ([]int, error) {
	n := len(sizes)
	if n < 1 {
		return nil, ErrEmptyInput
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("upgma: k must be in [1, %d], got %d", n, k)
	}
	uf, err := replay(linkage, sizes, n-k)
	if err != nil {
		return nil, err
	}

	labels := make([]int, n)
	ids := make(map[int]int, k)
	for i := 0; i < n; i++ {
		root := uf.Find(i)
		id, ok := ids[root]
		if !ok {
			id = len(ids)
			ids[root] = id
		}
		labels[i] = id
	}
	return labels, nil
}

// replay validates linkage and applies its first steps rows to a fresh
// UnionFind.
func replay(linkage [][4]float64, sizes []int, steps int) (*UnionFind, error) {
	n := len(sizes)
	for i, s := range sizes {
		if s < 1 {
			return nil, fmt.Errorf("upgma: input cluster %d has size %d", i, s)
		}
	}
	if len(linkage) != n-1 {
		return nil, fmt.Errorf("upgma: linkage has %d rows, want %d for n=%d", len(linkage), n-1, n)
	}
	uf := NewUnionFind(sizes)
	merged := make([]bool, 2*n)
	for i, row := range linkage {
		a, b := int(row[0]), int(row[1])
		limit := n + i
		if a < 0 || b < 0 || a >= limit || b >= limit || a == b {
			return nil, fmt.Errorf("upgma: linkage row %d: invalid cluster IDs (%d, %d)", i, a, b)
		}
		if merged[a] || merged[b] {
			return nil, fmt.Errorf("upgma: linkage row %d: cluster merged twice", i)
		}
		merged[a], merged[b] = true, true
		if row[2] < 0 {
			return nil, fmt.Errorf("upgma: linkage row %d: negative distance %v", i, row[2])
		}
		if i >= steps {
			continue
		}
		size := uf.Size(a) + uf.Size(b)
		if int(row[3]) != size {
			return nil, fmt.Errorf("upgma: linkage row %d: size %v, want %d", i, row[3], size)
		}
		if uf.Merge(a, b) != limit {
			return nil, errors.New("upgma: linkage merge out of order")
		}
	}
	return uf, nil
}
