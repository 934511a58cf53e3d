package upgma

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix holds one distance per unordered pair of clusters. Clusters
// are identified by pointer, so two leaves with the same label are still
// distinct entries. Storage is symmetric: Set(a, b, d) and Set(b, a, d)
// write the same cell, and lookups succeed in either orientation.
type DistanceMatrix struct {
	nodes []*Node
	index map[*Node]int
	data  *mat.SymDense
}

// NewDistanceMatrix returns a matrix over nodes with every off-diagonal
// entry unset. nodes must be non-empty, non-nil and distinct.
func NewDistanceMatrix(nodes []*Node) (*DistanceMatrix, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyInput
	}
	index := make(map[*Node]int, len(nodes))
	for i, n := range nodes {
		if n == nil {
			return nil, fmt.Errorf("%w: nil node at position %d", ErrMalformedTree, i)
		}
		if _, dup := index[n]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLeaf, n.Value())
		}
		index[n] = i
	}
	return &DistanceMatrix{
		nodes: append([]*Node(nil), nodes...),
		index: index,
		data:  newUnsetSym(len(nodes)),
	}, nil
}

// newUnsetSym returns an n×n symmetric matrix with a zero diagonal and NaN
// (unset) everywhere else.
func newUnsetSym(n int) *mat.SymDense {
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s.SetSym(i, j, math.NaN())
		}
	}
	return s
}

// Len returns the number of clusters the matrix covers.
func (dm *DistanceMatrix) Len() int { return len(dm.nodes) }

// Nodes returns the clusters in construction order.
func (dm *DistanceMatrix) Nodes() []*Node {
	return append([]*Node(nil), dm.nodes...)
}

// Set records the distance between a and b. d must be finite and
// non-negative. The diagonal is fixed at zero.
func (dm *DistanceMatrix) Set(a, b *Node, d float64) error {
	i, j, err := dm.pair(a, b)
	if err != nil {
		return err
	}
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return fmt.Errorf("%w: %v between %s and %s", ErrInvalidDistance, d, a.Value(), b.Value())
	}
	if i == j {
		if d != 0 {
			return fmt.Errorf("%w: %s has non-zero distance %v to itself", ErrInvalidDistance, a.Value(), d)
		}
		return nil
	}
	dm.data.SetSym(i, j, d)
	return nil
}

// Distance returns the distance between a and b in either orientation.
func (dm *DistanceMatrix) Distance(a, b *Node) (float64, error) {
	i, j, err := dm.pair(a, b)
	if err != nil {
		return 0, err
	}
	d := dm.data.At(i, j)
	if math.IsNaN(d) {
		return 0, &MissingDistanceError{A: a.Value(), B: b.Value()}
	}
	return d, nil
}

// Has reports whether a distance has been recorded for a and b.
func (dm *DistanceMatrix) Has(a, b *Node) bool {
	_, err := dm.Distance(a, b)
	return err == nil
}

// Validate returns a MissingDistanceError for the first unset pair in
// row-major order, or nil when the matrix is complete.
func (dm *DistanceMatrix) Validate() error {
	n := len(dm.nodes)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.IsNaN(dm.data.At(i, j)) {
				return &MissingDistanceError{A: dm.nodes[i].Value(), B: dm.nodes[j].Value()}
			}
		}
	}
	return nil
}

func (dm *DistanceMatrix) pair(a, b *Node) (int, int, error) {
	i, ok := dm.index[a]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownLeaf, a.Value())
	}
	j, ok := dm.index[b]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownLeaf, b.Value())
	}
	return i, j, nil
}
