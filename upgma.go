package upgma

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result contains the output of a clustering run.
type Result struct {
	// Root is the final dendrogram. Internal node values are merge heights,
	// half the linkage distance between the two merged clusters.
	Root *Node

	// Linkage is the merge history in scipy format: each row is
	// [left, right, distance, size]. Input clusters are numbered 0..n-1 in
	// the order given; the cluster created by row i has ID n+i. size is the
	// number of leaves under the new cluster, so an input cluster that is
	// already a tree contributes all of its leaves.
	Linkage [][4]float64

	// Sizes holds the leaf count of each input cluster, in input order.
	// Pass it to ValidateLinkage and CutTree together with Linkage.
	Sizes []int

	// Merges is the number of merge steps performed (n-1).
	Merges int
}

// UPGMA clusters the given trees by average linkage and returns the root of
// the resulting dendrogram. See Cluster.
func UPGMA(clusters []*Node, dm *DistanceMatrix) (*Node, error) {
	r, err := Cluster(clusters, dm)
	if err != nil {
		return nil, err
	}
	return r.Root, nil
}

// Cluster runs UPGMA over clusters, which are usually leaves but may be any
// trees; each is weighted by its leaf count. dm must hold a distance for
// every pair of input clusters. The order of clusters decides ties: the
// closest pair found first in a row-major scan of the active list wins.
//
// A single input cluster is returned unchanged with no merges. dm is only
// read; the run keeps its own working copy.
func Cluster(clusters []*Node, dm *DistanceMatrix) (*Result, error) {
	n := len(clusters)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	seen := make(map[*Node]bool, n)
	for i, c := range clusters {
		if c == nil {
			return nil, fmt.Errorf("%w: nil cluster at position %d", ErrMalformedTree, i)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLeaf, c.Value())
		}
		seen[c] = true
	}

	if n == 1 {
		return &Result{Root: clusters[0], Sizes: []int{clusters[0].LeafCount()}}, nil
	}

	// Merged clusters reuse the slot of their left child, so the working
	// matrix never grows past the n inputs.
	work := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := lookup(dm, clusters[i], clusters[j])
			if err != nil {
				return nil, err
			}
			work.SetSym(i, j, d)
		}
	}

	nodes := make([]*Node, n)
	copy(nodes, clusters)

	// ids maps a slot to the linkage ID of the cluster it currently holds.
	ids := make([]int, n)
	sizes := make([]int, n)
	active := make([]int, n)
	for i := range active {
		active[i] = i
		ids[i] = i
		sizes[i] = clusters[i].LeafCount()
	}

	linkage := make([][4]float64, 0, n-1)

	for len(active) > 1 {
		ai, aj := closestPair(work, active)
		a, b := active[ai], active[aj]
		dist := work.At(a, b)

		left, right := nodes[a], nodes[b]
		merged := &Node{value: Height(dist / 2), left: left, right: right}
		if h := merged.Height(); h < left.Height() || h < right.Height() {
			log.Printf("upgma: reversal: merge height %g is below a child height (%g, %g); distances are not ultrametric",
				h, left.Height(), right.Height())
		}

		// aj > ai, so removing aj first keeps ai valid.
		active = append(active[:aj], active[aj+1:]...)
		active = append(active[:ai], active[ai+1:]...)

		updateDistances(work, active, nodes, a, b)

		linkage = append(linkage, [4]float64{float64(ids[a]), float64(ids[b]), dist, float64(merged.LeafCount())})
		nodes[a], nodes[b] = merged, nil
		ids[a] = n + len(linkage) - 1
		active = append(active, a)
	}

	return &Result{
		Root:    nodes[active[0]],
		Linkage: linkage,
		Sizes:   sizes,
		Merges:  len(linkage),
	}, nil
}

// lookup fetches a required input distance, reporting anything the matrix
// cannot answer as a missing distance.
func lookup(dm *DistanceMatrix, a, b *Node) (float64, error) {
	if dm == nil {
		return 0, &MissingDistanceError{A: a.Value(), B: b.Value()}
	}
	if _, ok := dm.index[a]; !ok {
		return 0, &MissingDistanceError{A: a.Value(), B: b.Value()}
	}
	if _, ok := dm.index[b]; !ok {
		return 0, &MissingDistanceError{A: a.Value(), B: b.Value()}
	}
	return dm.Distance(a, b)
}

// closestPair returns positions i < j in active whose clusters are at
// strictly minimal distance. The first minimum encountered wins.
func closestPair(work *mat.SymDense, active []int) (int, int) {
	minDist := math.Inf(1)
	bi, bj := 0, 1
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			if d := work.At(active[i], active[j]); d < minDist {
				minDist = d
				bi, bj = i, j
			}
		}
	}
	return bi, bj
}

// updateDistances overwrites slot a with the distances from the merge of a
// and b to every remaining active cluster, weighting each side by its leaf
// count. Slot b is left stale; it is never read again.
func updateDistances(work *mat.SymDense, active []int, nodes []*Node, a, b int) {
	na := float64(nodes[a].LeafCount())
	nb := float64(nodes[b].LeafCount())
	total := na + nb
	for _, c := range active {
		d := na/total*work.At(c, a) + nb/total*work.At(c, b)
		work.SetSym(a, c, d)
	}
}
