package upgma

// UnionFind is a disjoint-set over dendrogram cluster IDs: input clusters
// 0..n-1 and merged clusters n..2n-2, each weighted by its leaf count.
// Each merge creates a fresh root with the next cluster ID, the same
// numbering Result.Linkage uses.
type UnionFind struct {
	parent []int
	size   []int
	// nextLabel is the ID for the next merged cluster, starting at n.
	nextLabel int
}

// NewUnionFind creates a UnionFind with one set per input cluster. sizes[i]
// is the number of leaves in input cluster i; merged sizes are the sums.
func NewUnionFind(sizes []int) *UnionFind {
	n := len(sizes)
	total := 2*n - 1
	if total < 1 {
		total = 1
	}
	parent := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	size := make([]int, total)
	copy(size, sizes)
	return &UnionFind{
		parent:    parent,
		size:      size,
		nextLabel: n,
	}
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Merge joins the sets containing x and y under a new root carrying the
// next cluster ID, and returns that ID. It returns -1 without merging when
// x and y are already in the same set or no IDs are left.
func (uf *UnionFind) Merge(x, y int) int {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry || uf.nextLabel >= len(uf.parent) {
		return -1
	}
	id := uf.nextLabel
	uf.size[id] = uf.size[rx] + uf.size[ry]
	uf.parent[rx] = id
	uf.parent[ry] = id
	uf.nextLabel++
	return id
}

// Size returns the number of leaves in the set containing x.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}
