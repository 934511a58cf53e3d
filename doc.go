// Package upgma builds rooted binary dendrograms with UPGMA (Unweighted Pair
// Group Method with Arithmetic Mean), the average-linkage hierarchical
// clustering used to derive phylogenetic trees from pairwise distances.
//
// UPGMA repeatedly merges the two closest clusters into a new internal node
// at half their distance, then sets the distance from the new cluster to every
// other cluster to the leaf-count-weighted average of its children's
// distances. The result is an immutable binary tree whose internal values are
// merge heights and whose leaves carry the input labels.
//
// Basic usage:
//
//	a, b, c := upgma.NewLeaf("A"), upgma.NewLeaf("B"), upgma.NewLeaf("C")
//	dm, _ := upgma.NewDistanceMatrix([]*upgma.Node{a, b, c})
//	dm.Set(a, b, 2)
//	dm.Set(a, c, 4)
//	dm.Set(b, c, 4)
//	root, err := upgma.UPGMA([]*upgma.Node{a, b, c}, dm)
//	// root.String() == "(2, (C, (), ()), (1, (A, (), ()), (B, (), ())))"
//
// For feature vectors rather than precomputed distances:
//
//	result, err := upgma.ClusterPoints(labels, points, upgma.DefaultConfig())
//	// result.Root is the dendrogram, result.Linkage the scipy-format merges.
//
// # Querying trees
//
// Node values are compared with [Value]: use [Label] for taxa and [Height]
// for merge heights. Find, Subtree, NodeList, Descendants and Parent work on
// any tree, including hand-built ones from NewLeaf and NewInternal, and never
// modify it. Scale and NormalizeTo return new trees.
package upgma
