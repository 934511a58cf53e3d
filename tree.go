package upgma

import (
	"errors"
	"strconv"
	"strings"
)

// Value is the payload carried by a tree node: either a label (taxa, named
// ancestors) or a numeric height (merge points produced by clustering).
// Values are comparable with ==.
type Value struct {
	label   string
	height  float64
	numeric bool
}

// Label returns a label value.
func Label(s string) Value { return Value{label: s} }

// Height returns a numeric value.
func Height(h float64) Value { return Value{height: h, numeric: true} }

// IsNumeric reports whether v holds a height rather than a label.
func (v Value) IsNumeric() bool { return v.numeric }

// Label returns the label, or "" for a numeric value.
func (v Value) Label() string { return v.label }

// Height returns the numeric height, or 0 for a label.
func (v Value) Height() float64 { return v.height }

func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.height, 'g', -1, 64)
	}
	return v.label
}

// Node is an immutable binary tree node. A node is either a leaf (no
// children) or an internal node with exactly two children; the two shapes
// are only constructed through NewLeaf and NewInternal.
//
// The nil *Node stands for "no tree". Every query method accepts a nil
// receiver and returns the natural empty result.
type Node struct {
	value       Value
	left, right *Node
}

// NewLeaf returns a leaf carrying label.
func NewLeaf(label string) *Node {
	return &Node{value: Label(label)}
}

// NewInternal returns an internal node with value v and the given children.
// Both children must be present.
func NewInternal(v Value, left, right *Node) (*Node, error) {
	if left == nil || right == nil {
		return nil, &MalformedTreeError{Value: v}
	}
	return &Node{value: v, left: left, right: right}, nil
}

// Value returns the node's payload. The zero Value is returned for nil.
func (n *Node) Value() Value {
	if n == nil {
		return Value{}
	}
	return n.value
}

// Left returns the left child, or nil for a leaf.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil for a leaf.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf reports whether n has no children. It is false for nil.
func (n *Node) IsLeaf() bool {
	return n != nil && n.left == nil
}

// Height returns the node's numeric height, treating labelled nodes as
// height 0 (the tips of a dendrogram).
func (n *Node) Height() float64 {
	return n.Value().Height()
}

// LeafCount returns the number of leaves under n. It is 0 for nil.
func (n *Node) LeafCount() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.left.LeafCount() + n.right.LeafCount()
}

// Find reports whether any node of the tree, the root included, carries v.
func (n *Node) Find(v Value) bool {
	if n == nil {
		return false
	}
	if n.value == v {
		return true
	}
	return n.left.Find(v) || n.right.Find(v)
}

// FindDescendant reports whether v is carried by a strict descendant of n.
// A leaf has no descendants, so searching inside one never succeeds, and the
// root's own value is never matched.
func (n *Node) FindDescendant(v Value) bool {
	if n == nil || n.IsLeaf() {
		return false
	}
	if n.left.value == v || n.right.value == v {
		return true
	}
	return n.left.FindDescendant(v) || n.right.FindDescendant(v)
}

// Subtree returns the first node in pre-order (left before right) carrying
// v, or nil if there is none.
func (n *Node) Subtree(v Value) *Node {
	if n == nil {
		return nil
	}
	if n.value == v {
		return n
	}
	if s := n.left.Subtree(v); s != nil {
		return s
	}
	return n.right.Subtree(v)
}

// NodeList returns the values of every node in pre-order, root first.
func (n *Node) NodeList() []Value {
	var out []Value
	n.walk(func(m *Node) { out = append(out, m.value) })
	return out
}

// Descendants returns the NodeList of the left child followed by the
// NodeList of the right child of the node carrying v. It returns nil when
// v is not present or names a leaf.
func (n *Node) Descendants(v Value) []Value {
	s := n.Subtree(v)
	if s == nil || s.IsLeaf() {
		return nil
	}
	return append(s.left.NodeList(), s.right.NodeList()...)
}

// Parent returns the value of the node whose direct child carries v.
// Direct children are compared before descending, left subtree before
// right. ok is false for the root and for values not in the tree.
func (n *Node) Parent(v Value) (parent Value, ok bool) {
	if n == nil || n.IsLeaf() || n.value == v {
		return Value{}, false
	}
	if n.left.value == v || n.right.value == v {
		return n.value, true
	}
	if p, ok := n.left.Parent(v); ok {
		return p, true
	}
	return n.right.Parent(v)
}

// Scale returns a copy of the tree with every numeric value multiplied by
// factor. Labels and shape are unchanged; n itself is not modified.
func (n *Node) Scale(factor float64) *Node {
	if n == nil {
		return nil
	}
	v := n.value
	if v.numeric {
		v.height *= factor
	}
	return &Node{value: v, left: n.left.Scale(factor), right: n.right.Scale(factor)}
}

// NormalizeTo scales the tree so that the root height equals target.
func (n *Node) NormalizeTo(target float64) (*Node, error) {
	if !n.Value().IsNumeric() {
		return nil, errors.New("upgma: cannot normalize a tree whose root has no height")
	}
	if n.value.height == 0 {
		return nil, errors.New("upgma: cannot normalize a tree with zero root height")
	}
	return n.Scale(target / n.value.height), nil
}

// Leaves returns the leaf labels in pre-order.
func (n *Node) Leaves() []string {
	var out []string
	n.walk(func(m *Node) {
		if m.IsLeaf() {
			out = append(out, m.value.String())
		}
	})
	return out
}

// Branch is one parent→child edge of a tree. Length is the height
// difference between the two ends; a labelled end counts as height 0.
type Branch struct {
	Parent, Child *Node
	Length        float64
}

// Branches lists every edge in pre-order of the child.
func (n *Node) Branches() []Branch {
	var out []Branch
	n.walk(func(m *Node) {
		if m.IsLeaf() {
			return
		}
		for _, c := range [2]*Node{m.left, m.right} {
			out = append(out, Branch{Parent: m, Child: c, Length: m.Height() - c.Height()})
		}
	})
	return out
}

// CutHeight splits the tree into the maximal subtrees whose height is at
// most h, in left-to-right order. Leaves always form their own cluster when
// no ancestor qualifies.
func (n *Node) CutHeight(h float64) []*Node {
	if n == nil {
		return nil
	}
	if n.IsLeaf() || (n.value.numeric && n.value.height <= h) {
		return []*Node{n}
	}
	return append(n.left.CutHeight(h), n.right.CutHeight(h)...)
}

// String renders the tree in nested (value, left, right) form with () for
// absent children, e.g. "(2, (A, (), ()), (B, (), ()))".
func (n *Node) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node) format(b *strings.Builder) {
	if n == nil {
		b.WriteString("()")
		return
	}
	b.WriteByte('(')
	b.WriteString(n.value.String())
	b.WriteString(", ")
	n.left.format(b)
	b.WriteString(", ")
	n.right.format(b)
	b.WriteByte(')')
}

// walk visits every node in pre-order.
func (n *Node) walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	n.left.walk(fn)
	n.right.walk(fn)
}
