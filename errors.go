package upgma

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when clustering is asked to run on no clusters.
	ErrEmptyInput = errors.New("upgma: at least one cluster is required")

	// ErrMissingDistance is matched by every MissingDistanceError.
	ErrMissingDistance = errors.New("upgma: missing distance")

	// ErrMalformedTree is matched by every MalformedTreeError.
	ErrMalformedTree = errors.New("upgma: malformed tree")

	// ErrDuplicateLeaf is returned when the same node is supplied twice.
	ErrDuplicateLeaf = errors.New("upgma: duplicate leaf")

	// ErrUnknownLeaf is returned when a node is not part of a distance matrix.
	ErrUnknownLeaf = errors.New("upgma: leaf not in distance matrix")

	// ErrInvalidDistance is returned for negative, NaN or infinite distances.
	ErrInvalidDistance = errors.New("upgma: invalid distance")
)

// MissingDistanceError reports a pair of clusters with no distance entry in
// either orientation. It is fatal for a clustering run.
type MissingDistanceError struct {
	A, B Value
}

func (e *MissingDistanceError) Error() string {
	return fmt.Sprintf("upgma: missing distance between %s and %s", e.A, e.B)
}

func (e *MissingDistanceError) Is(target error) bool { return target == ErrMissingDistance }

// MalformedTreeError reports an internal node built with an absent child.
type MalformedTreeError struct {
	Value Value
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("upgma: malformed tree: node %s must have exactly two children", e.Value)
}

func (e *MalformedTreeError) Is(target error) bool { return target == ErrMalformedTree }
