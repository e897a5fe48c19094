package BSTree

import "fmt"

// DuplicateValueError is returned by Put when V is already in the tree.
type DuplicateValueError struct {
	V any
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("Duplicate value: %v is already in the Tree.", e.V)
}

// InvalidNodeError is returned when the node V names can't be operated on: it isn't in the
// tree, or it lacks the ancestors Restructure needs.
type InvalidNodeError struct {
	V any
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("Invalid node: %v.", e.V)
}

// NilRootError is returned by operations that need a root on an empty tree.
type NilRootError struct {
}

func (e *NilRootError) Error() string {
	return "Tree has no Root."
}
