package dyntree

import "errors"

// Sentinel errors for dynamic tree operations.
var (
	// ErrNotRoot indicates a Link whose child is not the root of its tree.
	ErrNotRoot = errors.New("dyntree: child must be a root")

	// ErrSameTree indicates a Link between two vertices of the same tree.
	ErrSameTree = errors.New("dyntree: vertices are in the same tree")

	// ErrWeightLimit indicates that the configured weight limit is too small
	// for the weights in use.
	ErrWeightLimit = errors.New("dyntree: weight limit exceeded")

	// ErrNoWeightLimit indicates a float-weight tree configured without a limit.
	ErrNoWeightLimit = errors.New("dyntree: float weights need an explicit weight limit")

	// ErrForeignVertex indicates a vertex that was not created by this tree.
	ErrForeignVertex = errors.New("dyntree: vertex belongs to another tree")

	// ErrExtensionBound is returned when an extension is registered on a second tree.
	ErrExtensionBound = errors.New("dyntree: extension already attached to a tree")
)
