package dyntree

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/internal/owner"
)

// DefaultIntWeightLimit is the weight limit of an integer-weight tree
// created without WithWeightLimit. Float-weight trees have no default: the
// comparison tolerance scales with the limit, so it must be sized to the data.
const DefaultIntWeightLimit = 1e9

// Options configures a dynamic tree.
//
// WeightLimit – upper bound for path sums; edge weights must be < WeightLimit/2.
//               Zero means unset.
// IntWeights  – all weights are integers: compare exactly (eps = 0).
// Extensions  – aggregates maintained alongside the forest.
type Options struct {
	WeightLimit float64
	IntWeights  bool
	Extensions  []Extension
}

// Option represents a functional option for configuring a dynamic tree.
type Option func(*Options)

// WithWeightLimit sets the weight limit. Panics if limit is not positive.
func WithWeightLimit(limit float64) Option {
	if !(limit > 0) {
		panic(fmt.Sprintf("dyntree: WithWeightLimit(%v): limit must be positive", limit))
	}
	return func(o *Options) {
		o.WeightLimit = limit
	}
}

// WithIntWeights declares that every weight is integral, which disables the
// floating-point tolerance.
func WithIntWeights() Option {
	return func(o *Options) {
		o.IntWeights = true
	}
}

// WithExtensions registers extensions on the new tree.
func WithExtensions(exts ...Extension) Option {
	return func(o *Options) {
		o.Extensions = append(o.Extensions, exts...)
	}
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{}
}

// Vertex is a node of the forest. Vertices are created by Tree.MakeTree and
// are only meaningful to the tree that created them.
type Vertex struct {
	// splay links of the path the vertex currently belongs to
	parent, left, right *Vertex
	// path-parent: set only on a splay root, points into the next path up
	tparent *Vertex
	// forest parent as seen by the user
	userParent *Vertex

	weightDiff    float64 // weight - splay parent's weight (absolute on a splay root)
	minWeightDiff float64 // weight - min weight in the splay subtree, >= 0

	idx  int // creation slot, indexes extension side tables
	data any
	tok  *owner.Token
}

// Parent returns v's parent in the forest, or nil for a root.
func (v *Vertex) Parent() *Vertex { return v.userParent }

// Data returns the user data attached to v.
func (v *Vertex) Data() any { return v.data }

// SetData attaches user data to v.
func (v *Vertex) SetData(d any) { v.data = d }

func (v *Vertex) String() string {
	return fmt.Sprintf("v%d", v.idx)
}

func (v *Vertex) isLeftChild() bool { return v.parent != nil && v.parent.left == v }

// weight returns v's weight given its splay parent's weight.
func (v *Vertex) weight(parentWeight float64) float64 {
	return parentWeight + v.weightDiff
}

// minWeight returns the minimum weight in v's splay subtree.
func (v *Vertex) minWeight(parentWeight float64) float64 {
	return v.weight(parentWeight) - v.minWeightDiff
}

// MinEdge is the result of FindMinEdge: the edge from Source to its parent.
type MinEdge struct {
	Source *Vertex
	Weight float64
}

// Extension maintains an aggregate over the forest. The set of extensions
// is closed; TreeSize is the only one.
type Extension interface {
	bind(t *Tree) error
	initVertex(v *Vertex) // v.idx == next slot
	reset()
	afterLink(v *Vertex)    // v was just linked; v.tparent is its new parent
	beforeCut(v *Vertex)    // v is a splay root with a right subtree about to be cut off
	beforeRotate(v *Vertex) // v is about to be lifted above its splay parent
}
