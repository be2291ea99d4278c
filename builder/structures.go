// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// structures.go — typed factories for the data structures.
//
// Contract:
//   • Every call returns a fresh instance; nothing is shared between calls.
//   • Selection happens once, at construction, from the resolved config.
//   • A capability the selected implementation lacks is reported as
//     ErrUnsupported here, not later at the first Split call.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/bst"
	"github.com/katalvlaran/lvlathds/dyntree"
	"github.com/katalvlaran/lvlathds/heap"
	"github.com/katalvlaran/lvlathds/rmq"
	"github.com/katalvlaran/lvlathds/unionfind"
)

// NewHeap returns a referenceable heap ordered by cmp.
//
// Selection:
//   - WithHeapImpl(impl) picks impl.
//   - Otherwise Pairing, or Splay when WithSplit is given.
func NewHeap[K, V any](cmp heap.Comparator[K], opts ...BuilderOption) (heap.Referenceable[K, V], error) {
	cfg := newBuilderConfig(opts...)
	impl := cfg.heapImpl
	if impl == heapImplUnset {
		impl = Pairing
		if cfg.split {
			impl = Splay
		}
	}

	switch impl {
	case Pairing:
		if cfg.split {
			return nil, fmt.Errorf("NewHeap: %v cannot split: %w", impl, ErrUnsupported)
		}
		return heap.NewPairing[K, V](cmp), nil
	default:
		return newTree[K, V](cmp, impl, cfg.split)
	}
}

// NewTree returns a balanced search tree ordered by cmp.
//
// Selection:
//   - WithHeapImpl(RedBlack or Splay) picks it; Pairing is rejected.
//   - Otherwise RedBlack, or Splay when WithSplit is given.
func NewTree[K, V any](cmp heap.Comparator[K], opts ...BuilderOption) (bst.Tree[K, V], error) {
	cfg := newBuilderConfig(opts...)
	impl := cfg.heapImpl
	if impl == heapImplUnset {
		impl = RedBlack
		if cfg.split {
			impl = Splay
		}
	}
	return newTree[K, V](cmp, impl, cfg.split)
}

func newTree[K, V any](cmp heap.Comparator[K], impl HeapImpl, split bool) (bst.Tree[K, V], error) {
	switch impl {
	case RedBlack:
		if split {
			return nil, fmt.Errorf("NewTree: %v cannot split: %w", impl, ErrUnsupported)
		}
		return bst.NewRedBlack[K, V](cmp), nil
	case Splay:
		return bst.NewSplay[K, V](cmp), nil
	default:
		return nil, fmt.Errorf("NewTree: %v is not a search tree: %w", impl, ErrUnsupported)
	}
}

// NewRMQ builds a static RMQ over n positions with the selected
// implementation (CartesianTrees by default).
func NewRMQ(cmp rmq.Comparator, n int, opts ...BuilderOption) (rmq.RMQ, error) {
	cfg := newBuilderConfig(opts...)

	var (
		r   rmq.RMQ
		err error
	)
	switch cfg.rmqImpl {
	case PowerOf2:
		r, err = rmq.NewPowerOf2(cmp, n)
	case LookupTable:
		r, err = rmq.NewLookupTable(cmp, n)
	case PlusMinusOne:
		r, err = rmq.NewPlusMinusOne(cmp, n)
	default:
		r, err = rmq.NewCartesian(cmp, n)
	}
	if err != nil {
		return nil, fmt.Errorf("NewRMQ(%v): %w", cfg.rmqImpl, err)
	}

	return r, nil
}

// NewUnionFind returns an empty union-find; WithValues selects the
// value-augmented variant, WithExpectedSize presizes it.
func NewUnionFind(opts ...BuilderOption) unionfind.Interface {
	cfg := newBuilderConfig(opts...)
	ufOpts := []unionfind.Option{unionfind.WithCapacity(cfg.expected)}
	if cfg.values {
		return unionfind.NewValue(ufOpts...)
	}
	return unionfind.New(ufOpts...)
}

// NewDynamicTree returns an empty dynamic forest. The TreeSize extension is
// returned when WithTreeSize is given and is nil otherwise.
// Float-weight forests need WithWeightLimit; without it dyntree.ErrNoWeightLimit
// is returned. Integer forests default to dyntree.DefaultIntWeightLimit.
func NewDynamicTree(opts ...BuilderOption) (*dyntree.Tree, *dyntree.TreeSize, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.weightLimit == 0 && !cfg.intWeights {
		return nil, nil, fmt.Errorf("NewDynamicTree: %w", dyntree.ErrNoWeightLimit)
	}

	var dtOpts []dyntree.Option
	if cfg.weightLimit > 0 {
		dtOpts = append(dtOpts, dyntree.WithWeightLimit(cfg.weightLimit))
	}
	if cfg.intWeights {
		dtOpts = append(dtOpts, dyntree.WithIntWeights())
	}

	var size *dyntree.TreeSize
	if cfg.treeSize {
		size = dyntree.NewTreeSize()
		dtOpts = append(dtOpts, dyntree.WithExtensions(size))
	}

	return dyntree.New(dtOpts...), size, nil
}
