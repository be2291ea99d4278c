package unionfind

import "fmt"

// root marks a parent slot that belongs to a set representative.
const root = -1

// Interface is the contract shared by UnionFind and ValueUnionFind.
// It lets consumers (e.g. Kruskal) accept either implementation.
type Interface interface {
	// Make creates a new singleton set and returns its identifier.
	Make() int
	// Find returns the representative of x's set, compressing the path.
	Find(x int) int
	// Union merges the sets of a and b and returns the surviving root.
	Union(a, b int) int
	// Size reports the number of elements created so far.
	Size() int
	// Clear removes all elements.
	Clear()
}

// Options configures a union-find structure before creation.
//
// Size     – number of singleton elements created up front (ids 0..Size-1).
// Capacity – allocation hint for the backing arrays; never changes behavior.
type Options struct {
	Size     int
	Capacity int
}

// Option represents a functional option for configuring a union-find.
type Option func(*Options)

// WithSize pre-creates n singleton elements with identifiers 0..n-1.
// Panics if n is negative.
func WithSize(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("unionfind: WithSize(%d): size must be non-negative", n))
	}
	return func(o *Options) {
		o.Size = n
	}
}

// WithCapacity reserves room for n elements. Panics if n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("unionfind: WithCapacity(%d): capacity must be non-negative", n))
	}
	return func(o *Options) {
		o.Capacity = n
	}
}

// DefaultOptions returns an empty structure configuration.
func DefaultOptions() Options {
	return Options{Size: 0, Capacity: 0}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Capacity < cfg.Size {
		cfg.Capacity = cfg.Size
	}

	return cfg
}

// checkID panics when x does not name an existing element.
func checkID(x, size int) {
	if x < 0 || x >= size {
		panic(fmt.Sprintf("unionfind: element %d out of range [0,%d)", x, size))
	}
}
