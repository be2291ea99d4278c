// Package unionfind provides disjoint-set forests over dense integer
// identifiers, with union by rank and full path compression.
//
// Overview:
//
//   - UnionFind: the plain structure. Make creates a new singleton element
//     and returns its identifier; Find returns the representative of an
//     element's set; Union merges two sets and returns the surviving root.
//   - ValueUnionFind: the same forest where every element also carries an
//     additive aggregate. GetValue(x) is the sum of per-node deltas from x up
//     to (and including) its set root, and AddValue(x, v) shifts the value of
//     every current and future member of x's set by v in O(α(n)).
//
// Identifiers:
//
//   - Elements are numbered 0,1,2,... in creation order.
//   - Passing an identifier outside [0, Size()) is a caller bug and panics;
//     it is never reported as a recoverable error.
//
// Complexity:
//
//   - Make:           O(1) amortized.
//   - Find / Union:   O(α(n)) amortized (inverse Ackermann).
//   - GetValue / AddValue: O(α(n)) amortized.
//   - Space:          O(n). Ranks are stored as bytes.
//
// Thread safety:
//
//   - None. Structures are mutated in place, including by Find (path
//     compression), so even concurrent reads need external locking.
//
// Example:
//
//	uf := unionfind.New(unionfind.WithSize(5))
//	uf.Union(0, 1)
//	uf.Union(1, 2)
//	fmt.Println(uf.Find(0) == uf.Find(2)) // true
package unionfind
