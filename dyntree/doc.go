// Package dyntree implements Sleator-Tarjan dynamic trees (link-cut trees)
// over a forest of weighted, rooted trees.
//
// Every non-root vertex v has a parent edge with a weight; the weight is
// stored on v. The forest supports, in amortized O(log n) per call:
//
//   - MakeTree:      create a singleton vertex.
//   - FindRoot(v):   the root of v's tree.
//   - FindMinEdge(v): the minimum-weight edge on the path from v to its root,
//     reported by its lower endpoint.
//   - AddWeight(v,w): add w to every edge on the path from v to its root.
//   - Link(c,p,w):   make root c a child of p with an edge of weight w.
//   - Cut(v):        remove the edge from v to its parent.
//
// Representation:
//
//   - Each root path is a splay tree ordered by depth: the deeper end is on
//     the left, the forest root is the rightmost node. Splay trees of
//     different paths hang off each other through path-parent links.
//   - Weights are relative. A vertex stores its weight minus its splay
//     parent's weight, and its weight minus the minimum weight of its splay
//     subtree. Rotations and path splices rewrite both fields in O(1), so a
//     whole path is shifted by touching only the splay root and its left child.
//   - A root vertex carries the configured weight limit as its weight, which
//     keeps it out of every minimum query. Edge weights must stay below half
//     the limit, and floating comparisons use eps = limit*1e-9 (0 with
//     WithIntWeights). Weights closer than eps compare equal, so a float
//     tree must be given WithWeightLimit sized to its data; only integer
//     trees fall back to DefaultIntWeightLimit.
//
// Extensions:
//
//   - TreeSize tracks the number of vertices of every tree. It hooks into
//     rotations, links and cuts, and keeps its counters in a side table
//     indexed by the vertex slot.
//
// Errors:
//
//   - ErrNotRoot, ErrSameTree: Link preconditions.
//   - ErrWeightLimit: a Link weight too large for the configured limit, or a
//     minimum query that reached a root because the limit was too small.
//   - ErrNoWeightLimit: New was called for float weights without a limit
//     (reported by panic, like a bad option).
//   - ErrForeignVertex: a vertex created by another tree (or before Clear).
//
// Thread safety: none. Even queries restructure the splay trees.
package dyntree
