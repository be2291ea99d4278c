// Package lca answers lowest-common-ancestor queries on a static rooted
// forest in O(1) after O(n) preprocessing.
//
// The forest is given as a parent array (parent[v] == -1 for roots). New
// walks an Euler tour of the forest below a virtual super-root and builds
// an rmq.PlusMinusOne over the depths along the tour: consecutive depths
// differ by exactly one, which is what the linear ±1 structure needs. The
// LCA of u and v is the shallowest vertex between their first occurrences.
//
// Errors:
//
//   - ErrBadParent: a parent out of range, a self-loop or a cycle.
//   - ErrVertexOutOfRange: a query vertex outside [0, n).
//   - ErrDifferentTrees: a query for two vertices of different trees.
package lca
