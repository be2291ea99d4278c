package dyntree

// TreeSize tracks the number of vertices in every tree of the forest.
//
// Each vertex counts itself, its splay children and the paths hanging
// below it through path-parent links. After access(v) the whole tree hangs
// below v, so v's counter is the size of its tree.
type TreeSize struct {
	tree  *Tree
	sizes []int
}

// NewTreeSize returns an unbound tree-size extension; pass it to New with
// WithExtensions.
func NewTreeSize() *TreeSize {
	return &TreeSize{}
}

// Size returns the number of vertices in v's tree.
func (e *TreeSize) Size(v *Vertex) int {
	if e.tree == nil {
		panic("dyntree: TreeSize is not attached to a tree")
	}
	e.tree.mustOwn(v)
	e.tree.access(v)

	return e.sizes[v.idx]
}

func (e *TreeSize) bind(t *Tree) error {
	if e.tree != nil {
		return ErrExtensionBound
	}
	e.tree = t

	return nil
}

func (e *TreeSize) initVertex(*Vertex) { e.sizes = append(e.sizes, 1) }
func (e *TreeSize) reset()             { e.sizes = nil }

func (e *TreeSize) size(v *Vertex) int {
	if v == nil {
		return 0
	}
	return e.sizes[v.idx]
}

func (e *TreeSize) afterLink(v *Vertex) {
	e.sizes[v.tparent.idx] += e.sizes[v.idx]
}

func (e *TreeSize) beforeCut(v *Vertex) {
	e.sizes[v.idx] -= e.sizes[v.right.idx]
}

func (e *TreeSize) beforeRotate(n *Vertex) {
	p := n.parent
	old := e.sizes[p.idx]
	if n.isLeftChild() {
		e.sizes[p.idx] = old - e.sizes[n.idx] + e.size(n.right)
	} else {
		e.sizes[p.idx] = old - e.sizes[n.idx] + e.size(n.left)
	}
	e.sizes[n.idx] = old
}
