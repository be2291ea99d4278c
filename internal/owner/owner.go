// Package owner tracks which container a detached node reference belongs to.
//
// A container holds one *Token. Every node it creates records that token.
// When container B is melded into container A, B's token is forwarded to A's
// and B receives a fresh token, so every node that used to belong to B now
// resolves to A without being touched. Resolution compresses the forwarding
// chain, keeping the amortized cost near O(1).
package owner

// Token identifies a container. The zero value is not usable; call New.
type Token struct {
	next *Token
}

// New returns a fresh, unforwarded token.
func New() *Token {
	return &Token{}
}

// Resolve follows forwarding links and returns the live token.
// A nil receiver resolves to nil.
func (t *Token) Resolve() *Token {
	if t == nil {
		return nil
	}
	r := t
	for r.next != nil {
		r = r.next
	}
	for p := t; p != r; {
		nx := p.next
		p.next = r
		p = nx
	}

	return r
}

// Forward redirects t (and everything already forwarded to it) to dst.
// Forwarding a token onto itself is a no-op.
func (t *Token) Forward(dst *Token) {
	r := t.Resolve()
	d := dst.Resolve()
	if r != d {
		r.next = d
	}
}

// Owns reports whether a node stamped with n belongs to the container
// currently holding t.
func (t *Token) Owns(n *Token) bool {
	return n != nil && n.Resolve() == t.Resolve()
}
