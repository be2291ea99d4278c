package heap

import "fmt"

// CheckPairing verifies heap order and link consistency of h.
func CheckPairing[K, V any](h *Pairing[K, V]) error {
	if h.min == nil {
		if h.size != 0 {
			return fmt.Errorf("empty heap reports size %d", h.size)
		}
		return nil
	}
	if h.min.back != nil || h.min.next != nil || h.min.kind != linkNone {
		return fmt.Errorf("root %v has sibling or back links", h.min)
	}
	count := 0
	var walk func(p *pairingNode[K, V]) error
	walk = func(p *pairingNode[K, V]) error {
		count++
		prev := p
		kind := linkParent
		for c := p.child; c != nil; c = c.next {
			if c.back != prev || c.kind != kind {
				return fmt.Errorf("node %v: back link (%v,%d) want (%v,%d)", c, c.back, c.kind, prev, kind)
			}
			if h.cmp(p.key, c.key) > 0 {
				return fmt.Errorf("heap order violated: parent %v > child %v", p, c)
			}
			if err := walk(c); err != nil {
				return err
			}
			prev, kind = c, linkSibling
		}
		return nil
	}
	if err := walk(h.min); err != nil {
		return err
	}
	if count != h.size {
		return fmt.Errorf("reachable %d nodes, size %d", count, h.size)
	}
	return nil
}

// CheckIndexPairing verifies heap order and link consistency of h.
func CheckIndexPairing[K any](h *IndexPairing[K]) error {
	if h.min == nilIdx {
		if h.size != 0 {
			return fmt.Errorf("empty heap reports size %d", h.size)
		}
		return nil
	}
	count := 0
	stack := []int32{h.min}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		prev, kind := p, idxParent
		for c := h.child[p]; c != nilIdx; c = h.next[c] {
			if h.back[c] != prev || h.kind[c] != kind {
				return fmt.Errorf("id %d: back link (%d,%d) want (%d,%d)", c, h.back[c], h.kind[c], prev, kind)
			}
			if h.cmp(h.keys[p], h.keys[c]) > 0 {
				return fmt.Errorf("heap order violated: parent %d > child %d", p, c)
			}
			stack = append(stack, c)
			prev, kind = c, idxSibling
		}
	}
	if count != h.size {
		return fmt.Errorf("reachable %d ids, size %d", count, h.size)
	}
	return nil
}
