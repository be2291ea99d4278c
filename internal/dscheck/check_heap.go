package dscheck

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/builder"
	"github.com/katalvlaran/lvlathds/heap"
)

type heapOpKind uint8

const (
	opInsert heapOpKind = iota
	opDecrease
	opRemove
	opExtract
)

// heapOp is one step of a heap script. id names the element (its insertion
// index); keys are unique so every implementation must agree exactly.
type heapOp struct {
	kind heapOpKind
	id   int
	key  int
}

// heapScript generates n valid operations and the expected extraction
// sequence from a simple map model.
func heapScript(t *trial, n int) (ops []heapOp, want []int, inserted int) {
	live := map[int]int{} // id → key
	var ids []int         // live ids, unordered

	drop := func(id int) {
		delete(live, id)
		for i, x := range ids {
			if x == id {
				ids[i] = ids[len(ids)-1]
				ids = ids[:len(ids)-1]
				return
			}
		}
	}
	// Keys keep id as residue modulo n+1, so they never collide.
	stride := n + 1

	for len(ops) < n {
		switch p := t.rng.Intn(10); {
		case p < 5 || len(ids) == 0:
			id := inserted
			inserted++
			k := t.rng.Intn(1<<16)*stride + id
			live[id] = k
			ids = append(ids, id)
			ops = append(ops, heapOp{kind: opInsert, id: id, key: k})
		case p < 7:
			id := ids[t.rng.Intn(len(ids))]
			k := live[id] - t.rng.Intn(64)*stride
			live[id] = k
			ops = append(ops, heapOp{kind: opDecrease, id: id, key: k})
		case p < 8:
			id := ids[t.rng.Intn(len(ids))]
			drop(id)
			ops = append(ops, heapOp{kind: opRemove, id: id})
		default:
			best := ids[0]
			for _, id := range ids {
				if live[id] < live[best] {
					best = id
				}
			}
			drop(best)
			want = append(want, best)
			ops = append(ops, heapOp{kind: opExtract})
		}
	}
	return ops, want, inserted
}

func heapTrial(r *runner, t *trial) error {
	ops, want, universe := heapScript(t, r.in.N)

	for _, impl := range r.heaps {
		h, err := builder.NewHeap[int, int](heap.Natural[int](), builder.WithHeapImpl(impl))
		if err != nil {
			return err
		}
		got, err := replayRef(h, ops, universe)
		if err != nil {
			return fmt.Errorf("%v: %w", impl, err)
		}
		t.record(impl.String(), diffCount(want, got))
	}

	got, err := replayIndex(heap.NewIndexPairing[int](universe, heap.Natural[int]()), ops)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	t.record("index", diffCount(want, got))

	return nil
}

func replayRef(h heap.Referenceable[int, int], ops []heapOp, universe int) ([]int, error) {
	refs := make([]heap.Ref[int, int], universe)
	var out []int
	for _, op := range ops {
		switch op.kind {
		case opInsert:
			refs[op.id] = h.InsertWithValue(op.key, op.id)
		case opDecrease:
			if err := h.DecreaseKey(refs[op.id], op.key); err != nil {
				return nil, err
			}
		case opRemove:
			if err := h.Remove(refs[op.id]); err != nil {
				return nil, err
			}
		case opExtract:
			m, err := h.ExtractMin()
			if err != nil {
				return nil, err
			}
			out = append(out, m.Value())
		}
	}
	return out, nil
}

func replayIndex(h *heap.IndexPairing[int], ops []heapOp) ([]int, error) {
	var out []int
	for _, op := range ops {
		var err error
		switch op.kind {
		case opInsert:
			err = h.Insert(op.id, op.key)
		case opDecrease:
			err = h.DecreaseKey(op.id, op.key)
		case opRemove:
			err = h.Remove(op.id)
		case opExtract:
			var id int
			id, err = h.ExtractMin()
			out = append(out, id)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// diffCount counts positions where got differs from want, plus one for every
// element present in only one of them. Every check that compares sequences
// reports its mismatches this way.
func diffCount[T comparable](want, got []T) int {
	n := 0
	if len(want) != len(got) {
		n = max(len(want), len(got)) - min(len(want), len(got))
	}
	for i := 0; i < min(len(want), len(got)); i++ {
		if want[i] != got[i] {
			n++
		}
	}
	return n
}
