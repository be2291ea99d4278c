package dscheck

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlathds/builder"
)

// check is one family of cross-validations.
type check struct {
	name  string
	short string
	// trial runs one randomized trial and records per-implementation
	// outcomes on t.
	trial func(r *runner, t *trial) error
}

var checks = []check{
	{"heap", "pairing heap, red-black tree, splay tree and index heap vs. a sorted model", heapTrial},
	{"rmq", "every RMQ implementation vs. a linear scan", rmqTrial},
	{"unionfind", "plain and value union-find vs. a relabeling model", unionFindTrial},
	{"mst", "Kruskal (both union-finds) vs. Prim (every heap)", mstTrial},
	{"sssp", "Dijkstra over the index heap vs. Bellman-Ford", ssspTrial},
	{"dyntree", "link-cut tree with TreeSize vs. a parent-array forest", dynTreeTrial},
	{"lca", "Euler-tour LCA vs. depth walking", lcaTrial},
}

// runner carries the resolved input of one dscheck invocation.
type runner struct {
	ctx   context.Context
	in    Input
	heaps []builder.HeapImpl
	rmqs  []builder.RMQImpl
	log   *log.Logger
}

// trial collects outcomes of one randomized trial.
type trial struct {
	index int
	rng   *rand.Rand
	// mismatches per implementation name; a present key means "checked".
	mismatches map[string]int
	order      []string
}

// record adds n mismatches (possibly zero) for impl.
func (t *trial) record(impl string, n int) {
	if _, ok := t.mismatches[impl]; !ok {
		t.order = append(t.order, impl)
	}
	t.mismatches[impl] += n
}

// run executes every check for in.Trials trials and logs one line per
// check and implementation.
func (r *runner) run(cs []check) error {
	failed := 0
	for _, c := range cs {
		start := time.Now()
		total := map[string]int{}
		var order []string

		for i := 0; i < r.in.Trials; i++ {
			if err := r.ctx.Err(); err != nil {
				return err
			}
			t := &trial{
				index:      i,
				rng:        rand.New(rand.NewSource(r.in.Seed + int64(i))),
				mismatches: map[string]int{},
			}
			if err := c.trial(r, t); err != nil {
				return fmt.Errorf("%s trial %d (seed %d): %w", c.name, i, r.in.Seed+int64(i), err)
			}
			for _, impl := range t.order {
				if _, ok := total[impl]; !ok {
					order = append(order, impl)
				}
				total[impl] += t.mismatches[impl]
				if m := t.mismatches[impl]; m > 0 {
					r.log.WithFields(log.Fields{
						"check": c.name,
						"impl":  impl,
						"trial": i,
						"seed":  r.in.Seed + int64(i),
					}).Warnf("%d mismatches", m)
				}
			}
		}

		for _, impl := range order {
			entry := r.log.WithFields(log.Fields{
				"check":      c.name,
				"impl":       impl,
				"n":          r.in.N,
				"trials":     r.in.Trials,
				"mismatches": total[impl],
			})
			if total[impl] > 0 {
				failed++
				entry.Error("FAIL")
				continue
			}
			entry.Info("ok")
		}
		r.log.WithField("check", c.name).Debugf("done in %v", time.Since(start))
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d check/implementation pairs failed", ErrMismatch, failed)
	}
	return nil
}
