package rmq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlathds/rmq"
)

const benchN = 1 << 16

func benchRMQ(b *testing.B, build func(rmq.Comparator, int) (rmq.RMQ, error)) {
	rng := rand.New(rand.NewSource(42))
	c := rmq.OfInts(plusMinusOneSeq(rng, benchN))
	queries := make([][2]int, 1024)
	for k := range queries {
		i := rng.Intn(benchN)
		queries[k] = [2]int{i, i + rng.Intn(benchN-i)}
	}

	b.Run("build", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = build(c, benchN)
		}
	})
	b.Run("query", func(b *testing.B) {
		r, _ := build(c, benchN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			q := queries[i%len(queries)]
			_, _ = r.RangeMin(q[0], q[1])
		}
	})
}

func BenchmarkPowerOf2(b *testing.B) {
	benchRMQ(b, func(c rmq.Comparator, n int) (rmq.RMQ, error) { return rmq.NewPowerOf2(c, n) })
}

func BenchmarkCartesian(b *testing.B) {
	benchRMQ(b, func(c rmq.Comparator, n int) (rmq.RMQ, error) { return rmq.NewCartesian(c, n) })
}

func BenchmarkPlusMinusOne(b *testing.B) {
	benchRMQ(b, func(c rmq.Comparator, n int) (rmq.RMQ, error) { return rmq.NewPlusMinusOne(c, n) })
}
