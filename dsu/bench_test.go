package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/msf/dsu"
)

// BenchmarkAtomic_UniteParallel measures contended unions of random pairs.
func BenchmarkAtomic_UniteParallel(b *testing.B) {
	const n = 1 << 20
	d := dsu.NewAtomic(n)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(rand.Int63()))
		for pb.Next() {
			d.Unite(r.Intn(n), r.Intn(n))
		}
	})
}

// BenchmarkAtomic_FindLeader measures lookups on a fully merged structure.
func BenchmarkAtomic_FindLeader(b *testing.B) {
	const n = 1 << 16
	d := dsu.NewAtomic(n)
	for i := 0; i+1 < n; i++ {
		d.Unite(i, i+1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.FindLeader(i & (n - 1))
	}
}
