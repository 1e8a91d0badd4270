package phpass_test

import (
	"fmt"
	"testing"

	"github.com/hasbyte1/go-phpass/phpass"
)

// Portable cost is exponential: each step of Cost doubles the chain length
// until the exponent clamps at 30.

func BenchmarkPortable_Hash(b *testing.B) {
	for _, cost := range []int{phpass.MinCost, phpass.DefaultCost, 12} {
		opts := phpass.DefaultOptions()
		opts.Cost = cost
		opts.Portable = true
		h, _ := phpass.New(opts)
		b.Run(fmt.Sprintf("cost=%d", cost), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = h.Hash([]byte("bench-password"))
			}
		})
	}
}

func BenchmarkPortable_Verify(b *testing.B) {
	h := newTestHasher(b, true)
	hash := h.Hash([]byte("bench-password"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Verify([]byte("bench-password"), hash)
	}
}

func BenchmarkDense_Hash(b *testing.B) {
	h := newTestHasher(b, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Hash([]byte("bench-password"))
	}
}

func BenchmarkDense_Verify(b *testing.B) {
	h := newTestHasher(b, false)
	hash := h.Hash([]byte("bench-password"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Verify([]byte("bench-password"), hash)
	}
}
