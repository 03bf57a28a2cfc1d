// SPDX-License-Identifier: MIT
// Package soc_test: benchmarks for the hitting-time solver hot path.
package soc_test

import (
	"fmt"
	"testing"

	"github.com/dkoverta/socwalk/builder"
	"github.com/dkoverta/socwalk/soc"
)

func BenchmarkSecondOrderCentrality_Cycle(b *testing.B) {
	for _, n := range []int{16, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g, err := builder.BuildGraph(nil, nil, builder.Cycle(n))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err = soc.SecondOrderCentrality(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSecondOrderCentrality_CompleteWorkers(b *testing.B) {
	const n = 48
	g, err := builder.BuildGraph(nil, nil, builder.Complete(n))
	if err != nil {
		b.Fatal(err)
	}

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err = soc.SecondOrderCentrality(g, soc.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
