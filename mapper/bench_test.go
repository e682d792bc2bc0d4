package mapper_test

import (
	"testing"

	"github.com/katalvlaran/ledmap/mapper"
)

// BenchmarkMirror_Map measures the per-pixel cost of the mirror mapping
// over a full 128×64 frame sweep. Complexity: O(1) per pixel.
func BenchmarkMirror_Map(b *testing.B) {
	m := mapper.Mirror{Horizontal: true}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := 0; y < 64; y++ {
			for x := 0; x < 128; x++ {
				_, _ = m.MapVisibleToMatrix(128, 64, x, y)
			}
		}
	}
}

// BenchmarkUMapper_Map measures the per-pixel cost of the U-fold mapping
// over a full visible 64×128 frame sweep. Complexity: O(1) per pixel.
func BenchmarkUMapper_Map(b *testing.B) {
	u, err := mapper.NewUMapper(4, 1)
	if err != nil {
		b.Fatalf("setup NewUMapper failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := 0; y < 128; y++ {
			for x := 0; x < 64; x++ {
				_, _ = u.MapVisibleToMatrix(128, 64, x, y)
			}
		}
	}
}

// BenchmarkChain_Map measures a realistic two-stage pipeline
// (U-mapper then Rotate:90) per pixel.
func BenchmarkChain_Map(b *testing.B) {
	m, err := mapper.Compile([]string{"U-mapper", "Rotate:90"}, 4, 1)
	if err != nil {
		b.Fatalf("setup Compile failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := 0; y < 64; y++ {
			for x := 0; x < 128; x++ {
				_, _ = m.MapVisibleToMatrix(128, 64, x, y)
			}
		}
	}
}
