package board_test

import (
	"testing"

	"github.com/katalvlaran/knightpath/board"
)

// BenchmarkNew measures line-of-sight construction on a large board.
func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = board.New(1000, 1000, board.Position{Row: 500, Col: 500})
	}
}

// BenchmarkIsValid measures the per-query cost of the validity check.
func BenchmarkIsValid(b *testing.B) {
	bd, err := board.New(100, 100, board.Position{Row: 50, Col: 50})
	if err != nil {
		b.Fatalf("New error: %v", err)
	}
	p := board.Position{Row: 17, Col: 42}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bd.IsValid(p)
	}
}
