package play_test

import (
	"testing"

	"github.com/katalvlaran/zipgrid/play"
	"github.com/katalvlaran/zipgrid/puzzle"
)

// BenchmarkSessionFullGame measures a complete 8×8 game: start, 63 extends,
// judge, reset. This is the whole per-game engine cost a host pays beyond
// rendering.
func BenchmarkSessionFullGame(b *testing.B) {
	p, err := puzzle.Fallback(8, 0)
	if err != nil {
		b.Fatalf("Fallback error: %v", err)
	}
	s, err := play.NewSession(p)
	if err != nil {
		b.Fatalf("NewSession error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Start(p.Solution[0]); err != nil {
			b.Fatalf("Start error: %v", err)
		}
		for _, cell := range p.Solution[1:] {
			if err := s.Extend(cell); err != nil {
				b.Fatalf("Extend error: %v", err)
			}
		}
		if rep := s.Complete(); !rep.Valid || !rep.Complete {
			b.Fatalf("expected a win, got %+v", rep)
		}
		s.Reset()
	}
}

// BenchmarkCanBacktrack measures the scope preview mid-game on a half-drawn
// 8×8 board, the call hosts issue once per rendered cell.
func BenchmarkCanBacktrack(b *testing.B) {
	p, err := puzzle.Fallback(8, 0)
	if err != nil {
		b.Fatalf("Fallback error: %v", err)
	}
	s, err := play.NewSession(p)
	if err != nil {
		b.Fatalf("NewSession error: %v", err)
	}
	half := p.Solution[:len(p.Solution)/2]
	if err := s.Start(half[0]); err != nil {
		b.Fatalf("Start error: %v", err)
	}
	for _, cell := range half[1:] {
		if err := s.Extend(cell); err != nil {
			b.Fatalf("Extend error: %v", err)
		}
	}
	target := half[len(half)/2]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.CanBacktrack(target)
	}
}
