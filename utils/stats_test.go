package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("AveragePopulation = %v, want 100", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if s.AveragePopulation != 110 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 || s.ActiveCells != 200 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatal("a zero duration should keep the previous rate")
	}
}

func TestStatsAverageGenerationsPerSecond(t *testing.T) {
	s := NewStats()
	s.StartTime = time.Now().Add(-10 * time.Second)
	s.Update(50, 10, time.Millisecond)

	avg := s.AverageGenerationsPerSecond()
	if avg < 4.9 || avg > 5.0 {
		t.Fatalf("AverageGenerationsPerSecond = %v, want about 5", avg)
	}
	if s.GenerationsPerSecond != 1000 {
		t.Fatalf("GenerationsPerSecond = %v, want the last frame rate of 1000", s.GenerationsPerSecond)
	}
}
