package rules

import "testing"

func TestNextStateTable(t *testing.T) {
	for alive := uint8(0); alive <= 1; alive++ {
		for neighbors := 0; neighbors <= 8; neighbors++ {
			var want uint8
			switch {
			case alive == 1 && neighbors < 2:
				want = 0
			case alive == 1 && (neighbors == 2 || neighbors == 3):
				want = 1
			case alive == 1 && neighbors > 3:
				want = 0
			case alive == 0 && neighbors == 3:
				want = 1
			default:
				want = 0
			}
			if got := NextState(alive, neighbors); got != want {
				t.Errorf("NextState(%d, %d) = %d, want %d", alive, neighbors, got, want)
			}
		}
	}
}

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"lonely dies", 1, true, false},
		{"two survives", 2, true, true},
		{"three survives", 3, true, true},
		{"crowded dies", 4, true, false},
		{"birth", 3, false, true},
		{"two stays dead", 2, false, false},
		{"six stays dead", 6, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}
