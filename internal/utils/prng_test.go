package utils

import (
	"math"
	"testing"

	"github.com/Pipe0105/TD-Modelamiento/internal/component"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 50; i++ {
		if x, y := a.ExpFloat64(0.5), b.ExpFloat64(0.5); x != y {
			t.Fatalf("draw %d differs: %v != %v", i, x, y)
		}
	}
}

func TestExpFloat64NonPositiveRate(t *testing.T) {
	p := NewPRNGService(1)
	for _, rate := range []float64{0, -1} {
		if v := p.ExpFloat64(rate); !math.IsInf(v, 1) {
			t.Errorf("ExpFloat64(%v) = %v, want +Inf", rate, v)
		}
	}
}

func TestChooseWeighted(t *testing.T) {
	p := NewPRNGService(3)
	tests := []struct {
		name    string
		weights []int
		want    int
	}{
		{"empty", nil, -1},
		{"all zero", []int{0, 0}, -1},
		{"single positive", []int{0, 5, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				if got := p.ChooseWeighted(tt.weights); got != tt.want {
					t.Fatalf("ChooseWeighted(%v) = %d, want %d", tt.weights, got, tt.want)
				}
			}
		})
	}

	counts := make([]int, 2)
	for i := 0; i < 4000; i++ {
		counts[p.ChooseWeighted([]int{3, 1})]++
	}
	if counts[0] < 2 * counts[1] {
		t.Errorf("weights not respected: %v", counts)
	}
}

func TestRanges(t *testing.T) {
	p := NewPRNGService(11)
	for i := 0; i < 200; i++ {
		if v := p.IntRange(80, 150); v < 80 || v > 150 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		if v := p.Uniform(1.5, 3); v < 1.5 || v >= 3 {
			t.Fatalf("Uniform out of bounds: %v", v)
		}
	}
	if v := p.IntRange(5, 5); v != 5 {
		t.Errorf("IntRange(5,5) = %d", v)
	}
}

func TestMoveTowards(t *testing.T) {
	from := component.Position{X: 0, Y: 0}
	to := component.Position{X: 10, Y: 0}

	pos, reached := MoveTowards(from, to, 4)
	if reached || pos.X != 4 || pos.Y != 0 {
		t.Errorf("MoveTowards step 4 = %+v, %v", pos, reached)
	}
	pos, reached = MoveTowards(from, to, 10)
	if !reached || pos != to {
		t.Errorf("MoveTowards exact step = %+v, %v", pos, reached)
	}
	if d := Distance(from, component.Position{X: 3, Y: 4}); d != 5 {
		t.Errorf("Distance = %v", d)
	}
}
