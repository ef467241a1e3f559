package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/Pipe0105/TD-Modelamiento/internal/event"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		name string
		cue  beep.Streamer
		want int
	}{
		{"kill", KillCue(), sampleRate.N(120 * time.Millisecond)},
		{"escape", EscapeCue(), sampleRate.N(250 * time.Millisecond)},
		{"shot", ShotCue(), sampleRate.N(40 * time.Millisecond)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(tt.cue)
			if n != tt.want {
				t.Errorf("samples = %d, want %d", n, tt.want)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %f, want (0, 1]", peak)
			}
		})
	}
}

func TestToneDecays(t *testing.T) {
	g := NewToneGenerator(sampleRate, 440, 440, 0.5, 10)
	early := make([][2]float64, 2000)
	g.Stream(early)
	skip := make([][2]float64, sampleRate.N(500 * time.Millisecond))
	g.Stream(skip)
	late := make([][2]float64, 2000)
	g.Stream(late)

	peak := func(buf [][2]float64) float64 {
		m := 0.0
		for _, s := range buf {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	if peak(late) >= peak(early) {
		t.Errorf("late peak %f should be below early peak %f", peak(late), peak(early))
	}
}

// Без Initialize менеджер молчит, но события не падают.
func TestUninitializedManagerIgnoresEvents(t *testing.T) {
	sm := NewSoundManager()
	for _, et := range CueEvents {
		sm.OnEvent(event.Event{Type: et})
	}
	sm.Cleanup()
}
