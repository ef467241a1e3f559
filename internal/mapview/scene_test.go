package mapview

import (
	"errors"
	"testing"

	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/pkg/tilemap"
)

func TestBuildScene(t *testing.T) {
	level := &defs.Level{Name: "tiny", Map: [][]int{
		{3, 1, 1, 0},
		{0, 2, 1, 0},
		{0, 0, 1, 4},
	}}
	s, err := Build(level, 50)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Width != 200 || s.Height != 150 || len(s.Cells) != 12 {
		t.Fatalf("size = %vx%v cells=%d", s.Width, s.Height, len(s.Cells))
	}
	if len(s.Paths) != 1 || len(s.Paths[0]) != 6 {
		t.Fatalf("paths = %v", s.Paths)
	}
	if first, last := s.Paths[0][0], s.Paths[0][5]; first != (Point{25, 25}) || last != (Point{175, 125}) {
		t.Errorf("path ends = %v .. %v", first, last)
	}
	if len(s.Spots) != 1 || s.Spots[0] != (Point{75, 75}) {
		t.Errorf("spots = %v", s.Spots)
	}
	if len(s.Starts) != 1 || len(s.Ends) != 1 {
		t.Errorf("starts=%v ends=%v", s.Starts, s.Ends)
	}
	if s.Cells[1].Color != config.PathColor || s.Cells[5].Color != config.BuildSpotColor {
		t.Errorf("cell colors = %v %v", s.Cells[1].Color, s.Cells[5].Color)
	}
}

func TestBuildSceneBuiltinLevels(t *testing.T) {
	wantPaths := []int{1, 1, 3}
	for i, level := range defs.BuiltinLevels() {
		s, err := Build(&level, config.TileSize)
		if err != nil {
			t.Fatalf("level %d: %v", i, err)
		}
		if len(s.Paths) != wantPaths[i] || len(s.Spots) == 0 {
			t.Errorf("level %q: paths=%d spots=%d", s.Name, len(s.Paths), len(s.Spots))
		}
	}
}

func TestBuildSceneEmptyMap(t *testing.T) {
	_, err := Build(&defs.Level{Name: "empty"}, 50)
	if !errors.Is(err, tilemap.ErrEmptyGrid) {
		t.Errorf("err = %v, want ErrEmptyGrid", err)
	}
}

func TestFit(t *testing.T) {
	s := &Scene{Width: 200, Height: 100}
	tests := []struct {
		w, h, margin  float32
		scale, ox, oy float32
	}{
		{400, 200, 0, 2, 0, 0},
		{400, 400, 0, 2, 0, 100},
		{220, 220, 10, 1, 10, 60},
	}
	for _, tt := range tests {
		scale, ox, oy := s.Fit(tt.w, tt.h, tt.margin)
		if scale != tt.scale || ox != tt.ox || oy != tt.oy {
			t.Errorf("Fit(%v, %v, %v) = %v, %v, %v", tt.w, tt.h, tt.margin, scale, ox, oy)
		}
	}
}

func TestPathColorCycles(t *testing.T) {
	if PathColor(0) != PathColor(len(PathColors)) {
		t.Error("PathColor should wrap around")
	}
}
