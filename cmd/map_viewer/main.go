// cmd/map_viewer/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/mapview"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	margin       = 40
)

func main() {
	levelsFile := flag.String("levels", "", "JSON-файл уровней (по умолчанию встроенные или TD_LEVELS_FILE)")
	flag.Parse()

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("invalid settings: %v", err)
	}
	if *levelsFile == "" {
		*levelsFile = settings.LevelsFile
	}
	levels, err := defs.LoadLevels(*levelsFile)
	if err != nil {
		log.Fatalf("failed to load levels: %v", err)
	}

	// Сцены строятся один раз, как при загрузке уровня в игре
	scenes := make([]*mapview.Scene, 0, len(levels))
	for i := range levels {
		s, err := mapview.Build(&levels[i], config.TileSize)
		if err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("level %q: %d paths, %d build spots", s.Name, len(s.Paths), len(s.Spots))
		scenes = append(scenes, s)
	}

	rl.InitWindow(screenWidth, screenHeight, "Map Viewer | Left/Right - level, P - paths, B - spots")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	current := settings.StartLevel
	if current < 0 || current >= len(scenes) {
		current = 0
	}
	showPaths, showSpots := true, true

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyRight) {
			current = (current + 1) % len(scenes)
		}
		if rl.IsKeyPressed(rl.KeyLeft) {
			current = (current + len(scenes) - 1) % len(scenes)
		}
		if rl.IsKeyPressed(rl.KeyP) {
			showPaths = !showPaths
		}
		if rl.IsKeyPressed(rl.KeyB) {
			showSpots = !showSpots
		}

		rl.BeginDrawing()
		rl.ClearBackground(config.BackgroundColor)
		drawScene(scenes[current], showPaths, showSpots)
		title := fmt.Sprintf("%d/%d  %s", current+1, len(scenes), scenes[current].Name)
		rl.DrawText(title, 10, 10, 20, rl.RayWhite)
		rl.EndDrawing()
	}
}

func drawScene(s *mapview.Scene, showPaths, showSpots bool) {
	scale, ox, oy := s.Fit(screenWidth, screenHeight, margin)
	at := func(p mapview.Point) rl.Vector2 {
		return rl.NewVector2(ox+p.X*scale, oy+p.Y*scale)
	}
	size := int32(s.TileSize * scale)

	for _, c := range s.Cells {
		x, y := int32(ox+c.X*scale), int32(oy+c.Y*scale)
		rl.DrawRectangle(x, y, size, size, c.Color)
		rl.DrawRectangleLines(x, y, size, size, rl.DarkGray)
	}

	if showPaths {
		thick := 4 * scale
		for i, path := range s.Paths {
			col := mapview.PathColor(i)
			for j := 1; j < len(path); j++ {
				rl.DrawLineEx(at(path[j-1]), at(path[j]), thick, col)
			}
			for _, p := range path {
				rl.DrawCircleV(at(p), thick, col)
			}
		}
	}

	if showSpots {
		for i, p := range s.Spots {
			v := at(p)
			rl.DrawCircleV(v, s.TileSize*scale/4, rl.Gold)
			rl.DrawText(fmt.Sprint(i), int32(v.X)-4, int32(v.Y)-8, 16, rl.Black)
		}
	}

	for _, p := range s.Starts {
		rl.DrawText("S", int32(at(p).X)-5, int32(at(p).Y)-10, 20, rl.Black)
	}
	for _, p := range s.Ends {
		rl.DrawText("E", int32(at(p).X)-5, int32(at(p).Y)-10, 20, rl.Black)
	}
}
